package biz

import (
	"context"
	"fmt"
	"testing"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kart-io/content-center/internal/content-center/store"
	"github.com/kart-io/content-center/internal/model"
	"github.com/kart-io/content-center/pkg/component/sqlite"
	sqliteopts "github.com/kart-io/content-center/pkg/options/sqlite"
	"github.com/kart-io/content-center/pkg/utils/errors"
)

func newTestService(t *testing.T) *ArticleService {
	t.Helper()

	opts := sqliteopts.NewOptions()
	opts.Path = fmt.Sprintf("file:%s?mode=memory&cache=shared", ulid.Make().String())

	client, err := sqlite.New(opts)
	require.NoError(t, err)

	factory, err := store.NewFactory(client)
	require.NoError(t, err)
	t.Cleanup(func() { _ = factory.Close() })

	return NewArticleService(factory)
}

func strPtr(s string) *string { return &s }

func TestArticleCreateFillsDefaults(t *testing.T) {
	svc := newTestService(t)

	article, err := svc.Create(context.Background(), &model.ArticlePatch{
		Title: strPtr("defaults"),
	}, false)
	require.NoError(t, err)

	assert.Len(t, article.ID, 26)
	assert.Equal(t, model.StatusPending, article.Status)
	assert.Equal(t, model.Cover{Type: 0, Images: []string{}}, article.Cover)
	assert.False(t, article.Pubdate.IsZero())
	assert.Zero(t, article.ReadCount)
	assert.Zero(t, article.CommentCount)
	assert.Zero(t, article.LikeCount)
	assert.False(t, article.Draft)
}

func TestArticleCreateHonorsSubmittedFields(t *testing.T) {
	svc := newTestService(t)

	status := model.StatusApproved
	cover := model.Cover{Type: 1, Images: []string{"http://img/1.png"}}
	article, err := svc.Create(context.Background(), &model.ArticlePatch{
		Title:     strPtr("explicit"),
		Status:    &status,
		ChannelID: strPtr("3"),
		Cover:     &cover,
	}, false)
	require.NoError(t, err)

	assert.Equal(t, model.StatusApproved, article.Status)
	assert.Equal(t, "3", article.ChannelID)
	assert.Equal(t, cover, article.Cover)
}

func TestArticleCreateRejectsInconsistentCover(t *testing.T) {
	svc := newTestService(t)

	cover := model.Cover{Type: 3, Images: []string{"only-one"}}
	_, err := svc.Create(context.Background(), &model.ArticlePatch{
		Title: strPtr("bad cover"),
		Cover: &cover,
	}, false)
	require.Error(t, err)
	assert.True(t, errors.ErrInvalidCover.Is(err))

	badType := model.Cover{Type: 2, Images: []string{"a", "b"}}
	_, err = svc.Create(context.Background(), &model.ArticlePatch{
		Title: strPtr("bad type"),
		Cover: &badType,
	}, false)
	require.Error(t, err)
	assert.True(t, errors.ErrInvalidCover.Is(err))
}

func TestArticleCreateDraftSkipsCoverValidation(t *testing.T) {
	svc := newTestService(t)

	cover := model.Cover{Type: 3, Images: []string{"only-one"}}
	article, err := svc.Create(context.Background(), &model.ArticlePatch{
		Title: strPtr("work in progress"),
		Cover: &cover,
	}, true)
	require.NoError(t, err)
	assert.True(t, article.Draft)
}

func TestArticleUpdateMerge(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, &model.ArticlePatch{
		Title:     strPtr("original"),
		ChannelID: strPtr("1"),
	}, false)
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.ID, &model.ArticlePatch{
		Title: strPtr("revised"),
	})
	require.NoError(t, err)
	assert.Equal(t, "revised", updated.Title)
	assert.Equal(t, "1", updated.ChannelID)
	assert.Equal(t, created.ID, updated.ID)
}

func TestArticleUpdateUnknownID(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Update(context.Background(), "missing", &model.ArticlePatch{
		Title: strPtr("nope"),
	})
	require.Error(t, err)
	assert.True(t, errors.ErrArticleNotFound.Is(err))
}

func TestArticleUpdateDraftCoverSkipsValidation(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, &model.ArticlePatch{Title: strPtr("published")}, false)
	require.NoError(t, err)

	// A draft save accepts an inconsistent cover; the same cover on a
	// publish write is rejected.
	draft := true
	cover := model.Cover{Type: 3, Images: []string{"one"}}
	updated, err := svc.Update(ctx, created.ID, &model.ArticlePatch{Draft: &draft, Cover: &cover})
	require.NoError(t, err)
	assert.True(t, updated.Draft)

	publish := false
	_, err = svc.Update(ctx, created.ID, &model.ArticlePatch{Draft: &publish, Cover: &cover})
	require.Error(t, err)
	assert.True(t, errors.ErrInvalidCover.Is(err))
}

func TestArticleDeleteUnknownID(t *testing.T) {
	svc := newTestService(t)

	err := svc.Delete(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, errors.ErrArticleNotFound.Is(err))
}

func TestArticleGetRoundTrip(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, &model.ArticlePatch{Title: strPtr("fetch me")}, false)
	require.NoError(t, err)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "fetch me", got.Title)

	_, err = svc.Get(ctx, "missing")
	require.Error(t, err)
	assert.True(t, errors.ErrArticleNotFound.Is(err))
}
