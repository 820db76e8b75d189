package biz

import (
	"context"
	stderrors "errors"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"

	"github.com/kart-io/content-center/internal/content-center/store"
	"github.com/kart-io/content-center/internal/model"
	"github.com/kart-io/content-center/pkg/utils/errors"
)

// ArticleService handles article business logic.
type ArticleService struct {
	store store.Factory
}

// NewArticleService creates a new ArticleService.
func NewArticleService(store store.Factory) *ArticleService {
	return &ArticleService{store: store}
}

// Create builds a new article from the submitted fields, fills defaults for
// everything the caller omitted, and persists it. The returned article
// carries the assigned id.
//
// With draft set the article is stored as a draft and skips cover
// validation; published articles must carry a consistent cover.
func (s *ArticleService) Create(ctx context.Context, patch *model.ArticlePatch, draft bool) (*model.Article, error) {
	article := &model.Article{
		ID:        ulid.Make().String(),
		Status:    model.StatusPending,
		Cover:     model.Cover{Type: 0, Images: []string{}},
		Pubdate:   model.Now(),
		CreatedAt: model.Now(),
	}
	patch.Apply(article)
	article.Draft = draft

	if !draft {
		if err := validateCover(article.Cover); err != nil {
			return nil, err
		}
	}

	if err := s.store.Articles().Create(ctx, article); err != nil {
		return nil, errors.ErrDatabase.WithCause(err)
	}
	return article, nil
}

// Update applies a partial update. Fields absent from the patch keep their
// stored values. A cover submitted on a non-draft write must be consistent.
func (s *ArticleService) Update(ctx context.Context, id string, patch *model.ArticlePatch) (*model.Article, error) {
	draft := patch.Draft != nil && *patch.Draft
	if !draft && patch.Cover != nil {
		if err := validateCover(*patch.Cover); err != nil {
			return nil, err
		}
	}

	article, err := s.store.Articles().Update(ctx, id, patch)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrArticleNotFound
		}
		return nil, errors.ErrDatabase.WithCause(err)
	}
	return article, nil
}

// Get retrieves one article by id.
func (s *ArticleService) Get(ctx context.Context, id string) (*model.Article, error) {
	article, err := s.store.Articles().Get(ctx, id)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrArticleNotFound
		}
		return nil, errors.ErrDatabase.WithCause(err)
	}
	return article, nil
}

// Delete removes one article by id.
func (s *ArticleService) Delete(ctx context.Context, id string) error {
	if err := s.store.Articles().Delete(ctx, id); err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return errors.ErrArticleNotFound
		}
		return errors.ErrDatabase.WithCause(err)
	}
	return nil
}

// List returns the total match count and one page of articles.
func (s *ArticleService) List(ctx context.Context, query store.ArticleQuery) (int64, []*model.Article, error) {
	count, results, err := s.store.Articles().List(ctx, query)
	if err != nil {
		return 0, nil, errors.ErrDatabase.WithCause(err)
	}
	return count, results, nil
}

func validateCover(cover model.Cover) error {
	if !cover.ValidType() {
		return errors.ErrInvalidCover.WithMessagef("cover type %d is not one of 0, 1, 3", cover.Type)
	}
	if !cover.Matches() {
		return errors.ErrInvalidCover.WithMessagef("cover type %d requires %d images, got %d", cover.Type, cover.Type, len(cover.Images))
	}
	return nil
}
