package handler_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kart-io/content-center/internal/content-center/biz"
	"github.com/kart-io/content-center/internal/content-center/handler"
	"github.com/kart-io/content-center/internal/content-center/router"
	"github.com/kart-io/content-center/internal/content-center/store"
	"github.com/kart-io/content-center/internal/model"
	"github.com/kart-io/content-center/pkg/auth/tokenstore"
	"github.com/kart-io/content-center/pkg/component/sqlite"
	sqliteopts "github.com/kart-io/content-center/pkg/options/sqlite"
	uploadopts "github.com/kart-io/content-center/pkg/options/upload"
)

const (
	testMobile = "13800000002"
	testCode   = "246810"
	testToken  = "01TESTTOKEN0000000000000AB"
)

func newTestEngine(t *testing.T) *gin.Engine {
	t.Helper()

	opts := sqliteopts.NewOptions()
	opts.Path = fmt.Sprintf("file:%s?mode=memory&cache=shared", ulid.Make().String())

	client, err := sqlite.New(opts)
	require.NoError(t, err)

	factory, err := store.NewFactory(client)
	require.NoError(t, err)
	t.Cleanup(func() { _ = factory.Close() })

	ctx := t.Context()
	require.NoError(t, factory.Users().Save(ctx, &model.User{ID: "1", Name: "User1", Email: "user1@example.com"}))
	require.NoError(t, factory.Channels().Save(ctx, []*model.Channel{
		{ID: "1", Name: "Channel1"},
		{ID: "2", Name: "Frontend"},
	}))

	tokens := tokenstore.NewMemoryStore([]tokenstore.Credential{
		{Identifier: testMobile, Code: testCode, Token: testToken},
	})
	t.Cleanup(func() { _ = tokens.Close() })

	upOpts := uploadopts.NewOptions()
	upOpts.Dir = t.TempDir()
	uploadHandler, err := handler.NewUploadHandler(upOpts)
	require.NoError(t, err)

	return router.New(&router.Config{
		Mode:           gin.TestMode,
		RequestTimeout: 5 * time.Second,
		Tokens:         tokens,
		Auth:           handler.NewAuthHandler(biz.NewAuthService(tokens)),
		Article:        handler.NewArticleHandler(biz.NewArticleService(factory)),
		Channel:        handler.NewChannelHandler(biz.NewChannelService(factory)),
		User:           handler.NewUserHandler(biz.NewUserService(factory, "1")),
		Upload:         uploadHandler,
		StaticFS:       upOpts.Dir,
	})
}

func doJSON(t *testing.T, engine *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func createArticle(t *testing.T, engine *gin.Engine, payload map[string]interface{}) map[string]interface{} {
	t.Helper()

	w := doJSON(t, engine, http.MethodPost, "/mp/articles?draft=false", testToken, payload)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	article, ok := decodeBody(t, w)["article"].(map[string]interface{})
	require.True(t, ok)
	return article
}

func TestLoginSuccess(t *testing.T) {
	engine := newTestEngine(t)

	w := doJSON(t, engine, http.MethodPost, "/authorizations", "", map[string]string{
		"mobile": testMobile,
		"code":   testCode,
	})
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, testToken, body["token"])
	assert.Equal(t, "Authentication successful", body["message"])
}

func TestLoginWrongCode(t *testing.T) {
	engine := newTestEngine(t)

	w := doJSON(t, engine, http.MethodPost, "/authorizations", "", map[string]string{
		"mobile": testMobile,
		"code":   "000000",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid phone number or code", decodeBody(t, w)["message"])
}

func TestProtectedRoutesRejectMissingToken(t *testing.T) {
	engine := newTestEngine(t)

	for _, route := range []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/user/profile"},
		{http.MethodGet, "/channels"},
		{http.MethodGet, "/mp/articles"},
		{http.MethodPost, "/mp/articles"},
		{http.MethodGet, "/mp/articles/some-id"},
		{http.MethodPut, "/mp/articles/some-id"},
		{http.MethodDelete, "/mp/articles/some-id"},
	} {
		w := doJSON(t, engine, route.method, route.path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "%s %s", route.method, route.path)
		assert.Equal(t, "Unauthorized person", decodeBody(t, w)["message"])
	}

	w := doJSON(t, engine, http.MethodGet, "/mp/articles", "unknown-token", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestUnauthenticatedWriteHasNoSideEffect(t *testing.T) {
	engine := newTestEngine(t)

	w := doJSON(t, engine, http.MethodPost, "/mp/articles", "", map[string]string{"title": "sneaky"})
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, engine, http.MethodGet, "/mp/articles", testToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	data := decodeBody(t, w)["data"].(map[string]interface{})
	assert.EqualValues(t, 0, data["total_count"])
}

func TestProfile(t *testing.T) {
	engine := newTestEngine(t)

	w := doJSON(t, engine, http.MethodGet, "/user/profile", testToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "Authentication successful", body["message"])
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "User1", data["name"])
}

func TestChannels(t *testing.T) {
	engine := newTestEngine(t)

	w := doJSON(t, engine, http.MethodGet, "/channels", testToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	data := decodeBody(t, w)["data"].([]interface{})
	require.Len(t, data, 2)
	assert.Equal(t, "Channel1", data[0].(map[string]interface{})["name"])
}

func TestCreateArticleFillsDefaults(t *testing.T) {
	engine := newTestEngine(t)

	article := createArticle(t, engine, map[string]interface{}{"title": "first post"})

	assert.NotEmpty(t, article["id"])
	assert.Equal(t, "first post", article["title"])
	assert.EqualValues(t, 1, article["status"])
	assert.EqualValues(t, 0, article["read_count"])
	cover := article["cover"].(map[string]interface{})
	assert.EqualValues(t, 0, cover["type"])
	assert.NotEmpty(t, article["pubdate"])
	assert.NotEmpty(t, article["created_at"])
}

func TestCreateArticleDraftDefault(t *testing.T) {
	engine := newTestEngine(t)

	// Without an explicit draft=false the submission is a draft save.
	w := doJSON(t, engine, http.MethodPost, "/mp/articles", testToken, map[string]interface{}{"title": "wip"})
	require.Equal(t, http.StatusCreated, w.Code)
	article := decodeBody(t, w)["article"].(map[string]interface{})
	assert.Equal(t, true, article["draft"])
}

func TestCreateArticleRejectsBadCoverOnPublish(t *testing.T) {
	engine := newTestEngine(t)

	w := doJSON(t, engine, http.MethodPost, "/mp/articles?draft=false", testToken, map[string]interface{}{
		"title": "bad cover",
		"cover": map[string]interface{}{"type": 3, "images": []string{"one"}},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetArticleRoundTrip(t *testing.T) {
	engine := newTestEngine(t)

	created := createArticle(t, engine, map[string]interface{}{"title": "fetch me", "channel_id": "2"})
	id := created["id"].(string)

	w := doJSON(t, engine, http.MethodGet, "/mp/articles/"+id, testToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "OK", body["message"])
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "fetch me", data["title"])
	assert.Equal(t, "2", data["channel_id"])
}

func TestGetArticleUnknown(t *testing.T) {
	engine := newTestEngine(t)

	w := doJSON(t, engine, http.MethodGet, "/mp/articles/missing", testToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Article not found", decodeBody(t, w)["message"])
}

func TestUpdateArticlePartial(t *testing.T) {
	engine := newTestEngine(t)

	created := createArticle(t, engine, map[string]interface{}{"title": "before", "channel_id": "1"})
	id := created["id"].(string)

	w := doJSON(t, engine, http.MethodPut, "/mp/articles/"+id, testToken, map[string]interface{}{"title": "after"})
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "Article updated successfully", body["message"])
	article := body["article"].(map[string]interface{})
	assert.Equal(t, "after", article["title"])
	// Fields absent from the body keep their stored values.
	assert.Equal(t, "1", article["channel_id"])
}

func TestUpdateArticleUnknown(t *testing.T) {
	engine := newTestEngine(t)

	w := doJSON(t, engine, http.MethodPut, "/mp/articles/missing", testToken, map[string]interface{}{"title": "x"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteArticle(t *testing.T) {
	engine := newTestEngine(t)

	created := createArticle(t, engine, map[string]interface{}{"title": "doomed"})
	id := created["id"].(string)

	w := doJSON(t, engine, http.MethodDelete, "/mp/articles/"+id, testToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Article deleted successfully", decodeBody(t, w)["message"])

	w = doJSON(t, engine, http.MethodGet, "/mp/articles/"+id, testToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, engine, http.MethodDelete, "/mp/articles/"+id, testToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListArticlesFiltersAndPagination(t *testing.T) {
	engine := newTestEngine(t)

	for i := 1; i <= 5; i++ {
		createArticle(t, engine, map[string]interface{}{
			"title":      fmt.Sprintf("day-%d", i),
			"channel_id": "1",
			"pubdate":    fmt.Sprintf("2024-03-0%d", i),
			"status":     2,
		})
	}

	t.Run("date range in insertion order", func(t *testing.T) {
		w := doJSON(t, engine, http.MethodGet,
			"/mp/articles?begin_pubdate=2024-03-02&end_pubdate=2024-03-04", testToken, nil)
		require.Equal(t, http.StatusOK, w.Code)

		data := decodeBody(t, w)["data"].(map[string]interface{})
		assert.EqualValues(t, 3, data["total_count"])
		results := data["results"].([]interface{})
		require.Len(t, results, 3)
		assert.Equal(t, "day-2", results[0].(map[string]interface{})["title"])
		assert.Equal(t, "day-4", results[2].(map[string]interface{})["title"])
	})

	t.Run("empty filter fields are wildcards", func(t *testing.T) {
		w := doJSON(t, engine, http.MethodGet,
			"/mp/articles?status=&channel_id=&begin_pubdate=&end_pubdate=", testToken, nil)
		require.Equal(t, http.StatusOK, w.Code)
		data := decodeBody(t, w)["data"].(map[string]interface{})
		assert.EqualValues(t, 5, data["total_count"])
	})

	t.Run("status filter excludes mismatches", func(t *testing.T) {
		w := doJSON(t, engine, http.MethodGet, "/mp/articles?status=1", testToken, nil)
		require.Equal(t, http.StatusOK, w.Code)
		data := decodeBody(t, w)["data"].(map[string]interface{})
		assert.EqualValues(t, 0, data["total_count"])
	})

	t.Run("page past the end is empty with correct count", func(t *testing.T) {
		w := doJSON(t, engine, http.MethodGet, "/mp/articles?page=9&per_page=4", testToken, nil)
		require.Equal(t, http.StatusOK, w.Code)
		data := decodeBody(t, w)["data"].(map[string]interface{})
		assert.EqualValues(t, 5, data["total_count"])
		assert.Empty(t, data["results"])
	})

	t.Run("default page size", func(t *testing.T) {
		w := doJSON(t, engine, http.MethodGet, "/mp/articles", testToken, nil)
		require.Equal(t, http.StatusOK, w.Code)
		data := decodeBody(t, w)["data"].(map[string]interface{})
		assert.EqualValues(t, 4, data["per_page"])
		assert.Len(t, data["results"].([]interface{}), 4)
	})
}

func TestUploadMissingFile(t *testing.T) {
	engine := newTestEngine(t)

	req := httptest.NewRequest(http.MethodPost, "/upload", strings.NewReader(""))
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Please upload a file", decodeBody(t, w)["message"])
}

func TestUploadSuccess(t *testing.T) {
	engine := newTestEngine(t)

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("image", "pic.png")
	require.NoError(t, err)
	_, err = part.Write([]byte("not-really-a-png"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/upload", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "File uploaded successfully", body["message"])
	assert.Contains(t, body["fileUrl"], "/uploads/")
	assert.True(t, strings.HasSuffix(body["fileUrl"].(string), ".png"))
}
