package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kart-io/content-center/internal/content-center/biz"
	"github.com/kart-io/content-center/internal/content-center/store"
	"github.com/kart-io/content-center/internal/model"
	"github.com/kart-io/content-center/internal/pkg/httputils"
	"github.com/kart-io/content-center/pkg/utils/errors"
	"github.com/kart-io/content-center/pkg/utils/response"
)

// Listing page defaults when the client omits pagination parameters.
const (
	defaultPage    = 1
	defaultPerPage = 4
)

// ArticleHandler handles article HTTP requests.
type ArticleHandler struct {
	svc *biz.ArticleService
}

// NewArticleHandler creates a new ArticleHandler.
func NewArticleHandler(svc *biz.ArticleService) *ArticleHandler {
	return &ArticleHandler{svc: svc}
}

// Create handles article creation. The draft query flag saves the article
// as a draft instead of submitting it for review.
func (h *ArticleHandler) Create(c *gin.Context) {
	var patch model.ArticlePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		httputils.WriteError(c, errors.ErrBadRequest.WithMessage(err.Error()))
		return
	}

	// Absent draft flag means a draft save; only an explicit draft=false
	// publishes.
	draft := c.Query("draft") != "false"

	article, err := h.svc.Create(c.Request.Context(), &patch, draft)
	if err != nil {
		httputils.WriteError(c, err)
		return
	}

	httputils.WriteCreated(c, response.WithArticle(article, "Article created successfully"))
}

// Update handles a partial article update. Fields absent from the body
// keep their stored values.
func (h *ArticleHandler) Update(c *gin.Context) {
	var patch model.ArticlePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		httputils.WriteError(c, errors.ErrBadRequest.WithMessage(err.Error()))
		return
	}

	// An explicit draft flag on update is recorded on the article; an
	// absent flag leaves the stored value alone.
	if raw, ok := c.GetQuery("draft"); ok {
		draft := raw != "false"
		patch.Draft = &draft
	}

	article, err := h.svc.Update(c.Request.Context(), c.Param("id"), &patch)
	if err != nil {
		httputils.WriteError(c, err)
		return
	}

	httputils.WriteResponse(c, nil, response.WithArticle(article, "Article updated successfully"))
}

// Get handles fetching one article by id.
func (h *ArticleHandler) Get(c *gin.Context) {
	article, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		httputils.WriteError(c, err)
		return
	}

	httputils.WriteResponse(c, nil, response.WithData(article, "OK"))
}

// Delete handles removing one article by id.
func (h *ArticleHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		httputils.WriteError(c, err)
		return
	}

	httputils.WriteResponse(c, nil, response.OK("Article deleted successfully"))
}

// List handles the filtered, paginated article listing. Empty filter
// parameters are wildcards, so the admin client can submit its filter
// form fields unconditionally.
func (h *ArticleHandler) List(c *gin.Context) {
	query, err := parseArticleQuery(c)
	if err != nil {
		httputils.WriteError(c, err)
		return
	}

	count, results, err := h.svc.List(c.Request.Context(), query)
	if err != nil {
		httputils.WriteError(c, err)
		return
	}

	page := &response.Page{
		Page:       query.Page,
		PerPage:    query.PerPage,
		Results:    results,
		TotalCount: count,
	}
	httputils.WriteResponse(c, nil, response.WithData(page, "OK"))
}

func parseArticleQuery(c *gin.Context) (store.ArticleQuery, error) {
	query := store.ArticleQuery{
		Page:    defaultPage,
		PerPage: defaultPerPage,
	}

	if raw := c.Query("status"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return query, errors.ErrBadRequest.WithMessagef("invalid status %q", raw)
		}
		status := model.ArticleStatus(n)
		query.Status = &status
	}

	query.ChannelID = c.Query("channel_id")

	if raw := c.Query("begin_pubdate"); raw != "" {
		t, err := model.ParseTime(raw)
		if err != nil {
			return query, errors.ErrBadRequest.WithMessagef("invalid begin_pubdate %q", raw)
		}
		query.BeginPubdate = &t
	}
	if raw := c.Query("end_pubdate"); raw != "" {
		t, err := model.ParseTime(raw)
		if err != nil {
			return query, errors.ErrBadRequest.WithMessagef("invalid end_pubdate %q", raw)
		}
		query.EndPubdate = &t
	}

	if raw := c.Query("page"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return query, errors.ErrBadRequest.WithMessagef("invalid page %q", raw)
		}
		query.Page = n
	}
	if raw := c.Query("per_page"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return query, errors.ErrBadRequest.WithMessagef("invalid per_page %q", raw)
		}
		query.PerPage = n
	}

	return query, nil
}
