package handler

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/oklog/ulid/v2"

	"github.com/kart-io/content-center/internal/pkg/httputils"
	"github.com/kart-io/content-center/pkg/options/upload"
	"github.com/kart-io/content-center/pkg/utils/errors"
	"github.com/kart-io/content-center/pkg/utils/response"
)

// UploadHandler stores uploaded images and hands back their public URL.
type UploadHandler struct {
	opts *upload.Options
}

// NewUploadHandler creates a new UploadHandler.
func NewUploadHandler(opts *upload.Options) (*UploadHandler, error) {
	if err := os.MkdirAll(opts.Dir, 0o755); err != nil {
		return nil, err
	}
	return &UploadHandler{opts: opts}, nil
}

// Upload accepts a single multipart image and writes it under a fresh
// name, so uploads never collide or overwrite each other.
func (h *UploadHandler) Upload(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.opts.MaxSize)

	file, err := c.FormFile("image")
	if err != nil {
		if strings.Contains(err.Error(), "request body too large") {
			httputils.WriteError(c, errors.ErrUploadTooLarge)
			return
		}
		httputils.WriteError(c, errors.ErrUploadMissing)
		return
	}
	if file.Size > h.opts.MaxSize {
		httputils.WriteError(c, errors.ErrUploadTooLarge)
		return
	}

	name := ulid.Make().String() + strings.ToLower(filepath.Ext(file.Filename))
	if err := c.SaveUploadedFile(file, filepath.Join(h.opts.Dir, name)); err != nil {
		httputils.WriteError(c, errors.ErrInternal.WithCause(err))
		return
	}

	fileURL := strings.TrimRight(h.opts.BaseURL, "/") + "/" + name
	httputils.WriteCreated(c, &response.File{FileURL: fileURL, Msg: "File uploaded successfully"})
}
