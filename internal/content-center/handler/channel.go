package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/kart-io/content-center/internal/content-center/biz"
	"github.com/kart-io/content-center/internal/pkg/httputils"
	"github.com/kart-io/content-center/pkg/utils/response"
)

// ChannelHandler serves the channel reference list.
type ChannelHandler struct {
	svc *biz.ChannelService
}

// NewChannelHandler creates a new ChannelHandler.
func NewChannelHandler(svc *biz.ChannelService) *ChannelHandler {
	return &ChannelHandler{svc: svc}
}

// List returns all channels.
func (h *ChannelHandler) List(c *gin.Context) {
	channels, err := h.svc.List(c.Request.Context())
	if err != nil {
		httputils.WriteError(c, err)
		return
	}

	httputils.WriteResponse(c, nil, response.WithData(channels, "Authentication successful"))
}
