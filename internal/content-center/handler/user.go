package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/kart-io/content-center/internal/content-center/biz"
	"github.com/kart-io/content-center/internal/pkg/httputils"
	"github.com/kart-io/content-center/pkg/utils/response"
)

// UserHandler serves the authenticated user's profile.
type UserHandler struct {
	svc *biz.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(svc *biz.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// Profile returns the provisioned user profile.
func (h *UserHandler) Profile(c *gin.Context) {
	user, err := h.svc.Profile(c.Request.Context())
	if err != nil {
		httputils.WriteError(c, err)
		return
	}

	httputils.WriteResponse(c, nil, response.WithData(user, "Authentication successful"))
}
