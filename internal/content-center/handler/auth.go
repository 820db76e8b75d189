package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kart-io/content-center/internal/content-center/biz"
	"github.com/kart-io/content-center/internal/pkg/httputils"
	"github.com/kart-io/content-center/pkg/utils/errors"
	"github.com/kart-io/content-center/pkg/utils/response"
)

// AuthHandler handles the credential exchange endpoint.
type AuthHandler struct {
	svc *biz.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(svc *biz.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// LoginRequest is the request body for the credential exchange.
type LoginRequest struct {
	Mobile string `json:"mobile"`
	Code   string `json:"code"`
}

// Login exchanges credentials for a session token.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputils.WriteError(c, errors.ErrInvalidCredentials)
		return
	}

	token, err := h.svc.Login(c.Request.Context(), req.Mobile, req.Code)
	if err != nil {
		httputils.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, &response.Token{Token: token, Msg: "Authentication successful"})
}
