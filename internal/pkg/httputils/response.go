// Package httputils provides HTTP utility functions.
package httputils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kart-io/content-center/pkg/utils/errors"
	"github.com/kart-io/content-center/pkg/utils/response"
)

// WriteError writes the error envelope for err. Non-errno errors are
// wrapped as internal errors so raw error strings never reach the wire.
func WriteError(c *gin.Context, err error) {
	status, envelope := response.Err(errors.FromError(err))
	c.JSON(status, envelope)
}

// WriteResponse writes envelope with status 200, or the error envelope
// when err is set.
func WriteResponse(c *gin.Context, err error, envelope interface{}) {
	if err != nil {
		WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, envelope)
}

// WriteCreated writes envelope with status 201.
func WriteCreated(c *gin.Context, envelope interface{}) {
	c.JSON(http.StatusCreated, envelope)
}
