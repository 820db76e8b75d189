package middleware

import (
	"fmt"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"github.com/kart-io/logger"

	"github.com/kart-io/content-center/pkg/utils/errors"
	"github.com/kart-io/content-center/pkg/utils/response"
)

// RecoveryConfig defines the config for Recovery middleware.
type RecoveryConfig struct {
	// EnableStackTrace includes the stack trace in the error response.
	// Only for development.
	EnableStackTrace bool

	// OnPanic is called when a panic occurs. Can be used for alerting.
	OnPanic func(c *gin.Context, err interface{}, stack []byte)
}

// DefaultRecoveryConfig is the default Recovery middleware config.
var DefaultRecoveryConfig = RecoveryConfig{
	EnableStackTrace: false,
}

// Recovery returns a middleware that recovers from panics and converts
// them to JSON error responses using the error code system.
func Recovery() gin.HandlerFunc {
	return RecoveryWithConfig(DefaultRecoveryConfig)
}

// RecoveryWithConfig returns a Recovery middleware with custom config.
func RecoveryWithConfig(config RecoveryConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				stack := debug.Stack()

				if config.OnPanic != nil {
					config.OnPanic(c, r, stack)
				}

				logger.Errorw("panic recovered",
					"panic", fmt.Sprintf("%v", r),
					"path", c.Request.URL.Path,
					"request_id", GetRequestID(c),
				)

				err := errors.ErrInternal
				if config.EnableStackTrace {
					err = err.WithMessagef("panic: %v\n%s", r, string(stack))
				}

				status, env := response.Err(err)
				c.AbortWithStatusJSON(status, env)
			}
		}()
		c.Next()
	}
}
