package middleware

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kart-io/content-center/pkg/utils/errors"
	"github.com/kart-io/content-center/pkg/utils/response"
)

// TimeoutConfig defines the config for Timeout middleware.
type TimeoutConfig struct {
	// Timeout is the request processing bound.
	// Default: 10s
	Timeout time.Duration

	// SkipPaths is a list of paths to skip the timeout.
	SkipPaths []string
}

// DefaultTimeoutConfig is the default Timeout middleware config.
var DefaultTimeoutConfig = TimeoutConfig{
	Timeout: 10 * time.Second,
}

// Timeout returns a middleware that bounds request processing time. When
// the bound is exceeded the client receives a 504 envelope; the handler
// goroutine observes cancellation through the request context.
func Timeout(timeout time.Duration) gin.HandlerFunc {
	return TimeoutWithConfig(TimeoutConfig{Timeout: timeout})
}

// TimeoutWithConfig returns a Timeout middleware with custom config.
func TimeoutWithConfig(config TimeoutConfig) gin.HandlerFunc {
	if config.Timeout == 0 {
		config.Timeout = DefaultTimeoutConfig.Timeout
	}

	skipPaths := make(map[string]bool, len(config.SkipPaths))
	for _, path := range config.SkipPaths {
		skipPaths[path] = true
	}

	return func(c *gin.Context) {
		if skipPaths[c.Request.URL.Path] {
			c.Next()
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), config.Timeout)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)

		done := make(chan struct{}, 1)
		go func() {
			defer func() {
				if r := recover(); r != nil {
					// The recovery middleware cannot see a panic on this
					// goroutine; swallow it and let the select time out.
				}
				select {
				case done <- struct{}{}:
				default:
				}
			}()
			c.Next()
		}()

		select {
		case <-done:
		case <-ctx.Done():
			if ctx.Err() == context.DeadlineExceeded {
				status, env := response.Err(errors.ErrRequestTimeout)
				c.AbortWithStatusJSON(status, env)
			}
		}
	}
}
