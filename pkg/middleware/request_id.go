package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/oklog/ulid/v2"
)

// HeaderXRequestID is the header carrying the request id.
const HeaderXRequestID = "X-Request-ID"

// requestIDContextKey is the gin context key holding the request id.
const requestIDContextKey = "request_id"

// RequestIDConfig defines the config for RequestID middleware.
type RequestIDConfig struct {
	// Header is the header name to use for the request id.
	// Default: "X-Request-ID"
	Header string

	// Generator is the function used to mint request ids.
	// Default: ULID
	Generator func() string
}

// DefaultRequestIDConfig is the default RequestID middleware config.
var DefaultRequestIDConfig = RequestIDConfig{
	Header:    HeaderXRequestID,
	Generator: func() string { return ulid.Make().String() },
}

// RequestID returns a middleware that attaches a unique id to each request.
// The id is echoed on the response header and stored in the gin context.
func RequestID() gin.HandlerFunc {
	return RequestIDWithConfig(DefaultRequestIDConfig)
}

// RequestIDWithConfig returns a RequestID middleware with custom config.
func RequestIDWithConfig(config RequestIDConfig) gin.HandlerFunc {
	if config.Header == "" {
		config.Header = HeaderXRequestID
	}
	if config.Generator == nil {
		config.Generator = DefaultRequestIDConfig.Generator
	}

	return func(c *gin.Context) {
		requestID := c.GetHeader(config.Header)
		if requestID == "" {
			requestID = config.Generator()
		}

		c.Header(config.Header, requestID)
		c.Set(requestIDContextKey, requestID)

		c.Next()
	}
}

// GetRequestID returns the request id for the current request, or "".
func GetRequestID(c *gin.Context) string {
	return c.GetString(requestIDContextKey)
}
