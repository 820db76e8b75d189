// Package middleware provides the gin middleware chain for content-center.
package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/kart-io/content-center/pkg/auth/tokenstore"
	"github.com/kart-io/content-center/pkg/utils/errors"
	"github.com/kart-io/content-center/pkg/utils/response"
)

// AuthScheme is the authorization scheme expected on protected routes.
const AuthScheme = "Bearer"

// tokenContextKey is the gin context key holding the validated bearer token.
const tokenContextKey = "auth.token"

// AuthOptions defines authentication middleware options.
type AuthOptions struct {
	// Store validates bearer tokens.
	Store tokenstore.Store

	// SkipPaths is a list of paths to skip authentication.
	SkipPaths []string

	// SkipPathPrefixes is a list of path prefixes to skip authentication.
	SkipPathPrefixes []string
}

// AuthOption is a functional option for auth middleware.
type AuthOption func(*AuthOptions)

// AuthWithStore sets the token store.
func AuthWithStore(s tokenstore.Store) AuthOption {
	return func(o *AuthOptions) {
		o.Store = s
	}
}

// AuthWithSkipPaths sets paths to skip authentication.
func AuthWithSkipPaths(paths ...string) AuthOption {
	return func(o *AuthOptions) {
		o.SkipPaths = paths
	}
}

// AuthWithSkipPathPrefixes sets path prefixes to skip authentication.
func AuthWithSkipPathPrefixes(prefixes ...string) AuthOption {
	return func(o *AuthOptions) {
		o.SkipPathPrefixes = prefixes
	}
}

// Auth creates an authentication middleware. Every request it guards must
// carry a bearer token the store recognizes; failure aborts the chain with
// a 401 envelope before any handler runs.
func Auth(opts ...AuthOption) gin.HandlerFunc {
	options := &AuthOptions{}
	for _, opt := range opts {
		opt(options)
	}

	return func(c *gin.Context) {
		if shouldSkipAuth(c.Request.URL.Path, options.SkipPaths, options.SkipPathPrefixes) {
			c.Next()
			return
		}

		if options.Store == nil {
			abortUnauthenticated(c, errors.ErrInternal.WithMessage("token store not configured"))
			return
		}

		token := ExtractBearerToken(c)
		if token == "" {
			abortUnauthenticated(c, errors.ErrUnauthenticated)
			return
		}

		ok, err := options.Store.Validate(c.Request.Context(), token)
		if err != nil {
			abortUnauthenticated(c, errors.ErrInternal.WithCause(err))
			return
		}
		if !ok {
			abortUnauthenticated(c, errors.ErrUnauthenticated)
			return
		}

		c.Set(tokenContextKey, token)
		c.Next()
	}
}

// ExtractBearerToken pulls the bearer credential out of the Authorization
// header. Returns "" when the header is absent or malformed.
func ExtractBearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if len(header) > len(AuthScheme)+1 && strings.EqualFold(header[:len(AuthScheme)], AuthScheme) {
		return strings.TrimSpace(header[len(AuthScheme)+1:])
	}
	return ""
}

// TokenFromContext returns the validated bearer token for the request.
func TokenFromContext(c *gin.Context) string {
	return c.GetString(tokenContextKey)
}

func abortUnauthenticated(c *gin.Context, err *errors.Errno) {
	status, env := response.Err(err)
	c.AbortWithStatusJSON(status, env)
}

// shouldSkipAuth checks if the path should skip authentication.
func shouldSkipAuth(path string, skipPaths, skipPrefixes []string) bool {
	for _, p := range skipPaths {
		if path == p {
			return true
		}
	}
	for _, prefix := range skipPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}
