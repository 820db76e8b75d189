package biz

import (
	"context"

	"github.com/kart-io/content-center/pkg/auth/tokenstore"
)

// AuthService handles the credential exchange.
type AuthService struct {
	tokens tokenstore.Store
}

// NewAuthService creates a new AuthService.
func NewAuthService(tokens tokenstore.Store) *AuthService {
	return &AuthService{tokens: tokens}
}

// Login exchanges an (identifier, code) pair for the provisioned session
// token. A failed exchange has no side effect on any session.
func (s *AuthService) Login(ctx context.Context, identifier, code string) (string, error) {
	return s.tokens.Issue(ctx, identifier, code)
}
