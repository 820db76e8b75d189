// Package tokenstore implements the session token lifecycle: pre-provisioned
// credential tuples, token issuance, and bearer token validation.
//
// Tokens are opaque strings bound to exactly one (identifier, code) pair at
// provisioning time. Issuance is idempotent: the same credentials always
// yield the same token, and a failed exchange has no side effect. Tokens
// stay valid for the process lifetime unless the store is created with a
// TTL.
package tokenstore

import (
	"context"
)

// Credential is a pre-provisioned (identifier, one-time code, token) tuple.
// The identifier is the login handle (a mobile number in the admin client).
type Credential struct {
	Identifier string `json:"mobile"`
	Code       string `json:"code"`
	Token      string `json:"token"`
}

// Store issues and validates session tokens.
// Implementations can use memory or Redis; both share the same contract.
type Store interface {
	// Issue exchanges credentials for the provisioned token.
	// Returns errors.ErrInvalidCredentials when no matching tuple exists.
	Issue(ctx context.Context, identifier, code string) (string, error)

	// Validate reports whether the bearer token belongs to a live session.
	Validate(ctx context.Context, token string) (bool, error)

	// Close releases any resources used by the store.
	Close() error
}
