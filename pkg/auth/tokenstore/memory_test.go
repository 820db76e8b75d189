package tokenstore

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kart-io/content-center/pkg/utils/errors"
)

func provisioned() []Credential {
	return []Credential{
		{Identifier: "13800000001", Code: "246810", Token: "token-one"},
		{Identifier: "13800000002", Code: "135790", Token: "token-two"},
	}
}

func TestMemoryStoreIssue(t *testing.T) {
	store := NewMemoryStore(provisioned())
	defer store.Close()
	ctx := context.Background()

	tests := []struct {
		name       string
		identifier string
		code       string
		wantToken  string
		wantErr    error
	}{
		{
			name:       "valid credentials",
			identifier: "13800000001",
			code:       "246810",
			wantToken:  "token-one",
		},
		{
			name:       "second provisioned pair",
			identifier: "13800000002",
			code:       "135790",
			wantToken:  "token-two",
		},
		{
			name:       "correct identifier wrong code",
			identifier: "13800000001",
			code:       "000000",
			wantErr:    errors.ErrInvalidCredentials,
		},
		{
			name:       "unknown identifier",
			identifier: "13899999999",
			code:       "246810",
			wantErr:    errors.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := store.Issue(ctx, tt.identifier, tt.code)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, token)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantToken, token)
		})
	}
}

func TestMemoryStoreIssueIdempotent(t *testing.T) {
	store := NewMemoryStore(provisioned())
	defer store.Close()
	ctx := context.Background()

	first, err := store.Issue(ctx, "13800000001", "246810")
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		again, err := store.Issue(ctx, "13800000001", "246810")
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestMemoryStoreValidate(t *testing.T) {
	store := NewMemoryStore(provisioned())
	defer store.Close()
	ctx := context.Background()

	for _, token := range []string{"token-one", "token-two"} {
		ok, err := store.Validate(ctx, token)
		assert.NoError(t, err)
		assert.True(t, ok, token)
	}

	ok, err := store.Validate(ctx, "forged")
	assert.NoError(t, err)
	assert.False(t, ok)

	ok, err = store.Validate(ctx, "")
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryStoreFailedIssueHasNoSideEffect(t *testing.T) {
	store := NewMemoryStore(provisioned(), WithTTL(time.Hour))
	defer store.Close()
	ctx := context.Background()

	_, err := store.Issue(ctx, "13800000001", "wrong")
	assert.ErrorIs(t, err, errors.ErrInvalidCredentials)

	// With a TTL, a token only becomes live after a successful exchange.
	ok, err := store.Validate(ctx, "token-one")
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryStoreTTLExpiry(t *testing.T) {
	store := NewMemoryStore(provisioned(), WithTTL(20*time.Millisecond), WithCleanupInterval(time.Hour))
	defer store.Close()
	ctx := context.Background()

	token, err := store.Issue(ctx, "13800000001", "246810")
	require.NoError(t, err)

	ok, err := store.Validate(ctx, token)
	require.NoError(t, err)
	assert.True(t, ok)

	time.Sleep(40 * time.Millisecond)

	ok, err = store.Validate(ctx, token)
	require.NoError(t, err)
	assert.False(t, ok)
}
