package tokenstore

import (
	"context"
	"sync"
	"time"

	"github.com/kart-io/content-center/pkg/utils/errors"
)

// MemoryStore is an in-memory implementation of Store.
// Suitable for single-instance deployments or testing.
// For distributed deployments, use the Redis-backed store.
type MemoryStore struct {
	mu          sync.RWMutex
	provisioned map[string]Credential // identifier -> tuple
	tokens      map[string]time.Time  // token -> expiry; zero time = no expiry

	// ttl bounds token validity after issuance. Zero means tokens never
	// expire and every provisioned token is accepted, which matches the
	// reference deployment.
	ttl time.Duration

	cleanupInterval time.Duration
	stopCleanup     chan struct{}
	closeOnce       sync.Once
}

// MemoryStoreOption is a functional option for MemoryStore.
type MemoryStoreOption func(*MemoryStore)

// WithTTL bounds token validity after issuance. Zero disables expiry.
func WithTTL(ttl time.Duration) MemoryStoreOption {
	return func(s *MemoryStore) {
		s.ttl = ttl
	}
}

// WithCleanupInterval sets how often expired tokens are swept.
func WithCleanupInterval(d time.Duration) MemoryStoreOption {
	return func(s *MemoryStore) {
		s.cleanupInterval = d
	}
}

// NewMemoryStore creates an in-memory token store holding the given
// provisioned credential tuples.
func NewMemoryStore(creds []Credential, opts ...MemoryStoreOption) *MemoryStore {
	s := &MemoryStore{
		provisioned:     make(map[string]Credential, len(creds)),
		tokens:          make(map[string]time.Time, len(creds)),
		cleanupInterval: 5 * time.Minute,
		stopCleanup:     make(chan struct{}),
	}

	for _, opt := range opts {
		opt(s)
	}

	for _, c := range creds {
		s.provisioned[c.Identifier] = c
		if s.ttl == 0 {
			// Without a TTL the whole provisioned set is live immediately.
			s.tokens[c.Token] = time.Time{}
		}
	}

	if s.ttl > 0 {
		go s.cleanup()
	}

	return s
}

// Issue exchanges credentials for the provisioned token. Repeated calls
// with the same credentials return the same token.
func (s *MemoryStore) Issue(ctx context.Context, identifier, code string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cred, ok := s.provisioned[identifier]
	if !ok || cred.Code != code {
		return "", errors.ErrInvalidCredentials
	}

	if s.ttl > 0 {
		s.tokens[cred.Token] = time.Now().Add(s.ttl)
	}
	return cred.Token, nil
}

// Validate reports token membership. No mutation.
func (s *MemoryStore) Validate(ctx context.Context, token string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	exp, ok := s.tokens[token]
	if !ok {
		return false, nil
	}
	if !exp.IsZero() && time.Now().After(exp) {
		return false, nil
	}
	return true, nil
}

// Close stops the cleanup goroutine, if any.
func (s *MemoryStore) Close() error {
	s.closeOnce.Do(func() {
		close(s.stopCleanup)
	})
	return nil
}

// cleanup periodically removes expired tokens.
func (s *MemoryStore) cleanup() {
	ticker := time.NewTicker(s.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.sweep()
		case <-s.stopCleanup:
			return
		}
	}
}

func (s *MemoryStore) sweep() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	for token, exp := range s.tokens {
		if !exp.IsZero() && now.After(exp) {
			delete(s.tokens, token)
		}
	}
}
