// Package auth provides token store configuration options.
package auth

import (
	"fmt"
	"time"

	"github.com/spf13/pflag"

	"github.com/kart-io/content-center/pkg/options"
)

var _ options.IOptions = (*Options)(nil)

// Store backends.
const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
)

// Options defines configuration options for the token store.
type Options struct {
	// Backend selects the token store implementation: memory or redis.
	Backend string `json:"backend" mapstructure:"backend"`
	// TokenTTL bounds token validity after issuance. Zero means tokens
	// never expire, matching the reference deployment.
	TokenTTL time.Duration `json:"token-ttl" mapstructure:"token-ttl"`
}

// NewOptions creates a new Options object with default values.
func NewOptions() *Options {
	return &Options{
		Backend:  BackendMemory,
		TokenTTL: 0,
	}
}

// AddFlags adds flags for auth options to the specified FlagSet.
func (o *Options) AddFlags(fs *pflag.FlagSet, prefixes ...string) {
	fs.StringVar(&o.Backend, options.Join(prefixes...)+"auth.backend", o.Backend, "Token store backend: memory or redis.")
	fs.DurationVar(&o.TokenTTL, options.Join(prefixes...)+"auth.token-ttl", o.TokenTTL, "Token validity after issuance; 0 disables expiry.")
}

// Validate validates the auth options.
func (o *Options) Validate() []error {
	if o == nil {
		return nil
	}

	var errs []error

	switch o.Backend {
	case BackendMemory, BackendRedis:
	default:
		errs = append(errs, fmt.Errorf("auth.backend must be %q or %q", BackendMemory, BackendRedis))
	}
	if o.TokenTTL < 0 {
		errs = append(errs, fmt.Errorf("auth.token-ttl cannot be negative"))
	}

	return errs
}
