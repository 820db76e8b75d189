// Package sqlite provides SQLite configuration options.
package sqlite

import (
	"fmt"
	"time"

	"github.com/spf13/pflag"

	"github.com/kart-io/content-center/pkg/options"
)

var _ options.IOptions = (*Options)(nil)

// InMemoryDSN is the shared in-memory database. The shared cache keeps
// every connection of the pool on the same database, which matters because
// a plain ":memory:" DSN gives each pooled connection its own empty store.
const InMemoryDSN = "file::memory:?cache=shared"

// Options defines configuration options for SQLite.
type Options struct {
	// Path is the database file path, or InMemoryDSN for a process-lifetime store.
	Path string `json:"path" mapstructure:"path"`
	// MaxOpenConnections caps the connection pool.
	MaxOpenConnections int `json:"max-open-connections" mapstructure:"max-open-connections"`
	// MaxIdleConnections caps idle pooled connections.
	MaxIdleConnections int `json:"max-idle-connections" mapstructure:"max-idle-connections"`
	// MaxConnectionLifeTime bounds how long a pooled connection is reused.
	MaxConnectionLifeTime time.Duration `json:"max-connection-life-time" mapstructure:"max-connection-life-time"`
	// LogLevel selects gorm logging: 1 silent, 2 error, 3 warn, 4 info.
	LogLevel int `json:"log-level" mapstructure:"log-level"`
}

// NewOptions creates a new Options object with default values.
func NewOptions() *Options {
	return &Options{
		Path:                  InMemoryDSN,
		MaxOpenConnections:    10,
		MaxIdleConnections:    5,
		MaxConnectionLifeTime: time.Hour,
		LogLevel:              1,
	}
}

// AddFlags adds flags for SQLite options to the specified FlagSet.
func (o *Options) AddFlags(fs *pflag.FlagSet, prefixes ...string) {
	fs.StringVar(&o.Path, options.Join(prefixes...)+"sqlite.path", o.Path, "SQLite database path, or the shared in-memory DSN.")
	fs.IntVar(&o.MaxOpenConnections, options.Join(prefixes...)+"sqlite.max-open-connections", o.MaxOpenConnections, "Maximum open connections to the database.")
	fs.IntVar(&o.MaxIdleConnections, options.Join(prefixes...)+"sqlite.max-idle-connections", o.MaxIdleConnections, "Maximum idle connections in the pool.")
	fs.DurationVar(&o.MaxConnectionLifeTime, options.Join(prefixes...)+"sqlite.max-connection-life-time", o.MaxConnectionLifeTime, "Maximum lifetime of a pooled connection.")
	fs.IntVar(&o.LogLevel, options.Join(prefixes...)+"sqlite.log-level", o.LogLevel, "GORM log level: 1 silent, 2 error, 3 warn, 4 info.")
}

// Validate validates the SQLite options.
func (o *Options) Validate() []error {
	if o == nil {
		return nil
	}

	var errs []error

	if o.Path == "" {
		errs = append(errs, fmt.Errorf("sqlite.path cannot be empty"))
	}
	if o.LogLevel < 1 || o.LogLevel > 4 {
		errs = append(errs, fmt.Errorf("sqlite.log-level must be between 1 and 4"))
	}

	return errs
}

// String returns a string representation.
func (o *Options) String() string {
	return fmt.Sprintf("SQLite{path=%s, max-open=%d}", o.Path, o.MaxOpenConnections)
}
