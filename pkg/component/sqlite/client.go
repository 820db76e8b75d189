// Package sqlite provides a GORM client over the pure-Go SQLite driver.
package sqlite

import (
	"context"
	"fmt"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	sqliteopts "github.com/kart-io/content-center/pkg/options/sqlite"
)

// Client wraps gorm.DB for the SQLite datastore.
//
// Example usage:
//
//	opts := sqliteopts.NewOptions()
//	client, err := New(opts)
//	if err != nil {
//	    log.Fatalf("failed to create sqlite client: %v", err)
//	}
//	defer client.Close()
//
//	db := client.DB()
//	db.AutoMigrate(&Article{})
type Client struct {
	db   *gorm.DB
	opts *sqliteopts.Options
}

// New creates a new SQLite client from the provided options.
func New(opts *sqliteopts.Options) (*Client, error) {
	return NewWithContext(context.Background(), opts)
}

// NewWithContext creates a new SQLite client with context support.
// The context bounds the initial ping.
func NewWithContext(ctx context.Context, opts *sqliteopts.Options) (*Client, error) {
	if opts == nil {
		return nil, fmt.Errorf("sqlite options cannot be nil")
	}
	if errs := opts.Validate(); len(errs) > 0 {
		return nil, fmt.Errorf("invalid sqlite options: %v", errs)
	}

	var logLevel logger.LogLevel
	switch opts.LogLevel {
	case 2:
		logLevel = logger.Error
	case 3:
		logLevel = logger.Warn
	case 4:
		logLevel = logger.Info
	default:
		logLevel = logger.Silent
	}

	db, err := gorm.Open(sqlite.Open(opts.Path), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if opts.MaxIdleConnections > 0 {
		sqlDB.SetMaxIdleConns(opts.MaxIdleConnections)
	}
	if opts.MaxOpenConnections > 0 {
		sqlDB.SetMaxOpenConns(opts.MaxOpenConnections)
	}
	if opts.MaxConnectionLifeTime > 0 {
		sqlDB.SetConnMaxLifetime(opts.MaxConnectionLifeTime)
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping sqlite database: %w", err)
	}

	return &Client{db: db, opts: opts}, nil
}

// DB returns the underlying GORM database.
func (c *Client) DB() *gorm.DB {
	return c.db
}

// Close closes the database connection.
func (c *Client) Close() error {
	sqlDB, err := c.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Ping verifies the connection is alive.
func (c *Client) Ping(ctx context.Context) error {
	sqlDB, err := c.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
