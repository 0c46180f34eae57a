package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	platformconfig "github.com/gojobly/jobly/internal/platform/config"
)

// Client wraps sqlx.DB and provides connection pooling, health checks, and
// transaction management for the single PostgreSQL backend.
type Client struct {
	db *sqlx.DB
}

// NewClient creates a new PostgreSQL client wrapper
func NewClient(ctx context.Context, config *platformconfig.PostgreSQLConfig) (*Client, error) {
	connStr := buildConnectionString(config)

	db, err := sqlx.ConnectContext(ctx, "postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}

	// Configure connection pool
	if config.MaxOpenConns > 0 {
		db.SetMaxOpenConns(config.MaxOpenConns)
	}
	if config.MaxIdleConns > 0 {
		db.SetMaxIdleConns(config.MaxIdleConns)
	}
	if config.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(config.ConnMaxLifetime)
	}

	// Test the connection
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping PostgreSQL: %w", err)
	}

	return &Client{db: db}, nil
}

// buildConnectionString builds PostgreSQL connection string from config
func buildConnectionString(config *platformconfig.PostgreSQLConfig) string {
	var parts []string

	parts = append(parts, fmt.Sprintf("host=%s", config.Host))
	parts = append(parts, fmt.Sprintf("port=%d", config.Port))
	parts = append(parts, fmt.Sprintf("dbname=%s", config.Database))

	if config.Username != "" {
		parts = append(parts, fmt.Sprintf("user=%s", config.Username))
	}

	if config.Password != "" {
		parts = append(parts, fmt.Sprintf("password=%s", config.Password))
	}

	parts = append(parts, fmt.Sprintf("sslmode=%s", config.SSLMode))

	return strings.Join(parts, " ")
}

// DB returns the underlying *sqlx.DB connection
func (c *Client) DB() *sqlx.DB {
	return c.db
}

// Ping tests the database connection
func (c *Client) Ping(ctx context.Context) error {
	return c.db.PingContext(ctx)
}

// BeginTxx starts a new transaction with the given context
func (c *Client) BeginTxx(ctx context.Context, opts *sql.TxOptions) (*sqlx.Tx, error) {
	return c.db.BeginTxx(ctx, opts)
}

// Close closes the database connection
func (c *Client) Close() error {
	return c.db.Close()
}
