// Package iodb implements PostgreSQL operations using pgxpool.
// This is an impure I/O package that implements contracts
// defined in pkg/.
package iodb

import (
	"context"
	"net"
	"net/url"
	"strconv"

	"github.com/gnames/metroreg/pkg/config"
	"github.com/gnames/metroreg/pkg/db"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// pgxOperator implements db.Operator interface using
// pgxpool for connection pooling.
type pgxOperator struct {
	pool *pgxpool.Pool
}

// NewPgxOperator creates a new database operator
// (without connecting).
func NewPgxOperator() db.Operator {
	return &pgxOperator{}
}

// Connect establishes a connection pool to PostgreSQL.
func (p *pgxOperator) Connect(
	ctx context.Context,
	cfg *config.DatabaseConfig,
) error {
	poolConfig, err := pgxpool.ParseConfig(DSN(cfg))
	if err != nil {
		return ConnectionError(cfg.Host, cfg.Port,
			cfg.Database, cfg.User, err)
	}

	// The load is sequential, a couple of connections is enough.
	poolConfig.MaxConns = 4
	poolConfig.MinConns = 1

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return ConnectionError(cfg.Host, cfg.Port,
			cfg.Database, cfg.User, err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return ConnectionError(cfg.Host, cfg.Port,
			cfg.Database, cfg.User, err)
	}

	p.pool = pool
	return nil
}

// DSN builds a PostgreSQL connection URL. User and password are escaped,
// so they may contain characters such as '@', '/' or '#'.
func DSN(cfg *config.DatabaseConfig) string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(cfg.User, cfg.Password),
		Host:     net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		Path:     "/" + cfg.Database,
		RawQuery: url.Values{"sslmode": {cfg.SSLMode}}.Encode(),
	}
	return u.String()
}

// Close releases all database connections.
func (p *pgxOperator) Close() error {
	if p.pool != nil {
		p.pool.Close()
		p.pool = nil
	}
	return nil
}

// Pool returns the underlying pgxpool.Pool for advanced
// operations.
func (p *pgxOperator) Pool() *pgxpool.Pool {
	return p.pool
}

// TableExists checks if a table exists in a schema of the current
// database.
func (p *pgxOperator) TableExists(
	ctx context.Context,
	schema, table string,
) (bool, error) {
	if p.pool == nil {
		return false, NotConnectedError()
	}

	query := `
		SELECT EXISTS (
			SELECT FROM information_schema.tables
			WHERE table_schema = $1
			AND table_name = $2
		)
	`

	var exists bool
	err := p.pool.QueryRow(ctx, query, schema, table).Scan(&exists)
	if err != nil {
		return false, TableExistsCheckError(table, err)
	}

	return exists, nil
}

// CreateSchema creates a schema if it does not exist.
func (p *pgxOperator) CreateSchema(ctx context.Context, schema string) error {
	if p.pool == nil {
		return NotConnectedError()
	}

	q := "CREATE SCHEMA IF NOT EXISTS " + pgx.Identifier{schema}.Sanitize()
	if _, err := p.pool.Exec(ctx, q); err != nil {
		return CreateSchemaError(schema, err)
	}
	return nil
}

// DropTable drops a table with CASCADE if it exists.
func (p *pgxOperator) DropTable(
	ctx context.Context,
	schema, table string,
) error {
	if p.pool == nil {
		return NotConnectedError()
	}

	q := "DROP TABLE IF EXISTS " +
		pgx.Identifier{schema, table}.Sanitize() + " CASCADE"
	if _, err := p.pool.Exec(ctx, q); err != nil {
		return DropTableError(table, err)
	}
	return nil
}
