package db

import (
	"context"

	"github.com/gnames/metroreg/pkg/config"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Operator defines basic PostgreSQL management operations. It exposes the
// pgxpool.Pool so the sink can use CopyFrom for bulk inserts.
type Operator interface {
	// Connect establishes a connection pool to the database.
	Connect(context.Context, *config.DatabaseConfig) error

	// Close closes the database connection pool.
	Close() error

	// Pool returns the underlying pgxpool.Pool.
	Pool() *pgxpool.Pool

	// TableExists checks if a table exists in the given schema.
	TableExists(ctx context.Context, schema, table string) (bool, error)

	// CreateSchema creates a schema unless it exists already.
	CreateSchema(ctx context.Context, schema string) error

	// DropTable drops a table of the schema if it exists.
	DropTable(ctx context.Context, schema, table string) error
}
