// Package iosqlite stores metro tables in a SQLite file.
package iosqlite

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	"github.com/gnames/metroreg/internal/iodb"
	"github.com/gnames/metroreg/pkg/config"
	"github.com/gnames/metroreg/pkg/metro"
	"github.com/gnames/metroreg/pkg/schema"
	_ "modernc.org/sqlite"
)

// maxVars is the limit of bound parameters in one SQLite statement.
const maxVars = 32766

type sqliteSink struct {
	path      string
	batchSize int
	db        *sql.DB
}

// NewSink creates a sink for the SQLite file of the configuration. An
// empty Database.Path means the default file in the data directory.
func NewSink(cfg *config.Config) metro.Sink {
	path := cfg.Database.Path
	if path == "" {
		path = config.SQLitePath(cfg.HomeDir)
	}
	return &sqliteSink{
		path:      path,
		batchSize: max(cfg.Database.BatchSize, 1),
	}
}

// Open opens the SQLite file, creating it if needed.
func (s *sqliteSink) Open(ctx context.Context) error {
	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return OpenError(s.path, err)
	}
	// one writer at a time
	db.SetMaxOpenConns(1)

	if err = db.PingContext(ctx); err != nil {
		db.Close()
		return OpenError(s.path, err)
	}
	s.db = db
	return nil
}

// Replace writes regions and then values of a dataset. Each table is
// replaced inside its own transaction.
func (s *sqliteSink) Replace(
	ctx context.Context,
	d metro.Dataset,
	t metro.Tables,
) error {
	if s.db == nil {
		return iodb.NotConnectedError()
	}

	regionModel, valueModel := schema.Models(d)
	err := s.replaceTable(
		ctx, d.RegionsTable, regionModel, schema.RegionRecords(t.Regions),
	)
	if err != nil {
		return err
	}
	return s.replaceTable(
		ctx, d.ValuesTable, valueModel, schema.ValueRecords(d, t.Values),
	)
}

func (s *sqliteSink) replaceTable(
	ctx context.Context,
	table string,
	model any,
	records []any,
) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return iodb.WriteRowsError(table, err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, "DROP TABLE IF EXISTS "+table); err != nil {
		return iodb.DropTableError(table, err)
	}
	if _, err = tx.ExecContext(ctx, schema.TableDDL(model, table)); err != nil {
		return iodb.CreateTableError(table, err)
	}

	columns := schema.Columns(model)
	batch := min(s.batchSize, maxVars/len(columns))
	for start := 0; start < len(records); start += batch {
		end := min(start+batch, len(records))
		q, args := insertQuery(table, columns, records[start:end])
		if _, err = tx.ExecContext(ctx, q, args...); err != nil {
			return iodb.WriteRowsError(table, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return iodb.WriteRowsError(table, err)
	}

	slog.Info("Replaced table",
		"table", table,
		"rows", len(records),
		"file", s.path,
	)
	return nil
}

// insertQuery builds a multi-row INSERT for a batch of records.
func insertQuery(table string, columns []string, records []any) (string, []any) {
	row := "(" + strings.TrimSuffix(strings.Repeat("?,", len(columns)), ",") + ")"
	rows := make([]string, len(records))
	args := make([]any, 0, len(records)*len(columns))
	for i, v := range records {
		rows[i] = row
		args = append(args, schema.Row(v)...)
	}
	q := fmt.Sprintf("INSERT INTO %s (%s) VALUES %s",
		table, strings.Join(columns, ", "), strings.Join(rows, ", "))
	return q, args
}

// Close closes the SQLite file.
func (s *sqliteSink) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}
