package iodb

import (
	"context"
	"log/slog"

	"github.com/gnames/metroreg/pkg/config"
	"github.com/gnames/metroreg/pkg/db"
	"github.com/gnames/metroreg/pkg/metro"
	"github.com/gnames/metroreg/pkg/schema"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type pgSink struct {
	cfg    config.DatabaseConfig
	op     db.Operator
	gormDB *gorm.DB
}

// NewSink creates a PostgreSQL sink. Tables are dropped and created
// with GORM, rows are loaded with COPY.
func NewSink(cfg config.DatabaseConfig) metro.Sink {
	return &pgSink{cfg: cfg, op: NewPgxOperator()}
}

// Open connects to PostgreSQL and prepares a GORM handle on the same
// pool.
func (s *pgSink) Open(ctx context.Context) error {
	if err := s.op.Connect(ctx, &s.cfg); err != nil {
		return err
	}

	sqlDB := stdlib.OpenDBFromPool(s.op.Pool())
	gormDB, err := gorm.Open(
		postgres.New(postgres.Config{Conn: sqlDB}),
		&gorm.Config{Logger: logger.Default.LogMode(logger.Silent)},
	)
	if err != nil {
		s.op.Close()
		return ConnectionError(s.cfg.Host, s.cfg.Port,
			s.cfg.Database, s.cfg.User, err)
	}
	s.gormDB = gormDB
	return nil
}

// Replace writes regions and then values of a dataset into the
// configured schema.
func (s *pgSink) Replace(
	ctx context.Context,
	d metro.Dataset,
	t metro.Tables,
) error {
	if s.gormDB == nil {
		return NotConnectedError()
	}

	if err := s.op.CreateSchema(ctx, s.cfg.Schema); err != nil {
		return err
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

func (s *pgSink) replaceTable(
	ctx context.Context,
	table string,
	model any,
	records []any,
) error {
	exists, err := s.op.TableExists(ctx, s.cfg.Schema, table)
	if err != nil {
		return err
	}

	if err = s.op.DropTable(ctx, s.cfg.Schema, table); err != nil {
		return err
	}

	qualified := s.cfg.Schema + "." + table
	if err = schema.Migrate(s.gormDB.WithContext(ctx), model, qualified); err != nil {
		return CreateTableError(qualified, err)
	}

	columns := schema.Columns(model)
	batchSize := max(s.cfg.BatchSize, 1)
	var total int64
	for start := 0; start < len(records); start += batchSize {
		end := min(start+batchSize, len(records))
		rows := make([][]any, 0, end-start)
		for _, v := range records[start:end] {
			rows = append(rows, schema.Row(v))
		}

		n, err := s.op.Pool().CopyFrom(
			ctx,
			pgx.Identifier{s.cfg.Schema, table},
			columns,
			pgx.CopyFromRows(rows),
		)
		if err != nil {
			return WriteRowsError(qualified, err)
		}
		total += n
	}

	slog.Info("Replaced table",
		"table", qualified,
		"existed", exists,
		"rows", total,
	)
	return nil
}

// Close releases the connection pool.
func (s *pgSink) Close() error {
	s.gormDB = nil
	return s.op.Close()
}
