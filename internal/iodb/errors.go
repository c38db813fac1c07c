package iodb

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/metroreg/pkg/errcode"
)

// ConnectionError is returned when database connection fails.
func ConnectionError(
	host string, port int, database, user string, err error,
) error {
	msg := `Cannot connect to PostgreSQL database <em>%s</em> at %s:%d as %s.
Check that PostgreSQL is running and the database exists:
  <em>pg_isready -h %s -p %d</em>`
	return &gn.Error{
		Code: errcode.DBConnectionError,
		Msg:  msg,
		Vars: []any{database, host, port, user, host, port},
		Err: fmt.Errorf("failed to connect to %s:%d/%s: %w",
			host, port, database, err),
	}
}

// NotConnectedError is returned when an operation runs before Connect.
func NotConnectedError() error {
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  "Database is not connected",
		Err:  fmt.Errorf("from %s: no connection pool", fn.Name()),
	}
}

func TableExistsCheckError(table string, err error) error {
	return &gn.Error{
		Code: errcode.DBTableExistsCheckError,
		Msg:  "Cannot check if table <em>%s</em> exists",
		Vars: []any{table},
		Err:  fmt.Errorf("table exists check %s: %w", table, err),
	}
}

func CreateSchemaError(schema string, err error) error {
	return &gn.Error{
		Code: errcode.DBCreateSchemaError,
		Msg:  "Cannot create schema <em>%s</em>",
		Vars: []any{schema},
		Err:  fmt.Errorf("create schema %s: %w", schema, err),
	}
}

func DropTableError(table string, err error) error {
	return &gn.Error{
		Code: errcode.DBDropTableError,
		Msg:  "Cannot drop table <em>%s</em>",
		Vars: []any{table},
		Err:  fmt.Errorf("drop table %s: %w", table, err),
	}
}

func CreateTableError(table string, err error) error {
	return &gn.Error{
		Code: errcode.DBCreateTableError,
		Msg:  "Cannot create table <em>%s</em>",
		Vars: []any{table},
		Err:  fmt.Errorf("create table %s: %w", table, err),
	}
}

func WriteRowsError(table string, err error) error {
	return &gn.Error{
		Code: errcode.DBWriteRowsError,
		Msg:  "Cannot write rows to <em>%s</em>",
		Vars: []any{table},
		Err:  fmt.Errorf("write rows %s: %w", table, err),
	}
}

// UnknownBackendError is returned for a storage backend that has no sink.
func UnknownBackendError(backend string) error {
	return &gn.Error{
		Code: errcode.DBUnknownBackendError,
		Msg:  "Unknown database backend <em>%s</em>",
		Vars: []any{backend},
		Err:  fmt.Errorf("unknown backend %q", backend),
	}
}
