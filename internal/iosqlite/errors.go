package iosqlite

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/metroreg/pkg/errcode"
)

// OpenError is returned when the SQLite file cannot be opened.
func OpenError(path string, err error) error {
	return &gn.Error{
		Code: errcode.DBConnectionError,
		Msg:  "Cannot open SQLite database <em>%s</em>",
		Vars: []any{path},
		Err:  fmt.Errorf("open sqlite %s: %w", path, err),
	}
}
