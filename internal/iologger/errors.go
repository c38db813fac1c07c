package iologger

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/metroreg/pkg/errcode"
)

// CreateLogFileError is returned when metroreg.log cannot be opened for
// appending.
func CreateLogFileError(path string, err error) error {
	msg := `Cannot open log file <em>%s</em>
Set log.destination to "stderr" to log without a file.`
	return &gn.Error{
		Code: errcode.CreateLogFileError,
		Msg:  msg,
		Vars: []any{path},
		Err:  fmt.Errorf("open log file %s: %w", path, err),
	}
}
