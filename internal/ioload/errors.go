package ioload

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/metroreg/pkg/errcode"
)

// NoIterationsError is returned when the sweep settings produce no
// requests for a dataset.
func NoIterationsError(dataset string) error {
	msg := `Nothing to load for <em>%s</em>

Check sweep settings: years, sex codes and age group codes
must not be empty.`

	return &gn.Error{
		Code: errcode.LoadNoIterationsError,
		Msg:  msg,
		Vars: []any{dataset},
		Err:  fmt.Errorf("no iterations for dataset %s", dataset),
	}
}

// AllIterationsFailedError is returned when no request of a dataset
// sweep succeeded. Existing tables are left untouched.
func AllIterationsFailedError(dataset string, count int) error {
	msg := `All %d requests for <em>%s</em> failed, tables are not replaced

Check the log file for details.`

	return &gn.Error{
		Code: errcode.LoadAllIterationsFailedError,
		Msg:  msg,
		Vars: []any{count, dataset},
		Err: fmt.Errorf("all %d iterations of %s failed",
			count, dataset),
	}
}

// CancelledError is returned when the context is cancelled between
// iterations.
func CancelledError(err error) error {
	return &gn.Error{
		Code: errcode.LoadCancelledError,
		Msg:  "Load was cancelled",
		Err:  fmt.Errorf("load cancelled: %w", err),
	}
}

// UnknownDatasetError is returned for a dataset name that is not
// supported.
func UnknownDatasetError(name string, known []string) error {
	msg := "Unknown dataset <em>%s</em>, use one of: %v"
	return &gn.Error{
		Code: errcode.LoadUnknownDatasetError,
		Msg:  msg,
		Vars: []any{name, known},
		Err:  fmt.Errorf("unknown dataset %q", name),
	}
}
