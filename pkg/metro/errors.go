package metro

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/metroreg/pkg/errcode"
)

// DataContractError is returned when a response does not have the shape
// the extractors rely on.
func DataContractError(format string, vars ...any) error {
	detail := fmt.Sprintf(format, vars...)
	msg := "Unexpected response structure: <em>%s</em>"

	return &gn.Error{
		Code: errcode.ExtractDataContractError,
		Msg:  msg,
		Vars: []any{detail},
		Err:  fmt.Errorf("data contract violation: %s", detail),
	}
}
