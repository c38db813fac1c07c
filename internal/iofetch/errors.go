package iofetch

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/metroreg/pkg/errcode"
)

// RequestError is returned when a request cannot be built from a URL.
func RequestError(url string, err error) error {
	msg := "Cannot create request for <em>%s</em>"
	return &gn.Error{
		Code: errcode.FetchRequestError,
		Msg:  msg,
		Vars: []any{url},
		Err:  fmt.Errorf("cannot create request: %w", err),
	}
}

// HTTPError is returned for responses with a non-2xx status.
func HTTPError(url string, status int, message string) error {
	msg := "Request to <em>%s</em> failed with status %d: %s"
	return &gn.Error{
		Code: errcode.FetchHTTPError,
		Msg:  msg,
		Vars: []any{url, status, message},
		Err:  fmt.Errorf("http status %d: %s", status, message),
	}
}

// TransportError is returned when the request or the reading of the
// response body fails, timeouts included.
func TransportError(url string, err error) error {
	msg := "Cannot reach <em>%s</em>"
	return &gn.Error{
		Code: errcode.FetchTransportError,
		Msg:  msg,
		Vars: []any{url},
		Err:  fmt.Errorf("transport failure: %w", err),
	}
}

// DecodeError is returned when a 2xx body is not valid JSON.
func DecodeError(url string, err error) error {
	msg := "Cannot decode response from <em>%s</em>"
	return &gn.Error{
		Code: errcode.FetchTransportError,
		Msg:  msg,
		Vars: []any{url},
		Err:  fmt.Errorf("cannot decode json: %w", err),
	}
}
