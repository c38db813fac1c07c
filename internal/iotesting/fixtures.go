package iotesting

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
)

// Region is a region code with its label, in the order of the response
// index.
type Region struct {
	Code  string
	Label string
}

// ResponseJSON builds a dissemination API body with a metroreg dimension
// made of regions and a sparse value mapping keyed by ordinal.
func ResponseJSON(regions []Region, values map[int]float64) string {
	var idx []string
	labels := make(map[string]string, len(regions))
	for i, v := range regions {
		idx = append(idx, fmt.Sprintf("%q:%d", v.Code, i))
		labels[v.Code] = v.Label
	}
	lbl, _ := json.Marshal(labels)

	vals := make(map[string]float64, len(values))
	for k, v := range values {
		vals[strconv.Itoa(k)] = v
	}
	val, _ := json.Marshal(vals)

	return fmt.Sprintf(
		`{"label":"test","dimension":{"metroreg":{"label":"Metropolitan regions",`+
			`"category":{"index":{%s},"label":%s}}},"value":%s}`,
		strings.Join(idx, ","), lbl, val,
	)
}

// ErrorJSON builds a dissemination API error body.
func ErrorJSON(status int, label string) string {
	return fmt.Sprintf(
		`{"error":[{"status":%d,"id":100,"label":%q}]}`, status, label,
	)
}

// Handler returns the status and body for a request.
type Handler func(r *http.Request) (int, string)

// NewAPIServer starts an HTTP server that answers with h. The server is
// closed when the test finishes.
func NewAPIServer(t *testing.T, h Handler) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			status, body := h(r)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(status)
			_, _ = w.Write([]byte(body))
		}))
	t.Cleanup(srv.Close)
	return srv
}
