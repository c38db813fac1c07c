// Package eurostat describes the part of the Eurostat dissemination API
// (JSON-stat 2.0 responses) that metroreg relies on.
//
// The package is pure: it builds request URLs and decodes response bodies,
// but never performs I/O.
package eurostat

import (
	"net/url"
	"strings"
)

// DefaultBaseURL is the root of the statistics data endpoint. Dataset
// codes are appended to it as a path segment.
const DefaultBaseURL = "https://ec.europa.eu/eurostat/api/dissemination/statistics/1.0/data"

// MetroRegDim is the dimension that enumerates metropolitan regions.
const MetroRegDim = "metroreg"

// Param is a single query parameter. Parameters are kept in a slice so
// that generated URLs keep the order they were declared in.
type Param struct {
	Key   string
	Value string
}

// URL builds a request URL for a dataset. The query always starts with
// format=JSON and ends with the lang parameter.
func URL(baseURL, datasetID, lang string, params []Param) string {
	var sb strings.Builder
	sb.WriteString(strings.TrimSuffix(baseURL, "/"))
	sb.WriteString("/")
	sb.WriteString(url.PathEscape(datasetID))
	sb.WriteString("?format=JSON")
	for _, p := range params {
		sb.WriteString("&")
		sb.WriteString(url.QueryEscape(p.Key))
		sb.WriteString("=")
		sb.WriteString(url.QueryEscape(p.Value))
	}
	if lang != "" {
		sb.WriteString("&lang=")
		sb.WriteString(url.QueryEscape(lang))
	}
	return sb.String()
}
