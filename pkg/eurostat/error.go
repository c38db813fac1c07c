package eurostat

import (
	"encoding/json"
	"strings"
)

// errorItem is an element of the error payload the API returns with
// non-2xx responses.
type errorItem struct {
	Status json.RawMessage `json:"status"`
	ID     json.RawMessage `json:"id"`
	Label  string          `json:"label"`
}

// ErrorMessage extracts the human readable message from an API error
// body. The API has used both a single object and a list of objects under
// the "error" key. Returns an empty string if nothing usable is found.
func ErrorMessage(body []byte) string {
	var payload struct {
		Error json.RawMessage `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err != nil || len(payload.Error) == 0 {
		return ""
	}

	var items []errorItem
	if err := json.Unmarshal(payload.Error, &items); err != nil {
		var item errorItem
		if err = json.Unmarshal(payload.Error, &item); err != nil {
			return ""
		}
		items = []errorItem{item}
	}

	var labels []string
	for _, v := range items {
		if v.Label != "" {
			labels = append(labels, v.Label)
		}
	}
	return strings.Join(labels, "; ")
}
