package eurostat

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Response is a decoded JSON-stat dataset. Only the fields metroreg uses
// are kept.
type Response struct {
	// Label is the human readable title of the dataset.
	Label string `json:"label"`

	// Dimension maps dimension IDs (for example "metroreg", "time") to
	// their descriptions.
	Dimension map[string]Dimension `json:"dimension"`

	// Value maps the stringified flat ordinal position of a cell to its
	// measurement. Missing positions and null entries are unreported
	// measurements.
	Value map[string]*float64 `json:"value"`
}

// Dimension describes one dimension of a dataset.
type Dimension struct {
	Label    string    `json:"label"`
	Category *Category `json:"category"`
}

// Category holds the members of a dimension.
type Category struct {
	// Index maps member codes to ordinal positions.
	Index *Index `json:"index"`

	// Label maps member codes to display names.
	Label map[string]string `json:"label"`
}

// Index keeps the code to ordinal mapping of a category together with the
// order in which codes appeared in the document.
type Index struct {
	Codes    []string
	Ordinals map[string]int
}

// UnmarshalJSON accepts both JSON-stat forms of a category index: an
// object of code to ordinal, or an array of codes where the ordinal is
// the position in the array.
func (idx *Index) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}

	idx.Codes = nil
	idx.Ordinals = make(map[string]int)

	switch tok {
	case json.Delim('{'):
		for dec.More() {
			keyTok, err := dec.Token()
			if err != nil {
				return err
			}
			code, ok := keyTok.(string)
			if !ok {
				return fmt.Errorf("unexpected index key %v", keyTok)
			}
			var ord int
			if err = dec.Decode(&ord); err != nil {
				return fmt.Errorf("index of %q: %w", code, err)
			}
			idx.add(code, ord)
		}
	case json.Delim('['):
		var i int
		for dec.More() {
			var code string
			if err = dec.Decode(&code); err != nil {
				return fmt.Errorf("index element %d: %w", i, err)
			}
			idx.add(code, i)
			i++
		}
	default:
		return fmt.Errorf("category index must be an object or array, got %v", tok)
	}

	return nil
}

func (idx *Index) add(code string, ord int) {
	if _, ok := idx.Ordinals[code]; !ok {
		idx.Codes = append(idx.Codes, code)
	}
	idx.Ordinals[code] = ord
}

// Category returns the category of a dimension, or nil if the response
// does not carry it.
func (r *Response) Category(dim string) *Category {
	if r == nil || r.Dimension == nil {
		return nil
	}
	d, ok := r.Dimension[dim]
	if !ok {
		return nil
	}
	return d.Category
}
