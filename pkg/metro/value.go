package metro

import (
	"slices"
	"strconv"

	"github.com/gnames/metroreg/pkg/eurostat"
)

// ValueRecord is a row of the value table.
type ValueRecord struct {
	// Ordinal is the join key against the region table. It is not
	// persisted.
	Ordinal int

	RegionCode  string
	RegionLabel string

	// Value is the measurement (square kilometers or persons).
	Value float64

	Year int

	// Sex is "Total", "Male" or "Female". It stays empty when the
	// iteration's sex code is not recognized.
	Sex string

	// AgeGroup is the raw Eurostat age band code.
	AgeGroup string
}

// ValueTable is a list of value records in sweep order.
type ValueTable []ValueRecord

var sexLabels = map[string]string{
	"T": "Total",
	"M": "Male",
	"F": "Female",
}

// SexLabel maps a Eurostat sex code to its label. The second value is
// false for codes outside of T, M and F.
func SexLabel(code string) (string, bool) {
	res, ok := sexLabels[code]
	return res, ok
}

// ExtractValues joins the sparse value mapping of a response against its
// region table. The result has one record per present ordinal, sorted by
// ordinal, with the iteration's dimension values attached to every row.
func ExtractValues(
	resp *eurostat.Response,
	regions RegionTable,
	it Iteration,
) (ValueTable, error) {
	if resp == nil || resp.Value == nil {
		return nil, DataContractError("value is missing")
	}

	sex, _ := SexLabel(it.Sex)
	idx := regions.byOrdinal()

	res := make(ValueTable, 0, len(resp.Value))
	for k, v := range resp.Value {
		ord, err := strconv.Atoi(k)
		if err != nil {
			return nil, DataContractError("value key %q is not an ordinal", k)
		}
		if v == nil {
			continue
		}
		region, ok := idx[ord]
		if !ok {
			return nil, DataContractError("value ordinal %d has no region", ord)
		}
		res = append(res, ValueRecord{
			Ordinal:     ord,
			RegionCode:  region.Code,
			RegionLabel: region.Label,
			Value:       *v,
			Year:        it.Year,
			Sex:         sex,
			AgeGroup:    it.AgeGroup,
		})
	}

	slices.SortFunc(res, func(a, b ValueRecord) int {
		return a.Ordinal - b.Ordinal
	})
	return res, nil
}
