package metro

import (
	"github.com/gnames/metroreg/pkg/eurostat"
)

// Region is a row of the region table.
type Region struct {
	// Code is the stable region identifier, for example "AT001".
	Code string

	// Ordinal is the position of the region in the flattened value array
	// of the response the row came from.
	Ordinal int

	// Label is the display name of the region.
	Label string
}

// RegionTable is a list of regions in the order they were seen.
type RegionTable []Region

// ExtractRegions converts a category into a region table, one row per
// code, in the order codes appear in the category index.
func ExtractRegions(cat *eurostat.Category) (RegionTable, error) {
	if cat == nil {
		return nil, DataContractError("dimension.metroreg.category is missing")
	}
	if cat.Index == nil {
		return nil, DataContractError("dimension.metroreg.category.index is missing")
	}

	res := make(RegionTable, 0, len(cat.Index.Codes))
	seen := make(map[int]string, len(cat.Index.Codes))
	for _, code := range cat.Index.Codes {
		ord := cat.Index.Ordinals[code]
		if prev, ok := seen[ord]; ok {
			return nil, DataContractError(
				"ordinal %d is shared by %s and %s", ord, prev, code,
			)
		}
		seen[ord] = code
		res = append(res, Region{
			Code:    code,
			Ordinal: ord,
			Label:   cat.Label[code],
		})
	}
	return res, nil
}

// byOrdinal indexes the table by ordinal position.
func (rt RegionTable) byOrdinal() map[int]Region {
	res := make(map[int]Region, len(rt))
	for _, v := range rt {
		res[v.Ordinal] = v
	}
	return res
}

// Dedup returns a copy of the table with repeated region codes removed.
// The first row of every code is kept.
func (rt RegionTable) Dedup() RegionTable {
	res := make(RegionTable, 0, len(rt))
	seen := make(map[string]struct{}, len(rt))
	for _, v := range rt {
		if _, ok := seen[v.Code]; ok {
			continue
		}
		seen[v.Code] = struct{}{}
		res = append(res, v)
	}
	return res
}
