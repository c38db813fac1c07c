// Package schema provides database schema models for metroreg.
package schema

import (
	"database/sql"

	"github.com/gnames/metroreg/pkg/metro"
)

// Region is a row of a regions table.
type Region struct {
	// RegionCode is the stable region identifier, e.g. "AT001".
	RegionCode string `db:"region_code" ddl:"TEXT NOT NULL" gorm:"column:region_code;not null"`

	// OrdinalIndex is the position of the region in the API response the
	// row was first seen in.
	OrdinalIndex int64 `db:"ordinal_index" ddl:"INTEGER NOT NULL" gorm:"column:ordinal_index;not null"`

	// RegionLabel is the display name of the region.
	RegionLabel string `db:"region_label" ddl:"TEXT" gorm:"column:region_label"`
}

// AreaValue is a row of the area table.
type AreaValue struct {
	RegionCode  string `db:"region_code" ddl:"TEXT NOT NULL" gorm:"column:region_code;not null"`
	RegionLabel string `db:"region_label" ddl:"TEXT" gorm:"column:region_label"`

	// AreaInKm2 is the total area in square kilometers.
	AreaInKm2 float64 `db:"area_in_km2" ddl:"REAL" gorm:"column:area_in_km2;type:double precision"`

	Year int64 `db:"year" ddl:"INTEGER NOT NULL" gorm:"column:year;not null"`
}

// PopulationValue is a row of the population table.
type PopulationValue struct {
	RegionCode  string `db:"region_code" ddl:"TEXT NOT NULL" gorm:"column:region_code;not null"`
	RegionLabel string `db:"region_label" ddl:"TEXT" gorm:"column:region_label"`

	// Population is the number of persons on 1 January.
	Population float64 `db:"population" ddl:"REAL" gorm:"column:population;type:double precision"`

	Year int64 `db:"year" ddl:"INTEGER NOT NULL" gorm:"column:year;not null"`

	// Sex is "Total", "Male" or "Female"; NULL when the API code was not
	// recognized.
	Sex sql.NullString `db:"sex" ddl:"TEXT" gorm:"column:sex"`

	// AgeGroup is the Eurostat age band code.
	AgeGroup string `db:"age_group" ddl:"TEXT" gorm:"column:age_group"`
}

// Models returns empty models of the regions and values tables of a
// dataset.
func Models(d metro.Dataset) (regions any, values any) {
	if d.WithSexAge {
		return &Region{}, &PopulationValue{}
	}
	return &Region{}, &AreaValue{}
}

// RegionRecords converts a region table to models.
func RegionRecords(rt metro.RegionTable) []any {
	res := make([]any, len(rt))
	for i, v := range rt {
		res[i] = Region{
			RegionCode:   v.Code,
			OrdinalIndex: int64(v.Ordinal),
			RegionLabel:  v.Label,
		}
	}
	return res
}

// ValueRecords converts a value table to the models of the dataset.
func ValueRecords(d metro.Dataset, vt metro.ValueTable) []any {
	res := make([]any, len(vt))
	for i, v := range vt {
		if !d.WithSexAge {
			res[i] = AreaValue{
				RegionCode:  v.RegionCode,
				RegionLabel: v.RegionLabel,
				AreaInKm2:   v.Value,
				Year:        int64(v.Year),
			}
			continue
		}
		res[i] = PopulationValue{
			RegionCode:  v.RegionCode,
			RegionLabel: v.RegionLabel,
			Population:  v.Value,
			Year:        int64(v.Year),
			Sex:         sql.NullString{String: v.Sex, Valid: v.Sex != ""},
			AgeGroup:    v.AgeGroup,
		}
	}
	return res
}
