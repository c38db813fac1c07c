// Package metro turns Eurostat metropolitan region responses into flat
// region and value tables.
//
// This package has no I/O dependencies. Fetching and persistence are
// described by the Fetcher and Sink interfaces and implemented in
// internal packages.
package metro

import (
	"strconv"

	"github.com/gnames/metroreg/pkg/eurostat"
)

// Dataset describes one Eurostat dataset that metroreg knows how to load.
type Dataset struct {
	// Name is the short name used on the command line.
	Name string

	// ID is the Eurostat dataset code.
	ID string

	// MeasureColumn is the column name of the measured value.
	MeasureColumn string

	// RegionsTable is the name of the persisted region table.
	RegionsTable string

	// ValuesTable is the name of the persisted value table.
	ValuesTable string

	// WithSexAge is true when the dataset has sex and age group
	// dimensions that are swept and persisted.
	WithSexAge bool

	// fixed are query parameters that do not change across the sweep.
	fixed []eurostat.Param
}

var (
	// Area is the 'Area of the regions by metropolitan regions' dataset.
	Area = Dataset{
		Name:          "area",
		ID:            "met_d3area",
		MeasureColumn: "area_in_km2",
		RegionsTable:  "metropolitan_regions",
		ValuesTable:   "metropolitan_area",
		fixed: []eurostat.Param{
			{Key: "unit", Value: "KM2"},
			{Key: "landuse", Value: "TOTAL"},
		},
	}

	// Population is the 'Population on 1 January by broad age group, sex
	// and metropolitan regions' dataset.
	Population = Dataset{
		Name:          "population",
		ID:            "met_pjangrp3",
		MeasureColumn: "population",
		RegionsTable:  "metropolitan_population_regions",
		ValuesTable:   "metropolitan_population",
		WithSexAge:    true,
		fixed: []eurostat.Param{
			{Key: "unit", Value: "NR"},
		},
	}
)

// Datasets returns all known datasets in load order.
func Datasets() []Dataset {
	return []Dataset{Area, Population}
}

// DatasetByName finds a dataset by its short name.
func DatasetByName(name string) (Dataset, bool) {
	for _, v := range Datasets() {
		if v.Name == name {
			return v, true
		}
	}
	return Dataset{}, false
}

// URL builds the request URL of one sweep iteration.
func (d Dataset) URL(baseURL, lang string, it Iteration) string {
	params := []eurostat.Param{{Key: "time", Value: strconv.Itoa(it.Year)}}
	params = append(params, d.fixed...)
	if d.WithSexAge {
		params = append(params,
			eurostat.Param{Key: "sex", Value: it.Sex},
			eurostat.Param{Key: "age", Value: it.AgeGroup},
		)
	}
	return eurostat.URL(baseURL, d.ID, lang, params)
}
