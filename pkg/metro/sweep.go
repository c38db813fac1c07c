package metro

import (
	"log/slog"
	"slices"
)

var (
	// DefaultStartYear is the first year of the default sweep.
	DefaultStartYear = 2020

	// DefaultEndYear is the last year (inclusive) of the default sweep.
	DefaultEndYear = 2022

	// DefaultSexCodes are the sex codes of the population sweep.
	DefaultSexCodes = []string{"T", "M", "F"}

	// DefaultAgeGroupCodes are five-year age bands from 'under 5' to
	// '85-89', then '90 and over' and 'unknown'.
	DefaultAgeGroupCodes = []string{
		"Y_LT5", "Y5-9", "Y10-14", "Y15-19", "Y20-24", "Y25-29", "Y30-34",
		"Y35-39", "Y40-44", "Y45-49", "Y50-54", "Y55-59", "Y60-64",
		"Y65-69", "Y70-74", "Y75-79", "Y80-84", "Y85-89", "Y_GE90", "UNK",
	}
)

// Sweep is the parameter space fetched in one run.
type Sweep struct {
	StartYear     int
	EndYear       int
	SexCodes      []string
	AgeGroupCodes []string
}

// DefaultSweep returns the sweep used when nothing is configured.
func DefaultSweep() Sweep {
	return Sweep{
		StartYear:     DefaultStartYear,
		EndYear:       DefaultEndYear,
		SexCodes:      append([]string(nil), DefaultSexCodes...),
		AgeGroupCodes: append([]string(nil), DefaultAgeGroupCodes...),
	}
}

// Iteration is one combination of dimension values. Sex and AgeGroup are
// empty for datasets without those dimensions.
type Iteration struct {
	Year     int
	Sex      string
	AgeGroup string
}

// LogAttrs returns the iteration parameters as slog attributes.
func (it Iteration) LogAttrs() []any {
	res := []any{slog.Int("year", it.Year)}
	if it.Sex != "" {
		res = append(res, slog.String("sex", it.Sex))
	}
	if it.AgeGroup != "" {
		res = append(res, slog.String("age_group", it.AgeGroup))
	}
	return res
}

// Iterations enumerates the sweep for a dataset: years ascending, then
// sex codes, then age group codes, in the order given. Repeated codes are
// enumerated once.
func (d Dataset) Iterations(s Sweep) []Iteration {
	s.SexCodes = unique(s.SexCodes)
	s.AgeGroupCodes = unique(s.AgeGroupCodes)

	var res []Iteration
	for y := s.StartYear; y <= s.EndYear; y++ {
		if !d.WithSexAge {
			res = append(res, Iteration{Year: y})
			continue
		}
		for _, sex := range s.SexCodes {
			for _, age := range s.AgeGroupCodes {
				res = append(res, Iteration{Year: y, Sex: sex, AgeGroup: age})
			}
		}
	}
	return res
}

// unique returns codes without repeats, keeping first occurrences.
func unique(codes []string) []string {
	res := make([]string, 0, len(codes))
	for _, v := range codes {
		if !slices.Contains(res, v) {
			res = append(res, v)
		}
	}
	return res
}
