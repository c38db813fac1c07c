package cmd

import (
	"github.com/gnames/metroreg/pkg/config"
	"github.com/spf13/cobra"
)

// sweepFlags holds flag values that narrow the sweep.
type sweepFlags struct {
	startYear int
	endYear   int
	sexes     []string
	ages      []string
}

func (f *sweepFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVarP(
		&f.startYear, "start-year", "s", 0,
		"first year of the sweep",
	)
	cmd.Flags().IntVarP(
		&f.endYear, "end-year", "e", 0,
		"last year of the sweep (inclusive)",
	)
	cmd.Flags().StringSliceVar(
		&f.sexes, "sexes", nil,
		"sex codes of the population sweep, e.g. T,M,F",
	)
	cmd.Flags().StringSliceVar(
		&f.ages, "ages", nil,
		"age group codes of the population sweep, e.g. Y_LT5,Y5-9",
	)
}

// options converts explicitly set flags to config options.
func (f *sweepFlags) options(cmd *cobra.Command, c *config.Config) []config.Option {
	var res []config.Option

	hasStart := cmd.Flags().Changed("start-year")
	hasEnd := cmd.Flags().Changed("end-year")
	if hasStart || hasEnd {
		start, end := c.Sweep.StartYear, c.Sweep.EndYear
		if hasStart {
			start = f.startYear
		}
		if hasEnd {
			end = f.endYear
		}
		res = append(res, config.OptSweepYears(start, end))
	}

	if cmd.Flags().Changed("sexes") {
		res = append(res, config.OptSweepSexCodes(f.sexes))
	}
	if cmd.Flags().Changed("ages") {
		res = append(res, config.OptSweepAgeGroupCodes(f.ages))
	}
	return res
}
