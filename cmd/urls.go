package cmd

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/spf13/cobra"
)

// getURLsCmd returns the urls command that prints the requests of a sweep
// without sending them.
func getURLsCmd() *cobra.Command {
	var sweep sweepFlags

	urlsCmd := &cobra.Command{
		Use:   "urls [area|population|all]",
		Short: "Print request URLs of a sweep",
		Long: `Print the Eurostat API URLs a load would request, one per line,
without sending any request.

Examples:
  metroreg urls area
  metroreg urls population -s 2021 -e 2021 --sexes T`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runURLs(cmd, args, &sweep)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	sweep.register(urlsCmd)
	return urlsCmd
}

func runURLs(cmd *cobra.Command, args []string, sweep *sweepFlags) error {
	cfg.Update(sweep.options(cmd, cfg))

	name := "all"
	if len(args) > 0 {
		name = args[0]
	}
	datasets, err := datasetsByName(name)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	s := cfg.MetroSweep()
	for _, d := range datasets {
		for _, it := range d.Iterations(s) {
			fmt.Fprintln(out, d.URL(cfg.API.BaseURL, cfg.API.Lang, it))
		}
	}
	return nil
}
