package cmd

import (
	"context"
	"os"
	"os/signal"

	"github.com/gnames/gn"
	"github.com/gnames/metroreg/internal/iodb"
	"github.com/gnames/metroreg/internal/iofetch"
	"github.com/gnames/metroreg/internal/ioload"
	"github.com/gnames/metroreg/internal/iosqlite"
	"github.com/gnames/metroreg/pkg/config"
	"github.com/gnames/metroreg/pkg/metro"
	"github.com/spf13/cobra"
)

// getLoadCmd returns the load command.
// Extracted as a function to facilitate testing and dynamic
// command registration.
func getLoadCmd() *cobra.Command {
	var (
		sweep   sweepFlags
		backend string
		dryRun  bool
	)

	loadCmd := &cobra.Command{
		Use:   "load [area|population|all]",
		Short: "Download datasets and replace their tables",
		Long: `Download metropolitan region datasets from Eurostat and replace
their tables in the database.

For every year of the sweep (and for population every sex and age group)
one request is sent. Failed requests are logged and skipped. Tables of a
dataset are replaced only if at least one request succeeded.

Tables:
  area         metropolitan_regions, metropolitan_area
  population   metropolitan_population_regions, metropolitan_population

Examples:
  # Load both datasets for the configured years
  metroreg load

  # Load area for 2015-2022 into SQLite
  metroreg load area -s 2015 -e 2022 -b sqlite

  # Fetch and transform population totals without writing
  metroreg load population --sexes T --dry-run`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runLoad(cmd, args, &sweep, backend, dryRun)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	sweep.register(loadCmd)
	loadCmd.Flags().StringVarP(
		&backend, "backend", "b", "",
		"storage backend: postgres or sqlite",
	)
	loadCmd.Flags().BoolVarP(
		&dryRun, "dry-run", "n", false,
		"fetch and transform, but do not write tables",
	)

	return loadCmd
}

func runLoad(
	cmd *cobra.Command,
	args []string,
	sweep *sweepFlags,
	backend string,
	dryRun bool,
) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	loadOpts := sweep.options(cmd, cfg)
	if cmd.Flags().Changed("backend") {
		loadOpts = append(loadOpts, config.OptDatabaseBackend(backend))
	}
	loadOpts = append(loadOpts, config.OptLoadDryRun(dryRun))
	cfg.Update(loadOpts)

	name := "all"
	if len(args) > 0 {
		name = args[0]
	}
	datasets, err := datasetsByName(name)
	if err != nil {
		return err
	}

	sink, err := loadSink(cfg)
	if err != nil {
		return err
	}

	loader := ioload.New(cfg, iofetch.New(cfg.API), sink)
	return loader.Load(ctx, datasets...)
}

// datasetsByName resolves a dataset argument; "all" means every dataset.
func datasetsByName(name string) ([]metro.Dataset, error) {
	if name == "all" {
		return metro.Datasets(), nil
	}
	d, ok := metro.DatasetByName(name)
	if !ok {
		known := []string{"all"}
		for _, v := range metro.Datasets() {
			known = append(known, v.Name)
		}
		return nil, ioload.UnknownDatasetError(name, known)
	}
	return []metro.Dataset{d}, nil
}

// loadSink returns the sink of a load run. A dry run writes nothing, so
// it gets no sink and its backend setting is not checked.
func loadSink(c *config.Config) (metro.Sink, error) {
	if c.Load.DryRun {
		return nil, nil
	}
	sink, err := newSink(c)
	if err != nil {
		return nil, err
	}
	gn.Info("Writing to <em>%s</em>", sinkTarget(c))
	return sink, nil
}

// newSink creates the sink of the configured backend.
func newSink(c *config.Config) (metro.Sink, error) {
	switch c.Database.Backend {
	case "postgres":
		return iodb.NewSink(c.Database), nil
	case "sqlite":
		return iosqlite.NewSink(c), nil
	default:
		return nil, iodb.UnknownBackendError(c.Database.Backend)
	}
}

func sinkTarget(c *config.Config) string {
	d := c.Database
	if d.Backend == "sqlite" {
		if d.Path != "" {
			return d.Path
		}
		return config.SQLitePath(c.HomeDir)
	}
	return d.User + "@" + d.Host + "/" + d.Database + "." + d.Schema
}
