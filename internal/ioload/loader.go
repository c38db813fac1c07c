// Package ioload implements the Loader that sweeps Eurostat datasets and
// replaces their tables in a sink.
// This is an impure I/O package that drives a Fetcher and a Sink.
package ioload

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/gnames/metroreg/pkg/config"
	"github.com/gnames/metroreg/pkg/errcode"
	"github.com/gnames/metroreg/pkg/eurostat"
	"github.com/gnames/metroreg/pkg/metro"
	"github.com/google/uuid"
)

// loader implements the metro.Loader interface.
type loader struct {
	cfg     *config.Config
	fetcher metro.Fetcher
	sink    metro.Sink
}

// New creates a new Loader.
func New(
	cfg *config.Config,
	fetcher metro.Fetcher,
	sink metro.Sink,
) metro.Loader {
	return &loader{cfg: cfg, fetcher: fetcher, sink: sink}
}

// run holds the state of one Load call.
type run struct {
	*loader
	id    string
	log   *slog.Logger
	sweep metro.Sweep
	acc   map[string]*metro.Accumulator
}

// Load sweeps every dataset (all known datasets if none are given) and
// replaces its tables. A dataset whose iterations all failed is not
// written; the others still are. Sink failures stop the run.
func (l *loader) Load(ctx context.Context, datasets ...metro.Dataset) error {
	if len(datasets) == 0 {
		datasets = metro.Datasets()
	}

	r := &run{
		loader: l,
		id:     uuid.NewString(),
		sweep:  l.cfg.MetroSweep(),
		acc:    make(map[string]*metro.Accumulator),
	}
	r.log = slog.With("run_id", r.id)

	for _, d := range datasets {
		if len(d.Iterations(r.sweep)) == 0 {
			return NoIterationsError(d.Name)
		}
	}

	startTime := time.Now()
	r.log.Info("Starting load",
		"datasets", len(datasets),
		"start_year", r.sweep.StartYear,
		"end_year", r.sweep.EndYear,
		"dry_run", l.cfg.Load.DryRun,
	)

	if !l.cfg.Load.DryRun {
		if err := l.sink.Open(ctx); err != nil {
			return err
		}
		defer l.sink.Close()
	}

	var failed error
	for _, d := range datasets {
		err := r.loadDataset(ctx, d)
		if err == nil {
			continue
		}
		if gnErr, ok := err.(*gn.Error); ok &&
			gnErr.Code == errcode.LoadAllIterationsFailedError {
			failed = err
			continue
		}
		return err
	}

	r.log.Info("Load complete",
		"duration", gnfmt.TimeString(time.Since(startTime).Seconds()),
	)
	return failed
}

func (r *run) loadDataset(ctx context.Context, d metro.Dataset) error {
	if err := r.sweepDataset(ctx, d); err != nil {
		return err
	}
	tables := r.acc[d.Name].Tables()

	if r.cfg.Load.DryRun {
		gn.Info("Dry run: tables <em>%s</em> and <em>%s</em> are not written",
			d.RegionsTable, d.ValuesTable)
		return nil
	}

	if err := r.sink.Replace(ctx, d, tables); err != nil {
		r.log.Error("Cannot write dataset",
			"dataset", d.Name,
			"kind", errcode.Kind(err),
			"error", err,
		)
		return err
	}
	return nil
}

// sweepDataset fetches and transforms all iterations of a dataset into
// its accumulator.
func (r *run) sweepDataset(ctx context.Context, d metro.Dataset) error {
	startTime := time.Now()
	its := d.Iterations(r.sweep)
	acc := metro.NewAccumulator()
	r.acc[d.Name] = acc
	log := r.log.With("dataset", d.Name)

	if d.WithSexAge {
		r.checkSexCodes(log)
	}

	fmt.Println()
	gn.Info("Dataset <em>%s</em> (%s): %d requests", d.Name, d.ID, len(its))
	log.Info("Sweeping dataset", "id", d.ID, "iterations", len(its))

	bar := newProgressBar(len(its), d.Name+": ")
	defer bar.Finish()

	var successCount, errorCount int
	for _, it := range its {
		if err := ctx.Err(); err != nil {
			return CancelledError(err)
		}

		err := r.iteration(ctx, d, it, acc)
		bar.Increment()
		if err != nil {
			errorCount++
			attrs := append(it.LogAttrs(),
				"kind", errcode.Kind(err),
				"error", err,
			)
			log.Warn("Iteration failed", attrs...)
			continue
		}
		successCount++
	}

	tables := acc.Tables()
	duration := gnfmt.TimeString(time.Since(startTime).Seconds())
	log.Info("Sweep complete",
		"success", successCount,
		"errors", errorCount,
		"regions", len(tables.Regions),
		"values", len(tables.Values),
		"duration", duration,
	)
	gn.Info(`Sweep of <em>%s</em> complete
Requests succeeded: %d, failed %d, total %d.
Regions: %s, values: %s. Elapsed time: <em>%s</em>`,
		d.Name,
		successCount,
		errorCount,
		len(its),
		humanize.Comma(int64(len(tables.Regions))),
		humanize.Comma(int64(len(tables.Values))),
		duration,
	)

	if successCount == 0 {
		return AllIterationsFailedError(d.Name, errorCount)
	}
	return nil
}

// iteration runs fetch, extraction and accumulation for one
// combination of dimension values.
func (r *run) iteration(
	ctx context.Context,
	d metro.Dataset,
	it metro.Iteration,
	acc *metro.Accumulator,
) error {
	url := d.URL(r.cfg.API.BaseURL, r.cfg.API.Lang, it)
	resp, err := r.fetcher.Fetch(ctx, url)
	if err != nil {
		return err
	}

	regions, err := metro.ExtractRegions(resp.Category(eurostat.MetroRegDim))
	if err != nil {
		return err
	}

	values, err := metro.ExtractValues(resp, regions, it)
	if err != nil {
		return err
	}

	acc.Add(regions, values)
	return nil
}

// checkSexCodes warns about codes that have no label. Their rows are
// kept with an empty sex.
func (r *run) checkSexCodes(log *slog.Logger) {
	for _, v := range r.sweep.SexCodes {
		if _, ok := metro.SexLabel(v); !ok {
			log.Warn("Unknown sex code, rows will have no sex label",
				"sex", v,
				"kind", errcode.KindDataContract,
			)
		}
	}
}
