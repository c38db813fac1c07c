package metro

import (
	"context"

	"github.com/gnames/metroreg/pkg/eurostat"
)

// Fetcher retrieves one API response.
type Fetcher interface {
	// Fetch performs a single GET of url and decodes the JSON body.
	// It does not retry.
	Fetch(ctx context.Context, url string) (*eurostat.Response, error)
}

// Sink persists the tables of a dataset.
type Sink interface {
	// Open connects to the storage backend. It is called once per run.
	Open(ctx context.Context) error

	// Replace writes the region table and then the value table of a
	// dataset, dropping any existing tables with the same names first.
	// The two writes are independent: the first may succeed while the
	// second fails.
	Replace(ctx context.Context, d Dataset, t Tables) error

	// Close releases the connection.
	Close() error
}

// Loader runs the sweep of every dataset and writes the results.
type Loader interface {
	Load(ctx context.Context, datasets ...Dataset) error
}
