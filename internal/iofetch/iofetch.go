// Package iofetch retrieves Eurostat dissemination API responses over
// HTTP.
package iofetch

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gnames/gnfmt"
	"github.com/gnames/metroreg/pkg/config"
	"github.com/gnames/metroreg/pkg/eurostat"
	"github.com/gnames/metroreg/pkg/metro"
)

// maxErrorBody limits how much of a non-2xx body is read for its message.
const maxErrorBody = 64 << 10

type fetcher struct {
	client *http.Client
	enc    gnfmt.GNjson
}

// New creates a Fetcher with the timeout of the API configuration.
func New(cfg config.APIConfig) metro.Fetcher {
	return NewWithClient(&http.Client{
		Timeout: time.Duration(cfg.Timeout) * time.Second,
	})
}

// NewWithClient creates a Fetcher that uses the given HTTP client.
func NewWithClient(client *http.Client) metro.Fetcher {
	return &fetcher{client: client}
}

// Fetch performs one GET of url and decodes the JSON body.
func (f *fetcher) Fetch(
	ctx context.Context,
	url string,
) (*eurostat.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, RequestError(url, err)
	}
	req.Header.Set("Accept", "application/json")

	slog.Debug("Fetching", "url", url)
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, TransportError(url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		msg := eurostat.ErrorMessage(body)
		if msg == "" {
			msg = strings.TrimSpace(http.StatusText(resp.StatusCode))
		}
		return nil, HTTPError(url, resp.StatusCode, msg)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, TransportError(url, err)
	}

	var res eurostat.Response
	if err = f.enc.Decode(body, &res); err != nil {
		return nil, DecodeError(url, err)
	}

	return &res, nil
}
