package reftable

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"
)

// FetchFunc produces a fresh copy of a table. The cache calls it whenever
// its window expires; tests inject static fixtures through it.
type FetchFunc func(ctx context.Context) ([]Row, error)

// Fetcher retrieves delimited tables over HTTP.
type Fetcher struct {
	http *http.Client
}

// NewFetcher creates a Fetcher with a bounded dial timeout.
func NewFetcher() *Fetcher {
	return &Fetcher{
		http: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
			},
			Timeout: 30 * time.Second,
		},
	}
}

// Fetch downloads and parses the table at url.
func (f *Fetcher) Fetch(ctx context.Context, url string, opts ...ParseOption) ([]Row, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := f.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching table: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("table fetch returned status %d", resp.StatusCode)
	}

	rows, err := Parse(resp.Body, opts...)
	if err != nil {
		return nil, fmt.Errorf("parsing table from %s: %w", url, err)
	}
	return rows, nil
}

// TableFetch adapts a Fetcher and URL into a FetchFunc for a Cache.
func (f *Fetcher) TableFetch(url string, opts ...ParseOption) FetchFunc {
	return func(ctx context.Context) ([]Row, error) {
		return f.Fetch(ctx, url, opts...)
	}
}
