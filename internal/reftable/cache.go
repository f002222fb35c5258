package reftable

import (
	"context"
	"errors"
	"sync"
	"time"
)

// DefaultTTL is the validity window for a cached table.
const DefaultTTL = 6 * time.Hour

// ErrUnavailable indicates a table could neither be served from cache nor
// refetched. Callers degrade to their "no data" path on it.
var ErrUnavailable = errors.New("reference table unavailable")

// Cache holds one parsed table with a last-fetch timestamp. Refreshes are
// whole-value swaps under the lock, so concurrent readers either see the
// previous complete table or the new one, never a partial merge. A refresh
// that fails while a stale copy exists serves the stale copy.
type Cache struct {
	mu        sync.Mutex
	rows      []Row
	fetchedAt time.Time

	ttl   time.Duration
	fetch FetchFunc
	now   func() time.Time
}

// NewCache creates a cache around fetch with the given validity window.
// A non-positive ttl falls back to DefaultTTL.
func NewCache(ttl time.Duration, fetch FetchFunc) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache{
		ttl:   ttl,
		fetch: fetch,
		now:   time.Now,
	}
}

// Rows returns the cached table, refetching first if the window expired.
func (c *Cache) Rows(ctx context.Context) ([]Row, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.rows != nil && c.now().Sub(c.fetchedAt) < c.ttl {
		return c.rows, nil
	}

	rows, err := c.fetch(ctx)
	if err != nil {
		if c.rows != nil {
			// Keep serving the stale table until a refresh succeeds.
			return c.rows, nil
		}
		return nil, errors.Join(ErrUnavailable, err)
	}

	c.rows = rows
	c.fetchedAt = c.now()
	return c.rows, nil
}

// Prime seeds the cache with rows as if just fetched. Tests use it to supply
// deterministic fixtures without a fetch round trip.
func (c *Cache) Prime(rows []Row) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if rows == nil {
		rows = []Row{}
	}
	c.rows = rows
	c.fetchedAt = c.now()
}

// SetClock overrides the cache's time source. Test hook for expiry control.
func (c *Cache) SetClock(now func() time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = now
}
