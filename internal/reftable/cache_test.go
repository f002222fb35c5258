package reftable

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache_ReusesWithinWindow(t *testing.T) {
	calls := 0
	cache := NewCache(time.Hour, func(ctx context.Context) ([]Row, error) {
		calls++
		return []Row{{"n": fmt.Sprint(calls)}}, nil
	})

	ctx := context.Background()
	first, err := cache.Rows(ctx)
	require.NoError(t, err)
	second, err := cache.Rows(ctx)
	require.NoError(t, err)

	assert.Equal(t, 1, calls)
	assert.Equal(t, first, second)
}

func TestCache_RefetchesAfterExpiry(t *testing.T) {
	calls := 0
	cache := NewCache(time.Hour, func(ctx context.Context) ([]Row, error) {
		calls++
		return []Row{{"n": fmt.Sprint(calls)}}, nil
	})

	clock := time.Now()
	cache.SetClock(func() time.Time { return clock })

	ctx := context.Background()
	_, err := cache.Rows(ctx)
	require.NoError(t, err)

	clock = clock.Add(2 * time.Hour)
	rows, err := cache.Rows(ctx)
	require.NoError(t, err)

	assert.Equal(t, 2, calls)
	assert.Equal(t, "2", rows[0]["n"])
}

func TestCache_ServesStaleOnRefreshFailure(t *testing.T) {
	calls := 0
	cache := NewCache(time.Hour, func(ctx context.Context) ([]Row, error) {
		calls++
		if calls > 1 {
			return nil, errors.New("upstream down")
		}
		return []Row{{"n": "1"}}, nil
	})

	clock := time.Now()
	cache.SetClock(func() time.Time { return clock })

	ctx := context.Background()
	_, err := cache.Rows(ctx)
	require.NoError(t, err)

	clock = clock.Add(2 * time.Hour)
	rows, err := cache.Rows(ctx)
	require.NoError(t, err, "stale copy keeps serving")
	assert.Equal(t, "1", rows[0]["n"])
}

func TestCache_UnavailableWithoutAnyCopy(t *testing.T) {
	cache := NewCache(time.Hour, func(ctx context.Context) ([]Row, error) {
		return nil, errors.New("upstream down")
	})
	_, err := cache.Rows(context.Background())
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestCache_Prime(t *testing.T) {
	cache := NewCache(time.Hour, func(ctx context.Context) ([]Row, error) {
		t.Fatal("fetch must not run when primed")
		return nil, nil
	})
	cache.Prime([]Row{{"country": "Vietnam"}})

	rows, err := cache.Rows(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Vietnam", rows[0]["country"])
}

func TestCache_ConcurrentReaders(t *testing.T) {
	cache := NewCache(time.Hour, func(ctx context.Context) ([]Row, error) {
		return []Row{{"n": "1"}}, nil
	})

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rows, err := cache.Rows(context.Background())
			assert.NoError(t, err)
			assert.Len(t, rows, 1)
		}()
	}
	wg.Wait()
}

func TestFetcher_ParsesHTTPResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "country,label\nVietnam,wet\n")
	}))
	defer srv.Close()

	rows, err := NewFetcher().Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "wet", rows[0]["label"])
}

func TestFetcher_NonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := NewFetcher().Fetch(context.Background(), srv.URL)
	assert.Error(t, err)
}
