// Copyright (c) 2026 Itinera. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package planner_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/itinera/internal/core/catalog"
	"github.com/taibuivan/itinera/internal/core/planner"
	"github.com/taibuivan/itinera/internal/platform/apperr"
	"github.com/taibuivan/itinera/pkg/pointer"
)

// staticCatalog always serves the same snapshot.
type staticCatalog struct {
	snapshot *catalog.Catalog
}

func (s staticCatalog) Current() *catalog.Catalog { return s.snapshot }

// memoryCache is an in-process Cache that records traffic.
type memoryCache struct {
	mu      sync.Mutex
	entries map[string]*planner.CachedPackage
	gets    int
	sets    int
	failGet error
	failSet error
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: map[string]*planner.CachedPackage{}}
}

func (c *memoryCache) Get(_ context.Context, key string) (*planner.CachedPackage, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gets++
	if c.failGet != nil {
		return nil, false, c.failGet
	}
	entry, ok := c.entries[key]
	return entry, ok, nil
}

func (c *memoryCache) Set(_ context.Context, key string, value *planner.CachedPackage) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sets++
	if c.failSet != nil {
		return c.failSet
	}
	c.entries[key] = value
	return nil
}

func newService(t *testing.T, cache planner.Cache, options planner.Options) (*planner.Service, *catalog.Catalog) {
	t.Helper()
	snapshot := build(t, rivieraSource())
	return planner.NewService(staticCatalog{snapshot: snapshot}, cache, discardLogger(), options), snapshot
}

/*
TestGeneratePackage_Scenario runs the reference request end to end.
*/
func TestGeneratePackage_Scenario(t *testing.T) {
	service, snapshot := newService(t, nil, planner.Options{SearchTimeout: time.Second, MaxCandidates: 40})

	pkg, err := service.GeneratePackage(context.Background(), "R", planner.Constraints{
		MaxDays:   pointer.To(3),
		MaxBudget: pointer.To(150.0),
	})
	require.NoError(t, err)

	assert.Equal(t, "R", pkg.RegionID)
	assert.Equal(t, []string{"A", "B"}, ids(pkg.Tours))
	assert.InDelta(t, 18, pkg.TotalValue, 1e-9)
	assert.InDelta(t, 150, pkg.TotalCost, 1e-9)
	assert.Equal(t, 3, pkg.TotalDays)
	assert.Equal(t, snapshot.Version, pkg.CatalogVersion)
	assert.Equal(t, 3, pkg.Stats.Candidates)
	assert.Positive(t, pkg.Stats.Nodes)
	assert.False(t, pkg.Cached)
}

/*
TestGeneratePackage_ZeroDays yields the empty package.
*/
func TestGeneratePackage_ZeroDays(t *testing.T) {
	service, _ := newService(t, nil, planner.Options{})

	pkg, err := service.GeneratePackage(context.Background(), "R", planner.Constraints{MaxDays: pointer.To(0)})
	require.NoError(t, err)

	assert.Empty(t, pkg.Tours)
	assert.Zero(t, pkg.TotalValue)
	assert.Zero(t, pkg.TotalCost)
}

/*
TestGeneratePackage_InvalidConstraints rejects bad input before any search.
A missing region and a bad limit carry different causes.
*/
func TestGeneratePackage_InvalidConstraints(t *testing.T) {
	tests := []struct {
		name        string
		regionID    string
		constraints planner.Constraints
		field       string
		cause       error
		notCause    error
	}{
		{name: "negative_budget", regionID: "R", constraints: planner.Constraints{MaxBudget: pointer.To(-1.0)}, field: "max_budget", cause: planner.ErrInvalidConstraint, notCause: planner.ErrMissingRegion},
		{name: "negative_days", regionID: "R", constraints: planner.Constraints{MaxDays: pointer.To(-2)}, field: "max_days", cause: planner.ErrInvalidConstraint, notCause: planner.ErrMissingRegion},
		{name: "empty_region", regionID: "", field: "region_id", cause: planner.ErrMissingRegion, notCause: planner.ErrInvalidConstraint},
		{name: "blank_region_with_bad_limit", regionID: "  ", constraints: planner.Constraints{MaxDays: pointer.To(-1)}, field: "region_id", cause: planner.ErrMissingRegion, notCause: planner.ErrInvalidConstraint},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cache := newMemoryCache()
			service, _ := newService(t, cache, planner.Options{})

			pkg, err := service.GeneratePackage(context.Background(), tt.regionID, tt.constraints)
			require.Error(t, err)
			assert.Nil(t, pkg)
			assert.ErrorIs(t, err, tt.cause)
			assert.NotErrorIs(t, err, tt.notCause)

			appErr := apperr.As(err)
			require.NotNil(t, appErr)
			assert.Equal(t, http.StatusBadRequest, appErr.HTTPStatus)
			require.Len(t, appErr.Details, 1)
			assert.Equal(t, tt.field, appErr.Details[0].Field)

			assert.Zero(t, cache.gets)
		})
	}
}

/*
TestGeneratePackage_Regions distinguishes unknown regions from empty ones.
*/
func TestGeneratePackage_Regions(t *testing.T) {
	service, _ := newService(t, nil, planner.Options{})

	t.Run("unknown_region", func(t *testing.T) {
		_, err := service.GeneratePackage(context.Background(), "X", planner.Constraints{})
		assert.ErrorIs(t, err, planner.ErrUnknownRegion)
		require.NotNil(t, apperr.As(err))
		assert.Equal(t, http.StatusNotFound, apperr.As(err).HTTPStatus)
	})

	t.Run("empty_region", func(t *testing.T) {
		pkg, err := service.GeneratePackage(context.Background(), "T", planner.Constraints{})
		require.NoError(t, err)
		assert.Empty(t, pkg.Tours)
		assert.Zero(t, pkg.TotalValue)
		assert.Zero(t, pkg.Stats.Candidates)
	})
}

/*
TestGeneratePackage_TooManyCandidates enforces the exhaustive search guard.
*/
func TestGeneratePackage_TooManyCandidates(t *testing.T) {
	service, _ := newService(t, nil, planner.Options{MaxCandidates: 2})

	_, err := service.GeneratePackage(context.Background(), "R", planner.Constraints{})
	assert.ErrorIs(t, err, planner.ErrTooManyCandidates)
	assert.Equal(t, http.StatusUnprocessableEntity, apperr.As(err).HTTPStatus)
}

/*
TestGeneratePackage_Cancelled maps an aborted search to 503.
*/
func TestGeneratePackage_Cancelled(t *testing.T) {
	service, _ := newService(t, nil, planner.Options{SearchTimeout: time.Second})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	pkg, err := service.GeneratePackage(ctx, "R", planner.Constraints{})
	assert.Nil(t, pkg)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, http.StatusServiceUnavailable, apperr.As(err).HTTPStatus)
}

/*
TestGeneratePackage_SearchTimeout aborts a search that outlives
Options.SearchTimeout even when the caller's context is still live.
*/
func TestGeneratePackage_SearchTimeout(t *testing.T) {
	// No attractions and no limits: nothing prunes, so all 2^25 nodes are visited.
	source := &catalog.MemorySource{
		Regions: []catalog.RegionRecord{{ID: "R", Name: "Wide"}},
		Tours:   map[string]catalog.TourRecord{},
	}
	for i := 0; i < 24; i++ {
		id := fmt.Sprintf("t%02d", i)
		source.Tours[id] = catalog.TourRecord{ID: id, RegionID: "R", DurationDays: 1, Cost: 1}
	}
	snapshot := build(t, source)
	service := planner.NewService(staticCatalog{snapshot: snapshot}, nil, discardLogger(), planner.Options{SearchTimeout: time.Millisecond})

	pkg, err := service.GeneratePackage(context.Background(), "R", planner.Constraints{})
	assert.Nil(t, pkg)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	require.NotNil(t, apperr.As(err))
	assert.Equal(t, http.StatusServiceUnavailable, apperr.As(err).HTTPStatus)
}

/*
TestGeneratePackage_Cache stores on miss and rehydrates on hit.
*/
func TestGeneratePackage_Cache(t *testing.T) {
	cache := newMemoryCache()
	service, snapshot := newService(t, cache, planner.Options{})
	constraints := planner.Constraints{MaxDays: pointer.To(3), MaxBudget: pointer.To(150.0)}

	first, err := service.GeneratePackage(context.Background(), "R", constraints)
	require.NoError(t, err)
	assert.False(t, first.Cached)
	assert.Equal(t, 1, cache.sets)

	key := planner.CacheKey(snapshot.Version, "R", constraints)
	require.Contains(t, cache.entries, key)
	assert.Equal(t, []string{"A", "B"}, cache.entries[key].TourIDs)

	second, err := service.GeneratePackage(context.Background(), "R", constraints)
	require.NoError(t, err)
	assert.True(t, second.Cached)
	assert.Equal(t, "R", second.RegionID)
	assert.Equal(t, ids(first.Tours), ids(second.Tours))
	assert.InDelta(t, first.TotalValue, second.TotalValue, 1e-9)
	assert.Same(t, first.Tours[0], second.Tours[0])
	assert.Equal(t, 1, cache.sets)
}

/*
TestGeneratePackage_StaleCacheEntry ignores cached tours missing from the snapshot.
*/
func TestGeneratePackage_StaleCacheEntry(t *testing.T) {
	cache := newMemoryCache()
	service, snapshot := newService(t, cache, planner.Options{})

	key := planner.CacheKey(snapshot.Version, "R", planner.Constraints{})
	cache.entries[key] = &planner.CachedPackage{TourIDs: []string{"ghost"}, TotalValue: 99}

	pkg, err := service.GeneratePackage(context.Background(), "R", planner.Constraints{})
	require.NoError(t, err)
	assert.False(t, pkg.Cached)
	assert.InDelta(t, 18, pkg.TotalValue, 1e-9)
}

/*
TestGeneratePackage_CacheFailures never fail the request.
*/
func TestGeneratePackage_CacheFailures(t *testing.T) {
	cache := newMemoryCache()
	cache.failGet = errors.New("get down")
	cache.failSet = errors.New("set down")
	service, _ := newService(t, cache, planner.Options{})

	pkg, err := service.GeneratePackage(context.Background(), "R", planner.Constraints{})
	require.NoError(t, err)
	assert.InDelta(t, 18, pkg.TotalValue, 1e-9)
	assert.Equal(t, 1, cache.gets)
	assert.Equal(t, 1, cache.sets)
}

/*
TestGeneratePackage_Concurrent serves many callers from one service.
*/
func TestGeneratePackage_Concurrent(t *testing.T) {
	service, _ := newService(t, newMemoryCache(), planner.Options{SearchTimeout: time.Second})

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(days int) {
			defer wg.Done()
			pkg, err := service.GeneratePackage(context.Background(), "R", planner.Constraints{MaxDays: pointer.To(days)})
			if !assert.NoError(t, err) {
				return
			}
			assert.LessOrEqual(t, pkg.TotalDays, days, fmt.Sprintf("days=%d", days))
		}(i % 4)
	}
	wg.Wait()
}

/*
TestCacheKey encodes absent limits as inf.
*/
func TestCacheKey(t *testing.T) {
	assert.Equal(t, "planner:package:v1:R:inf:inf", planner.CacheKey("v1", "R", planner.Constraints{}))
	assert.Equal(t, "planner:package:v1:R:3:150.5", planner.CacheKey("v1", "R", planner.Constraints{
		MaxDays:   pointer.To(3),
		MaxBudget: pointer.To(150.5),
	}))
}
