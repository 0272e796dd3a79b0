// Copyright (c) 2026 Itinera. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package planner

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/taibuivan/itinera/internal/core/catalog"
	"github.com/taibuivan/itinera/internal/platform/apperr"
	"github.com/taibuivan/itinera/internal/platform/metrics"
	"github.com/taibuivan/itinera/internal/platform/validate"
	"github.com/taibuivan/itinera/pkg/slice"
)

// Constraints are the caller supplied limits. A nil field means "no limit".
type Constraints struct {
	MaxDays   *int
	MaxBudget *float64
}

// Limits resolves the constraints for [Search]. Absent limits become +Inf.
func (constraints Constraints) Limits() Limits {
	limits := Unbounded()
	if constraints.MaxDays != nil {
		limits.MaxDays = float64(*constraints.MaxDays)
	}
	if constraints.MaxBudget != nil {
		limits.MaxBudget = *constraints.MaxBudget
	}
	return limits
}

// Stats describes how a package was produced.
type Stats struct {
	Candidates int           `json:"candidates"`
	Nodes      int64         `json:"nodes"`
	Duration   time.Duration `json:"duration_ns"`
}

// Package is the optimal selection of tours for one region.
type Package struct {
	RegionID       string
	Tours          []*catalog.Tour
	TotalDays      int
	TotalCost      float64
	TotalValue     float64
	CatalogVersion string
	Cached         bool
	Stats          Stats
}

// CatalogProvider hands out the active catalog snapshot.
type CatalogProvider interface {
	Current() *catalog.Catalog
}

// Options tunes the service. Zero values disable the corresponding guard.
type Options struct {
	// SearchTimeout bounds a single search on top of the caller's context.
	SearchTimeout time.Duration
	// MaxCandidates rejects regions with more tours than this.
	MaxCandidates int
}

// Service generates tour packages against the active catalog.
type Service struct {
	catalogs CatalogProvider
	cache    Cache
	logger   *slog.Logger
	options  Options
}

// NewService creates a planner service. A nil cache disables caching.
func NewService(catalogs CatalogProvider, cache Cache, logger *slog.Logger, options Options) *Service {
	if cache == nil {
		cache = NopCache{}
	}
	return &Service{
		catalogs: catalogs,
		cache:    cache,
		logger:   logger,
		options:  options,
	}
}

/*
GeneratePackage returns the highest-value feasible package of tours in a region.

Description: Each call works on the catalog snapshot active when it starts and
on its own search state, so calls may run concurrently.

Parameters:
  - context: Cancels the search
  - regionID: Region whose tours are candidates
  - constraints: Optional day and budget limits, each >= 0 when present

Returns:
  - *Package: The optimal package (possibly empty)
  - error: VALIDATION_ERROR (ErrMissingRegion, ErrInvalidConstraint), NOT_FOUND (ErrUnknownRegion),
    UNPROCESSABLE (ErrTooManyCandidates) or SERVICE_UNAVAILABLE on timeout
*/
func (service *Service) GeneratePackage(context context.Context, regionID string, constraints Constraints) (*Package, error) {

	// ── 1. Validation ─────────────────────────────────────────────────────
	if err := (&validate.Validator{}).Required("region_id", regionID).ErrWithCause(ErrMissingRegion); err != nil {
		return nil, err
	}

	validator := &validate.Validator{}
	validator.
		NonNegativeInt("max_days", constraints.MaxDays).
		NonNegativeFloat("max_budget", constraints.MaxBudget)
	if err := validator.ErrWithCause(ErrInvalidConstraint); err != nil {
		return nil, err
	}

	// ── 2. Candidates ─────────────────────────────────────────────────────
	snapshot := service.catalogs.Current()
	if _, ok := snapshot.Region(regionID); !ok {
		return nil, apperr.NotFound("Region").WithCause(fmt.Errorf("%w: %q", ErrUnknownRegion, regionID))
	}

	candidates := snapshot.ToursInRegion(regionID)
	if service.options.MaxCandidates > 0 && len(candidates) > service.options.MaxCandidates {
		return nil, apperr.Unprocessable(fmt.Sprintf(
			"Region has %d tours; exhaustive search is limited to %d", len(candidates), service.options.MaxCandidates,
		)).WithCause(ErrTooManyCandidates)
	}

	// ── 3. Cache lookup ───────────────────────────────────────────────────
	key := CacheKey(snapshot.Version, regionID, constraints)
	if cached := service.lookup(context, snapshot, key); cached != nil {
		cached.RegionID = regionID
		return cached, nil
	}

	// ── 4. Search ─────────────────────────────────────────────────────────
	searchCtx, cancel := service.withSearchTimeout(context)
	defer cancel()

	metrics.SearchCandidates.Observe(float64(len(candidates)))
	startTime := time.Now()

	result, err := Search(searchCtx, candidates, constraints.Limits())
	elapsed := time.Since(startTime)
	if err != nil {
		metrics.SearchDuration.WithLabelValues("cancelled").Observe(elapsed.Seconds())
		service.logger.Warn("package_search_aborted",
			slog.String("region_id", regionID),
			slog.Int("candidates", len(candidates)),
			slog.Int64("nodes", result.Nodes),
			slog.Any("error", err),
		)
		return nil, searchFailure(err)
	}

	metrics.SearchDuration.WithLabelValues("ok").Observe(elapsed.Seconds())
	metrics.SearchNodes.Observe(float64(result.Nodes))

	pkg := &Package{
		RegionID:       regionID,
		Tours:          result.Tours,
		TotalDays:      result.TotalDays,
		TotalCost:      result.TotalCost,
		TotalValue:     result.TotalValue,
		CatalogVersion: snapshot.Version,
		Stats: Stats{
			Candidates: len(candidates),
			Nodes:      result.Nodes,
			Duration:   elapsed,
		},
	}

	service.logger.Info("package_generated",
		slog.String("region_id", regionID),
		slog.Int("candidates", len(candidates)),
		slog.Int("tours", len(pkg.Tours)),
		slog.Float64("total_value", pkg.TotalValue),
		slog.Int64("nodes", result.Nodes),
		slog.Int64("duration_us", elapsed.Microseconds()),
	)

	// ── 5. Cache store ────────────────────────────────────────────────────
	service.store(context, key, pkg)

	return pkg, nil
}

// withSearchTimeout bounds parent by Options.SearchTimeout when one is set.
func (service *Service) withSearchTimeout(parent context.Context) (context.Context, context.CancelFunc) {
	if service.options.SearchTimeout <= 0 {
		return parent, func() {}
	}
	return context.WithTimeout(parent, service.options.SearchTimeout)
}

// lookup returns a rehydrated package on a usable cache hit and nil otherwise.
// Cache failures are logged and treated as misses.
func (service *Service) lookup(context context.Context, snapshot *catalog.Catalog, key string) *Package {
	cached, ok, err := service.cache.Get(context, key)
	if err != nil {
		metrics.PackageCache.WithLabelValues("error").Inc()
		service.logger.Warn("cache_lookup_failed", slog.String("key", key), slog.Any("error", err))
		return nil
	}
	if !ok {
		metrics.PackageCache.WithLabelValues("miss").Inc()
		return nil
	}

	tours := make([]*catalog.Tour, 0, len(cached.TourIDs))
	for _, id := range cached.TourIDs {
		tour, found := snapshot.Tour(id)
		if !found {
			metrics.PackageCache.WithLabelValues("miss").Inc()
			return nil
		}
		tours = append(tours, tour)
	}

	metrics.PackageCache.WithLabelValues("hit").Inc()
	return &Package{
		Tours:          tours,
		TotalDays:      cached.TotalDays,
		TotalCost:      cached.TotalCost,
		TotalValue:     cached.TotalValue,
		CatalogVersion: snapshot.Version,
		Cached:         true,
		Stats: Stats{
			Candidates: cached.Candidates,
			Nodes:      cached.Nodes,
		},
	}
}

func (service *Service) store(context context.Context, key string, pkg *Package) {
	err := service.cache.Set(context, key, &CachedPackage{
		TourIDs:    slice.Map(pkg.Tours, tourID),
		TotalDays:  pkg.TotalDays,
		TotalCost:  pkg.TotalCost,
		TotalValue: pkg.TotalValue,
		Candidates: pkg.Stats.Candidates,
		Nodes:      pkg.Stats.Nodes,
	})
	if err != nil {
		service.logger.Warn("cache_store_failed", slog.String("key", key), slog.Any("error", err))
	}
}

func tourID(tour *catalog.Tour) string {
	return tour.ID
}
