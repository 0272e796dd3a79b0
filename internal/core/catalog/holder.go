// Copyright (c) 2026 Itinera. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/taibuivan/itinera/internal/platform/metrics"
)

// Holder owns the current catalog snapshot and swaps it on reload.
//
// # Concurrency
//
// Readers call [Holder.Current] without locking and keep using the snapshot
// they got for as long as they need it. Reloads are serialized; a failed
// reload leaves the previous snapshot in place.
type Holder struct {
	source  Source
	logger  *slog.Logger
	current atomic.Pointer[Catalog]
	reload  sync.Mutex
}

// NewHolder performs the initial load. A load failure is returned as is so
// the caller can abort startup.
func NewHolder(ctx context.Context, source Source, logger *slog.Logger) (*Holder, error) {
	holder := &Holder{source: source, logger: logger}
	if _, err := holder.Reload(ctx); err != nil {
		return nil, err
	}
	return holder, nil
}

// Current returns the active snapshot. It is never nil after NewHolder succeeds.
func (holder *Holder) Current() *Catalog {
	return holder.current.Load()
}

// Reload rebuilds the catalog from the source and publishes it on success.
func (holder *Holder) Reload(ctx context.Context) (*Catalog, error) {
	holder.reload.Lock()
	defer holder.reload.Unlock()

	startTime := time.Now()

	catalog, err := Build(ctx, holder.source)
	if err != nil {
		metrics.CatalogLoads.WithLabelValues("failed").Inc()
		holder.logger.Error("catalog_load_failed",
			slog.Any("error", err),
			slog.Bool("kept_previous", holder.current.Load() != nil),
		)
		return nil, err
	}

	holder.current.Store(catalog)

	stats := catalog.Stats()
	metrics.CatalogLoads.WithLabelValues("ok").Inc()
	metrics.CatalogEntities.WithLabelValues("regions").Set(float64(stats.Regions))
	metrics.CatalogEntities.WithLabelValues("tours").Set(float64(stats.Tours))
	metrics.CatalogEntities.WithLabelValues("attractions").Set(float64(stats.Attractions))
	metrics.CatalogEntities.WithLabelValues("edges").Set(float64(stats.Edges))

	holder.logger.Info("catalog_loaded",
		slog.String("version", catalog.Version),
		slog.Int("regions", stats.Regions),
		slog.Int("tours", stats.Tours),
		slog.Int("attractions", stats.Attractions),
		slog.Int("edges", stats.Edges),
		slog.Int64("duration_ms", time.Since(startTime).Milliseconds()),
	)

	return catalog, nil
}
