// Copyright (c) 2026 Itinera. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"context"
	"log/slog"
	"time"

	"github.com/taibuivan/itinera/internal/platform/apperr"
)

// RegionSummary is a region together with how many tours it offers.
type RegionSummary struct {
	*Region
	TourCount int `json:"tour_count"`
}

// LoadSummary describes a freshly published catalog.
type LoadSummary struct {
	Version  string    `json:"version"`
	LoadedAt time.Time `json:"loaded_at"`
	Stats
}

// Service exposes read access to the current catalog and its reload.
type Service struct {
	holder *Holder
	logger *slog.Logger
}

// NewService creates a catalog service over holder.
func NewService(holder *Holder, logger *slog.Logger) *Service {
	return &Service{holder: holder, logger: logger}
}

// ListRegions returns every region with its tour count, in ascending id order.
func (service *Service) ListRegions(_ context.Context) []RegionSummary {
	current := service.holder.Current()

	regions := current.Regions()
	summaries := make([]RegionSummary, 0, len(regions))
	for _, region := range regions {
		summaries = append(summaries, RegionSummary{Region: region, TourCount: current.TourCount(region.ID)})
	}
	return summaries
}

// GetRegion returns one region or a NOT_FOUND error.
func (service *Service) GetRegion(_ context.Context, id string) (RegionSummary, error) {
	current := service.holder.Current()

	region, ok := current.Region(id)
	if !ok {
		return RegionSummary{}, apperr.NotFound("Region")
	}
	return RegionSummary{Region: region, TourCount: current.TourCount(id)}, nil
}

// ListRegionTours returns the tours of a region in search order.
func (service *Service) ListRegionTours(_ context.Context, id string) ([]*Tour, error) {
	current := service.holder.Current()

	if _, ok := current.Region(id); !ok {
		return nil, apperr.NotFound("Region")
	}
	return current.ToursInRegion(id), nil
}

/*
Reload rebuilds the catalog from its source.

Returns:
  - LoadSummary: Version and size of the published catalog
  - error: apperr INTERNAL_ERROR; the previous catalog stays active
*/
func (service *Service) Reload(context context.Context) (LoadSummary, error) {
	fresh, err := service.holder.Reload(context)
	if err != nil {
		return LoadSummary{}, apperr.Internal(err)
	}

	return LoadSummary{
		Version:  fresh.Version,
		LoadedAt: fresh.LoadedAt,
		Stats:    fresh.Stats(),
	}, nil
}
