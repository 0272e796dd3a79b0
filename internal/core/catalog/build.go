// Copyright (c) 2026 Itinera. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/taibuivan/itinera/pkg/slug"
	"github.com/taibuivan/itinera/pkg/uuidv7"
)

/*
Build reads every collection from src once and assembles an immutable [Catalog].

Steps:
 1. Fetch regions, tours, attractions and edges.
 2. Validate records (ids, non-negative numbers, known regions).
 3. Link every edge in both directions, rejecting dangling references.
 4. Index tours per region in ascending id order.

Returns:
  - *Catalog: The validated snapshot
  - error: *LoadIntegrityError for inconsistent data, or the source error
*/
func Build(ctx context.Context, src Source) (*Catalog, error) {
	regionRecords, err := src.ListRegions(ctx)
	if err != nil {
		return nil, fmt.Errorf("catalog: list regions: %w", err)
	}
	tourRecords, err := src.ListTours(ctx)
	if err != nil {
		return nil, fmt.Errorf("catalog: list tours: %w", err)
	}
	attractionRecords, err := src.ListAttractions(ctx)
	if err != nil {
		return nil, fmt.Errorf("catalog: list attractions: %w", err)
	}
	edges, err := src.ListTourAttractionEdges(ctx)
	if err != nil {
		return nil, fmt.Errorf("catalog: list tour attraction edges: %w", err)
	}

	catalog := &Catalog{
		regions:       make(map[string]*Region, len(regionRecords)),
		tours:         make(map[string]*Tour, len(tourRecords)),
		attractions:   make(map[string]*Attraction, len(attractionRecords)),
		toursByRegion: make(map[string][]*Tour, len(regionRecords)),
	}

	// ── 1. Regions ───────────────────────────────────────────────────────
	for _, record := range regionRecords {
		if record.ID == "" {
			return nil, invalidRecord("region with empty id")
		}
		if _, exists := catalog.regions[record.ID]; exists {
			return nil, invalidRecord("duplicate region %q", record.ID)
		}

		region := &Region{
			ID:          record.ID,
			Name:        record.Name,
			Slug:        record.Slug,
			Description: record.Description,
		}
		if region.Slug == "" {
			region.Slug = slug.From(region.Name)
		}

		catalog.regions[region.ID] = region
		catalog.regionOrder = append(catalog.regionOrder, region)
	}
	sort.Slice(catalog.regionOrder, func(i, j int) bool {
		return catalog.regionOrder[i].ID < catalog.regionOrder[j].ID
	})

	// ── 2. Attractions ───────────────────────────────────────────────────
	for key, record := range attractionRecords {
		id, err := recordID("attraction", key, record.ID)
		if err != nil {
			return nil, err
		}
		if !isNonNegative(record.CulturalValue) {
			return nil, invalidRecord("attraction %q has invalid cultural value %v", id, record.CulturalValue)
		}

		catalog.attractions[id] = &Attraction{
			ID:            id,
			Name:          record.Name,
			CulturalValue: record.CulturalValue,
			TourIDs:       []string{},
		}
	}

	// ── 3. Tours ─────────────────────────────────────────────────────────
	for key, record := range tourRecords {
		id, err := recordID("tour", key, record.ID)
		if err != nil {
			return nil, err
		}
		if record.DurationDays < 0 {
			return nil, invalidRecord("tour %q has negative duration %d", id, record.DurationDays)
		}
		if !isNonNegative(record.Cost) {
			return nil, invalidRecord("tour %q has invalid cost %v", id, record.Cost)
		}
		if _, ok := catalog.regions[record.RegionID]; !ok {
			return nil, &LoadIntegrityError{Kind: KindUnknownRegion, TourID: id, RegionID: record.RegionID}
		}

		tour := &Tour{
			ID:           id,
			RegionID:     record.RegionID,
			Name:         record.Name,
			DurationDays: record.DurationDays,
			Cost:         record.Cost,
			Attractions:  []*Attraction{},
		}
		catalog.tours[id] = tour
		catalog.toursByRegion[tour.RegionID] = append(catalog.toursByRegion[tour.RegionID], tour)
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("catalog: build cancelled: %w", err)
	}

	// ── 4. Association (both directions) ─────────────────────────────────
	linked := make(map[Edge]struct{}, len(edges))
	for _, edge := range edges {
		tour, ok := catalog.tours[edge.TourID]
		if !ok {
			return nil, &LoadIntegrityError{Kind: KindDanglingTour, TourID: edge.TourID, AttractionID: edge.AttractionID}
		}
		attraction, ok := catalog.attractions[edge.AttractionID]
		if !ok {
			return nil, &LoadIntegrityError{Kind: KindDanglingAttraction, TourID: edge.TourID, AttractionID: edge.AttractionID}
		}

		// Edges form a set; repeats are ignored.
		if _, seen := linked[edge]; seen {
			continue
		}
		linked[edge] = struct{}{}

		tour.Attractions = append(tour.Attractions, attraction)
		attraction.TourIDs = append(attraction.TourIDs, tour.ID)
	}
	catalog.edges = len(linked)

	// ── 5. Deterministic ordering ────────────────────────────────────────
	for _, tour := range catalog.tours {
		sortAttractions(tour.Attractions)
	}
	for _, attraction := range catalog.attractions {
		sort.Strings(attraction.TourIDs)
	}
	for _, tours := range catalog.toursByRegion {
		sortTours(tours)
	}

	catalog.Version = uuidv7.New()
	catalog.LoadedAt = time.Now().UTC()

	return catalog, nil
}

// recordID reconciles a map key with the id stored inside the record.
func recordID(entity, key, id string) (string, error) {
	if id == "" {
		id = key
	}
	if id == "" {
		return "", invalidRecord("%s with empty id", entity)
	}
	if key != id {
		return "", invalidRecord("%s keyed %q carries id %q", entity, key, id)
	}
	return id, nil
}

func isNonNegative(value float64) bool {
	return !math.IsNaN(value) && !math.IsInf(value, 0) && value >= 0
}
