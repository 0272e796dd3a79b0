// Copyright (c) 2026 Itinera. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"context"
	"maps"
	"slices"
)

// # Relation Loader Contract

// RegionRecord is a raw region row.
type RegionRecord struct {
	ID          string
	Name        string
	Slug        string
	Description string
}

// TourRecord is a raw tour row, without its attractions.
type TourRecord struct {
	ID           string
	RegionID     string
	Name         string
	DurationDays int
	Cost         float64
}

// AttractionRecord is a raw attraction row.
type AttractionRecord struct {
	ID            string
	Name          string
	CulturalValue float64
}

// Edge is one (tour, attraction) association.
type Edge struct {
	TourID       string
	AttractionID string
}

// Source supplies the raw catalog. It is consulted once per [Build].
//
// Implementations: [PostgresSource], [SQLiteSource], [MemorySource] (also
// produced by [LoadYAML]).
type Source interface {
	ListRegions(ctx context.Context) ([]RegionRecord, error)
	ListTours(ctx context.Context) (map[string]TourRecord, error)
	ListAttractions(ctx context.Context) (map[string]AttractionRecord, error)
	ListTourAttractionEdges(ctx context.Context) ([]Edge, error)
}

// # In-Memory Source

// MemorySource serves a catalog held in plain Go values.
type MemorySource struct {
	Regions     []RegionRecord
	Tours       map[string]TourRecord
	Attractions map[string]AttractionRecord
	Edges       []Edge
}

// ListRegions implements [Source].
func (source *MemorySource) ListRegions(context.Context) ([]RegionRecord, error) {
	return slices.Clone(source.Regions), nil
}

// ListTours implements [Source].
func (source *MemorySource) ListTours(context.Context) (map[string]TourRecord, error) {
	return maps.Clone(source.Tours), nil
}

// ListAttractions implements [Source].
func (source *MemorySource) ListAttractions(context.Context) (map[string]AttractionRecord, error) {
	return maps.Clone(source.Attractions), nil
}

// ListTourAttractionEdges implements [Source].
func (source *MemorySource) ListTourAttractionEdges(context.Context) ([]Edge, error) {
	return slices.Clone(source.Edges), nil
}
