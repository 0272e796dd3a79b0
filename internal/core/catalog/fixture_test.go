// Copyright (c) 2026 Itinera. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"

	"github.com/taibuivan/itinera/internal/core/catalog"
)

// demoSource is the Riviera scenario: three tours, three attractions, one
// attraction (a1) shared by tours A and C, plus an empty region T.
func demoSource() *catalog.MemorySource {
	return &catalog.MemorySource{
		Regions: []catalog.RegionRecord{
			{ID: "T", Name: "Toscana"},
			{ID: "R", Name: "Riviera", Slug: "riviera"},
		},
		Tours: map[string]catalog.TourRecord{
			"C": {ID: "C", RegionID: "R", DurationDays: 3, Cost: 200},
			"A": {ID: "A", RegionID: "R", DurationDays: 2, Cost: 100},
			"B": {ID: "B", RegionID: "R", DurationDays: 1, Cost: 50},
		},
		Attractions: map[string]catalog.AttractionRecord{
			"a1": {ID: "a1", CulturalValue: 5},
			"a2": {ID: "a2", CulturalValue: 3},
			"a3": {ID: "a3", CulturalValue: 10},
		},
		Edges: []catalog.Edge{
			{TourID: "C", AttractionID: "a1"},
			{TourID: "A", AttractionID: "a2"},
			{TourID: "A", AttractionID: "a1"},
			{TourID: "B", AttractionID: "a3"},
		},
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// switchableSource serves whatever MemorySource is currently set, or fails.
type switchableSource struct {
	mu      sync.Mutex
	current *catalog.MemorySource
	err     error
}

func (s *switchableSource) set(source *catalog.MemorySource, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current, s.err = source, err
}

func (s *switchableSource) get() (*catalog.MemorySource, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current, s.err
}

func (s *switchableSource) ListRegions(ctx context.Context) ([]catalog.RegionRecord, error) {
	source, err := s.get()
	if err != nil {
		return nil, err
	}
	return source.ListRegions(ctx)
}

func (s *switchableSource) ListTours(ctx context.Context) (map[string]catalog.TourRecord, error) {
	source, err := s.get()
	if err != nil {
		return nil, err
	}
	return source.ListTours(ctx)
}

func (s *switchableSource) ListAttractions(ctx context.Context) (map[string]catalog.AttractionRecord, error) {
	source, err := s.get()
	if err != nil {
		return nil, err
	}
	return source.ListAttractions(ctx)
}

func (s *switchableSource) ListTourAttractionEdges(ctx context.Context) ([]catalog.Edge, error) {
	source, err := s.get()
	if err != nil {
		return nil, err
	}
	return source.ListTourAttractionEdges(ctx)
}

var errSourceDown = errors.New("source unavailable")
