// Copyright (c) 2026 Itinera. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// yamlFixture is the on-disk shape of a catalog fixture.
//
//	regions:
//	  - id: R
//	    name: Riviera
//	attractions:
//	  - id: a1
//	    cultural_value: 5
//	tours:
//	  - id: A
//	    region_id: R
//	    duration_days: 2
//	    cost: 100
//	    attractions: [a1, a2]
type yamlFixture struct {
	Regions []struct {
		ID          string `yaml:"id"`
		Name        string `yaml:"name"`
		Slug        string `yaml:"slug"`
		Description string `yaml:"description"`
	} `yaml:"regions"`
	Attractions []struct {
		ID            string  `yaml:"id"`
		Name          string  `yaml:"name"`
		CulturalValue float64 `yaml:"cultural_value"`
	} `yaml:"attractions"`
	Tours []struct {
		ID           string   `yaml:"id"`
		RegionID     string   `yaml:"region_id"`
		Name         string   `yaml:"name"`
		DurationDays int      `yaml:"duration_days"`
		Cost         float64  `yaml:"cost"`
		Attractions  []string `yaml:"attractions"`
	} `yaml:"tours"`
}

// OpenYAML reads a YAML fixture file into a [MemorySource].
func OpenYAML(path string) (*MemorySource, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: open fixture: %w", err)
	}
	defer file.Close()

	return LoadYAML(file)
}

// LoadYAML decodes a YAML fixture. Unknown keys are rejected and duplicate
// tour or attraction ids are reported as [KindInvalidRecord]; referential
// checks are left to [Build].
func LoadYAML(reader io.Reader) (*MemorySource, error) {
	decoder := yaml.NewDecoder(reader)
	decoder.KnownFields(true)

	var fixture yamlFixture
	if err := decoder.Decode(&fixture); err != nil && err != io.EOF {
		return nil, fmt.Errorf("catalog: decode fixture: %w", err)
	}

	source := &MemorySource{
		Regions:     make([]RegionRecord, 0, len(fixture.Regions)),
		Tours:       make(map[string]TourRecord, len(fixture.Tours)),
		Attractions: make(map[string]AttractionRecord, len(fixture.Attractions)),
	}

	for _, region := range fixture.Regions {
		source.Regions = append(source.Regions, RegionRecord{
			ID:          region.ID,
			Name:        region.Name,
			Slug:        region.Slug,
			Description: region.Description,
		})
	}

	for _, attraction := range fixture.Attractions {
		if _, exists := source.Attractions[attraction.ID]; exists {
			return nil, invalidRecord("duplicate attraction %q", attraction.ID)
		}
		source.Attractions[attraction.ID] = AttractionRecord{
			ID:            attraction.ID,
			Name:          attraction.Name,
			CulturalValue: attraction.CulturalValue,
		}
	}

	for _, tour := range fixture.Tours {
		if _, exists := source.Tours[tour.ID]; exists {
			return nil, invalidRecord("duplicate tour %q", tour.ID)
		}
		source.Tours[tour.ID] = TourRecord{
			ID:           tour.ID,
			RegionID:     tour.RegionID,
			Name:         tour.Name,
			DurationDays: tour.DurationDays,
			Cost:         tour.Cost,
		}
		for _, attractionID := range tour.Attractions {
			source.Edges = append(source.Edges, Edge{TourID: tour.ID, AttractionID: attractionID})
		}
	}

	return source, nil
}
