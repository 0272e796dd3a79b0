// Copyright (c) 2026 Itinera. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package catalog holds the in-memory tour catalog the planner searches.

A [Catalog] is built exactly once from a [Source] by [Build] and is read-only
from then on: every Region, Tour and Attraction pointer it hands out may be
shared freely between goroutines. Reloading produces a brand new Catalog that
a [Holder] swaps in atomically.

# Association

Tours and attractions form a many-to-many relation. Each Tour points at the
shared Attraction values it visits and each Attraction records the ids of the
tours that include it. [Build] establishes both directions in the same step,
so an inconsistency can only be a loader defect.
*/
package catalog

import (
	"sort"
	"time"
)

// # Entities

// Region is a geographic grouping of tours.
type Region struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
}

// Attraction is a point of cultural interest.
type Attraction struct {
	ID            string  `json:"id"`
	Name          string  `json:"name,omitempty"`
	CulturalValue float64 `json:"cultural_value"`

	// TourIDs lists, in ascending order, the tours that visit this attraction.
	// Informational back-reference; the catalog owns the attraction.
	TourIDs []string `json:"tour_ids"`
}

// Tour is a fixed-duration, fixed-cost itinerary within one region.
type Tour struct {
	ID           string  `json:"id"`
	RegionID     string  `json:"region_id"`
	Name         string  `json:"name,omitempty"`
	DurationDays int     `json:"duration_days"`
	Cost         float64 `json:"cost"`

	// Attractions are shared with every other tour visiting them, sorted by id.
	// Read-only after Build.
	Attractions []*Attraction `json:"attractions"`
}

// CulturalValue sums the value of every attraction the tour visits.
func (tour *Tour) CulturalValue() float64 {
	var total float64
	for _, attraction := range tour.Attractions {
		total += attraction.CulturalValue
	}
	return total
}

// # Catalog

// Stats summarizes the size of a catalog.
type Stats struct {
	Regions     int `json:"regions"`
	Tours       int `json:"tours"`
	Attractions int `json:"attractions"`
	Edges       int `json:"edges"`
}

// Catalog is an immutable snapshot of regions, tours and attractions.
type Catalog struct {
	// Version identifies this snapshot (UUIDv7, time ordered).
	Version string
	// LoadedAt is when Build finished.
	LoadedAt time.Time

	regions       map[string]*Region
	regionOrder   []*Region
	tours         map[string]*Tour
	attractions   map[string]*Attraction
	toursByRegion map[string][]*Tour
	edges         int
}

// Regions returns every region in ascending id order.
func (c *Catalog) Regions() []*Region {
	out := make([]*Region, len(c.regionOrder))
	copy(out, c.regionOrder)
	return out
}

// Region looks up a region by id.
func (c *Catalog) Region(id string) (*Region, bool) {
	region, ok := c.regions[id]
	return region, ok
}

// Tour looks up a tour by id.
func (c *Catalog) Tour(id string) (*Tour, bool) {
	tour, ok := c.tours[id]
	return tour, ok
}

// Attraction looks up an attraction by id.
func (c *Catalog) Attraction(id string) (*Attraction, bool) {
	attraction, ok := c.attractions[id]
	return attraction, ok
}

// ToursInRegion returns the tours of a region in ascending tour id order.
//
// This is the fixed candidate order of the planner. The returned slice is a
// copy; the tours themselves are shared.
func (c *Catalog) ToursInRegion(regionID string) []*Tour {
	tours := c.toursByRegion[regionID]
	out := make([]*Tour, len(tours))
	copy(out, tours)
	return out
}

// TourCount returns how many tours belong to a region.
func (c *Catalog) TourCount(regionID string) int {
	return len(c.toursByRegion[regionID])
}

// Stats reports the size of the catalog.
func (c *Catalog) Stats() Stats {
	return Stats{
		Regions:     len(c.regions),
		Tours:       len(c.tours),
		Attractions: len(c.attractions),
		Edges:       c.edges,
	}
}

func sortTours(tours []*Tour) {
	sort.Slice(tours, func(i, j int) bool { return tours[i].ID < tours[j].ID })
}

func sortAttractions(attractions []*Attraction) {
	sort.Slice(attractions, func(i, j int) bool { return attractions[i].ID < attractions[j].ID })
}
