// Copyright (c) 2026 Itinera. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package planner

import (
	"context"
	"strconv"
	"strings"

	"github.com/taibuivan/itinera/internal/platform/constants"
)

// CachedPackage is the serialized form of a generated package. Tours are kept
// as ids and resolved against the catalog snapshot on read.
type CachedPackage struct {
	TourIDs    []string `json:"tour_ids"`
	TotalDays  int      `json:"total_days"`
	TotalCost  float64  `json:"total_cost"`
	TotalValue float64  `json:"total_value"`
	Candidates int      `json:"candidates"`
	Nodes      int64    `json:"nodes"`
}

// Cache stores generated packages. Implementations must be safe for
// concurrent use. A miss is (nil, false, nil).
type Cache interface {
	Get(ctx context.Context, key string) (*CachedPackage, bool, error)
	Set(ctx context.Context, key string, value *CachedPackage) error
}

// NopCache never stores anything.
type NopCache struct{}

// Get implements [Cache].
func (NopCache) Get(context.Context, string) (*CachedPackage, bool, error) {
	return nil, false, nil
}

// Set implements [Cache].
func (NopCache) Set(context.Context, string, *CachedPackage) error {
	return nil
}

// CacheKey builds the cache key of a search. The catalog version is part of
// the key, so a reload never serves stale packages.
//
//	planner:package:<version>:<region>:<days|inf>:<budget|inf>
func CacheKey(catalogVersion, regionID string, constraints Constraints) string {
	days := "inf"
	if constraints.MaxDays != nil {
		days = strconv.Itoa(*constraints.MaxDays)
	}
	budget := "inf"
	if constraints.MaxBudget != nil {
		budget = strconv.FormatFloat(*constraints.MaxBudget, 'g', -1, 64)
	}

	return strings.Join([]string{
		constants.RedisPrefixPackage + catalogVersion,
		regionID,
		days,
		budget,
	}, ":")
}
