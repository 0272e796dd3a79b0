// Copyright (c) 2026 Itinera. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"errors"
	"fmt"
)

// ErrLoadIntegrity matches every [*LoadIntegrityError] via [errors.Is].
var ErrLoadIntegrity = errors.New("catalog: load integrity violation")

// IntegrityKind classifies a load integrity violation.
type IntegrityKind string

const (
	// KindDanglingTour: an edge references a tour id absent from the tour map.
	KindDanglingTour IntegrityKind = "dangling_tour"
	// KindDanglingAttraction: an edge references an unknown attraction id.
	KindDanglingAttraction IntegrityKind = "dangling_attraction"
	// KindUnknownRegion: a tour belongs to a region absent from the region list.
	KindUnknownRegion IntegrityKind = "unknown_region"
	// KindInvalidRecord: a record is malformed (empty or mismatched id, negative value, duplicate).
	KindInvalidRecord IntegrityKind = "invalid_record"
)

// LoadIntegrityError reports a catalog that cannot be built. It is fatal for
// the load that produced it; no partial catalog is ever returned.
type LoadIntegrityError struct {
	Kind         IntegrityKind
	TourID       string
	AttractionID string
	RegionID     string
	Detail       string
}

func (e *LoadIntegrityError) Error() string {
	switch e.Kind {
	case KindDanglingTour:
		return fmt.Sprintf("catalog: edge (%s, %s) references unknown tour %q", e.TourID, e.AttractionID, e.TourID)
	case KindDanglingAttraction:
		return fmt.Sprintf("catalog: edge (%s, %s) references unknown attraction %q", e.TourID, e.AttractionID, e.AttractionID)
	case KindUnknownRegion:
		return fmt.Sprintf("catalog: tour %q references unknown region %q", e.TourID, e.RegionID)
	default:
		return "catalog: invalid record: " + e.Detail
	}
}

// Is makes every LoadIntegrityError match [ErrLoadIntegrity].
func (e *LoadIntegrityError) Is(target error) bool {
	return target == ErrLoadIntegrity
}

func invalidRecord(format string, args ...any) *LoadIntegrityError {
	return &LoadIntegrityError{Kind: KindInvalidRecord, Detail: fmt.Sprintf(format, args...)}
}
