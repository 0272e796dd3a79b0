// Copyright (c) 2026 Itinera. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package planner

import (
	"context"
	"errors"

	"github.com/taibuivan/itinera/internal/platform/apperr"
)

// Domain sentinels. They travel as the Cause of the [apperr.AppError]
// returned by [Service.GeneratePackage].
var (
	// ErrMissingRegion: the request names no region.
	ErrMissingRegion = errors.New("planner: region id is required")

	// ErrInvalidConstraint: a supplied limit is negative or NaN.
	ErrInvalidConstraint = errors.New("planner: invalid constraint")

	// ErrUnknownRegion: the region id is not in the active catalog.
	ErrUnknownRegion = errors.New("planner: unknown region")

	// ErrTooManyCandidates: the region has more tours than an exhaustive
	// search is allowed to explore.
	ErrTooManyCandidates = errors.New("planner: too many candidate tours")
)

// searchFailure maps a search error to the API error model.
func searchFailure(err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return apperr.ServiceUnavailable("Package search did not finish in time").WithCause(err)
	}
	return apperr.Internal(err)
}
