// Copyright (c) 2026 Itinera. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package planner selects the most valuable tour package of a region.

Given the tours of one region, [Search] walks every subset with a binary
include/exclude decision per tour and keeps the feasible subset of highest
total cultural value. A subset is feasible when its total days and total cost
stay within the limits and no attraction is visited by two of its tours.

[Service] wraps the search with constraint validation, region lookup against
the active catalog snapshot and an optional result cache.
*/
package planner

import (
	"context"
	"fmt"
	"math"

	"github.com/taibuivan/itinera/internal/core/catalog"
)

// Limits are the resolved search bounds. Use [math.Inf] for "no limit".
type Limits struct {
	MaxDays   float64
	MaxBudget float64
}

// Unbounded returns limits that accept any package.
func Unbounded() Limits {
	return Limits{MaxDays: math.Inf(1), MaxBudget: math.Inf(1)}
}

// Result is the best package found by [Search].
type Result struct {
	// Tours are in candidate order.
	Tours      []*catalog.Tour
	TotalDays  int
	TotalCost  float64
	TotalValue float64

	// Nodes counts the decision tree nodes visited.
	Nodes int64
}

// searchState is the working set of one Search call. Nothing in it outlives
// the call, so concurrent searches never share state.
type searchState struct {
	ctx        context.Context
	done       <-chan struct{}
	candidates []*catalog.Tour
	limits     Limits

	// Partial package, mutated in place with push/pop. Running totals are
	// passed down the recursion instead.
	chosen  []*catalog.Tour
	claimed map[string]struct{}

	best      []*catalog.Tour
	bestDays  int
	bestCost  float64
	bestValue float64

	nodes int64
}

/*
Search explores every include/exclude combination of candidates and returns
the feasible subset of maximal cultural value.

Candidates are considered in the given order and the exclude branch is always
explored before the include branch. The best package is only replaced on a
strictly greater value, so among packages of equal value the one found first
wins: the smallest decision sequence when exclude orders before include. For
two tied single-tour packages {A} and {B} with A before B, {B} is returned.

Parameters:
  - ctx: Polled at every node; cancellation aborts the search
  - candidates: Tours of a single region, in the desired decision order
  - limits: Resolved day and budget bounds

Returns:
  - Result: Best package (possibly empty, value 0)
  - error: Wrapped ctx.Err() if the search was cancelled
*/
func Search(ctx context.Context, candidates []*catalog.Tour, limits Limits) (Result, error) {
	state := &searchState{
		ctx:        ctx,
		done:       ctx.Done(),
		candidates: candidates,
		limits:     limits,
		chosen:     make([]*catalog.Tour, 0, len(candidates)),
		claimed:    make(map[string]struct{}),
		bestValue:  -1,
	}

	if err := state.explore(0, 0, 0, 0); err != nil {
		return Result{Nodes: state.nodes}, err
	}

	return Result{
		Tours:      state.best,
		TotalDays:  state.bestDays,
		TotalCost:  state.bestCost,
		TotalValue: state.bestValue,
		Nodes:      state.nodes,
	}, nil
}

func (state *searchState) explore(index, days int, cost, value float64) error {
	state.nodes++
	if state.done != nil {
		select {
		case <-state.done:
			return fmt.Errorf("planner: search cancelled after %d nodes: %w", state.nodes, state.ctx.Err())
		default:
		}
	}

	if index == len(state.candidates) {
		if value > state.bestValue {
			state.best = append(make([]*catalog.Tour, 0, len(state.chosen)), state.chosen...)
			state.bestDays = days
			state.bestCost = cost
			state.bestValue = value
		}
		return nil
	}

	// Exclude first.
	if err := state.explore(index+1, days, cost, value); err != nil {
		return err
	}

	tour := state.candidates[index]
	if !state.fits(tour, days, cost) {
		return nil
	}

	added := state.include(tour)
	err := state.explore(index+1, days+tour.DurationDays, cost+tour.Cost, value+added)
	state.exclude(tour)
	return err
}

// fits reports whether tour can join the partial package.
func (state *searchState) fits(tour *catalog.Tour, days int, cost float64) bool {
	if float64(days+tour.DurationDays) > state.limits.MaxDays {
		return false
	}
	if cost+tour.Cost > state.limits.MaxBudget {
		return false
	}
	for _, attraction := range tour.Attractions {
		if _, taken := state.claimed[attraction.ID]; taken {
			return false
		}
	}
	return true
}

// include pushes tour and claims its attractions. It returns the value added,
// counted over attractions not already claimed.
func (state *searchState) include(tour *catalog.Tour) float64 {
	var added float64
	for _, attraction := range tour.Attractions {
		if _, taken := state.claimed[attraction.ID]; taken {
			continue
		}
		state.claimed[attraction.ID] = struct{}{}
		added += attraction.CulturalValue
	}

	state.chosen = append(state.chosen, tour)
	return added
}

// exclude undoes include. Only valid for a tour that passed fits, so every
// attraction it visits was claimed by it.
func (state *searchState) exclude(tour *catalog.Tour) {
	for _, attraction := range tour.Attractions {
		delete(state.claimed, attraction.ID)
	}
	state.chosen = state.chosen[:len(state.chosen)-1]
}
