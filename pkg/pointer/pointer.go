// Copyright (c) 2026 Itinera. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package pointer provides generic helpers for optional values.

Optional planner limits are modelled as pointers (nil meaning "no limit"), so
callers frequently need a pointer to a literal.
*/
package pointer

// To returns a pointer to the provided value.
// It is useful when you need to pass a literal to a field that expects a
// pointer (e.g. pointer.To(150.0)).
func To[T any](v T) *T {
	return &v
}
