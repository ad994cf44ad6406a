// Package dijkstra defines the option surface, sentinel errors, and result
// types for the shortest-path search.
package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by the search.
var (
	// ErrNilNeighbors indicates a nil adjacency function.
	ErrNilNeighbors = errors.New("dijkstra: neighbor function is nil")

	// ErrNilGoal indicates a nil goal predicate.
	ErrNilGoal = errors.New("dijkstra: goal predicate is nil")

	// ErrNoPath indicates that no goal node is reachable from the start.
	// This is a normal outcome of valid inputs, not a program fault.
	ErrNoPath = errors.New("dijkstra: no path from start to any goal")

	// ErrNegativeCost indicates that the adjacency function produced an
	// edge with negative cost, which the algorithm cannot handle.
	ErrNegativeCost = errors.New("dijkstra: negative edge cost encountered")

	// ErrBadMaxCost indicates that WithMaxCost was given a negative value.
	ErrBadMaxCost = errors.New("dijkstra: MaxCost must be non-negative")
)

// Edge is one outgoing adjacency: the node it leads to and the
// non-negative cost of taking it.
type Edge[N comparable] struct {
	To   N
	Cost int64
}

// NeighborFunc enumerates the edges leaving n. It is the application's
// model of the terrain: moving, turning, or any other transition, each
// with its own cost.
type NeighborFunc[N comparable] func(n N) []Edge[N]

// GoalFunc reports whether n is a goal node. Several distinct nodes may
// satisfy it — e.g. the same address under different headings.
type GoalFunc[N comparable] func(n N) bool

// HeuristicFunc estimates the remaining cost from n to the nearest goal.
// It must never overestimate (admissible) and must be consistent.
type HeuristicFunc[N comparable] func(n N) int64

// Options configures a search run.
type Options[N comparable] struct {
	// MaxCost caps exploration: nodes whose best cost exceeds it are
	// never finalized. Default math.MaxInt64 (no cap).
	MaxCost int64
	// Heuristic, when non-nil, turns the search into A*.
	Heuristic HeuristicFunc[N]
}

// Option is a functional option for Dijkstra.
type Option[N comparable] func(*Options[N])

// DefaultOptions returns the baseline configuration: no cost cap, no
// heuristic.
func DefaultOptions[N comparable]() Options[N] {
	return Options[N]{
		MaxCost:   math.MaxInt64,
		Heuristic: nil,
	}
}

// WithMaxCost caps the cost up to which nodes are explored.
// Panics with ErrBadMaxCost on a negative value: an invalid configuration
// is a caller bug, surfaced early.
func WithMaxCost[N comparable](max int64) Option[N] {
	return func(o *Options[N]) {
		if max < 0 {
			panic(ErrBadMaxCost.Error())
		}
		o.MaxCost = max
	}
}

// WithHeuristic enables A* ordering with the given remaining-cost
// estimate; nil is ignored.
func WithHeuristic[N comparable](h HeuristicFunc[N]) Option[N] {
	return func(o *Options[N]) {
		if h != nil {
			o.Heuristic = h
		}
	}
}
