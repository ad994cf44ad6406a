// Package pathsearch defines the option surface, sentinel errors, and
// result types for route enumeration.
package pathsearch

import (
	"errors"

	"github.com/sirupsen/logrus"
)

var log *logrus.Logger

func init() {
	log = logrus.New()
}

// Sentinel errors returned by Search.
var (
	// ErrNilStep indicates a nil successor function.
	ErrNilStep = errors.New("pathsearch: step function is nil")

	// ErrNilGoal indicates a nil goal predicate.
	ErrNilGoal = errors.New("pathsearch: goal predicate is nil")

	// ErrBadMaxSteps indicates that WithMaxSteps was given a negative value.
	ErrBadMaxSteps = errors.New("pathsearch: MaxSteps must be non-negative")
)

// Mode selects what Search counts.
type Mode int

const (
	// DistinctPaths counts every distinct complete route to a goal.
	DistinctPaths Mode = iota

	// DistinctEndpoints counts each reachable goal node exactly once,
	// sharing one visited set across the whole walk.
	DistinctEndpoints
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case DistinctPaths:
		return "DistinctPaths"
	case DistinctEndpoints:
		return "DistinctEndpoints"
	default:
		return "Unknown"
	}
}

// StepFunc enumerates the successors of n. Returning an empty slice ends
// the route at n without reaching a goal.
type StepFunc[N comparable] func(n N) []N

// GoalFunc reports whether n completes a route.
type GoalFunc[N comparable] func(n N) bool

// Options configures a Search run.
type Options struct {
	// Mode selects the counting semantics. Default DistinctPaths.
	Mode Mode

	// MaxSteps caps the number of frame expansions; 0 means no cap.
	// A capped run that stops early reports Truncated on its Result.
	MaxSteps int
}

// Option is a functional option for Search.
type Option func(*Options)

// DefaultOptions returns the baseline configuration: DistinctPaths
// counting, no step cap.
func DefaultOptions() Options {
	return Options{
		Mode:     DistinctPaths,
		MaxSteps: 0,
	}
}

// WithMode selects the counting semantics.
func WithMode(m Mode) Option {
	return func(o *Options) {
		o.Mode = m
	}
}

// WithMaxSteps bounds the number of frame expansions.
// Panics with ErrBadMaxSteps on a negative value.
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		if n < 0 {
			panic(ErrBadMaxSteps.Error())
		}
		o.MaxSteps = n
	}
}

// Result carries the outcome of one Search run.
type Result[N comparable] struct {
	// Count is the number of routes (DistinctPaths) or reachable goal
	// nodes (DistinctEndpoints) found before the walk ended.
	Count int

	// Truncated reports that the walk hit the MaxSteps cap and Count is
	// therefore a lower bound.
	Truncated bool

	first []N
}

// FirstPath returns one complete route from the start to the first goal
// reached, in depth-first discovery order, or nil when no goal was found.
// The returned slice is a copy; callers may modify it.
func (r *Result[N]) FirstPath() []N {
	if r.first == nil {
		return nil
	}
	out := make([]N, len(r.first))
	copy(out, r.first)

	return out
}
