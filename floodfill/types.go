// Package floodfill defines the option surface, sentinel errors, and
// result types for region discovery.
package floodfill

import (
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/gridpath/geometry"
	"github.com/katalvlaran/gridpath/grid"
)

var log *logrus.Logger

func init() {
	log = logrus.New()
}

// ErrNilGrid is returned when Fill receives a nil grid.
var ErrNilGrid = errors.New("floodfill: grid is nil")

// RegionID identifies one maximal connected region within a single Fill
// result. IDs are dense: 0..len(Regions)-1, assigned in raster discovery
// order.
type RegionID int

// NoRegion marks a tile not yet assigned to any region. It never appears
// in a completed Result.
const NoRegion RegionID = -1

// Options configures a Fill run.
type Options[T comparable] struct {
	// Equiv decides whether two tiles belong to the same equivalence
	// class. Nil means ==.
	Equiv func(a, b T) bool
}

// Option is a functional option for Fill.
type Option[T comparable] func(*Options[T])

// DefaultOptions returns the baseline configuration: tiles compare with ==.
func DefaultOptions[T comparable]() Options[T] {
	return Options[T]{Equiv: nil}
}

// WithEquiv overrides the equivalence predicate. fn must be an equivalence
// relation; nil is ignored.
func WithEquiv[T comparable](fn func(a, b T) bool) Option[T] {
	return func(o *Options[T]) {
		if fn != nil {
			o.Equiv = fn
		}
	}
}

// Region is one maximal set of cardinal-connected, pairwise-equivalent
// tiles.
type Region[T comparable] struct {
	// ID is the region's dense identifier.
	ID RegionID
	// Value is the tile value the region was seeded from.
	Value T
	// Addresses lists every member tile in flood discovery order.
	Addresses []geometry.GridAddress
}

// Size returns the number of tiles in the region.
func (r Region[T]) Size() int {
	return len(r.Addresses)
}

// Result holds a completed flood: the per-tile region assignment, the
// per-tile fence sets, and the region roster. A Result is owned by the
// caller and is independent of any other Fill run.
type Result[T comparable] struct {
	// Regions lists all discovered regions; Regions[i].ID == RegionID(i).
	Regions []Region[T]

	ids    *grid.Grid[RegionID]
	fences *grid.Grid[geometry.CardinalSet]
}

// RegionAt returns the region id owning addr, or ok=false off-grid.
func (r *Result[T]) RegionAt(addr geometry.GridAddress) (RegionID, bool) {
	p, ok := r.ids.GetAt(addr)
	if !ok {
		return NoRegion, false
	}

	return *p, true
}

// FencesAt returns the fence set of the tile at addr, or ok=false off-grid.
func (r *Result[T]) FencesAt(addr geometry.GridAddress) (geometry.CardinalSet, bool) {
	p, ok := r.fences.GetAt(addr)
	if !ok {
		return 0, false
	}

	return *p, true
}

// fenceKey identifies one fenced tile-direction pair during side counting.
type fenceKey struct {
	addr geometry.GridAddress
	dir  geometry.Cardinal
}
