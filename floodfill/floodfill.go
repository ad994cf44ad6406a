// Package floodfill implements explicit-stack flood fill with per-tile
// fence tracking over a grid.Grid.
package floodfill

import (
	"github.com/gammazero/deque"

	"github.com/katalvlaran/gridpath/geometry"
	"github.com/katalvlaran/gridpath/grid"
)

// Fill partitions g into maximal connected regions of equivalent tiles.
//
// Returns:
//
//   - A Result with the region roster, the per-tile region assignment, and
//     the per-tile fence sets.
//   - ErrNilGrid if g is nil. Grid emptiness cannot occur here: grid.New
//     refuses to construct an empty grid.
//
// The input grid is read-only during the fill; all annotation lives in the
// Result. Complexity: O(W×H) time and memory.
func Fill[T comparable](g *grid.Grid[T], opts ...Option[T]) (*Result[T], error) {
	if g == nil {
		return nil, ErrNilGrid
	}

	// 1) Build options.
	cfg := DefaultOptions[T]()
	for _, opt := range opts {
		opt(&cfg)
	}
	equiv := cfg.Equiv
	if equiv == nil {
		equiv = func(a, b T) bool { return a == b }
	}

	// 2) Allocate the annotation layers. Dimensions mirror g, so the
	//    constructors cannot fail.
	ids, err := grid.NewFilled(g.Width(), g.Height(), NoRegion)
	if err != nil {
		return nil, err
	}
	fences, err := grid.NewFilled(g.Width(), g.Height(), geometry.CardinalSet(0))
	if err != nil {
		return nil, err
	}

	res := &Result[T]{ids: ids, fences: fences}

	// 3) Raster scan; flood from every address not yet assigned.
	var stack deque.Deque[geometry.GridAddress]
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			seed := geometry.GridAddress{X: x, Y: y}
			if *ids.MustGet(seed) != NoRegion {
				continue
			}
			id := RegionID(len(res.Regions))
			res.Regions = append(res.Regions, Region[T]{ID: id, Value: *g.MustGet(seed)})
			res.flood(g, equiv, id, seed, &stack)
		}
	}

	return res, nil
}

// flood assigns id to every tile connected to seed through equivalent
// tiles, recording a fence on each cardinal edge that leaves the region.
// Runs on an explicit stack: region size cannot overflow the call stack.
func (r *Result[T]) flood(g *grid.Grid[T], equiv func(a, b T) bool, id RegionID, seed geometry.GridAddress, stack *deque.Deque[geometry.GridAddress]) {
	region := &r.Regions[id]

	*r.ids.MustGet(seed) = id
	stack.PushBack(seed)

	for stack.Len() > 0 {
		cur := stack.PopBack()
		region.Addresses = append(region.Addresses, cur)
		tile := g.MustGet(cur)

		for _, c := range geometry.Cardinals {
			next, ok := cur.Step(c)
			var neighbor *T
			if ok {
				neighbor, ok = g.GetAt(next)
			}
			if !ok || !equiv(*tile, *neighbor) {
				// Edge leaves the region: off-grid in either direction, or
				// a tile of a different equivalence class.
				r.fences.MustGet(cur).Insert(c)
				continue
			}
			if p := r.ids.MustGet(next); *p == NoRegion {
				// Claim at push time so each tile enters the stack once.
				*p = id
				stack.PushBack(next)
			}
		}
	}
}
