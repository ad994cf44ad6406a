package floodfill

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/gridpath/geometry"
)

// Perimeter returns the region's fence count in unit edges: the sum of
// per-tile fences over every member tile.
// Panics if id is not a valid RegionID of this result (caller bug).
func (r *Result[T]) Perimeter(id RegionID) int {
	region := r.Regions[id]
	total := 0
	for _, addr := range region.Addresses {
		total += r.fences.MustGet(addr).Len()
	}

	return total
}

// Sides returns the number of maximal contiguous runs of same-direction
// fences along the region's boundary.
//
// For every fenced tile-direction pair not yet seen, one side is counted
// and the run is walked perpendicular to the fence direction — in both
// senses — for as long as the neighboring tile belongs to the same region
// and carries a fence in the same direction, marking each pair seen.
// Panics if id is not a valid RegionID of this result (caller bug).
func (r *Result[T]) Sides(id RegionID) int {
	region := r.Regions[id]
	seen := mapset.New[fenceKey]()
	sides := 0

	for _, addr := range region.Addresses {
		fs := *r.fences.MustGet(addr)
		for _, c := range geometry.Cardinals {
			if !fs.Contains(c) || seen.Has(fenceKey{addr: addr, dir: c}) {
				continue
			}
			sides++
			seen.Put(fenceKey{addr: addr, dir: c})
			length := 1

			// Walk the run in both perpendicular senses.
			for _, d := range []geometry.GridDelta{c.TurnRight().Delta(), c.TurnLeft().Delta()} {
				pos := addr
				for {
					next, ok := pos.CheckedAdd(d)
					if !ok {
						break
					}
					if nid, onGrid := r.RegionAt(next); !onGrid || nid != id {
						break
					}
					if !r.fences.MustGet(next).Contains(c) {
						break
					}
					seen.Put(fenceKey{addr: next, dir: c})
					length++
					pos = next
				}
			}

			log.Debugf("floodfill: region %d has a %v side of length %d starting at (%d,%d)",
				id, c, length, addr.X, addr.Y)
		}
	}

	return sides
}

// PerimeterPrice sums size×perimeter over all regions.
func (r *Result[T]) PerimeterPrice() int {
	return r.price(r.Perimeter)
}

// SidePrice sums size×sides over all regions.
func (r *Result[T]) SidePrice() int {
	return r.price(r.Sides)
}

// price is the single aggregation both costings share: each region
// contributes its size multiplied by the supplied boundary metric.
func (r *Result[T]) price(metric func(RegionID) int) int {
	total := 0
	for _, region := range r.Regions {
		total += region.Size() * metric(region.ID)
	}

	return total
}
