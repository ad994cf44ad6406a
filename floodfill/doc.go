// Package floodfill partitions a grid into maximal connected regions of
// equivalent tiles, records which tile edges cross a region boundary, and
// prices each region two ways.
//
// Overview:
//
//   - Fill scans all addresses in raster (row-major) order. For every
//     address not yet assigned a region, it allocates a fresh RegionID and
//     floods outward along cardinal adjacency, collecting every tile whose
//     value is equivalent to the region's.
//   - Flooding runs on an explicit stack, so region size is bounded only by
//     memory — never by call-stack depth.
//   - While flooding, each of a tile's four cardinal edges that borders a
//     tile outside its region (a non-equivalent tile, or the outside of the
//     grid) is recorded as a "fence" in a per-tile CardinalSet.
//
// Costings over the completed flood:
//
//   - Perimeter counts a region's fences in unit edges: a size-1 region has
//     up to 4 fences; a W×H rectangle has 2W+2H.
//   - Sides counts maximal contiguous runs of same-direction fences along a
//     region's boundary: a size-1 region isolated on all sides has exactly
//     4 sides; a full rectangle has exactly 4 regardless of size. Both
//     costings share one parameterized boundary traversal.
//   - PerimeterPrice and SidePrice aggregate size×perimeter and size×sides
//     over all regions.
//
// Invariants (hold for every successful Fill):
//
//   - Every tile belongs to exactly one region, so region sizes sum to the
//     grid's tile count.
//   - Two tiles share a region iff they are connected by a cardinal-
//     adjacency path of pairwise-equivalent tiles.
//
// The equivalence predicate defaults to == and may be overridden with
// WithEquiv; it must be a true equivalence relation (reflexive, symmetric,
// transitive) or region boundaries become order-dependent.
//
// Complexity: Fill is O(W×H); Sides is O(region size) per region with the
// shared seen-set preventing any fence being walked twice.
package floodfill
