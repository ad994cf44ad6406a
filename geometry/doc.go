// Package geometry provides the address algebra underneath every grid
// algorithm in gridpath: cardinal directions, compact direction sets,
// and underflow-safe coordinate arithmetic.
//
// Overview:
//
//   - Cardinal is a closed four-element direction algebra. TurnRight and
//     TurnLeft are total cyclic bijections (four applications of either
//     return the original direction); Opposite is an involution.
//   - CardinalSet packs up to four Cardinals into a 4-bit mask and renders
//     any combination as one of sixteen box-drawing runes — handy for
//     painting traversed paths or fence layouts in terminal output.
//   - GridAddress is a non-negative (x, y) coordinate. It knows nothing
//     about any particular grid's extent; upper-bound validity is always
//     established by the subsequent grid lookup.
//   - GridDelta is a signed displacement. Applying a delta to an address is
//     a checked operation: it reports failure instead of producing a
//     negative coordinate. Callers treat "off-grid" as a normal, common
//     outcome, not an exceptional one.
//
// Orientation convention:
//
//	North = (0,-1), East = (1,0), South = (0,1), West = (-1,0).
//	The y axis grows downward — an image/terminal convention, chosen so
//	that row-major rendering and address arithmetic agree. Implementations
//	layered on top of this package must preserve this orientation.
//
// Failure semantics:
//
//   - CheckedAdd and Step report absence via a boolean; no address
//     operation panics or wraps around.
//
// Complexity: every operation in this package is O(1).
package geometry
