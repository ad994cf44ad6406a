// Package grid provides Grid[T], a generic rectangular 2D tile container
// with bounds-checked addressing and a pluggable rendering hook.
//
// Overview:
//
//   - A Grid is constructed once — from parsed rows via New, or from a fill
//     value via NewFilled — and owns its tiles exclusively. Clone produces a
//     deep, independent copy so two algorithm passes can annotate the same
//     starting layout without interference.
//   - Every row has the same length. New validates this at construction
//     time; the grid never revalidates afterward, so the invariant is the
//     constructor caller's (typically a parser's) to maintain.
//   - Access is two-tier:
//     – Get / GetAt return (*T, ok) and report out-of-range lookups as a
//     normal absence, the expected outcome while exploring neighbors.
//     – MustGet is the "I already checked" path for call sites that have
//     established validity through other means (e.g. iterating
//     0..Height × 0..Width). It still checks internally but treats
//     failure as a programming error and panics.
//
// Rendering:
//
//	TileRenderer is a capability interface decoupled from the container:
//	a style object maps each tile (and its coordinates) to a glyph, and
//	Render walks the grid row by row. RenderFunc adapts a plain function.
//	Styles are free to emit ANSI color codes; Render just concatenates.
//
// Complexity:
//
//   - Width, Height, Get, GetAt, MustGet: O(1).
//   - New, NewFilled, Clone, Map, Sum, Render: O(W×H).
//
// Errors (sentinel):
//
//   - ErrEmptyGrid      if a constructor receives no rows, no columns, or
//     non-positive dimensions.
//   - ErrNonRectangular if row lengths differ at construction.
package grid
