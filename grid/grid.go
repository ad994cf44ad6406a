package grid

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gridpath/geometry"
)

// Sentinel errors for grid construction.
var (
	// ErrEmptyGrid indicates the input has no rows, no columns, or
	// non-positive dimensions.
	ErrEmptyGrid = errors.New("grid: grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
)

// Grid is a rectangular 2D container of caller-supplied tiles, stored as
// rows of fixed width. The grid exclusively owns its tiles; no tile is
// aliased elsewhere.
type Grid[T any] struct {
	rows [][]T
}

// New constructs a Grid from a non-empty, rectangular 2D slice. The slice
// is adopted, not copied: the caller hands over ownership and must not
// retain references into it.
// Returns ErrEmptyGrid if rows has no rows or no columns,
// ErrNonRectangular if any row length differs from the first.
func New[T any](rows [][]T) (*Grid[T], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	w := len(rows[0])
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has length %d, want %d", ErrNonRectangular, y, len(row), w)
		}
	}

	return &Grid[T]{rows: rows}, nil
}

// NewFilled constructs a width×height Grid with every tile set to fill —
// for grids not derived from parsed text, such as counting layers.
// Returns ErrEmptyGrid if either dimension is non-positive.
func NewFilled[T any](width, height int, fill T) (*Grid[T], error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyGrid
	}
	rows := make([][]T, height)
	for y := range rows {
		rows[y] = make([]T, width)
		for x := range rows[y] {
			rows[y][x] = fill
		}
	}

	return &Grid[T]{rows: rows}, nil
}

// Width returns the number of columns, derived from the first row.
func (g *Grid[T]) Width() int {
	if len(g.rows) == 0 {
		return 0
	}

	return len(g.rows[0])
}

// Height returns the number of rows.
func (g *Grid[T]) Height() int {
	return len(g.rows)
}

// Get returns a pointer to the tile at (x, y), or ok=false if either axis
// is out of range. The pointer remains valid for the life of the grid and
// may be used to mutate the tile in place.
func (g *Grid[T]) Get(x, y int) (*T, bool) {
	if y < 0 || y >= len(g.rows) {
		return nil, false
	}
	row := g.rows[y]
	if x < 0 || x >= len(row) {
		return nil, false
	}

	return &row[x], true
}

// GetAt is Get keyed by a GridAddress.
func (g *Grid[T]) GetAt(addr geometry.GridAddress) (*T, bool) {
	return g.Get(addr.X, addr.Y)
}

// MustGet returns a pointer to the tile at addr, panicking if addr is out
// of range. It is the ergonomic path for call sites that have already
// established validity; an out-of-range address here is a bug in the
// caller, not a recoverable runtime condition.
func (g *Grid[T]) MustGet(addr geometry.GridAddress) *T {
	p, ok := g.GetAt(addr)
	if !ok {
		panic(fmt.Sprintf("grid: illegal address (%d,%d) for %d×%d grid", addr.X, addr.Y, g.Width(), g.Height()))
	}

	return p
}

// Clone returns a deep, independent copy of the grid. Mutating the clone's
// tiles never affects the original, so separate algorithm passes can run
// against the same starting layout.
func (g *Grid[T]) Clone() *Grid[T] {
	rows := make([][]T, len(g.rows))
	for y, row := range g.rows {
		rows[y] = make([]T, len(row))
		copy(rows[y], row)
	}

	return &Grid[T]{rows: rows}
}
