package geometry

import "golang.org/x/exp/constraints"

// GridAddress is a 2D coordinate into a grid.
//
// Invariant: both coordinates are non-negative. The type represents only
// valid-looking indices; validity against a specific grid's extent is
// checked at lookup time, not at construction time.
type GridAddress struct {
	X, Y int
}

// CheckedAdd returns the address translated by d, or ok=false if either
// resulting coordinate would go negative. It never fails due to exceeding
// a grid's extent — delta application is address algebra independent of
// any particular grid, and upper-bound validity is established by the
// subsequent grid lookup.
func (a GridAddress) CheckedAdd(d GridDelta) (GridAddress, bool) {
	x := a.X + d.DX
	y := a.Y + d.DY
	if x < 0 || y < 0 {
		return GridAddress{}, false
	}

	return GridAddress{X: x, Y: y}, true
}

// Step is shorthand for CheckedAdd with the unit delta of c.
func (a GridAddress) Step(c Cardinal) (GridAddress, bool) {
	return a.CheckedAdd(c.Delta())
}

// GridDelta is a signed 2D displacement — a direction of travel or a
// relative offset between two addresses.
type GridDelta struct {
	DX, DY int
}

// Unit displacements, using the y-grows-downward orientation.
var (
	Up        = GridDelta{0, -1}
	Down      = GridDelta{0, 1}
	Left      = GridDelta{-1, 0}
	Right     = GridDelta{1, 0}
	UpRight   = GridDelta{1, -1}
	UpLeft    = GridDelta{-1, -1}
	DownRight = GridDelta{1, 1}
	DownLeft  = GridDelta{-1, 1}
)

// CardinalDeltas lists the four orthogonal unit displacements in the same
// clockwise order as Cardinals.
var CardinalDeltas = [4]GridDelta{Up, Right, Down, Left}

// DiagonalDeltas lists the four diagonal unit displacements clockwise
// starting at up-right.
var DiagonalDeltas = [4]GridDelta{UpRight, DownRight, DownLeft, UpLeft}

// AllDeltas lists all eight unit displacements clockwise starting at Up.
var AllDeltas = [8]GridDelta{Up, UpRight, Right, DownRight, Down, DownLeft, Left, UpLeft}

// Inverted returns the opposite displacement.
func (d GridDelta) Inverted() GridDelta {
	return GridDelta{DX: -d.DX, DY: -d.DY}
}

// Manhattan returns |DX| + |DY|.
func (d GridDelta) Manhattan() int {
	return Abs(d.DX) + Abs(d.DY)
}

// VectorBetween returns the exact signed displacement from start to end,
// so that start.CheckedAdd(VectorBetween(start, end)) == end. The absolute
// difference per axis is computed first and the sign applied by
// comparison; no wrapping arithmetic is involved.
func VectorBetween(start, end GridAddress) GridDelta {
	dx := Abs(end.X - start.X)
	if end.X < start.X {
		dx = -dx
	}
	dy := Abs(end.Y - start.Y)
	if end.Y < start.Y {
		dy = -dy
	}

	return GridDelta{DX: dx, DY: dy}
}

// Abs returns the absolute value of v.
func Abs[T constraints.Signed](v T) T {
	if v < 0 {
		return -v
	}

	return v
}
