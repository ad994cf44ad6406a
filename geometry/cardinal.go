package geometry

// Cardinal is one of the four cardinal directions.
//
// The zero value is North. The four values form a closed algebra under
// TurnRight, TurnLeft and Opposite; all three operations are total.
type Cardinal uint8

const (
	// North points toward decreasing y.
	North Cardinal = iota
	// East points toward increasing x.
	East
	// South points toward increasing y.
	South
	// West points toward decreasing x.
	West
)

// Cardinals lists all four directions in clockwise order starting at North.
// The order is stable and safe to rely on for deterministic iteration.
var Cardinals = [4]Cardinal{North, East, South, West}

// TurnRight returns the direction 90 degrees clockwise from c.
// Four successive applications return the original direction.
func (c Cardinal) TurnRight() Cardinal {
	return (c + 1) % 4
}

// TurnLeft returns the direction 90 degrees counter-clockwise from c.
// Four successive applications return the original direction.
func (c Cardinal) TurnLeft() Cardinal {
	return (c + 3) % 4
}

// Opposite returns the direction 180 degrees from c.
// Opposite is an involution: c.Opposite().Opposite() == c.
func (c Cardinal) Opposite() Cardinal {
	return (c + 2) % 4
}

// Delta returns the unit displacement corresponding to c, using the
// y-grows-downward orientation documented in the package comment.
func (c Cardinal) Delta() GridDelta {
	switch c {
	case North:
		return Up
	case East:
		return Right
	case South:
		return Down
	default:
		return Left
	}
}

// String returns the full English name of the direction.
func (c Cardinal) String() string {
	switch c {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	default:
		return "Unknown"
	}
}
