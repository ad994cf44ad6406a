package geometry

// CardinalSet is a set of up to four Cardinal values packed into a 4-bit
// mask: North=8, East=4, South=2, West=1. The zero value is the empty set.
//
// CardinalSet is a value type; Add returns a new set, Insert mutates in
// place. Only the low four bits are ever populated by this package.
type CardinalSet uint8

// bit returns the mask bit for c.
func (c Cardinal) bit() CardinalSet {
	switch c {
	case North:
		return 0b1000
	case East:
		return 0b0100
	case South:
		return 0b0010
	default:
		return 0b0001
	}
}

// Contains reports whether c is a member of the set.
func (s CardinalSet) Contains(c Cardinal) bool {
	return s&c.bit() != 0
}

// Add returns a copy of the set with c included.
func (s CardinalSet) Add(c Cardinal) CardinalSet {
	return s | c.bit()
}

// Insert adds c to the set in place.
func (s *CardinalSet) Insert(c Cardinal) {
	*s |= c.bit()
}

// Len returns the number of directions in the set (0 to 4).
func (s CardinalSet) Len() int {
	n := 0
	for _, c := range Cardinals {
		if s.Contains(c) {
			n++
		}
	}

	return n
}

// IsEmpty reports whether the set contains no directions.
func (s CardinalSet) IsEmpty() bool {
	return s&0b1111 == 0
}

// BoxRune renders the set as a single box-drawing rune, where each member
// direction is drawn as a light segment emitted from the center of the
// character cell. See https://en.wikipedia.org/wiki/Box-drawing_characters
//
// The mapping is total over the 4-bit domain; every one of the sixteen
// masks has a distinct, stable rune. The '?' arm is unreachable through
// this package's API (sets never carry bits above the low four) and exists
// only as the impossible-case indicator.
func (s CardinalSet) BoxRune() rune {
	switch s & 0b1111 {
	// all directions
	case 0b1111:
		return '┼'

	// all but one direction
	case 0b1110:
		return '├' // missing west
	case 0b1101:
		return '┴' // missing south
	case 0b1011:
		return '┤' // missing east
	case 0b0111:
		return '┬' // missing north

	// corners
	case 0b1100:
		return '└' // north+east
	case 0b0110:
		return '┌' // east+south
	case 0b0011:
		return '┐' // south+west
	case 0b1001:
		return '┘' // west+north

	// across
	case 0b1010:
		return '│' // north+south
	case 0b0101:
		return '─' // east+west

	// singles
	case 0b1000:
		return '╵' // north only
	case 0b0100:
		return '╶' // east only
	case 0b0010:
		return '╷' // south only
	case 0b0001:
		return '╴' // west only

	case 0b0000:
		return ' ' // none
	default:
		return '?' // unreachable: masked to four bits above
	}
}
