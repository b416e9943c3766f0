package geo

import "math"

// Direction is one of the eight 45° compass sectors.
type Direction int

const (
	North Direction = iota
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
)

var (
	directionNames  = [...]string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}
	directionArrows = [...]string{"↑", "↗", "→", "↘", "↓", "↙", "←", "↖"}
)

// Directions lists every sector in clockwise order starting at north.
func Directions() []Direction {
	return []Direction{North, NorthEast, East, SouthEast, South, SouthWest, West, NorthWest}
}

// DirectionOf classifies a bearing into its sector. Sectors are centered on
// the compass points and half-open, so 22.5 is NorthEast and 337.5 is North.
func DirectionOf(bearing float64) Direction {
	b := normalizeDegrees(bearing)
	idx := int(math.Floor(math.Mod(b+22.5, 360) / 45))
	// Guard against floating point edge cases at the top of the range.
	return Direction(idx % len(directionNames))
}

// String returns the compass abbreviation, e.g. "SW".
func (d Direction) String() string {
	if d < 0 || int(d) >= len(directionNames) {
		return "?"
	}
	return directionNames[d]
}

// Arrow returns the arrow glyph pointing in the direction.
func (d Direction) Arrow() string {
	if d < 0 || int(d) >= len(directionArrows) {
		return "?"
	}
	return directionArrows[d]
}
