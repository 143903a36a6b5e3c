package board

import (
	"fmt"
	"strings"
)

// Coordinate is a (file, rank) pair. It is only meaningful on the board when
// both components are in [0,7]; Step may produce coordinates that are not.
type Coordinate struct {
	File int
	Rank int
}

// String returns the coordinate as "(file,rank)".
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.File, c.Rank)
}

// Valid returns true if both components lie on the board.
func (c Coordinate) Valid() bool {
	return WithinBounds(c)
}

// WithinBounds returns true iff both components of c lie in [0,7].
func WithinBounds(c Coordinate) bool {
	return c.File >= 0 && c.File < 8 && c.Rank >= 0 && c.Rank < 8
}

// Direction is one of the eight unit directions on the board.
// The order is fixed: it is the outer index of the emitted ray table.
type Direction uint8

const (
	North Direction = iota
	South
	East
	West
	NorthEast
	SouthEast
	NorthWest
	SouthWest
)

// NumDirections is the number of directions.
const NumDirections = 8

// Directions lists all directions in table order.
var Directions = [NumDirections]Direction{North, South, East, West, NorthEast, SouthEast, NorthWest, SouthWest}

// Orthogonal and Diagonal split Directions by the sliders that use them.
var (
	Orthogonal = [4]Direction{North, South, East, West}
	Diagonal   = [4]Direction{NorthEast, SouthEast, NorthWest, SouthWest}
)

// (Δfile, Δrank) per direction.
var directionDeltas = [NumDirections][2]int{
	North:     {0, 1},
	South:     {0, -1},
	East:      {1, 0},
	West:      {-1, 0},
	NorthEast: {1, 1},
	SouthEast: {1, -1},
	NorthWest: {-1, 1},
	SouthWest: {-1, -1},
}

var directionNames = [NumDirections]string{
	"NORTH", "SOUTH", "EAST", "WEST", "NORTHEAST", "SOUTHEAST", "NORTHWEST", "SOUTHWEST",
}

// Delta returns the file and rank offsets of one step in direction d.
func (d Direction) Delta() (df, dr int) {
	return directionDeltas[d][0], directionDeltas[d][1]
}

// Step returns c moved one square in direction d. The result may be off-board.
func (d Direction) Step(c Coordinate) Coordinate {
	df, dr := d.Delta()
	return Coordinate{File: c.File + df, Rank: c.Rank + dr}
}

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	df, dr := d.Delta()
	for _, o := range Directions {
		of, or := o.Delta()
		if of == -df && or == -dr {
			return o
		}
	}
	return NumDirections
}

// IsDiagonal returns true for NE, SE, NW and SW.
func (d Direction) IsDiagonal() bool {
	return d >= NorthEast
}

// String returns the direction name as used in emitted tables (e.g., "NORTHEAST").
func (d Direction) String() string {
	if d >= NumDirections {
		return "NONE"
	}
	return directionNames[d]
}

// ParseDirection parses a direction name, case-insensitive ("ne" and "northeast" both work).
func ParseDirection(s string) (Direction, error) {
	short := [NumDirections]string{"N", "S", "E", "W", "NE", "SE", "NW", "SW"}
	for _, d := range Directions {
		if strings.EqualFold(s, directionNames[d]) || strings.EqualFold(s, short[d]) {
			return d, nil
		}
	}
	return NumDirections, fmt.Errorf("unknown direction %q", s)
}
