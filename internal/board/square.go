// Package board implements the board geometry shared by every table generator:
// squares, coordinates, directions and bitboards.
package board

import (
	"fmt"
	"strconv"
)

// Square represents a square on the chess board (0-63).
// Uses Little-Endian Rank-File Mapping: A1=0, H1=7, A8=56, H8=63.
type Square uint8

// Square constants for all 64 squares.
const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8
	NoSquare Square = 64
)

// NumSquares is the number of squares on the board.
const NumSquares = 64

// File returns the file (column) of the square (0-7, where 0=a, 7=h).
func (sq Square) File() int {
	return int(sq) & 7
}

// Rank returns the rank (row) of the square (0-7, where 0=1, 7=8).
func (sq Square) Rank() int {
	return int(sq) >> 3
}

// Coordinate returns the (file, rank) pair of a valid square.
func (sq Square) Coordinate() Coordinate {
	return Coordinate{File: sq.File(), Rank: sq.Rank()}
}

// String returns the algebraic notation for the square (e.g., "e4").
func (sq Square) String() string {
	if sq >= NoSquare {
		return "-"
	}
	return fmt.Sprintf("%c%c", 'a'+sq.File(), '1'+sq.Rank())
}

// NewSquare creates a square from file and rank (0-indexed).
// Callers must pass values in [0,7]; use CoordinateToSquare otherwise.
func NewSquare(file, rank int) Square {
	return Square(rank*8 + file)
}

// ParseSquare parses algebraic notation (e.g., "e4") or a bare square index
// ("28") into a Square.
func ParseSquare(s string) (Square, error) {
	if n, err := strconv.Atoi(s); err == nil {
		if n < 0 || n >= NumSquares {
			return NoSquare, fmt.Errorf("square index %d: %w", n, ErrOutOfRange)
		}
		return Square(n), nil
	}

	if len(s) != 2 {
		return NoSquare, fmt.Errorf("invalid square %q: %w", s, ErrOutOfRange)
	}

	return CoordinateToSquare(Coordinate{File: int(s[0]) - 'a', Rank: int(s[1]) - '1'})
}

// IsValid returns true if the square is a valid board square (0-63).
func (sq Square) IsValid() bool {
	return sq < NoSquare
}

// Mirror returns the square mirrored vertically (for black's perspective).
func (sq Square) Mirror() Square {
	return sq ^ 56
}

// RelativeRank returns the rank from a given color's perspective.
// For White, rank 0 is the 1st rank; for Black, rank 0 is the 8th rank.
func (sq Square) RelativeRank(c Color) int {
	if c == White {
		return sq.Rank()
	}
	return 7 - sq.Rank()
}

// SquareToCoordinate converts a square index to its (file, rank) coordinate.
func SquareToCoordinate(sq Square) (Coordinate, error) {
	if !sq.IsValid() {
		return Coordinate{}, fmt.Errorf("square %d: %w", sq, ErrOutOfRange)
	}
	return sq.Coordinate(), nil
}

// CoordinateToSquare converts a coordinate back to a square index.
// Coordinates produced by Step must be checked with WithinBounds first;
// an off-board coordinate is reported, never wrapped.
func CoordinateToSquare(c Coordinate) (Square, error) {
	if !WithinBounds(c) {
		return NoSquare, fmt.Errorf("coordinate %s: %w", c, ErrOutOfRange)
	}
	return NewSquare(c.File, c.Rank), nil
}
