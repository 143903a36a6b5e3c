// Package movegen precomputes empty-board move, attack and ray tables for
// every piece type. Every table is a pure function of the 8x8 geometry.
package movegen

import "github.com/hailam/bbgen/internal/board"

// maxSlide is the longest run of steps in one direction that stays on the board.
const maxSlide = 7

// encodeOnBoard encodes the coordinates that lie on the board and drops the rest.
func encodeOnBoard(coords ...board.Coordinate) board.Bitboard {
	var bb board.Bitboard
	for _, c := range coords {
		if !board.WithinBounds(c) {
			continue
		}
		bb |= board.SquareBB(board.NewSquare(c.File, c.Rank))
	}
	return bb
}

// offset applies each step of path to c in turn.
func offset(c board.Coordinate, path []board.Direction) board.Coordinate {
	for _, d := range path {
		c = d.Step(c)
	}
	return c
}

// leap returns the squares reached from sq by each path, bounds-filtered.
func leap(sq board.Square, paths [][]board.Direction) board.Bitboard {
	from := sq.Coordinate()
	targets := make([]board.Coordinate, 0, len(paths))
	for _, p := range paths {
		targets = append(targets, offset(from, p))
	}
	return encodeOnBoard(targets...)
}

// slide walks from sq in direction d until the next step leaves the board.
// The origin is not included.
func slide(sq board.Square, d board.Direction) board.Bitboard {
	var bb board.Bitboard
	c := sq.Coordinate()
	for i := 0; i < maxSlide; i++ {
		c = d.Step(c)
		if !board.WithinBounds(c) {
			break
		}
		bb |= board.SquareBB(board.NewSquare(c.File, c.Rank))
	}
	return bb
}

// slideAll is the union of slide over dirs.
func slideAll(sq board.Square, dirs []board.Direction) board.Bitboard {
	var bb board.Bitboard
	for _, d := range dirs {
		bb = board.Union(bb, slide(sq, d))
	}
	return bb
}
