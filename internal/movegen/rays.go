package movegen

import "github.com/hailam/bbgen/internal/board"

// Rays returns the open ray from every square in every direction, indexed
// [direction][square]. Rays run to the board edge and exclude the origin.
func Rays() board.RayTable {
	var r board.RayTable
	for _, d := range board.Directions {
		for sq := board.A1; sq <= board.H8; sq++ {
			r[d][sq] = slide(sq, d)
		}
	}
	return r
}
