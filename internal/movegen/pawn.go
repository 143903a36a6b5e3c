package movegen

import "github.com/hailam/bbgen/internal/board"

// Rank index pawns start on, per color.
var pawnStartRank = [2]int{board.White: 1, board.Black: 6}

var (
	pawnForward  = [2]board.Direction{board.White: board.North, board.Black: board.South}
	pawnCaptures = [2][2]board.Direction{
		board.White: {board.NorthEast, board.NorthWest},
		board.Black: {board.SouthEast, board.SouthWest},
	}
)

// PawnPushes returns the non-capturing pawn move table for c: one step
// forward, plus two from the starting rank. Origins on the back ranks are not
// special-cased.
func PawnPushes(c board.Color) board.MoveTable {
	var t board.MoveTable
	fwd := pawnForward[c]
	for sq := board.A1; sq <= board.H8; sq++ {
		from := sq.Coordinate()
		one := fwd.Step(from)
		if from.Rank == pawnStartRank[c] {
			t[sq] = encodeOnBoard(one, fwd.Step(one))
			continue
		}
		t[sq] = encodeOnBoard(one)
	}
	return t
}

// PawnCaptures returns the pawn capture table for c.
func PawnCaptures(c board.Color) board.MoveTable {
	var t board.MoveTable
	dirs := pawnCaptures[c]
	for sq := board.A1; sq <= board.H8; sq++ {
		from := sq.Coordinate()
		t[sq] = encodeOnBoard(dirs[0].Step(from), dirs[1].Step(from))
	}
	return t
}
