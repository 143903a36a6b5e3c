package movegen

import "github.com/hailam/bbgen/internal/board"

var kingPaths = [][]board.Direction{
	{board.North}, {board.South}, {board.East}, {board.West},
	{board.NorthEast}, {board.SouthEast}, {board.NorthWest}, {board.SouthWest},
}

// One step on one axis, two on the other.
var knightPaths = [][]board.Direction{
	{board.North, board.North, board.East},
	{board.North, board.North, board.West},
	{board.North, board.East, board.East},
	{board.North, board.West, board.West},
	{board.South, board.South, board.East},
	{board.South, board.South, board.West},
	{board.South, board.East, board.East},
	{board.South, board.West, board.West},
}

// KingMoves returns the king move table.
func KingMoves() board.MoveTable {
	var t board.MoveTable
	for sq := board.A1; sq <= board.H8; sq++ {
		t[sq] = leap(sq, kingPaths)
	}
	return t
}

// KnightMoves returns the knight move table.
func KnightMoves() board.MoveTable {
	var t board.MoveTable
	for sq := board.A1; sq <= board.H8; sq++ {
		t[sq] = leap(sq, knightPaths)
	}
	return t
}
