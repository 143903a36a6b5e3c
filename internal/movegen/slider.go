package movegen

import "github.com/hailam/bbgen/internal/board"

// RookMoves returns the empty-board rook table (N, S, E, W slides).
func RookMoves() board.MoveTable {
	var t board.MoveTable
	for sq := board.A1; sq <= board.H8; sq++ {
		t[sq] = slideAll(sq, board.Orthogonal[:])
	}
	return t
}

// BishopMoves returns the empty-board bishop table (NE, SE, NW, SW slides).
func BishopMoves() board.MoveTable {
	var t board.MoveTable
	for sq := board.A1; sq <= board.H8; sq++ {
		t[sq] = slideAll(sq, board.Diagonal[:])
	}
	return t
}

// QueenMoves returns the per-square union of a bishop and a rook table.
func QueenMoves(bishop, rook *board.MoveTable) board.MoveTable {
	var t board.MoveTable
	for sq := board.A1; sq <= board.H8; sq++ {
		t[sq] = board.Union(bishop[sq], rook[sq])
	}
	return t
}
