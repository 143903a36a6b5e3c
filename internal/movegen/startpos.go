package movegen

import "github.com/hailam/bbgen/internal/board"

// StartPositions holds the initial placement of each piece type, [color][piece].
type StartPositions [2][board.NumPieceTypes]board.Bitboard

// StartOrder is the emission order of each side's starting bitboards.
var StartOrder = [board.NumPieceTypes]board.PieceType{
	board.King, board.Queen, board.Bishop, board.Knight, board.Rook, board.Pawn,
}

var whiteStart = [board.NumPieceTypes][]board.Square{
	board.Pawn:   {board.A2, board.B2, board.C2, board.D2, board.E2, board.F2, board.G2, board.H2},
	board.Knight: {board.B1, board.G1},
	board.Bishop: {board.C1, board.F1},
	board.Rook:   {board.A1, board.H1},
	board.Queen:  {board.D1},
	board.King:   {board.E1},
}

// StartingPositions returns the standard initial position per color and piece.
// Black is White mirrored across the board's horizontal axis.
func StartingPositions() StartPositions {
	var s StartPositions
	for pt, squares := range whiteStart {
		for _, sq := range squares {
			s[board.White][pt] = s[board.White][pt].Set(sq)
			s[board.Black][pt] = s[board.Black][pt].Set(sq.Mirror())
		}
	}
	return s
}

// Entries returns the twelve bitboards in emission order: White King, Queen,
// Bishops, Knights, Rooks, Pawns, then Black in the same order.
func (s *StartPositions) Entries() []board.Bitboard {
	out := make([]board.Bitboard, 0, 2*board.NumPieceTypes)
	for _, c := range []board.Color{board.White, board.Black} {
		for _, pt := range StartOrder {
			out = append(out, s[c][pt])
		}
	}
	return out
}
