package verify

import (
	"github.com/hailam/bbgen/internal/board"
	"github.com/hailam/bbgen/internal/movegen"
)

// Flat-index reference: each step is a shift of the whole board, masked so a
// step off file a or h cannot wrap onto the opposite edge.
const (
	notFileA  = ^board.FileA
	notFileH  = ^board.FileH
	notFileAB = ^(board.FileA | board.FileB)
	notFileGH = ^(board.FileG | board.FileH)
)

// shift moves every bit of b one step in d.
func shift(b board.Bitboard, d board.Direction) board.Bitboard {
	switch d {
	case board.North:
		return b << 8
	case board.South:
		return b >> 8
	case board.East:
		return (b << 1) & notFileA
	case board.West:
		return (b >> 1) & notFileH
	case board.NorthEast:
		return (b << 9) & notFileA
	case board.SouthEast:
		return (b >> 7) & notFileA
	case board.NorthWest:
		return (b << 7) & notFileH
	case board.SouthWest:
		return (b >> 9) & notFileH
	}
	return board.Empty
}

func shiftKnight(b board.Bitboard) board.Bitboard {
	return (b<<17)&notFileA | (b<<15)&notFileH |
		(b>>17)&notFileH | (b>>15)&notFileA |
		(b<<10)&notFileAB | (b<<6)&notFileGH |
		(b>>10)&notFileGH | (b>>6)&notFileAB
}

func shiftRay(b board.Bitboard, d board.Direction) board.Bitboard {
	var ray board.Bitboard
	for b = shift(b, d); b != 0; b = shift(b, d) {
		ray |= b
	}
	return ray
}

// ShiftCheck regenerates every table with whole-board shifts and compares.
func ShiftCheck(set *movegen.Set) *Report {
	r := &Report{Checks: []string{"shift"}}
	cmp := func(table string, sq board.Square, got, want board.Bitboard) {
		if got != want {
			r.add(Mismatch{Check: "shift", Table: table, Square: sq, Got: got, Want: want})
		}
	}

	for sq := board.A1; sq <= board.H8; sq++ {
		bb := board.SquareBB(sq)

		var king, rook, bishop board.Bitboard
		for _, d := range board.Directions {
			king |= shift(bb, d)
			ray := shiftRay(bb, d)
			cmp(movegen.LabelRays+"."+d.String(), sq, set.Rays[d][sq], ray)
			if d.IsDiagonal() {
				bishop |= ray
			} else {
				rook |= ray
			}
		}
		cmp(movegen.LabelKing, sq, set.King[sq], king)
		cmp(movegen.LabelKnight, sq, set.Knight[sq], shiftKnight(bb))
		cmp(movegen.LabelRook, sq, set.Rook[sq], rook)
		cmp(movegen.LabelBishop, sq, set.Bishop[sq], bishop)
		cmp(movegen.LabelQueen, sq, set.Queen[sq], rook|bishop)

		cmp(movegen.LabelWhiteCapture, sq, set.PawnCaptures[board.White][sq],
			shift(bb, board.NorthEast)|shift(bb, board.NorthWest))
		cmp(movegen.LabelBlackCapture, sq, set.PawnCaptures[board.Black][sq],
			shift(bb, board.SouthEast)|shift(bb, board.SouthWest))

		white := shift(bb, board.North)
		if bb&board.Rank2 != 0 {
			white |= shift(white, board.North)
		}
		black := shift(bb, board.South)
		if bb&board.Rank7 != 0 {
			black |= shift(black, board.South)
		}
		cmp(movegen.LabelWhitePush, sq, set.PawnPushes[board.White][sq], white)
		cmp(movegen.LabelBlackPush, sq, set.PawnPushes[board.Black][sq], black)
	}
	return r
}
