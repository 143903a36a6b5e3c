package verify

import (
	"fmt"

	"github.com/Oliverans/GooseEngineMG/goosemg"
	"github.com/dylhunn/dragontoothmg"
	"github.com/hailam/bbgen/internal/board"
	"github.com/hailam/bbgen/internal/movegen"
)

const emptyFEN = "8/8/8/8/8/8/8/8 w - - 0 1"

// CrossCheck compares the slider tables with dragontoothmg's magic lookup on
// an empty board, and every piece table with goosemg's attack detection on a
// board holding only that piece.
func CrossCheck(set *movegen.Set) (*Report, error) {
	r := &Report{}
	crossCheckDragontooth(set, r)
	if err := crossCheckGoose(set, r); err != nil {
		return nil, err
	}
	return r, nil
}

func crossCheckDragontooth(set *movegen.Set, r *Report) {
	r.Checks = append(r.Checks, "dragontoothmg")
	for sq := board.A1; sq <= board.H8; sq++ {
		rook := board.Bitboard(dragontoothmg.CalculateRookMoveBitboard(uint8(sq), 0))
		bishop := board.Bitboard(dragontoothmg.CalculateBishopMoveBitboard(uint8(sq), 0))
		if set.Rook[sq] != rook {
			r.add(Mismatch{Check: "dragontoothmg", Table: movegen.LabelRook, Square: sq, Got: set.Rook[sq], Want: rook})
		}
		if set.Bishop[sq] != bishop {
			r.add(Mismatch{Check: "dragontoothmg", Table: movegen.LabelBishop, Square: sq, Got: set.Bishop[sq], Want: bishop})
		}
		if set.Queen[sq] != rook|bishop {
			r.add(Mismatch{Check: "dragontoothmg", Table: movegen.LabelQueen, Square: sq, Got: set.Queen[sq], Want: rook | bishop})
		}
	}
}

type gooseCase struct {
	label string
	table *board.MoveTable
	piece goosemg.Piece
	by    goosemg.Color
	// origin filter; pawns are only placed where a game can have them
	placeable func(board.Square) bool
}

func anySquare(board.Square) bool { return true }

func pawnRanks(sq board.Square) bool { return sq.Rank() >= 1 && sq.Rank() <= 6 }

func crossCheckGoose(set *movegen.Set, r *Report) error {
	r.Checks = append(r.Checks, "goosemg")
	cases := []gooseCase{
		{movegen.LabelKing, &set.King, goosemg.WhiteKing, goosemg.White, anySquare},
		{movegen.LabelKnight, &set.Knight, goosemg.WhiteKnight, goosemg.White, anySquare},
		{movegen.LabelBishop, &set.Bishop, goosemg.BlackBishop, goosemg.Black, anySquare},
		{movegen.LabelRook, &set.Rook, goosemg.BlackRook, goosemg.Black, anySquare},
		{movegen.LabelQueen, &set.Queen, goosemg.WhiteQueen, goosemg.White, anySquare},
		{movegen.LabelWhiteCapture, &set.PawnCaptures[board.White], goosemg.WhitePawn, goosemg.White, pawnRanks},
		{movegen.LabelBlackCapture, &set.PawnCaptures[board.Black], goosemg.BlackPawn, goosemg.Black, pawnRanks},
	}

	for _, c := range cases {
		for sq := board.A1; sq <= board.H8; sq++ {
			if !c.placeable(sq) {
				continue
			}
			want, err := gooseAttacks(sq, c.piece, c.by)
			if err != nil {
				return err
			}
			if c.table[sq] != want {
				r.add(Mismatch{Check: "goosemg", Table: c.label, Square: sq, Got: c.table[sq], Want: want})
			}
		}
	}
	return nil
}

// gooseAttacks places piece alone on sq and collects every square goosemg
// reports as attacked by its side.
func gooseAttacks(sq board.Square, piece goosemg.Piece, by goosemg.Color) (board.Bitboard, error) {
	b, err := goosemg.ParseFEN(emptyFEN)
	if err != nil {
		return board.Empty, fmt.Errorf("goosemg empty board: %w", err)
	}
	b.SetPiece(goosemg.Square(sq), piece)

	var bb board.Bitboard
	for to := board.A1; to <= board.H8; to++ {
		if b.IsSquareAttacked(goosemg.Square(to), by) {
			bb = bb.Set(to)
		}
	}
	return bb, nil
}
