package movegen

import (
	"testing"

	"github.com/hailam/bbgen/internal/board"
)

func TestRookAtA1(t *testing.T) {
	rook := RookMoves()
	want := (board.FileA | board.Rank1).Clear(board.A1)
	if rook[board.A1] != want {
		t.Errorf("rook[a1] =\n%v\nwant\n%v", rook[board.A1], want)
	}
	if rook[board.A1].PopCount() != 14 {
		t.Errorf("rook[a1] popcount = %d, want 14", rook[board.A1].PopCount())
	}
}

func TestRookAlwaysFourteen(t *testing.T) {
	rook := RookMoves()
	for sq := board.A1; sq <= board.H8; sq++ {
		want := (board.FileMask[sq.File()] | board.RankMask[sq.Rank()]).Clear(sq)
		if rook[sq] != want {
			t.Errorf("rook[%v] is not its file and rank minus the origin", sq)
		}
	}
}

func TestBishopDiagonals(t *testing.T) {
	bishop := BishopMoves()
	tests := []struct {
		from  board.Square
		count int
	}{
		{board.A1, 7},
		{board.H1, 7},
		{board.D4, 13},
		{board.E4, 13},
		{board.B2, 9},
		{board.A4, 7},
	}
	for _, tc := range tests {
		if got := bishop[tc.from].PopCount(); got != tc.count {
			t.Errorf("bishop[%v] popcount = %d, want %d", tc.from, got, tc.count)
		}
	}
	want := board.Encode(board.B2, board.C3, board.D4, board.E5, board.F6, board.G7, board.H8)
	if bishop[board.A1] != want {
		t.Errorf("bishop[a1] = %v, want the long diagonal", bishop[board.A1].Squares())
	}
}

func TestBishopNoWraparound(t *testing.T) {
	// A bishop never changes square color.
	bishop := BishopMoves()
	for sq := board.A1; sq <= board.H8; sq++ {
		color := (sq.File() + sq.Rank()) & 1
		for _, to := range bishop[sq].Squares() {
			if (to.File()+to.Rank())&1 != color {
				t.Errorf("bishop[%v] reaches %v of the other color", sq, to)
			}
		}
	}
}

func TestQueenDecomposition(t *testing.T) {
	bishop := BishopMoves()
	rook := RookMoves()
	queen := QueenMoves(&bishop, &rook)
	for sq := board.A1; sq <= board.H8; sq++ {
		if bishop[sq]&rook[sq] != 0 {
			t.Errorf("bishop and rook overlap on %v", sq)
		}
		if queen[sq].PopCount() != bishop[sq].PopCount()+rook[sq].PopCount() {
			t.Errorf("queen[%v] popcount = %d, want %d + %d", sq,
				queen[sq].PopCount(), bishop[sq].PopCount(), rook[sq].PopCount())
		}
		if queen[sq] != bishop[sq]|rook[sq] {
			t.Errorf("queen[%v] is not bishop | rook", sq)
		}
	}
}
