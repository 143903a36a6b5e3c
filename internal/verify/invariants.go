package verify

import (
	"github.com/hailam/bbgen/internal/board"
	"github.com/hailam/bbgen/internal/movegen"
)

// Invariants checks the geometric properties of a generated set.
func Invariants(set *movegen.Set) *Report {
	r := &Report{Checks: []string{"invariants"}}
	checkLeapers(set, r)
	checkSliders(set, r)
	checkRays(set, r)
	checkPawns(set, r)
	return r
}

func fail(r *Report, table string, sq board.Square, got, want board.Bitboard, detail string) {
	r.add(Mismatch{Check: "invariants", Table: table, Square: sq, Got: got, Want: want, Detail: detail})
}

func checkLeapers(set *movegen.Set, r *Report) {
	knightCounts := map[int]bool{2: true, 3: true, 4: true, 6: true, 8: true}
	for sq := board.A1; sq <= board.H8; sq++ {
		n := set.Knight[sq].PopCount()
		if !knightCounts[n] || (n == 2) != board.Corners.IsSet(sq) {
			fail(r, movegen.LabelKnight, sq, set.Knight[sq], set.Knight[sq], "popcount outside {2,3,4,6,8} or 2 off a corner")
		}
		if k := set.King[sq].PopCount(); k < 3 || k > 8 {
			fail(r, movegen.LabelKing, sq, set.King[sq], set.King[sq], "popcount outside [3,8]")
		}
		if set.King[sq].IsSet(sq) || set.Knight[sq].IsSet(sq) {
			fail(r, "leaper", sq, 0, 0, "origin included")
		}
	}
}

func checkSliders(set *movegen.Set, r *Report) {
	for sq := board.A1; sq <= board.H8; sq++ {
		if set.Bishop[sq]&set.Rook[sq] != 0 {
			fail(r, movegen.LabelQueen, sq, set.Bishop[sq]&set.Rook[sq], board.Empty, "bishop and rook overlap")
		}
		if set.Queen[sq].PopCount() != set.Bishop[sq].PopCount()+set.Rook[sq].PopCount() {
			fail(r, movegen.LabelQueen, sq, set.Queen[sq], set.Bishop[sq]|set.Rook[sq], "popcount is not bishop + rook")
		}
		if set.Rook[sq].PopCount() != 14 {
			fail(r, movegen.LabelRook, sq, set.Rook[sq], set.Rook[sq], "popcount != 14")
		}
	}
}

func checkRays(set *movegen.Set, r *Report) {
	for sq := board.A1; sq <= board.H8; sq++ {
		var orth, diag board.Bitboard
		for _, d := range board.Orthogonal {
			orth |= set.Rays[d][sq]
		}
		for _, d := range board.Diagonal {
			diag |= set.Rays[d][sq]
		}
		if orth != set.Rook[sq] {
			fail(r, movegen.LabelRays, sq, orth, set.Rook[sq], "orthogonal rays != rook")
		}
		if diag != set.Bishop[sq] {
			fail(r, movegen.LabelRays, sq, diag, set.Bishop[sq], "diagonal rays != bishop")
		}
		rank := sq.Rank()
		if set.Rays[board.North][sq].PopCount() != 7-rank || set.Rays[board.South][sq].PopCount() != rank {
			fail(r, movegen.LabelRays, sq, set.Rays[board.North][sq], set.Rays[board.North][sq], "north/south ray length")
		}
	}
}

func checkPawns(set *movegen.Set, r *Report) {
	for sq := board.A1; sq <= board.H8; sq++ {
		for _, c := range []board.Color{board.White, board.Black} {
			want := 1
			if sq.RelativeRank(c) == 1 {
				want = 2
			}
			if sq.RelativeRank(c) == 7 {
				want = 0
			}
			if got := set.PawnPushes[c][sq].PopCount(); got != want {
				fail(r, "pawn."+lower(c)+".push", sq, set.PawnPushes[c][sq], set.PawnPushes[c][sq], "wrong number of pushes")
			}
			if set.PawnCaptures[c][sq]&^set.King[sq] != 0 {
				fail(r, "pawn."+lower(c)+".capture", sq, set.PawnCaptures[c][sq], set.PawnCaptures[c][sq]&set.King[sq], "capture outside king neighbourhood")
			}
		}
	}
}

func lower(c board.Color) string {
	if c == board.White {
		return "white"
	}
	return "black"
}
