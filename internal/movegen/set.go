package movegen

import (
	"errors"
	"fmt"

	"github.com/hailam/bbgen/internal/board"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// ErrUnknownTable is returned by Lookup for a label no table is registered under.
var ErrUnknownTable = errors.New("unknown table")

// Table labels.
const (
	LabelKing         = "king"
	LabelQueen        = "queen"
	LabelBishop       = "bishop"
	LabelKnight       = "knight"
	LabelRook         = "rook"
	LabelWhitePush    = "pawn.white.push"
	LabelBlackPush    = "pawn.black.push"
	LabelWhiteCapture = "pawn.white.capture"
	LabelBlackCapture = "pawn.black.capture"
	LabelRays         = "rays"
	LabelStart        = "start"
)

// Kind tells an emitter how a table's entries are shaped.
type Kind uint8

const (
	// KindMoves is 64 bitboards indexed by origin square.
	KindMoves Kind = iota
	// KindRays is 8x64 bitboards indexed by direction, then origin square.
	KindRays
	// KindStart is the twelve starting-position bitboards.
	KindStart
)

// Table is one named, emittable table of a Set.
type Table struct {
	Label string
	Name  string // identifier in emitted source
	Kind  Kind

	Moves *board.MoveTable
	Rays  *board.RayTable
	Start *StartPositions
}

// Entries flattens the table in emission order.
func (t Table) Entries() []board.Bitboard {
	switch t.Kind {
	case KindRays:
		out := make([]board.Bitboard, 0, board.NumDirections*board.NumSquares)
		for _, d := range board.Directions {
			out = append(out, t.Rays[d][:]...)
		}
		return out
	case KindStart:
		return t.Start.Entries()
	default:
		return t.Moves[:]
	}
}

// Set is every generated table. It is built once by Generate and never mutated.
type Set struct {
	King   board.MoveTable
	Queen  board.MoveTable
	Bishop board.MoveTable
	Knight board.MoveTable
	Rook   board.MoveTable

	PawnPushes   [2]board.MoveTable // [Color]
	PawnCaptures [2]board.MoveTable // [Color]

	Rays  board.RayTable
	Start StartPositions

	tables map[string]Table
	order  []string
}

// Generate computes every table.
func Generate() *Set {
	s := &Set{
		King:   KingMoves(),
		Knight: KnightMoves(),
		Bishop: BishopMoves(),
		Rook:   RookMoves(),
		Rays:   Rays(),
		Start:  StartingPositions(),
	}
	s.Queen = QueenMoves(&s.Bishop, &s.Rook)
	for _, c := range []board.Color{board.White, board.Black} {
		s.PawnPushes[c] = PawnPushes(c)
		s.PawnCaptures[c] = PawnCaptures(c)
	}

	s.tables = make(map[string]Table)
	s.register(Table{Label: LabelKing, Name: "kingMoves", Moves: &s.King})
	s.register(Table{Label: LabelQueen, Name: "queenMoves", Moves: &s.Queen})
	s.register(Table{Label: LabelBishop, Name: "bishopMoves", Moves: &s.Bishop})
	s.register(Table{Label: LabelKnight, Name: "knightMoves", Moves: &s.Knight})
	s.register(Table{Label: LabelRook, Name: "rookMoves", Moves: &s.Rook})
	s.register(Table{Label: LabelWhitePush, Name: "whitePawnMovesNormal", Moves: &s.PawnPushes[board.White]})
	s.register(Table{Label: LabelBlackPush, Name: "blackPawnMovesNormal", Moves: &s.PawnPushes[board.Black]})
	s.register(Table{Label: LabelWhiteCapture, Name: "whitePawnMovesCaptures", Moves: &s.PawnCaptures[board.White]})
	s.register(Table{Label: LabelBlackCapture, Name: "blackPawnMovesCaptures", Moves: &s.PawnCaptures[board.Black]})
	s.register(Table{Label: LabelRays, Name: "RAYS", Kind: KindRays, Rays: &s.Rays})
	s.register(Table{Label: LabelStart, Name: "startingPositions", Kind: KindStart, Start: &s.Start})
	return s
}

func (s *Set) register(t Table) {
	s.tables[t.Label] = t
	s.order = append(s.order, t.Label)
}

// Lookup returns the table registered under label.
func (s *Set) Lookup(label string) (Table, error) {
	t, ok := s.tables[label]
	if !ok {
		return Table{}, fmt.Errorf("%q: %w", label, ErrUnknownTable)
	}
	return t, nil
}

// Tables returns every table in generation order (pieces, pawns, rays, start).
func (s *Set) Tables() []Table {
	out := make([]Table, 0, len(s.order))
	for _, l := range s.order {
		out = append(out, s.tables[l])
	}
	return out
}

// Labels returns the registered labels, sorted.
func (s *Set) Labels() []string {
	labels := maps.Keys(s.tables)
	slices.Sort(labels)
	return labels
}

// Select resolves a list of labels; "all" expands to every table in
// generation order. Duplicates are dropped.
func (s *Set) Select(labels []string) ([]Table, error) {
	var out []Table
	seen := make(map[string]bool)
	for _, l := range labels {
		if l == "all" {
			for _, t := range s.Tables() {
				if !seen[t.Label] {
					seen[t.Label] = true
					out = append(out, t)
				}
			}
			continue
		}
		t, err := s.Lookup(l)
		if err != nil {
			return nil, err
		}
		if !seen[l] {
			seen[l] = true
			out = append(out, t)
		}
	}
	return out, nil
}
