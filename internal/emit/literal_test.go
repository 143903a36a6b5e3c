package emit

import (
	"errors"
	"strings"
	"testing"

	"github.com/hailam/bbgen/internal/board"
	"github.com/hailam/bbgen/internal/movegen"
)

func TestLiteralBitOrder(t *testing.T) {
	a1 := Literal(board.SquareBB(board.A1))
	if a1 != strings.Repeat("0", 63)+"1" {
		t.Errorf("a1 literal = %s", a1)
	}
	h8 := Literal(board.SquareBB(board.H8))
	if h8 != "1"+strings.Repeat("0", 63) {
		t.Errorf("h8 literal = %s", h8)
	}
	if Literal(board.Empty) != strings.Repeat("0", 64) {
		t.Error("empty literal is not all zeros")
	}
	if Literal(board.Universe) != strings.Repeat("1", 64) {
		t.Error("universe literal is not all ones")
	}
}

func TestLiteralRoundTripAllTables(t *testing.T) {
	for _, tbl := range movegen.Generate().Tables() {
		for i, b := range tbl.Entries() {
			lit := Literal(b)
			if len(lit) != LiteralLen {
				t.Fatalf("%s[%d]: literal length %d", tbl.Label, i, len(lit))
			}
			got, err := ParseLiteral(lit)
			if err != nil {
				t.Fatalf("%s[%d]: ParseLiteral: %v", tbl.Label, i, err)
			}
			if got != b {
				t.Errorf("%s[%d]: round trip %#x -> %#x", tbl.Label, i, uint64(b), uint64(got))
			}
		}
	}
}

func TestParseLiteralErrors(t *testing.T) {
	tests := map[string]string{
		"short":   strings.Repeat("0", 63),
		"long":    strings.Repeat("0", 65),
		"badchar": strings.Repeat("0", 63) + "2",
		"empty":   "",
		"spaces":  strings.Repeat("0 ", 32),
	}
	for name, in := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := ParseLiteral(in); !errors.Is(err, ErrBadLiteral) {
				t.Errorf("ParseLiteral error = %v, want ErrBadLiteral", err)
			}
		})
	}
}

func TestExtractLiteralsRejectsBadLiteral(t *testing.T) {
	src := `const bitboard x[1] = { bitboard("0101"), };`
	if _, err := ExtractLiterals(strings.NewReader(src)); !errors.Is(err, ErrBadLiteral) {
		t.Errorf("ExtractLiterals error = %v, want ErrBadLiteral", err)
	}
}
