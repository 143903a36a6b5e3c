// Package emit renders generated tables as source literals for the engine build.
//
// Every bitboard is written as a 64-character string of '0' and '1', most
// significant bit first: the leftmost character is h8 (bit 63), the rightmost a1
// (bit 0).
package emit

import (
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"

	"github.com/hailam/bbgen/internal/board"
)

var (
	ErrBadLiteral   = errors.New("malformed bitboard literal")
	ErrUnknownStyle = errors.New("unknown emission style")
)

// LiteralLen is the length of one bitboard literal.
const LiteralLen = 64

// Literal returns the 64-character binary literal of b, bit 63 first.
func Literal(b board.Bitboard) string {
	return fmt.Sprintf("%064b", uint64(b))
}

// ParseLiteral parses a literal produced by Literal.
func ParseLiteral(s string) (board.Bitboard, error) {
	if len(s) != LiteralLen {
		return board.Empty, fmt.Errorf("%w: length %d", ErrBadLiteral, len(s))
	}
	for i := 0; i < len(s); i++ {
		if s[i] != '0' && s[i] != '1' {
			return board.Empty, fmt.Errorf("%w: byte %q at %d", ErrBadLiteral, s[i], i)
		}
	}
	v, err := strconv.ParseUint(s, 2, 64)
	if err != nil {
		return board.Empty, fmt.Errorf("%w: %v", ErrBadLiteral, err)
	}
	return board.Bitboard(v), nil
}

var bitboardCall = regexp.MustCompile(`bitboard\("([01]*)"\)`)

// ExtractLiterals reads C++ emitted by this package and returns every
// bitboard("...") literal in source order. For cpp-map output that is origin,
// moves, origin, moves, ...
func ExtractLiterals(r io.Reader) ([]board.Bitboard, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	matches := bitboardCall.FindAllSubmatch(src, -1)
	out := make([]board.Bitboard, 0, len(matches))
	for _, m := range matches {
		b, err := ParseLiteral(string(m[1]))
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, nil
}
