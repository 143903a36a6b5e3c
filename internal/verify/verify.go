// Package verify checks generated tables against independent move generators
// and against the geometric invariants every table must satisfy.
package verify

import (
	"fmt"
	"strings"

	"github.com/hailam/bbgen/internal/board"
)

// Mismatch is one table entry that failed a check.
type Mismatch struct {
	Check  string
	Table  string
	Square board.Square
	Got    board.Bitboard
	Want   board.Bitboard
	Detail string
}

func (m Mismatch) String() string {
	s := fmt.Sprintf("%s: %s[%v]", m.Check, m.Table, m.Square)
	if m.Detail != "" {
		s += ": " + m.Detail
	}
	if m.Got != m.Want {
		s += fmt.Sprintf(" (got 0x%016x, want 0x%016x)", uint64(m.Got), uint64(m.Want))
	}
	return s
}

// Report collects the mismatches of one or more checks.
type Report struct {
	Checks     []string
	Mismatches []Mismatch
}

// OK returns true if no check found a mismatch.
func (r *Report) OK() bool {
	return len(r.Mismatches) == 0
}

// Error summarizes the report; it is only meaningful when !OK().
func (r *Report) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d mismatches", len(r.Mismatches))
	for i, m := range r.Mismatches {
		if i == 10 {
			fmt.Fprintf(&sb, "\n  ... and %d more", len(r.Mismatches)-i)
			break
		}
		sb.WriteString("\n  ")
		sb.WriteString(m.String())
	}
	return sb.String()
}

// Merge appends other's checks and mismatches to r.
func (r *Report) Merge(other *Report) {
	r.Checks = append(r.Checks, other.Checks...)
	r.Mismatches = append(r.Mismatches, other.Mismatches...)
}

func (r *Report) add(m Mismatch) {
	r.Mismatches = append(r.Mismatches, m)
}
