package board

import (
	"errors"
	"testing"
)

func TestSquareCoordinateRoundTrip(t *testing.T) {
	for sq := A1; sq <= H8; sq++ {
		c, err := SquareToCoordinate(sq)
		if err != nil {
			t.Fatalf("SquareToCoordinate(%d): %v", sq, err)
		}
		if c.File < 0 || c.File > 7 || c.Rank < 0 || c.Rank > 7 {
			t.Errorf("SquareToCoordinate(%d) = %s, component out of range", sq, c)
		}
		got, err := CoordinateToSquare(c)
		if err != nil {
			t.Fatalf("CoordinateToSquare(%s): %v", c, err)
		}
		if got != sq {
			t.Errorf("round trip of %d gave %d", sq, got)
		}
	}
}

func TestSquareToCoordinateOutOfRange(t *testing.T) {
	for _, sq := range []Square{NoSquare, 65, 255} {
		if _, err := SquareToCoordinate(sq); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("SquareToCoordinate(%d) error = %v, want ErrOutOfRange", sq, err)
		}
	}
}

func TestCoordinateToSquareOutOfRange(t *testing.T) {
	tests := []Coordinate{
		{-1, 0}, {0, -1}, {8, 0}, {0, 8}, {8, 8}, {-1, -1},
	}
	for _, c := range tests {
		t.Run(c.String(), func(t *testing.T) {
			if _, err := CoordinateToSquare(c); !errors.Is(err, ErrOutOfRange) {
				t.Errorf("CoordinateToSquare(%s) error = %v, want ErrOutOfRange", c, err)
			}
		})
	}
}

func TestSquareLayout(t *testing.T) {
	tests := []struct {
		sq         Square
		file, rank int
		name       string
	}{
		{A1, 0, 0, "a1"},
		{H1, 7, 0, "h1"},
		{E4, 4, 3, "e4"},
		{A8, 0, 7, "a8"},
		{H8, 7, 7, "h8"},
	}
	for _, tc := range tests {
		if tc.sq.File() != tc.file || tc.sq.Rank() != tc.rank {
			t.Errorf("%s: file/rank = %d/%d, want %d/%d", tc.name, tc.sq.File(), tc.sq.Rank(), tc.file, tc.rank)
		}
		if tc.sq.String() != tc.name {
			t.Errorf("String() = %q, want %q", tc.sq.String(), tc.name)
		}
	}
	if E4 != 28 {
		t.Errorf("E4 = %d, want 28", E4)
	}
}

func TestParseSquare(t *testing.T) {
	tests := []struct {
		in      string
		want    Square
		wantErr bool
	}{
		{"e4", E4, false},
		{"a1", A1, false},
		{"h8", H8, false},
		{"28", E4, false},
		{"0", A1, false},
		{"63", H8, false},
		{"64", NoSquare, true},
		{"-1", NoSquare, true},
		{"i1", NoSquare, true},
		{"a9", NoSquare, true},
		{"e", NoSquare, true},
		{"", NoSquare, true},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseSquare(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Errorf("ParseSquare(%q) = %v, want error", tc.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseSquare(%q): %v", tc.in, err)
			}
			if got != tc.want {
				t.Errorf("ParseSquare(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestRelativeRank(t *testing.T) {
	if E2.RelativeRank(White) != 1 {
		t.Errorf("e2 relative rank for White = %d, want 1", E2.RelativeRank(White))
	}
	if E7.RelativeRank(Black) != 1 {
		t.Errorf("e7 relative rank for Black = %d, want 1", E7.RelativeRank(Black))
	}
	if E2.Mirror() != E7 {
		t.Errorf("e2 mirrored = %v, want e7", E2.Mirror())
	}
}
