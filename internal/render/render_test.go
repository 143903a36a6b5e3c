package render

import (
	"bytes"
	"errors"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/hailam/bbgen/internal/board"
	"github.com/hailam/bbgen/internal/movegen"
)

func TestSVG(t *testing.T) {
	king := movegen.KingMoves()
	var out bytes.Buffer
	if err := SVG(&out, king[board.E4], board.E4, Options{Labels: true, Title: "king e4"}); err != nil {
		t.Fatalf("SVG: %v", err)
	}
	doc := out.String()

	if !strings.Contains(doc, "<svg") || !strings.Contains(doc, `viewBox="0 0 408 408"`) {
		t.Errorf("missing svg root or viewBox:\n%s", doc[:200])
	}
	if n := strings.Count(doc, "<circle"); n != 8 {
		t.Errorf("drew %d target markers, want 8", n)
	}
	if n := strings.Count(doc, "<rect"); n != 65 {
		t.Errorf("drew %d rects, want 64 squares and a background", n)
	}
	if !strings.Contains(doc, "fill:#f7f769") {
		t.Error("origin square not highlighted")
	}
	if n := strings.Count(doc, "<text"); n != 16 {
		t.Errorf("drew %d labels, want 16", n)
	}
	if !strings.Contains(doc, "<title>king e4</title>") {
		t.Error("missing title")
	}
}

func TestSVGNoLabels(t *testing.T) {
	var out bytes.Buffer
	if err := SVG(&out, board.Empty, board.NoSquare, Options{SquareSize: 10}); err != nil {
		t.Fatalf("SVG: %v", err)
	}
	doc := out.String()
	if strings.Contains(doc, "<text") || strings.Contains(doc, "<circle") {
		t.Error("unexpected labels or targets")
	}
	if !strings.Contains(doc, `viewBox="0 0 80 80"`) {
		t.Error("unexpected size for 10px squares without margin")
	}
}

func TestSVGBadOrigin(t *testing.T) {
	var out bytes.Buffer
	if err := SVG(&out, board.Empty, 99, Options{}); !errors.Is(err, board.ErrOutOfRange) {
		t.Errorf("SVG error = %v, want ErrOutOfRange", err)
	}
}

func TestPNG(t *testing.T) {
	knight := movegen.KnightMoves()
	opts := Options{SquareSize: 20, Labels: true}
	var out bytes.Buffer
	if err := PNG(&out, knight[board.B1], board.B1, opts); err != nil {
		t.Fatalf("PNG: %v", err)
	}
	img, err := png.Decode(&out)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	w, h := opts.Size()
	if b := img.Bounds(); b.Dx() != w || b.Dy() != h {
		t.Fatalf("image is %dx%d, want %dx%d", b.Dx(), b.Dy(), w, h)
	}

	theme := DefaultTheme()
	full := opts.withDefaults()
	center := func(sq board.Square) (int, int) {
		x, y := full.squareOrigin(sq)
		return x + full.SquareSize/2, y + full.SquareSize/2
	}

	x, y := center(board.C3)
	assertColor(t, "target c3", img.At(x, y), theme.TargetColor)
	x, y = center(board.B1)
	assertColor(t, "origin b1", img.At(x, y), theme.OriginColor)
	x, y = center(board.H1) // light, empty
	assertColor(t, "empty h1", img.At(x, y), theme.LightSquare)
	x, y = center(board.A8) // light, empty
	assertColor(t, "empty a8", img.At(x, y), theme.LightSquare)
	x, y = center(board.H8) // dark, empty
	assertColor(t, "empty h8", img.At(x, y), theme.DarkSquare)
	x, y = center(board.A1) // dark, empty
	assertColor(t, "empty a1", img.At(x, y), theme.DarkSquare)
}

func assertColor(t *testing.T, name string, got color.Color, want color.RGBA) {
	t.Helper()
	r, g, b, _ := got.RGBA()
	near := func(a uint32, b uint8) bool {
		d := int(a>>8) - int(b)
		return d >= -2 && d <= 2
	}
	if !near(r, want.R) || !near(g, want.G) || !near(b, want.B) {
		t.Errorf("%s: got (%d,%d,%d), want (%d,%d,%d)", name, r>>8, g>>8, b>>8, want.R, want.G, want.B)
	}
}
