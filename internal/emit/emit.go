package emit

import (
	"bytes"
	"fmt"
	"go/format"
	"io"
	"strings"
	"unicode"

	"github.com/hailam/bbgen/internal/board"
	"github.com/hailam/bbgen/internal/movegen"
)

// Style selects the emitted syntax.
type Style string

const (
	// StyleCPP emits `const bitboard name[64] = {...};` arrays; rays as RAYS[8][64].
	StyleCPP Style = "cpp"
	// StyleCPPMap emits `name[bitboard("<origin>")] = bitboard("<moves>");`
	// assignments for move tables. Rays and starting positions stay arrays.
	StyleCPPMap Style = "cpp-map"
	// StyleGo emits a gofmt'd Go file of [64]uint64 / [8][64]uint64 literals.
	StyleGo Style = "go"
)

// Styles lists the supported styles.
var Styles = []Style{StyleCPP, StyleCPPMap, StyleGo}

// ParseStyle validates a style name.
func ParseStyle(s string) (Style, error) {
	for _, st := range Styles {
		if string(st) == s {
			return st, nil
		}
	}
	return "", fmt.Errorf("%q: %w", s, ErrUnknownStyle)
}

// Options configures an Emitter.
type Options struct {
	Style   Style
	Package string // Go package name for StyleGo; defaults to "tables"
}

// Emitter accumulates tables and writes them to the output in one piece on Flush.
type Emitter struct {
	w    io.Writer
	opts Options
	buf  bytes.Buffer
	n    int
}

// New creates an emitter writing to w.
func New(w io.Writer, opts Options) *Emitter {
	if opts.Style == "" {
		opts.Style = StyleCPP
	}
	if opts.Package == "" {
		opts.Package = "tables"
	}
	return &Emitter{w: w, opts: opts}
}

// Emit renders any generated table under its own name.
func (e *Emitter) Emit(t movegen.Table) error {
	switch t.Kind {
	case movegen.KindRays:
		return e.EmitRays(t.Name, t.Rays)
	case movegen.KindStart:
		return e.EmitStart(t.Name, t.Start)
	default:
		return e.EmitTable(t.Name, t.Moves)
	}
}

// EmitTable renders a 64-entry move table in square order a1..h8.
func (e *Emitter) EmitTable(label string, t *board.MoveTable) error {
	if err := e.begin(); err != nil {
		return err
	}
	switch e.opts.Style {
	case StyleCPP:
		fmt.Fprintf(&e.buf, "const bitboard %s[64] = {\n", label)
		for sq := board.A1; sq <= board.H8; sq++ {
			fmt.Fprintf(&e.buf, "\tbitboard(\"%s\"), // %v\n", Literal(t[sq]), sq)
		}
		e.buf.WriteString("};\n")
	case StyleCPPMap:
		for sq := board.A1; sq <= board.H8; sq++ {
			fmt.Fprintf(&e.buf, "%s[bitboard(\"%s\")] = bitboard(\"%s\");\n",
				label, Literal(board.SquareBB(sq)), Literal(t[sq]))
		}
	case StyleGo:
		fmt.Fprintf(&e.buf, "var %s = [64]uint64{\n", goName(label))
		for sq := board.A1; sq <= board.H8; sq++ {
			fmt.Fprintf(&e.buf, "0x%016x, // %v\n", uint64(t[sq]), sq)
		}
		e.buf.WriteString("}\n")
	default:
		return fmt.Errorf("%q: %w", e.opts.Style, ErrUnknownStyle)
	}
	return nil
}

// EmitRays renders a ray table as [8][64], grouped by direction in
// NORTH, SOUTH, EAST, WEST, NORTHEAST, SOUTHEAST, NORTHWEST, SOUTHWEST order.
func (e *Emitter) EmitRays(label string, r *board.RayTable) error {
	if err := e.begin(); err != nil {
		return err
	}
	switch e.opts.Style {
	case StyleCPP, StyleCPPMap:
		fmt.Fprintf(&e.buf, "const bitboard %s[8][64] = {\n", label)
		for _, d := range board.Directions {
			fmt.Fprintf(&e.buf, "\t{ // %v\n", d)
			for sq := board.A1; sq <= board.H8; sq++ {
				fmt.Fprintf(&e.buf, "\t\tbitboard(\"%s\"),\n", Literal(r[d][sq]))
			}
			e.buf.WriteString("\t},\n")
		}
		e.buf.WriteString("};\n")
	case StyleGo:
		fmt.Fprintf(&e.buf, "var %s = [8][64]uint64{\n", goName(label))
		for _, d := range board.Directions {
			fmt.Fprintf(&e.buf, "{ // %v\n", d)
			for sq := board.A1; sq <= board.H8; sq++ {
				fmt.Fprintf(&e.buf, "0x%016x,\n", uint64(r[d][sq]))
			}
			e.buf.WriteString("},\n")
		}
		e.buf.WriteString("}\n")
	default:
		return fmt.Errorf("%q: %w", e.opts.Style, ErrUnknownStyle)
	}
	return nil
}

// EmitStart renders the twelve starting-position bitboards.
func (e *Emitter) EmitStart(label string, s *movegen.StartPositions) error {
	if err := e.begin(); err != nil {
		return err
	}
	entries := s.Entries()
	names := startNames()
	switch e.opts.Style {
	case StyleCPP, StyleCPPMap:
		fmt.Fprintf(&e.buf, "const bitboard %s[12] = {\n", label)
		for i, b := range entries {
			fmt.Fprintf(&e.buf, "\tbitboard(\"%s\"), // %s\n", Literal(b), names[i])
		}
		e.buf.WriteString("};\n")
	case StyleGo:
		fmt.Fprintf(&e.buf, "var %s = [12]uint64{\n", goName(label))
		for i, b := range entries {
			fmt.Fprintf(&e.buf, "0x%016x, // %s\n", uint64(b), names[i])
		}
		e.buf.WriteString("}\n")
	default:
		return fmt.Errorf("%q: %w", e.opts.Style, ErrUnknownStyle)
	}
	return nil
}

// Flush writes everything emitted so far. Go output is run through gofmt first.
func (e *Emitter) Flush() error {
	out := e.buf.Bytes()
	if e.opts.Style == StyleGo {
		var src bytes.Buffer
		src.WriteString("// Code generated by bbgen. DO NOT EDIT.\n\n")
		fmt.Fprintf(&src, "package %s\n\n", e.opts.Package)
		src.Write(out)
		formatted, err := format.Source(src.Bytes())
		if err != nil {
			return fmt.Errorf("format go output: %w", err)
		}
		out = formatted
	}
	if _, err := e.w.Write(out); err != nil {
		return err
	}
	e.buf.Reset()
	e.n = 0
	return nil
}

// begin validates the style and separates the next table from the previous one.
func (e *Emitter) begin() error {
	if _, err := ParseStyle(string(e.opts.Style)); err != nil {
		return err
	}
	if e.n > 0 {
		e.buf.WriteString("\n")
	}
	e.n++
	return nil
}

// goName exports an identifier: kingMoves -> KingMoves.
func goName(label string) string {
	if label == "" {
		return label
	}
	r := []rune(label)
	r[0] = unicode.ToUpper(r[0])
	return strings.Map(func(c rune) rune {
		if c == '.' || c == '-' {
			return '_'
		}
		return c
	}, string(r))
}

func startNames() []string {
	var names []string
	for _, c := range []board.Color{board.White, board.Black} {
		for _, pt := range movegen.StartOrder {
			names = append(names, strings.ToLower(c.String()+" "+pt.String()))
		}
	}
	return names
}
