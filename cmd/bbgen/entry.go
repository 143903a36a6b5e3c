package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hailam/bbgen/internal/board"
	"github.com/hailam/bbgen/internal/movegen"
	"github.com/hailam/bbgen/internal/render"
)

// entry is one addressed bitboard of a table.
type entry struct {
	label  string
	origin board.Square
	dir    board.Direction
	bb     board.Bitboard
}

func (e entry) String() string {
	if e.label == movegen.LabelRays {
		return fmt.Sprintf("%s[%v][%v]", e.label, e.dir, e.origin)
	}
	return fmt.Sprintf("%s[%v]", e.label, e.origin)
}

// parseEntry resolves "label:square" or, for rays, "rays:square:direction".
func parseEntry(set *movegen.Set, ref string) (entry, error) {
	parts := strings.Split(ref, ":")
	if len(parts) < 2 {
		return entry{}, fmt.Errorf("entry %q: want label:square", ref)
	}

	t, err := set.Lookup(parts[0])
	if err != nil {
		return entry{}, err
	}
	sq, err := board.ParseSquare(parts[1])
	if err != nil {
		return entry{}, err
	}

	e := entry{label: t.Label, origin: sq}
	switch t.Kind {
	case movegen.KindRays:
		if len(parts) != 3 {
			return entry{}, fmt.Errorf("entry %q: rays need a direction, e.g. rays:e4:ne", ref)
		}
		if e.dir, err = board.ParseDirection(parts[2]); err != nil {
			return entry{}, err
		}
		e.bb = t.Rays[e.dir][sq]
	case movegen.KindStart:
		return entry{}, fmt.Errorf("entry %q: starting positions are not indexed by square", ref)
	default:
		if len(parts) != 2 {
			return entry{}, fmt.Errorf("entry %q: want label:square", ref)
		}
		e.bb = t.Moves[sq]
	}
	return e, nil
}

// imageWriter returns the renderer for an image format name.
func imageWriter(format string) (func(io.Writer, board.Bitboard, board.Square, render.Options) error, error) {
	switch format {
	case "svg":
		return render.SVG, nil
	case "png":
		return render.PNG, nil
	}
	return nil, fmt.Errorf("unknown image format %q", format)
}

func runRender(set *movegen.Set) error {
	write, err := imageWriter(*formatFlag)
	if err != nil {
		usage(err)
	}
	e, err := parseEntry(set, *renderFlag)
	if err != nil {
		return err
	}
	opts := render.Options{SquareSize: *sizeFlag, Labels: true, Title: e.String()}

	if *outFlag == "" {
		return write(os.Stdout, e.bb, e.origin, opts)
	}
	f, err := os.Create(*outFlag)
	if err != nil {
		return err
	}
	if err := write(f, e.bb, e.origin, opts); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
