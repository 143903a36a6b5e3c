package render

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"
	"github.com/hailam/bbgen/internal/board"
)

// Options configures a diagram.
type Options struct {
	SquareSize int  // pixels per square; default 48
	Labels     bool // draw file and rank labels in a margin
	Title      string
	Theme      *Theme
}

func (o Options) withDefaults() Options {
	if o.SquareSize <= 0 {
		o.SquareSize = 48
	}
	if o.Theme == nil {
		o.Theme = DefaultTheme()
	}
	return o
}

// margin is the label gutter on the left and bottom edges.
func (o Options) margin() int {
	if !o.Labels {
		return 0
	}
	return o.SquareSize / 2
}

// Size returns the diagram's width and height in pixels.
func (o Options) Size() (width, height int) {
	o = o.withDefaults()
	side := 8*o.SquareSize + o.margin()
	return side, side
}

// squareOrigin returns the top-left pixel of sq; rank 8 is drawn on top.
func (o Options) squareOrigin(sq board.Square) (x, y int) {
	return o.margin() + sq.File()*o.SquareSize, (7 - sq.Rank()) * o.SquareSize
}

// SVG writes a diagram of bb with origin highlighted. Pass board.NoSquare to
// draw no origin.
func SVG(w io.Writer, bb board.Bitboard, origin board.Square, opts Options) error {
	return writeSVG(w, bb, origin, opts.withDefaults(), opts.Labels)
}

func writeSVG(w io.Writer, bb board.Bitboard, origin board.Square, opts Options, text bool) error {
	if origin > board.NoSquare {
		return fmt.Errorf("origin %d: %w", origin, board.ErrOutOfRange)
	}

	width, height := opts.Size()
	s := opts.SquareSize
	theme := opts.Theme

	canvas := svg.New(w)
	canvas.Startview(width, height, 0, 0, width, height)
	if opts.Title != "" {
		canvas.Title(opts.Title)
	}
	canvas.Rect(0, 0, width, height, fill(theme.Background))

	canvas.Gid("squares")
	for sq := board.A1; sq <= board.H8; sq++ {
		x, y := opts.squareOrigin(sq)
		c := theme.LightSquare
		if (sq.File()+sq.Rank())%2 == 0 {
			c = theme.DarkSquare
		}
		if sq == origin {
			c = theme.OriginColor
		}
		canvas.Rect(x, y, s, s, fill(c))
	}
	canvas.Gend()

	canvas.Gid("targets")
	for _, sq := range bb.Squares() {
		x, y := opts.squareOrigin(sq)
		canvas.Circle(x+s/2, y+s/2, s/5, fill(theme.TargetColor))
	}
	canvas.Gend()

	if text && opts.Labels {
		m := opts.margin()
		style := fill(theme.TextColor) + fmt.Sprintf(";font-family:sans-serif;font-size:%dpx;text-anchor:middle", m*2/3)
		for f := 0; f < 8; f++ {
			canvas.Text(m+f*s+s/2, 8*s+m*3/4, string(rune('a'+f)), style)
		}
		for r := 0; r < 8; r++ {
			canvas.Text(m/2, (7-r)*s+s/2+m/4, string(rune('1'+r)), style)
		}
	}

	canvas.End()
	return nil
}
