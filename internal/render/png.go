package render

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"
	"sync"

	"github.com/hailam/bbgen/internal/board"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

var (
	labelFontOnce sync.Once
	labelFont     *opentype.Font
	labelFontErr  error
)

func loadLabelFont() (*opentype.Font, error) {
	labelFontOnce.Do(func() {
		labelFont, labelFontErr = opentype.Parse(goregular.TTF)
	})
	return labelFont, labelFontErr
}

// Image rasterizes the diagram of bb. The board is drawn as SVG and rendered
// through oksvg; labels are drawn afterwards with the Go regular font.
func Image(bb board.Bitboard, origin board.Square, opts Options) (*image.RGBA, error) {
	opts = opts.withDefaults()

	var src bytes.Buffer
	if err := writeSVG(&src, bb, origin, opts, false); err != nil {
		return nil, err
	}

	icon, err := oksvg.ReadIconStream(&src)
	if err != nil {
		return nil, fmt.Errorf("parse diagram: %w", err)
	}

	width, height := opts.Size()
	icon.SetTarget(0, 0, float64(width), float64(height))

	rgba := image.NewRGBA(image.Rect(0, 0, width, height))
	scanner := rasterx.NewScannerGV(width, height, rgba, rgba.Bounds())
	raster := rasterx.NewDasher(width, height, scanner)
	icon.Draw(raster, 1.0)

	if opts.Labels {
		if err := drawLabels(rgba, opts); err != nil {
			return nil, err
		}
	}
	return rgba, nil
}

// PNG writes the rasterized diagram of bb as a PNG image.
func PNG(w io.Writer, bb board.Bitboard, origin board.Square, opts Options) error {
	img, err := Image(bb, origin, opts)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

func drawLabels(dst *image.RGBA, opts Options) error {
	f, err := loadLabelFont()
	if err != nil {
		return fmt.Errorf("load label font: %w", err)
	}

	m := opts.margin()
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    float64(m) * 2 / 3,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return fmt.Errorf("label face: %w", err)
	}
	defer face.Close()

	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(opts.Theme.TextColor),
		Face: face,
	}
	s := opts.SquareSize

	// Centered horizontally on (cx, baseline).
	draw := func(label string, cx, baseline int) {
		adv := d.MeasureString(label).Round()
		d.Dot = fixed.P(cx-adv/2, baseline)
		d.DrawString(label)
	}
	for file := 0; file < 8; file++ {
		draw(string(rune('a'+file)), m+file*s+s/2, 8*s+m*3/4)
	}
	for rank := 0; rank < 8; rank++ {
		draw(string(rune('1'+rank)), m/2, (7-rank)*s+s/2+m/4)
	}
	return nil
}
