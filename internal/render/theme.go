// Package render draws a single table entry as a board diagram, for reviewing
// generated tables by eye.
package render

import (
	"fmt"
	"image/color"
)

// Theme defines the color scheme for the board.
type Theme struct {
	LightSquare color.RGBA
	DarkSquare  color.RGBA
	OriginColor color.RGBA
	TargetColor color.RGBA
	Background  color.RGBA
	TextColor   color.RGBA
}

// DefaultTheme returns the default color theme.
func DefaultTheme() *Theme {
	return &Theme{
		LightSquare: color.RGBA{240, 217, 181, 255}, // Tan
		DarkSquare:  color.RGBA{181, 136, 99, 255},  // Brown
		OriginColor: color.RGBA{247, 247, 105, 255}, // Yellow highlight
		TargetColor: color.RGBA{130, 151, 105, 255}, // Green dots
		Background:  color.RGBA{40, 44, 52, 255},    // Dark gray
		TextColor:   color.RGBA{220, 220, 220, 255}, // Light gray
	}
}

// fill returns an SVG style string filling with c.
func fill(c color.RGBA) string {
	s := fmt.Sprintf("fill:#%02x%02x%02x", c.R, c.G, c.B)
	if c.A != 255 {
		s += fmt.Sprintf(";fill-opacity:%.2f", float64(c.A)/255)
	}
	return s
}
