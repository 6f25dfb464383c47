// Package svgrender defines render options and sentinel errors.
package svgrender

import (
	"errors"
	"fmt"
	"image/color"
)

// Sentinel errors for rendering.
var (
	// ErrNoGeometry indicates an empty segment list or path.
	ErrNoGeometry = errors.New("svgrender: nothing to draw")
	// ErrBadCanvas indicates non-positive canvas dimensions after padding.
	ErrBadCanvas = errors.New("svgrender: canvas too small")
)

// Options configures the output canvas.
//
// Fields:
//   - Width, Height — canvas size in pixels.
//   - Pad           — margin kept clear on every side, in pixels.
//   - StrokeWidth   — line width in pixels.
//   - Palette       — stroke colors indexed by nesting depth, wrapping
//     around when the drawing nests deeper than the palette.
//   - Background    — canvas fill; the zero value means white.
type Options struct {
	Width       int
	Height      int
	Pad         float64
	StrokeWidth float64
	Palette     []color.RGBA
	Background  color.RGBA
}

// DefaultOptions returns a 1024x768 canvas with a 16px margin and a
// ten-color categorical palette.
func DefaultOptions() Options {
	return Options{
		Width:       1024,
		Height:      768,
		Pad:         16,
		StrokeWidth: 1,
		Palette: []color.RGBA{
			{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff},
			{R: 0xff, G: 0x7f, B: 0x0e, A: 0xff},
			{R: 0x2c, G: 0xa0, B: 0x2c, A: 0xff},
			{R: 0xd6, G: 0x27, B: 0x28, A: 0xff},
			{R: 0x94, G: 0x67, B: 0xbd, A: 0xff},
			{R: 0x8c, G: 0x56, B: 0x4b, A: 0xff},
			{R: 0xe3, G: 0x77, B: 0xc2, A: 0xff},
			{R: 0x7f, G: 0x7f, B: 0x7f, A: 0xff},
			{R: 0xbc, G: 0xbd, B: 0x22, A: 0xff},
			{R: 0x17, G: 0xbe, B: 0xcf, A: 0xff},
		},
		Background: color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	}
}

// normalize fills zero-valued fields from the defaults and validates
// the usable canvas area.
func (o Options) normalize() (Options, error) {
	def := DefaultOptions()
	if o.Width == 0 {
		o.Width = def.Width
	}
	if o.Height == 0 {
		o.Height = def.Height
	}
	if o.Pad == 0 {
		o.Pad = def.Pad
	}
	if o.StrokeWidth == 0 {
		o.StrokeWidth = def.StrokeWidth
	}
	if len(o.Palette) == 0 {
		o.Palette = def.Palette
	}
	if o.Background == (color.RGBA{}) {
		o.Background = def.Background
	}

	if float64(o.Width)-2*o.Pad <= 0 || float64(o.Height)-2*o.Pad <= 0 {
		return o, fmt.Errorf("%dx%d with pad %v: %w", o.Width, o.Height, o.Pad, ErrBadCanvas)
	}
	return o, nil
}

// stroke returns the palette color for a nesting depth, as an SVG hex
// literal.
func (o Options) stroke(depth int) string {
	c := o.Palette[depth%len(o.Palette)]
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// strokeColor returns the palette color for a nesting depth.
func (o Options) strokeColor(depth int) color.RGBA {
	return o.Palette[depth%len(o.Palette)]
}
