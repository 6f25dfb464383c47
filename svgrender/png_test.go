package svgrender_test

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/cheekybits/is"

	"github.com/katalvlaran/lsys/svgrender"
)

func TestWritePNG(t *testing.T) {
	is := is.New(t)

	opts := svgrender.Options{Width: 64, Height: 48, Pad: 4, StrokeWidth: 2}

	var buf bytes.Buffer
	err := svgrender.WritePNG(&buf, vertical(), []int{0}, opts)
	is.NoErr(err)

	img, err := png.Decode(&buf)
	is.NoErr(err)
	is.Equal(img.Bounds().Dx(), 64)
	is.Equal(img.Bounds().Dy(), 48)

	// The stroke must have painted something over the white background.
	painted := false
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y && !painted; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, _ := img.At(x, y).RGBA()
			if r != 0xffff || g != 0xffff || bl != 0xffff {
				painted = true
				break
			}
		}
	}
	is.OK(painted)

	// Depth 0 strokes in the first palette color. The vertical stroke
	// runs through the canvas center, fully covering that pixel.
	r, g, bl, _ := img.At(12, 24).RGBA()
	is.Equal(r>>8, uint32(0x1f))
	is.Equal(g>>8, uint32(0x77))
	is.Equal(bl>>8, uint32(0xb4))
}

func TestWritePNG_Empty(t *testing.T) {
	is := is.New(t)

	var buf bytes.Buffer
	err := svgrender.WritePNG(&buf, nil, nil, svgrender.Options{})
	is.Equal(err, svgrender.ErrNoGeometry)
}
