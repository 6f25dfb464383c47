package svgrender

import (
	"image"
	"image/draw"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/vector"

	"github.com/katalvlaran/lsys/turtle"
)

// WritePNG rasterizes turtle segments to a PNG image, colored by
// nesting depth like Write. Each segment is stroked as a filled quad of
// StrokeWidth thickness; at fractal scales the joints are not visible.
func WritePNG(w io.Writer, coords []turtle.Segment, depths []int, opts Options) error {
	o, err := opts.normalize()
	if err != nil {
		return err
	}
	if len(coords) == 0 {
		return ErrNoGeometry
	}

	min, max := bounds(coords)
	tr := viewport(min, max, o)

	img := image.NewRGBA(image.Rect(0, 0, o.Width, o.Height))
	draw.Draw(img, img.Bounds(), image.NewUniform(o.Background), image.Point{}, draw.Src)

	depth := func(i int) int {
		if i < len(depths) {
			return depths[i]
		}
		return 0
	}

	// Group segments by palette slot so each color rasterizes in one
	// pass.
	byColor := make(map[int][]turtle.Segment)
	for i, seg := range coords {
		slot := depth(i) % len(o.Palette)
		byColor[slot] = append(byColor[slot], seg)
	}

	half := o.StrokeWidth / 2
	for slot, segs := range byColor {
		r := vector.NewRasterizer(o.Width, o.Height)
		r.DrawOp = draw.Over
		for _, seg := range segs {
			ax, ay := tr.Apply(seg.A.X, seg.A.Y)
			bx, by := tr.Apply(seg.B.X, seg.B.Y)
			strokeQuad(r, ax, ay, bx, by, half)
		}
		r.Draw(img, img.Bounds(), image.NewUniform(o.strokeColor(slot)), image.Point{})
	}

	return png.Encode(w, img)
}

// strokeQuad adds the quad covering the segment (ax,ay)-(bx,by) with the
// given half-thickness to the rasterizer.
func strokeQuad(r *vector.Rasterizer, ax, ay, bx, by, half float64) {
	dx, dy := bx-ax, by-ay
	n := math.Hypot(dx, dy)
	if n == 0 {
		return
	}
	// Unit normal, scaled to half the stroke width.
	px, py := -dy/n*half, dx/n*half

	r.MoveTo(float32(ax+px), float32(ay+py))
	r.LineTo(float32(bx+px), float32(by+py))
	r.LineTo(float32(bx-px), float32(by-py))
	r.LineTo(float32(ax-px), float32(ay-py))
	r.ClosePath()
}
