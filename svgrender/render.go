package svgrender

import (
	"bufio"
	"fmt"
	"io"
	"math"

	mt "github.com/rustyoz/Mtransform"

	"github.com/katalvlaran/lsys/bezier"
	"github.com/katalvlaran/lsys/turtle"
)

// viewport builds the world-to-canvas transform: uniform scale fitting
// the bounding box into the padded canvas, y flipped, drawing centered.
func viewport(min, max turtle.Point, o Options) *mt.Transform {
	w := max.X - min.X
	h := max.Y - min.Y
	// A single point or one axis-aligned stroke has a zero span; pretend
	// it is one unit wide so the scale stays finite.
	if w == 0 {
		w = 1
	}
	if h == 0 {
		h = 1
	}

	uw := float64(o.Width) - 2*o.Pad
	uh := float64(o.Height) - 2*o.Pad
	s := math.Min(uw/w, uh/h)

	// Center the leftover slack on both axes.
	ox := o.Pad + (uw-s*w)/2
	oy := o.Pad + (uh-s*h)/2

	t := mt.NewTransform()
	t[0][0] = s
	t[0][2] = ox - s*min.X
	t[1][1] = -s
	t[1][2] = oy + s*max.Y
	return t
}

// bounds returns the bounding box of the segment endpoints.
func bounds(coords []turtle.Segment) (min, max turtle.Point) {
	min = turtle.Point{X: math.Inf(1), Y: math.Inf(1)}
	max = turtle.Point{X: math.Inf(-1), Y: math.Inf(-1)}
	for _, seg := range coords {
		for _, p := range [2]turtle.Point{seg.A, seg.B} {
			min.X = math.Min(min.X, p.X)
			min.Y = math.Min(min.Y, p.Y)
			max.X = math.Max(max.X, p.X)
			max.Y = math.Max(max.Y, p.Y)
		}
	}
	return min, max
}

// Write renders raw turtle segments as an SVG document. depths assigns
// each segment its bracket-nesting level as returned by
// turtle.Interpret; strokes are colored per level so branch generations
// are distinguishable. A nil depths draws everything in the first
// palette color.
//
// Contiguous segments of one color become a single polyline path, so
// typical output stays compact.
func Write(w io.Writer, coords []turtle.Segment, depths []int, opts Options) error {
	o, err := opts.normalize()
	if err != nil {
		return err
	}
	if len(coords) == 0 {
		return ErrNoGeometry
	}

	min, max := bounds(coords)
	tr := viewport(min, max, o)

	bw := bufio.NewWriter(w)
	writeHeader(bw, o)

	depth := func(i int) int {
		if i < len(depths) {
			return depths[i]
		}
		return 0
	}

	// One path per run of same-depth contiguous segments.
	for i := 0; i < len(coords); {
		d := depth(i)
		x, y := tr.Apply(coords[i].A.X, coords[i].A.Y)
		fmt.Fprintf(bw, `<path fill="none" stroke=%q stroke-width="%v" d="M %.3f %.3f`,
			o.stroke(d), o.StrokeWidth, x, y)

		j := i
		for ; j < len(coords); j++ {
			if depth(j) != d || (j > i && coords[j].A != coords[j-1].B) {
				break
			}
			x, y = tr.Apply(coords[j].B.X, coords[j].B.Y)
			fmt.Fprintf(bw, " L %.3f %.3f", x, y)
		}
		fmt.Fprintln(bw, `"/>`)
		i = j
	}

	fmt.Fprintln(bw, "</svg>")
	return bw.Flush()
}

// WritePath renders a smoothed path as an SVG document of cubic Bezier
// commands. Sharp endpoints (KeepEnds) join the first and last curves
// with straight lines.
func WritePath(w io.Writer, path bezier.Path, opts Options) error {
	o, err := opts.normalize()
	if err != nil {
		return err
	}
	if len(path.Curves) == 0 && !path.HasEnds {
		return ErrNoGeometry
	}

	min, max := pathBounds(path)
	tr := viewport(min, max, o)
	xy := func(p turtle.Point) (float64, float64) { return tr.Apply(p.X, p.Y) }

	bw := bufio.NewWriter(w)
	writeHeader(bw, o)

	fmt.Fprintf(bw, `<path fill="none" stroke=%q stroke-width="%v" d="`,
		o.stroke(0), o.StrokeWidth)

	var pen turtle.Point
	hasPen := false
	if path.HasEnds {
		x, y := xy(path.Start)
		fmt.Fprintf(bw, "M %.3f %.3f ", x, y)
		pen, hasPen = path.Start, true
	}
	for _, c := range path.Curves {
		if !hasPen || pen != c.P0 {
			x, y := xy(c.P0)
			// Within a KeepEnds path the gaps are bridged with lines,
			// otherwise each run starts its own subpath.
			cmd := "M"
			if path.HasEnds {
				cmd = "L"
			}
			fmt.Fprintf(bw, "%s %.3f %.3f ", cmd, x, y)
		}
		x1, y1 := xy(c.C1)
		x2, y2 := xy(c.C2)
		x3, y3 := xy(c.P3)
		fmt.Fprintf(bw, "C %.3f %.3f, %.3f %.3f, %.3f %.3f ", x1, y1, x2, y2, x3, y3)
		pen, hasPen = c.P3, true
	}
	if path.HasEnds && pen != path.End {
		x, y := xy(path.End)
		fmt.Fprintf(bw, "L %.3f %.3f", x, y)
	}

	fmt.Fprintln(bw, `"/>`)
	fmt.Fprintln(bw, "</svg>")
	return bw.Flush()
}

// pathBounds covers curve endpoints, control points, and the sharp ends.
func pathBounds(path bezier.Path) (min, max turtle.Point) {
	min = turtle.Point{X: math.Inf(1), Y: math.Inf(1)}
	max = turtle.Point{X: math.Inf(-1), Y: math.Inf(-1)}
	grow := func(p turtle.Point) {
		min.X = math.Min(min.X, p.X)
		min.Y = math.Min(min.Y, p.Y)
		max.X = math.Max(max.X, p.X)
		max.Y = math.Max(max.Y, p.Y)
	}
	for _, c := range path.Curves {
		grow(c.P0)
		grow(c.C1)
		grow(c.C2)
		grow(c.P3)
	}
	if path.HasEnds {
		grow(path.Start)
		grow(path.End)
	}
	return min, max
}

func writeHeader(w io.Writer, o Options) {
	fmt.Fprintf(w, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`,
		o.Width, o.Height, o.Width, o.Height)
	fmt.Fprintln(w)
	fmt.Fprintf(w, `<rect width="%d" height="%d" fill="#%02x%02x%02x"/>`,
		o.Width, o.Height, o.Background.R, o.Background.G, o.Background.B)
	fmt.Fprintln(w)
}
