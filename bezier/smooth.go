package bezier

import (
	"fmt"

	"github.com/katalvlaran/lsys/turtle"
)

// SmoothPath builds the cubic Bezier smoothing of a turtle path.
//
// Every maximal contiguous run of segments is smoothed independently:
// for each interior vertex v shared by segments s1 and s2, one cubic is
// emitted from mid(s1) to mid(s2) with control points offset toward v by
// the weight factor. opts.Weight == 0 derives the near-circular weight
// from opts.Angle (the turtle's turn angle), so the transition stays
// smooth regardless of turn sharpness.
//
// With opts.KeepEnds the path's raw first and last points are recorded as
// sharp endpoints, otherwise the smoothed path starts and ends at segment
// midpoints.
//
// Runs of fewer than two segments have no interior vertex and contribute
// no curves; when nothing is smoothable the returned Path is empty and
// err is nil.
func SmoothPath(coords []turtle.Segment, opts Options) (Path, error) {
	w := opts.Weight
	switch {
	case w < 0:
		return Path{}, fmt.Errorf("smooth path: weight %v: %w", w, ErrBadWeight)
	case w == 0:
		if opts.Angle <= 0 || opts.Angle >= 180 {
			return Path{}, fmt.Errorf("smooth path: angle %v: %w", opts.Angle, ErrBadAngle)
		}
		w = CircularWeight(opts.Angle)
	}

	var path Path
	for _, run := range turtle.Polylines(coords) {
		// run has len(run)-1 segments; interior vertices exist only when
		// there are at least two of them.
		for i := 1; i+1 < len(run); i++ {
			m0 := run[i-1].Mid(run[i])
			m1 := run[i].Mid(run[i+1])
			path.Curves = append(path.Curves, Cubic{
				P0: m0,
				C1: CtrlPoint(m0, run[i], w),
				C2: CtrlPoint(m1, run[i], w),
				P3: m1,
			})
		}
	}

	if opts.KeepEnds && len(coords) > 0 {
		path.Start = coords[0].A
		path.End = coords[len(coords)-1].B
		path.HasEnds = true
	}

	return path, nil
}

// Sample flattens the path into points: segs line segments per cubic,
// preceded/followed by the sharp endpoints when present.
func (p Path) Sample(segs int) []turtle.Point {
	if len(p.Curves) == 0 && !p.HasEnds {
		return nil
	}

	var out []turtle.Point
	if p.HasEnds {
		out = append(out, p.Start)
	}
	for _, c := range p.Curves {
		out = append(out, Curve([]turtle.Point{c.P0, c.C1, c.C2, c.P3}, segs)...)
	}
	if p.HasEnds {
		out = append(out, p.End)
	}

	return out
}
