// Package bezier defines path types, options, and sentinel errors for
// cubic Bezier smoothing.
package bezier

import (
	"errors"

	"github.com/katalvlaran/lsys/turtle"
)

// Sentinel errors for Bezier construction.
var (
	// ErrBadAngle indicates an angle outside the open interval (0, 180).
	ErrBadAngle = errors.New("bezier: angle must be between 0 and 180, exclusive")
	// ErrBadGuess indicates a bisection seed outside the open interval (0, 1).
	ErrBadGuess = errors.New("bezier: guess must be between 0 and 1, exclusive")
	// ErrBadWeight indicates a negative control-point weight.
	ErrBadWeight = errors.New("bezier: weight must be non-negative")
)

// Cubic is one cubic Bezier span: endpoints P0/P3 and control points C1/C2.
type Cubic struct {
	P0, C1, C2, P3 turtle.Point
}

// Path is the smoothed form of a polyline: an ordered sequence of cubic
// spans, optionally book-ended by the sharp first and last points of the
// original path (KeepEnds).
type Path struct {
	Curves     []Cubic
	Start, End turtle.Point
	HasEnds    bool
}

// Options configures SmoothPath.
//
// Fields:
//   - Angle    — the turtle's turn angle in degrees; used to derive a
//     near-circular weight when Weight == 0.
//   - Weight   — explicit control-point weight in [0, 1]; larger hugs the
//     corner, smaller rounds it. 0 selects CircularWeight(Angle).
//   - KeepEnds — keep the very first and last points of the path sharp,
//     so silhouettes align predictably across depths or animation frames.
type Options struct {
	Angle    float64
	Weight   float64
	KeepEnds bool
}

// WeightOptions tunes FindCircularWeight's bisection search.
//
// Fields mirror the reference procedure: initial Guess in (0,1), absolute
// error Tol, iteration cap MaxIters, reference circle Radius (larger is
// more precise since Tol is absolute), and Segs sample points per curve.
type WeightOptions struct {
	Guess    float64
	Tol      float64
	MaxIters int
	Radius   float64
	Segs     int
}

// DefaultWeightOptions returns the reference search configuration.
func DefaultWeightOptions() WeightOptions {
	return WeightOptions{
		Guess:    0.5,
		Tol:      1e-9,
		MaxIters: 50,
		Radius:   10,
		Segs:     100,
	}
}
