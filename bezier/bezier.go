package bezier

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lsys/turtle"
)

// CtrlPoint returns the point along the vector p0→p1 at magnitude w:
// p0 + (p1-p0)·w.
func CtrlPoint(p0, p1 turtle.Point, w float64) turtle.Point {
	return p0.Add(p1.Sub(p0).Mul(w))
}

// pascal seeds the binomial lookup; Binomial extends it on demand.
var pascal = [][]int{
	{1},
	{1, 1},
	{1, 2, 1},
	{1, 3, 3, 1},
	{1, 4, 6, 4, 1},
	{1, 5, 10, 10, 5, 1},
	{1, 6, 15, 20, 15, 6, 1},
}

// Binomial returns the binomial coefficient C(n, k) for the nth-order
// expansion, kth term, growing Pascal's triangle as needed.
func Binomial(n, k int) int {
	tri := pascal
	for n >= len(tri) {
		s := len(tri)
		next := make([]int, s+1)
		next[0], next[s] = 1, 1
		for i := 1; i < s; i++ {
			next[i] = tri[s-1][i-1] + tri[s-1][i]
		}
		tri = append(tri, next)
	}

	return tri[n][k]
}

// Bernstein returns the kth Bernstein basis polynomial of order n:
// C(n,k)·(1-t)^(n-k)·t^k.
func Bernstein(n, k int) func(t float64) float64 {
	coeff := float64(Binomial(n, k))

	return func(t float64) float64 {
		return coeff * math.Pow(1-t, float64(n-k)) * math.Pow(t, float64(k))
	}
}

// Curve evaluates the Bezier curve of order len(points)-1 through the
// given control points and returns segs+1 samples, so the polyline
// approximation has exactly segs line segments.
func Curve(points []turtle.Point, segs int) []turtle.Point {
	if len(points) == 0 || segs < 1 {
		return nil
	}

	n := len(points) - 1
	basis := make([]func(float64) float64, len(points))
	for k := range points {
		basis[k] = Bernstein(n, k)
	}

	out := make([]turtle.Point, segs+1)
	for i := 0; i <= segs; i++ {
		t := float64(i) / float64(segs)
		var p turtle.Point
		for k, pt := range points {
			p = p.Add(pt.Mul(basis[k](t)))
		}
		out[i] = p
	}

	return out
}

// circularFit holds the coefficients (highest order first) of a
// 10th-order polynomial fit of FindCircularWeight over angles
// 0.5°..179.5°, precomputed against tol=1e-12, max_iters=500.
var circularFit = [...]float64{
	-2.45143082907626980583458614241573e-24,
	1.58856196152315352138612607918623e-21,
	-5.03264989277462933391916020538014e-19,
	8.57954915199159887348249578203777e-17,
	-1.09982713519619074150585319501519e-14,
	6.42175701661701683377126465867012e-13,
	-1.95012445981222027957307425487916e-10,
	6.98338125134285339870680633234242e-10,
	-1.27018636324842636571531492850617e-05,
	5.58069196465371404519196542326487e-08,
	6.66666581437823202449521886592265e-01,
}

// CircularWeight returns the control-point weight that makes a rounded
// corner approximate a circular arc for the given turn angle in degrees.
// It evaluates the precomputed polynomial fit; use FindCircularWeight for
// the exact bisection result.
func CircularWeight(angle float64) float64 {
	w := 0.0
	for _, c := range circularFit {
		w = w*angle + c
	}

	return w
}

// FindCircularWeight searches for the weight factor w such that the
// corner spanned by a turn of `angle` degrees is filled by a cubic that
// approximates a circle tangent at both entry and exit.
//
// Geometry: for turn angle α the curve must traverse 180-α degrees. The
// apex R sits above the chord QS; the candidate cubic runs Q→S with
// control points w of the way toward R. Bisection minimizes the spread
// of the curve's radial distance to the reference circle.
//
// Returns the weight, the final radial spread, and the iterations used.
// The search stops at opts.Tol or opts.MaxIters, whichever comes first;
// exhausting MaxIters is not an error.
func FindCircularWeight(angle float64, opts *WeightOptions) (w, spread float64, iters int, err error) {
	o := DefaultWeightOptions()
	if opts != nil {
		o = *opts
	}
	if angle <= 0 || angle >= 180 {
		return 0, 0, 0, fmt.Errorf("find circular weight: %v: %w", angle, ErrBadAngle)
	}
	if o.Guess <= 0 || o.Guess >= 1 {
		return 0, 0, 0, fmt.Errorf("find circular weight: guess %v: %w", o.Guess, ErrBadGuess)
	}

	theta := (180 - angle) / 2 * math.Pi / 180 // half the interior angle QRS
	r := o.Radius
	h := r * math.Cos(theta) / math.Tan(theta) // y of the apex R
	kc := -h * math.Tan(theta) * math.Tan(theta)
	xc := h * math.Tan(theta)

	q := turtle.Point{X: -xc, Y: 0}
	s := turtle.Point{X: xc, Y: 0}
	apex := turtle.Point{X: 0, Y: h}
	center := turtle.Point{X: 0, Y: kc}

	guess := o.Guess
	hi, lo := 1.0, 0.0
	for iters = 0; iters < o.MaxIters; iters++ {
		c1 := CtrlPoint(q, apex, guess)
		c2 := CtrlPoint(s, apex, guess)
		curve := Curve([]turtle.Point{q, c1, c2, s}, o.Segs)

		// Radial spread of the candidate curve around the reference circle.
		maxErr, minErr := math.Inf(-1), math.Inf(1)
		for _, p := range curve {
			d := math.Hypot(p.X-center.X, p.Y-center.Y) - r
			maxErr = math.Max(maxErr, d)
			minErr = math.Min(minErr, d)
		}
		spread = math.Abs(maxErr) - math.Abs(minErr)

		if -o.Tol < spread && spread < o.Tol {
			return guess, spread, iters, nil
		}
		if spread > 0 {
			hi = guess
		} else {
			lo = guess
		}
		guess = (hi + lo) / 2
	}

	return guess, spread, iters, nil
}
