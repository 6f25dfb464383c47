// Package bezier constructs cubic Bezier smoothings of turtle polylines,
// plus the general Bezier-curve helpers the construction needs.
//
// What:
//
//   - SmoothPath rounds every interior corner of a polyline with a cubic
//     whose symmetric control points sit along the corner's two edges,
//     offset by a weight factor: the curve runs from the midpoint of the
//     incoming segment, around the shared vertex, to the midpoint of the
//     outgoing segment. Contiguous runs are smoothed independently;
//     branch pops and gotos break runs.
//   - CircularWeight returns the weight that makes the rounded corner
//     approximate a circular arc for a given turn angle. It evaluates a
//     precomputed 10th-order polynomial fit to the exact weights found by
//     FindCircularWeight's bisection search, building on the cubic
//     circle approximation analysis at
//     http://spencermortensen.com/articles/bezier-circle/.
//   - Curve evaluates an arbitrary-order Bezier curve through its control
//     points via the Bernstein basis (Binomial / Bernstein).
//
// Weight semantics: larger weight pulls the control points toward the
// vertex, hugging the corner; smaller weight rounds more aggressively.
// Weight 0 in Options selects CircularWeight(Angle).
//
// Degenerate inputs (documented policy): a run of fewer than two
// segments has no interior corner and contributes nothing; an input with
// no smoothable corner yields an empty Path and a nil error.
//
// Complexity: SmoothPath is O(#segments); Sample is O(#curves·segs).
//
// Errors:
//
//   - ErrBadWeight: negative Options.Weight.
//   - ErrBadAngle: derived weight requested for an angle outside (0,180).
//   - ErrBadGuess: FindCircularWeight seeded outside (0,1).
package bezier
