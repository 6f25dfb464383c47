// Package turtle defines geometry types, options, and sentinel errors
// for the turtle interpreter.
package turtle

import (
	"errors"
	"math/rand"
)

// Sentinel errors for turtle interpretation.
var (
	// ErrUnbalancedBracket indicates a pop (']') on an empty stack.
	ErrUnbalancedBracket = errors.New("turtle: unbalanced brackets: ']' without matching '['")
	// ErrBadOptions indicates an invalid numeric or symbol configuration.
	ErrBadOptions = errors.New("turtle: invalid options")
)

// Point is a 2D point or vector.
type Point struct {
	X, Y float64
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point { return Point{X: p.X + q.X, Y: p.Y + q.Y} }

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point { return Point{X: p.X - q.X, Y: p.Y - q.Y} }

// Mul returns the point scaled by a scalar.
func (p Point) Mul(s float64) Point { return Point{X: p.X * s, Y: p.Y * s} }

// Mid returns the midpoint of p and q.
func (p Point) Mid(q Point) Point {
	return Point{X: (p.X + q.X) / 2, Y: (p.Y + q.Y) / 2}
}

// Segment is a directed line segment from A to B.
type Segment struct {
	A, B Point
}

// Options configures turtle interpretation.
//
// Fields:
//   - Depth   — the expansion depth of the input string; forward segments
//     are scaled by DS^Depth. Irrelevant when DS == 1.
//   - A0      — initial heading in degrees (90 points straight up).
//   - DA      — turn angle in degrees per turn symbol.
//   - Step    — base step length per draw symbol; must be > 0.
//   - DS      — per-depth step scale factor; must be > 0. With DS == 1
//     every move covers exactly Step units.
//   - Forward — the set of draw symbols (default "F"; Dragon45 uses "LRF").
//   - Bar, Goto, Left, Right — command symbols; the zero rune selects the
//     conventional default ('|', 'G', '-', '+').
//   - Ignore  — symbols skipped without geometric effect.
//   - UNoise  — angular/step noise amplitude; 0 means fully deterministic.
//   - Rand    — random source for UNoise; required when UNoise > 0.
type Options struct {
	Depth   int
	A0      float64
	DA      float64
	Step    float64
	DS      float64
	Forward string
	Bar     rune
	Goto    rune
	Left    rune
	Right   rune
	Ignore  string
	UNoise  float64
	Rand    *rand.Rand
}

// DefaultOptions returns Options drawing unit steps with 'F', turning by
// ±DA degrees on '+'/'-', starting heading 90° (up), no noise.
func DefaultOptions() Options {
	return Options{
		A0:      90,
		Step:    1,
		DS:      1,
		Forward: "F",
		Bar:     '|',
		Goto:    'G',
		Left:    '-',
		Right:   '+',
	}
}
