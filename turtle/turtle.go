package turtle

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/lsys"
)

// snapTol is the absolute tolerance under which an emitted coordinate is
// treated as exactly zero, so that closed figures close exactly.
const snapTol = 1e-9

// state is a saved turtle configuration for the '['/']' stack.
type state struct {
	x, y, a float64
}

// Interpret — expanded string → line segments + nesting depths.
//
// Walks s once, left to right, maintaining (position, heading) and an
// explicit stack. Every draw symbol emits one Segment into coords and the
// current stack depth (len(stack)) into depths; the two slices are always
// parallel. Initial state: position (0,0), heading opts.A0, empty stack.
//
// Segment length per draw symbol: Step·DS^d, where d is opts.Depth for
// Forward symbols and the expansion tag carried by the preceding digits
// for Bar symbols (an untagged bar draws at full Step). Digits preceding
// a turn symbol multiply the turn instead.
//
// Errors: ErrBadOptions for invalid configuration; ErrUnbalancedBracket
// for a ']' on an empty stack, detected at pop time — a well-formed
// grammar ends the walk with an empty stack, but balance is not
// retroactively validated.
//
// Complexity: O(len(s)) time, O(max nesting) extra memory.
func Interpret(s string, opts Options) (coords []Segment, depths []int, err error) {
	o, err := normalize(opts)
	if err != nil {
		return nil, nil, err
	}

	a := radians(o.A0)
	da := radians(o.DA)

	var (
		x, y  float64
		stack []state
		num   int
	)
	for pos, c := range s {
		if c >= '0' && c <= '9' {
			num = num*10 + int(c-'0')
			continue
		}

		switch {
		case strings.ContainsRune(o.Forward, c) || c == o.Bar || c == o.Goto:
			// Bars carry the expansion iteration that produced them; forward
			// symbols are scaled by the depth of the whole string.
			d := o.Depth
			if c == o.Bar {
				d = num
			}
			step := o.Step * math.Pow(o.DS, float64(d)) * (1 + noise(o))
			nx := x + math.Cos(a+noise(o))*step
			ny := y + math.Sin(a+noise(o))*step
			if c != o.Goto {
				coords = append(coords, Segment{
					A: Point{X: snap(x), Y: snap(y)},
					B: Point{X: snap(nx), Y: snap(ny)},
				})
				depths = append(depths, len(stack))
			}
			x, y = nx, ny

		case c == o.Right:
			a -= da * float64(repeat(num)) * (1 + noise(o))

		case c == o.Left:
			a += da * float64(repeat(num)) * (1 + noise(o))

		case c == '[':
			stack = append(stack, state{x: x, y: y, a: a + noise(o)*radians(5)})

		case c == ']':
			if len(stack) == 0 {
				return nil, nil, fmt.Errorf("interpret: pop at byte %d: %w", pos, ErrUnbalancedBracket)
			}
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			x, y, a = top.x, top.y, top.a

		case strings.ContainsRune(o.Ignore, c):
			// Present for grammar bookkeeping only.

		default:
			lsys.Logger().Debug("turtle: skipping symbol with no geometric effect",
				"symbol", string(c), "pos", pos)
		}
		num = 0
	}

	return coords, depths, nil
}

// Polylines groups coords into maximal contiguous runs, splitting
// wherever one segment does not start where the previous one ended
// (after a pop or a goto). Each run has at least two points.
func Polylines(coords []Segment) [][]Point {
	var runs [][]Point
	var run []Point
	for _, seg := range coords {
		if len(run) == 0 || run[len(run)-1] != seg.A {
			if len(run) > 0 {
				runs = append(runs, run)
			}
			run = []Point{seg.A}
		}
		run = append(run, seg.B)
	}
	if len(run) > 0 {
		runs = append(runs, run)
	}

	return runs
}

// normalize fills zero-valued symbol fields with the conventional
// defaults and validates the numeric configuration.
func normalize(o Options) (Options, error) {
	if o.Bar == 0 {
		o.Bar = '|'
	}
	if o.Goto == 0 {
		o.Goto = 'G'
	}
	if o.Left == 0 {
		o.Left = '-'
	}
	if o.Right == 0 {
		o.Right = '+'
	}
	if o.Forward == "" {
		o.Forward = "F"
	}

	switch {
	case o.Step <= 0:
		return o, fmt.Errorf("interpret: Step %v: %w", o.Step, ErrBadOptions)
	case o.DS <= 0:
		return o, fmt.Errorf("interpret: DS %v: %w", o.DS, ErrBadOptions)
	case o.Depth < 0:
		return o, fmt.Errorf("interpret: Depth %d: %w", o.Depth, ErrBadOptions)
	case o.UNoise < 0:
		return o, fmt.Errorf("interpret: UNoise %v: %w", o.UNoise, ErrBadOptions)
	case o.UNoise > 0 && o.Rand == nil:
		return o, fmt.Errorf("interpret: UNoise without Rand: %w", ErrBadOptions)
	}

	return o, nil
}

// noise draws one normal perturbation scaled by the noise amplitude.
// Zero amplitude keeps the walk fully deterministic.
func noise(o Options) float64 {
	if o.UNoise == 0 {
		return 0
	}

	return o.UNoise * o.Rand.NormFloat64() * 0.5
}

// repeat interprets an accumulated digit prefix as a turn multiplier;
// no prefix means a single turn.
func repeat(num int) int {
	if num == 0 {
		return 1
	}

	return num
}

func radians(deg float64) float64 { return deg * math.Pi / 180 }

func snap(v float64) float64 {
	if math.Abs(v) <= snapTol {
		return 0
	}

	return v
}
