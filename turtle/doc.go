// Package turtle interprets an expanded L-system string as 2D
// turtle-graphics, producing one line segment per draw symbol together
// with the bracket-nesting depth at which it was drawn.
//
// What:
//
//   - A single linear walk over the string, left to right, no
//     backtracking except via the explicit '['/']' stack.
//   - Draw symbols (Options.Forward, default "F") advance the turtle by
//     Step·DS^depth along the heading and emit a segment.
//   - '+' and '-' turn by ±DA degrees; a leading repeat count multiplies
//     the turn ("4-" turns four times), matching the compact notation of
//     the SquareSpikes and Penrose grammars.
//   - '|' draws like a forward symbol but at the scale of the expansion
//     iteration that produced it (see the grammar package's depth tags).
//   - 'G' moves without drawing. '[' saves (position, heading); ']'
//     restores it. Symbols in Options.Ignore — and any symbol the turtle
//     does not recognize — have no geometric effect.
//
// Determinism:
//
//   - With UNoise == 0 the walk is a pure function of its inputs:
//     repeated calls produce byte-identical coordinates. UNoise > 0
//     perturbs step lengths, headings and turns with normal noise drawn
//     from the caller-supplied *rand.Rand, so a fixed seed still
//     reproduces exactly.
//
// Numerics:
//
//   - Headings accumulate by repeated addition and are not normalized to
//     [0,360); the trigonometry does not care, but downstream angle
//     bucketing should.
//   - Emitted coordinates within 1e-9 of zero are snapped to zero so that
//     closed figures close exactly.
//
// Complexity: O(len(string)) time, O(max nesting) extra space.
//
// Errors:
//
//   - ErrUnbalancedBracket: ']' with no matching '[' (detected at pop time).
//   - ErrBadOptions: non-positive Step or DS, negative Depth or UNoise,
//     or UNoise > 0 without a random source.
package turtle
