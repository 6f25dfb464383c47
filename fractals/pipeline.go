package fractals

import (
	"fmt"
	"math/rand"
	"unicode"

	"github.com/katalvlaran/lsys/bezier"
	"github.com/katalvlaran/lsys/grammar"
	"github.com/katalvlaran/lsys/turtle"
)

// Expand rewrites the config's axiom to its configured depth and returns
// the command string.
func (c Config) Expand() (string, error) {
	c = c.Normalize()
	if c.Axiom == "" {
		return "", ErrNoAxiom
	}
	rules, err := grammar.Parse(c.Rule)
	if err != nil {
		return "", err
	}
	return grammar.Expand(c.Axiom, rules, c.Depth, nil)
}

// Geometry expands the config and walks the result, returning the drawn
// segments and their bracket-nesting depths. rng feeds the noise terms
// and is required only when UNoise > 0; pass nil for deterministic
// configs.
func (c Config) Geometry(rng *rand.Rand) ([]turtle.Segment, []int, error) {
	c = c.Normalize()
	s, err := c.Expand()
	if err != nil {
		return nil, nil, err
	}
	return turtle.Interpret(s, turtle.Options{
		Depth:   c.Depth,
		A0:      c.A0,
		DA:      c.DA,
		Step:    c.Step,
		DS:      c.DS,
		Forward: c.Forward,
		Ignore:  c.Ignore,
		UNoise:  c.UNoise,
		Rand:    rng,
	})
}

// Smooth runs the full pipeline and rounds the corners of the resulting
// path. A zero opts.Weight with a zero opts.Angle borrows the config's
// turn angle, so presets smooth sensibly out of the box.
func (c Config) Smooth(rng *rand.Rand, opts bezier.Options) (bezier.Path, error) {
	coords, _, err := c.Geometry(rng)
	if err != nil {
		return bezier.Path{}, err
	}
	if opts.Weight == 0 && opts.Angle == 0 {
		opts.Angle = c.DA
	}
	return bezier.SmoothPath(coords, opts)
}

// Validate checks that every symbol reachable from the axiom through the
// rules means something to the turtle: a production LHS, a draw symbol,
// a turn, a bracket, a digit prefix, the bar or goto command, or a
// member of the ignore set. The first stray symbol is reported with
// ErrUnknownSymbol.
func (c Config) Validate() error {
	c = c.Normalize()
	if c.Axiom == "" {
		return ErrNoAxiom
	}
	rules, err := grammar.Parse(c.Rule)
	if err != nil {
		return err
	}

	known := func(r rune) bool {
		if _, ok := rules[r]; ok {
			return true
		}
		switch r {
		case '|', 'G', '-', '+', '[', ']':
			return true
		}
		if unicode.IsDigit(r) {
			return true
		}
		for _, f := range c.Forward {
			if r == f {
				return true
			}
		}
		for _, i := range c.Ignore {
			if r == i {
				return true
			}
		}
		return false
	}

	for r := range grammar.Vocab(c.Axiom, rules) {
		if !known(r) {
			return fmt.Errorf("validate: %q: %w", r, ErrUnknownSymbol)
		}
	}
	return nil
}
