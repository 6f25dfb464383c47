// Package fractals defines the Config type, its normalization, and
// sentinel errors.
package fractals

import (
	"errors"
	"strings"
)

// Sentinel errors for preset lookup and vocabulary validation.
var (
	// ErrUnknownFractal indicates a Get on a name absent from the catalog.
	ErrUnknownFractal = errors.New("fractals: unknown fractal name")
	// ErrUnknownSymbol indicates a vocabulary symbol the turtle cannot
	// interpret and that is not listed in Ignore.
	ErrUnknownSymbol = errors.New("fractals: symbol not covered by commands, rules, or ignore")
	// ErrNoAxiom indicates a Config without an axiom.
	ErrNoAxiom = errors.New("fractals: config must set an axiom")
)

// Config is a complete L-system definition: the grammar (Axiom, Rule)
// and the turtle parameters used to draw its expansion.
//
// The yaml tags match the catalog file format; see LoadCatalog.
type Config struct {
	// Axiom is the generation-zero string.
	Axiom string `yaml:"axiom"`
	// Rule holds the productions in the rule DSL, e.g. "X=X+YF+, Y=-FX-Y".
	Rule string `yaml:"rule"`
	// Ignore lists symbols the turtle skips (common for nonterminals).
	Ignore string `yaml:"ignore"`
	// Forward lists the draw symbols; empty means "F".
	Forward string `yaml:"forward"`
	// Depth is the number of rewrite iterations.
	Depth int `yaml:"depth"`
	// A0 is the initial heading in degrees (0 = east, 90 = up).
	A0 float64 `yaml:"a0"`
	// DA is the turn angle in degrees.
	DA float64 `yaml:"da"`
	// Step is the base segment length; 0 means 1.
	Step float64 `yaml:"step"`
	// DS is the per-depth step scale; 0 means 1.
	DS float64 `yaml:"ds"`
	// UNoise is the noise amplitude; 0 draws deterministically.
	UNoise float64 `yaml:"unoise"`
}

// Normalize uppercases the symbolic fields, strips spaces from the
// axiom, and fills the zero-value defaults (Step 1, DS 1, Forward "F").
// A0 is left as-is: 0 is a meaningful heading.
func (c Config) Normalize() Config {
	c.Axiom = strings.ToUpper(strings.ReplaceAll(c.Axiom, " ", ""))
	c.Forward = strings.ToUpper(c.Forward)
	c.Ignore = strings.ToUpper(c.Ignore)
	if c.Forward == "" {
		c.Forward = "F"
	}
	if c.Step == 0 {
		c.Step = 1
	}
	if c.DS == 0 {
		c.DS = 1
	}
	return c
}
