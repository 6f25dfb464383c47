package fractals_test

import (
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lsys/fractals"
)

// Hand-checked expansions of catalog presets at depth 2. Digit prefixes
// before '|' record the iteration that emitted the bar.
var depthTwo = map[string]string{
	"Dragon":    "FX+YF++-FX-YF+",
	"Terdragon": "F-F+F-F-F+F+F-F+F",
	"Hexdragon": "F+L+F-L-F+L+F+L+F-L-F-L-F+L+F-L-F",
	"Gosper": "A-B--B+A++AA+B--+A-BB--B-A++A+B--+A-BB--B-A++A+B+A-B--B+A++A" +
		"A+B-++A-B--B+A++AA+B-A-B--B+A++AA+B-++A-BB--B-A++A+B-",
	"Serpinski_Curve": "XF-YF-XF+YF+XF+YF+XF-YF-XF",
	"Bush2":           "1|[+2|[+F]2|[-F]+F]1|[-2|[+F]2|[-F]+F]+2|[+F]2|[-F]+F",
	"Tree3":           "1|[--2|[--F][+F]-F][+2|[--F][+F]-F]-2|[--F][+F]-F",
	"Twig":            "1|[-2|[-F][+F]][+2|[-F][+F]]",
	"Two_Ys":          "[1|[+2|[+F][-F]][-2|[+F][-F]]]4-1|[+2|[+F][-F]][-2|[+F][-F]]",
	"Weed2":           "1|[-2|[-F]2|[+F]F]1|[+2|[-F]2|[+F]F]2|[-F]2|[+F]F",
	"Weed3": "1|[-2|[-F]2|[+F][-F]F]1|[+2|[-F]2|[+F][-F]F][-2|[-F]2|[+F][-F" +
		"]F]2|[-F]2|[+F][-F]F",
}

// TestCatalog_DepthTwoExpansions pins every fixture above against the
// live presets.
func TestCatalog_DepthTwoExpansions(t *testing.T) {
	for name, want := range depthTwo {
		c, err := fractals.Get(name)
		require.NoErrorf(t, err, "preset %q", name)

		c.Depth = 2
		got, err := c.Expand()
		require.NoErrorf(t, err, "preset %q", name)
		assert.Equalf(t, want, got, "preset %q", name)
	}
}

// TestCatalog_AllValid: every shipped preset must survive its own
// vocabulary check.
func TestCatalog_AllValid(t *testing.T) {
	for _, name := range fractals.Names() {
		c, err := fractals.Get(name)
		require.NoError(t, err)
		assert.NoErrorf(t, c.Validate(), "preset %q", name)
	}
}

// TestGet: normalization of returned copies and the unknown-name error.
func TestGet(t *testing.T) {
	c, err := fractals.Get("Dragon")
	require.NoError(t, err)
	assert.Equal(t, "F", c.Forward)
	assert.Equal(t, 1.0, c.Step)
	assert.Equal(t, 1.0, c.DS)
	assert.Equal(t, 12, c.Depth)

	// Mutating the copy must not touch the catalog.
	c.Depth = 1
	again, err := fractals.Get("Dragon")
	require.NoError(t, err)
	assert.Equal(t, 12, again.Depth)

	_, err = fractals.Get("NoSuchFractal")
	assert.ErrorIs(t, err, fractals.ErrUnknownFractal)
}

// TestNames: sorted and complete.
func TestNames(t *testing.T) {
	names := fractals.Names()
	assert.Len(t, names, len(fractals.Catalog))
	assert.True(t, sort.StringsAreSorted(names))
	assert.Contains(t, names, "Dragon")
	assert.Contains(t, names, "Hilbert")
}

// TestConfig_Normalize covers case folding, space stripping, and the
// zero-value defaults.
func TestConfig_Normalize(t *testing.T) {
	c := fractals.Config{
		Axiom:   " f x ",
		Forward: "ab",
		Ignore:  "xy",
	}.Normalize()

	assert.Equal(t, "FX", c.Axiom)
	assert.Equal(t, "AB", c.Forward)
	assert.Equal(t, "XY", c.Ignore)
	assert.Equal(t, 1.0, c.Step)
	assert.Equal(t, 1.0, c.DS)
	assert.Equal(t, 0.0, c.A0) // zero heading stays zero

	d := fractals.Config{Axiom: "F"}.Normalize()
	assert.Equal(t, "F", d.Forward)
}

// TestConfig_Validate flags symbols the turtle cannot interpret.
func TestConfig_Validate(t *testing.T) {
	bad := fractals.Config{Axiom: "FQ", Rule: "F=F+F"}
	err := bad.Validate()
	assert.ErrorIs(t, err, fractals.ErrUnknownSymbol)
	assert.True(t, strings.Contains(err.Error(), "Q"))

	// The same symbol is fine once ignored.
	bad.Ignore = "Q"
	assert.NoError(t, bad.Validate())

	// Or once it draws.
	bad.Ignore = ""
	bad.Forward = "FQ"
	assert.NoError(t, bad.Validate())

	assert.ErrorIs(t, fractals.Config{Rule: "F=F"}.Validate(), fractals.ErrNoAxiom)
}
