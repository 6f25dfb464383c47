package fractals

import (
	"fmt"
	"sort"
)

// Catalog holds the built-in fractal presets, keyed by name. Entries are
// stored raw; Get normalizes on the way out and returns copies, so
// callers may tweak fields (Depth is the usual one) without affecting
// the catalog.
var Catalog = map[string]Config{
	"Dragon": {
		Axiom:  "FX",
		Rule:   "X = X+YF+, Y = -FX-Y",
		Depth:  12,
		A0:     90,
		DA:     90,
		Ignore: "XY",
	},
	"Dragon45": {
		Axiom:   "L",
		Rule:    "L = L+F+R+F+L-F-R, R = L+F+R-F-L-F-R",
		Depth:   5,
		A0:      0,
		DA:      45,
		Forward: "LRF",
	},
	"Terdragon": {
		Axiom: "F",
		Rule:  "F = F-F+F",
		Depth: 7,
		A0:    90,
		DA:    120,
	},
	"Hexdragon": {
		Axiom:   "F",
		Rule:    "F = F+L+F-L-F, L = L",
		Depth:   6,
		A0:      180,
		DA:      60,
		Forward: "FL",
	},
	"Hilbert": {
		Axiom:  "+RF-LFL-FR+",
		Rule:   "L = +RF-LFL-FR+, R = -LF+RFR+FL-",
		Depth:  5,
		A0:     90,
		DA:     90,
		Ignore: "LR",
	},
	"Gosper": {
		Axiom:   "A",
		Rule:    "A=A-B--B+A++AA+B-, B=+A-BB--B-A++A+B",
		Depth:   2,
		A0:      90,
		DA:      60,
		Forward: "AB",
	},
	"QuadKochIsland": {
		Axiom: "F-F-F-F",
		Rule:  "F = F-F+F+FF-F-F+F",
		Depth: 3,
		A0:    90,
		DA:    90,
		DS:    0.22,
	},
	"SquareSpikes": {
		Axiom: "F18-F18-F18-F",
		Rule:  "F = F17-F34+F17-F",
		Depth: 4,
		A0:    90,
		DA:    5,
		DS:    0.45,
	},
	"Serpinski_Gasket": {
		Axiom: "F--F--F",
		Rule:  "F=F--F--F--GG, G=GG",
		Depth: 3,
		A0:    0,
		DA:    60,
	},
	"Serpinski_Curve": {
		Axiom:  "XF",
		Rule:   "X=YF+XF+Y, Y=XF-YF-X",
		Depth:  6,
		A0:     0,
		DA:     60,
		DS:     0.5,
		Ignore: "XY",
	},
	"Crosses": {
		Axiom:  "FX",
		Rule:   "X=FX+FX+FXFY-FY-, Y=+FX+FXFY-FY-FY, F=V",
		Depth:  5,
		A0:     0,
		DA:     90,
		DS:     0.5,
		Ignore: "XYV",
	},
	"Penrose_Snowflake": {
		Axiom: "F4-F4-F4-F4-F",
		Rule:  "F=F4-F4-F10-F++F4-F",
		Depth: 3,
		A0:    0,
		DA:    18,
		DS:    0.5,
	},
	"Putmans_Tattoo": {
		Axiom:  "-FXF--FXF--FXF",
		Rule:   "X=[-F+FXF+F]+F-FXF-F+, F=FF",
		Depth:  4,
		A0:     0,
		DA:     60,
		DS:     0.5,
		Ignore: "X",
	},

	"Plant_a": {
		Axiom:  "F",
		Rule:   "F = F[+F]F[-F]F",
		Depth:  4,
		A0:     90,
		DA:     25.7,
		UNoise: 0.3,
	},
	"Plant_b": {
		Axiom:  "F",
		Rule:   "F = F[+F]F[-F][F]",
		Depth:  4,
		A0:     90,
		DA:     20,
		UNoise: 0.4,
	},
	"Plant_c": {
		Axiom:  "F",
		Rule:   "F = FF-[-F+F+F]+[+F-F-F]",
		Depth:  4,
		A0:     90,
		DA:     22.5,
		UNoise: 0.2,
	},
	"Plant_d": {
		Axiom:  "F[+X]F[-X]+X",
		Rule:   "X = F[+X]F[-X]+X, F = FF",
		Depth:  7,
		A0:     90,
		DA:     20,
		UNoise: 0.3,
		Ignore: "X",
	},
	"Plant_e": {
		Axiom:  "F[+X][-X]FX",
		Rule:   "X = F[+X][-X]FX, F = FF",
		Depth:  8,
		A0:     90,
		DA:     30,
		Ignore: "X",
	},
	"Plant_f": {
		Axiom:  "F-[[X]+X]+F[+FX]-X",
		Rule:   "X = F-[[X]+X]+F[+FX]-X, F = FF",
		Depth:  6,
		A0:     70,
		DA:     25,
		DS:     0.95,
		UNoise: 0.4,
		Ignore: "X",
	},

	"Weed1": {
		Axiom: "F",
		Rule:  "F=F[-F]F[+F]F",
		Depth: 4,
		A0:    90,
		DA:    25,
		DS:    1.0 / 3,
	},
	"Weed2": {
		Axiom: "F",
		Rule:  "F=|[-F]|[+F]F",
		Depth: 4,
		A0:    90,
		DA:    25,
		DS:    0.4,
	},
	"Weed3": {
		Axiom: "F",
		Rule:  "F = |[-F]|[+F][-F]F",
		Depth: 4,
		A0:    90,
		DA:    20,
		DS:    1.0 / 3,
	},
	"Bush1": {
		Axiom: "F",
		Rule:  "F=FF+[+F-F-F]-[-F+F+F]",
		Depth: 3,
		A0:    90,
		DA:    25,
		DS:    0.5,
	},
	"Bush2": {
		Axiom: "F",
		Rule:  "F=|[+F]|[-F]+F",
		Depth: 5,
		A0:    90,
		DA:    20,
		DS:    0.5,
	},
	"Tree1": {
		Axiom: "F",
		Rule:  "F = ||[3-F][3+F]|[--F][++F]|F",
		Depth: 5,
		A0:    90,
		DA:    20,
		DS:    0.5,
	},
	"Tree2": {
		Axiom: "F",
		Rule:  "F = |[5+F][7-F]-|[4+F][6-F]-|[3+F][5-F]-|F",
		Depth: 4,
		A0:    82,
		DA:    8,
		DS:    0.65,
	},
	"Tree3": {
		Axiom: "F",
		Rule:  "F=|[--F][+F]-F",
		Depth: 7,
		A0:    90,
		DA:    20,
		DS:    0.7,
	},
	"Twig": {
		Axiom: "F",
		Rule:  "F=|[-F][+F]",
		Depth: 7,
		A0:    90,
		DA:    20,
		DS:    0.5,
	},
	"Two_Ys": {
		Axiom: "[F]4-F",
		Rule:  "F=|[+F][-F]",
		Depth: 5,
		A0:    90,
		DA:    45,
		DS:    0.65,
	},
	"Big_H": {
		Axiom: "[F]--F",
		Rule:  "F=|[+F][-F]",
		Depth: 5,
		A0:    90,
		DA:    90,
		DS:    0.65,
	},
}

// Get returns the named preset, normalized. The copy is the caller's to
// mutate.
func Get(name string) (Config, error) {
	c, ok := Catalog[name]
	if !ok {
		return Config{}, fmt.Errorf("get %q: %w", name, ErrUnknownFractal)
	}
	return c.Normalize(), nil
}

// Names returns the catalog keys in sorted order.
func Names() []string {
	names := make([]string, 0, len(Catalog))
	for name := range Catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
