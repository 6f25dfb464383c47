// Package lsys generates and renders Lindenmayer-system (L-system)
// fractals: grammar-driven string rewriting, turtle-graphics geometry,
// and cubic-Bezier corner smoothing.
//
// 🚀 What is lsys?
//
//	A small, deterministic library that turns a short grammar
//	(axiom + production rules) into plot-ready 2D geometry:
//		• grammar:   parse & normalize rules, expand the axiom N times
//		• turtle:    walk the expanded string into line segments with
//		             bracket-nesting depth tags
//		• bezier:    round polyline corners with near-circular cubic curves
//		• fractals:  a catalog of classic presets (Dragon, Hilbert, plants,
//		             Gosper, Penrose…) plus a YAML loader for custom sets
//		• svgrender: SVG and PNG output for the resulting geometry
//
// ✨ Why choose lsys?
//
//   - Pure functions – same inputs, byte-identical outputs (seedable noise
//     for organic variation when you want it)
//   - Rock-solid errors – sentinel errors everywhere, branch with errors.Is
//   - No hidden state – options in, geometry out
//
// Quick ASCII example (the Dragon curve grammar):
//
//	axiom "FX", rules "X = X+YF+, Y = -FX-Y"
//
//	depth 0 → FX
//	depth 1 → FX+YF+
//	depth 2 → FX+YF++-FX-YF+
//
// Dive into each package's doc.go for contracts, complexity notes and
// runnable examples.
//
//	go get github.com/katalvlaran/lsys
package lsys
