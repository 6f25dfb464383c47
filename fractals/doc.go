// Package fractals bundles ready-to-draw L-system definitions and the
// end-to-end pipeline that turns a definition into geometry.
//
// What lives here:
//
//   - Config — one L-system: axiom, rule DSL, turtle parameters.
//   - Catalog — the built-in presets (Dragon, Hilbert, Gosper, the plant
//     and tree families, and friends), each tuned to a sensible depth.
//   - LoadCatalog — the same shape read from YAML, so collections can be
//     shipped as data files.
//   - The pipeline methods Expand → Geometry → Smooth, which compose the
//     grammar, turtle and bezier packages without the caller having to
//     re-plumb options between them.
//
// Validation:
//
// Config.Validate cross-checks the vocabulary of the axiom and rules
// against the symbols the turtle will accept (draw symbols, turns,
// brackets, digits, bar, goto and the ignore set), so a typo in a rule
// surfaces as ErrUnknownSymbol before any expansion work is done.
//
// Errors: ErrUnknownFractal, ErrUnknownSymbol, ErrNoAxiom, plus anything
// the grammar and turtle packages return.
package fractals
