// Package grammar parses L-system production rules and performs the
// string-rewriting expansion that turns an axiom into a turtle
// instruction string.
//
// What:
//
//   - Rules maps a single symbol to its replacement string. Symbols
//     without a rule are terminal and rewrite to themselves.
//   - Parse normalizes the compact string form
//     ("X = X+YF+, Y = -FX-Y"); FromMap normalizes a mapping. Both feed
//     the same canonical representation, so nothing downstream ever
//     branches on the input shape.
//   - Expand applies the rules to the axiom for depth iterations.
//     Context-free: each symbol's replacement depends only on itself.
//
// Depth-tagged bars:
//
//   - The bar symbol '|' is a scaled draw command for the turtle. During
//     expansion every bar produced at iteration i is tagged "<i>|", so the
//     interpreter can shorten it by DS^i instead of DS^depth. Reference
//     grammars such as Weed3 ("F = |[-F]|[+F][-F]F") rely on this to draw
//     trunks longer than twigs. The '.' character is reserved for the
//     tagging pass and may not appear in the grammar.
//
// Complexity:
//
//   - Parse/FromMap: O(len(spec)).
//   - Expand: O(total length of the fully expanded string). Growth is
//     exponential in depth for typical grammars; there is no cap unless
//     ExpandOptions.MaxLen is set.
//
// Errors:
//
//   - ErrRuleSyntax: string form cannot be split into symbol=replacement pairs.
//   - ErrRuleLHS: a left-hand side is not exactly one symbol.
//   - ErrEmptyAxiom: the axiom is empty.
//   - ErrReservedSymbol: the grammar uses the reserved '.' character.
//   - ErrBadDepth: depth is negative.
//   - ErrStringTooLong: expansion exceeded ExpandOptions.MaxLen.
package grammar
