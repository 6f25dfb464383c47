// Package grammar defines the rule representation, options, and sentinel
// errors for L-system parsing and expansion.
package grammar

import "errors"

// Sentinel errors for grammar parsing and expansion.
var (
	// ErrRuleSyntax indicates a rule string that cannot be split into
	// complete symbol=replacement pairs.
	ErrRuleSyntax = errors.New("grammar: invalid rule syntax")
	// ErrRuleLHS indicates a rule left-hand side that is not exactly one symbol.
	ErrRuleLHS = errors.New("grammar: rule LHS must be a single symbol")
	// ErrEmptyAxiom indicates an empty axiom string.
	ErrEmptyAxiom = errors.New("grammar: axiom must be non-empty")
	// ErrReservedSymbol indicates the grammar uses the reserved '.' character.
	ErrReservedSymbol = errors.New("grammar: the '.' character is reserved")
	// ErrBadDepth indicates a negative expansion depth.
	ErrBadDepth = errors.New("grammar: depth must be a non-negative integer")
	// ErrStringTooLong indicates the expansion exceeded ExpandOptions.MaxLen.
	ErrStringTooLong = errors.New("grammar: expanded string exceeds maximum length")
)

// Rules is the canonical production-rule mapping: one symbol to its
// replacement string. Symbols absent from the map are terminal.
// Construct via Parse or FromMap; both normalize to upper case with
// whitespace stripped.
type Rules map[rune]string

// DefaultBar is the conventional orientation-bar draw symbol.
const DefaultBar = '|'

// tagSep separates a depth tag from the bar it annotates while an
// expansion is in flight ("2." becomes "2|" in the final string).
const tagSep = '.'

// ExpandOptions tunes Expand.
//
// Fields:
//   - Bar    — the bar draw symbol to depth-tag during expansion
//     (default '|'). Set to 0 to disable tagging entirely.
//   - MaxLen — maximum intermediate string length in bytes; 0 means
//     unlimited, which is the default: callers bound memory by their
//     choice of depth.
type ExpandOptions struct {
	Bar    rune
	MaxLen int
}

// DefaultExpandOptions returns ExpandOptions with Bar='|' and no length cap.
func DefaultExpandOptions() ExpandOptions {
	return ExpandOptions{Bar: DefaultBar}
}
