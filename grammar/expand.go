package grammar

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/lsys"
)

// Expand rewrites axiom under rules for depth iterations and returns the
// expanded instruction string.
//
// Algorithm:
//  1. current = axiom.
//  2. Repeat depth times: build next by replacing every symbol c of
//     current with rules[c] (or c itself when no rule exists) and
//     concatenating in order.
//  3. After each iteration i, every untagged bar is rewritten to "<i>."
//     so the turtle can recover the iteration that produced it; the final
//     string restores '.' to the bar symbol ("2." → "2|").
//
// Depth 0 returns the axiom unchanged apart from bar tagging ("|" → "0|").
// Expansion is deterministic and purely a function of (axiom, rules,
// depth, opts).
//
// Errors: ErrEmptyAxiom, ErrBadDepth, ErrReservedSymbol, and
// ErrStringTooLong when opts.MaxLen is exceeded (the error message names
// the deepest depth that fits).
//
// Complexity: O(total length of the fully expanded string); each symbol
// is visited once per iteration on a monotonically growing string.
func Expand(axiom string, rules Rules, depth int, opts *ExpandOptions) (string, error) {
	if axiom == "" {
		return "", ErrEmptyAxiom
	}
	if depth < 0 {
		return "", fmt.Errorf("expand: depth %d: %w", depth, ErrBadDepth)
	}

	o := DefaultExpandOptions()
	if opts != nil {
		o = *opts
	}
	if err := checkReserved(axiom, rules); err != nil {
		return "", err
	}

	bar := ""
	if o.Bar != 0 {
		bar = string(o.Bar)
	}

	cur := axiom
	var b strings.Builder
	for i := 0; i <= depth; i++ {
		if o.MaxLen > 0 && len(cur) > o.MaxLen {
			lsys.Logger().Warn("expansion aborted by length cap",
				"len", len(cur), "maxLen", o.MaxLen, "depth", i)

			return "", fmt.Errorf("expand: maximum depth is %d: %w", i, ErrStringTooLong)
		}
		if i > 0 {
			b.Reset()
			b.Grow(len(cur))
			for _, c := range cur {
				if rhs, ok := rules[c]; ok {
					b.WriteString(rhs)
				} else {
					b.WriteRune(c)
				}
			}
			cur = b.String()
		}
		// Tag the bars this iteration produced; already-tagged bars are
		// protected behind the reserved '.' until the final restore.
		if bar != "" {
			cur = strings.ReplaceAll(cur, bar, strconv.Itoa(i)+string(tagSep))
		}
	}
	if bar != "" {
		cur = strings.ReplaceAll(cur, string(tagSep), bar)
	}

	return cur, nil
}

// checkReserved rejects grammars that use the '.' character, which the
// bar-tagging pass needs for itself.
func checkReserved(axiom string, rules Rules) error {
	if strings.ContainsRune(axiom, tagSep) {
		return fmt.Errorf("expand: axiom: %w", ErrReservedSymbol)
	}
	for lhs, rhs := range rules {
		if lhs == tagSep || strings.ContainsRune(rhs, tagSep) {
			return fmt.Errorf("expand: rule %q: %w", string(lhs), ErrReservedSymbol)
		}
	}

	return nil
}
