package grammar

import (
	"fmt"
	"strings"
)

// assignSeps are the accepted symbol=replacement separators, in the order
// they are canonicalized. "-->" must precede "->" so the longer form is
// not mangled by the shorter one.
var assignSeps = []string{":", "-->", "->", "=>"}

// ruleDivs separate rules from each other in the string form.
var ruleDivs = []string{";"}

// Parse normalizes the compact rule string form into Rules.
//
// The format follows the syntax conventions seen in "Algorithmic Botany"
// and "The Computational Beauty of Nature": each rule is
// <symbol><sep><replacement> with sep one of ":", "=", "-->", "->", "=>",
// and rules are separated by ";" or ",". Whitespace is stripped and all
// symbols are upper-cased.
//
// Errors: ErrRuleSyntax if no separator is present or a pair is
// incomplete; ErrRuleLHS if a left-hand side is not exactly one symbol.
func Parse(spec string) (Rules, error) {
	s := strings.ToUpper(strings.ReplaceAll(spec, " ", ""))

	found := strings.Contains(s, "=")
	for _, sep := range assignSeps {
		if strings.Contains(s, sep) {
			s = strings.ReplaceAll(s, sep, "=")
			found = true
		}
	}
	if !found {
		return nil, fmt.Errorf("parse %q: no assignment separator: %w", spec, ErrRuleSyntax)
	}
	for _, div := range ruleDivs {
		s = strings.ReplaceAll(s, div, ",")
	}

	rules := make(Rules)
	for _, pair := range strings.Split(s, ",") {
		lhs, rhs, ok := strings.Cut(pair, "=")
		if !ok || strings.Contains(rhs, "=") {
			return nil, fmt.Errorf("parse %q: incomplete pair %q: %w", spec, pair, ErrRuleSyntax)
		}
		sym := []rune(lhs)
		if len(sym) != 1 {
			return nil, fmt.Errorf("parse %q: LHS %q: %w", spec, lhs, ErrRuleLHS)
		}
		rules[sym[0]] = rhs
	}

	return rules, nil
}

// FromMap normalizes a symbol→replacement mapping into Rules, stripping
// whitespace and upper-casing both sides. This is the mapping half of the
// dual string/mapping input contract; Parse handles the string half.
//
// Errors: ErrRuleLHS if a key is not exactly one symbol after trimming.
func FromMap(m map[string]string) (Rules, error) {
	rules := make(Rules, len(m))
	for k, v := range m {
		lhs := []rune(strings.ToUpper(strings.TrimSpace(k)))
		if len(lhs) != 1 {
			return nil, fmt.Errorf("from map: LHS %q: %w", k, ErrRuleLHS)
		}
		rules[lhs[0]] = strings.ToUpper(strings.TrimSpace(v))
	}

	return rules, nil
}

// Vocab collects every symbol that can occur in an expansion of axiom
// under rules: the axiom's symbols, every rule LHS, and every symbol of
// every replacement. Spaces are not part of the vocabulary.
func Vocab(axiom string, rules Rules) map[rune]struct{} {
	vocab := make(map[rune]struct{})
	add := func(s string) {
		for _, r := range s {
			if r != ' ' {
				vocab[r] = struct{}{}
			}
		}
	}
	add(axiom)
	for lhs, rhs := range rules {
		vocab[lhs] = struct{}{}
		add(rhs)
	}

	return vocab
}
