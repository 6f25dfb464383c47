package grammar_test

import (
	"fmt"

	"github.com/katalvlaran/lsys/grammar"
)

// ExampleExpand demonstrates the Dragon-curve rewriting.
func ExampleExpand() {
	rules, err := grammar.Parse("X = X+YF+, Y = -FX-Y")
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for depth := 0; depth <= 3; depth++ {
		s, _ := grammar.Expand("FX", rules, depth, nil)
		fmt.Println(s)
	}
	// Output:
	// FX
	// FX+YF+
	// FX+YF++-FX-YF+
	// FX+YF++-FX-YF++-FX+YF+--FX-YF+
}

// ExampleParse shows how mixed separators collapse to one canonical form.
func ExampleParse() {
	rules, _ := grammar.Parse("L -> +RF-LFL-FR+; R => -LF+RFR+FL-")
	fmt.Println(rules['L'])
	fmt.Println(rules['R'])
	// Output:
	// +RF-LFL-FR+
	// -LF+RFR+FL-
}
