package grammar_test

import (
	"testing"

	"github.com/katalvlaran/lsys/grammar"
)

// benchmarkExpand expands the Dragon grammar to the given depth.
func benchmarkExpand(b *testing.B, depth int) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := grammar.Expand("FX", dragonRules, depth, nil); err != nil {
			b.Fatalf("Expand failed: %v", err)
		}
	}
}

// BenchmarkExpand_Depth8 expands to ~500 symbols.
func BenchmarkExpand_Depth8(b *testing.B) { benchmarkExpand(b, 8) }

// BenchmarkExpand_Depth14 expands to ~50k symbols.
func BenchmarkExpand_Depth14(b *testing.B) { benchmarkExpand(b, 14) }

// BenchmarkParse measures rule-string normalization.
func BenchmarkParse(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := grammar.Parse("X=FX+FX+FXFY-FY-,Y=+FX+FXFY-FY-FY,F=V"); err != nil {
			b.Fatalf("Parse failed: %v", err)
		}
	}
}
