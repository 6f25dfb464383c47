package turtle_test

import (
	"testing"

	"github.com/katalvlaran/lsys/grammar"
	"github.com/katalvlaran/lsys/turtle"
)

// benchmarkInterpret expands the Dragon grammar once, then measures the
// walk alone.
func benchmarkInterpret(b *testing.B, depth int) {
	s, err := grammar.Expand("FX", grammar.Rules{'X': "X+YF+", 'Y': "-FX-Y"}, depth, nil)
	if err != nil {
		b.Fatalf("Expand failed: %v", err)
	}
	opts := turtle.DefaultOptions()
	opts.DA = 90
	opts.Depth = depth
	opts.Ignore = "XY"

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := turtle.Interpret(s, opts); err != nil {
			b.Fatalf("Interpret failed: %v", err)
		}
	}
}

// BenchmarkInterpret_Depth10 walks ~1k segments.
func BenchmarkInterpret_Depth10(b *testing.B) { benchmarkInterpret(b, 10) }

// BenchmarkInterpret_Depth14 walks ~16k segments.
func BenchmarkInterpret_Depth14(b *testing.B) { benchmarkInterpret(b, 14) }
