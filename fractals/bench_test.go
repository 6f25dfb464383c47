package fractals_test

import (
	"testing"

	"github.com/katalvlaran/lsys/bezier"
	"github.com/katalvlaran/lsys/fractals"
)

func benchmarkGeometry(b *testing.B, depth int) {
	c, err := fractals.Get("Dragon")
	if err != nil {
		b.Fatal(err)
	}
	c.Depth = depth

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := c.Geometry(nil); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkGeometry_Depth8 measures the grammar+turtle pipeline on a
// 256-segment dragon.
func BenchmarkGeometry_Depth8(b *testing.B) { benchmarkGeometry(b, 8) }

// BenchmarkGeometry_Depth12 is the catalog default, 4096 segments.
func BenchmarkGeometry_Depth12(b *testing.B) { benchmarkGeometry(b, 12) }

// BenchmarkSmooth_Depth8 adds Bezier smoothing on top.
func BenchmarkSmooth_Depth8(b *testing.B) {
	c, err := fractals.Get("Dragon")
	if err != nil {
		b.Fatal(err)
	}
	c.Depth = 8

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := c.Smooth(nil, bezier.Options{}); err != nil {
			b.Fatal(err)
		}
	}
}
