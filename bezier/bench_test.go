package bezier_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/lsys/bezier"
	"github.com/katalvlaran/lsys/turtle"
)

// zigzag builds one contiguous run of n right-angle segments.
func zigzag(n int) []turtle.Segment {
	opts := turtle.DefaultOptions()
	opts.DA = 90

	var b strings.Builder
	for i := 0; i < n; i++ {
		b.WriteByte('F')
		if i%2 == 0 {
			b.WriteByte('+')
		} else {
			b.WriteByte('-')
		}
	}
	coords, _, err := turtle.Interpret(b.String(), opts)
	if err != nil {
		panic(err)
	}
	return coords
}

func benchmarkSmoothPath(b *testing.B, n int) {
	coords := zigzag(n)
	opts := bezier.Options{Weight: 0.5}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := bezier.SmoothPath(coords, opts); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSmoothPath_1k(b *testing.B)  { benchmarkSmoothPath(b, 1_000) }
func BenchmarkSmoothPath_16k(b *testing.B) { benchmarkSmoothPath(b, 16_000) }

// BenchmarkCircularWeight measures the Horner evaluation of the
// polynomial fit.
func BenchmarkCircularWeight(b *testing.B) {
	for i := 0; i < b.N; i++ {
		bezier.CircularWeight(90)
	}
}

// BenchmarkFindCircularWeight measures the full bisection search the fit
// replaces.
func BenchmarkFindCircularWeight(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, _, _, err := bezier.FindCircularWeight(90, nil); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkSample flattens a smoothed path at 16 segments per cubic.
func BenchmarkSample(b *testing.B) {
	path, err := bezier.SmoothPath(zigzag(1_000), bezier.Options{Weight: 0.5})
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		path.Sample(16)
	}
}
