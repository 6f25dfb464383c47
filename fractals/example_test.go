package fractals_test

import (
	"fmt"

	"github.com/katalvlaran/lsys/fractals"
)

// ExampleGet fetches a preset, shrinks it, and expands it.
func ExampleGet() {
	dragon, err := fractals.Get("Dragon")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	dragon.Depth = 2
	s, err := dragon.Expand()
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(s)
	// Output:
	// FX+YF++-FX-YF+
}

// ExampleConfig_Geometry draws a tiny dragon and counts its strokes.
func ExampleConfig_Geometry() {
	dragon, _ := fractals.Get("Dragon")
	dragon.Depth = 4

	coords, _, err := dragon.Geometry(nil)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("segments: %d\n", len(coords))
	// Output:
	// segments: 16
}
