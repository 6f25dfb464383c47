package fractals

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// LoadCatalog reads a YAML map of fractal definitions, keyed by name:
//
//	Dragon:
//	  axiom: FX
//	  rule: "X = X+YF+, Y = -FX-Y"
//	  depth: 12
//	  a0: 90
//	  da: 90
//	  ignore: XY
//
// Every entry is normalized and validated; the first invalid entry
// aborts the load with its name attached to the error.
func LoadCatalog(r io.Reader) (map[string]Config, error) {
	var raw map[string]Config
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	catalog := make(map[string]Config, len(raw))
	for name, c := range raw {
		c = c.Normalize()
		if err := c.Validate(); err != nil {
			return nil, fmt.Errorf("load catalog: %q: %w", name, err)
		}
		catalog[name] = c
	}
	return catalog, nil
}
