// Package initial generates starting concentration profiles for the solver.
package initial

import (
	"fmt"
	"math"
	"sort"

	"github.com/san-kum/diffuse1d/internal/grid"
)

// Generator builds a field of n samples scaled by amplitude.
type Generator func(n int, amplitude float64) grid.Field

var generators = map[string]Generator{
	"gaussian": Gaussian,
	"spike":    Spike,
	"step":     Step,
	"uniform":  Uniform,
}

// Get returns the named generator.
func Get(name string) (Generator, error) {
	gen, ok := generators[name]
	if !ok {
		return nil, fmt.Errorf("unknown initial profile: %s (available: %v)", name, List())
	}
	return gen, nil
}

// List returns the available profile names, sorted.
func List() []string {
	names := make([]string, 0, len(generators))
	for name := range generators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Gaussian is a bell curve centered on the domain with width scaling with
// n, amplitude*exp(-(i-n/2)²/n).
func Gaussian(n int, amplitude float64) grid.Field {
	f := make(grid.Field, n)
	c := float64(n) / 2.0
	for i := range f {
		d := float64(i) - c
		f[i] = amplitude * math.Exp(-d*d/float64(n))
	}
	return f
}

// Spike concentrates all mass in the center sample.
func Spike(n int, amplitude float64) grid.Field {
	f := make(grid.Field, n)
	if n > 0 {
		f[n/2] = amplitude
	}
	return f
}

// Step fills the lower half of the domain and leaves the upper half empty.
func Step(n int, amplitude float64) grid.Field {
	f := make(grid.Field, n)
	for i := 0; i < n/2; i++ {
		f[i] = amplitude
	}
	return f
}

// Uniform fills every sample with the same value. A uniform field is a
// fixed point of diffusion under every boundary policy.
func Uniform(n int, amplitude float64) grid.Field {
	f := make(grid.Field, n)
	for i := range f {
		f[i] = amplitude
	}
	return f
}
