package metrics

import "github.com/san-kum/diffuse1d/internal/grid"

// Spread records the variance of the profile treated as a (non-negative)
// mass distribution over grid positions. For a spreading Gaussian this
// grows linearly in time with slope 2D, which makes it a handy check that
// the solver really behaves like diffusion.
type Spread struct {
	name    string
	last    float64
	samples int
}

func NewSpread() *Spread {
	return &Spread{name: "spread"}
}

func (s *Spread) Name() string { return s.name }

func (s *Spread) Observe(f grid.Field, t float64) {
	s.last = variance(f)
	s.samples++
}

func (s *Spread) Value() float64 {
	return s.last
}

func (s *Spread) Reset() {
	s.last = 0
	s.samples = 0
}

func variance(f grid.Field) float64 {
	mass := f.Sum()
	if mass == 0 {
		return 0
	}
	mean := 0.0
	for i, v := range f {
		mean += float64(i) * v
	}
	mean /= mass

	vari := 0.0
	for i, v := range f {
		d := float64(i) - mean
		vari += d * d * v
	}
	return vari / mass
}
