package metrics

import "github.com/san-kum/diffuse1d/internal/grid"

// Peak records the most recent maximum sample. Under diffusion the peak of
// a localized profile decays monotonically toward the mean.
type Peak struct {
	name    string
	last    float64
	samples int
}

func NewPeak() *Peak {
	return &Peak{name: "peak"}
}

func (p *Peak) Name() string { return p.name }

func (p *Peak) Observe(f grid.Field, t float64) {
	p.last = f.Peak()
	p.samples++
}

func (p *Peak) Value() float64 {
	return p.last
}

func (p *Peak) Reset() {
	p.last = 0
	p.samples = 0
}
