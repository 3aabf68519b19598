package grid

import "math"

// Field holds the sampled concentration c(x) at one instant, indexed
// 0..len-1 with uniform spacing.
type Field []float64

func (f Field) Clone() Field {
	c := make(Field, len(f))
	copy(c, f)
	return c
}

// Sum returns the total mass held by the field. Diffusion redistributes
// mass without creating or destroying it, so under periodic boundaries this
// is conserved step to step.
func (f Field) Sum() float64 {
	total := 0.0
	for _, v := range f {
		total += v
	}
	return total
}

func (f Field) Peak() float64 {
	if len(f) == 0 {
		return 0
	}
	max := f[0]
	for _, v := range f[1:] {
		if v > max {
			max = v
		}
	}
	return max
}

func (f Field) IsValid() bool {
	for _, v := range f {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
