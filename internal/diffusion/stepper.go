package diffusion

import "github.com/san-kum/diffuse1d/internal/grid"

// EulerStepper advances a field by one forward-Euler step. Each step reads
// the previous field in full and writes a fresh buffer (Jacobi update), so
// boundary lookups never see partially updated values.
type EulerStepper struct {
	eq Equation
}

func NewEuler(eq Equation) *EulerStepper {
	return &EulerStepper{eq: eq}
}

// Step produces the field at t+dt from the field at t.
func (s *EulerStepper) Step(f grid.Field, dt float64) (grid.Field, error) {
	next := make(grid.Field, len(f))
	for i := range f {
		lap, err := s.eq.Laplacian(f, i)
		if err != nil {
			return nil, err
		}
		next[i] = f[i] + dt*s.eq.Diffusivity*lap
	}
	return next, nil
}
