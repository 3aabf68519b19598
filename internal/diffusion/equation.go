package diffusion

import (
	"fmt"

	"github.com/san-kum/diffuse1d/internal/grid"
)

// StencilWidth is the minimum field length the 3-point stencil supports.
// Below this a single-step boundary violation can skip past the far edge.
const StencilWidth = 3

// StabilityLimit is the largest diffusion number D*dt/h² for which the
// explicit scheme stays bounded.
const StabilityLimit = 0.5

// Laplacian evaluates the second-order central-difference Laplacian of f at
// index i with unit spacing. Neighbor lookups at the edges are mapped back
// into the domain by the given boundary kinds.
//
// The caller must ensure len(f) >= StencilWidth and 0 <= i < len(f).
func Laplacian(f grid.Field, i int, lower, upper grid.Boundary) float64 {
	l := len(f)
	hi := grid.Resolve(i+1, 0, l, lower, upper)
	lo := grid.Resolve(i-1, 0, l, lower, upper)
	return f[hi] + f[lo] - 2*f[i]
}

// Equation is the spatial side of the PDE: diffusivity, grid spacing and
// the boundary policy at each edge.
type Equation struct {
	Diffusivity float64
	Dx          float64
	Lower       grid.Boundary
	Upper       grid.Boundary
}

// NewEquation returns an Equation with unit spacing and clamped edges,
// matching the minimal textbook formulation.
func NewEquation(diffusivity float64) Equation {
	return Equation{Diffusivity: diffusivity, Dx: 1.0, Lower: grid.Clamp, Upper: grid.Clamp}
}

// Validate reports whether the equation and a field of length n form a
// runnable configuration.
func (e Equation) Validate(n int) error {
	if e.Diffusivity <= 0 {
		return fmt.Errorf("%w: diffusivity must be positive, got %g", ErrInvalidParameter, e.Diffusivity)
	}
	if e.Dx <= 0 {
		return fmt.Errorf("%w: dx must be positive, got %g", ErrInvalidParameter, e.Dx)
	}
	if n < StencilWidth {
		return fmt.Errorf("%w: field length %d below stencil width %d", ErrInvalidParameter, n, StencilWidth)
	}
	return nil
}

// Laplacian evaluates the stencil at index i scaled by 1/dx², with a
// defensive range check on the resolved neighbors.
func (e Equation) Laplacian(f grid.Field, i int) (float64, error) {
	l := len(f)
	hi := grid.Resolve(i+1, 0, l, e.Lower, e.Upper)
	lo := grid.Resolve(i-1, 0, l, e.Lower, e.Upper)
	if hi < 0 || hi >= l || lo < 0 || lo >= l {
		return 0, fmt.Errorf("%w: i=%d resolved to (%d, %d) on [0, %d)", ErrIndexResolution, i, lo, hi, l)
	}
	return (f[hi] + f[lo] - 2*f[i]) / (e.Dx * e.Dx), nil
}

// DiffusionNumber returns the dimensionless ratio D*dt/h² governing the
// stability of the explicit scheme.
func DiffusionNumber(diffusivity, dt, dx float64) float64 {
	return diffusivity * dt / (dx * dx)
}

// IsStable reports whether (D, dt, h) satisfies the explicit stability
// bound D*dt/h² <= 0.5. Violating it produces unbounded, physically
// meaningless output; the solver does not check this itself.
func IsStable(diffusivity, dt, dx float64) bool {
	return DiffusionNumber(diffusivity, dt, dx) <= StabilityLimit
}
