package diffusion

import "errors"

var (
	// ErrInvalidParameter indicates a configuration the solver refuses to
	// run: non-positive dt or diffusivity, a field shorter than the stencil,
	// or a negative duration.
	ErrInvalidParameter = errors.New("diffusion: invalid parameter")
	// ErrIndexResolution indicates a boundary lookup landed outside the
	// domain. Unreachable for fields of length >= 3; checked anyway so a
	// broken caller fails loudly instead of reading out of bounds.
	ErrIndexResolution = errors.New("diffusion: resolved index out of range")
)
