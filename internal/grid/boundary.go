package grid

import (
	"fmt"
	"strings"
)

// Boundary selects how indices that fall off an edge of the domain are
// mapped back onto it.
type Boundary int

const (
	// Clamp pins out-of-range lookups to the nearest edge sample. This is
	// the usual discrete stand-in for both Dirichlet and zero-flux Neumann
	// conditions on a node-centered grid.
	Clamp Boundary = iota
	// Periodic wraps lookups around to the opposite edge.
	Periodic
	// Mirror reflects lookups about the edge sample.
	Mirror
)

func (b Boundary) String() string {
	switch b {
	case Clamp:
		return "clamp"
	case Periodic:
		return "periodic"
	case Mirror:
		return "mirror"
	}
	return "unknown"
}

// ParseBoundary maps a config/CLI name to a Boundary kind. Matching is
// case-insensitive. "dirichlet" and "neumann" are accepted as aliases for
// clamp since that is how both are realized on this grid.
func ParseBoundary(name string) (Boundary, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "clamp", "dirichlet", "neumann":
		return Clamp, nil
	case "periodic", "wrap":
		return Periodic, nil
	case "mirror", "reflect":
		return Mirror, nil
	}
	return 0, fmt.Errorf("unknown boundary kind: %q", name)
}

// Resolve maps index x onto the domain [x0, x1). In-range indices pass
// through untouched; a lower violation is handled by the lower kind and an
// upper violation by the upper kind.
//
// The result is guaranteed in-range only when x is at most one step outside
// the domain, which is all a 3-point stencil can produce on a domain of
// length >= 3. No re-application is performed for larger violations.
func Resolve(x, x0, x1 int, lower, upper Boundary) int {
	if x >= x0 && x < x1 {
		return x
	}
	if x < x0 {
		switch lower {
		case Periodic:
			return x1 - (x0 - x)
		case Mirror:
			return 2*x0 - x
		default:
			return x0
		}
	}
	switch upper {
	case Periodic:
		return x0 + (x - x1)
	case Mirror:
		return 2*(x1-1) - x
	default:
		return x1 - 1
	}
}
