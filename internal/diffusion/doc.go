// Package diffusion integrates the 1D heat equation dc/dt = D * d²c/dx²
// with an explicit scheme: second-order central differences in space and
// forward Euler in time.
//
// [Laplacian] evaluates the 3-point stencil at a single index, using
// [grid.Resolve] so edge lookups honor the configured boundary kinds.
// [Equation] carries the diffusivity, grid spacing and boundary policy;
// [Solver] runs the Euler loop, observing [Metric] and [Observer] hooks each
// step the way a simulation run does.
//
// # Stability
//
// The scheme is conditionally stable: it requires D*dt/h² <= 0.5. The solver
// never enforces this ([IsStable] and [DiffusionNumber] report it) because
// watching a run diverge is itself instructive.
package diffusion
