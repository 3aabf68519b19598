package diffusion

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/diffuse1d/internal/grid"
)

func TestLaplacianInterior(t *testing.T) {
	f := grid.Field{0, 0, 10, 0, 0}

	if got := Laplacian(f, 2, grid.Clamp, grid.Clamp); math.Abs(got-(-20)) > 1e-12 {
		t.Errorf("laplacian at peak = %f, want -20", got)
	}
	if got := Laplacian(f, 1, grid.Clamp, grid.Clamp); math.Abs(got-10) > 1e-12 {
		t.Errorf("laplacian next to peak = %f, want 10", got)
	}
}

func TestLaplacianBoundaries(t *testing.T) {
	f := grid.Field{5, 0, 0, 0, 3}

	// Clamp: the ghost sample repeats the edge value.
	if got := Laplacian(f, 0, grid.Clamp, grid.Clamp); math.Abs(got-(5+0-10)) > 1e-12 {
		t.Errorf("clamp lower edge = %f, want -5", got)
	}
	// Periodic: index -1 wraps to the far edge.
	if got := Laplacian(f, 0, grid.Periodic, grid.Periodic); math.Abs(got-(3+0-10)) > 1e-12 {
		t.Errorf("periodic lower edge = %f, want -7", got)
	}
	// Mirror: index -1 reflects to index 1.
	if got := Laplacian(f, 0, grid.Mirror, grid.Mirror); math.Abs(got-(0+0-10)) > 1e-12 {
		t.Errorf("mirror lower edge = %f, want -10", got)
	}
}

func TestEquationLaplacianSpacing(t *testing.T) {
	f := grid.Field{0, 0, 10, 0, 0}

	eq := NewEquation(1.0)
	eq.Dx = 2.0

	got, err := eq.Laplacian(f, 2)
	if err != nil {
		t.Fatalf("laplacian failed: %v", err)
	}
	if math.Abs(got-(-5)) > 1e-12 {
		t.Errorf("laplacian with dx=2 = %f, want -5", got)
	}
}

func TestEquationValidate(t *testing.T) {
	tests := []struct {
		name string
		eq   Equation
		n    int
	}{
		{"zero diffusivity", Equation{Diffusivity: 0, Dx: 1}, 10},
		{"negative diffusivity", Equation{Diffusivity: -1, Dx: 1}, 10},
		{"zero dx", Equation{Diffusivity: 1, Dx: 0}, 10},
		{"field too short", Equation{Diffusivity: 1, Dx: 1}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.eq.Validate(tt.n)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !errors.Is(err, ErrInvalidParameter) {
				t.Errorf("expected ErrInvalidParameter, got %v", err)
			}
		})
	}

	eq := NewEquation(1.0)
	if err := eq.Validate(3); err != nil {
		t.Errorf("minimal valid configuration rejected: %v", err)
	}
}

func TestStabilityBound(t *testing.T) {
	if IsStable(1.0, 0.6, 1.0) {
		t.Error("D=1 dt=0.6 h=1 should be unstable")
	}
	if !IsStable(1.0, 0.4, 1.0) {
		t.Error("D=1 dt=0.4 h=1 should be stable")
	}
	if !IsStable(1.0, 0.5, 1.0) {
		t.Error("the bound itself is still stable")
	}
	if got := DiffusionNumber(2.0, 0.1, 0.5); math.Abs(got-0.8) > 1e-12 {
		t.Errorf("DiffusionNumber(2, 0.1, 0.5) = %f, want 0.8", got)
	}
}
