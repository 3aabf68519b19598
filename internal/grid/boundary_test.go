package grid

import "testing"

func TestResolveInteriorIdentity(t *testing.T) {
	kinds := []Boundary{Clamp, Periodic, Mirror}
	for _, lower := range kinds {
		for _, upper := range kinds {
			for x := 0; x < 10; x++ {
				if got := Resolve(x, 0, 10, lower, upper); got != x {
					t.Errorf("Resolve(%d, 0, 10, %s, %s) = %d, want identity", x, lower, upper, got)
				}
			}
		}
	}
}

func TestResolveEdges(t *testing.T) {
	tests := []struct {
		name     string
		x        int
		x0, x1   int
		kind     Boundary
		expected int
	}{
		{"clamp below", -1, 0, 10, Clamp, 0},
		{"clamp above", 10, 0, 10, Clamp, 9},
		{"periodic below", -1, 0, 10, Periodic, 9},
		{"periodic above", 10, 0, 10, Periodic, 0},
		{"mirror below", -1, 0, 10, Mirror, 1},
		{"mirror above", 10, 0, 10, Mirror, 8},
		{"clamp below offset domain", 2, 3, 8, Clamp, 3},
		{"clamp above offset domain", 8, 3, 8, Clamp, 7},
		{"periodic below offset domain", 2, 3, 8, Periodic, 7},
		{"periodic above offset domain", 8, 3, 8, Periodic, 3},
		{"mirror below offset domain", 2, 3, 8, Mirror, 4},
		{"mirror above offset domain", 8, 3, 8, Mirror, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(tt.x, tt.x0, tt.x1, tt.kind, tt.kind)
			if got != tt.expected {
				t.Errorf("Resolve(%d, %d, %d, %s) = %d, want %d", tt.x, tt.x0, tt.x1, tt.kind, got, tt.expected)
			}
		})
	}
}

func TestResolvePerEdgeKinds(t *testing.T) {
	// The lower kind handles lower violations, the upper kind upper ones.
	if got := Resolve(-1, 0, 10, Periodic, Clamp); got != 9 {
		t.Errorf("lower violation should use lower kind: got %d, want 9", got)
	}
	if got := Resolve(10, 0, 10, Periodic, Clamp); got != 9 {
		t.Errorf("upper violation should use upper kind: got %d, want 9", got)
	}
}

func TestResolveSingleStepStaysInRange(t *testing.T) {
	kinds := []Boundary{Clamp, Periodic, Mirror}
	for _, lower := range kinds {
		for _, upper := range kinds {
			for _, x := range []int{-1, 10} {
				got := Resolve(x, 0, 10, lower, upper)
				if got < 0 || got >= 10 {
					t.Errorf("Resolve(%d, 0, 10, %s, %s) = %d out of range", x, lower, upper, got)
				}
			}
		}
	}
}

func TestParseBoundary(t *testing.T) {
	tests := []struct {
		name     string
		expected Boundary
	}{
		{"clamp", Clamp},
		{"dirichlet", Clamp},
		{"neumann", Clamp},
		{"periodic", Periodic},
		{"wrap", Periodic},
		{"mirror", Mirror},
		{"reflect", Mirror},
		{"  Periodic ", Periodic},
	}

	for _, tt := range tests {
		got, err := ParseBoundary(tt.name)
		if err != nil {
			t.Errorf("ParseBoundary(%q) returned error: %v", tt.name, err)
			continue
		}
		if got != tt.expected {
			t.Errorf("ParseBoundary(%q) = %s, want %s", tt.name, got, tt.expected)
		}
	}

	if _, err := ParseBoundary("absorbing"); err == nil {
		t.Error("expected error for unknown boundary kind")
	}
}

func TestBoundaryString(t *testing.T) {
	if Clamp.String() != "clamp" || Periodic.String() != "periodic" || Mirror.String() != "mirror" {
		t.Error("unexpected Boundary string values")
	}
	if Boundary(42).String() != "unknown" {
		t.Error("out-of-range Boundary should stringify as unknown")
	}
}
