package export

import (
	"strings"
	"testing"

	"github.com/san-kum/diffuse1d/internal/grid"
)

func TestProfileToSVG(t *testing.T) {
	f := grid.Field{0, 1, 8, 1, 0}

	svg := ProfileToSVG(f, 400, 200, "#00ff88")

	if !strings.HasPrefix(svg, `<?xml version="1.0"`) {
		t.Error("missing XML header")
	}
	if !strings.Contains(svg, `width="400" height="200"`) {
		t.Error("missing dimensions")
	}
	if !strings.Contains(svg, `stroke="#00ff88"`) {
		t.Error("missing stroke color")
	}
	if strings.Count(svg, " L") != len(f)-1 {
		t.Errorf("expected %d line segments, got %d", len(f)-1, strings.Count(svg, " L"))
	}
}

func TestProfileToSVGDegenerate(t *testing.T) {
	if ProfileToSVG(grid.Field{1}, 400, 200, "#fff") != "" {
		t.Error("single-sample field should render nothing")
	}

	// A flat field must not divide by a zero range.
	svg := ProfileToSVG(grid.Field{3, 3, 3}, 400, 200, "#fff")
	if !strings.Contains(svg, "<path") {
		t.Error("flat field should still render a path")
	}
}

func TestEvolutionToSVG(t *testing.T) {
	fields := []grid.Field{
		{0, 0, 10, 0, 0},
		{0, 1, 8, 1, 0},
		{0.1, 1.7, 6.4, 1.7, 0.1},
	}

	svg := EvolutionToSVG(fields, 800, 400, 3)

	if strings.Count(svg, "<path") != 3 {
		t.Errorf("expected 3 traces, got %d", strings.Count(svg, "<path"))
	}
	if !strings.Contains(svg, "stroke-opacity") {
		t.Error("traces should fade by age")
	}

	if EvolutionToSVG(nil, 800, 400, 3) != "" {
		t.Error("no snapshots should render nothing")
	}
}
