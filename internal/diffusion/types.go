package diffusion

import "github.com/san-kum/diffuse1d/internal/grid"

// Metric accumulates a scalar observation over a run.
type Metric interface {
	Name() string
	Observe(f grid.Field, t float64)
	Value() float64
	Reset()
}

// Observer is notified with each completed field snapshot.
type Observer interface {
	OnStep(f grid.Field, t float64)
}

// Config holds the time-integration parameters of a run.
type Config struct {
	Dt       float64
	Duration float64
}

// Result collects every field snapshot of a run plus final metric values.
// Fields[0] is the initial condition; Fields[len-1] the final state.
type Result struct {
	Fields     []grid.Field
	Times      []float64
	Metrics    map[string]float64
	StepsTaken int
}

// Final returns the field after the last step.
func (r *Result) Final() grid.Field {
	if len(r.Fields) == 0 {
		return nil
	}
	return r.Fields[len(r.Fields)-1]
}
