package diffusion

import (
	"context"
	"fmt"

	"github.com/san-kum/diffuse1d/internal/grid"
)

// Solver runs the Euler loop over a field, feeding metrics and observers
// with each snapshot.
type Solver struct {
	eq        Equation
	stepper   *EulerStepper
	metrics   []Metric
	observers []Observer
}

func New(eq Equation) *Solver {
	return &Solver{
		eq:        eq,
		stepper:   NewEuler(eq),
		metrics:   make([]Metric, 0),
		observers: make([]Observer, 0),
	}
}

func (s *Solver) AddMetric(m Metric)     { s.metrics = append(s.metrics, m) }
func (s *Solver) AddObserver(o Observer) { s.observers = append(s.observers, o) }

func (s *Solver) validateConfig(cfg Config, n int) error {
	if cfg.Dt <= 0 {
		return fmt.Errorf("%w: dt must be positive, got %g", ErrInvalidParameter, cfg.Dt)
	}
	if cfg.Duration < 0 {
		return fmt.Errorf("%w: duration must be non-negative, got %g", ErrInvalidParameter, cfg.Duration)
	}
	return s.eq.Validate(n)
}

// Run integrates f0 for Duration/Dt steps and returns every snapshot. A
// zero duration performs no steps and returns the initial field unchanged.
// The context is checked between steps; the partial result is returned on
// cancellation.
func (s *Solver) Run(ctx context.Context, f0 grid.Field, cfg Config) (*Result, error) {
	if err := s.validateConfig(cfg, len(f0)); err != nil {
		return nil, err
	}

	steps := int(cfg.Duration / cfg.Dt)
	result := &Result{
		Fields:  make([]grid.Field, 0, steps+1),
		Times:   make([]float64, 0, steps+1),
		Metrics: make(map[string]float64),
	}

	for _, m := range s.metrics {
		m.Reset()
	}

	f := f0.Clone()
	t := 0.0

	result.Fields = append(result.Fields, f.Clone())
	result.Times = append(result.Times, t)

	for i := 0; i < steps; i++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		for _, m := range s.metrics {
			m.Observe(f, t)
		}
		for _, obs := range s.observers {
			obs.OnStep(f, t)
		}

		next, err := s.stepper.Step(f, cfg.Dt)
		if err != nil {
			return result, err
		}

		f = next
		t += cfg.Dt
		result.StepsTaken++

		result.Fields = append(result.Fields, f.Clone())
		result.Times = append(result.Times, t)
	}

	for _, m := range s.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	return result, nil
}

// Integrate is the plain entry point: advance f0 for the given simulated
// duration and return only the final field.
func Integrate(f0 grid.Field, dt, duration, diffusivity float64, lower, upper grid.Boundary) (grid.Field, error) {
	eq := NewEquation(diffusivity)
	eq.Lower, eq.Upper = lower, upper

	result, err := New(eq).Run(context.Background(), f0, Config{Dt: dt, Duration: duration})
	if err != nil {
		return nil, err
	}
	return result.Final(), nil
}
