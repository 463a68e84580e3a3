package runner

import (
	"context"
	"fmt"
	"time"

	"github.com/san-kum/turingmul/internal/turing"
)

// Runner drives a machine to completion while feeding metrics and observers.
type Runner struct {
	metrics   []Metric
	observers []Observer
}

func New() *Runner {
	return &Runner{
		metrics:   make([]Metric, 0),
		observers: make([]Observer, 0),
	}
}

func (r *Runner) AddMetric(m Metric)     { r.metrics = append(r.metrics, m) }
func (r *Runner) AddObserver(o Observer) { r.observers = append(r.observers, o) }

func (r *Runner) Run(ctx context.Context, m *turing.Machine, cfg Config) (*Result, error) {
	if cfg.MaxSteps < 0 {
		return nil, fmt.Errorf("max steps must not be negative, got %d", cfg.MaxSteps)
	}

	for _, mt := range r.metrics {
		mt.Reset()
	}

	a, b := m.Operands()
	result := &Result{
		Multiplier:   a,
		Multiplicand: b,
		Metrics:      make(map[string]float64),
	}
	if cfg.Trace {
		result.Frames = make([]Frame, 0, 64)
	}

	start := time.Now()
	outcome := turing.Continued
	if m.Halted() {
		outcome = turing.Halted
	}
	r.emit(m, frameOf(m, outcome), result, cfg)

	for !m.Halted() {
		select {
		case <-ctx.Done():
			return r.finish(m, result, start), ctx.Err()
		default:
		}

		if cfg.MaxSteps > 0 && m.Steps() >= cfg.MaxSteps {
			return r.finish(m, result, start), fmt.Errorf("%w after %d steps", ErrStepBudget, m.Steps())
		}

		if cfg.Pacer != nil {
			if err := cfg.Pacer.Wait(ctx); err != nil {
				return r.finish(m, result, start), err
			}
		}

		out, err := m.Step()
		if err != nil {
			return r.finish(m, result, start), err
		}
		r.emit(m, frameOf(m, out), result, cfg)
	}

	r.finish(m, result, start)
	product, err := m.Result()
	if err != nil {
		return result, err
	}
	result.Product = product
	return result, nil
}

func (r *Runner) emit(m *turing.Machine, f Frame, result *Result, cfg Config) {
	for _, mt := range r.metrics {
		mt.Observe(f)
	}
	for _, obs := range r.observers {
		obs.OnStep(m, f)
	}
	if cfg.Trace {
		result.Frames = append(result.Frames, f)
	}
}

func (r *Runner) finish(m *turing.Machine, result *Result, start time.Time) *Result {
	result.Steps = m.Steps()
	result.Elapsed = time.Since(start)
	for _, mt := range r.metrics {
		result.Metrics[mt.Name()] = mt.Value()
	}
	return result
}

func frameOf(m *turing.Machine, out turing.Outcome) Frame {
	rule, _ := m.LastTransition()
	return Frame{
		Step:    m.Steps(),
		State:   m.State(),
		Rule:    rule,
		Head:    m.Head(),
		Marks:   m.Count(turing.Mark),
		Outcome: out,
	}
}
