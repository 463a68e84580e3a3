package runner

import (
	"context"
	"errors"
	"testing"

	"github.com/san-kum/turingmul/internal/turing"
)

type countMetric struct {
	count int
	last  Frame
}

func (c *countMetric) Name() string    { return "count" }
func (c *countMetric) Observe(f Frame) { c.count++; c.last = f }
func (c *countMetric) Value() float64  { return float64(c.count) }
func (c *countMetric) Reset()          { c.count = 0 }

type recordObserver struct {
	steps []int
}

func (r *recordObserver) OnStep(m *turing.Machine, f Frame) {
	if m.Steps() != f.Step {
		panic("frame out of sync with machine")
	}
	r.steps = append(r.steps, f.Step)
}

type countPacer struct{ n int }

func (c *countPacer) Wait(ctx context.Context) error {
	c.n++
	return nil
}

func newMachine(t *testing.T, a, b int) *turing.Machine {
	t.Helper()
	m, err := turing.New(a, b)
	if err != nil {
		t.Fatalf("New(%d, %d): %v", a, b, err)
	}
	return m
}

func TestRunnerRun(t *testing.T) {
	r := New()
	metric := &countMetric{}
	obs := &recordObserver{}
	pacer := &countPacer{}
	r.AddMetric(metric)
	r.AddObserver(obs)

	result, err := r.Run(context.Background(), newMachine(t, 1, 1), Config{Pacer: pacer, Trace: true})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if result.Product != 1 || result.Steps != 26 {
		t.Errorf("product=%d steps=%d, want 1 and 26", result.Product, result.Steps)
	}
	if result.Multiplier != 1 || result.Multiplicand != 1 {
		t.Errorf("operands %d, %d", result.Multiplier, result.Multiplicand)
	}
	if len(result.Frames) != 27 {
		t.Errorf("expected 27 frames, got %d", len(result.Frames))
	}
	if metric.count != 27 {
		t.Errorf("expected 27 observations, got %d", metric.count)
	}
	if result.Metrics["count"] != 27 {
		t.Errorf("metric not reported: %v", result.Metrics)
	}
	if pacer.n != 26 {
		t.Errorf("pacer waited %d times, want 26", pacer.n)
	}
	for i, s := range obs.steps {
		if s != i {
			t.Fatalf("observer saw step %d at index %d", s, i)
		}
	}

	first, last := result.Frames[0], result.Frames[len(result.Frames)-1]
	if first.Step != 0 || first.State != turing.Init || first.Marks != 2 {
		t.Errorf("unexpected initial frame %+v", first)
	}
	if last.Outcome != turing.Halted || last.State != turing.Done || last.Marks != 3 {
		t.Errorf("unexpected final frame %+v", last)
	}
}

func TestRunnerRun_NoTrace(t *testing.T) {
	result, err := New().Run(context.Background(), newMachine(t, 2, 3), Config{})
	if err != nil {
		t.Fatal(err)
	}
	if result.Frames != nil {
		t.Errorf("frames recorded without Trace: %d", len(result.Frames))
	}
	if result.Product != 6 {
		t.Errorf("product = %d, want 6", result.Product)
	}
}

func TestRunnerRun_StepBudget(t *testing.T) {
	result, err := New().Run(context.Background(), newMachine(t, 3, 4), Config{MaxSteps: 10})
	if !errors.Is(err, ErrStepBudget) {
		t.Fatalf("expected ErrStepBudget, got %v", err)
	}
	if result.Steps != 10 {
		t.Errorf("expected 10 steps, got %d", result.Steps)
	}
}

func TestRunnerRun_InvalidConfig(t *testing.T) {
	if _, err := New().Run(context.Background(), newMachine(t, 1, 1), Config{MaxSteps: -1}); err == nil {
		t.Error("expected error, got nil")
	}
}

func TestRunnerRun_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	metric := &countMetric{}
	r := New()
	r.AddMetric(metric)
	result, err := r.Run(ctx, newMachine(t, 2, 2), Config{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if result.Steps != 0 || metric.count != 1 {
		t.Errorf("steps=%d observations=%d", result.Steps, metric.count)
	}
}

func TestRunnerRun_AlreadyHalted(t *testing.T) {
	m := newMachine(t, 2, 2)
	if _, err := m.Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	result, err := New().Run(context.Background(), m, Config{Trace: true})
	if err != nil {
		t.Fatal(err)
	}
	if result.Product != 4 || len(result.Frames) != 1 || result.Frames[0].Outcome != turing.Halted {
		t.Errorf("unexpected result %+v", result)
	}
}
