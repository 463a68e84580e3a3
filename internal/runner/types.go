package runner

import (
	"context"
	"errors"
	"time"

	"github.com/san-kum/turingmul/internal/turing"
)

// ErrStepBudget indicates Config.MaxSteps was reached before halting.
var ErrStepBudget = errors.New("runner: step budget exhausted")

// Frame is what observers see after each step. Step 0 is the initial
// configuration and carries a zero Rule.
type Frame struct {
	Step    int
	State   turing.State
	Rule    turing.Rule
	Head    int
	Marks   int
	Outcome turing.Outcome
}

type Metric interface {
	Name() string
	Observe(f Frame)
	Value() float64
	Reset()
}

// Observer is notified between steps. It may inspect m but must not step it.
type Observer interface {
	OnStep(m *turing.Machine, f Frame)
}

// Pacer blocks before every step. Timed and interactive modes are pacers.
type Pacer interface {
	Wait(ctx context.Context) error
}

type Config struct {
	Pacer    Pacer
	MaxSteps int
	Trace    bool
}

type Result struct {
	Multiplier   int
	Multiplicand int
	Product      int
	Steps        int
	Frames       []Frame
	Metrics      map[string]float64
	Elapsed      time.Duration
}
