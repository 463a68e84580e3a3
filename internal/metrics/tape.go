package metrics

import "github.com/san-kum/turingmul/internal/runner"

// PeakMarks is the largest number of marks on the tape at any point.
type PeakMarks struct {
	name string
	peak int
}

func NewPeakMarks() *PeakMarks {
	return &PeakMarks{name: "peak_marks"}
}

func (p *PeakMarks) Name() string { return p.name }

func (p *PeakMarks) Observe(f runner.Frame) {
	p.peak = max(p.peak, f.Marks)
}

func (p *PeakMarks) Value() float64 { return float64(p.peak) }
func (p *PeakMarks) Reset()         { p.peak = 0 }

// StateChanges counts steps whose rule moved the machine to another state.
type StateChanges struct {
	name    string
	changes int
}

func NewStateChanges() *StateChanges {
	return &StateChanges{name: "state_changes"}
}

func (s *StateChanges) Name() string { return s.name }

func (s *StateChanges) Observe(f runner.Frame) {
	if f.Step > 0 && f.Rule.State != f.Rule.Next {
		s.changes++
	}
}

func (s *StateChanges) Value() float64 { return float64(s.changes) }
func (s *StateChanges) Reset()         { s.changes = 0 }

// Defaults returns a fresh set of every metric.
func Defaults() []runner.Metric {
	return []runner.Metric{
		NewHeadTravel(),
		NewTapeSpan(),
		NewReversals(),
		NewPeakMarks(),
		NewStateChanges(),
	}
}
