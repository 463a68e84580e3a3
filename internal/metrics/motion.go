package metrics

import (
	"github.com/san-kum/turingmul/internal/runner"
	"github.com/san-kum/turingmul/internal/tape"
)

// HeadTravel counts cells the head moved over a run.
type HeadTravel struct {
	name  string
	cells int
}

func NewHeadTravel() *HeadTravel {
	return &HeadTravel{name: "head_travel"}
}

func (h *HeadTravel) Name() string { return h.name }

func (h *HeadTravel) Observe(f runner.Frame) {
	if f.Step == 0 {
		return
	}
	if f.Rule.Move != tape.Stay {
		h.cells++
	}
}

func (h *HeadTravel) Value() float64 { return float64(h.cells) }
func (h *HeadTravel) Reset()         { h.cells = 0 }

// TapeSpan is the width of the region the head has visited.
type TapeSpan struct {
	name   string
	lo, hi int
	seen   bool
}

func NewTapeSpan() *TapeSpan {
	return &TapeSpan{name: "tape_span"}
}

func (t *TapeSpan) Name() string { return t.name }

func (t *TapeSpan) Observe(f runner.Frame) {
	if !t.seen {
		t.lo, t.hi, t.seen = f.Head, f.Head, true
		return
	}
	t.lo = min(t.lo, f.Head)
	t.hi = max(t.hi, f.Head)
}

func (t *TapeSpan) Value() float64 {
	if !t.seen {
		return 0
	}
	return float64(t.hi - t.lo + 1)
}

func (t *TapeSpan) Reset() {
	t.lo, t.hi, t.seen = 0, 0, false
}

// Reversals counts how often the head turned around.
type Reversals struct {
	name  string
	last  tape.Direction
	turns int
}

func NewReversals() *Reversals {
	return &Reversals{name: "reversals"}
}

func (r *Reversals) Name() string { return r.name }

func (r *Reversals) Observe(f runner.Frame) {
	if f.Step == 0 || f.Rule.Move == tape.Stay {
		return
	}
	if r.last != tape.Stay && r.last != f.Rule.Move {
		r.turns++
	}
	r.last = f.Rule.Move
}

func (r *Reversals) Value() float64 { return float64(r.turns) }

func (r *Reversals) Reset() {
	r.last = tape.Stay
	r.turns = 0
}
