package turing

import (
	"context"

	"github.com/san-kum/turingmul/internal/tape"
)

// Outcome is the result of a single step.
type Outcome int

const (
	Continued Outcome = iota
	Halted
)

func (o Outcome) String() string {
	if o == Halted {
		return "halted"
	}
	return "continued"
}

// Machine runs a Table over a Tape.
type Machine struct {
	table *Table
	tape  *tape.Tape
	state State
	steps int

	multiplier   int
	multiplicand int

	last    Rule
	hasLast bool
	err     error
}

// New encodes the operands and wires in the multiplication program.
func New(multiplier, multiplicand int) (*Machine, error) {
	t, err := Encode(multiplier, multiplicand)
	if err != nil {
		return nil, err
	}
	m := NewWithTable(Multiplication(), t)
	m.multiplier, m.multiplicand = multiplier, multiplicand
	return m, nil
}

// NewWithTable starts table's start state over t. The machine takes
// ownership of t.
func NewWithTable(table *Table, t *tape.Tape) *Machine {
	return &Machine{
		table: table,
		tape:  t,
		state: table.Start(),
	}
}

// Step performs one transition. Stepping a halted machine does nothing and
// reports Halted; a faulted machine keeps returning its error.
func (m *Machine) Step() (Outcome, error) {
	if m.err != nil {
		return Continued, m.err
	}
	if m.table.IsHalt(m.state) {
		return Halted, nil
	}

	sym := m.tape.Read()
	tr, err := m.table.Lookup(m.state, sym)
	if err != nil {
		m.err = &TransitionError{Step: m.steps, State: m.state, Symbol: sym, Head: m.tape.Head()}
		return Continued, m.err
	}

	m.tape.Write(tr.Write)
	m.tape.Move(tr.Move)
	m.last = Rule{State: m.state, Read: sym, Transition: tr}
	m.hasLast = true
	m.state = tr.Next
	m.steps++

	if m.table.IsHalt(m.state) {
		return Halted, nil
	}
	return Continued, nil
}

// Run steps until the machine halts. The context is checked between steps.
func (m *Machine) Run(ctx context.Context) (Outcome, error) {
	for {
		select {
		case <-ctx.Done():
			return Continued, ctx.Err()
		default:
		}

		out, err := m.Step()
		if err != nil {
			return out, err
		}
		if out == Halted {
			return Halted, nil
		}
	}
}

func (m *Machine) State() State  { return m.state }
func (m *Machine) Steps() int    { return m.steps }
func (m *Machine) Head() int     { return m.tape.Head() }
func (m *Machine) Err() error    { return m.err }
func (m *Machine) Table() *Table { return m.table }

// Halted reports whether the machine reached its halt state.
func (m *Machine) Halted() bool { return m.table.IsHalt(m.state) }

// Operands returns the numbers the machine was built from.
func (m *Machine) Operands() (multiplier, multiplicand int) {
	return m.multiplier, m.multiplicand
}

// Count returns how many cells hold sym.
func (m *Machine) Count(sym tape.Symbol) int { return m.tape.Count(sym) }

// Read returns the symbol under the head without stepping.
func (m *Machine) Read() tape.Symbol { return m.tape.Read() }

// Snapshot returns the written region of the tape.
func (m *Machine) Snapshot() []tape.Cell { return m.tape.Snapshot() }

// LastTransition returns the rule applied by the most recent step.
func (m *Machine) LastTransition() (Rule, bool) { return m.last, m.hasLast }

// Result decodes the product. It fails with ErrNotHalted until the machine
// has halted.
func (m *Machine) Result() (int, error) {
	if !m.Halted() {
		return 0, ErrNotHalted
	}
	return Decode(m.tape.Snapshot())
}
