package turing

import (
	"fmt"
	"sort"

	"github.com/san-kum/turingmul/internal/tape"
)

// State is a control state of the machine.
type State uint8

const (
	Init State = iota
	Rewind
	Pick
	SeekSeparator
	CopyPick
	CopyOut
	CopyBack
	CopyReset
	Restore
	Done
)

var stateNames = [...]string{
	Init:          "init",
	Rewind:        "rewind",
	Pick:          "pick",
	SeekSeparator: "seek-separator",
	CopyPick:      "copy-pick",
	CopyOut:       "copy-out",
	CopyBack:      "copy-back",
	CopyReset:     "copy-reset",
	Restore:       "restore",
	Done:          "done",
}

func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return fmt.Sprintf("state(%d)", uint8(s))
}

// Transition is the right-hand side of a rule.
type Transition struct {
	Next  State
	Write tape.Symbol
	Move  tape.Direction
}

// Rule is a complete table entry.
type Rule struct {
	State State
	Read  tape.Symbol
	Transition
}

type key struct {
	state State
	read  tape.Symbol
}

// Table maps (state, symbol) to a transition. It is never modified after
// NewTable returns.
type Table struct {
	start State
	halt  State
	rules map[key]Transition
}

// NewTable validates rules and builds a table. Keys must be unique and the
// halt state must have no outgoing rules.
func NewTable(start, halt State, rules []Rule) (*Table, error) {
	if start == halt {
		return nil, fmt.Errorf("%w: start state %s is also the halt state", ErrInvalidTable, start)
	}
	t := &Table{
		start: start,
		halt:  halt,
		rules: make(map[key]Transition, len(rules)),
	}
	for _, r := range rules {
		if r.State == halt {
			return nil, fmt.Errorf("%w: rule leaves halt state %s", ErrInvalidTable, halt)
		}
		k := key{r.State, r.Read}
		if _, dup := t.rules[k]; dup {
			return nil, fmt.Errorf("%w: duplicate rule for (%s, %q)", ErrInvalidTable, r.State, byte(r.Read))
		}
		t.rules[k] = r.Transition
	}
	return t, nil
}

// Lookup returns the transition for (s, sym). A missing entry yields a
// *TransitionError wrapping ErrUndefinedTransition.
func (t *Table) Lookup(s State, sym tape.Symbol) (Transition, error) {
	tr, ok := t.rules[key{s, sym}]
	if !ok {
		return Transition{}, &TransitionError{State: s, Symbol: sym}
	}
	return tr, nil
}

func (t *Table) Start() State { return t.start }
func (t *Table) Halt() State  { return t.halt }
func (t *Table) Len() int     { return len(t.rules) }

// IsHalt reports whether s is the table's halt state.
func (t *Table) IsHalt(s State) bool { return s == t.halt }

// Rules returns a copy of every rule ordered by state, then symbol.
func (t *Table) Rules() []Rule {
	out := make([]Rule, 0, len(t.rules))
	for k, tr := range t.rules {
		out = append(out, Rule{State: k.state, Read: k.read, Transition: tr})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].State != out[j].State {
			return out[i].State < out[j].State
		}
		return out[i].Read < out[j].Read
	})
	return out
}
