package turing

import (
	"errors"
	"testing"

	"github.com/san-kum/turingmul/internal/tape"
)

func TestNewTable_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		start State
		halt  State
		rules []Rule
	}{
		{"start is halt", Init, Init, nil},
		{"duplicate key", Init, Done, []Rule{
			rule(Init, Mark, Init, Mark, tape.Right),
			rule(Init, Mark, Done, Mark, tape.Stay),
		}},
		{"rule from halt", Init, Done, []Rule{
			rule(Done, Mark, Init, Mark, tape.Right),
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTable(tt.start, tt.halt, tt.rules)
			if !errors.Is(err, ErrInvalidTable) {
				t.Errorf("expected ErrInvalidTable, got %v", err)
			}
		})
	}
}

func TestTable_Lookup(t *testing.T) {
	table := Multiplication()

	tr, err := table.Lookup(Pick, Mark)
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if tr.Next != SeekSeparator || tr.Write != Consumed || tr.Move != tape.Right {
		t.Errorf("unexpected transition %+v", tr)
	}

	_, err = table.Lookup(Pick, Delimiter)
	if !errors.Is(err, ErrUndefinedTransition) {
		t.Fatalf("expected ErrUndefinedTransition, got %v", err)
	}
	var te *TransitionError
	if !errors.As(err, &te) || te.State != Pick || te.Symbol != Delimiter {
		t.Errorf("unexpected error detail %#v", err)
	}
}

func TestTable_NoRulesFromHalt(t *testing.T) {
	table := Multiplication()
	if table.Start() != Init || table.Halt() != Done {
		t.Fatalf("start=%s halt=%s", table.Start(), table.Halt())
	}
	for _, r := range table.Rules() {
		if r.State == Done {
			t.Errorf("halt state has outgoing rule %+v", r)
		}
	}
}

func TestTable_RulesSortedCopy(t *testing.T) {
	table := Multiplication()
	rules := table.Rules()
	if len(rules) != table.Len() {
		t.Fatalf("Rules() returned %d, Len() = %d", len(rules), table.Len())
	}
	for i := 1; i < len(rules); i++ {
		a, b := rules[i-1], rules[i]
		if a.State > b.State || (a.State == b.State && a.Read >= b.Read) {
			t.Errorf("rules out of order at %d: %+v then %+v", i, a, b)
		}
	}

	rules[0].Next = Done
	if table.Rules()[0].Next == Done {
		t.Error("Rules() exposes internal storage")
	}
}

func TestState_String(t *testing.T) {
	if Init.String() != "init" || Done.String() != "done" {
		t.Errorf("unexpected names %q %q", Init, Done)
	}
	if State(200).String() != "state(200)" {
		t.Errorf("unknown state rendered as %q", State(200))
	}
	if !Done.IsHalt() || Init.IsHalt() {
		t.Error("IsHalt mismatch")
	}
}
