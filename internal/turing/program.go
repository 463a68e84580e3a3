package turing

import "github.com/san-kum/turingmul/internal/tape"

// Multiplication alphabet.
const (
	Mark      tape.Symbol = '1'
	Separator tape.Symbol = '*'
	Delimiter tape.Symbol = '='
	Consumed  tape.Symbol = 'x'
	Copied    tape.Symbol = 'y'
)

// IsHalt reports whether s is the halt state of the multiplication program.
func (s State) IsHalt() bool { return s == Done }

const (
	blank = tape.Blank
	left  = tape.Left
	right = tape.Right
)

func rule(s State, read tape.Symbol, next State, write tape.Symbol, move tape.Direction) Rule {
	return Rule{State: s, Read: read, Transition: Transition{Next: next, Write: write, Move: move}}
}

// multiplicationRules adds the multiplicand to the result segment once per
// multiplier mark.
var multiplicationRules = []Rule{
	// walk to the end of the multiplicand and place the delimiter
	rule(Init, Mark, Init, Mark, right),
	rule(Init, Separator, Init, Separator, right),
	rule(Init, blank, Rewind, Delimiter, left),

	rule(Rewind, Mark, Rewind, Mark, left),
	rule(Rewind, Separator, Rewind, Separator, left),
	rule(Rewind, Consumed, Rewind, Consumed, left),
	rule(Rewind, blank, Pick, blank, right),

	// consume the next multiplier mark, or finish when none are left
	rule(Pick, Consumed, Pick, Consumed, right),
	rule(Pick, Mark, SeekSeparator, Consumed, right),
	rule(Pick, Separator, Restore, Separator, left),

	rule(SeekSeparator, Mark, SeekSeparator, Mark, right),
	rule(SeekSeparator, Separator, CopyPick, Separator, right),

	// copy the multiplicand one mark at a time
	rule(CopyPick, Copied, CopyPick, Copied, right),
	rule(CopyPick, Mark, CopyOut, Copied, right),
	rule(CopyPick, Delimiter, CopyReset, Delimiter, left),

	rule(CopyOut, Mark, CopyOut, Mark, right),
	rule(CopyOut, Delimiter, CopyOut, Delimiter, right),
	rule(CopyOut, blank, CopyBack, Mark, left),

	rule(CopyBack, Mark, CopyBack, Mark, left),
	rule(CopyBack, Delimiter, CopyBack, Delimiter, left),
	rule(CopyBack, Copied, CopyBack, Copied, left),
	rule(CopyBack, Separator, CopyPick, Separator, right),

	rule(CopyReset, Copied, CopyReset, Mark, left),
	rule(CopyReset, Separator, Rewind, Separator, left),

	// put the multiplier back and stop on its first cell
	rule(Restore, Consumed, Restore, Mark, left),
	rule(Restore, blank, Done, blank, right),
}

var multiplication = mustTable(Init, Done, multiplicationRules)

func mustTable(start, halt State, rules []Rule) *Table {
	t, err := NewTable(start, halt, rules)
	if err != nil {
		panic(err)
	}
	return t
}

// Multiplication returns the shared multiplication program.
func Multiplication() *Table { return multiplication }
