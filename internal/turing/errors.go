package turing

import (
	"errors"
	"fmt"

	"github.com/san-kum/turingmul/internal/tape"
)

// Domain errors for machine operations.
var (
	// ErrInvalidInput indicates a negative operand.
	ErrInvalidInput = errors.New("turing: operands must be non-negative")

	// ErrUndefinedTransition indicates a (state, symbol) pair with no rule.
	ErrUndefinedTransition = errors.New("turing: undefined transition")

	// ErrMalformedResult indicates the halted tape does not hold a product.
	ErrMalformedResult = errors.New("turing: malformed result segment")

	// ErrNotHalted indicates the result was requested before halting.
	ErrNotHalted = errors.New("turing: machine has not halted")

	// ErrInvalidTable indicates a rule set that cannot form a table.
	ErrInvalidTable = errors.New("turing: invalid transition table")
)

// TransitionError wraps ErrUndefinedTransition with the configuration the
// machine was in when no rule matched.
type TransitionError struct {
	Step   int
	State  State
	Symbol tape.Symbol
	Head   int
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("%v: state %s reading %q at head %d (step %d)",
		ErrUndefinedTransition, e.State, byte(e.Symbol), e.Head, e.Step)
}

func (e *TransitionError) Unwrap() error {
	return ErrUndefinedTransition
}
