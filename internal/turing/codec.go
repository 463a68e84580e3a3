package turing

import (
	"fmt"

	"github.com/san-kum/turingmul/internal/tape"
)

// Encode lays out 1^multiplier * 1^multiplicand from cell 0 with the head on
// cell 0.
func Encode(multiplier, multiplicand int) (*tape.Tape, error) {
	if multiplier < 0 || multiplicand < 0 {
		return nil, fmt.Errorf("%w: got %d and %d", ErrInvalidInput, multiplier, multiplicand)
	}
	syms := make([]tape.Symbol, 0, multiplier+multiplicand+1)
	for i := 0; i < multiplier; i++ {
		syms = append(syms, Mark)
	}
	syms = append(syms, Separator)
	for i := 0; i < multiplicand; i++ {
		syms = append(syms, Mark)
	}
	return tape.FromSymbols(syms), nil
}

// Decode counts the marks right of the delimiter. The result segment must be
// one contiguous run of marks followed only by blanks.
func Decode(cells []tape.Cell) (int, error) {
	delim := -1
	for i, c := range cells {
		if c.Symbol != Delimiter {
			continue
		}
		if delim >= 0 {
			return 0, fmt.Errorf("%w: second delimiter at %d", ErrMalformedResult, c.Pos)
		}
		delim = i
	}
	if delim < 0 {
		return 0, fmt.Errorf("%w: no delimiter", ErrMalformedResult)
	}

	n := 0
	i := delim + 1
	for ; i < len(cells) && cells[i].Symbol == Mark; i++ {
		n++
	}
	for ; i < len(cells); i++ {
		if cells[i].Symbol != tape.Blank {
			return 0, fmt.Errorf("%w: unexpected %q at %d", ErrMalformedResult, byte(cells[i].Symbol), cells[i].Pos)
		}
	}
	return n, nil
}
