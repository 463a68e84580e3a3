// Package turing implements a deterministic single-tape Turing machine that
// multiplies two non-negative integers in unary.
//
// The package is built from a few small pieces:
//
//   - [Table]: immutable (state, symbol) -> (state, symbol, direction) rules
//   - [Multiplication]: the fixed repeated-addition program
//   - [Machine]: owns a tape, the current state and a step counter
//   - [Encode] and [Decode]: convert operands to a tape and the halted tape
//     back to the product
//
// # Example
//
//	m, err := turing.New(3, 4)
//	if err != nil {
//		return err
//	}
//	if _, err := m.Run(ctx); err != nil {
//		return err
//	}
//	product, _ := m.Result() // 12
//
// # Tape layout
//
// The initial tape is 1^a * 1^b with the head on the first cell. The program
// appends a '=' delimiter after the multiplicand and, for every multiplier
// mark, copies the multiplicand past the delimiter. The product is the run
// of marks right of '='.
//
// # Thread Safety
//
// A Machine is NOT thread-safe and is meant to be driven by one goroutine.
// The shared multiplication [Table] is read-only and may be used by any
// number of machines concurrently.
package turing
