package render

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"

	"github.com/san-kum/turingmul/internal/runner"
	"github.com/san-kum/turingmul/internal/turing"
)

// Printer is a runner.Observer that writes a panel after every step,
// optionally clearing the screen first.
type Printer struct {
	w     io.Writer
	r     *Renderer
	clear bool
	out   *termenv.Output
}

func NewPrinter(w io.Writer, r *Renderer, clear bool) *Printer {
	return &Printer{
		w:     w,
		r:     r,
		clear: clear,
		out:   termenv.NewOutput(w),
	}
}

func (p *Printer) OnStep(m *turing.Machine, f runner.Frame) {
	if p.clear {
		p.out.ClearScreen()
	} else if f.Step > 0 {
		fmt.Fprintln(p.w)
	}
	fmt.Fprintln(p.w, p.r.Panel(m))
}
