package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/turingmul/internal/tape"
	"github.com/san-kum/turingmul/internal/turing"
)

const DefaultWindow = 15

// Renderer draws machine state as text. With Color off it emits plain
// strings, which is what pipes and tests want.
type Renderer struct {
	Window int
	Color  bool
	Theme  Theme
}

func New(window int, color bool, theme string) *Renderer {
	if window < 1 {
		window = DefaultWindow
	}
	return &Renderer{Window: window, Color: color, Theme: GetTheme(theme)}
}

func (r *Renderer) style(c lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(c)
}

func (r *Renderer) paint(s string, st lipgloss.Style) string {
	if !r.Color {
		return s
	}
	return st.Render(s)
}

func (r *Renderer) symbolColor(s tape.Symbol) lipgloss.Color {
	switch s {
	case turing.Mark:
		return r.Theme.Mark
	case turing.Separator:
		return r.Theme.Separator
	case turing.Delimiter:
		return r.Theme.Delimiter
	case turing.Consumed, turing.Copied:
		return r.Theme.Scratch
	}
	return r.Theme.Muted
}

// Window returns the 2*radius+1 symbols centered on head. Cells outside the
// written region are blank.
func Window(cells []tape.Cell, head, radius int) []tape.Symbol {
	out := make([]tape.Symbol, 2*radius+1)
	for i := range out {
		out[i] = tape.Blank
	}
	for _, c := range cells {
		i := c.Pos - head + radius
		if i >= 0 && i < len(out) {
			out[i] = c.Symbol
		}
	}
	return out
}

func glyph(s tape.Symbol) string {
	if s == tape.Blank {
		return " "
	}
	return s.String()
}

// Tape renders a head marker line above a |a|b|c| strip centered on head.
func (r *Renderer) Tape(cells []tape.Cell, head int) string {
	syms := Window(cells, head, r.Window)

	var b strings.Builder
	b.WriteString(strings.Repeat(" ", 1+2*r.Window))
	b.WriteString(r.paint("v", r.style(r.Theme.Label).Bold(true)))
	b.WriteString("\n|")
	for i, s := range syms {
		g := glyph(s)
		st := r.style(r.symbolColor(s)).Bold(s != tape.Blank)
		if i == r.Window {
			st = st.Background(r.Theme.Head)
		}
		b.WriteString(r.paint(g, st))
		b.WriteString("|")
	}
	return b.String()
}

func (r *Renderer) field(label, value string) string {
	return r.paint(fmt.Sprintf("%-7s", label), r.style(r.Theme.Label)) + " " +
		r.paint(value, r.style(r.Theme.Value).Bold(true))
}

// Panel renders the operands, last rule, step counter and tape.
func (r *Renderer) Panel(m *turing.Machine) string {
	a, b := m.Operands()

	var s strings.Builder
	s.WriteString(r.paint(fmt.Sprintf("computing %d x %d", a, b), r.style(r.Theme.Mark).Bold(true)))
	s.WriteString("\n\n")

	rule, ok := m.LastTransition()
	if ok {
		s.WriteString(r.field("state", rule.State.String()) + "\n")
		s.WriteString(r.field("read", glyph(rule.Read)) + "\n")
		s.WriteString(r.field("write", glyph(rule.Write)) + "\n")
		s.WriteString(r.field("move", rule.Move.String()) + "\n")
		s.WriteString(r.field("next", rule.Next.String()) + "\n")
	} else {
		s.WriteString(r.field("state", m.State().String()) + "\n")
		for _, l := range []string{"read", "write", "move", "next"} {
			s.WriteString(r.field(l, "") + "\n")
		}
	}

	s.WriteString("\n" + r.field("step", fmt.Sprintf("#%d", m.Steps())) + "\n\n")
	s.WriteString(r.Tape(m.Snapshot(), m.Head()))
	return s.String()
}

// Summary is the closing line of a run, or the failure that ended it.
func (r *Renderer) Summary(m *turing.Machine) string {
	a, b := m.Operands()
	if err := m.Err(); err != nil {
		return r.paint(fmt.Sprintf("computing failed: %d x %d: %v", a, b, err), r.style(r.Theme.Error).Bold(true))
	}
	p, err := m.Result()
	if err != nil {
		return r.paint(fmt.Sprintf("computing %d x %d: %v after %d steps", a, b, err, m.Steps()), r.style(r.Theme.Muted))
	}
	return r.paint(fmt.Sprintf("computing done: %d x %d = %d in %d steps.", a, b, p, m.Steps()), r.style(r.Theme.Success).Bold(true))
}
