package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/turingmul/internal/render"
	"github.com/san-kum/turingmul/internal/turing"
)

const (
	minDelay        = 5 * time.Millisecond
	maxDelay        = 2 * time.Second
	historyCapacity = 200
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	graphStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
)

type Options struct {
	Window int
	Theme  string
	Delay  time.Duration
	Color  bool
}

// Model steps a single machine under keyboard control.
type Model struct {
	build   func() (*turing.Machine, error)
	machine *turing.Machine
	r       *render.Renderer

	playing bool
	delay   time.Duration
	gen     int
	history []float64
	err     error

	width  int
	height int
}

func New(multiplier, multiplicand int, opts Options) (Model, error) {
	return newModel(func() (*turing.Machine, error) {
		return turing.New(multiplier, multiplicand)
	}, opts)
}

func newModel(build func() (*turing.Machine, error), opts Options) (Model, error) {
	if opts.Delay <= 0 {
		opts.Delay = 100 * time.Millisecond
	}
	m := Model{
		build:  build,
		r:      render.New(opts.Window, opts.Color, opts.Theme),
		delay:  clampDelay(opts.Delay),
		width:  80,
		height: 24,
	}
	if err := m.reset(); err != nil {
		return Model{}, err
	}
	return m, nil
}

// Run blocks until the user quits or ctx is cancelled.
func Run(ctx context.Context, m Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

func (m *Model) reset() error {
	mc, err := m.build()
	if err != nil {
		return err
	}
	m.machine = mc
	m.playing = false
	m.gen++
	m.err = nil
	m.history = []float64{float64(mc.Head())}
	return nil
}

func clampDelay(d time.Duration) time.Duration {
	return min(max(d, minDelay), maxDelay)
}

func (m Model) Machine() *turing.Machine { return m.machine }
func (m Model) Playing() bool            { return m.playing }
func (m Model) Delay() time.Duration     { return m.delay }
func (m Model) Theme() string            { return m.r.Theme.Name }

func (m Model) done() bool {
	return m.machine.Halted() || m.machine.Err() != nil
}

type tickMsg struct{ gen int }

func tick(d time.Duration, gen int) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return tickMsg{gen: gen} })
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tickMsg:
		// stale ticks from an earlier play/pause cycle
		if msg.gen != m.gen || !m.playing {
			return m, nil
		}
		m.step()
		if m.done() {
			m.playing = false
			return m, nil
		}
		return m, tick(m.delay, m.gen)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "n", "enter", "right":
		if !m.playing {
			m.step()
		}
	case " ":
		if m.done() {
			return m, nil
		}
		m.playing = !m.playing
		m.gen++
		if m.playing {
			return m, tick(m.delay, m.gen)
		}
	case "+", "=":
		m.delay = clampDelay(m.delay / 2)
	case "-", "_":
		m.delay = clampDelay(m.delay * 2)
	case "r":
		if err := m.reset(); err != nil {
			m.err = err
		}
		return m, tea.ClearScreen
	case "t":
		m.r.SetTheme(render.NextTheme(m.r.Theme.Name).Name)
	}
	return m, nil
}

func (m *Model) step() {
	if m.done() {
		return
	}
	if _, err := m.machine.Step(); err != nil {
		m.err = err
		return
	}
	m.history = append(m.history, float64(m.machine.Head()))
	if len(m.history) > historyCapacity {
		m.history = m.history[len(m.history)-historyCapacity:]
	}
}

func (m Model) View() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("turingmul") + "\n\n")
	s.WriteString(m.r.Panel(m.machine) + "\n\n")

	if len(m.history) > 1 {
		w := min(60, max(10, m.width-12))
		chart := asciigraph.Plot(m.history,
			asciigraph.Height(5), asciigraph.Width(w), asciigraph.Caption("head position"))
		s.WriteString(graphStyle.Render(chart) + "\n\n")
	}

	switch {
	case m.err != nil && m.machine.Err() == nil:
		s.WriteString(fmt.Sprintf("error: %v\n", m.err))
	case m.done():
		s.WriteString(m.r.Summary(m.machine) + "\n")
	default:
		status := "paused"
		if m.playing {
			status = "playing"
		}
		s.WriteString(fmt.Sprintf("%s  delay %s  theme %s\n", status, m.delay, m.r.Theme.Name))
	}

	s.WriteString("\n" + helpStyle.Render("n/enter step  space play  +/- speed  r reset  t theme  q quit"))
	return s.String()
}
