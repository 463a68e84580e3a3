package render

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/san-kum/turingmul/internal/runner"
	"github.com/san-kum/turingmul/internal/tape"
	"github.com/san-kum/turingmul/internal/turing"
)

func TestWindow(t *testing.T) {
	cells := []tape.Cell{{Pos: -1, Symbol: tape.Blank}, {Pos: 0, Symbol: '1'}, {Pos: 1, Symbol: '*'}, {Pos: 5, Symbol: '1'}}
	got := Window(cells, 0, 2)
	want := []tape.Symbol{tape.Blank, tape.Blank, '1', '*', tape.Blank}
	if len(got) != len(want) {
		t.Fatalf("window length %d", len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("cell %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestRendererTape(t *testing.T) {
	r := New(3, false, "")
	tp := tape.FromSymbols([]tape.Symbol{'1', '1', '*', '1'})
	tp.Move(tape.Right)

	got := r.Tape(tp.Snapshot(), tp.Head())
	lines := strings.Split(got, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %q", got)
	}
	if lines[1] != "| | |1|1|*|1| |" {
		t.Errorf("tape line %q", lines[1])
	}
	if idx := strings.Index(lines[0], "v"); idx != 7 || lines[1][idx] != '1' {
		t.Errorf("marker at %d does not sit over the head cell", idx)
	}
}

func TestRendererPanel(t *testing.T) {
	m, err := turing.New(2, 1)
	if err != nil {
		t.Fatal(err)
	}
	r := New(DefaultWindow, false, "retro")

	initial := r.Panel(m)
	for _, want := range []string{"computing 2 x 1", "state   init", "step    #0"} {
		if !strings.Contains(initial, want) {
			t.Errorf("initial panel missing %q:\n%s", want, initial)
		}
	}

	m.Step()
	after := r.Panel(m)
	for _, want := range []string{"read    1", "move    R", "next    init", "step    #1"} {
		if !strings.Contains(after, want) {
			t.Errorf("panel missing %q:\n%s", want, after)
		}
	}
}

func TestRendererSummary(t *testing.T) {
	r := New(DefaultWindow, false, "")
	m, _ := turing.New(3, 4)

	if s := r.Summary(m); !strings.Contains(s, "has not halted") {
		t.Errorf("summary before run: %q", s)
	}
	if _, err := m.Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	if s := r.Summary(m); s != "computing done: 3 x 4 = 12 in 356 steps." {
		t.Errorf("summary %q", s)
	}
}

func TestPrinter(t *testing.T) {
	var buf bytes.Buffer
	m, _ := turing.New(1, 1)

	run := runner.New()
	run.AddObserver(NewPrinter(&buf, New(4, false, ""), false))
	if _, err := run.Run(context.Background(), m, runner.Config{}); err != nil {
		t.Fatal(err)
	}

	if n := strings.Count(buf.String(), "computing 1 x 1"); n != 27 {
		t.Errorf("expected 27 panels, got %d", n)
	}
	if !strings.Contains(buf.String(), "step    #26") {
		t.Error("final panel missing")
	}
}

func TestThemes(t *testing.T) {
	if GetTheme("nope").Name != "classic" {
		t.Error("unknown theme should fall back to classic")
	}
	names := ThemeNames()
	if len(names) != len(Themes) {
		t.Fatalf("ThemeNames() = %v", names)
	}
	if NextTheme(names[len(names)-1]).Name != names[0] {
		t.Error("NextTheme does not wrap")
	}
}

func TestRendererSetTheme(t *testing.T) {
	r := New(0, true, "classic")
	if r.Window != DefaultWindow {
		t.Errorf("window = %d, want default", r.Window)
	}
	r.SetTheme("minimal")
	if r.Theme.Name != "minimal" {
		t.Errorf("theme = %s", r.Theme.Name)
	}
}
