package tape

import "strings"

// Symbol is a single tape cell value.
type Symbol byte

// Blank is the implicit content of every cell that was never written.
const Blank Symbol = '_'

func (s Symbol) String() string { return string(rune(s)) }

type Direction int8

const (
	Stay Direction = iota
	Left
	Right
)

// Delta returns the head offset for one move.
func (d Direction) Delta() int {
	switch d {
	case Left:
		return -1
	case Right:
		return 1
	}
	return 0
}

func (d Direction) String() string {
	switch d {
	case Left:
		return "L"
	case Right:
		return "R"
	}
	return "N"
}

// Cell is one entry of a snapshot.
type Cell struct {
	Pos    int
	Symbol Symbol
}

// Tape is unbounded in both directions. Cells live in a sparse map keyed by
// signed position; a written Blank stays present so snapshots show every
// visited cell.
type Tape struct {
	cells  map[int]Symbol
	head   int
	lo, hi int
	counts map[Symbol]int
}

func New() *Tape {
	return &Tape{
		cells:  make(map[int]Symbol),
		counts: make(map[Symbol]int),
	}
}

// FromSymbols lays syms out on cells 0..len-1 with the head on cell 0.
func FromSymbols(syms []Symbol) *Tape {
	t := New()
	for i, s := range syms {
		t.head = i
		t.Write(s)
	}
	t.head = 0
	return t
}

func (t *Tape) Read() Symbol {
	if s, ok := t.cells[t.head]; ok {
		return s
	}
	return Blank
}

func (t *Tape) Write(s Symbol) {
	prev, ok := t.cells[t.head]
	if ok {
		t.counts[prev]--
	} else {
		if len(t.cells) == 0 {
			t.lo, t.hi = t.head, t.head
		}
		if t.head < t.lo {
			t.lo = t.head
		}
		if t.head > t.hi {
			t.hi = t.head
		}
	}
	t.cells[t.head] = s
	t.counts[s]++
}

func (t *Tape) Move(d Direction) { t.head += d.Delta() }

func (t *Tape) Head() int { return t.head }

// Count returns how many written cells currently hold s. Blank only counts
// cells that were explicitly written.
func (t *Tape) Count(s Symbol) int { return t.counts[s] }

// Bounds reports the lowest and highest written positions.
func (t *Tape) Bounds() (lo, hi int, ok bool) {
	if len(t.cells) == 0 {
		return 0, 0, false
	}
	return t.lo, t.hi, true
}

// Snapshot returns every cell between the lowest and highest written
// position in order. Holes inside that span read as Blank.
func (t *Tape) Snapshot() []Cell {
	lo, hi, ok := t.Bounds()
	if !ok {
		return []Cell{}
	}
	out := make([]Cell, 0, hi-lo+1)
	for p := lo; p <= hi; p++ {
		s, ok := t.cells[p]
		if !ok {
			s = Blank
		}
		out = append(out, Cell{Pos: p, Symbol: s})
	}
	return out
}

func (t *Tape) Clone() *Tape {
	c := &Tape{
		cells:  make(map[int]Symbol, len(t.cells)),
		counts: make(map[Symbol]int, len(t.counts)),
		head:   t.head,
		lo:     t.lo,
		hi:     t.hi,
	}
	for p, s := range t.cells {
		c.cells[p] = s
	}
	for s, n := range t.counts {
		c.counts[s] = n
	}
	return c
}

func (t *Tape) String() string {
	var b strings.Builder
	for _, c := range t.Snapshot() {
		b.WriteByte(byte(c.Symbol))
	}
	return b.String()
}
