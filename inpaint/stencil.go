package inpaint

import (
	"fmt"
	"sort"
	"strings"
)

type Method int

const (
	MethodDiffusion  Method = 0 // Laplacian, historically the vector method
	MethodLaplacian  Method = 1 // Laplacian, historically the matrix method
	MethodBiharmonic Method = 3
	MethodDiagonal   Method = 6 // nine point Laplacian with diagonal coupling

	DefaultMethod = MethodLaplacian
)

// Entry is one weighted offset of a stencil, in (row, column) order.
type Entry struct {
	Offset Coord
	Weight float64
}

// Line is a one dimensional difference operator applied along a single axis.
type Line struct {
	Offsets []int
	Weights []float64
}

func (l Line) Reach() (lo, hi int) {
	for _, o := range l.Offsets {
		lo, hi = min(lo, o), max(hi, o)
	}
	return
}

func (l Line) Span() int {
	lo, hi := l.Reach()
	return hi - lo + 1
}

// Stencil is an immutable catalog entry. Interior is the full form used away from
// non-cyclic edges; Lines are the border forms, ordered from highest to lowest order.
type Stencil struct {
	Method   Method
	Dims     int
	Interior []Entry
	Lines    []Line
	// Composed is the row of the normal equations for a cell whose every reaching
	// equation uses the interior form: sum over o,p of w(o)*w(p) at offset p-o.
	Composed []Entry
	reach    Coord
}

var (
	secondDifference = Line{Offsets: []int{-1, 0, 1}, Weights: []float64{1, -2, 1}}
	fourthDifference = Line{Offsets: []int{-2, -1, 0, 1, 2}, Weights: []float64{1, -4, 6, -4, 1}}
	firstDifference  = Line{Offsets: []int{0, 1}, Weights: []float64{-1, 1}}
)

type catalogKey struct {
	method Method
	dims   int
}

var catalog = map[catalogKey]*Stencil{}

func init() {
	var (
		laplaceLines = []Line{secondDifference, firstDifference}
		cross        = []Entry{
			{Coord{0, 0}, -4},
			{Coord{-1, 0}, 1}, {Coord{1, 0}, 1},
			{Coord{0, -1}, 1}, {Coord{0, 1}, 1},
		}
		biharmonic = []Entry{
			{Coord{0, 0}, 20},
			{Coord{-1, 0}, -8}, {Coord{1, 0}, -8}, {Coord{0, -1}, -8}, {Coord{0, 1}, -8},
			{Coord{-2, 0}, 1}, {Coord{2, 0}, 1}, {Coord{0, -2}, 1}, {Coord{0, 2}, 1},
			{Coord{-1, -1}, 2}, {Coord{-1, 1}, 2}, {Coord{1, -1}, 2}, {Coord{1, 1}, 2},
		}
		ninePoint = []Entry{
			{Coord{0, 0}, -20. / 6},
			{Coord{-1, 0}, 4. / 6}, {Coord{1, 0}, 4. / 6}, {Coord{0, -1}, 4. / 6}, {Coord{0, 1}, 4. / 6},
			{Coord{-1, -1}, 1. / 6}, {Coord{-1, 1}, 1. / 6}, {Coord{1, -1}, 1. / 6}, {Coord{1, 1}, 1. / 6},
		}
	)
	for _, m := range []Method{MethodDiffusion, MethodLaplacian} {
		register(m, 1, lineEntries(secondDifference), laplaceLines)
		register(m, 2, cross, laplaceLines)
	}
	register(MethodBiharmonic, 1, lineEntries(fourthDifference), []Line{fourthDifference, secondDifference})
	register(MethodBiharmonic, 2, biharmonic, []Line{fourthDifference, secondDifference})
	register(MethodDiagonal, 1, lineEntries(secondDifference), laplaceLines)
	register(MethodDiagonal, 2, ninePoint, laplaceLines)
}

func register(method Method, dims int, interior []Entry, lines []Line) {
	s := &Stencil{
		Method:   method,
		Dims:     dims,
		Interior: interior,
		Lines:    lines,
	}
	for _, e := range interior {
		for a := 0; a < 2; a++ {
			s.reach[a] = max(s.reach[a], abs(e.Offset[a]))
		}
	}
	acc := make(map[Coord]float64)
	for _, o := range interior {
		for _, p := range interior {
			acc[Coord{p.Offset[0] - o.Offset[0], p.Offset[1] - o.Offset[1]}] += o.Weight * p.Weight
		}
	}
	for off, w := range acc {
		if w != 0 {
			s.Composed = append(s.Composed, Entry{off, w})
		}
	}
	sort.Slice(s.Composed, func(i, j int) bool {
		a, b := s.Composed[i].Offset, s.Composed[j].Offset
		return a[0] < b[0] || (a[0] == b[0] && a[1] < b[1])
	})
	catalog[catalogKey{method, dims}] = s
}

func lineEntries(l Line) (entries []Entry) {
	entries = make([]Entry, len(l.Offsets))
	for i, o := range l.Offsets {
		entries[i] = Entry{Coord{o, 0}, l.Weights[i]}
	}
	return
}

// Lookup returns the catalog stencil for a method and dimensionality.
func Lookup(method Method, dims int) (s *Stencil, err error) {
	var ok bool
	if s, ok = catalog[catalogKey{method, dims}]; !ok {
		err = &UnknownMethodError{Method: method, Dims: dims}
	}
	return
}

// Reach is the largest interior offset magnitude along each axis.
func (s *Stencil) Reach() Coord { return s.reach }

func (s *Stencil) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Method %d, %dD\n", int(s.Method), s.Dims)
	fmt.Fprintf(&b, "Interior:\n")
	for _, e := range s.Interior {
		if s.Dims == 1 {
			fmt.Fprintf(&b, "  [%2d]     %10.5f\n", e.Offset[0], e.Weight)
		} else {
			fmt.Fprintf(&b, "  [%2d,%2d]  %10.5f\n", e.Offset[0], e.Offset[1], e.Weight)
		}
	}
	fmt.Fprintf(&b, "Border lines:\n")
	for _, l := range s.Lines {
		fmt.Fprintf(&b, "  offsets %v weights %v\n", l.Offsets, l.Weights)
	}
	return b.String()
}

func abs(i int) int {
	if i < 0 {
		return -i
	}
	return i
}
