package inpaint

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Number is the set of element types a Grid may hold.
type Number interface {
	constraints.Float | constraints.Integer
}

// Coord addresses a cell by (row, column). A 1D grid uses only Coord[0].
type Coord [2]int

// Shape describes a 1D or 2D grid. Storage is row-major: the linear index of (i, j) is
// i*Extent[1] + j. A 1D grid of length n has Extent (n, 1).
type Shape struct {
	Dims   int
	Extent [2]int
}

func NewShape1D(n int) Shape      { return Shape{Dims: 1, Extent: [2]int{n, 1}} }
func NewShape2D(nr, nc int) Shape { return Shape{Dims: 2, Extent: [2]int{nr, nc}} }

func (s Shape) Len() int { return s.Extent[0] * s.Extent[1] }

func (s Shape) Index(c Coord) int { return c[0]*s.Extent[1] + c[1] }

func (s Shape) Coord(ind int) (c Coord) {
	c[0] = ind / s.Extent[1]
	c[1] = ind - c[0]*s.Extent[1]
	return
}

func (s Shape) String() string {
	if s.Dims == 1 {
		return fmt.Sprintf("%d", s.Extent[0])
	}
	return fmt.Sprintf("%dx%d", s.Extent[0], s.Extent[1])
}

// Grid is a 1D or 2D array of numbers with an optional absence layer marking cells that
// hold no value at all.
type Grid[T Number] struct {
	shape  Shape
	data   []T
	absent []bool
}

func NewVector[T Number](data []T) Grid[T] {
	return Grid[T]{shape: NewShape1D(len(data)), data: data}
}

// NewMatrix wraps row-major data. A nil data slice allocates zeros.
func NewMatrix[T Number](nr, nc int, data []T) Grid[T] {
	if data == nil {
		data = make([]T, nr*nc)
	}
	if len(data) != nr*nc {
		err := fmt.Errorf("mismatch in allocation: NewMatrix nr,nc = %v,%v, len(data) = %v", nr, nc, len(data))
		panic(err)
	}
	return Grid[T]{shape: NewShape2D(nr, nc), data: data}
}

// NewMatrixFromRows copies a rectangular [][]T.
func NewMatrixFromRows[T Number](rows [][]T) (g Grid[T], err error) {
	var nr, nc = len(rows), 0
	if nr > 0 {
		nc = len(rows[0])
	}
	data := make([]T, 0, nr*nc)
	for i, row := range rows {
		if len(row) != nc {
			err = fmt.Errorf("row %d has %d columns, expected %d", i, len(row), nc)
			return
		}
		data = append(data, row...)
	}
	g = NewMatrix(nr, nc, data)
	return
}

// WithAbsent attaches an absence layer. The layer must match the grid length.
func (g Grid[T]) WithAbsent(absent []bool) Grid[T] {
	if len(absent) != len(g.data) {
		err := fmt.Errorf("mismatch in allocation: absence layer length %v, grid length %v", len(absent), len(g.data))
		panic(err)
	}
	g.absent = absent
	return g
}

func (g Grid[T]) Shape() Shape        { return g.shape }
func (g Grid[T]) Dims() int           { return g.shape.Dims }
func (g Grid[T]) Len() int            { return len(g.data) }
func (g Grid[T]) Data() []T           { return g.data }
func (g Grid[T]) HasAbsence() bool    { return g.absent != nil }
func (g Grid[T]) At(i, j int) T       { return g.data[g.shape.Index(Coord{i, j})] }
func (g Grid[T]) AtVec(i int) T       { return g.data[i] }
func (g Grid[T]) IsAbsent(i int) bool { return g.absent != nil && g.absent[i] }

func (g Grid[T]) Set(i, j int, val T) Grid[T] { // Changes receiver
	ind := g.shape.Index(Coord{i, j})
	g.data[ind] = val
	if g.absent != nil {
		g.absent[ind] = false
	}
	return g
}

func (g Grid[T]) Copy() (R Grid[T]) { // Does not change receiver
	R = Grid[T]{shape: g.shape, data: make([]T, len(g.data))}
	copy(R.data, g.data)
	if g.absent != nil {
		R.absent = make([]bool, len(g.absent))
		copy(R.absent, g.absent)
	}
	return
}

// Float64s promotes the cell values. Absent cells read as zero.
func (g Grid[T]) Float64s() (v []float64) {
	v = make([]float64, len(g.data))
	for i, val := range g.data {
		if g.IsAbsent(i) {
			continue
		}
		v[i] = float64(val)
	}
	return
}

// Promote converts the grid to float64, keeping the absence layer.
func Promote[T Number](g Grid[T]) (R Grid[float64]) {
	R = Grid[float64]{shape: g.shape, data: g.Float64s()}
	if g.absent != nil {
		R.absent = make([]bool, len(g.absent))
		copy(R.absent, g.absent)
	}
	return
}

// Rows returns a copy of the grid as a slice of rows. A 1D grid is returned as one column.
func (g Grid[T]) Rows() (rows [][]T) {
	var nr, nc = g.shape.Extent[0], g.shape.Extent[1]
	rows = make([][]T, nr)
	for i := range rows {
		rows[i] = make([]T, nc)
		copy(rows[i], g.data[i*nc:(i+1)*nc])
	}
	return
}
