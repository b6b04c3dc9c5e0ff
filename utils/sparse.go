package utils

import (
	"fmt"
	"sort"

	"github.com/james-bowman/sparse"
	"github.com/james-bowman/sparse/blas"
)

type CSR struct {
	M *sparse.CSR
}

// NewCSRFromRows composes a CSR matrix from per-row column and value lists. Column
// indices within a row are sorted and duplicates are summed, so rows may be produced in
// any order by independent workers.
func NewCSRFromRows(nr, nc int, cols [][]int, vals [][]float64) (R CSR) {
	if len(cols) != nr || len(vals) != nr {
		err := fmt.Errorf("mismatch in allocation: NewCSRFromRows nr = %v, len(cols) = %v, len(vals) = %v",
			nr, len(cols), len(vals))
		panic(err)
	}
	var (
		indptr = make([]int, nr+1)
		nnz    int
	)
	for i := 0; i < nr; i++ {
		if len(cols[i]) != len(vals[i]) {
			err := fmt.Errorf("length of row %d columns and values are not equal: %v, %v",
				i, len(cols[i]), len(vals[i]))
			panic(err)
		}
		nnz += len(cols[i])
	}
	ind := make([]int, 0, nnz)
	data := make([]float64, 0, nnz)
	for i := 0; i < nr; i++ {
		c, v := sortRow(cols[i], vals[i])
		for k, j := range c {
			if j < 0 || j > nc-1 {
				err := fmt.Errorf("dimension bounds error, column index out of range: row = %v, col = %v, max = %v",
					i, j, nc-1)
				panic(err)
			}
			if n := len(ind); n > indptr[i] && ind[n-1] == j {
				data[n-1] += v[k]
				continue
			}
			ind = append(ind, j)
			data = append(data, v[k])
		}
		indptr[i+1] = len(ind)
	}
	R = CSR{sparse.NewCSR(nr, nc, indptr, ind, data)}
	return
}

func sortRow(cols []int, vals []float64) (c []int, v []float64) {
	c = make([]int, len(cols))
	v = make([]float64, len(vals))
	perm := make([]int, len(cols))
	for i := range perm {
		perm[i] = i
	}
	sort.SliceStable(perm, func(a, b int) bool { return cols[perm[a]] < cols[perm[b]] })
	for i, p := range perm {
		c[i], v[i] = cols[p], vals[p]
	}
	return
}

func (m CSR) Dims() (r, c int)              { return m.M.Dims() }
func (m CSR) At(i, j int) float64           { return m.M.At(i, j) }
func (m CSR) RawMatrix() *blas.SparseMatrix { return m.M.RawMatrix() }
func (m CSR) NNZ() int                      { return m.M.NNZ() }

// Row returns views of the column indices and values stored for row i.
func (m CSR) Row(i int) (cols []int, vals []float64) {
	raw := m.RawMatrix()
	b, e := raw.Indptr[i], raw.Indptr[i+1]
	return raw.Ind[b:e], raw.Data[b:e]
}

// MulVec returns M*x.
func (m CSR) MulVec(x []float64) (y []float64) {
	var (
		nr, nc = m.Dims()
	)
	if len(x) != nc {
		err := fmt.Errorf("dimension mismatch: matrix has %v columns, vector has length %v", nc, len(x))
		panic(err)
	}
	y = make([]float64, nr)
	for i := 0; i < nr; i++ {
		cols, vals := m.Row(i)
		for k, j := range cols {
			y[i] += vals[k] * x[j]
		}
	}
	return
}
