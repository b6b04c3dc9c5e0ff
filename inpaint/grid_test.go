package inpaint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShape(t *testing.T) {
	{
		s := NewShape2D(3, 4)
		assert.Equal(t, 12, s.Len())
		assert.Equal(t, "3x4", s.String())
		for ind := 0; ind < s.Len(); ind++ {
			assert.Equal(t, ind, s.Index(s.Coord(ind)))
		}
		assert.Equal(t, Coord{1, 2}, s.Coord(6))
		assert.Equal(t, 11, s.Index(Coord{2, 3}))
	}
	{
		s := NewShape1D(5)
		assert.Equal(t, 5, s.Len())
		assert.Equal(t, "5", s.String())
		assert.Equal(t, Coord{3, 0}, s.Coord(3))
	}
}

func TestGrid(t *testing.T) {
	A := NewMatrix(2, 3, []float64{1, 2, 3, 4, 5, 6})
	assert.Equal(t, 2, A.Dims())
	assert.Equal(t, 6., A.At(1, 2))
	assert.Equal(t, 4., A.AtVec(3))
	assert.Equal(t, [][]float64{{1, 2, 3}, {4, 5, 6}}, A.Rows())

	B := A.Copy()
	B.Set(0, 0, -1)
	assert.Equal(t, 1., A.At(0, 0))
	assert.Equal(t, -1., B.At(0, 0))

	assert.Panics(t, func() { NewMatrix(2, 2, []float64{1, 2, 3}) })
	assert.Equal(t, make([]int, 6), NewMatrix[int](2, 3, nil).Data())

	V := NewVector([]int{7, 8, 9})
	assert.Equal(t, 1, V.Dims())
	assert.Equal(t, [][]int{{7}, {8}, {9}}, V.Rows())
}

func TestGridFromRows(t *testing.T) {
	A, err := NewMatrixFromRows([][]float32{{1, 2}, {3, 4}, {5, 6}})
	require.NoError(t, err)
	assert.Equal(t, NewShape2D(3, 2), A.Shape())
	assert.Equal(t, float32(5), A.At(2, 0))

	_, err = NewMatrixFromRows([][]float32{{1, 2}, {3}})
	assert.Error(t, err)
}

func TestGridAbsence(t *testing.T) {
	A := NewVector([]float64{1, 2, 3}).WithAbsent([]bool{false, true, false})
	assert.True(t, A.HasAbsence())
	assert.True(t, A.IsAbsent(1))
	assert.False(t, A.IsAbsent(0))
	assert.Equal(t, []float64{1, 0, 3}, A.Float64s())

	C := A.Copy()
	C.Set(1, 0, 5)
	assert.False(t, C.IsAbsent(1))
	assert.True(t, A.IsAbsent(1))

	P := Promote(NewVector([]int16{4, 5}).WithAbsent([]bool{true, false}))
	assert.Equal(t, []float64{0, 5}, P.Data())
	assert.True(t, P.IsAbsent(0))

	assert.Panics(t, func() { NewVector([]float64{1}).WithAbsent([]bool{true, false}) })
}
