package inpaint

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDimensionSpec(t *testing.T) {
	ds, err := NewDimensionSpec(2, []int{1, 1})
	require.NoError(t, err)
	assert.Equal(t, DimensionSpec{false, true}, ds)

	var aErr *InvalidCyclicAxisError
	_, err = NewDimensionSpec(1, []int{1})
	require.True(t, errors.As(err, &aErr))
	assert.Equal(t, 1, aErr.Axis)
	assert.Equal(t, 1, aErr.Dims)
	_, err = NewDimensionSpec(2, []int{-1})
	assert.True(t, errors.As(err, &aErr))
}

func TestNeighborFinderLaplacian(t *testing.T) {
	var (
		s, _  = Lookup(MethodLaplacian, 2)
		shape = NewShape2D(5, 5)
		nf    = NewNeighborFinder(s, shape, DimensionSpec{})
		ind   = func(i, j int) int { return shape.Index(Coord{i, j}) }
	)
	assert.Equal(t, []Neighbor{
		{ind(1, 2), 1}, {ind(2, 1), 1}, {ind(2, 2), -4}, {ind(2, 3), 1}, {ind(3, 2), 1},
	}, nf.Find(Coord{2, 2}))
	// Top edge: only the row-wise second difference fits
	assert.Equal(t, []Neighbor{
		{ind(0, 1), 1}, {ind(0, 2), -2}, {ind(0, 3), 1},
	}, nf.Find(Coord{0, 2}))
	// Corners carry no equation
	assert.Empty(t, nf.Find(Coord{0, 0}))
	assert.Empty(t, nf.Find(Coord{4, 4}))
}

func TestNeighborFinderCyclic(t *testing.T) {
	var (
		s, _  = Lookup(MethodLaplacian, 2)
		shape = NewShape2D(5, 5)
		nf    = NewNeighborFinder(s, shape, DimensionSpec{false, true})
		ind   = func(i, j int) int { return shape.Index(Coord{i, j}) }
	)
	assert.True(t, nf.InteriorFits(Coord{2, 0}))
	assert.False(t, nf.InteriorFits(Coord{0, 2}))
	assert.Equal(t, []Neighbor{
		{ind(1, 0), 1}, {ind(2, 0), -4}, {ind(2, 1), 1}, {ind(2, 4), 1}, {ind(3, 0), 1},
	}, nf.Find(Coord{2, 0}))
	// The row-wise difference at a corner wraps around the columns
	assert.Equal(t, []Neighbor{
		{ind(0, 0), -2}, {ind(0, 1), 1}, {ind(0, 4), 1},
	}, nf.Find(Coord{0, 0}))
}

func TestNeighborFinderLineSelection(t *testing.T) {
	s, _ := Lookup(MethodLaplacian, 2)
	nf := NewNeighborFinder(s, NewShape2D(2, 1), DimensionSpec{})
	require.NotNil(t, nf.Line(0))
	assert.Equal(t, firstDifference.Weights, nf.Line(0).Weights)
	assert.Nil(t, nf.Line(1))

	s, _ = Lookup(MethodBiharmonic, 2)
	nf = NewNeighborFinder(s, NewShape2D(4, 2), DimensionSpec{false, true})
	assert.Equal(t, secondDifference.Weights, nf.Line(0).Weights)
	assert.Equal(t, fourthDifference.Weights, nf.Line(1).Weights)
	// Two adjacent cells have no second difference
	assert.Empty(t, NewNeighborFinder(s, NewShape1D(2), DimensionSpec{}).Find(Coord{0, 0}))
}

func TestNeighborFinderInBounds(t *testing.T) {
	shapes := []Shape{NewShape1D(1), NewShape1D(2), NewShape1D(7), NewShape2D(1, 6),
		NewShape2D(2, 2), NewShape2D(3, 5), NewShape2D(6, 6)}
	cyclics := []DimensionSpec{{}, {true, false}, {false, true}, {true, true}}
	for _, m := range []Method{MethodLaplacian, MethodBiharmonic, MethodDiagonal} {
		for _, shape := range shapes {
			s, err := Lookup(m, shape.Dims)
			require.NoError(t, err)
			for _, cyc := range cyclics {
				if shape.Dims == 1 && cyc[1] {
					continue
				}
				nf := NewNeighborFinder(s, shape, cyc)
				for i := 0; i < shape.Len(); i++ {
					nbrs := nf.Find(shape.Coord(i))
					var sum float64
					for k, n := range nbrs {
						assert.True(t, n.Index >= 0 && n.Index < shape.Len())
						if k > 0 {
							assert.Less(t, nbrs[k-1].Index, n.Index)
						}
						sum += n.Weight
					}
					assert.InDelta(t, 0., sum, 1.e-12)
				}
			}
		}
	}
}
