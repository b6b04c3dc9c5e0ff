package inpaint

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluate(t *testing.T) {
	nan := math.NaN()
	A := NewVector([]float64{1, nan, 999, 4, nan})
	{
		mask, err := Evaluate(A, Sentinel(nan))
		require.NoError(t, err)
		assert.Equal(t, []bool{false, true, false, false, true}, mask)
	}
	{
		mask, err := Evaluate(A, Sentinel(999.))
		require.NoError(t, err)
		assert.Equal(t, []bool{false, false, true, false, false}, mask)
	}
	{
		mask, err := Evaluate(A, Predicate(func(x float64) bool { return x > 3 }))
		require.NoError(t, err)
		assert.Equal(t, []bool{false, false, true, true, false}, mask)
	}
	{
		I := NewMatrix(2, 2, []int{-1, 0, 3, -1})
		mask, err := Evaluate(I, Sentinel(-1))
		require.NoError(t, err)
		assert.Equal(t, []bool{true, false, false, true}, mask)
	}
}

func TestEvaluateAbsence(t *testing.T) {
	A := NewVector([]float64{1, 2, 3, 4}).WithAbsent([]bool{false, true, false, false})
	mask, err := Evaluate(A, Absent[float64]())
	require.NoError(t, err)
	assert.Equal(t, []bool{false, true, false, false}, mask)

	// Absent cells are missing under every criterion
	mask, err = Evaluate(A, Sentinel(4.))
	require.NoError(t, err)
	assert.Equal(t, []bool{false, true, false, true}, mask)
}

func TestEvaluateInvalid(t *testing.T) {
	var cErr *InvalidCriterionError
	A := NewVector([]float64{1, 2})

	_, err := Evaluate(A, Absent[float64]())
	require.True(t, errors.As(err, &cErr))
	assert.Equal(t, ByAbsence, cErr.Kind)

	_, err = Evaluate(A, Predicate[float64](nil))
	require.True(t, errors.As(err, &cErr))
	assert.Equal(t, ByPredicate, cErr.Kind)

	_, err = Evaluate(A, Criterion[float64]{Kind: CriterionKind(9)})
	require.True(t, errors.As(err, &cErr))
	assert.Equal(t, "CriterionKind(9)", cErr.Kind.String())
}
