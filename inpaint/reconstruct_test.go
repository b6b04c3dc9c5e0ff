package inpaint

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReconstruct(t *testing.T) {
	var (
		negZero = math.Copysign(0, -1)
		A       = NewVector([]float64{negZero, math.NaN(), 0.1, 7}).WithAbsent([]bool{false, false, false, true})
		mask    = []bool{false, true, false, true}
		x       = []float64{100, 2.5, 100, 3.5}
	)
	R := Reconstruct(A, mask, x)
	assert.False(t, R.HasAbsence())
	assert.True(t, math.Signbit(R.AtVec(0)))
	assert.Equal(t, 2.5, R.AtVec(1))
	assert.Equal(t, 0.1, R.AtVec(2))
	assert.Equal(t, 3.5, R.AtVec(3))
	// The input is untouched
	assert.True(t, math.IsNaN(A.AtVec(1)))

	third := 1. / 3
	F := Reconstruct(NewVector([]float32{1, 0}), []bool{false, true}, []float64{0, third})
	assert.Equal(t, float32(third), F.AtVec(1))

	assert.Panics(t, func() { Reconstruct(A, mask[:2], x) })
}
