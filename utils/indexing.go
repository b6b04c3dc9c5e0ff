package utils

import (
	"fmt"
)

type Index []int

// NewIndexFromMask returns the positions where mask is true (or false, when want is false).
func NewIndexFromMask(mask []bool, want bool) (I Index) {
	I = make(Index, 0, len(mask))
	for i, m := range mask {
		if m == want {
			I = append(I, i)
		}
	}
	return
}

// Inverse maps each value of I back to its position in I; positions not present are -1.
// Values must lie in [0, n).
func (I Index) Inverse(n int) (r Index, err error) {
	r = make(Index, n)
	for i := range r {
		r[i] = -1
	}
	for i, val := range I {
		switch {
		case val < 0:
			err = fmt.Errorf("dimension bounds error, index < 0: val = %v", val)
			return
		case val > n-1:
			err = fmt.Errorf("dimension bounds error, index > max: val = %v, max = %v", val, n-1)
			return
		}
		r[val] = i
	}
	return
}
