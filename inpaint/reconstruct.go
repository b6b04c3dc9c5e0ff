package inpaint

import "fmt"

// Reconstruct splices the solution into a copy of g. Known cells keep the input value
// exactly; the absence layer is dropped because every cell now holds a value.
func Reconstruct[T Number](g Grid[T], mask []bool, x []float64) (R Grid[T]) {
	if len(mask) != g.Len() || len(x) != g.Len() {
		err := fmt.Errorf("mismatch in reconstruction: grid length %v, mask length %v, solution length %v",
			g.Len(), len(mask), len(x))
		panic(err)
	}
	R = Grid[T]{shape: g.shape, data: make([]T, g.Len())}
	for i, val := range g.data {
		if mask[i] {
			R.data[i] = T(x[i])
			continue
		}
		R.data[i] = val
	}
	return
}
