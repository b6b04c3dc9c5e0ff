package inpaint

import "fmt"

// InvalidCriterionError reports a missingness criterion that cannot be evaluated against
// the grid.
type InvalidCriterionError struct {
	Kind   CriterionKind
	Reason string
}

func (e *InvalidCriterionError) Error() string {
	return fmt.Sprintf("inpaint: invalid criterion %s: %s", e.Kind, e.Reason)
}

// UnknownMethodError reports a stencil method or dimensionality missing from the catalog.
type UnknownMethodError struct {
	Method Method
	Dims   int
}

func (e *UnknownMethodError) Error() string {
	return fmt.Sprintf("inpaint: no stencil for method %d in %dD (known methods: 0, 1, 3, 6 in 1D and 2D)",
		int(e.Method), e.Dims)
}

// DegenerateStencilError reports an unknown cell that no stencil equation reaches, or a
// system with no known cell to anchor it.
type DegenerateStencilError struct {
	Coord  Coord
	Shape  Shape
	Method Method
	Reason string
}

func (e *DegenerateStencilError) Error() string {
	return fmt.Sprintf("inpaint: degenerate stencil for method %d at cell %v of %s grid: %s",
		int(e.Method), e.Coord, e.Shape, e.Reason)
}

// InvalidCyclicAxisError reports a cyclic axis number outside [0, dims).
type InvalidCyclicAxisError struct {
	Axis int
	Dims int
}

func (e *InvalidCyclicAxisError) Error() string {
	return fmt.Sprintf("inpaint: cyclic axis %d out of range for %dD grid (valid axes: 0..%d)",
		e.Axis, e.Dims, e.Dims-1)
}

// SingularSystemError reports that neither the direct nor the least-squares solve produced
// a finite solution.
type SingularSystemError struct {
	Size   int
	Reason string
}

func (e *SingularSystemError) Error() string {
	return fmt.Sprintf("inpaint: singular system of %d unknowns: %s", e.Size, e.Reason)
}
