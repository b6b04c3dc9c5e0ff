// Package inpaint fills missing entries of 1D and 2D grids by solving a discrete
// Laplacian-family equation over the unknown cells while pinning the known ones, in the
// manner of MATLAB's inpaint_nans.
package inpaint

import (
	"context"
	"log"
	"math"
	"runtime"
	"time"

	"golang.org/x/exp/constraints"

	"github.com/notargets/goinpaint/utils"
)

type Options struct {
	Method    Method
	CycleDims []int // 0-based axes that wrap around: 0 = rows, 1 = columns
	Parallel  int   // assembly workers, runtime.NumCPU() when < 1
	Verbose   bool
}

func DefaultOptions() *Options {
	return &Options{Method: DefaultMethod}
}

func (o *Options) parallelDegree() int {
	if o.Parallel < 1 {
		return runtime.NumCPU()
	}
	return o.Parallel
}

// Inpaint returns a copy of A with every cell matched by c replaced by the solution of the
// selected stencil equation. A nil opts selects DefaultOptions.
func Inpaint[T constraints.Float](A Grid[T], c Criterion[T], opts *Options) (R Grid[T], err error) {
	var (
		mask []bool
		x    []float64
	)
	if mask, err = Evaluate(A, c); err != nil {
		return
	}
	if x, err = solveMasked(A.Shape(), A.Float64s(), mask, opts); err != nil {
		return
	}
	if x == nil {
		return A.Copy(), nil
	}
	return Reconstruct(A, mask, x), nil
}

// InpaintInts evaluates c on the integer grid, then solves on the grid promoted to float64.
func InpaintInts[T constraints.Integer](A Grid[T], c Criterion[T], opts *Options) (R Grid[float64], err error) {
	var (
		mask []bool
		x    []float64
		P    = Promote(A)
	)
	if mask, err = Evaluate(A, c); err != nil {
		return
	}
	if x, err = solveMasked(A.Shape(), P.Data(), mask, opts); err != nil {
		return
	}
	if x == nil {
		return P, nil
	}
	return Reconstruct(P, mask, x), nil
}

// Fill inpaints absent cells when A carries an absence layer, NaN cells otherwise.
func Fill[T constraints.Float](A Grid[T], opts *Options) (Grid[T], error) {
	if A.HasAbsence() {
		return Inpaint(A, Absent[T](), opts)
	}
	return Inpaint(A, Sentinel(T(math.NaN())), opts)
}

// FillValue inpaints cells equal to value, which may be NaN.
func FillValue[T constraints.Float](A Grid[T], value T, opts *Options) (Grid[T], error) {
	return Inpaint(A, Sentinel(value), opts)
}

// FillFunc inpaints cells for which f returns true.
func FillFunc[T constraints.Float](f func(T) bool, A Grid[T], opts *Options) (Grid[T], error) {
	return Inpaint(A, Predicate(f), opts)
}

// solveMasked returns the full solution vector, or nil when no cell is masked.
func solveMasked(shape Shape, values []float64, mask []bool, opts *Options) (x []float64, err error) {
	var (
		s        *Stencil
		ds       DimensionSpec
		sys      *LinearSystem
		sol      *Solution
		nUnknown int
	)
	if opts == nil {
		opts = DefaultOptions()
	}
	if s, err = Lookup(opts.Method, shape.Dims); err != nil {
		return
	}
	if ds, err = NewDimensionSpec(shape.Dims, opts.CycleDims); err != nil {
		return
	}
	for _, m := range mask {
		if m {
			nUnknown++
		}
	}
	switch {
	case nUnknown == 0:
		return
	case nUnknown == len(mask):
		err = &DegenerateStencilError{Shape: shape, Method: opts.Method,
			Reason: "no known cells to anchor the solution"}
		return
	}
	start := time.Now()
	as := NewAssembler(s, shape, ds, values, mask)
	if sys, err = as.Assemble(context.Background(), opts.parallelDegree()); err != nil {
		return
	}
	assembled := time.Now()
	if sol, err = Solve(sys); err != nil {
		return
	}
	if opts.Verbose {
		log.Printf("inpaint: %s grid, method %d, %d unknowns, %d nonzeros", shape, int(opts.Method), nUnknown, sys.M.NNZ())
		log.Printf("inpaint: assembly %v, %s solve %v, bandwidth %d, residual %8.3e",
			assembled.Sub(start), sol.Path, time.Since(assembled), sol.Bandwidth, sol.Residual)
		log.Printf("inpaint: %s", utils.GetMemUsage())
	}
	x = sol.X
	return
}
