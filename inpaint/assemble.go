package inpaint

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/notargets/goinpaint/utils"
)

// LinearSystem is M x = b with one row per grid cell, in the grid's row-major order.
// Pinned rows are identity constraints for known cells.
type LinearSystem struct {
	M      utils.CSR
	B      []float64
	Pinned []bool
	Shape  Shape
}

type Assembler struct {
	stencil *Stencil
	finder  *NeighborFinder
	shape   Shape
	cyclic  DimensionSpec
	values  []float64
	mask    []bool
	box     Coord // reach of every stencil form along each axis
}

func NewAssembler(s *Stencil, shape Shape, cyclic DimensionSpec, values []float64, mask []bool) (as *Assembler) {
	as = &Assembler{
		stencil: s,
		finder:  NewNeighborFinder(s, shape, cyclic),
		shape:   shape,
		cyclic:  cyclic,
		values:  values,
		mask:    mask,
		box:     s.reach,
	}
	for a := 0; a < 2; a++ {
		if l := as.finder.lines[a]; l != nil {
			lo, hi := l.Reach()
			as.box[a] = max(as.box[a], -lo, hi)
		}
	}
	return
}

// Assemble builds the system over ParallelDegree row partitions. Each worker writes only
// the rows of its own partition.
func (as *Assembler) Assemble(ctx context.Context, ParallelDegree int) (sys *LinearSystem, err error) {
	var (
		N    = as.shape.Len()
		cols = make([][]int, N)
		vals = make([][]float64, N)
		B    = make([]float64, N)
		pm   = utils.NewPartitionMap(ParallelDegree, N)
	)
	g, gctx := errgroup.WithContext(ctx)
	for np := 0; np < pm.ParallelDegree; np++ {
		if pm.GetBucketDimension(np) == 0 {
			continue
		}
		kMin, kMax := pm.GetBucketRange(np)
		g.Go(func() error {
			for i := kMin; i < kMax; i++ {
				if (i-kMin)%256 == 0 {
					if err := gctx.Err(); err != nil {
						return err
					}
				}
				if !as.mask[i] {
					cols[i], vals[i] = []int{i}, []float64{1}
					B[i] = as.values[i]
					continue
				}
				row, err := as.UnknownRow(i)
				if err != nil {
					return err
				}
				cols[i], vals[i] = make([]int, len(row)), make([]float64, len(row))
				for k, n := range row {
					cols[i][k], vals[i][k] = n.Index, n.Weight
				}
			}
			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return
	}
	pinned := make([]bool, N)
	for i, m := range as.mask {
		pinned[i] = !m
	}
	sys = &LinearSystem{
		M:      utils.NewCSRFromRows(N, N, cols, vals),
		B:      B,
		Pinned: pinned,
		Shape:  as.shape,
	}
	return
}

// UnknownRow returns the normal-equation row of unknown cell i: the sum over every
// equation center e that references i of L[e,i] * L[e,:].
func (as *Assembler) UnknownRow(i int) (row []Neighbor, err error) {
	c := as.shape.Coord(i)
	if as.composedFits(c) {
		row = as.finder.translate(c, as.stencil.Composed)
	} else {
		seen := make(map[int]bool)
		for d0 := -as.box[0]; d0 <= as.box[0]; d0++ {
			for d1 := -as.box[1]; d1 <= as.box[1]; d1++ {
				e, ok := as.finder.locate(Coord{c[0] - d0, c[1] - d1})
				if !ok {
					continue
				}
				ind := as.shape.Index(e)
				if seen[ind] {
					continue
				}
				seen[ind] = true
				eq := as.finder.Find(e)
				w := weightOf(eq, i)
				if w == 0 {
					continue
				}
				for _, n := range eq {
					row = accumulate(row, n.Index, w*n.Weight)
				}
			}
		}
		row = finalize(row)
	}
	// Every equation sums to zero, so a row with a nonzero diagonal always couples to
	// another cell
	if len(row) == 0 || weightOf(row, i) == 0 {
		err = &DegenerateStencilError{Coord: c, Shape: as.shape, Method: as.stencil.Method,
			Reason: "no stencil equation reaches this cell"}
	}
	return
}

// composedFits reports whether every equation reaching c uses the interior form, so the
// precomputed composed row applies.
func (as *Assembler) composedFits(c Coord) bool {
	for a := 0; a < 2; a++ {
		r := as.stencil.reach[a]
		if as.cyclic[a] || r == 0 {
			continue
		}
		if c[a]-2*r < 0 || c[a]+2*r >= as.shape.Extent[a] {
			return false
		}
	}
	return true
}
