package inpaint

import "sort"

// DimensionSpec flags the cyclic axes of a grid.
type DimensionSpec [2]bool

// NewDimensionSpec validates 0-based cyclic axis numbers. Repeated axes are allowed.
func NewDimensionSpec(dims int, cycleDims []int) (ds DimensionSpec, err error) {
	for _, a := range cycleDims {
		if a < 0 || a >= dims {
			err = &InvalidCyclicAxisError{Axis: a, Dims: dims}
			return
		}
		ds[a] = true
	}
	return
}

type Neighbor struct {
	Index  int
	Weight float64
}

// NeighborFinder resolves the stencil equation centered at a coordinate into absolute
// (index, weight) pairs for one grid.
type NeighborFinder struct {
	stencil *Stencil
	shape   Shape
	cyclic  DimensionSpec
	lines   [2]*Line // border form per axis, nil when the axis is too short for any
}

func NewNeighborFinder(s *Stencil, shape Shape, cyclic DimensionSpec) (nf *NeighborFinder) {
	nf = &NeighborFinder{
		stencil: s,
		shape:   shape,
		cyclic:  cyclic,
	}
	for a := 0; a < 2; a++ {
		ext := shape.Extent[a]
		if ext < 2 {
			continue
		}
		for i := range s.Lines {
			if cyclic[a] || s.Lines[i].Span() <= ext {
				nf.lines[a] = &s.Lines[i]
				break
			}
		}
	}
	return
}

// Line returns the border form used along axis a, or nil.
func (nf *NeighborFinder) Line(a int) *Line { return nf.lines[a] }

// locate wraps cyclic axes and reports whether c lies inside the grid.
func (nf *NeighborFinder) locate(c Coord) (Coord, bool) {
	for a := 0; a < 2; a++ {
		ext := nf.shape.Extent[a]
		if nf.cyclic[a] {
			c[a] = ((c[a] % ext) + ext) % ext
			continue
		}
		if c[a] < 0 || c[a] >= ext {
			return c, false
		}
	}
	return c, true
}

// InteriorFits reports whether every interior entry centered at c lands in the grid.
func (nf *NeighborFinder) InteriorFits(c Coord) bool {
	for a := 0; a < 2; a++ {
		r := nf.stencil.reach[a]
		if nf.cyclic[a] || r == 0 {
			continue
		}
		if c[a]-r < 0 || c[a]+r >= nf.shape.Extent[a] {
			return false
		}
	}
	return true
}

func (nf *NeighborFinder) lineFits(l *Line, c Coord, a int) bool {
	if nf.cyclic[a] {
		return true
	}
	lo, hi := l.Reach()
	return c[a]+lo >= 0 && c[a]+hi < nf.shape.Extent[a]
}

// Find returns the equation centered at c, sorted by index. Away from non-cyclic edges
// this is the interior form; otherwise it is the sum of the per-axis border lines that
// fit entirely inside the grid at c, which may be empty.
func (nf *NeighborFinder) Find(c Coord) (nbrs []Neighbor) {
	if nf.InteriorFits(c) {
		return nf.translate(c, nf.stencil.Interior)
	}
	for a := 0; a < 2; a++ {
		l := nf.lines[a]
		if l == nil || !nf.lineFits(l, c, a) {
			continue
		}
		for k, o := range l.Offsets {
			cc := c
			cc[a] += o
			cc, _ = nf.locate(cc)
			nbrs = accumulate(nbrs, nf.shape.Index(cc), l.Weights[k])
		}
	}
	return finalize(nbrs)
}

// translate places relative entries around c. Callers guarantee every entry lands inside
// the grid after cyclic wrapping.
func (nf *NeighborFinder) translate(c Coord, entries []Entry) (nbrs []Neighbor) {
	nbrs = make([]Neighbor, 0, len(entries))
	for _, e := range entries {
		cc, _ := nf.locate(Coord{c[0] + e.Offset[0], c[1] + e.Offset[1]})
		nbrs = accumulate(nbrs, nf.shape.Index(cc), e.Weight)
	}
	return finalize(nbrs)
}

func accumulate(nbrs []Neighbor, ind int, w float64) []Neighbor {
	for k := range nbrs {
		if nbrs[k].Index == ind {
			nbrs[k].Weight += w
			return nbrs
		}
	}
	return append(nbrs, Neighbor{ind, w})
}

func finalize(nbrs []Neighbor) []Neighbor {
	out := nbrs[:0]
	for _, n := range nbrs {
		if n.Weight != 0 {
			out = append(out, n)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Index < out[j].Index })
	return out
}

func weightOf(nbrs []Neighbor, ind int) float64 {
	k := sort.Search(len(nbrs), func(k int) bool { return nbrs[k].Index >= ind })
	if k < len(nbrs) && nbrs[k].Index == ind {
		return nbrs[k].Weight
	}
	return 0
}
