package inpaint

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/notargets/goinpaint/utils"
)

type SolvePath uint8

const (
	PathNone SolvePath = iota // every row pinned
	PathCholesky
	PathLU
	PathLeastSquares
)

func (p SolvePath) String() string {
	switch p {
	case PathNone:
		return "none"
	case PathCholesky:
		return "cholesky"
	case PathLU:
		return "lu"
	case PathLeastSquares:
		return "least-squares"
	}
	return fmt.Sprintf("SolvePath(%d)", uint8(p))
}

const (
	conditionLimit = 1.e14
	rankTolerance  = 1.e-12
)

type Solution struct {
	X         []float64
	Path      SolvePath
	Residual  float64 // 2-norm of M x - b
	Bandwidth int     // half bandwidth of the unknown block
}

// Solve eliminates the pinned identity rows and factors the remaining unknown block as a
// symmetric band matrix. Blocks that are not symmetric positive definite fall back to a
// dense LU solve, then to an SVD least-squares solve when the block is singular.
func Solve(sys *LinearSystem) (sol *Solution, err error) {
	var (
		N         = len(sys.B)
		unknown   = utils.NewIndexFromMask(sys.Pinned, false)
		n         = len(unknown)
		pos       utils.Index
		x         = make([]float64, N)
		blk       *reducedBlock
		xu        *mat.VecDense
		path      SolvePath
		directErr error
		symmetric bool
	)
	if pos, err = unknown.Inverse(N); err != nil {
		return
	}
	for i := 0; i < N; i++ {
		if !sys.Pinned[i] {
			continue
		}
		if d := sys.M.At(i, i); d != 0 {
			x[i] = sys.B[i] / d
		}
	}
	sol = &Solution{X: x}
	if n == 0 {
		return
	}
	blk = newReducedBlock(sys, unknown, pos, x)
	xu = mat.NewVecDense(n, nil)
	if symmetric = blk.symmetric(); symmetric {
		path, directErr = solveBandCholesky(blk.symBand(), blk.rhs, xu)
	}
	if !symmetric || directErr != nil {
		A := blk.dense()
		if path, directErr = solveLU(A, blk.rhs, xu); directErr != nil {
			if path, err = solveLeastSquares(A, blk.rhs, xu); err != nil {
				err = &SingularSystemError{Size: n, Reason: fmt.Sprintf("%v; %v", directErr, err)}
				sol = nil
				return
			}
		}
	}
	for k, i := range unknown {
		x[i] = xu.AtVec(k)
	}
	if !utils.IsFinite(x) {
		err = &SingularSystemError{Size: n, Reason: "solution is not finite"}
		sol = nil
		return
	}
	sol.Path = path
	sol.Bandwidth = blk.bandwidth
	r := sys.M.MulVec(x)
	floats.Sub(r, sys.B)
	sol.Residual = floats.Norm(r, 2)
	return
}

// reducedBlock is the unknown by unknown part of the system in sparse row form, with the
// pinned columns moved to the right hand side. Columns are positions in the unknown index.
type reducedBlock struct {
	n         int
	cols      [][]int
	vals      [][]float64
	rhs       *mat.VecDense
	bandwidth int
}

func newReducedBlock(sys *LinearSystem, unknown, pos utils.Index, x []float64) (blk *reducedBlock) {
	n := len(unknown)
	blk = &reducedBlock{
		n:    n,
		cols: make([][]int, n),
		vals: make([][]float64, n),
		rhs:  mat.NewVecDense(n, nil),
	}
	for k, i := range unknown {
		b := sys.B[i]
		cols, vals := sys.M.Row(i)
		for kk, j := range cols {
			p := pos[j]
			if p < 0 {
				b -= vals[kk] * x[j]
				continue
			}
			// Row columns are sorted and pos is increasing, so p stays sorted
			blk.cols[k] = append(blk.cols[k], p)
			blk.vals[k] = append(blk.vals[k], vals[kk])
			blk.bandwidth = max(blk.bandwidth, abs(p-k))
		}
		blk.rhs.SetVec(k, b)
	}
	return
}

func (blk *reducedBlock) at(k, p int) float64 {
	cols := blk.cols[k]
	if kk := sort.SearchInts(cols, p); kk < len(cols) && cols[kk] == p {
		return blk.vals[k][kk]
	}
	return 0
}

func (blk *reducedBlock) symmetric() bool {
	for k := 0; k < blk.n; k++ {
		for kk, p := range blk.cols[k] {
			if p <= k {
				continue
			}
			a, b := blk.vals[k][kk], blk.at(p, k)
			if math.Abs(a-b) > utils.NODETOL*math.Max(1, math.Max(math.Abs(a), math.Abs(b))) {
				return false
			}
		}
	}
	return true
}

// symBand stores the upper triangle within the half bandwidth.
func (blk *reducedBlock) symBand() (S *mat.SymBandDense) {
	S = mat.NewSymBandDense(blk.n, blk.bandwidth, nil)
	for k := 0; k < blk.n; k++ {
		for kk, p := range blk.cols[k] {
			if p >= k {
				S.SetSymBand(k, p, blk.vals[k][kk])
			}
		}
	}
	return
}

func (blk *reducedBlock) dense() (A *mat.Dense) {
	A = mat.NewDense(blk.n, blk.n, nil)
	for k := 0; k < blk.n; k++ {
		for kk, p := range blk.cols[k] {
			A.Set(k, p, blk.vals[k][kk])
		}
	}
	return
}

func solveBandCholesky(S *mat.SymBandDense, b, x *mat.VecDense) (path SolvePath, err error) {
	var ch mat.BandCholesky
	path = PathCholesky
	if !ch.Factorize(S) {
		err = errors.New("matrix is not positive definite")
		return
	}
	if c := ch.Cond(); c > conditionLimit {
		err = fmt.Errorf("cholesky condition number %g exceeds %g", c, conditionLimit)
		return
	}
	err = ch.SolveVecTo(x, b)
	return
}

func solveLU(A *mat.Dense, b, x *mat.VecDense) (path SolvePath, err error) {
	var lu mat.LU
	path = PathLU
	lu.Factorize(A)
	if c := lu.Cond(); c > conditionLimit || math.IsInf(c, 0) || math.IsNaN(c) {
		err = fmt.Errorf("lu condition number %g exceeds %g", c, conditionLimit)
		return
	}
	err = lu.SolveVecTo(x, false, b)
	return
}

// solveLeastSquares returns the minimum norm least-squares solution over the numerical
// rank of A.
func solveLeastSquares(A *mat.Dense, b, x *mat.VecDense) (path SolvePath, err error) {
	var svd mat.SVD
	path = PathLeastSquares
	if !svd.Factorize(A, mat.SVDThin) {
		err = errors.New("svd factorization failed")
		return
	}
	rank := svd.Rank(rankTolerance)
	if rank == 0 {
		err = errors.New("system has zero numerical rank")
		return
	}
	svd.SolveVecTo(x, b, rank)
	return
}
