package inpaint

import "fmt"

type CriterionKind uint8

const (
	ByAbsence CriterionKind = iota
	BySentinel
	ByPredicate
)

func (k CriterionKind) String() string {
	switch k {
	case ByAbsence:
		return "ByAbsence"
	case BySentinel:
		return "BySentinel"
	case ByPredicate:
		return "ByPredicate"
	}
	return fmt.Sprintf("CriterionKind(%d)", uint8(k))
}

// Criterion selects the cells to inpaint.
type Criterion[T Number] struct {
	Kind      CriterionKind
	Value     T
	Predicate func(T) bool
}

func Absent[T Number]() Criterion[T] { return Criterion[T]{Kind: ByAbsence} }

// Sentinel matches cells equal to v. A NaN sentinel matches NaN cells.
func Sentinel[T Number](v T) Criterion[T] { return Criterion[T]{Kind: BySentinel, Value: v} }

func Predicate[T Number](f func(T) bool) Criterion[T] {
	return Criterion[T]{Kind: ByPredicate, Predicate: f}
}

// Evaluate builds the missingness mask. Cells in the grid's absence layer are always
// missing, whatever the criterion.
func Evaluate[T Number](g Grid[T], c Criterion[T]) (mask []bool, err error) {
	var match func(T) bool
	switch c.Kind {
	case ByAbsence:
		if !g.HasAbsence() {
			err = &InvalidCriterionError{Kind: c.Kind, Reason: "grid carries no absence layer"}
			return
		}
		match = func(T) bool { return false }
	case BySentinel:
		v := c.Value
		if isNaN(v) {
			match = isNaN[T]
		} else {
			match = func(x T) bool { return x == v }
		}
	case ByPredicate:
		if c.Predicate == nil {
			err = &InvalidCriterionError{Kind: c.Kind, Reason: "nil predicate function"}
			return
		}
		match = c.Predicate
	default:
		err = &InvalidCriterionError{Kind: c.Kind, Reason: "unknown criterion kind"}
		return
	}
	mask = make([]bool, g.Len())
	for i, x := range g.data {
		if g.IsAbsent(i) {
			mask[i] = true
			continue
		}
		mask[i] = match(x)
	}
	return
}

// NaN is the only value that differs from itself; for integer types this is never true.
func isNaN[T Number](x T) bool { return x != x }
