package utils

import (
	"fmt"
	"strings"
)

const (
	NODETOL = 1.e-12
)

type EvalOp uint8

const (
	Equal EvalOp = iota
	Less
	Greater
	LessOrEqual
	GreaterOrEqual
)

func (op EvalOp) String() string {
	switch op {
	case Equal:
		return "eq"
	case Less:
		return "lt"
	case Greater:
		return "gt"
	case LessOrEqual:
		return "le"
	case GreaterOrEqual:
		return "ge"
	}
	return fmt.Sprintf("EvalOp(%d)", uint8(op))
}

func NewEvalOp(label string) (op EvalOp, err error) {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "eq", "==", "value":
		op = Equal
	case "lt", "<":
		op = Less
	case "gt", ">":
		op = Greater
	case "le", "<=":
		op = LessOrEqual
	case "ge", ">=":
		op = GreaterOrEqual
	default:
		err = fmt.Errorf("unknown comparison operator: %q", label)
	}
	return
}

// Compare evaluates (val op target).
func (op EvalOp) Compare(val, target float64) bool {
	switch op {
	case Equal:
		return val == target
	case Less:
		return val < target
	case Greater:
		return val > target
	case LessOrEqual:
		return val <= target
	case GreaterOrEqual:
		return val >= target
	}
	return false
}
