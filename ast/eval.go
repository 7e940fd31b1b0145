package ast

import (
	"math"

	"github.com/kalexmills/cellsheet/position"
)

// Resolver resolves a referenced Position to its numeric operand value,
// applying the coercion and error-propagation rules of the evaluator
// glue: an invalid Position yields #REF!, a missing cell yields 0.0, a
// numeric cell yields its value, a string cell is parsed as a decimal
// (or yields #VALUE! on parse failure), and a cell already holding a
// FormulaError propagates it unchanged.
type Resolver func(position.Position) (float64, error)

// Execute evaluates the expression tree rooted at e, post-order, using
// resolve to look up cell references. Division by an exactly-zero
// divisor, or any operation producing a non-finite result, is reported
// as a FormulaError rather than as a Go panic or a NaN/Inf float.
func Execute(e Expr, resolve Resolver) (float64, error) {
	switch n := e.(type) {
	case ConstExpr:
		return n.Value, nil
	case CellRefExpr:
		return resolve(n.Ref)
	case UnaryExpr:
		x, err := Execute(n.X, resolve)
		if err != nil {
			return 0, err
		}
		if n.Op == TokenSub {
			x = -x
		}
		return x, nil
	case BinaryExpr:
		x, err := Execute(n.X, resolve)
		if err != nil {
			return 0, err
		}
		y, err := Execute(n.Y, resolve)
		if err != nil {
			return 0, err
		}
		return applyBinary(n.Op, x, y)
	default:
		return 0, FormulaError{Kind: ValueError}
	}
}

func applyBinary(op Token, x, y float64) (float64, error) {
	var result float64
	switch op {
	case TokenAdd:
		result = x + y
	case TokenSub:
		result = x - y
	case TokenMul:
		result = x * y
	case TokenDiv:
		if y == 0 {
			return 0, FormulaError{Kind: Div0Error}
		}
		result = x / y
	}
	if math.IsNaN(result) || math.IsInf(result, 0) {
		return 0, FormulaError{Kind: ValueError}
	}
	return result, nil
}
