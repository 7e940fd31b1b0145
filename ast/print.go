package ast

import (
	"strconv"
	"strings"
)

// leafPrecedence is higher than any operator's, so leaves are never
// parenthesized as an operand.
const leafPrecedence = 100

func precedence(e Expr) int {
	switch n := e.(type) {
	case UnaryExpr:
		return 3
	case BinaryExpr:
		if n.Op == TokenMul || n.Op == TokenDiv {
			return 2
		}
		return 1
	default:
		return leafPrecedence
	}
}

// Print returns the canonical infix form of e, using the minimum
// parenthesization that preserves precedence and associativity: a left
// operand is parenthesized iff its precedence is strictly less than its
// parent's; a right operand of + or - is parenthesized iff its
// precedence is less-than-or-equal to its parent's (so a-(b-c) survives
// round-tripping); likewise a right operand of / that is itself a * or
// / is parenthesized iff its precedence is less-than-or-equal to its
// parent's (so a/(b*c) and a/(b/c) survive round-tripping; a/ does not
// distribute over a trailing */÷ the way * does); any other right
// operand of * or / is parenthesized iff its precedence is strictly
// less than its parent's; and a unary minus directly wrapping another
// unary minus is always parenthesized.
func Print(e Expr) string {
	var b strings.Builder
	writeExpr(&b, e)
	return b.String()
}

func writeExpr(b *strings.Builder, e Expr) {
	switch n := e.(type) {
	case ConstExpr:
		b.WriteString(FormatNumber(n.Value))
	case CellRefExpr:
		if n.Ref.IsValid() {
			b.WriteString(n.Ref.String())
		} else {
			b.WriteString(n.Raw)
		}
	case UnaryExpr:
		if n.Op == TokenSub {
			b.WriteByte('-')
		} else {
			b.WriteByte('+')
		}
		if child, ok := n.X.(UnaryExpr); ok && n.Op == TokenSub && child.Op == TokenSub {
			b.WriteByte('(')
			writeExpr(b, n.X)
			b.WriteByte(')')
			return
		}
		writeChild(b, n.X, 3, false)
	case BinaryExpr:
		parentPrec := precedence(n)
		writeChild(b, n.X, parentPrec, false)
		b.WriteByte(byte(n.Op))
		writeChild(b, n.Y, parentPrec, needsConservativeRight(n.Op, n.Y))
	}
}

// needsConservativeRight reports whether a right operand needs the <=
// comparison (rather than the default strict <) to avoid a
// reassociation that changes the expression's value: always for a + or
// - parent, and for a / parent whose right child is itself a * or /
// (dividing by a product or quotient does not distribute the way
// multiplying by one does).
func needsConservativeRight(parentOp Token, right Expr) bool {
	if parentOp == TokenAdd || parentOp == TokenSub {
		return true
	}
	if parentOp == TokenDiv {
		if child, ok := right.(BinaryExpr); ok && (child.Op == TokenMul || child.Op == TokenDiv) {
			return true
		}
	}
	return false
}

// writeChild writes a child operand, parenthesizing it when needed.
// conservative selects the <= comparison (see needsConservativeRight);
// every other position uses the strict < comparison.
func writeChild(b *strings.Builder, child Expr, parentPrec int, conservative bool) {
	childPrec := precedence(child)
	needParens := childPrec < parentPrec
	if conservative {
		needParens = childPrec <= parentPrec
	}
	if needParens {
		b.WriteByte('(')
		writeExpr(b, child)
		b.WriteByte(')')
		return
	}
	writeExpr(b, child)
}

// FormatNumber renders v in the shortest round-trip decimal form,
// matching the host numeric-default formatting used by printed cell
// values and formula literals alike.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
