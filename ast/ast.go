// Package ast implements the cellsheet formula language: a tokenizer and
// recursive-descent parser over arithmetic expressions, the resulting
// expression tree, and the tree's evaluation, reference-enumeration, and
// canonical-printing operations.
//
// The parser shape mirrors the original spreadsheets teacher's
// tokenize/parseExpr/parseTerm/parseFactor/parseUnary/parsePrimary chain,
// generalized to float64 arithmetic, parenthesized sub-expressions, and
// the reference/error semantics this formula language requires.
package ast

import (
	"errors"

	"github.com/kalexmills/cellsheet/position"
)

// Expr is an arithmetic expression node. Implementations are ConstExpr,
// CellRefExpr, UnaryExpr, and BinaryExpr.
type Expr interface {
	isExpr()
}

// ConstExpr is a numeric literal leaf.
type ConstExpr struct {
	Value float64
}

// CellRefExpr is a reference to another cell's value. Ref may be an
// invalid Position (e.g. position.None) when the source token did not
// decode to an addressable cell; Raw preserves the original token text
// so the canonical printer can round-trip it.
type CellRefExpr struct {
	Ref position.Position
	Raw string
}

// UnaryExpr is a prefix +/- applied to a single operand.
type UnaryExpr struct {
	Op Token
	X  Expr
}

// BinaryExpr is one of + - * / applied to two operands.
type BinaryExpr struct {
	Op   Token
	X, Y Expr
}

func (ConstExpr) isExpr()   {}
func (CellRefExpr) isExpr() {}
func (UnaryExpr) isExpr()   {}
func (BinaryExpr) isExpr()  {}

// Token identifies an operator or punctuation mark produced by the
// tokenizer.
type Token byte

const (
	TokenAdd Token = '+'
	TokenSub Token = '-'
	TokenMul Token = '*'
	TokenDiv Token = '/'
	TokenLPar Token = '('
	TokenRPar Token = ')'
)

// ErrSyntax is the sentinel wrapped by every tokenize/parse failure.
var ErrSyntax = errors.New("formula syntax error")
