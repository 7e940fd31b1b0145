package cell

import "github.com/kalexmills/cellsheet/ast"

// ValueKind tags which alternative a Value currently holds.
type ValueKind int

const (
	KindString ValueKind = iota
	KindNumber
	KindError
)

// Value is the result of reading a cell: a string (Empty or Text
// content), a number (a successfully evaluated Formula), or a
// FormulaError (a Formula that failed to evaluate).
type Value struct {
	Kind ValueKind
	Str  string
	Num  float64
	Err  ast.FormulaError
}

func stringValue(s string) Value          { return Value{Kind: KindString, Str: s} }
func numberValue(n float64) Value         { return Value{Kind: KindNumber, Num: n} }
func errorValue(e ast.FormulaError) Value { return Value{Kind: KindError, Err: e} }

// String renders the value the way a printed cell does: numbers in
// their host numeric-default form, strings verbatim, and errors as
// their display token.
func (v Value) String() string {
	switch v.Kind {
	case KindNumber:
		return ast.FormatNumber(v.Num)
	case KindError:
		return v.Err.Token()
	default:
		return v.Str
	}
}
