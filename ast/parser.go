package ast

import (
	"fmt"
	"strconv"

	"github.com/kalexmills/cellsheet/position"
)

// Parse parses the body of a formula (the text after the leading '=')
// into an Expr, returning ErrSyntax-wrapped error on any lex/parse
// failure.
func Parse(body string) (Expr, error) {
	toks, err := tokenize(body)
	if err != nil {
		return nil, err
	}
	if len(toks) == 0 {
		return nil, fmt.Errorf("%w: empty expression", ErrSyntax)
	}
	expr, rest, err := parseExpr(toks)
	if err != nil {
		return nil, err
	}
	if len(rest) != 0 {
		return nil, fmt.Errorf("%w: unexpected trailing input at %q", ErrSyntax, rest[0].text)
	}
	return expr, nil
}

// lexeme is a single token with its source text (numbers and cell
// references need to retain their literal text; operators don't).
type lexeme struct {
	tok  Token
	text string
}

var opTokens = map[byte]Token{
	'+': TokenAdd,
	'-': TokenSub,
	'*': TokenMul,
	'/': TokenDiv,
	'(': TokenLPar,
	')': TokenRPar,
}

func between(c, lo, hi byte) bool { return lo <= c && c <= hi }

// tokenize splits body into lexemes, skipping whitespace. Numbers may
// include a fractional part and an exponent; a cell-reference token is
// an uppercase letter followed by any run of uppercase letters and
// digits (parsePrimary decides whether it is a valid address).
func tokenize(body string) ([]lexeme, error) {
	var toks []lexeme
	i := 0
	for i < len(body) {
		c := body[i]
		switch {
		case c == ' ' || c == '\t':
			i++
		case between(c, '0', '9') || c == '.':
			start := i
			for i < len(body) && between(body[i], '0', '9') {
				i++
			}
			if i < len(body) && body[i] == '.' {
				i++
				for i < len(body) && between(body[i], '0', '9') {
					i++
				}
			}
			if i < len(body) && (body[i] == 'e' || body[i] == 'E') {
				j := i + 1
				if j < len(body) && (body[j] == '+' || body[j] == '-') {
					j++
				}
				if j < len(body) && between(body[j], '0', '9') {
					i = j
					for i < len(body) && between(body[i], '0', '9') {
						i++
					}
				}
			}
			toks = append(toks, lexeme{tok: 0, text: body[start:i]})
		case between(c, 'A', 'Z'):
			start := i
			for i < len(body) && (between(body[i], '0', '9') || between(body[i], 'A', 'Z')) {
				i++
			}
			toks = append(toks, lexeme{tok: 0, text: body[start:i]})
		default:
			op, ok := opTokens[c]
			if !ok {
				return nil, fmt.Errorf("%w: unexpected character %q", ErrSyntax, c)
			}
			toks = append(toks, lexeme{tok: op, text: string(c)})
			i++
		}
	}
	return toks, nil
}

// isOperand reports whether the lexeme is a number or cell reference
// rather than an operator/punctuation mark.
func isOperand(l lexeme) bool {
	return l.tok == 0
}

func parseExpr(toks []lexeme) (Expr, []lexeme, error) {
	return parseTerm(toks)
}

// parseTerm parses addition and subtraction, left-associative.
func parseTerm(toks []lexeme) (Expr, []lexeme, error) {
	x, rest, err := parseFactor(toks)
	if err != nil {
		return nil, nil, err
	}
	for len(rest) > 0 && (rest[0].tok == TokenAdd || rest[0].tok == TokenSub) {
		op := rest[0].tok
		var y Expr
		y, rest, err = parseFactor(rest[1:])
		if err != nil {
			return nil, nil, err
		}
		x = BinaryExpr{Op: op, X: x, Y: y}
	}
	return x, rest, nil
}

// parseFactor parses multiplication and division, left-associative.
func parseFactor(toks []lexeme) (Expr, []lexeme, error) {
	x, rest, err := parseUnary(toks)
	if err != nil {
		return nil, nil, err
	}
	for len(rest) > 0 && (rest[0].tok == TokenMul || rest[0].tok == TokenDiv) {
		op := rest[0].tok
		var y Expr
		y, rest, err = parseUnary(rest[1:])
		if err != nil {
			return nil, nil, err
		}
		x = BinaryExpr{Op: op, X: x, Y: y}
	}
	return x, rest, nil
}

// parseUnary parses an optional leading +/- before a primary.
func parseUnary(toks []lexeme) (Expr, []lexeme, error) {
	if len(toks) == 0 {
		return nil, nil, fmt.Errorf("%w: expected a term, found nothing", ErrSyntax)
	}
	if toks[0].tok == TokenAdd || toks[0].tok == TokenSub {
		op := toks[0].tok
		x, rest, err := parseUnary(toks[1:])
		if err != nil {
			return nil, nil, err
		}
		return UnaryExpr{Op: op, X: x}, rest, nil
	}
	return parsePrimary(toks)
}

// parsePrimary parses a number, cell reference, or parenthesized
// sub-expression.
func parsePrimary(toks []lexeme) (Expr, []lexeme, error) {
	if len(toks) == 0 {
		return nil, nil, fmt.Errorf("%w: expected a term, found nothing", ErrSyntax)
	}
	l := toks[0]
	if l.tok == TokenLPar {
		expr, rest, err := parseExpr(toks[1:])
		if err != nil {
			return nil, nil, err
		}
		if len(rest) == 0 || rest[0].tok != TokenRPar {
			return nil, nil, fmt.Errorf("%w: expected ')'", ErrSyntax)
		}
		return expr, rest[1:], nil
	}
	if !isOperand(l) {
		return nil, nil, fmt.Errorf("%w: unexpected token %q", ErrSyntax, l.text)
	}
	if between(l.text[0], 'A', 'Z') {
		pos := position.Parse(l.text)
		return CellRefExpr{Ref: pos, Raw: l.text}, toks[1:], nil
	}
	val, err := strconv.ParseFloat(l.text, 64)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: invalid number %q", ErrSyntax, l.text)
	}
	return ConstExpr{Value: val}, toks[1:], nil
}
