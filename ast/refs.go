package ast

import "github.com/kalexmills/cellsheet/position"

// ReferencedCells returns the Positions of every reference leaf in e,
// in left-to-right AST order, with adjacent duplicates removed. This
// mirrors std::unique semantics (not a full dedup): it only collapses
// runs of consecutive equal positions, relying on the tree's natural
// left-to-right leaf order rather than sorting. Invalid positions
// (from tokens that did not decode to an addressable cell) are
// included; callers that need edges filter those out themselves.
func ReferencedCells(e Expr) []position.Position {
	var leaves []position.Position
	collectLeaves(e, &leaves)

	var out []position.Position
	for _, p := range leaves {
		if len(out) > 0 && out[len(out)-1] == p {
			continue
		}
		out = append(out, p)
	}
	return out
}

func collectLeaves(e Expr, out *[]position.Position) {
	switch n := e.(type) {
	case CellRefExpr:
		*out = append(*out, n.Ref)
	case ConstExpr:
	case UnaryExpr:
		collectLeaves(n.X, out)
	case BinaryExpr:
		collectLeaves(n.X, out)
		collectLeaves(n.Y, out)
	}
}
