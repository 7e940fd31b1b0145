package ast

import (
	"testing"

	"github.com/kalexmills/cellsheet/position"
	"github.com/stretchr/testify/assert"
)

func Test_ReferencedCells(t *testing.T) {
	a1 := position.Position{Row: 0, Col: 0}
	b2 := position.Position{Row: 1, Col: 1}

	expr, err := Parse("A1+A1+B2")
	assert.NoError(t, err)
	assert.Equal(t, []position.Position{a1, b2}, ReferencedCells(expr),
		"adjacent duplicates collapse, matching std::unique semantics")

	expr, err = Parse("A1+B2+A1")
	assert.NoError(t, err)
	assert.Equal(t, []position.Position{a1, b2, a1}, ReferencedCells(expr),
		"non-adjacent repeats are preserved, not globally deduped")
}

func Test_ReferencedCellsNoRefs(t *testing.T) {
	expr, err := Parse("1+2*3")
	assert.NoError(t, err)
	assert.Nil(t, ReferencedCells(expr))
}
