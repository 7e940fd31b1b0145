package cell

import (
	"testing"

	"github.com/kalexmills/cellsheet/position"
	"github.com/stretchr/testify/assert"
)

// fakeHost is a minimal in-memory Host for exercising Cell in isolation
// from the sheet package.
type fakeHost struct {
	cells map[position.Position]*Cell
}

func newFakeHost() *fakeHost {
	return &fakeHost{cells: make(map[position.Position]*Cell)}
}

func (h *fakeHost) Materialize(pos position.Position) *Cell {
	if c, ok := h.cells[pos]; ok {
		return c
	}
	c := New(h)
	h.cells[pos] = c
	return c
}

func (h *fakeHost) Lookup(pos position.Position) (*Cell, bool) {
	c, ok := h.cells[pos]
	return c, ok
}

func a1() position.Position { return position.Position{Row: 0, Col: 0} }
func b1() position.Position { return position.Position{Row: 0, Col: 1} }
func c1() position.Position { return position.Position{Row: 0, Col: 2} }

func Test_CellSetEmptyText(t *testing.T) {
	h := newFakeHost()
	c := h.Materialize(a1())
	assert.NoError(t, c.Set(""))
	assert.Equal(t, "", c.Text())
	assert.Equal(t, stringValue(""), c.Value())
}

func Test_CellSetText(t *testing.T) {
	h := newFakeHost()
	c := h.Materialize(a1())
	assert.NoError(t, c.Set("hello"))
	assert.Equal(t, "hello", c.Text())
	assert.Equal(t, stringValue("hello"), c.Value())
}

func Test_CellEscapedText(t *testing.T) {
	h := newFakeHost()
	c := h.Materialize(a1())
	assert.NoError(t, c.Set("'=1+2"))
	assert.Equal(t, "'=1+2", c.Text())
	assert.Equal(t, stringValue("=1+2"), c.Value())
}

func Test_CellSingleEqualsIsText(t *testing.T) {
	h := newFakeHost()
	c := h.Materialize(a1())
	assert.NoError(t, c.Set("="))
	assert.Equal(t, "=", c.Text())
	assert.Equal(t, stringValue("="), c.Value())
}

func Test_CellFormulaSyntaxError(t *testing.T) {
	h := newFakeHost()
	c := h.Materialize(a1())
	assert.NoError(t, c.Set("hello"))
	err := c.Set("=1+")
	assert.ErrorIs(t, err, ErrSyntax)
	assert.Equal(t, "hello", c.Text(), "cell is unmodified after a syntax failure")
}

func Test_CellFormulaChain(t *testing.T) {
	h := newFakeHost()
	a := h.Materialize(a1())
	b := h.Materialize(b1())
	c := h.Materialize(c1())

	assert.NoError(t, a.Set("2"))
	assert.NoError(t, b.Set("=A1+3"))
	assert.NoError(t, c.Set("=B1*A1"))

	assert.Equal(t, numberValue(2), a.Value())
	assert.Equal(t, numberValue(5), b.Value())
	assert.Equal(t, numberValue(10), c.Value())

	assert.NoError(t, a.Set("4"))
	assert.Equal(t, numberValue(7), b.Value())
	assert.Equal(t, numberValue(28), c.Value())
}

func Test_CellCircularSelf(t *testing.T) {
	h := newFakeHost()
	a := h.Materialize(a1())
	err := a.Set("=A1")
	assert.ErrorIs(t, err, ErrCircular)
	assert.Equal(t, "", a.Text())
}

func Test_CellCircularChain(t *testing.T) {
	h := newFakeHost()
	a := h.Materialize(a1())
	b := h.Materialize(b1())

	assert.NoError(t, a.Set("=B1"))
	err := b.Set("=A1")
	assert.ErrorIs(t, err, ErrCircular)
	assert.Equal(t, "=B1", a.Text())
	assert.Equal(t, "", b.Text())
}

func Test_CellErrorPropagation(t *testing.T) {
	h := newFakeHost()
	a := h.Materialize(a1())
	b := h.Materialize(b1())

	assert.NoError(t, a.Set("hello"))
	assert.NoError(t, b.Set("=A1+1"))

	v := b.Value()
	assert.Equal(t, KindError, v.Kind)

	assert.NoError(t, a.Set("7"))
	assert.Equal(t, numberValue(8), b.Value())
}

func Test_CellDivisionByZero(t *testing.T) {
	h := newFakeHost()
	a := h.Materialize(a1())
	assert.NoError(t, a.Set("=1/0"))
	v := a.Value()
	assert.Equal(t, KindError, v.Kind)
	assert.Equal(t, "#DIV/0!", v.Err.Token())
}

func Test_CellReferencedCellsExcludesInvalid(t *testing.T) {
	h := newFakeHost()
	a := h.Materialize(a1())
	assert.NoError(t, a.Set("=A1A+B1"))
	assert.Equal(t, []position.Position{b1()}, a.ReferencedCells())
}

func Test_CellValueCaching(t *testing.T) {
	h := newFakeHost()
	a := h.Materialize(a1())
	b := h.Materialize(b1())
	assert.NoError(t, a.Set("1"))
	assert.NoError(t, b.Set("=A1+1"))

	first := b.Value()
	assert.Equal(t, numberValue(2), first)

	// mutate A1 without going through Set to prove the cached value on
	// B1 is reused until an actual edit invalidates it.
	a.content.text = "100"
	assert.Equal(t, numberValue(2), b.Value())

	assert.NoError(t, a.Set("100"))
	assert.Equal(t, numberValue(101), b.Value())
}
