// Package sheet implements the sparse 2D cell grid: position-keyed
// storage that owns its cells, materializes them on first write or
// first reference, and tracks the printable bounding box.
package sheet

import (
	"errors"
	"fmt"
	"io"

	"github.com/kalexmills/cellsheet/cell"
	"github.com/kalexmills/cellsheet/position"
)

// ErrInvalidPosition is returned by every Sheet operation given a
// Position outside [0, MaxRows) x [0, MaxCols).
var ErrInvalidPosition = errors.New("invalid position")

// Re-exported so callers can errors.Is against a single sheet package
// without importing cell directly.
var (
	ErrFormulaSyntax      = cell.ErrSyntax
	ErrCircularDependency = cell.ErrCircular
)

// Sheet is a sparse, row-major grid of cells keyed by Position. Row i is
// absent until first touched; within a row, column j is absent until
// first touched. Sheet owns every Cell it materializes and implements
// cell.Host so Cells can materialize/look up their references.
type Sheet struct {
	rows map[int]map[int]*cell.Cell
}

// New returns an empty Sheet.
func New() *Sheet {
	return &Sheet{rows: make(map[int]map[int]*cell.Cell)}
}

// Materialize implements cell.Host: it returns the Cell at pos,
// creating it as Empty if this is the first reference to pos. Callers
// are expected to have already validated pos.
func (s *Sheet) Materialize(pos position.Position) *cell.Cell {
	row, ok := s.rows[pos.Row]
	if !ok {
		row = make(map[int]*cell.Cell)
		s.rows[pos.Row] = row
	}
	c, ok := row[pos.Col]
	if !ok {
		c = cell.New(s)
		row[pos.Col] = c
	}
	return c
}

// Lookup implements cell.Host: it returns the Cell at pos without
// creating it.
func (s *Sheet) Lookup(pos position.Position) (*cell.Cell, bool) {
	row, ok := s.rows[pos.Row]
	if !ok {
		return nil, false
	}
	c, ok := row[pos.Col]
	return c, ok
}

// SetCell validates pos, materializes its Cell, and sets its content to
// text. A formula syntax failure or a circular dependency leaves the
// cell unmodified and is returned as an error (wrapping
// ErrFormulaSyntax or ErrCircularDependency respectively).
func (s *Sheet) SetCell(pos position.Position, text string) error {
	if !pos.IsValid() {
		return fmt.Errorf("%w: %v", ErrInvalidPosition, pos)
	}
	return s.Materialize(pos).Set(text)
}

// GetCell validates pos and returns its Cell if one has been
// materialized; it returns (nil, nil) for an un-materialized position,
// and never materializes one itself.
func (s *Sheet) GetCell(pos position.Position) (*cell.Cell, error) {
	if !pos.IsValid() {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPosition, pos)
	}
	c, _ := s.Lookup(pos)
	return c, nil
}

// ClearCell validates pos and, if a Cell exists there, resets its
// content to Empty. The node itself is dropped from storage only when
// it no longer participates in any dependency edge; otherwise it is
// left in place with Empty content so the edge graph stays symmetric.
func (s *Sheet) ClearCell(pos position.Position) error {
	if !pos.IsValid() {
		return fmt.Errorf("%w: %v", ErrInvalidPosition, pos)
	}
	c, ok := s.Lookup(pos)
	if !ok {
		return nil
	}
	c.Clear()
	if !c.IsLinked() {
		delete(s.rows[pos.Row], pos.Col)
		if len(s.rows[pos.Row]) == 0 {
			delete(s.rows, pos.Row)
		}
	}
	return nil
}

// PrintableSize returns the smallest rectangle containing every cell
// whose Text is non-empty. Rows/Cols are one past the largest
// populated index.
func (s *Sheet) PrintableSize() position.Size {
	var size position.Size
	for row, cols := range s.rows {
		for col, c := range cols {
			if c.Text() == "" {
				continue
			}
			if row+1 > size.Rows {
				size.Rows = row + 1
			}
			if col+1 > size.Cols {
				size.Cols = col + 1
			}
		}
	}
	return size
}

// Print writes every row/column within PrintableSize to w, tab-
// separated and newline-terminated, formatting present cells with
// fmtCell; absent cells print as an empty field.
func (s *Sheet) Print(w io.Writer, fmtCell func(*cell.Cell) string) error {
	size := s.PrintableSize()
	for row := 0; row < size.Rows; row++ {
		for col := 0; col < size.Cols; col++ {
			if col > 0 {
				if _, err := io.WriteString(w, "\t"); err != nil {
					return err
				}
			}
			if c, ok := s.Lookup(position.Position{Row: row, Col: col}); ok {
				if _, err := io.WriteString(w, fmtCell(c)); err != nil {
					return err
				}
			}
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}

// PrintValues prints every cell's Value.String() form.
func (s *Sheet) PrintValues(w io.Writer) error {
	return s.Print(w, func(c *cell.Cell) string { return c.Value().String() })
}

// PrintTexts prints every cell's Text() form.
func (s *Sheet) PrintTexts(w io.Writer) error {
	return s.Print(w, func(c *cell.Cell) string { return c.Text() })
}
