// Package xlsxio bridges cellsheet's in-memory Sheet to XLSX workbooks
// on disk, using github.com/xuri/excelize/v2. It is an external
// collaborator per spec.md §1/§6: it drives a Sheet through SetCell,
// GetCell, and PrintableSize alone and holds no formula or dependency
// logic of its own.
package xlsxio

import (
	"errors"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/kalexmills/cellsheet/position"
	"github.com/kalexmills/cellsheet/sheet"
)

// ErrUnsupportedFormula wraps a FormulaSyntax failure encountered while
// importing a workbook formula this core's grammar cannot parse (e.g. a
// built-in spreadsheet function). Import does not abort on this error:
// the offending cell is left as literal text of its original formula
// and the import continues.
var ErrUnsupportedFormula = errors.New("xlsxio: formula not supported by this core's grammar")

// Import reads the first worksheet of the workbook at path into a new
// Sheet. Numeric and text cells become Text; cells whose formula this
// core's grammar can parse become Formula; everything else becomes
// literal Text of its original source, and its address is collected
// into the returned skipped list (each wrapping ErrUnsupportedFormula).
func Import(path string) (*sheet.Sheet, []error, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("xlsxio: open %s: %w", path, err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, nil, fmt.Errorf("xlsxio: read rows from %s: %w", path, err)
	}

	sh := sheet.New()
	var skipped []error
	for r, row := range rows {
		for c, value := range row {
			if value == "" {
				continue
			}
			axis, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				continue
			}
			pos := position.Position{Row: r, Col: c}

			formula, err := f.GetCellFormula(sheetName, axis)
			if err == nil && formula != "" {
				text := "=" + formula
				if setErr := sh.SetCell(pos, text); setErr != nil {
					skipped = append(skipped, fmt.Errorf("%w: %s (%s): %w", ErrUnsupportedFormula, axis, formula, setErr))
					_ = sh.SetCell(pos, "'"+text)
				}
				continue
			}
			_ = sh.SetCell(pos, value)
		}
	}
	return sh, skipped, nil
}

// Export writes sh's printable area to a new workbook at path. Formula
// cells are written with SetCellFormula from their canonical expression
// text; every other non-empty cell is written as a string cell holding
// its current Value.
func Export(sh *sheet.Sheet, path string) error {
	f := excelize.NewFile()
	defer f.Close()
	const sheetName = "Sheet1"

	size := sh.PrintableSize()
	for row := 0; row < size.Rows; row++ {
		for col := 0; col < size.Cols; col++ {
			pos := position.Position{Row: row, Col: col}
			c, err := sh.GetCell(pos)
			if err != nil || c == nil {
				continue
			}
			text := c.Text()
			if text == "" {
				continue
			}
			axis, err := excelize.CoordinatesToCellName(col+1, row+1)
			if err != nil {
				return fmt.Errorf("xlsxio: coordinates for %v: %w", pos, err)
			}
			if strings.HasPrefix(text, "=") {
				if err := f.SetCellFormula(sheetName, axis, text[1:]); err != nil {
					return fmt.Errorf("xlsxio: set formula %s: %w", axis, err)
				}
				continue
			}
			if err := f.SetCellStr(sheetName, axis, c.Value().String()); err != nil {
				return fmt.Errorf("xlsxio: set value %s: %w", axis, err)
			}
		}
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("xlsxio: save %s: %w", path, err)
	}
	return nil
}
