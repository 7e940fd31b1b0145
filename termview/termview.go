// Package termview renders a Sheet as a bordered terminal table using
// github.com/charmbracelet/lipgloss. It is a presentation-layer
// counterpart to Sheet.PrintValues/PrintTexts for the CLI's
// "print --pretty" flag: an external collaborator that reads a Sheet
// through its public interface and adds no cell semantics of its own.
package termview

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/kalexmills/cellsheet/cell"
	"github.com/kalexmills/cellsheet/position"
	"github.com/kalexmills/cellsheet/sheet"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1).Align(lipgloss.Center)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	errorStyle  = cellStyle.Copy().Foreground(lipgloss.Color("9"))
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// RenderValues renders sh's printable area with each cell's evaluated
// Value.
func RenderValues(sh *sheet.Sheet) string {
	return render(sh, func(c *cell.Cell) (string, bool) {
		v := c.Value()
		return v.String(), v.Kind == cell.KindError
	})
}

// RenderTexts renders sh's printable area with each cell's stored Text.
func RenderTexts(sh *sheet.Sheet) string {
	return render(sh, func(c *cell.Cell) (string, bool) {
		return c.Text(), false
	})
}

func render(sh *sheet.Sheet, format func(*cell.Cell) (string, bool)) string {
	size := sh.PrintableSize()
	if size.Rows == 0 || size.Cols == 0 {
		return ""
	}

	var rows [][]string
	header := make([]string, size.Cols+1)
	header[0] = ""
	for col := 0; col < size.Cols; col++ {
		header[col+1] = headerStyle.Render(columnLabel(col))
	}
	rows = append(rows, header)

	for row := 0; row < size.Rows; row++ {
		line := make([]string, size.Cols+1)
		line[0] = headerStyle.Render(strconv.Itoa(row + 1))
		for col := 0; col < size.Cols; col++ {
			pos := position.Position{Row: row, Col: col}
			text, isErr := "", false
			if c, ok := sh.Lookup(pos); ok {
				text, isErr = format(c)
			}
			style := cellStyle
			if isErr {
				style = errorStyle
			}
			line[col+1] = style.Render(text)
		}
		rows = append(rows, line)
	}

	var b strings.Builder
	for _, r := range rows {
		b.WriteString(borderStyle.Render("|"))
		b.WriteString(strings.Join(r, borderStyle.Render("|")))
		b.WriteString(borderStyle.Render("|"))
		b.WriteByte('\n')
	}
	return b.String()
}

// columnLabel renders a zero-based column index as its bijective
// base-26 letters alone, the same algorithm Position.String uses for
// the letter run of an A1 address.
func columnLabel(col int) string {
	var letters []byte
	for col >= 0 {
		letters = append(letters, byte('A'+col%26))
		col = col/26 - 1
	}
	for i, j := 0, len(letters)-1; i < j; i, j = i+1, j-1 {
		letters[i], letters[j] = letters[j], letters[i]
	}
	return string(letters)
}
