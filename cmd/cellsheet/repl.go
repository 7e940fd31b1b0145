package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kalexmills/cellsheet/position"
	"github.com/kalexmills/cellsheet/sheet"
)

// newReplCmd returns a line-oriented loop over stdin: "CELL=TEXT" sets a
// cell (use a leading '=' in TEXT, i.e. "A2==A1+3", for a formula), and
// a bare "CELL" prints its evaluated value. It holds no state of its
// own beyond the one *sheet.Sheet it was given.
func newReplCmd(sh *sheet.Sheet) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Interactively set and inspect cells",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRepl(cmd, sh)
		},
	}
}

func runRepl(cmd *cobra.Command, sh *sheet.Sheet) error {
	in := bufio.NewScanner(cmd.InOrStdin())
	out := cmd.OutOrStdout()
	for in.Scan() {
		line := strings.TrimSpace(in.Text())
		if line == "" {
			continue
		}
		if err := evalLine(sh, out, line); err != nil {
			fmt.Fprintln(out, "error:", err)
		}
	}
	return in.Err()
}

func evalLine(sh *sheet.Sheet, out io.Writer, line string) error {
	if idx := strings.IndexByte(line, '='); idx >= 0 {
		addr, text := line[:idx], line[idx+1:]
		pos := position.Parse(addr)
		if !pos.IsValid() {
			return fmt.Errorf("%q is not a valid cell address", addr)
		}
		return sh.SetCell(pos, text)
	}

	pos := position.Parse(line)
	if !pos.IsValid() {
		return fmt.Errorf("%q is not a valid cell address", line)
	}
	c, err := sh.GetCell(pos)
	if err != nil {
		return err
	}
	if c == nil {
		fmt.Fprintln(out, "")
		return nil
	}
	fmt.Fprintln(out, c.Value().String())
	return nil
}
