// Command cellsheet is a thin cobra CLI driving a single in-memory
// Sheet through its public SetCell/GetCell/Print* interfaces. It is an
// external collaborator per spec.md §1/§6: every formula, cycle, and
// caching rule lives in the core packages, not here.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kalexmills/cellsheet/position"
	"github.com/kalexmills/cellsheet/sheet"
	"github.com/kalexmills/cellsheet/termview"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	sh := sheet.New()

	root := &cobra.Command{
		Use:           "cellsheet",
		Short:         "Evaluate and inspect cellsheet formula grids",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.AddCommand(newSetCmd(sh))
	root.AddCommand(newGetCmd(sh))
	root.AddCommand(newPrintCmd(sh))
	root.AddCommand(newReplCmd(sh))
	return root
}

func parseAddress(cmd *cobra.Command, addr string) (position.Position, error) {
	pos := position.Parse(addr)
	if !pos.IsValid() {
		return pos, fmt.Errorf("%q is not a valid cell address", addr)
	}
	return pos, nil
}

func newSetCmd(sh *sheet.Sheet) *cobra.Command {
	return &cobra.Command{
		Use:   "set <CELL> <TEXT>",
		Short: "Set a cell's content",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			pos, err := parseAddress(cmd, args[0])
			if err != nil {
				return err
			}
			return sh.SetCell(pos, args[1])
		},
	}
}

func newGetCmd(sh *sheet.Sheet) *cobra.Command {
	return &cobra.Command{
		Use:   "get <CELL>",
		Short: "Print a cell's evaluated value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pos, err := parseAddress(cmd, args[0])
			if err != nil {
				return err
			}
			c, err := sh.GetCell(pos)
			if err != nil {
				return err
			}
			if c == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), c.Value().String())
			return nil
		},
	}
}

func newPrintCmd(sh *sheet.Sheet) *cobra.Command {
	var texts, pretty bool
	cmd := &cobra.Command{
		Use:   "print",
		Short: "Print the sheet's printable area",
		RunE: func(cmd *cobra.Command, args []string) error {
			if pretty {
				render := termview.RenderValues
				if texts {
					render = termview.RenderTexts
				}
				_, err := fmt.Fprint(cmd.OutOrStdout(), render(sh))
				return err
			}
			if texts {
				return sh.PrintTexts(cmd.OutOrStdout())
			}
			return sh.PrintValues(cmd.OutOrStdout())
		},
	}
	cmd.Flags().BoolVar(&texts, "texts", false, "print stored text instead of evaluated values")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "render a bordered table instead of tab-separated fields")
	return cmd
}
