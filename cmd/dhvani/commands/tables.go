package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/npillmayer/braille"
	"github.com/npillmayer/braille/dots"
)

func tablesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tables [prefix]",
		Short: "List registered Braille tables",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prefix := ""
			if len(args) == 1 {
				prefix = args[0]
			}
			for _, name := range braille.TableNames(prefix) {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
	return cmd
}

func lookupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lookup <chars>",
		Short: "Show the Braille cells and dot numbers of single characters",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := selectedTable()
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			for _, r := range args[0] {
				cells, ok := table.Lookup(r)
				if !ok {
					fmt.Fprintf(w, "%q\tunmapped\n", r)
					continue
				}
				fmt.Fprintf(w, "%q\t%s\t%s\n", r, cells, dots.FormatCells(cells))
			}
			return nil
		},
	}
	return cmd
}
