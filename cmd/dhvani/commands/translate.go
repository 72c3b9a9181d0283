package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/npillmayer/braille"
)

func translateCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "translate [file]",
		Short: "Transcribe a text file (or stdin) to Braille",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := selectedTable()
			if err != nil {
				return err
			}
			var in io.Reader = cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}
			if nfc {
				data, err := io.ReadAll(in)
				if err != nil {
					return err
				}
				in = strings.NewReader(braille.Normalize(string(data)))
			}
			if out == "" {
				return table.TransliterateStream(cmd.Context(), in, cmd.OutOrStdout())
			}
			f, err := os.Create(out)
			if err != nil {
				return err
			}
			return exportTo(cmd.Context(), table, in, f)
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "write Braille to this file instead of stdout")
	return cmd
}

// exportTo writes the Braille transcription of in to f and closes f.
// A failing Close is reported, as the file may be incomplete.
func exportTo(ctx context.Context, table *braille.Table, in io.Reader, f io.WriteCloser) error {
	if err := table.TransliterateStream(ctx, in, f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("write Braille file: %w", err)
	}
	return nil
}
