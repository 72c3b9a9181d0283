package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/npillmayer/braille"
	"github.com/npillmayer/braille/louis"
)

var (
	tableName string
	tableFile string
	nfc       bool
)

// Execute runs the dhvani command line.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "dhvani",
		Short:         "Transcribe text and scanned pages to Grade-1 Braille",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if tableFile == "" {
				return nil
			}
			name, err := registerTableFile(tableFile)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("table") {
				tableName = name
			}
			return nil
		},
	}

	root.PersistentFlags().StringVarP(&tableName, "table", "t", braille.DefaultTableName, "name of the Braille table")
	root.PersistentFlags().StringVar(&tableFile, "table-file", "", "load and register a liblouis-style table file")
	root.PersistentFlags().BoolVar(&nfc, "nfc", false, "compose input to Unicode NFC before transcription")

	root.AddCommand(translateCmd(), scanCmd(), tablesCmd(), lookupCmd(), serveCmd())
	return root
}

// registerTableFile loads a table file and registers it under its base name
// without extension.
func registerTableFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	table, err := louis.LoadTable(name, f)
	if err != nil {
		return "", fmt.Errorf("table %s: %w", path, err)
	}
	braille.RegisterTable(name, table)
	return name, nil
}

func selectedTable() (*braille.Table, error) {
	table, ok := braille.TableByName(tableName)
	if !ok {
		return nil, fmt.Errorf("unknown table %q (see 'dhvani tables')", tableName)
	}
	return table, nil
}
