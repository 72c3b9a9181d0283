package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/npillmayer/braille/ocr"
	"github.com/npillmayer/braille/ocr/tesseract"
	"github.com/otiai10/gosseract/v2"
)

func scanCmd() *cobra.Command {
	var (
		langs    []string
		showText bool
		psm      int
	)
	cmd := &cobra.Command{
		Use:   "scan <image>",
		Short: "Recognize the text of a scanned image and transcribe it to Braille",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := scanEngine(psm)
			if err != nil {
				return err
			}
			table, err := selectedTable()
			if err != nil {
				return err
			}
			img, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			tr, err := ocr.Transcribe(cmd.Context(), engine, table, ocr.Input{
				ID:        args[0],
				Image:     img,
				Languages: langs,
			})
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if showText {
				fmt.Fprintf(w, "%s\n\n", tr.PlainText)
			}
			fmt.Fprintln(w, tr.Braille)
			return nil
		},
	}
	cmd.Flags().StringSliceVarP(&langs, "lang", "l", []string{"eng"}, "OCR languages (Tesseract trained data)")
	cmd.Flags().IntVar(&psm, "psm", 0, "Tesseract page segmentation mode 1-13 (0 keeps the default)")
	cmd.Flags().BoolVar(&showText, "show-text", false, "print the recognized text before the Braille")
	return cmd
}

// scanEngine creates the OCR engine for a page segmentation mode.
func scanEngine(psm int) (*tesseract.Engine, error) {
	if psm < 0 || psm > 13 {
		return nil, fmt.Errorf("page segmentation mode %d out of range (1-13)", psm)
	}
	engine := tesseract.New()
	engine.PageSegMode = gosseract.PageSegMode(psm)
	return engine, nil
}
