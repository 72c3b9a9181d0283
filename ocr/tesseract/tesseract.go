// Package tesseract provides an ocr.Engine backed by Tesseract through
// gosseract. Building it requires the Tesseract and Leptonica libraries.
package tesseract

import (
	"context"
	"fmt"

	"github.com/npillmayer/braille/ocr"
	"github.com/otiai10/gosseract/v2"
)

// Engine implements ocr.Engine with a fresh gosseract client per call.
type Engine struct {
	clientFactory func() *gosseract.Client
	// PageSegMode overrides Tesseract's page segmentation, 0 keeps the default.
	PageSegMode gosseract.PageSegMode
}

// New constructs a Tesseract-backed OCR engine.
func New() *Engine {
	return &Engine{clientFactory: gosseract.NewClient}
}

func (e *Engine) Name() string { return "tesseract" }

// Recognize performs OCR on a single image.
func (e *Engine) Recognize(ctx context.Context, in ocr.Input) (ocr.Result, error) {
	if err := ctx.Err(); err != nil {
		return ocr.Result{}, err
	}
	c := e.clientFactory()
	defer c.Close()
	if err := c.SetImageFromBytes(in.Image); err != nil {
		return ocr.Result{}, fmt.Errorf("set image: %w", err)
	}
	if len(in.Languages) > 0 {
		if err := c.SetLanguage(in.Languages...); err != nil {
			return ocr.Result{}, fmt.Errorf("set languages: %w", err)
		}
	}
	if e.PageSegMode != 0 {
		if err := c.SetPageSegMode(e.PageSegMode); err != nil {
			return ocr.Result{}, fmt.Errorf("set page segmentation: %w", err)
		}
	}
	text, err := c.Text()
	if err != nil {
		return ocr.Result{}, fmt.Errorf("recognize text: %w", err)
	}
	return ocr.Result{
		InputID:    in.ID,
		PlainText:  text,
		Confidence: meanConfidence(c),
	}, nil
}

func meanConfidence(c *gosseract.Client) float64 {
	boxes, err := c.GetBoundingBoxes(gosseract.RIL_WORD)
	if err != nil || len(boxes) == 0 {
		return 0
	}
	var sum float64
	for _, b := range boxes {
		sum += b.Confidence / 100.0
	}
	return sum / float64(len(boxes))
}
