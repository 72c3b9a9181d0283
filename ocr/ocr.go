// Package ocr connects text recognition engines to Braille transcription.
//
// An Engine turns an image (a scanned page, a photo of a label) into plain
// text. Transcribe runs an engine and transliterates the recognized text with
// a Braille table. The recognized text is returned as well, as it is what a
// speech reader should read aloud.
package ocr

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/npillmayer/braille"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'braille.ocr'
func tracer() tracing.Trace {
	return tracing.Select("braille.ocr")
}

// ErrNoImage is returned for inputs without image data.
var ErrNoImage = errors.New("ocr: input has no image data")

// Input is a single image submitted for recognition.
type Input struct {
	// ID is an optional caller-provided identifier echoed back in the Result.
	ID string
	// Image is the encoded image (PNG, JPEG, TIFF, …).
	Image []byte
	// Languages are trained-data hints such as "eng" or "deu".
	Languages []string
}

// Result is the recognized text of one Input.
type Result struct {
	InputID    string
	PlainText  string
	Confidence float64 // mean word confidence in [0,1], 0 if unknown
}

// Engine is an OCR provider: one image in, one result out.
type Engine interface {
	Name() string
	Recognize(ctx context.Context, input Input) (Result, error)
}

// Transcription pairs recognized text with its Braille rendering.
type Transcription struct {
	Result
	Braille string
}

// Transcribe recognizes the text of input with engine and transliterates it
// with table. A nil table selects braille.DefaultTable. Recognized text is
// normalized to NFC before transliteration.
func Transcribe(ctx context.Context, engine Engine, table *braille.Table, input Input) (Transcription, error) {
	if len(input.Image) == 0 {
		return Transcription{}, ErrNoImage
	}
	if table == nil {
		table = braille.DefaultTable()
	}
	res, err := engine.Recognize(ctx, input)
	if err != nil {
		return Transcription{}, fmt.Errorf("%s: %w", engine.Name(), err)
	}
	text := braille.Normalize(strings.TrimSpace(res.PlainText))
	res.PlainText = text
	tracer().Debugf("%s recognized %d bytes for input %q (confidence %.2f)",
		engine.Name(), len(text), input.ID, res.Confidence)
	return Transcription{
		Result:  res,
		Braille: table.Transliterate(text),
	}, nil
}
