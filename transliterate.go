package braille

import (
	"bufio"
	"context"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Transliterate returns the Grade-1 Braille transcription of text using
// the default table.
//
// Example:
//
//	"Hi 42" => "⠠⠓⠊⠀⠼⠙⠃".
func Transliterate(text string) string {
	return defaultTable.Transliterate(text)
}

// Transliterate returns the Braille transcription of text.
//
// Text is scanned left to right in a single pass:
//   - a maximal run of decimal digits is emitted as the numeric indicator,
//     followed by one cell per digit
//   - an upper-case letter is emitted as the capital indicator followed by
//     the cell of its lower-case form, for every upper-case letter
//   - any other character is looked up by its lower-case form
//   - characters without an entry are copied unchanged.
//
// Transliterate never fails. Invalid UTF-8 bytes are copied as they are.
func (t *Table) Transliterate(text string) string {
	var b strings.Builder
	b.Grow(len(text) * 3) // Braille patterns take 3 bytes in UTF-8
	t.transliterateTo(&b, text)
	return b.String()
}

func (t *Table) transliterateTo(b *strings.Builder, text string) {
	for i := 0; i < len(text); {
		if isDigit(text[i]) {
			i = t.digitRun(b, text, i)
			continue
		}
		r, size := utf8.DecodeRuneInString(text[i:])
		if r == utf8.RuneError && size <= 1 {
			b.WriteByte(text[i]) // not valid UTF-8, pass the byte through
			i++
			continue
		}
		if slot := t.index.Slot(unicode.ToLower(r)); slot != 0 {
			if t.classes[slot] == Letter && unicode.IsUpper(r) {
				b.WriteString(t.capSign)
			}
			b.WriteString(t.cells[slot])
		} else {
			b.WriteString(text[i : i+size])
		}
		i += size
	}
}

// digitRun emits the digit run starting at byte offset start and returns
// the offset just behind it.
func (t *Table) digitRun(b *strings.Builder, text string, start int) int {
	b.WriteString(t.numberSign)
	i := start
	for i < len(text) && isDigit(text[i]) {
		b.WriteString(t.digits[text[i]-'0'])
		i++
	}
	return i
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// TransliterateStream reads text from r and writes its Braille
// transcription to w, one line at a time. Digit runs never span a line
// break, so the output equals Transliterate applied to the whole input.
//
// ctx is checked between lines; a cancelled context stops the stream with
// ctx.Err(). Errors from r or w are returned as they are.
func (t *Table) TransliterateStream(ctx context.Context, r io.Reader, w io.Writer) error {
	in := bufio.NewReader(r)
	out := bufio.NewWriter(w)
	var b strings.Builder
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		line, err := in.ReadString('\n')
		if len(line) > 0 {
			b.Reset()
			t.transliterateTo(&b, line)
			if _, werr := out.WriteString(b.String()); werr != nil {
				return werr
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
	}
	return out.Flush()
}

// Normalize composes text to Unicode normalization form C.
//
// Decomposed input such as "e\u0301" becomes "\u00e9" (é).
// Transliterate does not normalize on its own; callers feeding OCR output
// or user input may want to apply Normalize first so that accented letters
// pass through as a single character.
func Normalize(text string) string {
	return norm.NFC.String(text)
}
