package braille

import (
	"errors"
	"fmt"
	"io"
	"unicode"

	"github.com/npillmayer/braille/cellmap"
)

// Class categorizes the entries of a Braille table.
type Class int8

// Entry classes. Letter, Punctuation and Space entries are keyed by a
// character; Digit entries by '0'…'9'; indicators carry no character.
const (
	Letter Class = iota + 1
	Digit
	Punctuation
	Space
	NumberSign
	CapitalSign
)

func (c Class) String() string {
	switch c {
	case Letter:
		return "letter"
	case Digit:
		return "digit"
	case Punctuation:
		return "punctuation"
	case Space:
		return "space"
	case NumberSign:
		return "numsign"
	case CapitalSign:
		return "capsletter"
	}
	return fmt.Sprintf("Class(%d)", int8(c))
}

// Entry is a format-agnostic table entry.
//
// Char is the lower-case key for Letter entries, the digit for Digit
// entries and unused for indicator entries. Cells is the Braille sequence
// emitted for Char.
type Entry struct {
	Class Class
	Char  rune
	Cells string
}

// EntryReader yields table entries one-by-one.
// It should return io.EOF when the stream is exhausted.
type EntryReader interface {
	Next() (Entry, error)
}

// Table is a compiled, read-only Grade-1 Braille table.
//
// A table contains
//   - character entries (letters, punctuation, whitespace), indexed by rune
//   - ten digit cells
//   - the numeric and capital indicators.
//
// Tables are never modified after LoadTable returns and may be shared
// between goroutines.
type Table struct {
	index      cellmap.Paged // rune => slot into cells/classes
	cells      []string      // slot 0 is unused
	classes    []Class
	digits     [10]string
	numberSign string
	capSign    string
	Identifier string // Identifies the table
}

// LoadTable compiles entries from a streaming, format-agnostic source.
//
// File format parsing is intentionally outside the base package. Use adapters
// like package louis to parse concrete formats and feed this API.
func LoadTable(name string, reader EntryReader) (*Table, error) {
	t := &Table{
		cells:      make([]string, 1, 64),
		classes:    make([]Class, 1, 64),
		Identifier: fmt.Sprintf("table: %s", name),
	}
	var haveDigit [10]bool
	for {
		entry, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if entry.Cells == "" {
			return nil, fmt.Errorf("empty cells for %s entry %q", entry.Class, entry.Char)
		}
		switch entry.Class {
		case NumberSign:
			t.numberSign = entry.Cells
		case CapitalSign:
			t.capSign = entry.Cells
		case Digit:
			if entry.Char < '0' || entry.Char > '9' {
				return nil, fmt.Errorf("digit entry %q is not a decimal digit", entry.Char)
			}
			if haveDigit[entry.Char-'0'] {
				return nil, fmt.Errorf("duplicate digit entry %q", entry.Char)
			}
			haveDigit[entry.Char-'0'] = true
			t.digits[entry.Char-'0'] = entry.Cells
		case Letter, Punctuation, Space:
			if err := t.add(entry); err != nil {
				return nil, err
			}
		default:
			return nil, fmt.Errorf("unknown entry class %d for %q", entry.Class, entry.Char)
		}
	}
	if t.numberSign == "" {
		return nil, errors.New("table has no numeric indicator")
	}
	if t.capSign == "" {
		return nil, errors.New("table has no capital indicator")
	}
	for d, ok := range haveDigit {
		if !ok {
			return nil, fmt.Errorf("table has no cell for digit %d", d)
		}
	}
	tracer().Debugf("compiled %s: %d entries on %d index pages",
		t.Identifier, len(t.cells)-1, t.index.NumPages())
	return t, nil
}

func (t *Table) add(entry Entry) error {
	if entry.Char >= '0' && entry.Char <= '9' {
		return fmt.Errorf("%s entry %q collides with digit handling", entry.Class, entry.Char)
	}
	if entry.Class == Letter && unicode.IsUpper(entry.Char) {
		return fmt.Errorf("letter entry %q must be lower-case", entry.Char)
	}
	if t.index.Slot(entry.Char) != 0 {
		return fmt.Errorf("duplicate entry %q", entry.Char)
	}
	slot := len(t.cells)
	if slot > 0xFFFF {
		return errors.New("too many table entries")
	}
	if !t.index.Set(entry.Char, uint16(slot)) {
		return fmt.Errorf("entry %q is outside the Basic Multilingual Plane", entry.Char)
	}
	t.cells = append(t.cells, entry.Cells)
	t.classes = append(t.classes, entry.Class)
	return nil
}

// Lookup returns the Braille sequence for a single character, applying the
// same rules as Transliterate: digits are returned without the numeric
// indicator, upper-case letters with the capital indicator.
func (t *Table) Lookup(r rune) (string, bool) {
	if r >= '0' && r <= '9' {
		return t.digits[r-'0'], true
	}
	if cells, ok := t.upper(r); ok {
		return cells, true
	}
	return t.mapped(r)
}

// NumberSign returns the numeric indicator of the table.
func (t *Table) NumberSign() string { return t.numberSign }

// CapitalSign returns the capital indicator of the table.
func (t *Table) CapitalSign() string { return t.capSign }

// Len returns the number of character entries (digits and indicators excluded).
func (t *Table) Len() int { return len(t.cells) - 1 }

// mapped looks up r by its lower-case form.
func (t *Table) mapped(r rune) (string, bool) {
	slot := t.index.Slot(unicode.ToLower(r))
	if slot == 0 {
		return "", false
	}
	return t.cells[slot], true
}

// upper returns capital indicator + letter cell if r is an upper-case
// letter whose lower-case form is a letter entry.
func (t *Table) upper(r rune) (string, bool) {
	if !unicode.IsUpper(r) {
		return "", false
	}
	slot := t.index.Slot(unicode.ToLower(r))
	if slot == 0 || t.classes[slot] != Letter {
		return "", false
	}
	return t.capSign + t.cells[slot], true
}
