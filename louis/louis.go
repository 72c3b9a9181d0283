/*
Package louis reads Braille tables in a liblouis-like text format.

A table file holds one entry per line, an opcode followed by operands:

	# comment
	#-name: English Grade 1
	numsign 3456
	capsletter 6
	letter a 1
	digit 1 1
	punctuation , 2
	punctuation ( 5-126
	space \s 0
	space \n =

Dots are given as dot numbers, cells of a multi-cell sequence are separated
by '-'. "0" is the blank cell and "=" stands for the character itself.
Characters may be escaped as \s (space), \t, \n, \\ or \xhhhh.

Only the opcodes needed for uncontracted Braille are understood: letter,
lowercase, digit, punctuation, sign, math, space, numsign and capsletter
(capital is accepted as an alias). Other opcodes are skipped.
*/
package louis

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/npillmayer/braille"
	"github.com/npillmayer/braille/dots"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'braille.louis'
func tracer() tracing.Trace {
	return tracing.Select("braille.louis")
}

// LoadTable parses table data and returns a ready-to-use Braille table.
//
// Example usage:
//
//	f, _ := os.Open("path/to/en-ueb-g1.ctb")
//	defer f.Close()
//
//	table, err := louis.LoadTable("en-ueb-g1", f)
func LoadTable(name string, reader io.Reader) (*braille.Table, error) {
	return braille.LoadTable(name, NewReader(reader))
}

// Reader streams braille.Entry values from a table file.
type Reader struct {
	scanner    *bufio.Scanner
	identifier string
	line       int
}

// NewReader creates a reader for table data.
func NewReader(reader io.Reader) *Reader {
	return &Reader{
		scanner: bufio.NewScanner(reader),
	}
}

// Identifier returns the table name given by a "#-name:" line, if any has
// been read so far.
func (r *Reader) Identifier() string {
	return r.identifier
}

var opcodes = map[string]braille.Class{
	"letter":      braille.Letter,
	"lowercase":   braille.Letter,
	"digit":       braille.Digit,
	"punctuation": braille.Punctuation,
	"sign":        braille.Punctuation,
	"math":        braille.Punctuation,
	"space":       braille.Space,
	"numsign":     braille.NumberSign,
	"capsletter":  braille.CapitalSign,
	"capital":     braille.CapitalSign,
}

// Next returns the next table entry.
// It returns io.EOF when exhausted.
func (r *Reader) Next() (braille.Entry, error) {
	for r.scanner.Scan() {
		r.line++
		line := strings.TrimSpace(r.scanner.Text())
		if strings.HasPrefix(line, "#-name:") {
			r.identifier = strings.TrimSpace(line[7:])
			continue
		}
		if strings.HasPrefix(line, "#") || line == "" {
			continue
		}
		fields := strings.Fields(line)
		class, ok := opcodes[fields[0]]
		if !ok {
			tracer().Debugf("line %d: skipping unsupported opcode %q", r.line, fields[0])
			continue
		}
		entry, err := r.decodeEntry(class, fields[1:])
		if err != nil {
			tracer().Errorf("line %d: %v", r.line, err)
			return braille.Entry{}, fmt.Errorf("line %d: %w", r.line, err)
		}
		return entry, nil
	}
	if err := r.scanner.Err(); err != nil {
		return braille.Entry{}, err
	}
	return braille.Entry{}, io.EOF
}

func (r *Reader) decodeEntry(class braille.Class, operands []string) (braille.Entry, error) {
	entry := braille.Entry{Class: class}
	if class == braille.NumberSign || class == braille.CapitalSign {
		if len(operands) < 1 {
			return entry, fmt.Errorf("%s needs a dot pattern", class)
		}
		cells, err := dots.Cells(operands[0])
		if err != nil {
			return entry, err
		}
		entry.Cells = cells
		return entry, nil
	}
	if len(operands) < 2 {
		return entry, fmt.Errorf("%s needs a character and a dot pattern", class)
	}
	ch, err := unescape(operands[0])
	if err != nil {
		return entry, err
	}
	entry.Char = ch
	if operands[1] == "=" {
		entry.Cells = string(ch)
		return entry, nil
	}
	if entry.Cells, err = dots.Cells(operands[1]); err != nil {
		return entry, err
	}
	return entry, nil
}

// unescape decodes the character operand of an entry.
func unescape(s string) (rune, error) {
	runes := []rune(s)
	if len(runes) == 1 {
		return runes[0], nil
	}
	switch s {
	case `\s`:
		return ' ', nil
	case `\t`:
		return '\t', nil
	case `\n`:
		return '\n', nil
	case `\\`:
		return '\\', nil
	}
	if strings.HasPrefix(s, `\x`) && len(s) == 6 {
		n, err := strconv.ParseUint(s[2:], 16, 16)
		if err != nil {
			return 0, fmt.Errorf("invalid escape %q: %w", s, err)
		}
		return rune(n), nil
	}
	return 0, fmt.Errorf("character operand %q is not a single character", s)
}
