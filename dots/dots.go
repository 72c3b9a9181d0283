// Package dots converts between dot-number notation and Unicode Braille
// patterns.
//
// Dot numbers follow the usual cell layout
//
//	1 4
//	2 5
//	3 6
//	7 8
//
// and map to the bits of the offset from U+2800 (dot 1 = bit 0, …, dot 8 = bit 7).
// Multi-cell sequences separate cells with '-', e.g. "56-236" for two cells.
package dots

import (
	"fmt"
	"strings"
)

// Blank is the empty Braille cell.
const Blank = '⠀'

const lastPattern = '⣿'

// IsPattern reports whether r is a Unicode Braille pattern.
func IsPattern(r rune) bool {
	return r >= Blank && r <= lastPattern
}

// Cell converts the dot numbers of one cell to its Braille pattern rune.
// "0" denotes the blank cell.
func Cell(pattern string) (rune, error) {
	if pattern == "" {
		return 0, fmt.Errorf("empty dot pattern")
	}
	if pattern == "0" {
		return Blank, nil
	}
	var bits rune
	for _, ch := range pattern {
		if ch < '1' || ch > '8' {
			return 0, fmt.Errorf("invalid dot %q in pattern %q", ch, pattern)
		}
		bit := rune(1) << (ch - '1')
		if bits&bit != 0 {
			return 0, fmt.Errorf("dot %q repeated in pattern %q", ch, pattern)
		}
		bits |= bit
	}
	return Blank + bits, nil
}

// Cells converts a '-'-separated list of dot patterns to a Braille string.
func Cells(pattern string) (string, error) {
	var b strings.Builder
	for _, part := range strings.Split(pattern, "-") {
		r, err := Cell(part)
		if err != nil {
			return "", err
		}
		b.WriteRune(r)
	}
	return b.String(), nil
}

// Format returns the dot numbers of Braille pattern r, e.g. "1246".
// The blank cell formats as "0". It returns false if r is not a Braille pattern.
func Format(r rune) (string, bool) {
	if !IsPattern(r) {
		return "", false
	}
	bits := r - Blank
	if bits == 0 {
		return "0", true
	}
	var b strings.Builder
	for i := 0; i < 8; i++ {
		if bits&(1<<i) != 0 {
			b.WriteByte(byte('1' + i))
		}
	}
	return b.String(), true
}

// FormatCells formats a Braille string as '-'-separated dot numbers.
// Runes which are not Braille patterns are rendered verbatim in quotes.
func FormatCells(s string) string {
	parts := make([]string, 0, len(s)/3+1)
	for _, r := range s {
		if f, ok := Format(r); ok {
			parts = append(parts, f)
		} else {
			parts = append(parts, fmt.Sprintf("%q", r))
		}
	}
	return strings.Join(parts, "-")
}
