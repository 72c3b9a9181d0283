/*
Package cellmap indexes the characters of a Braille table.

Braille tables are small and clustered: a Latin table uses a few dozen
characters, nearly all of them from ASCII, with the odd typographic quote
from General Punctuation. Paged splits a BMP rune into its high and low
byte. The high byte selects one of 256 pages, which are only allocated
when a character of that block is entered; the low byte selects the slot
ID inside the page. Finding the entry of an input rune costs two array
reads.
*/
package cellmap

// Paged maps BMP runes to table slot IDs. Slot 0 marks a rune without entry.
// The zero value is an empty index.
type Paged struct {
	Top   [256]uint16 // 1-based page of each high byte, 0 if not allocated
	Pages []uint16    // slot IDs, 256 per allocated page
}

// Slot returns the slot ID of the table entry for r, or 0 if r has no
// entry. Runes outside the BMP never have one.
func (m *Paged) Slot(r rune) uint16 {
	if r < 0 || r > 0xFFFF {
		return 0
	}
	bmp := uint16(r)
	pi := m.Top[bmp>>8]
	if pi == 0 {
		return 0
	}
	return m.Pages[int(pi-1)<<8+int(bmp&0xFF)]
}

// NumPages returns how many 256-rune blocks have been allocated.
// Pages stay allocated when their entries are removed.
func (m *Paged) NumPages() int { return len(m.Pages) >> 8 }

// ensurePage returns the page for runes with high byte hi, appending a
// zeroed page on first use.
func (m *Paged) ensurePage(hi uint16) uint16 {
	pi := m.Top[hi]
	if pi != 0 {
		return pi
	}
	m.Pages = append(m.Pages, make([]uint16, 256)...)
	m.Top[hi] = uint16(m.NumPages())
	return m.Top[hi]
}

// Set enters r with the given slot ID; slot 0 removes the entry again.
// Runes outside the BMP cannot be entered and make Set return false.
func (m *Paged) Set(r rune, slot uint16) bool {
	if r < 0 || r > 0xFFFF {
		return false
	}
	bmp := uint16(r)
	hi := bmp >> 8
	pi := m.Top[hi]
	if pi == 0 {
		if slot == 0 {
			return true
		}
		pi = m.ensurePage(hi)
	}
	m.Pages[int(pi-1)<<8+int(bmp&0xFF)] = slot
	return true
}
