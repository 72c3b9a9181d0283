package braille

import "io"

// DefaultTableName is the registry name of the built-in English
// (Unified English Braille) Grade-1 table.
const DefaultTableName = "en-ueb-g1"

// defaultEntries is the built-in table. Space maps to the blank cell,
// newline is kept as a line break.
var defaultEntries = []Entry{
	{NumberSign, 0, "⠼"},
	{CapitalSign, 0, "⠠"},
	{Letter, 'a', "⠁"}, {Letter, 'b', "⠃"}, {Letter, 'c', "⠉"}, {Letter, 'd', "⠙"},
	{Letter, 'e', "⠑"}, {Letter, 'f', "⠋"}, {Letter, 'g', "⠛"}, {Letter, 'h', "⠓"},
	{Letter, 'i', "⠊"}, {Letter, 'j', "⠚"}, {Letter, 'k', "⠅"}, {Letter, 'l', "⠇"},
	{Letter, 'm', "⠍"}, {Letter, 'n', "⠝"}, {Letter, 'o', "⠕"}, {Letter, 'p', "⠏"},
	{Letter, 'q', "⠟"}, {Letter, 'r', "⠗"}, {Letter, 's', "⠎"}, {Letter, 't', "⠞"},
	{Letter, 'u', "⠥"}, {Letter, 'v', "⠧"}, {Letter, 'w', "⠺"}, {Letter, 'x', "⠭"},
	{Letter, 'y', "⠽"}, {Letter, 'z', "⠵"},
	{Digit, '1', "⠁"}, {Digit, '2', "⠃"}, {Digit, '3', "⠉"}, {Digit, '4', "⠙"},
	{Digit, '5', "⠑"}, {Digit, '6', "⠋"}, {Digit, '7', "⠛"}, {Digit, '8', "⠓"},
	{Digit, '9', "⠊"}, {Digit, '0', "⠚"},
	{Space, ' ', "⠀"},
	{Space, '\n', "\n"},
	{Punctuation, ',', "⠂"},
	{Punctuation, ';', "⠆"},
	{Punctuation, ':', "⠒"},
	{Punctuation, '.', "⠲"},
	{Punctuation, '!', "⠖"},
	{Punctuation, '?', "⠦"},
	{Punctuation, '\'', "⠄"},
	{Punctuation, '-', "⠤"},
	{Punctuation, '"', "⠠⠶"},
	{Punctuation, '(', "⠐⠣"},
	{Punctuation, ')', "⠐⠜"},
	{Punctuation, '/', "⠸⠌"},
}

var defaultTable = mustLoadDefault()

func mustLoadDefault() *Table {
	t, err := LoadTable(DefaultTableName, &entrySlice{entries: defaultEntries})
	assert(err == nil, "built-in Braille table does not compile")
	return t
}

// DefaultTable returns the built-in English Grade-1 table.
func DefaultTable() *Table {
	return defaultTable
}

// entrySlice serves a fixed list of entries.
type entrySlice struct {
	entries []Entry
	index   int
}

func (r *entrySlice) Next() (Entry, error) {
	if r.index >= len(r.entries) {
		return Entry{}, io.EOF
	}
	e := r.entries[r.index]
	r.index++
	return e, nil
}

// NewEntryReader returns an EntryReader serving entries in order.
func NewEntryReader(entries []Entry) EntryReader {
	return &entrySlice{entries: entries}
}
