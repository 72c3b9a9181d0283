/*
Package braille transcribes text to Grade-1 (uncontracted) Braille.

Text is mapped character by character to Unicode Braille patterns
(U+2800…U+28FF) using a Table. Decimal digit runs are introduced by a single
numeric indicator, every upper-case letter by a capital indicator. Characters
a table does not know are copied to the output unchanged, so transcription
never fails and never drops content.

A built-in English table is registered as "en-ueb-g1" and used by the
package-level Transliterate:

	braille.Transliterate("Cat 9") // => "⠠⠉⠁⠞⠀⠼⠊"

Further tables may be compiled from any EntryReader with LoadTable. Package
louis reads liblouis-style table files.

Grade-2 contractions and back-translation are not supported.

Further Reading

	https://www.unicode.org/charts/PDF/U2800.pdf   (Braille Patterns block)
	https://iceb.org/ueb.html                      (Unified English Braille)
	https://liblouis.io/                           (table format)

----------------------------------------------------------------------

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer@com>

All rights reserved.

License information is available in the LICENSE file.
*/
package braille

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'braille'
func tracer() tracing.Trace {
	return tracing.Select("braille")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
