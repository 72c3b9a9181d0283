// Package commands implements the dhvani command line: transcription of
// text files and scanned images to Braille, table inspection and an HTTP
// server.
package commands
