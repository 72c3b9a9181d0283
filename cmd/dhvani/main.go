package main

import (
	"os"

	"github.com/npillmayer/braille/cmd/dhvani/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
