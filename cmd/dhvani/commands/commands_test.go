package commands

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/braille"
	"github.com/otiai10/gosseract/v2"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestTranslateStdin(t *testing.T) {
	out, err := run(t, "Hi, Bob!\n", "translate")
	if err != nil {
		t.Fatal(err)
	}
	if out != "⠠⠓⠊⠂⠀⠠⠃⠕⠃⠖\n" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestTranslateFileToFile(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "note.txt")
	if err := os.WriteFile(in, []byte("Room 101"), 0o600); err != nil {
		t.Fatal(err)
	}
	outFile := filepath.Join(dir, "note.brl")
	if _, err := run(t, "", "translate", in, "--out", outFile); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(outFile)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "⠠⠗⠕⠕⠍⠀⠼⠁⠚⠁" {
		t.Fatalf("unexpected file content %q", data)
	}
}

func TestTranslateNFC(t *testing.T) {
	out, err := run(t, "e\u0301", "translate", "--nfc")
	if err != nil {
		t.Fatal(err)
	}
	if out != "\u00e9" {
		t.Fatalf("expected composed passthrough, got %q", out)
	}
}

func TestTranslateWithTableFile(t *testing.T) {
	table := filepath.Join("..", "..", "..", "testdata", "en-ueb-g1.ctb")
	out, err := run(t, "Cat", "--table-file", table, "translate")
	if err != nil {
		t.Fatal(err)
	}
	if out != "⠠⠉⠁⠞" {
		t.Fatalf("unexpected output %q", out)
	}
	out, err = run(t, "", "tables", "en-ueb")
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(out) != "en-ueb-g1" {
		t.Fatalf("table file should replace the built-in table of the same name, have %q", out)
	}
}

func TestUnknownTable(t *testing.T) {
	if _, err := run(t, "abc", "--table", "nope", "translate"); err == nil {
		t.Fatalf("expected error for unknown table")
	}
}

func TestLookup(t *testing.T) {
	out, err := run(t, "", "lookup", "A#")
	if err != nil {
		t.Fatal(err)
	}
	want := "'A'\t⠠⠁\t6-1\n'#'\tunmapped\n"
	if out != want {
		t.Fatalf("lookup output:\n got %q\nwant %q", out, want)
	}
}

type closeFailure struct {
	bytes.Buffer
	closed bool
}

var errDiskFull = errors.New("disk full")

func (c *closeFailure) Close() error {
	c.closed = true
	return errDiskFull
}

func TestExportReportsCloseError(t *testing.T) {
	f := &closeFailure{}
	err := exportTo(context.Background(), braille.DefaultTable(), strings.NewReader("abc"), f)
	if !errors.Is(err, errDiskFull) {
		t.Fatalf("expected close error to be returned, got %v", err)
	}
	if !f.closed {
		t.Fatalf("export file was not closed")
	}
	if f.String() != "⠁⠃⠉" {
		t.Fatalf("unexpected export content %q", f.String())
	}
}

func TestTranslateOutInMissingDirectory(t *testing.T) {
	outFile := filepath.Join(t.TempDir(), "missing", "note.brl")
	if _, err := run(t, "abc", "translate", "--out", outFile); err == nil {
		t.Fatalf("expected error for unwritable output path")
	}
}

func TestScanEngine(t *testing.T) {
	engine, err := scanEngine(6)
	if err != nil {
		t.Fatal(err)
	}
	if engine.PageSegMode != gosseract.PSM_SINGLE_BLOCK {
		t.Fatalf("expected single block segmentation, have %d", engine.PageSegMode)
	}
	if engine, _ = scanEngine(0); engine.PageSegMode != 0 {
		t.Fatalf("psm 0 should keep the default, have %d", engine.PageSegMode)
	}
	if _, err := run(t, "", "scan", "--psm", "14", "page.png"); err == nil {
		t.Fatalf("expected error for out-of-range segmentation mode")
	}
}
