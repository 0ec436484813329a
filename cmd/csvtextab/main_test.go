package main

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/flinti/csvtextab"
)

func TestOptionsConfigDefaults(t *testing.T) {
	opts := options{encoding: "utf-8"}
	cfg, err := opts.config()
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	if cfg.Delimiter != ',' || cfg.Quote != '"' {
		t.Fatalf("unexpected dialect: %q %q", cfg.Delimiter, cfg.Quote)
	}
	if cfg.InputEncoding != "utf-8" || cfg.OutputEncoding != "utf-8" {
		t.Fatalf("unexpected encodings: %q %q", cfg.InputEncoding, cfg.OutputEncoding)
	}
	if !cfg.Columns.IsIdentity() {
		t.Fatal("expected identity projection")
	}
}

func TestOptionsConfigInformat(t *testing.T) {
	opts := options{encoding: "utf-8", informat: ";'"}
	cfg, err := opts.config()
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	if cfg.Delimiter != ';' || cfg.Quote != '\'' {
		t.Fatalf("unexpected dialect: %q %q", cfg.Delimiter, cfg.Quote)
	}

	opts.informat = "\t"
	cfg, err = opts.config()
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	if cfg.Delimiter != '\t' || cfg.Quote != '"' {
		t.Fatalf("single-char informat must keep default quote: %q %q", cfg.Delimiter, cfg.Quote)
	}

	opts.informat = ",\"x"
	if _, err := opts.config(); err == nil {
		t.Fatal("expected error for informat longer than 2 characters")
	}
}

func TestOptionsConfigColumnConflict(t *testing.T) {
	opts := options{encoding: "utf-8", columnInts: "1,0", columnNames: "a,b"}
	_, err := opts.config()
	if !errors.Is(err, csvtextab.ErrOptionConflict) {
		t.Fatalf("expected ErrOptionConflict, got %v", err)
	}
}

func TestOptionsConfigColumnSpecs(t *testing.T) {
	opts := options{encoding: "utf-8", columnInts: "1,0,0,2"}
	cfg, err := opts.config()
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	cols, err := cfg.Columns.Resolve(nil, 3)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if len(cols) != 4 || cols[0] != 1 || cols[1] != 0 || cols[2] != 0 || cols[3] != 2 {
		t.Fatalf("unexpected projection: %v", cols)
	}

	opts = options{encoding: "utf-8", columnInts: "1,x"}
	if _, err := opts.config(); err == nil {
		t.Fatal("expected error for non-integer index")
	}
}

func TestSplitEncodings(t *testing.T) {
	in, out, err := splitEncodings("latin1,utf-8")
	if err != nil {
		t.Fatalf("splitEncodings: %v", err)
	}
	if in != "latin1" || out != "utf-8" {
		t.Fatalf("unexpected encodings: %q %q", in, out)
	}

	in, out, err = splitEncodings("utf-8")
	if err != nil {
		t.Fatalf("splitEncodings: %v", err)
	}
	if in != "utf-8" || out != "utf-8" {
		t.Fatalf("single name must apply to both streams: %q %q", in, out)
	}

	if _, _, err := splitEncodings(""); err == nil {
		t.Fatal("expected error for empty encoding")
	}
	if _, _, err := splitEncodings("utf-8,"); err == nil {
		t.Fatal("expected error for empty output encoding")
	}
}

func TestOpenInputAndResolveOutput(t *testing.T) {
	dir := t.TempDir()
	inPath := filepath.Join(dir, "in.csv")
	if err := os.WriteFile(inPath, []byte("a,b\n1,2\n"), 0o644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}

	reader, closeIn, err := openInput(inPath)
	if err != nil {
		t.Fatalf("openInput: %v", err)
	}
	buf, _ := io.ReadAll(reader)
	if string(buf) != "a,b\n1,2\n" {
		t.Fatalf("unexpected input content: %q", string(buf))
	}
	if closeIn == nil {
		t.Fatal("expected a closer for a file input")
	}
	_ = closeIn.Close()

	reader, closeIn, err = openInput("-")
	if err != nil {
		t.Fatalf("openInput stdin: %v", err)
	}
	if reader != os.Stdin || closeIn != nil {
		t.Fatal("expected stdin with no closer for '-'")
	}

	outPath := filepath.Join(dir, "out.tex")
	writer, closeOut, err := resolveOutput(outPath)
	if err != nil {
		t.Fatalf("resolveOutput: %v", err)
	}
	if _, err := io.WriteString(writer, "ok"); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := closeOut.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	content, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(content) != "ok" {
		t.Fatalf("unexpected output content: %q", string(content))
	}

	writer, closeOut, err = resolveOutput("")
	if err != nil {
		t.Fatalf("resolveOutput stdout: %v", err)
	}
	if writer != os.Stdout || closeOut != nil {
		t.Fatal("expected stdout with no closer for empty path")
	}
}

func TestFileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	inPath := filepath.Join(dir, "pets.csv")
	outPath := filepath.Join(dir, "pets.tex")
	if err := os.WriteFile(inPath, []byte("name,age\nBertha,3\n"), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}

	reader, closeIn, err := openInput(inPath)
	if err != nil {
		t.Fatalf("openInput: %v", err)
	}
	defer func() { _ = closeIn.Close() }()
	writer, closeOut, err := resolveOutput(outPath)
	if err != nil {
		t.Fatalf("resolveOutput: %v", err)
	}

	opts := options{encoding: "utf-8", vspace: "4pt", headerRule: true}
	cfg, err := opts.config()
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	if err := csvtextab.Convert(csvtextab.ConvertRequest{Reader: reader, Writer: writer, Config: cfg}); err != nil {
		t.Fatalf("convert: %v", err)
	}
	if err := closeOut.Close(); err != nil {
		t.Fatalf("close output: %v", err)
	}

	content, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	text := string(content)
	if !strings.Contains(text, "\\begin{tabular}{cc}") {
		t.Fatalf("missing tabular opening in %q", text)
	}
	if !strings.Contains(text, "\\hline& \\\\[-4pt]") {
		t.Fatalf("missing compensating spacing row in %q", text)
	}
}
