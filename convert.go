package csvtextab

import (
	"errors"
	"fmt"
	"io"
)

// ConvertRequest bundles the input, output, and configuration of one run.
type ConvertRequest struct {
	Reader io.Reader
	Writer io.Writer
	Config Config
}

// Convert runs the whole pipeline: decode, parse, project, format, wrap,
// encode, write. Option conflicts and the column projection are validated
// before anything reaches the writer, so a failed run produces no output.
func Convert(req ConvertRequest) error {
	if req.Reader == nil || req.Writer == nil {
		return errors.New("csvtextab: reader and writer are required")
	}
	cfg := req.Config
	if cfg.Delimiter == 0 {
		cfg.Delimiter = ','
	}
	if cfg.Quote == 0 {
		cfg.Quote = '"'
	}
	if cfg.InputEncoding == "" {
		cfg.InputEncoding = "utf-8"
	}
	if cfg.OutputEncoding == "" {
		cfg.OutputEncoding = cfg.InputEncoding
	}
	if err := cfg.validate(); err != nil {
		return err
	}

	raw, err := io.ReadAll(req.Reader)
	if err != nil {
		return fmt.Errorf("csvtextab: read input: %w", err)
	}
	text, err := decodeInput(cfg.InputEncoding, raw)
	if err != nil {
		return err
	}
	rows, err := ParseTable(text, cfg.Delimiter, cfg.Quote)
	if err != nil {
		return err
	}

	body, err := renderBody(rows, cfg)
	if err != nil {
		return err
	}
	encoded, err := encodeOutput(cfg.OutputEncoding, wrapDocument(body, cfg))
	if err != nil {
		return err
	}
	if _, err := req.Writer.Write(encoded); err != nil {
		return fmt.Errorf("csvtextab: write output: %w", err)
	}
	return nil
}

// renderBody resolves the header and projection for the parsed rows and
// formats the tabular body. An empty table yields an empty body; the
// document wrapper still applies.
func renderBody(rows [][]string, cfg Config) (string, error) {
	if len(rows) == 0 {
		return "", nil
	}
	var header []string
	if !cfg.NoHeader {
		header = stripHeader(rows[0])
	}
	cols, err := cfg.Columns.Resolve(header, len(rows[0]))
	if err != nil {
		return "", err
	}
	if cfg.Verbose != nil {
		fmt.Fprintf(cfg.Verbose, "column headers: %q\n", header)
		fmt.Fprintf(cfg.Verbose, "selected columns: %v\n", cols)
	}
	if len(cols) == 0 {
		return "", nil
	}
	return renderTabular(rows, header, cols, cfg), nil
}
