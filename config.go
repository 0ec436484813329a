package csvtextab

import (
	"fmt"
	"io"
	"strings"
)

// Config holds every option of a single conversion run. It is built once,
// validated before the pipeline writes anything, and never mutated after.
type Config struct {
	// Delimiter separates fields in the input. Default ','.
	Delimiter byte
	// Quote wraps fields that contain the delimiter or newlines. Default '"'.
	Quote byte
	// InputEncoding is the IANA charset name of the input. Default "utf-8".
	InputEncoding string
	// OutputEncoding is the IANA charset name of the output. Empty means
	// the input encoding.
	OutputEncoding string
	// NoHeader treats the first row as data instead of column names.
	NoHeader bool
	// Columns is the projection applied to every row. The zero value keeps
	// the natural column order.
	Columns ColumnSpec
	// TabularArg overrides the tabular environment argument. Empty
	// synthesizes one centered token per output column. A supplied value is
	// used as-is; keeping it consistent with the column count is the
	// caller's responsibility.
	TabularArg string
	// VSpace is extra vertical space appended to every row terminator, as a
	// LaTeX length. May be negative unless HeaderRule is also set.
	VSpace string
	// HeaderRule emits \hline after the header row. Combined with a
	// non-negative VSpace it also emits an empty row with the negated
	// spacing, so the rule is not pushed away from the data.
	HeaderRule bool
	// RawHeader suppresses escaping of header names.
	RawHeader bool
	// RawCells suppresses escaping of data cells.
	RawCells bool
	// Standalone wraps the output in a minimal compilable LaTeX document.
	Standalone bool
	// PreText is inserted immediately before \begin{tabular}.
	PreText string
	// PostText is appended immediately after \end{tabular}.
	PostText string
	// Verbose receives resolution diagnostics when non-nil.
	Verbose io.Writer
}

// DefaultConfig returns the configuration used when no options are given:
// comma-separated, double-quoted, UTF-8 in and out, natural column order.
func DefaultConfig() Config {
	return Config{
		Delimiter:      ',',
		Quote:          '"',
		InputEncoding:  "utf-8",
		OutputEncoding: "utf-8",
	}
}

// validate checks flag combinations that can never produce sensible output.
// It runs before any input is read or output written.
func (c Config) validate() error {
	if c.HeaderRule && strings.HasPrefix(strings.TrimSpace(c.VSpace), "-") {
		return fmt.Errorf("%w: negative row spacing %q cannot be combined with a header rule", ErrOptionConflict, c.VSpace)
	}
	if c.NoHeader && c.Columns.ByName() {
		return fmt.Errorf("%w: name-based column selection needs a header row", ErrOptionConflict)
	}
	return nil
}
