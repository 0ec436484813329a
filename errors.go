package csvtextab

import (
	"errors"
	"fmt"
)

var (
	// ErrUnterminatedQuote is returned when a quoted field is still open at end of input.
	ErrUnterminatedQuote = errors.New("csvtextab: unterminated quoted field")
	// ErrUnknownColumn is returned when a name-based projection references a header that does not exist.
	ErrUnknownColumn = errors.New("csvtextab: unknown column")
	// ErrIndexOutOfRange is returned when an index-based projection references a column outside the table.
	ErrIndexOutOfRange = errors.New("csvtextab: column index out of range")
	// ErrOptionConflict is returned when mutually exclusive options are combined.
	ErrOptionConflict = errors.New("csvtextab: conflicting options")
	// ErrUnknownEncoding is returned when an encoding name cannot be resolved.
	ErrUnknownEncoding = errors.New("csvtextab: unknown encoding")
	// ErrUndecodableInput is returned when the input bytes are invalid in the declared encoding.
	ErrUndecodableInput = errors.New("csvtextab: input not decodable in declared encoding")
)

// ParseError carries the input position of a table parsing failure.
type ParseError struct {
	Line   int
	Column int
	Err    error
}

// Error formats the parse error with the stored line and column.
func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("csvtextab: parse error on line %d, column %d: %v", e.Line, e.Column, e.Err)
}

// Unwrap returns the underlying error so ParseError works with errors.Is.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
