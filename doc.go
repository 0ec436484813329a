// Package csvtextab converts delimited text tables (CSV dialects) into
// LaTeX tabular markup.
//
// The package is a single linear pipeline: the whole input is read and
// decoded, parsed into rows, optionally projected onto a different column
// order, and emitted as a tabular environment with configurable alignment,
// row spacing, header rule, and escaping. There is no streaming mode; the
// alignment default and header-name resolution need the full table before
// any output is written.
//
// Core properties:
//   - Configurable delimiter and quote character, not just the comma
//   - Column projection by index or by header name, repeats allowed
//   - LaTeX special-character escaping, suppressible per field class
//   - Input and output text encodings resolved by IANA charset name
//
// Example:
//
//	reader := strings.NewReader("name,age\nBertha,3\nJane,5\n")
//	err := csvtextab.Convert(csvtextab.ConvertRequest{
//		Reader: reader,
//		Writer: os.Stdout,
//		Config: csvtextab.DefaultConfig(),
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
// Every option of the csvtextab command line tool maps onto a field of
// Config; see DefaultConfig for the defaults.
package csvtextab
