package csvtextab

import "strings"

// ParseTable parses decoded input text into rows of fields using the given
// delimiter and quote bytes. A field may be quoted to contain the delimiter
// or newlines literally; a doubled quote inside a quoted field is a literal
// quote. Blank lines produce no row. The whole input is parsed before
// anything else happens, so ParseTable returns the complete table or the
// first error.
func ParseTable(src string, delimiter, quote byte) ([][]string, error) {
	if delimiter == 0 {
		delimiter = ','
	}
	if quote == 0 {
		quote = '"'
	}

	var (
		rows  [][]string
		row   []string
		field strings.Builder

		line      = 1
		column    = 1
		inQuotes  bool
		quoteLine int
		quoteCol  int
		// sawContent tracks whether the current physical line carried any
		// field data, delimiter, or quote, so blank lines can be skipped.
		sawContent bool
	)

	endField := func() {
		row = append(row, field.String())
		field.Reset()
	}
	endRecord := func() {
		endField()
		if sawContent {
			rows = append(rows, row)
		}
		row = nil
		sawContent = false
		line++
		column = 1
	}

	for i := 0; i < len(src); i++ {
		b := src[i]

		if inQuotes {
			switch b {
			case quote:
				if i+1 < len(src) && src[i+1] == quote {
					field.WriteByte(quote)
					i++
					column += 2
					continue
				}
				inQuotes = false
				column++
			case '\n':
				field.WriteByte(b)
				line++
				column = 1
			default:
				field.WriteByte(b)
				column++
			}
			continue
		}

		switch b {
		case delimiter:
			endField()
			sawContent = true
			column++
		case '\n':
			endRecord()
		case '\r':
			if i+1 < len(src) && src[i+1] == '\n' {
				i++
			}
			endRecord()
		case quote:
			if field.Len() == 0 {
				inQuotes = true
				sawContent = true
				quoteLine = line
				quoteCol = column
				column++
				continue
			}
			// A quote after field data has no structural meaning; keep it
			// as literal data, matching the lenient common CSV dialect.
			field.WriteByte(b)
			sawContent = true
			column++
		default:
			field.WriteByte(b)
			sawContent = true
			column++
		}
	}

	if inQuotes {
		return nil, &ParseError{Line: quoteLine, Column: quoteCol, Err: ErrUnterminatedQuote}
	}
	// Flush a trailing record when the input does not end with a newline.
	if sawContent {
		endRecord()
	}
	return rows, nil
}
