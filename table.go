package csvtextab

import "strings"

// renderTabular emits the tabular environment for the projected table.
// header is the stripped header row (nil with NoHeader), cols the resolved
// projection, rows the full parsed table including any header row.
//
// The layout is byte-stable: tab-indented rows, "&\t" column separators
// with trailing tabs, "\\" row terminators carrying the optional "[vspace]"
// suffix, and a blank line between the header block and the data rows.
func renderTabular(rows [][]string, header []string, cols []int, cfg Config) string {
	if len(rows) == 0 || len(cols) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("\\begin{tabular}{")
	if cfg.TabularArg == "" {
		b.WriteString(strings.Repeat("c", len(cols)))
	} else {
		b.WriteString(cfg.TabularArg)
	}
	b.WriteString("}\n")

	terminator := "\\\\"
	if cfg.VSpace != "" {
		terminator += "[" + cfg.VSpace + "]"
	}

	if !cfg.NoHeader {
		b.WriteString("\t")
		if cols[0] < len(header) {
			b.WriteString(headerField(header[cols[0]], cfg))
		}
		b.WriteString("\t")
		for _, index := range cols[1:] {
			b.WriteString("&\t")
			if index < len(header) {
				b.WriteString(headerField(header[index], cfg))
				b.WriteString("\t")
			}
		}
		b.WriteString(terminator)
		if cfg.HeaderRule {
			b.WriteString("\n\t\\hline")
			if cfg.VSpace != "" {
				// An empty row with the negated spacing keeps the rule
				// attached to the first data row.
				b.WriteString(strings.Repeat("& ", len(cols)-1))
				b.WriteString("\\\\[-" + cfg.VSpace + "]")
			}
		}
		b.WriteString("\n\n")
	}

	start := 1
	if cfg.NoHeader {
		start = 0
	}
	for _, row := range rows[start:] {
		if len(row) == 0 {
			continue
		}
		b.WriteString("\t")
		if cols[0] < len(row) {
			b.WriteString(cellField(row[cols[0]], cfg))
		}
		b.WriteString("\t")
		for _, index := range cols[1:] {
			b.WriteString("&\t")
			if index < len(row) {
				b.WriteString(cellField(row[index], cfg))
				b.WriteString("\t")
			}
		}
		b.WriteString(terminator)
		b.WriteString("\n")
	}

	b.WriteString("\\end{tabular}\n")
	return b.String()
}

func headerField(s string, cfg Config) string {
	if cfg.RawHeader {
		return s
	}
	return Escape(s)
}

func cellField(s string, cfg Config) string {
	if cfg.RawCells {
		return s
	}
	return Escape(s)
}
