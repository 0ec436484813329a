package csvtextab

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// ColumnSpec selects and orders the output columns of a table. The zero
// value is the identity projection. A source column may be referenced more
// than once, producing a repeated output column.
type ColumnSpec struct {
	indices []int
	names   []string
}

// ColumnsByIndex builds a projection from 0-based source column indices.
func ColumnsByIndex(indices ...int) ColumnSpec {
	return ColumnSpec{indices: indices}
}

// ColumnsByName builds a projection from header names.
func ColumnsByName(names ...string) ColumnSpec {
	return ColumnSpec{names: names}
}

// ParseIndexSpec parses a comma-separated list of non-negative column
// indices, e.g. "1,0,0,2".
func ParseIndexSpec(s string) (ColumnSpec, error) {
	if s == "" {
		return ColumnSpec{}, fmt.Errorf("csvtextab: empty column index list")
	}
	parts := strings.Split(s, ",")
	indices := make([]int, 0, len(parts))
	for _, part := range parts {
		index, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return ColumnSpec{}, fmt.Errorf("csvtextab: invalid column index %q: expected a non-negative integer", part)
		}
		if index < 0 {
			return ColumnSpec{}, fmt.Errorf("%w: negative index %d", ErrIndexOutOfRange, index)
		}
		indices = append(indices, index)
	}
	return ColumnSpec{indices: indices}, nil
}

// ParseNameSpec parses a comma-separated list of header names, e.g.
// "name,title,name,address".
func ParseNameSpec(s string) (ColumnSpec, error) {
	if s == "" {
		return ColumnSpec{}, fmt.Errorf("csvtextab: empty column name list")
	}
	return ColumnSpec{names: strings.Split(s, ",")}, nil
}

// IsIdentity reports whether the spec is the identity projection.
func (c ColumnSpec) IsIdentity() bool {
	return len(c.indices) == 0 && len(c.names) == 0
}

// ByName reports whether the spec references columns by header name.
func (c ColumnSpec) ByName() bool {
	return len(c.names) > 0
}

// Resolve maps the spec to source column indices. Header names are matched
// against header (already stripped of leading whitespace); width is the
// field count of the first input row. Resolution happens exactly once per
// run, before any output is written.
func (c ColumnSpec) Resolve(header []string, width int) ([]int, error) {
	if c.IsIdentity() {
		indices := make([]int, width)
		for i := range indices {
			indices[i] = i
		}
		return indices, nil
	}
	if len(c.indices) > 0 {
		for _, index := range c.indices {
			if index >= width {
				return nil, fmt.Errorf("%w: index %d, table has %d columns", ErrIndexOutOfRange, index, width)
			}
		}
		return append([]int(nil), c.indices...), nil
	}
	byName := make(map[string]int, len(header))
	for i, name := range header {
		byName[name] = i
	}
	indices := make([]int, 0, len(c.names))
	for _, name := range c.names {
		index, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownColumn, name)
		}
		indices = append(indices, index)
	}
	return indices, nil
}

// stripHeader returns the header row with leading whitespace removed from
// every name. Data cells are never stripped.
func stripHeader(row []string) []string {
	header := make([]string, len(row))
	for i, name := range row {
		header[i] = strings.TrimLeftFunc(name, unicode.IsSpace)
	}
	return header
}
