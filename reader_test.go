package csvtextab

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTable(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name      string
		src       string
		delimiter byte
		quote     byte
		want      [][]string
	}{
		{
			name: "simple",
			src:  "name,age\nBertha,3\nJane,5\n",
			want: [][]string{{"name", "age"}, {"Bertha", "3"}, {"Jane", "5"}},
		},
		{
			name: "no trailing newline",
			src:  "a,b\nc,d",
			want: [][]string{{"a", "b"}, {"c", "d"}},
		},
		{
			name: "crlf line endings",
			src:  "a,b\r\nc,d\r\n",
			want: [][]string{{"a", "b"}, {"c", "d"}},
		},
		{
			name: "quoted delimiter",
			src:  "\"a,b\",c\n",
			want: [][]string{{"a,b", "c"}},
		},
		{
			name: "doubled quote",
			src:  "\"say \"\"hi\"\"\",x\n",
			want: [][]string{{`say "hi"`, "x"}},
		},
		{
			name: "embedded newline",
			src:  "\"two\nlines\",x\n",
			want: [][]string{{"two\nlines", "x"}},
		},
		{
			name: "blank lines skipped",
			src:  "a,b\n\n\nc,d\n",
			want: [][]string{{"a", "b"}, {"c", "d"}},
		},
		{
			name: "empty fields kept",
			src:  ",\na,\n",
			want: [][]string{{"", ""}, {"a", ""}},
		},
		{
			name: "bare quote is literal",
			src:  "it\"s,fine\n",
			want: [][]string{{`it"s`, "fine"}},
		},
		{
			name:      "semicolon and single quote dialect",
			src:       "'a;b';c\nd;e\n",
			delimiter: ';',
			quote:     '\'',
			want:      [][]string{{"a;b", "c"}, {"d", "e"}},
		},
		{
			name:      "tab delimiter",
			src:       "a\tb\nc\td\n",
			delimiter: '\t',
			want:      [][]string{{"a", "b"}, {"c", "d"}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rows, err := ParseTable(tt.src, tt.delimiter, tt.quote)
			require.NoError(t, err)
			assert.Equal(t, tt.want, rows)
		})
	}
}

func TestParseTableUnterminatedQuote(t *testing.T) {
	t.Parallel()
	_, err := ParseTable("a,b\nc,\"broken\n", 0, 0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnterminatedQuote))

	var parseErr *ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, 2, parseErr.Line)
	assert.Equal(t, 3, parseErr.Column)
}

func TestParseTableEmptyInput(t *testing.T) {
	t.Parallel()
	rows, err := ParseTable("", 0, 0)
	require.NoError(t, err)
	assert.Empty(t, rows)
}
