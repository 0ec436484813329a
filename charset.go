package csvtextab

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
)

// lookupEncoding resolves an IANA charset name (or common alias) to a codec.
func lookupEncoding(name string) (encoding.Encoding, error) {
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil || enc == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEncoding, name)
	}
	return enc, nil
}

func isUTF8Name(name string) bool {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "utf-8", "utf8":
		return true
	}
	return false
}

// decodeInput decodes raw input bytes declared to be in the named charset
// into UTF-8 text. UTF-8 input is validated byte-for-byte; other charsets
// are decoded through their codec.
func decodeInput(name string, raw []byte) (string, error) {
	if isUTF8Name(name) {
		if !utf8.Valid(raw) {
			return "", fmt.Errorf("%w: invalid utf-8", ErrUndecodableInput)
		}
		return string(raw), nil
	}
	enc, err := lookupEncoding(name)
	if err != nil {
		return "", err
	}
	decoded, err := enc.NewDecoder().Bytes(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrUndecodableInput, name, err)
	}
	return string(decoded), nil
}

// encodeOutput encodes UTF-8 text into the named output charset.
func encodeOutput(name string, text string) ([]byte, error) {
	if isUTF8Name(name) {
		return []byte(text), nil
	}
	enc, err := lookupEncoding(name)
	if err != nil {
		return nil, err
	}
	encoded, err := enc.NewEncoder().Bytes([]byte(text))
	if err != nil {
		return nil, fmt.Errorf("csvtextab: cannot encode output as %s: %w", name, err)
	}
	return encoded, nil
}
