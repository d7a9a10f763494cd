// Package content reads file bytes as text, permissively.
package content

import (
	"bytes"
	"fmt"
	"os"
	"strings"
)

// PlaceholderOpaque stands in for the content of files whose bytes are never
// read (known binary/media formats and denylisted names). The wording is
// part of the report format.
const PlaceholderOpaque = "Content ignored due to file type or rules"

// ReadFailurePlaceholder describes a file that could not be opened or fully
// read. The entry is still present in the report; the fault is inline.
func ReadFailurePlaceholder(err error) string {
	return fmt.Sprintf("Content unavailable: %v", err)
}

// ReadText reads the file at path and decodes it permissively: embedded null
// bytes are stripped (some text-like files carry stray nulls that corrupt
// downstream processing) and invalid UTF-8 sequences are replaced with
// U+FFFD rather than failing. Only the read itself can error.
func ReadText(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return Decode(raw), nil
}

// Decode converts raw bytes to a valid UTF-8 string, dropping null bytes and
// substituting the replacement marker for undecodable sequences.
func Decode(raw []byte) string {
	if i := bytes.IndexByte(raw, 0); i >= 0 {
		raw = bytes.ReplaceAll(raw, []byte{0}, nil)
	}
	return strings.ToValidUTF8(string(raw), "�")
}
