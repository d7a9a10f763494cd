// Package report serializes the ordered entry sequence into the flat text
// report format.
package report

import (
	"fmt"
	"io"

	"github.com/themetalleg/project-structure/internal/walker"
)

// Delimiters of the report format. They are fixed so one implementation's
// reports stay machine-re-parsable.
const (
	dirHeaderFormat  = "########## Directory: %s ##########\n"
	fileHeaderFormat = "---------- File: %s ----------\n"
	fileFooter       = "----------------------------------------\n\n"
)

// Writer serializes entries to a single output stream.
type Writer struct {
	out   io.Writer
	files int
	dirs  int
}

// NewWriter creates a Writer over out.
func NewWriter(out io.Writer) *Writer {
	return &Writer{out: out}
}

// WriteEntry serializes one entry. Directory entries are a single header
// line; file entries are a header line, the content block and a closing
// delimiter.
func (w *Writer) WriteEntry(e walker.Entry) error {
	if e.IsDir {
		w.dirs++
		_, err := fmt.Fprintf(w.out, dirHeaderFormat, e.RelPath)
		return err
	}

	w.files++
	if _, err := fmt.Fprintf(w.out, fileHeaderFormat, e.RelPath); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w.out, "%s\n", e.Content); err != nil {
		return err
	}
	_, err := io.WriteString(w.out, fileFooter)
	return err
}

// WriteEntries serializes the whole sequence in order.
func (w *Writer) WriteEntries(entries []walker.Entry) error {
	for _, e := range entries {
		if err := w.WriteEntry(e); err != nil {
			return fmt.Errorf("report: failed to write entry '%s': %w", e.RelPath, err)
		}
	}
	return nil
}

// FileCount returns the number of file entries written so far.
func (w *Writer) FileCount() int { return w.files }

// DirCount returns the number of directory entries written so far.
func (w *Writer) DirCount() int { return w.dirs }
