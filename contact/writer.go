package contact

import (
	"bufio"
	"io"
)

// A Writer writes contacts, one per line, in the format of Contact.String.
type Writer struct {
	buf *bufio.Writer
	n   int
}

// NewWriter creates a new contact writer that writes to an io.Writer.
func NewWriter(w io.Writer) *Writer {
	return &Writer{buf: bufio.NewWriter(w)}
}

// Write writes a single contact. It has the signature expected by Scan, so
// that contacts can be written as they are found.
//
// You may need to call Flush in order for the contact to be written.
func (w *Writer) Write(c Contact) error {
	if _, err := w.buf.WriteString(c.String()); err != nil {
		return err
	}
	if err := w.buf.WriteByte('\n'); err != nil {
		return err
	}
	w.n++
	return nil
}

// WriteAll writes a slice of contacts and calls Flush.
func (w *Writer) WriteAll(contacts []Contact) error {
	for _, c := range contacts {
		if err := w.Write(c); err != nil {
			return err
		}
	}
	return w.Flush()
}

// Flush writes any buffered data to the underlying io.Writer.
func (w *Writer) Flush() error {
	return w.buf.Flush()
}

// Count returns the number of contacts written so far.
func (w *Writer) Count() int {
	return w.n
}
