package pdb

import (
	"errors"
	"fmt"
)

// ErrShortRecord is the cause of a MalformedRecordError when an ATOM record
// ends before one of the columns that is read.
var ErrShortRecord = errors.New("record is too short")

// FileAccessError is returned when a PDB file cannot be opened or read.
type FileAccessError struct {
	Path string
	Err  error
}

func (e *FileAccessError) Error() string {
	return fmt.Sprintf("Could not read PDB file '%s': %s", e.Path, e.Err)
}

func (e *FileAccessError) Unwrap() error {
	return e.Err
}

// MalformedRecordError is returned when an ATOM record is too short for the
// column layout, or when one of its numeric fields cannot be parsed.
type MalformedRecordError struct {
	Path  string
	Line  int
	Field string

	// Text is the offending field contents, or the whole record when the
	// record is too short.
	Text string
	Err  error
}

func (e *MalformedRecordError) Error() string {
	where := fmt.Sprintf("line %d", e.Line)
	if len(e.Path) > 0 {
		where = fmt.Sprintf("%s:%d", e.Path, e.Line)
	}
	return fmt.Sprintf("Malformed ATOM record (%s): could not read %s "+
		"from %q: %s", where, e.Field, e.Text, e.Err)
}

func (e *MalformedRecordError) Unwrap() error {
	return e.Err
}
