package pdb

import (
	"strconv"
	"strings"
)

// Field is a fixed column range of an ATOM record. Start and End are
// 0-indexed and half-open, so the field is line[Start:End].
type Field struct {
	Name       string
	Start, End int
}

// Columns is the subset of the PDB ATOM record layout that is read.
// See http://www.wwpdb.org/documentation/file-format-content/format33/sect9.html#ATOM
var Columns = struct {
	AtomName    Field
	ResidueName Field
	Chain       Field
	SequenceNum Field
	X, Y, Z     Field
	Element     Field
}{
	AtomName:    Field{"atom name", 12, 16},
	ResidueName: Field{"residue name", 17, 20},
	Chain:       Field{"chain identifier", 21, 22},
	SequenceNum: Field{"residue sequence number", 22, 26},
	X:           Field{"x coordinate", 30, 38},
	Y:           Field{"y coordinate", 38, 46},
	Z:           Field{"z coordinate", 46, 54},
	Element:     Field{"element symbol", 76, 78},
}

// atomRecord is the record name that marks a line as an ATOM record.
const atomRecord = "ATOM"

// isAtomRecord reports whether the line begins with the ATOM record name.
func isAtomRecord(line string) bool {
	return strings.HasPrefix(line, atomRecord)
}

// Text returns the contents of the field in line, trimmed of surrounding
// whitespace. ok is false when line is too short to contain the field.
func (f Field) Text(line string) (text string, ok bool) {
	if f.End > len(line) {
		return "", false
	}
	return strings.TrimSpace(line[f.Start:f.End]), true
}

func (f Field) String() string {
	return f.Name
}

// fieldReader extracts fields from a single ATOM record. The first error
// encountered is kept and every later call is a no-op, so that a record can
// be read field by field and checked once at the end.
type fieldReader struct {
	path   string
	lineno int
	line   string
	err    error
}

func (fr *fieldReader) text(f Field) string {
	if fr.err != nil {
		return ""
	}
	s, ok := f.Text(fr.line)
	if !ok {
		fr.err = &MalformedRecordError{
			Path:  fr.path,
			Line:  fr.lineno,
			Field: f.Name,
			Text:  fr.line,
			Err:   ErrShortRecord,
		}
	}
	return s
}

func (fr *fieldReader) atoi(f Field) int {
	s := fr.text(f)
	if fr.err != nil {
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		fr.fail(f, s, err)
		return 0
	}
	return n
}

func (fr *fieldReader) atof(f Field) float64 {
	s := fr.text(f)
	if fr.err != nil {
		return 0
	}
	x, err := strconv.ParseFloat(s, 64)
	if err != nil {
		fr.fail(f, s, err)
		return 0
	}
	return x
}

func (fr *fieldReader) fail(f Field, text string, err error) {
	// Report the underlying cause (e.g., strconv.ErrSyntax) rather than the
	// *strconv.NumError, whose message repeats the text.
	if ne, ok := err.(*strconv.NumError); ok {
		err = ne.Err
	}
	fr.err = &MalformedRecordError{
		Path:  fr.path,
		Line:  fr.lineno,
		Field: f.Name,
		Text:  text,
		Err:   err,
	}
}
