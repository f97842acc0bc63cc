package pdb

import (
	"bufio"
	"compress/gzip"
	"io"
	"os"
	"path"
	"strings"
)

// ReadFile reads the PDB file at the path given into a model. If the file
// name ends with ".gz", gzip decompression will be used.
//
// A *FileAccessError is returned when the file cannot be read, and a
// *MalformedRecordError when one of its ATOM records cannot be parsed.
func ReadFile(fp string) (*Model, error) {
	lines, err := ReadLines(fp)
	if err != nil {
		return nil, err
	}
	return ParseLines(fp, lines)
}

// Read is like ReadFile, but reads the PDB data from any io.Reader.
// The returned model has an empty Path.
func Read(r io.Reader) (*Model, error) {
	lines, err := readLines(r)
	if err != nil {
		return nil, &FileAccessError{Err: err}
	}
	return ParseLines("", lines)
}

// ReadLines returns every line of the file at the path given, in order.
// Lines are not trimmed or filtered in any way, except that the line
// terminator ("\n" or "\r\n") is removed.
//
// If the file name ends with ".gz", gzip decompression will be used.
func ReadLines(fp string) ([]string, error) {
	f, err := OpenFile(fp)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	lines, err := readLines(f)
	if err != nil {
		return nil, &FileAccessError{Path: fp, Err: err}
	}
	return lines, nil
}

// OpenFile opens the file at the path given for reading. If the file name
// ends with ".gz", the returned reader decompresses it.
// Closing the returned reader closes the file.
func OpenFile(fp string) (io.ReadCloser, error) {
	f, err := os.Open(fp)
	if err != nil {
		return nil, &FileAccessError{Path: fp, Err: err}
	}
	if path.Ext(fp) != ".gz" {
		return f, nil
	}

	gz, err := gzip.NewReader(f)
	if err != nil {
		f.Close()
		return nil, &FileAccessError{Path: fp, Err: err}
	}
	return &gzipFile{gz, f}, nil
}

type gzipFile struct {
	*gzip.Reader
	f *os.File
}

func (g *gzipFile) Close() error {
	gerr := g.Reader.Close()
	if err := g.f.Close(); err != nil {
		return err
	}
	return gerr
}

func readLines(r io.Reader) ([]string, error) {
	lines := make([]string, 0, 1000)
	breader := bufio.NewReader(r)
	for {
		line, err := breader.ReadString('\n')
		if err == io.EOF && len(line) == 0 {
			break
		} else if err != nil && err != io.EOF {
			return nil, err
		}
		line = strings.TrimSuffix(line, "\n")
		line = strings.TrimSuffix(line, "\r")
		lines = append(lines, line)
		if err == io.EOF {
			break
		}
	}
	return lines, nil
}

// ParseLines builds a model from the ATOM records in lines. fp is only used
// for the model's Path and for error messages; it may be empty.
//
// Lines that are not ATOM records are ignored. ATOM records of hydrogen atoms
// are ignored too. Parsing stops at the first malformed ATOM record, in which
// case a *MalformedRecordError is returned and no model.
func ParseLines(fp string, lines []string) (*Model, error) {
	m := newModel(fp)
	for i, line := range lines {
		if !isAtomRecord(line) {
			continue
		}
		fr := &fieldReader{path: fp, lineno: i + 1, line: line}
		if err := m.parseAtom(fr); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// parseAtom adds the atom in a single ATOM record to the model, creating its
// residue if this is the first record seen for it.
func (m *Model) parseAtom(fr *fieldReader) error {
	// Hydrogens are dropped before anything else in the record is looked at.
	element := fr.text(Columns.Element)
	if fr.err != nil {
		return fr.err
	}
	if element == "H" {
		return nil
	}

	atom := Atom{
		Name:    fr.text(Columns.AtomName),
		Element: element,
	}
	atom.X = fr.atof(Columns.X)
	atom.Y = fr.atof(Columns.Y)
	atom.Z = fr.atof(Columns.Z)

	key := Key{
		Chain:       fr.text(Columns.Chain),
		SequenceNum: fr.atoi(Columns.SequenceNum),
	}
	resName := fr.text(Columns.ResidueName)
	if fr.err != nil {
		return fr.err
	}

	residue := m.getOrMakeResidue(key, resName)
	residue.Atoms = append(residue.Atoms, atom)
	return nil
}
