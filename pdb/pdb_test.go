package pdb

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func init() {
	log.SetFlags(0)
}

// atomLine formats an 80 column ATOM record.
func atomLine(serial int, name, res, chain string, num int,
	x, y, z float64, element string) string {

	if len(name) < 4 {
		name = " " + name
	}
	return fmt.Sprintf("ATOM  %5d %-4s %3s %1s%4d    %8.3f%8.3f%8.3f"+
		"%6.2f%6.2f          %2s  ",
		serial, name, res, chain, num, x, y, z, 1.0, 0.0, element)
}

func TestReadFile(t *testing.T) {
	m := readPDB()

	require.Equal(t, "testdata/dimer.pdb", m.Path)
	require.Equal(t, []string{"A", "B", "C"}, m.Chains())
	require.Equal(t, 7, m.NumAtoms())

	keys := make([]string, len(m.Residues))
	for i, r := range m.Residues {
		keys[i] = r.Key().String()
	}
	require.Equal(t, []string{"A1", "A2", "B7", "C3"}, keys)

	ser := m.Residue("B", 7)
	require.NotNil(t, ser)
	require.Equal(t, "SER", ser.Name)
	require.Len(t, ser.Atoms, 2)
	require.Equal(t, "OG", ser.Atoms[0].Name)
	require.Equal(t, "CA", ser.Atoms[1].Name)

	require.Nil(t, m.Residue("B", 1))
	require.Nil(t, m.Residue("W", 101), "HETATM records must be ignored")
}

func TestReadGzip(t *testing.T) {
	plain := readPDB()
	gz, err := ReadFile("testdata/dimer.pdb.gz")
	require.NoError(t, err)

	require.Equal(t, len(plain.Residues), len(gz.Residues))
	for i := range plain.Residues {
		require.Equal(t, *plain.Residues[i], *gz.Residues[i])
	}
}

func TestHydrogensExcluded(t *testing.T) {
	m := readPDB()
	for _, r := range m.Residues {
		for _, a := range r.Atoms {
			require.NotEqual(t, "H", a.Element,
				"hydrogen %s in residue %s", a.Name, r)
		}
	}

	// A residue made only of hydrogens never makes it into the model.
	lines := []string{
		atomLine(1, "H1", "GLY", "A", 1, 0, 0, 0, "H"),
		atomLine(2, "H2", "GLY", "A", 1, 0, 0, 1, "H"),
	}
	m, err := ParseLines("", lines)
	require.NoError(t, err)
	require.Empty(t, m.Residues)
}

func TestColumnsRoundTrip(t *testing.T) {
	line := atomLine(42, "OE1", "GLU", "Z", -12, -101.25, 0.5, 999.999, "O")
	m, err := ParseLines("", []string{line})
	require.NoError(t, err)
	require.Len(t, m.Residues, 1)

	r := m.Residues[0]
	require.Equal(t, "GLU", r.Name)
	require.Equal(t, "Z", r.Chain)
	require.Equal(t, -12, r.SequenceNum)
	require.Len(t, r.Atoms, 1)

	a := r.Atoms[0]
	require.Equal(t, "OE1", a.Name)
	require.Equal(t, "O", a.Element)
	require.Equal(t, -101.25, a.X)
	require.Equal(t, 0.5, a.Y)
	require.Equal(t, 999.999, a.Z)
}

func TestColumnsText(t *testing.T) {
	line := atomLine(1, "CA", "ALA", "B", 17, 1, 2, 3, "C")
	cases := []struct {
		field Field
		want  string
	}{
		{Columns.AtomName, "CA"},
		{Columns.ResidueName, "ALA"},
		{Columns.Chain, "B"},
		{Columns.SequenceNum, "17"},
		{Columns.X, "1.000"},
		{Columns.Y, "2.000"},
		{Columns.Z, "3.000"},
		{Columns.Element, "C"},
	}
	for _, c := range cases {
		got, ok := c.field.Text(line)
		require.True(t, ok, c.field.Name)
		require.Equal(t, c.want, got, c.field.Name)
	}

	_, ok := Columns.Element.Text(line[:77])
	require.False(t, ok)
}

func TestSameResidueKey(t *testing.T) {
	lines := []string{
		atomLine(1, "N", "ALA", "A", 5, 0, 0, 0, "N"),
		atomLine(2, "N", "ALA", "B", 5, 0, 0, 0, "N"),
		atomLine(3, "CA", "GLY", "A", 5, 1, 0, 0, "C"),
	}
	m, err := ParseLines("", lines)
	require.NoError(t, err)
	require.Len(t, m.Residues, 2)

	r := m.Residue("A", 5)
	require.Equal(t, "ALA", r.Name, "the first residue name seen wins")
	require.Len(t, r.Atoms, 2)
	require.Equal(t, "N", r.Atoms[0].Name)
	require.Equal(t, "CA", r.Atoms[1].Name)
}

func TestMalformedCoordinate(t *testing.T) {
	good := atomLine(1, "CA", "ALA", "A", 1, 1, 2, 3, "C")
	bad := good[:38] + "   1.2.3" + good[46:]
	_, err := ParseLines("x.pdb", []string{good, "REMARK", bad})

	var merr *MalformedRecordError
	require.True(t, errors.As(err, &merr), "got %v", err)
	require.Equal(t, 3, merr.Line)
	require.Equal(t, Columns.Y.Name, merr.Field)
	require.Equal(t, "1.2.3", merr.Text)
	require.Contains(t, err.Error(), "x.pdb:3")
}

func TestMalformedSequenceNumber(t *testing.T) {
	good := atomLine(1, "CA", "ALA", "A", 1, 1, 2, 3, "C")
	bad := good[:22] + "  1A" + good[26:]
	_, err := ParseLines("", []string{bad})

	var merr *MalformedRecordError
	require.True(t, errors.As(err, &merr), "got %v", err)
	require.Equal(t, Columns.SequenceNum.Name, merr.Field)
}

func TestShortRecord(t *testing.T) {
	line := atomLine(1, "CA", "ALA", "A", 1, 1, 2, 3, "C")
	_, err := ParseLines("", []string{line[:66]})
	require.ErrorIs(t, err, ErrShortRecord)

	var merr *MalformedRecordError
	require.True(t, errors.As(err, &merr))
	require.Equal(t, Columns.Element.Name, merr.Field)
	require.Equal(t, 1, merr.Line)

	// Records that aren't ATOM records may be as short as they like.
	m, err := ParseLines("", []string{"END", "", "TER"})
	require.NoError(t, err)
	require.Empty(t, m.Residues)
}

// Hydrogen records are dropped before their coordinates are looked at.
func TestMalformedHydrogenSkipped(t *testing.T) {
	h := atomLine(1, "H", "ALA", "A", 1, 1, 2, 3, "H")
	h = h[:30] + "  broken" + h[38:]
	m, err := ParseLines("", []string{h})
	require.NoError(t, err)
	require.Empty(t, m.Residues)
}

func TestMissingFile(t *testing.T) {
	_, err := ReadFile("testdata/does-not-exist.pdb")

	var ferr *FileAccessError
	require.True(t, errors.As(err, &ferr), "got %v", err)
	require.Equal(t, "testdata/does-not-exist.pdb", ferr.Path)
	require.ErrorIs(t, err, fs.ErrNotExist)
}

func TestReadLines(t *testing.T) {
	lines, err := ReadLines("testdata/dimer.pdb")
	require.NoError(t, err)
	require.Len(t, lines, 14)
	require.Equal(t, "END", lines[len(lines)-1])
	require.Len(t, lines[0], 80, "trailing whitespace is kept")
}

func TestReadCRLF(t *testing.T) {
	a := atomLine(1, "CA", "ALA", "A", 1, 1, 2, 3, "C")
	b := atomLine(2, "CA", "ALA", "B", 1, 4, 5, 6, "C")
	m, err := Read(strings.NewReader(a + "\r\n" + b))
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B"}, m.Chains())
	require.Equal(t, "C", m.Residue("B", 1).Atoms[0].Element)
}

func TestAbbrev(t *testing.T) {
	cases := map[string]byte{
		"ALA": 'A', "TRP": 'W', "HIE": 'H', "XYZ": 'X',
		"DG": 'G', "U": 'U', "": 'X', "LONG": 'X',
	}
	for name, want := range cases {
		r := &Residue{Name: name}
		require.Equal(t, want, byte(r.Abbrev()), name)
	}
}

func TestAbbrevType(t *testing.T) {
	cases := map[string]seqType{
		"GLY": seqProtein, "DA": seqDeoxy, "U": seqRibo,
		"": seqUnknown, "ABCD": seqUnknown,
	}
	for name, want := range cases {
		require.Equal(t, want, getAbbrevType(name), name)
	}
}

func TestAtomDistance(t *testing.T) {
	m := readPDB()
	n := m.Residue("A", 1).Atoms[0]
	og := m.Residue("B", 7).Atoms[0]
	require.InDelta(t, 3.6, n.Distance(og), 1e-9)
	require.Equal(t, n.Distance(og), og.Distance(n))
}

func ExampleReadFile() {
	m, err := ReadFile("testdata/dimer.pdb")
	assert(err)
	for _, r := range m.Residues {
		fmt.Printf("%s %c\n", r, r.Abbrev())
	}
	fmt.Println(m.Residue("C", 3).Atoms[0])

	// Output:
	// GLY A 1 (2 atoms) G
	// ALA A 2 (2 atoms) A
	// SER B 7 (2 atoms) S
	// LYS C 3 (1 atoms) K
	// (NZ, N, [12.000 3.500 0.000])
}

func BenchmarkReadFile(b *testing.B) {
	for i := 0; i < b.N; i++ {
		readPDB()
	}
}

func readPDB() *Model {
	m, err := ReadFile("testdata/dimer.pdb")
	assert(err)
	return m
}

func assert(err error) {
	if err != nil {
		log.Fatalln(err)
	}
}
