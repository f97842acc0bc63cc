package pdb

import (
	"fmt"
	"math"
	"sort"

	"github.com/TuftsBCB/seq"
	"github.com/TuftsBCB/structure"
)

// Model is every residue found in the ATOM records of a single PDB file.
//
// Residues are kept in the order in which they were first seen in the file.
// Each residue can also be looked up by its (chain, sequence number) key.
type Model struct {
	Path     string
	Residues []*Residue
	index    map[Key]*Residue
}

// Key is the identity of a residue within a model. Two ATOM records with
// the same key belong to the same residue.
type Key struct {
	Chain       string
	SequenceNum int
}

func (k Key) String() string {
	return fmt.Sprintf("%s%d", k.Chain, k.SequenceNum)
}

type Residue struct {
	Chain       string
	SequenceNum int

	// The residue name as found in the first ATOM record for this residue.
	// Later records with a different name do not change it.
	Name  string
	Atoms []Atom
}

type Atom struct {
	Name    string
	Element string
	structure.Coords
}

func newModel(path string) *Model {
	return &Model{
		Path:     path,
		Residues: make([]*Residue, 0, 100),
		index:    make(map[Key]*Residue, 100),
	}
}

// Residue returns the residue with the given chain identifier and sequence
// number. If no such residue exists, nil is returned.
func (m *Model) Residue(chain string, num int) *Residue {
	return m.index[Key{chain, num}]
}

// Chains returns the distinct chain identifiers in the model, sorted.
func (m *Model) Chains() []string {
	seen := make(map[string]bool, 4)
	chains := make([]string, 0, 4)
	for _, r := range m.Residues {
		if !seen[r.Chain] {
			seen[r.Chain] = true
			chains = append(chains, r.Chain)
		}
	}
	sort.Strings(chains)
	return chains
}

// NumAtoms returns the total number of atoms over all residues.
func (m *Model) NumAtoms() int {
	n := 0
	for _, r := range m.Residues {
		n += len(r.Atoms)
	}
	return n
}

// getOrMakeResidue returns the residue for the given key, creating it (with
// the name given) if it doesn't exist yet.
func (m *Model) getOrMakeResidue(k Key, name string) *Residue {
	if r, ok := m.index[k]; ok {
		return r
	}
	r := &Residue{
		Chain:       k.Chain,
		SequenceNum: k.SequenceNum,
		Name:        name,
		Atoms:       make([]Atom, 0, 8),
	}
	m.index[k] = r
	m.Residues = append(m.Residues, r)
	return r
}

func (r *Residue) Key() Key {
	return Key{r.Chain, r.SequenceNum}
}

// Abbrev returns the single letter abbreviation of this residue's name.
// Unknown residues are 'X'.
func (r *Residue) Abbrev() seq.Residue {
	return getAbbrev(r.Name)
}

func (r *Residue) String() string {
	return fmt.Sprintf("%s %s %d (%d atoms)",
		r.Name, r.Chain, r.SequenceNum, len(r.Atoms))
}

// Distance returns the Euclidean distance between two atoms.
func (a Atom) Distance(b Atom) float64 {
	dx, dy, dz := a.X-b.X, a.Y-b.Y, a.Z-b.Z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

func (a Atom) String() string {
	return fmt.Sprintf("(%s, %s, [%0.3f %0.3f %0.3f])",
		a.Name, a.Element, a.X, a.Y, a.Z)
}
