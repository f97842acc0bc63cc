package contact

import (
	"fmt"
	"sort"

	"github.com/gdocking/calculate-contacts/pdb"
)

// Contact is a pair of atoms on different chains within the cutoff
// distance of each other.
type Contact struct {
	A, B     Side
	Distance float64
}

// Side identifies one atom of a contact by its residue and atom names.
type Side struct {
	Residue     string
	Atom        string
	Chain       string
	SequenceNum int
}

func newSide(r *pdb.Residue, a pdb.Atom) Side {
	return Side{
		Residue:     r.Name,
		Atom:        a.Name,
		Chain:       r.Chain,
		SequenceNum: r.SequenceNum,
	}
}

// Key returns the key of the residue on this side of the contact.
func (s Side) Key() pdb.Key {
	return pdb.Key{Chain: s.Chain, SequenceNum: s.SequenceNum}
}

func (s Side) String() string {
	return fmt.Sprintf("%s %s %s %d", s.Residue, s.Atom, s.Chain, s.SequenceNum)
}

// String returns the contact as a single line of space separated fields:
// both sides followed by the distance with three decimal places.
func (c Contact) String() string {
	return fmt.Sprintf("%s %s %0.3f", c.A, c.B, c.Distance)
}

// Swap returns the same contact seen from the other side.
func (c Contact) Swap() Contact {
	return Contact{A: c.B, B: c.A, Distance: c.Distance}
}

// Scan compares every atom of every residue in the model with every atom of
// every residue on a different chain, and calls emit for each pair whose
// distance is less than or equal to cutoff.
//
// The residues of the model are compared against themselves without regard
// to order, so each pair of atoms is emitted twice: once as (A, B) and once
// as (B, A). Emission follows model order.
//
// If emit returns an error, the scan stops and that error is returned.
func Scan(m *pdb.Model, cutoff float64, emit func(Contact) error) error {
	for _, resA := range m.Residues {
		for _, resB := range m.Residues {
			if resA.Chain == resB.Chain {
				continue
			}
			for _, atomA := range resA.Atoms {
				for _, atomB := range resB.Atoms {
					dist := atomA.Distance(atomB)
					// NaN distances (and NaN cutoffs) are never in contact.
					if !(dist <= cutoff) {
						continue
					}
					c := Contact{
						A:        newSide(resA, atomA),
						B:        newSide(resB, atomB),
						Distance: dist,
					}
					if err := emit(c); err != nil {
						return err
					}
				}
			}
		}
	}
	return nil
}

// All returns every contact found by Scan, in the order they were found.
func All(m *pdb.Model, cutoff float64) []Contact {
	contacts := make([]Contact, 0, 100)
	Scan(m, cutoff, func(c Contact) error {
		contacts = append(contacts, c)
		return nil
	})
	return contacts
}

// Sort sorts contacts by chain, residue number and atom name of side A, then
// of side B, then by distance.
func Sort(contacts []Contact) {
	sort.Sort(byKey(contacts))
}

type byKey []Contact

func (cs byKey) Len() int      { return len(cs) }
func (cs byKey) Swap(i, j int) { cs[i], cs[j] = cs[j], cs[i] }
func (cs byKey) Less(i, j int) bool {
	if c := compareSides(cs[i].A, cs[j].A); c != 0 {
		return c < 0
	}
	if c := compareSides(cs[i].B, cs[j].B); c != 0 {
		return c < 0
	}
	return cs[i].Distance < cs[j].Distance
}

func compareSides(s1, s2 Side) int {
	switch {
	case s1.Chain != s2.Chain:
		return compareStrings(s1.Chain, s2.Chain)
	case s1.SequenceNum != s2.SequenceNum:
		if s1.SequenceNum < s2.SequenceNum {
			return -1
		}
		return 1
	case s1.Atom != s2.Atom:
		return compareStrings(s1.Atom, s2.Atom)
	}
	return compareStrings(s1.Residue, s2.Residue)
}

func compareStrings(a, b string) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
