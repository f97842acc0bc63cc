package contact

import (
	"fmt"
	"sort"

	"github.com/gdocking/calculate-contacts/pdb"
)

// PairCount is the number of contacts reported from chain A to chain B.
type PairCount struct {
	A, B     string
	Contacts int
}

func (pc PairCount) String() string {
	return fmt.Sprintf("%s-%s: %d", pc.A, pc.B, pc.Contacts)
}

// Summarize counts contacts per ordered pair of chains. Since every contact
// is reported from both sides, the count for (A, B) always equals the count
// for (B, A) when contacts come straight from Scan.
//
// The counts are sorted by chain A, then chain B.
func Summarize(contacts []Contact) []PairCount {
	type pair struct{ a, b string }
	counts := make(map[pair]int, 4)
	for _, c := range contacts {
		counts[pair{c.A.Chain, c.B.Chain}]++
	}

	pcs := make([]PairCount, 0, len(counts))
	for p, n := range counts {
		pcs = append(pcs, PairCount{A: p.a, B: p.b, Contacts: n})
	}
	sort.Slice(pcs, func(i, j int) bool {
		if pcs[i].A != pcs[j].A {
			return pcs[i].A < pcs[j].A
		}
		return pcs[i].B < pcs[j].B
	})
	return pcs
}

// Interface returns, for each chain, the residues of the model that take
// part in at least one of the contacts given. Residues are listed in model
// order. Chains without any such residue are absent from the map.
func Interface(m *pdb.Model, contacts []Contact) map[string][]*pdb.Residue {
	in := make(map[pdb.Key]bool, len(contacts))
	for _, c := range contacts {
		in[c.A.Key()] = true
		in[c.B.Key()] = true
	}

	residues := make(map[string][]*pdb.Residue, 4)
	for _, r := range m.Residues {
		if in[r.Key()] {
			residues[r.Chain] = append(residues[r.Chain], r)
		}
	}
	return residues
}
