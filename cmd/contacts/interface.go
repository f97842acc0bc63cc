package main

import (
	"fmt"
	"os"

	"github.com/TuftsBCB/seq"

	"github.com/gdocking/calculate-contacts/contact"
	"github.com/gdocking/calculate-contacts/fasta"
	"github.com/gdocking/calculate-contacts/pdb"
)

// interfaceEntries turns the residues in contact into one FASTA entry per
// chain, in chain order. Each sequence is made of the single letter
// abbreviations of the residues, in model order.
func interfaceEntries(m *pdb.Model, contacts []contact.Contact) []fasta.Entry {
	iface := contact.Interface(m, contacts)
	entries := make([]fasta.Entry, 0, len(iface))
	for _, chain := range m.Chains() {
		residues, ok := iface[chain]
		if !ok {
			continue
		}
		sequence := make([]seq.Residue, len(residues))
		for i, r := range residues {
			sequence[i] = r.Abbrev()
		}
		entries = append(entries, fasta.Entry{
			Header: fmt.Sprintf("chain_%s interface (%d residues)",
				chain, len(residues)),
			Sequence: sequence,
		})
	}
	return entries
}

func writeInterface(fp string, m *pdb.Model, contacts []contact.Contact,
	cols int) error {

	f, err := os.Create(fp)
	if err != nil {
		return err
	}
	w := fasta.NewWriter(f)
	w.Columns = cols
	if err := w.WriteAll(interfaceEntries(m, contacts)); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
