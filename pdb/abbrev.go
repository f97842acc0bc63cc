package pdb

import "github.com/TuftsBCB/seq"

var aminoMap = map[string]seq.Residue{
	"UNK": 'X',
	"ALA": 'A', "ARG": 'R', "ASN": 'N', "ASP": 'D', "CYS": 'C',
	"GLU": 'E', "GLN": 'Q', "GLY": 'G', "HIS": 'H', "ILE": 'I',
	"LEU": 'L', "LYS": 'K', "MET": 'M', "PHE": 'F', "PRO": 'P',
	"SER": 'S', "THR": 'T', "TRP": 'W', "TYR": 'Y', "VAL": 'V',
	"SEC": 'U', "PYL": 'O',

	// Protonation states used by simulation packages.
	"HID": 'H', "HIE": 'H', "HIP": 'H', "HSD": 'H', "HSE": 'H',
	"CYX": 'C', "ASH": 'D', "GLH": 'E', "LYN": 'K',

	"ASX": 'X', "GLX": 'X',
}

var deoxyMap = map[string]seq.Residue{
	"DA": 'A', "DC": 'C', "DG": 'G', "DT": 'T', "DI": 'I', "DU": 'U',
}

var riboMap = map[string]seq.Residue{
	"A": 'A', "C": 'C', "G": 'G', "U": 'U', "I": 'I', "T": 'T',
	"N": 'X',
}

// seqType classifies a residue name by its length, which is how the PDB
// distinguishes amino acids from deoxy- and ribonucleotides.
type seqType int

const (
	seqUnknown seqType = iota
	seqProtein
	seqDeoxy
	seqRibo
)

func getAbbrevType(abbrev string) seqType {
	switch len(abbrev) {
	case 3:
		return seqProtein
	case 2:
		return seqDeoxy
	case 1:
		return seqRibo
	}
	return seqUnknown
}

func getAbbrev(abbrev string) seq.Residue {
	var m map[string]seq.Residue
	switch getAbbrevType(abbrev) {
	case seqProtein:
		m = aminoMap
	case seqDeoxy:
		m = deoxyMap
	case seqRibo:
		m = riboMap
	default:
		return 'X'
	}
	if v, ok := m[abbrev]; ok {
		return v
	}
	return 'X'
}
