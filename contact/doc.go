/*
Package contact finds atoms on different chains of a PDB model that are
within a distance cutoff of each other.

The search is exhaustive: every residue in the model is compared against
every residue on a different chain, and every atom of the one against every
atom of the other. Since the residues of the model are compared against
themselves, each pair of atoms in contact is reported twice, once from the
point of view of each chain. Callers that want each pair only once should
keep the contacts for which A sorts before B.
*/
package contact
