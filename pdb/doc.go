/*
Package pdb reads the ATOM records of a PDB file into a flat model of
residues, keyed by chain identifier and residue sequence number.

Only ATOM records are considered. Every other record (HEADER, SEQRES, HETATM,
MODEL, END and so on) is skipped without complaint, and all ATOM records in
the file are treated as belonging to a single model. Hydrogen atoms (element
symbol "H") are dropped while reading.

ATOM records are read using the fixed column layout described by the PDB
format. The layout is available as the Columns table. A record that is too
short for the layout, or whose numeric fields do not parse, is an error: a
model is never returned with atoms silently missing.

Files whose name ends in ".gz" are decompressed transparently.
*/
package pdb
