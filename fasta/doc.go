/*
Package fasta writes residue sequences in FASTA format.

The format used is the one described by NCBI:
http://blast.ncbi.nlm.nih.gov/blastcgihelp.shtml

Sequences are wrapped at 60 columns by default. Headers are never wrapped.
*/
package fasta
