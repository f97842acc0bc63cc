// Example summary shows how to read PDB files in sequence and report what
// was found in their ATOM records.
package main

import (
	"flag"
	"fmt"
	"os"
	"path"
	"strings"

	"github.com/gdocking/calculate-contacts/pdb"
)

func main() {
	if flag.NArg() < 1 {
		usage()
	}
	for _, pdbfile := range flag.Args() {
		// pdb.ReadFile will return an error if 'pdbfile' could not be read
		// or has a malformed ATOM record. It will automatically decompress
		// gzipped files that end with a '.gz' extension.
		m, err := pdb.ReadFile(pdbfile)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Printf("%s: chains %s, %d residues, %d heavy atoms\n",
			pdbfile, strings.Join(m.Chains(), ","),
			len(m.Residues), m.NumAtoms())
	}
}

func init() {
	flag.Usage = usage
	flag.Parse()
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s pdb-file [ pdb-file ... ]\n",
		path.Base(os.Args[0]))
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nex. './%s ../../testdata/*.pdb'\n",
		path.Base(os.Args[0]))
	os.Exit(1)
}
