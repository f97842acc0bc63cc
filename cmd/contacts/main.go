// Command contacts prints every pair of atoms on different chains of a PDB
// file that are within a cutoff distance (in Ångström) of each other.
//
// Usage:
//
//	contacts [flags] input.pdb cutoff
//
// Each contact is printed on its own line as
//
//	resnameA atomnameA chainA resnumA resnameB atomnameB chainB resnumB distance
//
// Every pair is printed twice, once from each side. Hydrogen atoms are
// ignored.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"path"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/gdocking/calculate-contacts/config"
	"github.com/gdocking/calculate-contacts/contact"
	"github.com/gdocking/calculate-contacts/pdb"
)

const (
	exitOK = iota
	exitUsage
	exitFailure
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type flags struct {
	config  string
	sort    bool
	summary bool
	iface   string
	verbose bool
	flagSet *flag.FlagSet
	args    []string
}

func parseFlags(args []string, stdout io.Writer) (*flags, bool) {
	fl := &flags{}
	fs := flag.NewFlagSet("contacts", flag.ContinueOnError)
	fs.SetOutput(stdout)
	fs.StringVar(&fl.config, "config", "",
		"A TOML file with default settings. Flags override it.")
	fs.BoolVar(&fl.sort, "sort", false,
		"When set, contacts are sorted by chain, residue number and atom\n"+
			"name before they are printed.")
	fs.BoolVar(&fl.summary, "summary", false,
		"When set, the number of contacts between each pair of chains is\n"+
			"logged after the scan.")
	fs.StringVar(&fl.iface, "interface", "",
		"When set, the residues in contact are written to this file as one\n"+
			"FASTA entry per chain.")
	fs.BoolVar(&fl.verbose, "v", false, "Log debugging information.")
	fs.Usage = func() { usage(fs, stdout) }

	if err := fs.Parse(args); err != nil {
		return nil, false
	}
	if fs.NArg() != 2 {
		fs.Usage()
		return nil, false
	}
	fl.flagSet = fs
	fl.args = fs.Args()
	return fl, true
}

func usage(fs *flag.FlagSet, w io.Writer) {
	fmt.Fprintf(w, "Usage: %s [flags] <input.pdb> <cutoff>\n\n",
		path.Base(os.Args[0]))
	fs.PrintDefaults()
}

// settings merges the configuration file, if any, with the flags that were
// set on the command line.
func (fl *flags) settings() (config.Config, error) {
	cfg := config.Default()
	if len(fl.config) > 0 {
		var err error
		if cfg, err = config.Load(fl.config); err != nil {
			return config.Config{}, err
		}
	}
	fl.flagSet.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "sort":
			cfg.Sort = fl.sort
		case "summary":
			cfg.Summary = fl.summary
		case "interface":
			cfg.Interface = fl.iface
		case "v":
			if fl.verbose {
				cfg.LogLevel = "debug"
			}
		}
	})
	return cfg, cfg.Validate()
}

func run(args []string, stdout, stderr io.Writer) int {
	fl, ok := parseFlags(args, stdout)
	if !ok {
		return exitUsage
	}

	logger := newLogger(stderr, zerolog.InfoLevel)
	cfg, err := fl.settings()
	if err != nil {
		logger.Error().Err(err).Msg("Could not load settings.")
		return exitFailure
	}
	lvl, _ := cfg.Level()
	logger = logger.Level(lvl)

	pdbf, cutoffArg := fl.args[0], fl.args[1]
	cutoff, err := parseCutoff(cutoffArg)
	if err != nil {
		logger.Error().Err(err).Msg("Could not parse cutoff, make sure it's a number.")
		return exitFailure
	}

	m, err := pdb.ReadFile(pdbf)
	if err != nil {
		logReadError(logger, err)
		return exitFailure
	}
	logger.Debug().
		Str("path", m.Path).
		Int("residues", len(m.Residues)).
		Int("atoms", m.NumAtoms()).
		Strs("chains", m.Chains()).
		Msg("Read PDB file.")

	contacts, err := report(m, cutoff, cfg, stdout)
	if err != nil {
		logger.Error().Err(err).Msg("Could not write contacts.")
		return exitFailure
	}
	logger.Debug().Float64("cutoff", cutoff).Msg("Scan complete.")

	if cfg.Summary {
		for _, pc := range contact.Summarize(contacts) {
			logger.Info().
				Str("chain_a", pc.A).
				Str("chain_b", pc.B).
				Int("contacts", pc.Contacts).
				Msg("Chain pair.")
		}
	}
	if len(cfg.Interface) > 0 {
		if err := writeInterface(cfg.Interface, m, contacts, cfg.Columns); err != nil {
			logger.Error().Err(err).Msg("Could not write interface residues.")
			return exitFailure
		}
		logger.Debug().Str("path", cfg.Interface).Msg("Wrote interface residues.")
	}
	return exitOK
}

// parseCutoff reads the cutoff distance. It must be a non-negative number.
func parseCutoff(s string) (float64, error) {
	cutoff, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid cutoff %q: %w", s, err)
	}
	if math.IsNaN(cutoff) || cutoff < 0 {
		return 0, fmt.Errorf("invalid cutoff %q: must be a non-negative number", s)
	}
	return cutoff, nil
}

func logReadError(logger zerolog.Logger, err error) {
	var (
		ferr *pdb.FileAccessError
		merr *pdb.MalformedRecordError
	)
	switch {
	case errors.As(err, &ferr):
		logger.Error().Err(ferr.Err).Str("path", ferr.Path).
			Msg("Cannot open file.")
	case errors.As(err, &merr):
		logger.Error().Err(merr.Err).
			Str("path", merr.Path).
			Int("line", merr.Line).
			Str("field", merr.Field).
			Str("text", merr.Text).
			Msg("Malformed ATOM record.")
	default:
		logger.Error().Err(err).Msg("Could not read PDB file.")
	}
}

// report writes the contacts in m to w. Contacts are written as they are
// found, unless they have to be sorted first. The contacts are returned only
// when something else needs them (a summary or the interface residues).
func report(m *pdb.Model, cutoff float64, cfg config.Config,
	w io.Writer) ([]contact.Contact, error) {

	out := contact.NewWriter(w)
	if cfg.Sort {
		contacts := contact.All(m, cutoff)
		contact.Sort(contacts)
		return contacts, out.WriteAll(contacts)
	}

	keep := cfg.Summary || len(cfg.Interface) > 0
	var contacts []contact.Contact
	err := contact.Scan(m, cutoff, func(c contact.Contact) error {
		if keep {
			contacts = append(contacts, c)
		}
		return out.Write(c)
	})
	if err != nil {
		return nil, err
	}
	return contacts, out.Flush()
}
