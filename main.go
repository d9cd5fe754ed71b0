// Package main provides the symcnf binary. It reads a CNF formula in
// DIMACS format and reports its syntactic symmetries: variables or
// variable pairs whose polarities can be swapped throughout the formula
// without changing the clause set.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/symcnf/symcnf/config"
	"github.com/symcnf/symcnf/sym"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "symcnf: error: %v\n", err)
		os.Exit(1)
	}
}

type cliFlags struct {
	quiet, verbose, trace bool

	pairwise      bool
	groups        bool
	sortVars      bool
	sortLits      bool
	sortClauses   bool
	noConsume     bool
	relaxed       bool
	includeUnused bool
	maxPairs      int
	maxCandidates int

	configPath string
}

func rootCmd() *cobra.Command {
	var flags cliFlags
	cmd := &cobra.Command{
		Use:   "symcnf [file.cnf]",
		Short: "Detect syntactic symmetries in a CNF formula",
		Long: `symcnf reads a formula in DIMACS CNF format, from a file or from
standard input, and reports its syntactic symmetries.

By default every variable occurring equally often in both polarities is
checked for a polarity symmetry. With --pairs the search looks for
interchangeable variable pairs instead, and --groups merges those pairs
into symmetry groups around a common representative.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, &flags)
		},
	}
	f := cmd.Flags()
	f.BoolVarP(&flags.quiet, "quiet", "q", false, "only report errors")
	f.BoolVarP(&flags.verbose, "verbose", "v", false, "sets verbose mode on")
	f.BoolVar(&flags.trace, "trace", false, "log every candidate checked")
	f.BoolVar(&flags.pairwise, "pairs", false, "search for interchangeable variable pairs")
	f.BoolVarP(&flags.groups, "groups", "g", false, "merge pairwise symmetries into groups (implies --pairs)")
	f.BoolVarP(&flags.sortVars, "sort-vars", "s", false, "order the pairwise scan by occurrence counts")
	f.BoolVar(&flags.sortLits, "sort-lits", false, "pre-sort clause literals, enabling the linear matcher")
	f.BoolVar(&flags.sortClauses, "sort-clauses", false, "pre-sort occurrence lists by clause size before sweeps")
	f.BoolVar(&flags.noConsume, "no-consume", false, "do not consume matched clauses during sweeps")
	f.BoolVar(&flags.relaxed, "relaxed", false, "accept polarity symmetries after the forward sweep alone")
	f.BoolVar(&flags.includeUnused, "include-unused", false, "keep variables without occurrences as candidates")
	f.IntVar(&flags.maxPairs, "max-pairs", 0, "cap on pairs examined (0 = default)")
	f.IntVar(&flags.maxCandidates, "max-candidates", 0, "cap on polarity candidates matched (0 = default)")
	f.StringVarP(&flags.configPath, "config", "c", "", "YAML configuration file (flags override it)")
	return cmd
}

func run(cmd *cobra.Command, args []string, flags *cliFlags) error {
	opts, err := buildOptions(cmd, flags)
	if err != nil {
		return err
	}
	in, name, err := input(args)
	if err != nil {
		return err
	}
	if closer, ok := in.(io.Closer); ok {
		defer closer.Close()
	}
	opts.Logger.Infof("reading from %q", name)
	f, err := sym.ParseCNF(in)
	if err != nil {
		return errors.Wrapf(err, "parse error in %q", name)
	}
	opts.Logger.Infof("parsed %d clauses over %d variables", len(f.Clauses), f.NbVars)
	report := sym.Search(f, opts)
	return report.Write(cmd.OutOrStdout())
}

// buildOptions merges the configuration file, if any, with the command
// line. A flag explicitly set always wins over the file value.
func buildOptions(cmd *cobra.Command, flags *cliFlags) (*sym.Options, error) {
	opts := &sym.Options{}
	if flags.configPath != "" {
		cfg, err := config.Load(flags.configPath)
		if err != nil {
			return nil, err
		}
		opts = cfg.Options()
	}
	f := cmd.Flags()
	if f.Changed("pairs") {
		opts.Pairwise = flags.pairwise
	}
	if f.Changed("groups") {
		opts.Groups = flags.groups
	}
	if f.Changed("sort-vars") {
		opts.SortVars = flags.sortVars
	}
	if f.Changed("sort-lits") {
		opts.SortLits = flags.sortLits
	}
	if f.Changed("sort-clauses") {
		opts.SortClauses = flags.sortClauses
	}
	if f.Changed("no-consume") {
		opts.NoConsume = flags.noConsume
	}
	if f.Changed("relaxed") {
		opts.RelaxedPolarity = flags.relaxed
	}
	if f.Changed("include-unused") {
		opts.IncludeUnused = flags.includeUnused
	}
	if f.Changed("max-pairs") {
		opts.MaxPairs = flags.maxPairs
	}
	if f.Changed("max-candidates") {
		opts.MaxCandidates = flags.maxCandidates
	}
	switch {
	case flags.trace:
		opts.Verbosity = sym.Trace
	case flags.verbose:
		opts.Verbosity = sym.Verbose
	case flags.quiet:
		opts.Verbosity = sym.Quiet
	}
	if opts.MaxPairs < 0 {
		return nil, errors.Errorf("--max-pairs must not be negative, got %d", opts.MaxPairs)
	}
	if opts.MaxCandidates < 0 {
		return nil, errors.Errorf("--max-candidates must not be negative, got %d", opts.MaxCandidates)
	}
	log := logrus.New()
	log.SetOutput(cmd.ErrOrStderr())
	log.SetLevel(opts.Verbosity.Level())
	opts.Logger = log
	return opts, nil
}

func input(args []string) (io.Reader, string, error) {
	if len(args) == 0 {
		return os.Stdin, "<stdin>", nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, "", errors.Wrapf(err, "could not open %q", args[0])
	}
	return f, args[0], nil
}
