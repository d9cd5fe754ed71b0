package sym

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Verbosity selects how chatty the engine's diagnostic logger is.
type Verbosity int

// Verbosity levels. The zero value is Normal.
const (
	Quiet Verbosity = iota - 1
	Normal
	Verbose
	Trace
)

// Level returns the logrus level corresponding to v.
func (v Verbosity) Level() logrus.Level {
	switch {
	case v <= Quiet:
		return logrus.ErrorLevel
	case v == Normal:
		return logrus.InfoLevel
	case v == Verbose:
		return logrus.DebugLevel
	default:
		return logrus.TraceLevel
	}
}

const (
	// DefaultMaxPairs bounds the pairwise scan, which is quadratic in the
	// number of variables on adversarial instances.
	DefaultMaxPairs = 1_000_000_000
	// DefaultMaxCandidates skips the polarity matching sweeps entirely
	// when too many variables pass the pre-filter.
	DefaultMaxCandidates = 10_000
)

// Options configures a symmetry search. There is no global state: every
// search carries its whole configuration here. The zero value runs the
// strict single-variable polarity search with default limits.
type Options struct {
	Verbosity Verbosity

	// Pairwise searches for interchangeable variable pairs instead of
	// single-variable polarity symmetries.
	Pairwise bool
	// Groups merges pairwise results into symmetry groups around a common
	// representative. Implies Pairwise.
	Groups bool
	// SortVars orders the pairwise working list by occurrence counts,
	// clustering likely partners and enabling early exit from the inner
	// scan on a count mismatch.
	SortVars bool
	// SortLits pre-sorts every clause's literals by |value| once,
	// switching the matcher to its linear positional mode.
	SortLits bool
	// SortClauses orders each occurrence list by ascending clause size
	// before it is swept, clustering equal sizes so size mismatches fail
	// fast. Verdicts do not depend on it.
	SortClauses bool
	// NoConsume disables the consumption of matched clauses during
	// sweeps: every clause of the left list scans the full right list,
	// and one clause may be paired more than once. Faster, but accepts
	// candidates the default one-to-one pairing rejects.
	NoConsume bool
	// RelaxedPolarity accepts a polarity candidate after the forward
	// sweep alone instead of checking both directions.
	RelaxedPolarity bool
	// IncludeUnused keeps variables without any occurrence in the
	// polarity candidate list.
	IncludeUnused bool

	// MaxPairs caps the number of pairs examined before the search stops
	// and reports partial results. 0 means DefaultMaxPairs.
	MaxPairs int
	// MaxCandidates caps the polarity candidate list; above it the
	// matching sweeps are skipped. 0 means DefaultMaxCandidates.
	MaxCandidates int

	// Logger receives engine diagnostics. When nil, a stderr logger
	// honoring Verbosity is built.
	Logger *logrus.Logger
}

func (o *Options) maxPairs() int {
	if o.MaxPairs > 0 {
		return o.MaxPairs
	}
	return DefaultMaxPairs
}

func (o *Options) maxCandidates() int {
	if o.MaxCandidates > 0 {
		return o.MaxCandidates
	}
	return DefaultMaxCandidates
}

func (o *Options) logger() *logrus.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetLevel(o.Verbosity.Level())
	return log
}
