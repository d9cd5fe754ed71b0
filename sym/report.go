package sym

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Kind discriminates the three result shapes of a search.
type Kind int

const (
	// Polarity is a single variable invariant under swapping its two
	// polarities.
	Polarity Kind = iota
	// Pair is an ordered pair of interchangeable variables.
	Pair
	// Group is a set of variables pairwise interchangeable with a common
	// representative.
	Group
)

// A Symmetry is one search result. It is never mutated once reported.
type Symmetry struct {
	Kind Kind
	Vars []Var
}

func (s Symmetry) String() string {
	switch s.Kind {
	case Polarity:
		return fmt.Sprintf("c found symmetry on %d", s.Vars[0])
	case Pair:
		// Pseudo-clause asserting the equivalence of the two variables.
		return fmt.Sprintf("-%d %d 0", s.Vars[0], s.Vars[1])
	default:
		vars := make([]string, len(s.Vars))
		for i, v := range s.Vars {
			vars[i] = strconv.Itoa(int(v))
		}
		return "c found symmetry group: " + strings.Join(vars, " ")
	}
}

// A Report collects the discovered symmetries along with search counters.
type Report struct {
	Symmetries   []Symmetry
	Candidates   int  // candidates passing the cheap pre-filter
	PairsChecked int  // pairs examined; pairwise mode only
	Truncated    bool // the search hit one of its configured caps
}

func (r *Report) add(s Symmetry) {
	r.Symmetries = append(r.Symmetries, s)
}

// Write renders the report as DIMACS-style comment lines and
// pseudo-clauses.
func (r *Report) Write(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "c %d candidates considered\n", r.Candidates); err != nil {
		return err
	}
	if r.Truncated {
		if _, err := fmt.Fprintln(w, "c search truncated, partial results follow"); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, "c found %d symmetries\n", len(r.Symmetries)); err != nil {
		return err
	}
	for _, s := range r.Symmetries {
		if _, err := fmt.Fprintln(w, s); err != nil {
			return err
		}
	}
	return nil
}
