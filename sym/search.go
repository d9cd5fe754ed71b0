package sym

import "github.com/sirupsen/logrus"

// Search runs the symmetry search configured by opts over f and returns
// the report. The matching sweeps permanently permute f's occurrence
// lists and the literal order inside clauses; their contents never
// change, and a later search over the same formula reaches the same
// verdicts regardless of the order left behind.
func Search(f *Formula, opts *Options) *Report {
	if opts == nil {
		opts = &Options{}
	}
	s := &searcher{
		f:      f,
		opts:   opts,
		log:    opts.logger(),
		report: &Report{},
	}
	if opts.SortLits {
		f.sortAllLits()
	}
	if opts.Pairwise || opts.Groups {
		s.searchPairs()
	} else {
		s.searchPolarity()
	}
	return s.report
}

type searcher struct {
	f      *Formula
	opts   *Options
	log    *logrus.Logger
	report *Report
}

func (s *searcher) searchPolarity() {
	cands := s.f.polarityCandidates(s.opts.IncludeUnused)
	s.report.Candidates = len(cands)
	s.log.Infof("found %d candidates", len(cands))
	if limit := s.opts.maxCandidates(); len(cands) > limit {
		s.report.Truncated = true
		s.log.Infof("%d candidates exceed the limit of %d, skipping matching", len(cands), limit)
		return
	}
	for _, v := range cands {
		s.log.Tracef("checking candidate %d", v)
		if s.checkPolarity(v) {
			s.report.add(Symmetry{Kind: Polarity, Vars: []Var{v}})
		}
	}
}

// checkPolarity decides whether swapping the two polarities of v maps the
// clause set onto itself. The forward sweep pairs every clause containing
// v with a distinct clause containing -v; the strict default replays the
// sweep in the other direction as well.
func (s *searcher) checkPolarity(v Var) bool {
	rule := FlipPolarity(v)
	if !s.sweep(v.Lit(), v.NegLit(), rule) {
		return false
	}
	if s.opts.RelaxedPolarity {
		return true
	}
	return s.sweep(v.NegLit(), v.Lit(), rule)
}

// sweep pairs every clause of occ(a) with a clause of occ(b) equivalent
// under rule. By default matched clauses of occ(b) are consumed, moved to
// the front of the unconsumed region so later iterations only scan what
// is still unmatched, enforcing a one-to-one pairing. With NoConsume each
// clause of occ(a) scans the whole of occ(b). Returns false as soon as
// one clause of occ(a) finds no partner.
func (s *searcher) sweep(a, b Lit, rule Rule) bool {
	occA, occB := s.f.matrix.at(a), s.f.matrix.at(b)
	if len(occA.clauses) != len(occB.clauses) {
		return false
	}
	if s.opts.SortClauses {
		occA.sortBySize()
		occB.sortBySize()
	}
	occB.rewind()
	for _, c1 := range occA.clauses {
		found := false
		for j := occB.mark; j < len(occB.clauses); j++ {
			if Matches(c1, occB.clauses[j], rule) {
				if !s.opts.NoConsume {
					occB.consume(j)
				}
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func (s *searcher) searchPairs() {
	order := s.f.variableOrder(s.opts.SortVars)
	maxPairs := s.opts.maxPairs()
	checked := 0
	defer func() {
		s.report.PairsChecked = checked
		s.log.Infof("pairs checked: %d", checked)
	}()
	for i := 0; i < len(order); i++ {
		v1 := order[i]
		group := []Var{v1}
		for j := i + 1; j < len(order); j++ {
			checked++
			if checked > maxPairs {
				checked--
				s.report.Truncated = true
				s.log.Infof("pair limit of %d reached, reporting partial results", maxPairs)
				s.flushGroup(group)
				return
			}
			v2 := order[j]
			if !s.f.pairCandidate(v1, v2) {
				if s.opts.SortVars {
					// Counts only grow further down the sorted order.
					break
				}
				continue
			}
			s.report.Candidates++
			if !s.checkPair(v1, v2) {
				continue
			}
			if s.opts.Groups {
				// Pull the partner next to the representative so the
				// group's members end up contiguous; the outer scan
				// resumes after them.
				group = append(group, v2)
				order[i+1], order[j] = order[j], order[i+1]
				i++
			} else {
				s.report.add(Symmetry{Kind: Pair, Vars: []Var{v1, v2}})
			}
		}
		s.flushGroup(group)
	}
}

// checkPair decides whether v1 and v2 are interchangeable across the
// formula: the positive occurrence lists must pair up under the swap, and
// so must the negative ones.
func (s *searcher) checkPair(v1, v2 Var) bool {
	rule := SwapVars(v1, v2)
	return s.sweep(v1.Lit(), v2.Lit(), rule) && s.sweep(v1.NegLit(), v2.NegLit(), rule)
}

// flushGroup emits group if it grew beyond its representative.
func (s *searcher) flushGroup(group []Var) {
	if len(group) > 1 {
		s.report.add(Symmetry{Kind: Group, Vars: group})
	}
}
