package sym

import "sort"

// Candidate selection: cheap necessary conditions checked before the
// expensive matching sweeps. The filter may propose variables that turn
// out not to be symmetric, but it never drops one that is.

// polarityCandidates proposes every variable whose two polarities occur
// equally often. Unused variables (no occurrence in either polarity) are
// filtered out unless includeUnused is set.
func (f *Formula) polarityCandidates(includeUnused bool) []Var {
	var cands []Var
	for i := 1; i <= f.NbVars; i++ {
		v := Var(i)
		pos := f.NbOccs(v.Lit())
		if pos != f.NbOccs(v.NegLit()) {
			continue
		}
		if pos == 0 && !includeUnused {
			continue
		}
		cands = append(cands, v)
	}
	return cands
}

// variableOrder returns the working order of variables for the pairwise
// search. When sorted, variables are ordered by ascending
// (|occ(v)|, |occ(-v)|) so likely-symmetric ones sit next to each other
// and a count mismatch ends the inner scan early.
func (f *Formula) variableOrder(sorted bool) []Var {
	order := make([]Var, f.NbVars)
	for i := range order {
		order[i] = Var(i + 1)
	}
	if !sorted {
		return order
	}
	sort.SliceStable(order, func(i, j int) bool {
		pi, pj := f.NbOccs(order[i].Lit()), f.NbOccs(order[j].Lit())
		if pi != pj {
			return pi < pj
		}
		return f.NbOccs(order[i].NegLit()) < f.NbOccs(order[j].NegLit())
	})
	return order
}

// pairCandidate checks the necessary condition for v1 and v2 being
// interchangeable: equal positive occurrence counts, equal negative
// occurrence counts, and at least one positive occurrence.
func (f *Formula) pairCandidate(v1, v2 Var) bool {
	pos := f.NbOccs(v1.Lit())
	return pos != 0 &&
		pos == f.NbOccs(v2.Lit()) &&
		f.NbOccs(v1.NegLit()) == f.NbOccs(v2.NegLit())
}
