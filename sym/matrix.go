package sym

import "sort"

// The occurrence matrix maps every signed literal value to the clauses
// containing it. It is the single shared mutable structure of the engine:
// matching sweeps permute entries inside one literal's list (matched
// clauses move to the front of the unconsumed region) but never insert or
// remove anything after construction.

// matrix holds one occList per literal value in -nbVars..nbVars. The list
// for literal l lives at index l+nbVars, so lookup stays O(1) without
// negative indexing.
type matrix struct {
	nbVars int
	lists  []occList
}

func newMatrix(nbVars int) *matrix {
	return &matrix{
		nbVars: nbVars,
		lists:  make([]occList, 2*nbVars+1),
	}
}

func (m *matrix) at(lit Lit) *occList {
	return &m.lists[int(lit)+m.nbVars]
}

func (m *matrix) connect(lit Lit, c *Clause) {
	ol := m.at(lit)
	ol.clauses = append(ol.clauses, c)
}

func (m *matrix) count(lit Lit) int {
	return len(m.at(lit).clauses)
}

// An occList is one literal's occurrence list plus a consumption cursor.
// clauses[:mark] have been matched during the current sweep; a sweep
// searches only clauses[mark:] and swaps each match down to position mark.
// The permutation is permanent, the cursor is per-sweep.
type occList struct {
	clauses []*Clause
	mark    int
}

func (o *occList) rewind() {
	o.mark = 0
}

// consume moves the clause at absolute index j to the front of the
// unconsumed region and advances the cursor past it.
func (o *occList) consume(j int) {
	o.clauses[o.mark], o.clauses[j] = o.clauses[j], o.clauses[o.mark]
	o.mark++
}

// sortBySize orders the list by ascending clause length so a sweep over
// two size-sorted lists rejects size mismatches early.
func (o *occList) sortBySize() {
	sort.SliceStable(o.clauses, func(i, j int) bool {
		return o.clauses[i].Len() < o.clauses[j].Len()
	})
}
