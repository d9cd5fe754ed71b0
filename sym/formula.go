package sym

import (
	"fmt"

	"github.com/pkg/errors"
)

// A FormatError reports a literal that cannot belong to the formula it was
// added to: zero, or magnitude above the declared number of variables.
type FormatError struct {
	Lit    Lit // offending literal
	Clause int // creation rank the clause would have received
	NbVars int
}

func (e *FormatError) Error() string {
	if e.Lit == 0 {
		return fmt.Sprintf("null literal in clause %d", e.Clause)
	}
	return fmt.Sprintf("invalid literal %d in clause %d for formula with %d vars only", e.Lit, e.Clause, e.NbVars)
}

// A Formula is the full list of clauses plus the number of variables.
// It owns every clause it stores; the occurrence matrix only references
// them. Clauses are appended in input order and never removed, so a
// clause's identity is its insertion rank.
type Formula struct {
	NbVars  int
	Clauses []*Clause
	Empty   *Clause // first empty clause met, if any

	matrix *matrix
}

// NewFormula returns an empty formula over the variables 1..nbVars.
func NewFormula(nbVars int) *Formula {
	return &Formula{
		NbVars: nbVars,
		matrix: newMatrix(nbVars),
	}
}

// AddClause validates lits, appends the corresponding clause and connects
// each of its literals in the occurrence matrix. It returns the new
// clause's identity. The literal slice is copied; the caller keeps
// ownership of its argument.
func (f *Formula) AddClause(lits []Lit) (int, error) {
	id := len(f.Clauses)
	for _, lit := range lits {
		if lit == 0 || int(lit.Var()) > f.NbVars {
			return 0, errors.WithStack(&FormatError{Lit: lit, Clause: id, NbVars: f.NbVars})
		}
	}
	c := &Clause{id: id, lits: append([]Lit(nil), lits...)}
	f.Clauses = append(f.Clauses, c)
	for i, lit := range c.lits {
		if !litIn(c.lits[:i], lit) { // a clause enters each list once
			f.matrix.connect(lit, c)
		}
	}
	if c.Len() == 0 && f.Empty == nil {
		f.Empty = c
	}
	return id, nil
}

func litIn(lits []Lit, lit Lit) bool {
	for _, l := range lits {
		if l == lit {
			return true
		}
	}
	return false
}

// NbOccs returns the number of clauses containing lit.
func (f *Formula) NbOccs(lit Lit) int {
	return f.matrix.count(lit)
}

// Occs returns the clauses containing lit, in their current order. The
// order reflects past matching sweeps, not necessarily creation order.
func (f *Formula) Occs(lit Lit) []*Clause {
	return append([]*Clause(nil), f.matrix.at(lit).clauses...)
}

// sortAllLits pre-sorts every clause's literals by |value| so the matcher
// can use its positional mode.
func (f *Formula) sortAllLits() {
	for _, c := range f.Clauses {
		c.sortLits()
	}
}

// ParseSlice builds a formula from a slice of slices of CNF integer
// literals. The number of variables is the largest magnitude found.
func ParseSlice(cnf [][]int) (*Formula, error) {
	nbVars := 0
	for _, clause := range cnf {
		for _, val := range clause {
			v := val
			if v < 0 {
				v = -v
			}
			if v > nbVars {
				nbVars = v
			}
		}
	}
	f := NewFormula(nbVars)
	for _, clause := range cnf {
		if _, err := f.AddClause(IntsToLits(clause...)); err != nil {
			return nil, err
		}
	}
	return f, nil
}

// CNF returns a DIMACS CNF representation of the formula.
func (f *Formula) CNF() string {
	res := fmt.Sprintf("p cnf %d %d\n", f.NbVars, len(f.Clauses))
	for _, clause := range f.Clauses {
		res += fmt.Sprintf("%s\n", clause.CNF())
	}
	return res
}
