package sym

import (
	"fmt"
	"sort"
	"strings"
)

// A Clause is an ordered list of Lit with a stable identity.
// After creation, only the order of its literals may change (the matcher
// permutes them); the multiset of literals never does.
type Clause struct {
	id     int
	lits   []Lit
	sorted bool // lits currently sorted by |value|; cleared by swap
}

// ID returns the creation rank of the clause inside its formula.
func (c *Clause) ID() int {
	return c.id
}

// Len returns the nb of lits in the clause.
func (c *Clause) Len() int {
	return len(c.lits)
}

// Get returns the ith literal from the clause.
func (c *Clause) Get(i int) Lit {
	return c.lits[i]
}

// swap swaps the ith and jth lits from the clause.
func (c *Clause) swap(i, j int) {
	if i == j {
		return
	}
	c.lits[i], c.lits[j] = c.lits[j], c.lits[i]
	c.sorted = false
}

// sortLits sorts the literals by increasing |value|, negative polarity
// first within a variable. Required before the positional matching mode.
func (c *Clause) sortLits() {
	sort.Slice(c.lits, func(i, j int) bool {
		vi, vj := c.lits[i].Var(), c.lits[j].Var()
		if vi != vj {
			return vi < vj
		}
		return c.lits[i] < c.lits[j]
	})
	c.sorted = true
}

// Lits returns a copy of the clause's literals in their current order.
func (c *Clause) Lits() []Lit {
	return append([]Lit(nil), c.lits...)
}

// CNF returns a DIMACS CNF representation of the clause.
func (c *Clause) CNF() string {
	var sb strings.Builder
	for _, lit := range c.lits {
		fmt.Fprintf(&sb, "%d ", lit)
	}
	sb.WriteString("0")
	return sb.String()
}
