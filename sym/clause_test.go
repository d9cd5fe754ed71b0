package sym

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClauseSortLits(t *testing.T) {
	c := testClause(3, -1, 2, 1)
	c.sortLits()
	assert.Equal(t, []Lit{-1, 1, 2, 3}, c.Lits())
	assert.True(t, c.sorted)

	// Any permutation invalidates the sorted flag.
	c.swap(0, 3)
	assert.False(t, c.sorted)
}

func TestClauseCNF(t *testing.T) {
	assert.Equal(t, "1 -2 3 0", testClause(1, -2, 3).CNF())
	assert.Equal(t, "0", testClause().CNF())
}

func TestClauseLitsIsACopy(t *testing.T) {
	c := testClause(1, 2)
	lits := c.Lits()
	lits[0] = 5
	assert.Equal(t, Lit(1), c.Get(0))
}
