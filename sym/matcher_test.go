package sym

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClause(vals ...int) *Clause {
	return &Clause{lits: IntsToLits(vals...)}
}

func TestFlipPolarityImage(t *testing.T) {
	r := FlipPolarity(2)
	assert.Equal(t, Lit(-2), r.Image(2))
	assert.Equal(t, Lit(2), r.Image(-2))
	assert.Equal(t, Lit(5), r.Image(5))
	assert.Equal(t, Lit(-5), r.Image(-5))
	assert.True(t, r.Affects(2))
	assert.False(t, r.Affects(5))
}

func TestSwapVarsImage(t *testing.T) {
	r := SwapVars(1, 3)
	assert.Equal(t, Lit(3), r.Image(1))
	assert.Equal(t, Lit(-3), r.Image(-1))
	assert.Equal(t, Lit(1), r.Image(3))
	assert.Equal(t, Lit(-1), r.Image(-3))
	assert.Equal(t, Lit(2), r.Image(2))
	assert.True(t, r.Affects(1))
	assert.True(t, r.Affects(3))
	assert.False(t, r.Affects(2))
}

func TestMatches(t *testing.T) {
	tests := []struct {
		name     string
		c1, c2   []int
		rule     Rule
		expected bool
	}{
		{"flip maps clause onto partner", []int{1, 2}, []int{-1, 2}, FlipPolarity(1), true},
		{"flip reversed literal order", []int{1, 2}, []int{2, -1}, FlipPolarity(1), true},
		{"flip rejects unrelated clause", []int{1, 2}, []int{-1, -2}, FlipPolarity(1), false},
		{"flip requires the flipped literal", []int{1, 2}, []int{1, 2}, FlipPolarity(1), false},
		{"size mismatch", []int{1, 2}, []int{-1, 2, 3}, FlipPolarity(1), false},
		{"swap maps pair", []int{1, 3}, []int{2, 3}, SwapVars(1, 2), true},
		{"swap keeps polarity", []int{-1, 3}, []int{2, 3}, SwapVars(1, 2), false},
		{"swap negative occurrence", []int{-1, 3}, []int{-2, 3}, SwapVars(1, 2), true},
		{"swap is a transposition", []int{1, 2}, []int{2, 1}, SwapVars(1, 2), true},
		{"empty clauses", nil, nil, FlipPolarity(1), true},
		{"duplicate literals", []int{1, 1, 2}, []int{-1, -1, 2}, FlipPolarity(1), true},
		{"duplicate count mismatch", []int{1, 1, 2}, []int{-1, 2, 2}, FlipPolarity(1), false},
		{"tautological clause", []int{1, -1, 2}, []int{-1, 1, 2}, FlipPolarity(1), true},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			c1, c2 := testClause(test.c1...), testClause(test.c2...)
			assert.Equal(t, test.expected, Matches(c1, c2, test.rule))

			// The sorted positional mode must reach the same verdict.
			s1, s2 := testClause(test.c1...), testClause(test.c2...)
			s1.sortLits()
			s2.sortLits()
			assert.Equal(t, test.expected, Matches(s1, s2, test.rule), "sorted mode disagrees")
		})
	}
}

// A clause containing both exchanged literals is paired against itself
// during a sweep, so Matches must cope with aliased arguments.
func TestMatchesSelf(t *testing.T) {
	c := testClause(1, -1, 2)
	assert.True(t, Matches(c, c, FlipPolarity(1)))
	assert.False(t, Matches(c, c, FlipPolarity(2)))

	d := testClause(1, 2)
	assert.True(t, Matches(d, d, SwapVars(1, 2)))
	assert.False(t, Matches(d, d, SwapVars(1, 3)))

	sorted := testClause(2, -1, 1)
	sorted.sortLits()
	assert.True(t, Matches(sorted, sorted, FlipPolarity(1)))
}

// refMatch is an independent multiset comparison: c2 must equal c1 with
// rule applied to every literal.
func refMatch(c1, c2 *Clause, rule Rule) bool {
	if c1.Len() != c2.Len() {
		return false
	}
	counts := make(map[Lit]int)
	for _, lit := range c1.Lits() {
		counts[rule.Image(lit)]++
	}
	for _, lit := range c2.Lits() {
		counts[lit]--
	}
	for _, n := range counts {
		if n != 0 {
			return false
		}
	}
	return true
}

func randomLits(rng *rand.Rand, size, nbVars int) []int {
	lits := make([]int, size)
	for i := range lits {
		lits[i] = rng.Intn(nbVars) + 1
		if rng.Intn(2) == 0 {
			lits[i] = -lits[i]
		}
	}
	return lits
}

func randomRule(rng *rand.Rand, nbVars int) Rule {
	if rng.Intn(2) == 0 {
		return FlipPolarity(Var(rng.Intn(nbVars) + 1))
	}
	v1 := Var(rng.Intn(nbVars) + 1)
	v2 := Var(rng.Intn(nbVars) + 1)
	return SwapVars(v1, v2)
}

func TestMatchesAgreesWithMultisetEquality(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	const nbVars = 4
	for i := 0; i < 10000; i++ {
		size := rng.Intn(6)
		lits1 := randomLits(rng, size, nbVars)
		rule := randomRule(rng, nbVars)
		c1 := testClause(lits1...)

		var c2 *Clause
		if rng.Intn(2) == 0 {
			c2 = testClause(randomLits(rng, size, nbVars)...)
		} else {
			// Build a real permuted image of c1 so positive cases occur.
			imgs := make([]Lit, size)
			for j, lit := range c1.Lits() {
				imgs[j] = rule.Image(lit)
			}
			rng.Shuffle(size, func(a, b int) { imgs[a], imgs[b] = imgs[b], imgs[a] })
			c2 = &Clause{lits: imgs}
		}

		expected := refMatch(c1, c2, rule)
		require.Equal(t, expected, Matches(c1, c2, rule),
			"iteration %d: c1=%v c2=%v rule=%v", i, c1.Lits(), c2.Lits(), rule)

		// Matching permutes c2's literals but never their multiset, and
		// the sorted mode must agree with the general one.
		c1.sortLits()
		c2.sortLits()
		require.Equal(t, expected, Matches(c1, c2, rule),
			"iteration %d: sorted mode disagrees", i)
	}
}
