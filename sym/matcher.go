package sym

import "fmt"

// A Rule is a substitution applied to the left-hand clause during
// matching. Rules are involutive permutations of the literal space: every
// literal has exactly one image and applying the rule twice is the
// identity. Literals of variables the rule does not affect are their own
// image.
type Rule interface {
	// Image returns the substituted value of lit.
	Image(lit Lit) Lit
	// Affects reports whether the rule moves literals of v.
	Affects(v Var) bool
	fmt.Stringer
}

type flipPolarity struct {
	v Var
}

// FlipPolarity returns the rule exchanging the two polarities of v.
func FlipPolarity(v Var) Rule {
	return flipPolarity{v}
}

func (r flipPolarity) Image(lit Lit) Lit {
	if lit.Var() == r.v {
		return lit.Neg()
	}
	return lit
}

func (r flipPolarity) Affects(v Var) bool {
	return v == r.v
}

func (r flipPolarity) String() string {
	return fmt.Sprintf("%d <-> %d", r.v, -r.v)
}

type swapVars struct {
	v1, v2 Var
}

// SwapVars returns the rule exchanging v1 and v2 while keeping polarities.
func SwapVars(v1, v2 Var) Rule {
	return swapVars{v1, v2}
}

func (r swapVars) Image(lit Lit) Lit {
	switch lit.Var() {
	case r.v1:
		if lit.IsPositive() {
			return r.v2.Lit()
		}
		return r.v2.NegLit()
	case r.v2:
		if lit.IsPositive() {
			return r.v1.Lit()
		}
		return r.v1.NegLit()
	}
	return lit
}

func (r swapVars) Affects(v Var) bool {
	return v == r.v1 || v == r.v2
}

func (r swapVars) String() string {
	return fmt.Sprintf("%d <-> %d", r.v1, r.v2)
}

// Matches reports whether applying rule to every literal of c1 yields the
// literal multiset of c2. Literal order is irrelevant on both sides.
//
// Each position of c1 scans the unmatched suffix of c2 and swaps its match
// to the front, so the suffix shrinks as the scan advances; a position
// with no match aborts immediately. Because the rule is a bijection on
// literals, a greedy pairing is complete and no backtracking is needed.
// When both clauses carry literals pre-sorted by |value| (see
// Options.SortLits) the quadratic scan degenerates to a single positional
// pass with the same verdict.
func Matches(c1, c2 *Clause, rule Rule) bool {
	if c1.Len() != c2.Len() {
		return false
	}
	if c1 == c2 {
		return matchesSelf(c1, rule)
	}
	if c1.sorted && c2.sorted {
		return matchesSorted(c1, c2, rule)
	}
	for i := 0; i < c1.Len(); i++ {
		img := rule.Image(c1.Get(i))
		found := false
		for j := i; j < c2.Len(); j++ {
			if c2.Get(j) == img {
				c2.swap(i, j)
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

// matchesSelf reports whether rule maps c's literal multiset onto itself.
// A clause containing both exchanged literals sits in both occurrence
// lists of a sweep and gets paired against itself; the in-place walk of
// Matches would then permute both sides at once, so the pairing is done
// against a copy instead.
func matchesSelf(c *Clause, rule Rule) bool {
	rest := c.Lits()
	for i := 0; i < c.Len(); i++ {
		img := rule.Image(c.Get(i))
		found := false
		for j, lit := range rest {
			if lit == img {
				rest[j] = rest[len(rest)-1]
				rest = rest[:len(rest)-1]
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

// matchesSorted compares two |value|-sorted clauses in a single pass.
// Literals of unaffected variables keep their relative order under
// substitution, so they must align pairwise; the few literals of
// substituted variables are collected on the side and compared as a small
// multiset at the end.
func matchesSorted(c1, c2 *Clause, rule Rule) bool {
	var left, right []Lit
	n := c1.Len()
	i, j := 0, 0
	for i < n || j < n {
		if i < n && rule.Affects(c1.Get(i).Var()) {
			left = append(left, rule.Image(c1.Get(i)))
			i++
			continue
		}
		if j < n && rule.Affects(c2.Get(j).Var()) {
			right = append(right, c2.Get(j))
			j++
			continue
		}
		if i == n || j == n {
			// One side has unaffected literals left, the other only
			// affected ones: the partitions differ in size.
			return false
		}
		if c1.Get(i) != c2.Get(j) {
			return false
		}
		i++
		j++
	}
	if len(left) != len(right) {
		return false
	}
	for _, lit := range left {
		found := false
		for k, other := range right {
			if other == lit {
				right[k] = right[len(right)-1]
				right = right[:len(right)-1]
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
