/*
Package sym detects syntactic symmetries in a propositional formula given
in conjunctive normal form: variables, or pairs of variables, whose
polarities can be swapped throughout the formula without changing the
clause set, up to clause and literal reordering. Such symmetries are
useful as a preprocessing step for satisfiability solvers, since
symmetric assignments can be pruned.

The detection is a sound but incomplete syntactic heuristic: it never
reports a variable or pair that is not symmetric, but it does not solve
the formula, does not find symmetries that are not visible as an exact
literal permutation of clauses, and makes no claim of covering the full
automorphism group.

# Describing a formula

A formula can be parsed from a DIMACS stream. If the io.Reader produces
the following content:

	p cnf 3 2
	1 3 0
	-1 3 0

the programmer can create the Formula by doing:

	f, err := sym.ParseCNF(r)

Alternatively, the equivalent list of lists of literals works too:

	f, err := sym.ParseSlice([][]int{{1, 3}, {-1, 3}})

# Searching for symmetries

A search is configured through an Options value and returns a Report:

	report := sym.Search(f, &sym.Options{})
	report.Write(os.Stdout)

For the formula above the variable 1 is reported as a polarity symmetry,
since swapping 1 and -1 maps each clause onto the other:

	c 1 candidates considered
	c found 1 symmetries
	c found symmetry on 1

With Options.Pairwise the engine looks for interchangeable variable
pairs instead, and with Options.Groups it merges those pairs into
symmetry groups around a common representative.

Searches mutate the order, never the contents, of the formula's
occurrence lists and clause literals: matched entries are moved to the
front so later scans skip them. Repeating a search on the same formula
yields the same verdicts.
*/
package sym
