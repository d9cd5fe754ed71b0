package sym

// Basic types shared by the whole engine.

// A Var is a variable index. Valid variables range over 1..NbVars of the
// formula they belong to.
type Var int32

// A Lit is a signed literal: the magnitude is the variable index, the sign
// its polarity. Zero is never a valid literal inside a clause.
type Lit int32

// Lit returns the positive literal of v.
func (v Var) Lit() Lit {
	return Lit(v)
}

// NegLit returns the negative literal of v.
func (v Var) NegLit() Lit {
	return Lit(-v)
}

// Var returns the variable of l.
func (l Lit) Var() Var {
	if l < 0 {
		return Var(-l)
	}
	return Var(l)
}

// Neg returns the literal of the same variable with opposite polarity.
func (l Lit) Neg() Lit {
	return -l
}

// IsPositive is true iff l is > 0.
func (l Lit) IsPositive() bool {
	return l > 0
}

// IntsToLits converts CNF integer literals to Lits.
func IntsToLits(vals ...int) []Lit {
	res := make([]Lit, len(vals))
	for i, v := range vals {
		res[i] = Lit(v)
	}
	return res
}
