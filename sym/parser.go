package sym

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

// readInt reads an int from r.
// 'b' is the last read byte. It can be a space, a '-' or a digit.
// All spaces before the int value are ignored.
// ok is false when the stream ends before any digit is seen; otherwise a
// value is returned, possibly together with io.EOF when the stream ends
// right after it.
func readInt(b *byte, r *bufio.Reader) (res int, ok bool, err error) {
	for err == nil && isSpace(*b) {
		*b, err = r.ReadByte()
	}
	if err == io.EOF {
		return 0, false, io.EOF
	}
	if err != nil {
		return 0, false, errors.Wrap(err, "could not read digit")
	}
	neg := 1
	if *b == '-' {
		neg = -1
		*b, err = r.ReadByte()
		if err != nil {
			return 0, false, errors.Wrap(err, "cannot read int")
		}
	}
	for err == nil {
		if *b < '0' || *b > '9' {
			return 0, false, errors.Errorf("cannot read int: %q is not a digit", *b)
		}
		res = 10*res + int(*b-'0')
		*b, err = r.ReadByte()
		if isSpace(*b) {
			break
		}
	}
	if err != nil && err != io.EOF {
		return 0, false, err
	}
	return neg * res, true, err
}

func parseHeader(r *bufio.Reader) (nbVars, nbClauses int, err error) {
	line, err := r.ReadString('\n')
	if err != nil && err != io.EOF {
		return 0, 0, errors.Wrap(err, "cannot read header")
	}
	fields := strings.Fields(line)
	if len(fields) != 3 || fields[0] != "cnf" {
		return 0, 0, errors.Errorf("invalid syntax %q in header", "p"+line)
	}
	nbVars, err = strconv.Atoi(fields[1])
	if err != nil || nbVars < 0 {
		return 0, 0, errors.Errorf("invalid variable count %q in header", fields[1])
	}
	nbClauses, err = strconv.Atoi(fields[2])
	if err != nil || nbClauses < 0 {
		return 0, 0, errors.Errorf("invalid clause count %q in header", fields[2])
	}
	return nbVars, nbClauses, nil
}

// ParseCNF parses a DIMACS CNF stream and returns the corresponding
// formula. The stream must declare its size in a 'p cnf <vars> <clauses>'
// header, comment lines start with 'c', and exactly the declared number
// of zero-terminated clauses must follow; a literal whose magnitude
// exceeds the declared number of variables is rejected. The returned
// formula is fully validated: the engine never re-checks these
// invariants.
func ParseCNF(f io.Reader) (*Formula, error) {
	r := bufio.NewReader(f)
	var (
		pb        *Formula
		nbClauses int
		parsed    int
	)
	b, err := r.ReadByte()
	for err == nil {
		switch {
		case b == 'c': // Ignore comment
			b, err = r.ReadByte()
			for err == nil && b != '\n' {
				b, err = r.ReadByte()
			}
		case b == 'p':
			if pb != nil {
				return nil, errors.New("duplicate header")
			}
			var nbVars int
			nbVars, nbClauses, err = parseHeader(r)
			if err != nil {
				return nil, errors.Wrap(err, "cannot parse CNF header")
			}
			pb = NewFormula(nbVars)
			pb.Clauses = make([]*Clause, 0, nbClauses)
		case isSpace(b):
			// Stray whitespace between clauses.
		default:
			if pb == nil {
				return nil, errors.Errorf("unexpected character %q before header", b)
			}
			lits := make([]Lit, 0, 3)
			for {
				val, ok, errRead := readInt(&b, r)
				if !ok {
					if errRead == io.EOF {
						if len(lits) != 0 {
							return nil, errors.New("terminating zero missing")
						}
						break // Only trailing spaces at the end of the stream.
					}
					return nil, errors.Wrapf(errRead, "cannot parse clause %d", parsed+1)
				}
				if val == 0 {
					if parsed == nbClauses {
						return nil, errors.New("too many clauses")
					}
					if _, err := pb.AddClause(lits); err != nil {
						return nil, errors.Wrapf(err, "cannot parse clause %d", parsed+1)
					}
					parsed++
					break
				}
				if val > pb.NbVars || -val > pb.NbVars {
					return nil, errors.Errorf("invalid literal %d for formula with %d vars only", val, pb.NbVars)
				}
				lits = append(lits, Lit(val))
				if errRead == io.EOF {
					return nil, errors.New("terminating zero missing")
				}
			}
		}
		b, err = r.ReadByte()
	}
	if err != io.EOF {
		return nil, err
	}
	if pb == nil {
		return nil, errors.New("no header found")
	}
	if parsed != nbClauses {
		return nil, errors.Errorf("clause missing: header declared %d clauses, got %d", nbClauses, parsed)
	}
	return pb, nil
}
