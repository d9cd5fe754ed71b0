package sym

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSymmetryString(t *testing.T) {
	assert.Equal(t, "c found symmetry on 3", Symmetry{Kind: Polarity, Vars: []Var{3}}.String())
	assert.Equal(t, "-1 2 0", Symmetry{Kind: Pair, Vars: []Var{1, 2}}.String())
	assert.Equal(t, "c found symmetry group: 1 2 5", Symmetry{Kind: Group, Vars: []Var{1, 2, 5}}.String())
}

func TestReportWrite(t *testing.T) {
	r := &Report{
		Symmetries: []Symmetry{
			{Kind: Polarity, Vars: []Var{2}},
			{Kind: Pair, Vars: []Var{1, 4}},
		},
		Candidates: 3,
	}
	var sb strings.Builder
	require.NoError(t, r.Write(&sb))
	assert.Equal(t, `c 3 candidates considered
c found 2 symmetries
c found symmetry on 2
-1 4 0
`, sb.String())
}

func TestReportWriteTruncated(t *testing.T) {
	r := &Report{Truncated: true}
	var sb strings.Builder
	require.NoError(t, r.Write(&sb))
	assert.Contains(t, sb.String(), "c search truncated, partial results follow")
	assert.Contains(t, sb.String(), "c found 0 symmetries")
}
