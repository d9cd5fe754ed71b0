package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/symcnf/symcnf/sym"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "symcnf.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `verbosity: verbose
pairwise: true
groups: true
sort_variables: true
sort_clauses: true
no_consume: true
max_pairs: 500
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	opts := cfg.Options()
	assert.Equal(t, sym.Verbose, opts.Verbosity)
	assert.True(t, opts.Pairwise)
	assert.True(t, opts.Groups)
	assert.True(t, opts.SortVars)
	assert.False(t, opts.SortLits)
	assert.True(t, opts.SortClauses)
	assert.True(t, opts.NoConsume)
	assert.Equal(t, 500, opts.MaxPairs)
	assert.Equal(t, 0, opts.MaxCandidates)
}

func TestLoadPartialFileUsesDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "pairwise: true\n"))
	require.NoError(t, err)
	opts := cfg.Options()
	assert.Equal(t, sym.Normal, opts.Verbosity)
	assert.True(t, opts.Pairwise)
	assert.Equal(t, 0, opts.MaxPairs) // engine default kicks in
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"unknown verbosity", "verbosity: loud\n", "unknown verbosity"},
		{"negative max_pairs", "max_pairs: -1\n", "max_pairs must not be negative"},
		{"negative max_candidates", "max_candidates: -3\n", "max_candidates must not be negative"},
		{"not yaml", ": [\n", "could not parse"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, test.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), test.want)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "could not read config file")
}
