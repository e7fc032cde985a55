package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeVectorFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "vectors.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestVectorsCommand_Conforming(t *testing.T) {
	path := writeVectorFile(t, `version: 1
vectors:
  - name: identity
    candidate: Mississippi
    answer: {primary: Mississippi, type: place}
    strictness: strict
    expect: {match_type: exact, confidence_min: 1, confidence_max: 1}
  - name: near miss
    candidate: Missisipi
    answer: {primary: Mississippi, type: place}
    strictness: standard
    expect: {match_type: fuzzy, confidence_min: 0.85, confidence_max: 0.95}
`)

	out, err := runCommand(t, "vectors", "--max-tier", "1", path)
	require.NoError(t, err)
	require.Contains(t, out, "conform")
}

func TestVectorsCommand_FailureSetsExitError(t *testing.T) {
	path := writeVectorFile(t, `version: 1
vectors:
  - name: impossible expectation
    candidate: banana
    answer: {primary: Mississippi, type: place}
    strictness: strict
    expect: {match_type: exact, confidence_min: 1, confidence_max: 1}
`)

	out, err := runCommand(t, "vectors", "--max-tier", "1", path)
	require.Error(t, err)

	var checkErr *CheckFailureError
	require.True(t, errors.As(err, &checkErr))
	require.Contains(t, out, "FAIL impossible expectation")
}

func TestVectorsCommand_SkipsUnreachableTiers(t *testing.T) {
	path := writeVectorFile(t, `version: 1
vectors:
  - name: needs a judge
    candidate: the powerhouse of the cell
    answer: {primary: mitochondria, type: scientific}
    strictness: lenient
    requires_tier: 3
    expect: {match_type: judged, confidence_min: 0.95, confidence_max: 1}
`)

	// Capped to the rule tier, the judged vector is skipped rather than run.
	out, err := runCommand(t, "vectors", "--max-tier", "1", path)
	require.NoError(t, err)
	require.Contains(t, out, "conform")
}

func TestVectorsCommand_RejectsBadFile(t *testing.T) {
	path := writeVectorFile(t, "version: 99\nvectors: []\n")

	_, err := runCommand(t, "vectors", path)
	require.Error(t, err)
	require.ErrorContains(t, err, "version")
}
