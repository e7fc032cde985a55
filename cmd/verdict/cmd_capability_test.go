package main

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/quizkit/verdict/internal/match"
)

func TestCapabilityCommand_OutputsValidJSON(t *testing.T) {
	out, err := runCommand(t, "capability")
	require.NoError(t, err)

	var profile match.Capability
	require.NoError(t, json.Unmarshal([]byte(out), &profile))
	require.GreaterOrEqual(t, profile.MaxSupportedTier, match.Tier1)
	require.LessOrEqual(t, profile.MaxSupportedTier, match.Tier3)
}
