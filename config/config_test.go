package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearCouncilEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"COUNCIL_LLM_PROVIDER",
		"OLLAMA_HOST",
		"COUNCIL_DEFAULT_MODEL_ALIAS",
		"COUNCIL_REBUTTAL_ROUNDS",
		"COUNCIL_CONTEXT_WINDOW",
		"COUNCIL_CONSENSUS_BUDGET",
		"COUNCIL_DEBATES_DIR",
		"COUNCIL_DEBUG",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearCouncilEnv(t)

	s := Load()

	assert.Equal(t, "ollama", s.Provider)
	assert.Equal(t, "http://localhost:11434", s.OllamaHost)
	assert.Equal(t, "gpt_oss_latest", s.DefaultModelAlias)
	assert.Equal(t, 1, s.RebuttalRounds)
	assert.Zero(t, s.ContextWindow)
	assert.Zero(t, s.ConsensusBudget)
	assert.Equal(t, "debates", s.DebatesDir)
	assert.False(t, s.Debug)
	assert.Len(t, s.CouncilRoles, 5)

	_, ok := s.Models[s.DefaultModelAlias]
	assert.True(t, ok, "default alias must exist in the model table")
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearCouncilEnv(t)
	t.Setenv("COUNCIL_LLM_PROVIDER", "gemini")
	t.Setenv("COUNCIL_REBUTTAL_ROUNDS", "3")
	t.Setenv("COUNCIL_CONTEXT_WINDOW", "8")
	t.Setenv("COUNCIL_DEBUG", "true")

	s := Load()

	assert.Equal(t, "gemini", s.Provider)
	assert.Equal(t, 3, s.RebuttalRounds)
	assert.Equal(t, 8, s.ContextWindow)
	assert.True(t, s.Debug)
}

func TestLoad_MalformedIntFallsBack(t *testing.T) {
	clearCouncilEnv(t)
	t.Setenv("COUNCIL_REBUTTAL_ROUNDS", "many")
	t.Setenv("COUNCIL_CONSENSUS_BUDGET", "-5")

	s := Load()

	assert.Equal(t, 1, s.RebuttalRounds)
	assert.Zero(t, s.ConsensusBudget)
}

func TestOverrideAndGet(t *testing.T) {
	custom := &Settings{Provider: "ollama", DefaultModelAlias: "custom"}
	Override(custom)
	t.Cleanup(func() { Override(nil) })

	got := Get()
	require.Same(t, custom, got)
}
