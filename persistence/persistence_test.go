package persistence

import (
	"encoding/json"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"council/debate"
	"council/llm"
)

func sampleResult() *debate.Result {
	transcript := debate.NewTranscript(debate.Topic{
		ID:          "t1",
		Title:       "X",
		Description: "Y",
		Constraints: "Z",
	})
	transcript.Append("indian_historian", "Indian Historian", llm.RoleAssistant, "opening position", debate.StageOpening)
	transcript.Append("policymaker_expert", "Policy Analyst", llm.RoleAssistant, "rebuttal position", debate.StageRebuttal)

	return &debate.Result{
		Transcript: transcript,
		Consensus: &debate.ConsensusResult{
			Text:  "the council concludes",
			Notes: "summarizer=policymaker_expert",
		},
	}
}

func TestSaveDebateResult_WritesNamedRecord(t *testing.T) {
	dir := t.TempDir()

	path, err := SaveDebateResult(dir, sampleResult())
	require.NoError(t, err)

	// {UTC timestamp}_{topic id}.json
	assert.Regexp(t, regexp.MustCompile(`^\d{8}T\d{6}Z_t1\.json$`), filepath.Base(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var record DebateRecord
	require.NoError(t, json.Unmarshal(data, &record))
	assert.Equal(t, "t1", record.Topic.ID)
	assert.Equal(t, "X", record.Topic.Title)
	assert.Equal(t, "Z", record.Topic.Constraints)
	require.Len(t, record.Messages, 2)
	assert.Equal(t, 0, record.Messages[0].TurnIndex)
	assert.Equal(t, "opening", record.Messages[0].Stage)
	assert.Equal(t, "rebuttal", record.Messages[1].Stage)
	require.NotNil(t, record.Consensus)
	assert.Equal(t, "the council concludes", record.Consensus.Text)
}

func TestSaveDebateResult_EmptyTopicIDGetsPlaceholder(t *testing.T) {
	dir := t.TempDir()
	transcript := debate.NewTranscript(debate.Topic{Title: "X", Description: "Y"})
	result := &debate.Result{Transcript: transcript, Consensus: nil}

	path, err := SaveDebateResult(dir, result)
	require.NoError(t, err)
	assert.Contains(t, filepath.Base(path), "_topic.json")

	var record DebateRecord
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &record))
	assert.Nil(t, record.Consensus)
}

func TestListSavedDebates_MostRecentFirst(t *testing.T) {
	dir := t.TempDir()
	names := []string{
		"20240101T000000Z_a.json",
		"20250101T000000Z_b.json",
		"20230101T000000Z_c.json",
	}
	for _, name := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("{}"), 0o644))
	}

	paths, err := ListSavedDebates(dir, 2)
	require.NoError(t, err)
	require.Len(t, paths, 2)
	assert.Equal(t, "20250101T000000Z_b.json", filepath.Base(paths[0]))
	assert.Equal(t, "20240101T000000Z_a.json", filepath.Base(paths[1]))
}

func TestListSavedDebates_EmptyDir(t *testing.T) {
	paths, err := ListSavedDebates(t.TempDir(), 10)
	require.NoError(t, err)
	assert.Empty(t, paths)
}
