package debate

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"council/llm"
)

func consensusTranscript(n int) []Message {
	var msgs []Message
	for i := 0; i < n; i++ {
		msgs = append(msgs, Message{
			SpeakerID:   fmt.Sprintf("role_%d", i),
			SpeakerName: fmt.Sprintf("Agent %d", i),
			Role:        llm.RoleAssistant,
			Content:     fmt.Sprintf("argument number %d with some substance", i),
			Stage:       StageOpening,
			TurnIndex:   i,
		})
	}
	return msgs
}

func TestGenerateConsensus_SelectsPolicyLead(t *testing.T) {
	client := &stubClient{}
	council := testCouncil(client, "indian_historian", PolicyLeadRoleID, "religion_expert")

	strategy := &PolicyLeadStrategy{}
	result, err := strategy.GenerateConsensus(context.Background(), testTopic(), consensusTranscript(3), council)

	require.NoError(t, err)
	assert.Equal(t, "summarizer="+PolicyLeadRoleID, result.Notes)
	assert.Equal(t, 1, client.calls)
}

func TestGenerateConsensus_FallsBackToFirstAgent(t *testing.T) {
	client := &stubClient{}
	council := testCouncil(client, "religion_expert", "indian_historian")

	strategy := &PolicyLeadStrategy{}
	result, err := strategy.GenerateConsensus(context.Background(), testTopic(), consensusTranscript(2), council)

	require.NoError(t, err)
	assert.Equal(t, "summarizer=religion_expert", result.Notes)
}

func TestGenerateConsensus_EmptyCouncilSentinel(t *testing.T) {
	client := &stubClient{}

	strategy := &PolicyLeadStrategy{}
	result, err := strategy.GenerateConsensus(context.Background(), testTopic(), consensusTranscript(4), nil)

	require.NoError(t, err)
	assert.Equal(t, "empty_council", result.Notes)
	assert.Zero(t, client.calls, "sentinel result must not touch the backend")
}

func TestGenerateConsensus_PromptEmbedsTopicAndTranscript(t *testing.T) {
	client := &stubClient{}
	council := testCouncil(client, PolicyLeadRoleID)

	strategy := &PolicyLeadStrategy{}
	_, err := strategy.GenerateConsensus(context.Background(), testTopic(), consensusTranscript(2), council)
	require.NoError(t, err)

	require.Len(t, client.conversations, 1)
	// system prompt + single user-role instruction message
	require.Len(t, client.conversations[0], 2)
	prompt := client.conversations[0][1].Content
	assert.Equal(t, llm.RoleUser, client.conversations[0][1].Role)
	assert.Contains(t, prompt, "Debate topic:\nX")
	assert.Contains(t, prompt, "argument number 0")
	assert.Contains(t, prompt, "argument number 1")
	assert.NotContains(t, prompt, omissionNote)
}

func TestFormatTranscript_UnboundedIncludesEverything(t *testing.T) {
	strategy := &PolicyLeadStrategy{}
	transcript := consensusTranscript(10)

	text, dropped := strategy.formatTranscript(transcript)

	assert.False(t, dropped)
	for i := range transcript {
		assert.Contains(t, text, fmt.Sprintf("argument number %d", i))
	}
}

func TestFormatTranscript_BudgetNeverExceeded(t *testing.T) {
	transcript := consensusTranscript(10)

	for _, budget := range []int{1, 50, 200, 500, 2000, 100000} {
		strategy := &PolicyLeadStrategy{CharBudget: budget}
		text, dropped := strategy.formatTranscript(transcript)

		assert.LessOrEqual(t, len(text), budget, "budget %d", budget)
		full, _ := (&PolicyLeadStrategy{}).formatTranscript(transcript)
		assert.Equal(t, dropped, len(text) < len(full), "budget %d", budget)
	}
}

func TestFormatTranscript_BudgetKeepsMostRecentInOrder(t *testing.T) {
	transcript := consensusTranscript(10)
	full, _ := (&PolicyLeadStrategy{}).formatTranscript(transcript)

	strategy := &PolicyLeadStrategy{CharBudget: len(full) / 2}
	text, dropped := strategy.formatTranscript(transcript)

	assert.True(t, dropped)
	assert.NotContains(t, text, "argument number 0")
	assert.Contains(t, text, "argument number 9")

	// Chronological order is restored after the newest-first walk.
	i8 := strings.Index(text, "argument number 8")
	i9 := strings.Index(text, "argument number 9")
	require.GreaterOrEqual(t, i8, 0)
	require.GreaterOrEqual(t, i9, 0)
	assert.Less(t, i8, i9)
}

func TestGenerateConsensus_OmissionNoteOnlyWhenDropped(t *testing.T) {
	client := &stubClient{}
	council := testCouncil(client, PolicyLeadRoleID)
	transcript := consensusTranscript(10)

	strategy := &PolicyLeadStrategy{CharBudget: 200}
	_, err := strategy.GenerateConsensus(context.Background(), testTopic(), transcript, council)
	require.NoError(t, err)

	prompt := client.conversations[0][1].Content
	assert.Contains(t, prompt, omissionNote)
}
