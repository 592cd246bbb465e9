package debate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"council/llm"
)

func TestBasicProtocol_SpeaksInCouncilOrder(t *testing.T) {
	client := &stubClient{}
	council := testCouncil(client, "a", "b", "c")

	p := NewBasicProtocol(DefaultRoundConfig())

	opening := p.OpeningOrder(council)
	rebuttal := p.RebuttalOrder(council)
	require.Len(t, opening, 3)
	for i := range council {
		assert.Same(t, council[i], opening[i])
		assert.Same(t, council[i], rebuttal[i])
	}
	assert.Equal(t, 1, p.NumRebuttalRounds())
}

func TestBasicProtocol_ReturnsCopies(t *testing.T) {
	client := &stubClient{}
	council := testCouncil(client, "a", "b")

	p := NewBasicProtocol(DefaultRoundConfig())
	order := p.OpeningOrder(council)
	order[0], order[1] = order[1], order[0]

	assert.Equal(t, "a", council[0].RoleID, "mutating the returned order must not affect the council")
}

func TestBasicProtocol_NegativeRoundsClampToZero(t *testing.T) {
	p := NewBasicProtocol(RoundConfig{NumRebuttalRounds: -3})
	assert.Zero(t, p.NumRebuttalRounds())
}

func TestTranscript_AppendAssignsMonotonicIndices(t *testing.T) {
	tr := NewTranscript(testTopic())

	first := tr.Append("a", "Agent A", llm.RoleAssistant, "one", StageOpening)
	second := tr.Append("b", "Agent B", llm.RoleAssistant, "two", StageRebuttal)

	assert.Equal(t, 0, first.TurnIndex)
	assert.Equal(t, 1, second.TurnIndex)
	assert.Equal(t, 2, tr.Len())
}

func TestTranscript_MessagesReturnsCopy(t *testing.T) {
	tr := NewTranscript(testTopic())
	tr.Append("a", "Agent A", llm.RoleAssistant, "one", StageOpening)

	msgs := tr.Messages()
	msgs[0].Content = "mutated"

	assert.Equal(t, "one", tr.Messages()[0].Content)
}

func TestNoOpEvaluator_NeutralScores(t *testing.T) {
	evals := NoOpEvaluator{}.Evaluate(testTopic(), consensusTranscript(3))

	require.Len(t, evals, 3)
	for i, e := range evals {
		assert.Equal(t, i, e.MessageIndex)
		assert.Equal(t, 0.5, e.LogicalClarity)
		assert.Equal(t, 0.5, e.UseOfEvidence)
		assert.Equal(t, 0.5, e.FairnessToOtherViews)
	}
}
