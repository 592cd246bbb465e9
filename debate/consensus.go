package debate

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"council/agent"
	"council/llm"
)

// ConsensusResult is the synthesized conclusion of a debate.
type ConsensusResult struct {
	Text  string `json:"text"`
	Notes string `json:"notes,omitempty"`
}

// ConsensusStrategy produces a ConsensusResult from a finished transcript.
type ConsensusStrategy interface {
	GenerateConsensus(ctx context.Context, topic Topic, transcript []Message, council []*agent.Agent) (*ConsensusResult, error)
}

// PolicyLeadRoleID marks the council member that drafts the consensus.
const PolicyLeadRoleID = "policymaker_expert"

const omissionNote = "[Earlier portions of the transcript were omitted for brevity.]"

// PolicyLeadStrategy is the default consensus strategy: the policymaker
// agent (or the first council member if none is present) synthesizes a
// conclusion from a rendered transcript.
//
// CharBudget bounds the rendered transcript: 0 includes every message, a
// positive budget keeps only the most recent messages that fit and prepends
// an omission note when anything was dropped.
type PolicyLeadStrategy struct {
	CharBudget int
}

func (s *PolicyLeadStrategy) selectSummarizer(council []*agent.Agent) *agent.Agent {
	for _, ag := range council {
		if ag.RoleID == PolicyLeadRoleID {
			return ag
		}
	}
	return council[0]
}

func formatMessageBlock(msg Message) string {
	return fmt.Sprintf("[%d | %s | %s]\n%s\n%s",
		msg.TurnIndex,
		strings.ToUpper(string(msg.Stage)),
		msg.SpeakerName,
		strings.TrimSpace(msg.Content),
		strings.Repeat("-", 40))
}

// formatTranscript renders the transcript chronologically. Under a character
// budget it accumulates blocks from most recent to oldest until the budget
// would be exceeded, then restores chronological order. The returned flag
// reports whether any message was dropped.
func (s *PolicyLeadStrategy) formatTranscript(transcript []Message) (string, bool) {
	if s.CharBudget <= 0 {
		blocks := make([]string, 0, len(transcript))
		for _, msg := range transcript {
			blocks = append(blocks, formatMessageBlock(msg))
		}
		return strings.Join(blocks, "\n"), false
	}

	var blocks []string
	total := 0
	for i := len(transcript) - 1; i >= 0; i-- {
		block := formatMessageBlock(transcript[i])
		cost := len(block)
		if len(blocks) > 0 {
			cost++ // joining newline
		}
		if total+cost > s.CharBudget {
			break
		}
		total += cost
		blocks = append(blocks, block)
	}
	slices.Reverse(blocks)
	return strings.Join(blocks, "\n"), len(blocks) < len(transcript)
}

// GenerateConsensus implements ConsensusStrategy. An empty council returns a
// fixed sentinel result without calling any backend.
func (s *PolicyLeadStrategy) GenerateConsensus(ctx context.Context, topic Topic, transcript []Message, council []*agent.Agent) (*ConsensusResult, error) {
	if len(council) == 0 {
		return &ConsensusResult{
			Text:  "No council agents were available to form a consensus.",
			Notes: "empty_council",
		}, nil
	}

	summarizer := s.selectSummarizer(council)
	transcriptText, dropped := s.formatTranscript(transcript)
	if dropped {
		transcriptText = omissionNote + "\n\n" + transcriptText
	}

	constraints := topic.Constraints
	if constraints == "" {
		constraints = "None specified."
	}

	instructions := fmt.Sprintf(`You are now acting as the COUNCIL'S CONSENSUS DRAFTER.

Debate topic:
%s

Description:
%s

Constraints:
%s

Below is the transcript of the council's debate, including opening
statements and rebuttals. Your task:

1. Extract the factual points that are well-supported or broadly accepted.
2. Identify key disagreements and why the experts differ.
3. Propose a best-effort, evidence-grounded conclusion that:
   - does not simply average opinions,
   - states where the evidence strongly points,
   - is clear about remaining uncertainty.
4. Translate implications into concrete, realistic considerations for
   contemporary policy or public discourse where relevant.
5. Represent every expert perspective in proportion to the strength and
   relevance of its evidence-backed arguments.

Rules:
- Be explicit about reasoning.
- Weight each contribution by evidentiary strength, not tone.
- If an argument is off-topic or weakly supported, down-weight it explicitly;
  if it is well-supported, highlight why and by whom it was offered.

Transcript:
%s

Now write the COUNCIL CONSENSUS in the following structure:

1. Core factual points
2. Key disagreements
3. Provisional conclusion
4. Policy / practical implications (if any)`,
		topic.Title, topic.Description, constraints, transcriptText)

	conversation := []llm.ChatMessage{{Role: llm.RoleUser, Content: instructions}}
	text, err := summarizer.Respond(ctx, conversation, nil)
	if err != nil {
		return nil, err
	}

	return &ConsensusResult{
		Text:  text,
		Notes: fmt.Sprintf("summarizer=%s", summarizer.RoleID),
	}, nil
}
