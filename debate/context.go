package debate

import (
	"fmt"
	"strings"

	"council/agent"
	"council/llm"
)

const openingInstructions = `Task:
- Present your analysis of the topic from your expertise.
- Anticipate possible objections from other specialists.
- Be explicit about sources, periods, and uncertainties.
- You are NOT trying to be "balanced" for its own sake; you are trying
  to be accurate, rigorous, and honest about trade-offs.
- Keep every point tightly linked to the stated topic; avoid tangents and
  let evidence drive your stance.`

const rebuttalInstructions = `Task:
- Engage with previous statements from the other experts.
- Point out where you agree and where you disagree, and WHY.
- Bring in additional evidence or reasoning.
- If you revise your earlier position, say so explicitly.
- Critique arguments based on evidentiary strength and topic relevance.`

// buildConversation assembles the exact message list sent to an agent for
// one turn. It is rebuilt fresh for every turn and never mutates the
// transcript.
//
// The first (and for opening turns, only) message is a user-role instruction
// block: topic, stage name, stage task, and the 1-indexed rebuttal round when
// known. For rebuttal turns, prior transcript entries follow as
// assistant-role messages relabeled with speaker, stage and turn index, so
// the agent perceives them as prior conversational turns.
//
// window bounds how much history a rebuttal turn sees: 0 includes the full
// transcript, K > 0 includes only the K most recent entries. Truncation is a
// policy choice; the agent is given no indication that history was cut.
func buildConversation(topic Topic, prior []Message, ag *agent.Agent, stage Stage, rebuttalRound, window int) []llm.ChatMessage {
	var stageInstructions string
	if stage == StageOpening {
		stageInstructions = fmt.Sprintf("You are %s participating in the opening round of the council debate.\n\n%s",
			ag.Name, openingInstructions)
	} else {
		stageInstructions = fmt.Sprintf("You are %s participating in a rebuttal round of the council debate.\n\n%s",
			ag.Name, rebuttalInstructions)
	}

	intro := fmt.Sprintf("%s\n\nStage: %s\n\n%s",
		topic.AsUserPrompt(), strings.ToUpper(string(stage)), stageInstructions)
	if stage == StageRebuttal && rebuttalRound >= 0 {
		intro += fmt.Sprintf("\n\nRebuttal round: %d", rebuttalRound+1)
	}

	messages := []llm.ChatMessage{{Role: llm.RoleUser, Content: intro}}

	if stage != StageRebuttal {
		// Opening statements are made from the topic alone, before any
		// other agent's position is visible.
		return messages
	}

	if window > 0 && len(prior) > window {
		prior = prior[len(prior)-window:]
	}
	for _, msg := range prior {
		label := fmt.Sprintf("%s (%s, #%d)", msg.SpeakerName, msg.Stage, msg.TurnIndex)
		messages = append(messages, llm.ChatMessage{
			Role:    llm.RoleAssistant,
			Content: fmt.Sprintf("%s:\n%s", label, msg.Content),
		})
	}
	return messages
}
