package debate

import (
	"context"
	"fmt"

	"council/agent"
	"council/llm"
)

// TurnSink receives incremental text fragments from an in-progress agent
// turn, e.g. to feed a live dashboard. It is called from the orchestrator's
// goroutine, strictly in order.
type TurnSink func(roleID string, stage Stage, fragment string)

// Result is the terminal artifact of one orchestration run: the final
// transcript and the optional consensus.
type Result struct {
	Transcript *Transcript
	Consensus  *ConsensusResult
}

// Orchestrator drives a debate through its stages:
//
//	OPENING -> REBUTTAL(round 0..N-1) -> CONSENSUS -> DONE
//
// Turns are strictly sequential; each backend call fully completes (or its
// stream is fully drained) before the next turn begins, so every rebuttal
// turn sees a stable prior transcript. The orchestrator performs no retries:
// any backend failure aborts the run.
type Orchestrator struct {
	// Protocol decides turn order and the rebuttal round count.
	Protocol Protocol
	// Consensus synthesizes the conclusion. Nil skips the consensus stage.
	Consensus ConsensusStrategy
	// ContextWindow bounds rebuttal context: 0 = full transcript, K > 0 =
	// only the K most recent transcript entries.
	ContextWindow int
	// Sink, when set, switches agent turns to streaming mode and forwards
	// every fragment before the drained text is appended to the transcript.
	Sink TurnSink
}

// NewOrchestrator creates an orchestrator with the default consensus
// strategy when none is given.
func NewOrchestrator(protocol Protocol, consensus ConsensusStrategy) *Orchestrator {
	if consensus == nil {
		consensus = &PolicyLeadStrategy{}
	}
	return &Orchestrator{Protocol: protocol, Consensus: consensus}
}

// Run executes a full debate for the topic and council and returns the
// immutable result. On any agent or consensus failure the error propagates
// and no result is produced; the partial transcript is discarded.
func (o *Orchestrator) Run(ctx context.Context, topic Topic, council []*agent.Agent) (*Result, error) {
	transcript := NewTranscript(topic)

	for _, ag := range o.Protocol.OpeningOrder(council) {
		content, err := o.runTurn(ctx, topic, transcript, ag, StageOpening, -1)
		if err != nil {
			return nil, fmt.Errorf("opening turn for %s: %w", ag.RoleID, err)
		}
		transcript.Append(ag.RoleID, ag.Name, llm.RoleAssistant, content, StageOpening)
	}

	for r := 0; r < o.Protocol.NumRebuttalRounds(); r++ {
		for _, ag := range o.Protocol.RebuttalOrder(council) {
			content, err := o.runTurn(ctx, topic, transcript, ag, StageRebuttal, r)
			if err != nil {
				return nil, fmt.Errorf("rebuttal round %d turn for %s: %w", r+1, ag.RoleID, err)
			}
			transcript.Append(ag.RoleID, ag.Name, llm.RoleAssistant, content, StageRebuttal)
		}
	}

	var consensus *ConsensusResult
	if o.Consensus != nil {
		var err error
		consensus, err = o.Consensus.GenerateConsensus(ctx, topic, transcript.Messages(), council)
		if err != nil {
			return nil, fmt.Errorf("consensus: %w", err)
		}
	}

	return &Result{Transcript: transcript, Consensus: consensus}, nil
}

// runTurn builds the conversation for one agent turn and obtains the
// response, streaming through the sink when one is configured.
func (o *Orchestrator) runTurn(ctx context.Context, topic Topic, transcript *Transcript, ag *agent.Agent, stage Stage, rebuttalRound int) (string, error) {
	conversation := buildConversation(topic, transcript.Messages(), ag, stage, rebuttalRound, o.ContextWindow)

	if o.Sink == nil {
		return ag.Respond(ctx, conversation, nil)
	}
	return llm.Drain(ag.RespondStream(ctx, conversation, nil), func(fragment string) {
		o.Sink(ag.RoleID, stage, fragment)
	})
}
