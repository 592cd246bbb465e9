package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"council/agent"
	"council/db"
	"council/debate"
	"council/persistence"
	"council/textutil"
)

type DebateRequest struct {
	Prompt      string   `json:"prompt"`
	Constraints string   `json:"constraints,omitempty"`
	// RebuttalRounds overrides the configured round count when present.
	// Zero is a valid value and skips rebuttals.
	RebuttalRounds *int     `json:"rebuttal_rounds,omitempty"`
	Roles          []string `json:"roles,omitempty"`
	Evaluate       bool     `json:"evaluate,omitempty"`
}

type DebateResponse struct {
	Topic       debate.Topic            `json:"topic"`
	Messages    []debate.Message        `json:"messages"`
	Consensus   *debate.ConsensusResult `json:"consensus,omitempty"`
	Evaluations []debate.TurnEvaluation `json:"evaluations,omitempty"`
	SavedPath   string                  `json:"saved_path,omitempty"`
}

// buildTopic turns a free-text prompt into a Topic with a short random id,
// the way the dashboard submits debates.
func buildTopic(prompt, constraints string) debate.Topic {
	title := textutil.TruncateChars(textutil.NormalizeWhitespace(prompt), 80)
	if title == "" {
		title = "Debate Topic"
	}
	return debate.Topic{
		ID:          uuid.NewString()[:8],
		Title:       title,
		Description: strings.TrimSpace(prompt),
		Constraints: strings.TrimSpace(constraints),
	}
}

// RunDebateHandler runs one full debate and returns the transcript and
// consensus. The run is synchronous; the dashboard polls or streams via its
// own connection.
func (s *Server) RunDebateHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req DebateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Prompt) == "" {
		http.Error(w, "prompt is required", http.StatusBadRequest)
		return
	}

	var roles []string
	if len(req.Roles) > 0 {
		roles = req.Roles
	}
	council, err := agent.NewCouncil(s.Client, roles, s.Settings)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	rounds := s.Settings.RebuttalRounds
	if req.RebuttalRounds != nil {
		rounds = *req.RebuttalRounds
	}

	orchestrator := debate.NewOrchestrator(
		debate.NewBasicProtocol(debate.RoundConfig{NumRebuttalRounds: rounds}),
		&debate.PolicyLeadStrategy{CharBudget: s.Settings.ConsensusBudget},
	)
	orchestrator.ContextWindow = s.Settings.ContextWindow

	topic := buildTopic(req.Prompt, req.Constraints)
	result, err := orchestrator.Run(r.Context(), topic, council)
	if err != nil {
		log.Printf("Debate %s failed: %v", topic.ID, err)
		http.Error(w, "Debate run failed", http.StatusBadGateway)
		return
	}

	resp := DebateResponse{
		Topic:     topic,
		Messages:  result.Transcript.Messages(),
		Consensus: result.Consensus,
	}
	if req.Evaluate {
		resp.Evaluations = debate.NoOpEvaluator{}.Evaluate(topic, resp.Messages)
	}

	// Persistence is best-effort: a failed save must not fail the debate.
	path, err := persistence.SaveDebateResult(s.Settings.DebatesDir, result)
	if err != nil {
		log.Printf("Failed to save debate %s to disk: %v", topic.ID, err)
	} else {
		resp.SavedPath = path
	}
	if db.Initialized() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := db.SaveDebateResult(ctx, result); err != nil {
			log.Printf("Failed to save debate %s to MongoDB: %v", topic.ID, err)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}
