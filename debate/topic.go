// Package debate implements the council debate engine: the transcript model,
// the turn protocol, per-turn context assembly, consensus synthesis, and the
// orchestrator that drives a debate from opening statements to consensus.
package debate

import (
	"fmt"
	"strings"
)

// Topic is the debated question and its framing. Immutable for the lifetime
// of a debate.
type Topic struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	// Constraints are optional guardrails, e.g. "focus on post-1947".
	Constraints string `json:"constraints,omitempty"`
}

// AsUserPrompt serializes the topic into a single user-message block.
func (t Topic) AsUserPrompt() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Debate topic: %s\n\n", t.Title)
	fmt.Fprintf(&b, "Description:\n%s", t.Description)
	if t.Constraints != "" {
		fmt.Fprintf(&b, "\n\nConstraints / scope:\n%s", t.Constraints)
	}
	return b.String()
}
