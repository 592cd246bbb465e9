// Package agent implements the role-based council members. An Agent holds
// identity and a fixed system prompt; all conversation state lives in the
// transcript handed in by the orchestrator.
package agent

import (
	"context"
	"iter"

	"council/llm"
)

// Config is the static identity of an agent.
type Config struct {
	// Name is the human-readable label ("Indian Historian").
	Name string
	// RoleID is the stable internal id ("indian_historian").
	RoleID string
	// ModelAlias is the agent's default logical model. Empty lets the
	// backend pick its own default.
	ModelAlias string
}

// Agent wraps a role identity, a system prompt, and an LLM client. It holds
// no mutable conversation state between calls and never retries; backend
// errors propagate unmodified.
type Agent struct {
	Name       string
	RoleID     string
	ModelAlias string

	systemPrompt string
	client       llm.Client
}

// New creates an agent bound to the given client and system prompt.
func New(cfg Config, client llm.Client, systemPrompt string) *Agent {
	return &Agent{
		Name:         cfg.Name,
		RoleID:       cfg.RoleID,
		ModelAlias:   cfg.ModelAlias,
		systemPrompt: systemPrompt,
		client:       client,
	}
}

// SystemPrompt returns the agent's fixed role prompt.
func (a *Agent) SystemPrompt() string {
	return a.systemPrompt
}

// withSystemMessage ensures the conversation starts with the agent's system
// prompt. If the first entry is already a system message with identical
// content, no duplicate is inserted.
func (a *Agent) withSystemMessage(conversation []llm.ChatMessage) []llm.ChatMessage {
	if len(conversation) > 0 &&
		conversation[0].Role == llm.RoleSystem &&
		conversation[0].Content == a.systemPrompt {
		return conversation
	}
	messages := make([]llm.ChatMessage, 0, len(conversation)+1)
	messages = append(messages, llm.ChatMessage{Role: llm.RoleSystem, Content: a.systemPrompt})
	return append(messages, conversation...)
}

// callOptions applies model-alias precedence: an explicit per-call override
// wins, then the agent's configured default, then the backend's default.
func (a *Agent) callOptions(opts *llm.CallOptions) *llm.CallOptions {
	var out llm.CallOptions
	if opts != nil {
		out = *opts
	}
	if out.ModelAlias == "" {
		out.ModelAlias = a.ModelAlias
	}
	return &out
}

// Respond performs a blocking completion for the given conversation and
// returns the full assistant message.
func (a *Agent) Respond(ctx context.Context, conversation []llm.ChatMessage, opts *llm.CallOptions) (string, error) {
	return a.client.Complete(ctx, a.withSystemMessage(conversation), a.callOptions(opts))
}

// RespondStream performs a streaming completion, yielding text fragments.
// The sequence is single-consumption and represents one completion.
func (a *Agent) RespondStream(ctx context.Context, conversation []llm.ChatMessage, opts *llm.CallOptions) iter.Seq2[string, error] {
	return a.client.Stream(ctx, a.withSystemMessage(conversation), a.callOptions(opts))
}
