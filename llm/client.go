// Package llm defines the chat-completion interface the council depends on,
// plus concrete Ollama and Gemini implementations. Agents and the debate
// orchestrator only ever see the Client interface.
package llm

import (
	"context"
	"fmt"
	"iter"
	"sort"
	"strings"

	"council/config"
)

// Role is a chat role from the LLM's perspective.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// ChatMessage is a single provider-independent chat message.
type ChatMessage struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// CallOptions carries per-call overrides. A nil *CallOptions or a zero field
// means "use the model's configured value".
type CallOptions struct {
	ModelAlias          string
	Temperature         *float64
	TopP                *float64
	MaxCompletionTokens *int
}

// Client is the abstract interface for any chat-based LLM backend.
//
// Complete returns the full assistant message as a single string. Stream
// yields incremental text fragments; it is a single-consumption sequence and
// stops early when the context is cancelled. Any backend failure is reported
// through the error side of the sequence.
type Client interface {
	Complete(ctx context.Context, messages []ChatMessage, opts *CallOptions) (string, error)
	Stream(ctx context.Context, messages []ChatMessage, opts *CallOptions) iter.Seq2[string, error]
}

// ResolveModel maps a logical alias to its ModelConfig, falling back to
// defaultAlias when alias is empty. Unknown aliases are a configuration
// error; the error lists the known aliases for diagnosability.
func ResolveModel(models map[string]config.ModelConfig, alias, defaultAlias string) (config.ModelConfig, error) {
	a := alias
	if a == "" {
		a = defaultAlias
	}
	cfg, ok := models[a]
	if !ok {
		known := make([]string, 0, len(models))
		for k := range models {
			known = append(known, k)
		}
		sort.Strings(known)
		return config.ModelConfig{}, fmt.Errorf("unknown model alias %q (known aliases: %s)", a, strings.Join(known, ", "))
	}
	return cfg, nil
}

// NewClient builds the configured backend client from settings.
func NewClient(ctx context.Context, settings *config.Settings) (Client, error) {
	switch settings.Provider {
	case "ollama":
		return NewOllamaClient(settings), nil
	case "gemini":
		return NewGeminiClient(ctx, settings)
	default:
		return nil, fmt.Errorf("unknown LLM provider %q (known providers: gemini, ollama)", settings.Provider)
	}
}

// Drain consumes a stream to completion and returns the concatenated text.
// If onFragment is non-nil it is invoked for every fragment before it is
// accumulated.
func Drain(seq iter.Seq2[string, error], onFragment func(string)) (string, error) {
	var b strings.Builder
	for fragment, err := range seq {
		if err != nil {
			return "", err
		}
		if onFragment != nil {
			onFragment(fragment)
		}
		b.WriteString(fragment)
	}
	return b.String(), nil
}
