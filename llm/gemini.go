package llm

import (
	"context"
	"fmt"
	"iter"

	"google.golang.org/genai"

	"council/config"
)

// GeminiClient implements Client on top of the Google genai SDK. System
// messages are carried as the system instruction; user and assistant
// messages map to Gemini's user/model roles.
type GeminiClient struct {
	client       *genai.Client
	models       map[string]config.ModelConfig
	defaultAlias string
}

// NewGeminiClient creates a Gemini-backed client. A missing API key is a
// configuration error detected here, not at call time.
func NewGeminiClient(ctx context.Context, settings *config.Settings) (*GeminiClient, error) {
	if settings.GeminiAPIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is required for the gemini provider")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: settings.GeminiAPIKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	return &GeminiClient{
		client:       client,
		models:       settings.Models,
		defaultAlias: settings.DefaultModelAlias,
	}, nil
}

func (c *GeminiClient) buildCall(messages []ChatMessage, opts *CallOptions) (string, []*genai.Content, *genai.GenerateContentConfig, error) {
	if opts == nil {
		opts = &CallOptions{}
	}
	cfg, err := ResolveModel(c.models, opts.ModelAlias, c.defaultAlias)
	if err != nil {
		return "", nil, nil, err
	}

	temperature := cfg.Temperature
	topP := cfg.TopP
	maxTokens := cfg.MaxCompletionTokens
	if opts.Temperature != nil {
		temperature = *opts.Temperature
	}
	if opts.TopP != nil {
		topP = *opts.TopP
	}
	if opts.MaxCompletionTokens != nil {
		maxTokens = *opts.MaxCompletionTokens
	}

	genCfg := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(float32(temperature)),
		TopP:            genai.Ptr(float32(topP)),
		MaxOutputTokens: int32(maxTokens),
	}

	var contents []*genai.Content
	for _, m := range messages {
		switch m.Role {
		case RoleSystem:
			genCfg.SystemInstruction = genai.NewContentFromText(m.Content, genai.RoleUser)
		case RoleAssistant:
			contents = append(contents, genai.NewContentFromText(m.Content, genai.RoleModel))
		default:
			contents = append(contents, genai.NewContentFromText(m.Content, genai.RoleUser))
		}
	}

	return cfg.Name, contents, genCfg, nil
}

// Complete implements Client.
func (c *GeminiClient) Complete(ctx context.Context, messages []ChatMessage, opts *CallOptions) (string, error) {
	model, contents, genCfg, err := c.buildCall(messages, opts)
	if err != nil {
		return "", err
	}
	resp, err := c.client.Models.GenerateContent(ctx, model, contents, genCfg)
	if err != nil {
		return "", err
	}
	return resp.Text(), nil
}

// Stream implements Client by yielding the text of each streamed chunk.
func (c *GeminiClient) Stream(ctx context.Context, messages []ChatMessage, opts *CallOptions) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		model, contents, genCfg, err := c.buildCall(messages, opts)
		if err != nil {
			yield("", err)
			return
		}
		for resp, err := range c.client.Models.GenerateContentStream(ctx, model, contents, genCfg) {
			if err != nil {
				yield("", err)
				return
			}
			text := resp.Text()
			if text == "" {
				continue
			}
			if !yield(text, nil) {
				return
			}
		}
	}
}
