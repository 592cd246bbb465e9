package llm

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"iter"
	"net/http"
	"time"

	"council/config"
)

// OllamaClient talks to an Ollama server's /api/chat endpoint. It resolves
// logical model aliases against the configured model table and maps
// generation parameters onto Ollama's options object.
type OllamaClient struct {
	host         string
	models       map[string]config.ModelConfig
	defaultAlias string
	httpClient   *http.Client
}

type ollamaMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ollamaOptions struct {
	Temperature float64 `json:"temperature"`
	TopP        float64 `json:"top_p"`
	NumPredict  int     `json:"num_predict,omitempty"`
}

type ollamaChatRequest struct {
	Model    string          `json:"model"`
	Messages []ollamaMessage `json:"messages"`
	Stream   bool            `json:"stream"`
	Options  ollamaOptions   `json:"options"`
}

type ollamaChatResponse struct {
	Message ollamaMessage `json:"message"`
	Done    bool          `json:"done"`
	Error   string        `json:"error,omitempty"`
}

// NewOllamaClient creates a client for the host in settings. The HTTP
// timeout is generous because local models can take a while to load.
func NewOllamaClient(settings *config.Settings) *OllamaClient {
	return &OllamaClient{
		host:         settings.OllamaHost,
		models:       settings.Models,
		defaultAlias: settings.DefaultModelAlias,
		httpClient: &http.Client{
			Timeout: 5 * time.Minute,
		},
	}
}

func (c *OllamaClient) buildRequest(messages []ChatMessage, opts *CallOptions, stream bool) (*ollamaChatRequest, error) {
	if opts == nil {
		opts = &CallOptions{}
	}
	cfg, err := ResolveModel(c.models, opts.ModelAlias, c.defaultAlias)
	if err != nil {
		return nil, err
	}

	options := ollamaOptions{
		Temperature: cfg.Temperature,
		TopP:        cfg.TopP,
		NumPredict:  cfg.MaxCompletionTokens,
	}
	if opts.Temperature != nil {
		options.Temperature = *opts.Temperature
	}
	if opts.TopP != nil {
		options.TopP = *opts.TopP
	}
	if opts.MaxCompletionTokens != nil {
		options.NumPredict = *opts.MaxCompletionTokens
	}

	msgs := make([]ollamaMessage, 0, len(messages))
	for _, m := range messages {
		msgs = append(msgs, ollamaMessage{Role: string(m.Role), Content: m.Content})
	}

	return &ollamaChatRequest{
		Model:    cfg.Name,
		Messages: msgs,
		Stream:   stream,
		Options:  options,
	}, nil
}

func (c *OllamaClient) post(ctx context.Context, reqBody *ollamaChatRequest) (*http.Response, error) {
	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		fmt.Sprintf("%s/api/chat", c.host), bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		return nil, fmt.Errorf("ollama API error: %d - %s", resp.StatusCode, string(body))
	}
	return resp, nil
}

// Complete implements Client with a non-streaming chat call.
func (c *OllamaClient) Complete(ctx context.Context, messages []ChatMessage, opts *CallOptions) (string, error) {
	reqBody, err := c.buildRequest(messages, opts, false)
	if err != nil {
		return "", err
	}

	resp, err := c.post(ctx, reqBody)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var chatResp ollamaChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	if chatResp.Error != "" {
		return "", fmt.Errorf("ollama API error: %s", chatResp.Error)
	}
	return chatResp.Message.Content, nil
}

// Stream implements Client. Ollama streams newline-delimited JSON objects,
// each carrying an incremental message fragment.
func (c *OllamaClient) Stream(ctx context.Context, messages []ChatMessage, opts *CallOptions) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		reqBody, err := c.buildRequest(messages, opts, true)
		if err != nil {
			yield("", err)
			return
		}

		resp, err := c.post(ctx, reqBody)
		if err != nil {
			yield("", err)
			return
		}
		defer resp.Body.Close()

		scanner := bufio.NewScanner(resp.Body)
		scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
		for scanner.Scan() {
			line := scanner.Bytes()
			if len(line) == 0 {
				continue
			}
			var chunk ollamaChatResponse
			if err := json.Unmarshal(line, &chunk); err != nil {
				yield("", fmt.Errorf("failed to decode stream chunk: %w", err))
				return
			}
			if chunk.Error != "" {
				yield("", fmt.Errorf("ollama API error: %s", chunk.Error))
				return
			}
			if chunk.Message.Content != "" {
				if !yield(chunk.Message.Content, nil) {
					return
				}
			}
			if chunk.Done {
				return
			}
		}
		if err := scanner.Err(); err != nil {
			yield("", fmt.Errorf("stream read failed: %w", err))
		}
	}
}
