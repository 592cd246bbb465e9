package handlers

import (
	"encoding/json"
	"net/http"
)

type ModelInfo struct {
	Name                string  `json:"name"`
	MaxCompletionTokens int     `json:"max_completion_tokens"`
	Temperature         float64 `json:"temperature"`
	TopP                float64 `json:"top_p"`
	ReasoningEffort     string  `json:"reasoning_effort,omitempty"`
	Stream              bool    `json:"stream"`
}

type ModelsResponse struct {
	DefaultAlias string               `json:"default_alias"`
	Models       map[string]ModelInfo `json:"models"`
}

// ListModelsHandler returns the model alias table so the dashboard can show
// what each alias resolves to.
func (s *Server) ListModelsHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	resp := ModelsResponse{
		DefaultAlias: s.Settings.DefaultModelAlias,
		Models:       make(map[string]ModelInfo, len(s.Settings.Models)),
	}
	for alias, cfg := range s.Settings.Models {
		resp.Models[alias] = ModelInfo{
			Name:                cfg.Name,
			MaxCompletionTokens: cfg.MaxCompletionTokens,
			Temperature:         cfg.Temperature,
			TopP:                cfg.TopP,
			ReasoningEffort:     cfg.ReasoningEffort,
			Stream:              cfg.Stream,
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}
