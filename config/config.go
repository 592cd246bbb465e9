package config

import (
	"os"
	"strconv"
	"sync"
)

// ModelConfig holds generation parameters for one logical model alias.
// It is provider-agnostic: the Ollama and Gemini clients both read from it.
type ModelConfig struct {
	Name                string
	MaxCompletionTokens int
	Temperature         float64
	TopP                float64
	ReasoningEffort     string // e.g. "medium", empty if unused
	Stream              bool
}

// Settings is the application-wide configuration for the council.
// It is constructed explicitly (Load) and injected into clients, agents
// and handlers rather than read from globals at call sites.
type Settings struct {
	// LLM backend configuration
	Provider     string // "ollama" or "gemini"
	OllamaHost   string
	GeminiAPIKey string

	// Model choices
	DefaultModelAlias string
	Models            map[string]ModelConfig

	// Council configuration
	CouncilRoles []string

	// Debate behavior
	RebuttalRounds  int
	ContextWindow   int // rebuttal context: 0 = full transcript, else most recent K
	ConsensusBudget int // consensus rendering: characters, 0 = unbounded
	DebatesDir      string
	MongoDatabase   string

	Debug bool
}

// Load builds Settings from environment variables.
//
//   - COUNCIL_LLM_PROVIDER        : "ollama" (default) or "gemini"
//   - OLLAMA_HOST                 : defaults to http://localhost:11434
//   - GEMINI_API_KEY              : required only for the gemini provider
//   - COUNCIL_DEFAULT_MODEL_ALIAS : optional override for the default alias
//   - COUNCIL_REBUTTAL_ROUNDS     : optional, defaults to 1
//   - COUNCIL_CONTEXT_WINDOW      : optional, 0 = full transcript
//   - COUNCIL_CONSENSUS_BUDGET    : optional, 0 = unbounded
//   - COUNCIL_DEBATES_DIR         : optional, defaults to "debates"
//   - COUNCIL_DEBUG               : "1"/"true" to enable
func Load() *Settings {
	provider := os.Getenv("COUNCIL_LLM_PROVIDER")
	if provider == "" {
		provider = "ollama"
	}

	ollamaHost := os.Getenv("OLLAMA_HOST")
	if ollamaHost == "" {
		ollamaHost = "http://localhost:11434"
	}

	defaultAlias := os.Getenv("COUNCIL_DEFAULT_MODEL_ALIAS")
	if defaultAlias == "" {
		defaultAlias = "gpt_oss_latest"
	}

	debatesDir := os.Getenv("COUNCIL_DEBATES_DIR")
	if debatesDir == "" {
		debatesDir = "debates"
	}

	models := map[string]ModelConfig{
		// High-capacity local model with long outputs.
		"gpt_oss_latest": {
			Name:                "gpt-oss:latest",
			MaxCompletionTokens: 1024,
			Temperature:         1.0,
			TopP:                1.0,
			Stream:              true,
		},
		"gemini_flash": {
			Name:                "gemini-2.5-flash",
			MaxCompletionTokens: 2048,
			Temperature:         0.7,
			TopP:                1.0,
			Stream:              true,
		},
	}

	return &Settings{
		Provider:          provider,
		OllamaHost:        ollamaHost,
		GeminiAPIKey:      os.Getenv("GEMINI_API_KEY"),
		DefaultModelAlias: defaultAlias,
		Models:            models,
		CouncilRoles: []string{
			"indian_historian",
			"civilizational_historian",
			"religion_expert",
			"anthropology_expert",
			"policymaker_expert",
		},
		RebuttalRounds:  envInt("COUNCIL_REBUTTAL_ROUNDS", 1),
		ContextWindow:   envInt("COUNCIL_CONTEXT_WINDOW", 0),
		ConsensusBudget: envInt("COUNCIL_CONSENSUS_BUDGET", 0),
		DebatesDir:      debatesDir,
		MongoDatabase:   "council",
		Debug:           envBool("COUNCIL_DEBUG"),
	}
}

func envInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return def
	}
	return n
}

func envBool(key string) bool {
	switch os.Getenv(key) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}

var (
	mu       sync.Mutex
	settings *Settings
)

// Get returns the shared Settings instance, constructing it from the
// environment on first use. Construction is deferred so tests and tools can
// set the environment (or call Override) first.
func Get() *Settings {
	mu.Lock()
	defer mu.Unlock()
	if settings == nil {
		settings = Load()
	}
	return settings
}

// Override replaces the shared Settings instance. Intended for tests.
func Override(s *Settings) {
	mu.Lock()
	defer mu.Unlock()
	settings = s
}

// GetMongoDBURI returns the MongoDB connection URI from environment variable.
// Empty means Mongo persistence is disabled.
func GetMongoDBURI() string {
	return os.Getenv("MONGODB_URI")
}
