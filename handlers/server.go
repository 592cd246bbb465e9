// Package handlers exposes the debate engine over HTTP for the dashboard:
// running a debate, listing model aliases, and listing persisted debates.
package handlers

import (
	"council/config"
	"council/llm"
)

// Server bundles the dependencies the handlers need. Injecting them here
// keeps the handlers testable against a stub LLM client.
type Server struct {
	Settings *config.Settings
	Client   llm.Client
}

// New creates a handler server around the given settings and LLM client.
func New(settings *config.Settings, client llm.Client) *Server {
	return &Server{Settings: settings, Client: client}
}
