package ai

import "context"

// Generator is the interface for text-generation providers. The prompt
// is opaque to the provider and the response is opaque to it too: the
// caller owns prompting and response validation.
// Implement this interface to add new providers (Gemini, Ollama, OpenAI, etc.)
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// ProviderType represents the AI provider type
type ProviderType string

const (
	ProviderGemini ProviderType = "gemini"
	ProviderOllama ProviderType = "ollama"
	ProviderAuto   ProviderType = "auto"
)
