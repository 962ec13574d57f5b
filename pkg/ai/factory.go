package ai

import (
	"fmt"

	"meetscribe-backend/pkg/gemini"
)

// Config holds AI provider configuration
type Config struct {
	Provider ProviderType // "gemini", "ollama" or "auto"

	// Gemini config
	GeminiAPIKey string

	// Ollama config
	OllamaBaseURL string // e.g., "http://localhost:11434"
	OllamaModel   string // e.g., "llama3", "mistral"
}

// NewGenerator creates a Generator based on the config.
// This is the factory function - switch AI provider by changing config.Provider
func NewGenerator(cfg Config) (Generator, error) {
	switch cfg.Provider {
	case ProviderGemini:
		if cfg.GeminiAPIKey == "" {
			return nil, fmt.Errorf("GEMINI_API_KEY is required for Gemini provider")
		}
		return gemini.NewGeminiService(cfg.GeminiAPIKey), nil

	case ProviderOllama:
		return NewOllamaService(cfg.OllamaBaseURL, cfg.OllamaModel), nil

	default:
		// Auto: route through both providers when Gemini is configured,
		// otherwise Ollama alone.
		if cfg.GeminiAPIKey != "" {
			return NewFallbackService(gemini.NewGeminiService(cfg.GeminiAPIKey), NewOllamaService(cfg.OllamaBaseURL, cfg.OllamaModel)), nil
		}
		return NewOllamaService(cfg.OllamaBaseURL, cfg.OllamaModel), nil
	}
}
