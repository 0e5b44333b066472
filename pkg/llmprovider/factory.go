package llmprovider

import (
	"fmt"
	"strings"

	"timeline-to-calendar/pkg/deepseek"
	"timeline-to-calendar/pkg/gemini"
	"timeline-to-calendar/pkg/openai"
	"timeline-to-calendar/pkg/qwen"
)

// Provider names
const (
	ProviderGemini   = "gemini"
	ProviderOpenAI   = "openai"
	ProviderDeepSeek = "deepseek"
	ProviderQwen     = "qwen"
)

// New creates a concrete provider instance for the given vendor name.
// The API key is per-user, supplied at request time. An empty model
// selects the provider's default.
func New(name, apiKey, model string) (Provider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("provider %s: API key is required", name)
	}

	switch strings.ToLower(name) {
	case ProviderGemini:
		client, err := gemini.New(gemini.Config{
			APIKey: apiKey,
			Model:  model,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create gemini client: %w", err)
		}
		return NewGeminiAdapter(client), nil

	case ProviderOpenAI:
		client, err := openai.New(openai.Config{
			APIKey: apiKey,
			Model:  model,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create openai client: %w", err)
		}
		return NewOpenAIAdapter(client), nil

	case ProviderDeepSeek:
		client, err := deepseek.New(deepseek.Config{
			APIKey: apiKey,
			Model:  model,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create deepseek client: %w", err)
		}
		return NewDeepSeekAdapter(client), nil

	case ProviderQwen:
		client, err := qwen.New(qwen.Config{
			APIKey: apiKey,
			Model:  model,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create qwen client: %w", err)
		}
		return NewQwenAdapter(client), nil

	default:
		return nil, fmt.Errorf("%w: %s (supported: %s)", ErrUnknownProvider, name,
			strings.Join(Names(), ", "))
	}
}
