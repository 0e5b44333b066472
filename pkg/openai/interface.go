package openai

import "context"

// IOpenAI defines the interface for the OpenAI chat completions client
type IOpenAI interface {
	// GenerateContent sends a chat completions request
	GenerateContent(ctx context.Context, req *Request) (*Response, error)

	// ListModels returns the model ids available to the API key
	ListModels(ctx context.Context) ([]string, error)

	// Model returns the model being used
	Model() string
}

// New creates a new OpenAI client
func New(cfg Config) (IOpenAI, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &openaiImpl{
		apiKey:     cfg.APIKey,
		model:      cfg.Model,
		baseURL:    cfg.BaseURL,
		httpClient: cfg.HTTPClient,
	}, nil
}
