package qwen

import "context"

// IQwen defines the interface for the Qwen chat completions client
type IQwen interface {
	// GenerateContent sends a chat completions request
	GenerateContent(ctx context.Context, req *Request) (*Response, error)

	// ListModels returns the model ids available to the API key
	ListModels(ctx context.Context) ([]string, error)

	// Model returns the model being used
	Model() string
}

// New creates a new Qwen client
func New(cfg Config) (IQwen, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &qwenImpl{
		apiKey:     cfg.APIKey,
		model:      cfg.Model,
		baseURL:    cfg.BaseURL,
		httpClient: cfg.HTTPClient,
	}, nil
}
