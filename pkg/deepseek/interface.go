package deepseek

import "context"

// IDeepSeek defines the interface for the DeepSeek chat completions client
type IDeepSeek interface {
	// GenerateContent sends a chat completions request
	GenerateContent(ctx context.Context, req *Request) (*Response, error)

	// ListModels returns the model ids available to the API key
	ListModels(ctx context.Context) ([]string, error)

	// Model returns the model being used
	Model() string
}

// New creates a new DeepSeek client
func New(cfg Config) (IDeepSeek, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &deepseekImpl{
		apiKey:     cfg.APIKey,
		model:      cfg.Model,
		baseURL:    cfg.BaseURL,
		httpClient: cfg.HTTPClient,
	}, nil
}
