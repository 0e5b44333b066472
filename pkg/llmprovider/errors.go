package llmprovider

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownProvider indicates the provider name is not in the catalog
	ErrUnknownProvider = errors.New("unknown provider")

	// ErrEmptyResponse indicates the model returned no usable content
	ErrEmptyResponse = errors.New("empty model response")

	// ErrInvalidJSON indicates the model output could not be decoded
	ErrInvalidJSON = errors.New("model output is not valid JSON")
)

// ProviderError wraps provider-specific errors
type ProviderError struct {
	Provider string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}
