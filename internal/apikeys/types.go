package apikeys

import "time"

// Key is a stored provider credential. The plaintext never leaves the
// use case; callers only ever see presence booleans.
type Key struct {
	Provider  string
	Plaintext string
	UpdatedAt time.Time
}

// --- UseCase Inputs/Outputs ---

type SaveInput struct {
	UserID   string
	Provider string
	APIKey   string
}

type ListOutput struct {
	// Providers maps provider name to "a key is stored".
	Providers map[string]bool
}

type TestOutput struct {
	Success bool
	Message string
}

type ProvidersOutput struct {
	AvailableProviders []string
	ProviderModels     map[string][]string
}
