package llmprovider

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// entry describes one vendor in the static catalog.
type entry struct {
	displayName  string
	models       []string
	defaultModel string
}

// The static catalog. Dynamic listing (per API key) refines this; these
// lists are the fallback when the vendor API is unreachable.
var catalog = map[string]entry{
	ProviderGemini: {
		displayName: "Google Gemini",
		models: []string{
			"gemini-2.0-flash-exp",
			"gemini-2.5-flash",
			"gemini-1.5-pro",
			"gemini-1.5-flash",
		},
		defaultModel: "gemini-2.0-flash-exp",
	},
	ProviderOpenAI: {
		displayName:  "OpenAI",
		models:       []string{"gpt-4o", "gpt-4o-mini", "gpt-3.5-turbo"},
		defaultModel: "gpt-4o-mini",
	},
	ProviderDeepSeek: {
		displayName:  "DeepSeek",
		models:       []string{"deepseek-chat", "deepseek-reasoner"},
		defaultModel: "deepseek-chat",
	},
	ProviderQwen: {
		displayName:  "Qwen",
		models:       []string{"qwen-plus", "qwen-turbo", "qwen-max"},
		defaultModel: "qwen-plus",
	},
}

// order fixes the listing order of providers.
var order = []string{ProviderGemini, ProviderOpenAI, ProviderDeepSeek, ProviderQwen}

// Names returns the supported provider names.
func Names() []string {
	names := make([]string, len(order))
	copy(names, order)
	return names
}

// Supported reports whether name is a known provider.
func Supported(name string) bool {
	_, ok := catalog[name]
	return ok
}

// StaticModels returns the static model list for a provider.
func StaticModels(name string) []string {
	e, ok := catalog[name]
	if !ok {
		return nil
	}
	models := make([]string, len(e.models))
	copy(models, e.models)
	return models
}

// DefaultModel returns the default model for a provider, or "".
func DefaultModel(name string) string {
	return catalog[name].defaultModel
}

// DisplayName returns the human-readable vendor name.
func DisplayName(name string) string {
	return catalog[name].displayName
}

// Catalog resolves provider/model availability. Dynamic model lists are
// fetched from the vendor with the caller's API key and cached briefly so
// repeated UI fetches do not hammer the vendor API.
type Catalog struct {
	modelCache *expirable.LRU[string, []string]
}

// NewCatalog creates a Catalog with a TTL-bounded model-list cache.
func NewCatalog(cacheSize int, ttl time.Duration) *Catalog {
	if cacheSize <= 0 {
		cacheSize = 128
	}
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &Catalog{
		modelCache: expirable.NewLRU[string, []string](cacheSize, nil, ttl),
	}
}

// ListProviders returns the supported provider names.
func (c *Catalog) ListProviders() []string {
	return Names()
}

// ListModels returns models for a provider. With an API key it asks the
// vendor and caches the answer; without one, or on vendor failure, it
// falls back to the static list.
func (c *Catalog) ListModels(ctx context.Context, provider, apiKey string) ([]string, error) {
	if !Supported(provider) {
		return nil, ErrUnknownProvider
	}
	if apiKey == "" {
		return StaticModels(provider), nil
	}

	cacheKey := provider + ":" + keyFingerprint(apiKey)
	if models, ok := c.modelCache.Get(cacheKey); ok {
		return models, nil
	}

	p, err := New(provider, apiKey, "")
	if err != nil {
		return StaticModels(provider), nil
	}

	models, err := p.ListModels(ctx)
	if err != nil || len(models) == 0 {
		return StaticModels(provider), nil
	}

	c.modelCache.Add(cacheKey, models)
	return models, nil
}

// keyFingerprint derives a cache key from an API key without retaining it.
func keyFingerprint(apiKey string) string {
	sum := sha256.Sum256([]byte(apiKey))
	return hex.EncodeToString(sum[:8])
}
