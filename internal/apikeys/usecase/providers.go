package usecase

import (
	"context"
	"fmt"

	"timeline-to-calendar/internal/apikeys"
	"timeline-to-calendar/pkg/llmprovider"
)

// Providers returns the full provider/model catalog with static model
// lists. Dynamic lists are per-provider via Models.
func (uc *implUseCase) Providers(ctx context.Context) (apikeys.ProvidersOutput, error) {
	names := llmprovider.Names()
	models := make(map[string][]string, len(names))
	for _, name := range names {
		models[name] = llmprovider.StaticModels(name)
	}
	return apikeys.ProvidersOutput{
		AvailableProviders: names,
		ProviderModels:     models,
	}, nil
}

// Models returns the model ids for one provider. With a stored key the
// list is fetched live from the vendor; otherwise the static catalog is
// returned.
func (uc *implUseCase) Models(ctx context.Context, userID, provider string) ([]string, error) {
	if !llmprovider.Supported(provider) {
		return nil, apikeys.ErrProviderUnknown
	}

	apiKey, err := uc.PlaintextKey(ctx, userID, provider)
	if err != nil && err != apikeys.ErrKeyNotFound {
		return nil, err
	}

	models, err := uc.catalog.ListModels(ctx, provider, apiKey)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Models ListModels: %v", err)
		return nil, err
	}
	return models, nil
}

// Test round-trips a cheap vendor call with the stored key and reports
// whether it worked.
func (uc *implUseCase) Test(ctx context.Context, userID, provider string) (apikeys.TestOutput, error) {
	if !llmprovider.Supported(provider) {
		return apikeys.TestOutput{}, apikeys.ErrProviderUnknown
	}

	apiKey, err := uc.PlaintextKey(ctx, userID, provider)
	if err != nil {
		if err == apikeys.ErrKeyNotFound {
			return apikeys.TestOutput{}, apikeys.ErrKeyNotFound
		}
		return apikeys.TestOutput{}, err
	}

	p, err := llmprovider.New(provider, apiKey, "")
	if err != nil {
		uc.l.Errorf(ctx, "uc.Test New: %v", err)
		return apikeys.TestOutput{}, err
	}

	models, err := p.ListModels(ctx)
	if err != nil {
		uc.l.Warnf(ctx, "uc.Test ListModels: %v", err)
		return apikeys.TestOutput{
			Success: false,
			Message: fmt.Sprintf("%s API key test failed: %v", llmprovider.DisplayName(provider), err),
		}, nil
	}

	return apikeys.TestOutput{
		Success: true,
		Message: fmt.Sprintf("%s API key is valid (%d models available)", llmprovider.DisplayName(provider), len(models)),
	}, nil
}
