package http

import (
	"timeline-to-calendar/internal/apikeys"
)

// --- Request DTOs ---

type saveReq struct {
	Provider string `json:"provider" binding:"required,min=2,max=100"`
	APIKey   string `json:"api_key"  binding:"required,min=10,max=100"`
}

func (r saveReq) validate() error { return nil }

func (r saveReq) toInput(userID string) apikeys.SaveInput {
	return apikeys.SaveInput{
		UserID:   userID,
		Provider: r.Provider,
		APIKey:   r.APIKey,
	}
}

// --- Response DTOs ---

type providersResp struct {
	AvailableProviders []string            `json:"available_providers"`
	ProviderModels     map[string][]string `json:"provider_models"`
}

func (h *handler) newProvidersResp(out apikeys.ProvidersOutput) providersResp {
	return providersResp{
		AvailableProviders: out.AvailableProviders,
		ProviderModels:     out.ProviderModels,
	}
}

type listResp struct {
	APIKeys map[string]bool `json:"api_keys"`
}

func (h *handler) newListResp(out apikeys.ListOutput) listResp {
	return listResp{APIKeys: out.Providers}
}

type testResp struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func (h *handler) newTestResp(out apikeys.TestOutput) testResp {
	return testResp{Success: out.Success, Message: out.Message}
}
