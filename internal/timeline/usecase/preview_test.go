package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"golang.org/x/oauth2"

	"timeline-to-calendar/internal/apikeys"
	"timeline-to-calendar/internal/auth"
	"timeline-to-calendar/internal/timeline"
	"timeline-to-calendar/pkg/gcalendar"
	"timeline-to-calendar/pkg/llmprovider"
	"timeline-to-calendar/pkg/log"
)

// mockAuthUC covers the slice of auth.UseCase this domain touches.
type mockAuthUC struct {
	auth.UseCase

	systemPrompt    string
	systemPromptErr error
	credentialsErr  error
}

func (m *mockAuthUC) GetSystemPrompt(context.Context, string) (string, error) {
	return m.systemPrompt, m.systemPromptErr
}

func (m *mockAuthUC) Credentials(context.Context, string) (oauth2.TokenSource, error) {
	if m.credentialsErr != nil {
		return nil, m.credentialsErr
	}
	return oauth2.StaticTokenSource(&oauth2.Token{AccessToken: "test"}), nil
}

// mockAPIKeysUC returns a fixed plaintext key.
type mockAPIKeysUC struct {
	apikeys.UseCase

	key string
	err error
}

func (m *mockAPIKeysUC) PlaintextKey(context.Context, string, string) (string, error) {
	return m.key, m.err
}

// stubProvider feeds canned parse output through the provider factory.
type stubProvider struct {
	text string
	err  error

	model string
	name  string
}

func (s *stubProvider) GenerateContent(context.Context, *llmprovider.Request) (*llmprovider.Response, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &llmprovider.Response{Text: s.text}, nil
}

func (s *stubProvider) ListModels(context.Context) ([]string, error) { return nil, nil }
func (s *stubProvider) Name() string                                 { return s.name }
func (s *stubProvider) Model() string                                { return s.model }

// mockCalendar records created events and can fail selectively.
type mockCalendar struct {
	created []gcalendar.ParsedEventInput
	failOn  map[string]error
}

func (m *mockCalendar) CreateEvent(_ context.Context, calendarID string, in gcalendar.ParsedEventInput) (*gcalendar.CreatedEvent, error) {
	if err := m.failOn[in.Title]; err != nil {
		return nil, err
	}
	m.created = append(m.created, in)
	return &gcalendar.CreatedEvent{
		ID:       fmt.Sprintf("evt-%d", len(m.created)),
		Summary:  in.Title,
		HTMLLink: "https://calendar.google.com/event",
	}, nil
}

func newPreviewUseCase(keys *mockAPIKeysUC, authUC *mockAuthUC, p *stubProvider) *implUseCase {
	uc := New(authUC, keys, log.NewNop())
	uc.newProvider = func(name, apiKey, model string) (llmprovider.Provider, error) {
		p.name = name
		if p.model == "" {
			p.model = model
		}
		return p, nil
	}
	return uc
}

func TestPreview(t *testing.T) {
	p := &stubProvider{text: `{"events": [
		{"title": "Kickoff", "start_date": "2026-09-01", "end_date": "2026-09-01", "all_day": true}
	]}`}
	uc := newPreviewUseCase(&mockAPIKeysUC{key: "AIzaSyD-0123456789"}, &mockAuthUC{}, p)

	out, err := uc.Preview(context.Background(), timeline.PreviewInput{
		UserID:       "u1",
		TimelineText: "Kickoff 1 September",
	})
	if err != nil {
		t.Fatalf("Preview error: %v", err)
	}

	if out.TotalEvents != 1 || len(out.Events) != 1 {
		t.Fatalf("got %d events, want 1", out.TotalEvents)
	}
	if out.Events[0].Title != "Kickoff" {
		t.Errorf("title got %q", out.Events[0].Title)
	}
	if out.UsedProvider != llmprovider.ProviderGemini {
		t.Errorf("empty provider should default to gemini, got %q", out.UsedProvider)
	}
	if out.UsedModel != llmprovider.DefaultModel(llmprovider.ProviderGemini) {
		t.Errorf("empty model should default to %q, got %q",
			llmprovider.DefaultModel(llmprovider.ProviderGemini), out.UsedModel)
	}
	if out.ProcessingTimeMs < 0 {
		t.Errorf("negative processing time %d", out.ProcessingTimeMs)
	}
}

func TestPreviewValidation(t *testing.T) {
	uc := newPreviewUseCase(&mockAPIKeysUC{key: "k"}, &mockAuthUC{}, &stubProvider{})

	tests := []struct {
		name    string
		input   timeline.PreviewInput
		wantErr error
	}{
		{
			name:    "Empty text",
			input:   timeline.PreviewInput{UserID: "u1", TimelineText: "   \n\t "},
			wantErr: timeline.ErrTextEmpty,
		},
		{
			name:    "Unknown provider",
			input:   timeline.PreviewInput{UserID: "u1", TimelineText: "text", Provider: "claude"},
			wantErr: timeline.ErrProviderUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := uc.Preview(context.Background(), tt.input); !errors.Is(err, tt.wantErr) {
				t.Errorf("Preview() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestPreviewNoAPIKey(t *testing.T) {
	uc := newPreviewUseCase(&mockAPIKeysUC{err: apikeys.ErrKeyNotFound}, &mockAuthUC{}, &stubProvider{})

	_, err := uc.Preview(context.Background(), timeline.PreviewInput{UserID: "u1", TimelineText: "text"})
	if !errors.Is(err, timeline.ErrNoAPIKey) {
		t.Errorf("expected ErrNoAPIKey, got %v", err)
	}
}

func TestPreviewSystemPromptForwarded(t *testing.T) {
	var gotSystem string
	p := &stubProvider{text: `{"events": []}`}
	uc := newPreviewUseCase(&mockAPIKeysUC{key: "k-0123456789"},
		&mockAuthUC{systemPrompt: "Budi is budi@example.com"}, p)
	uc.newProvider = func(name, apiKey, model string) (llmprovider.Provider, error) {
		return providerFunc(func(_ context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
			gotSystem = req.SystemInstruction
			return &llmprovider.Response{Text: `{"events": []}`}, nil
		}), nil
	}

	if _, err := uc.Preview(context.Background(), timeline.PreviewInput{UserID: "u1", TimelineText: "text"}); err != nil {
		t.Fatalf("Preview error: %v", err)
	}
	if gotSystem != "Budi is budi@example.com" {
		t.Errorf("system prompt not forwarded, got %q", gotSystem)
	}
}

// providerFunc adapts a function to llmprovider.Provider.
type providerFunc func(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)

func (f providerFunc) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	return f(ctx, req)
}
func (f providerFunc) ListModels(context.Context) ([]string, error) { return nil, nil }
func (f providerFunc) Name() string                                 { return "stub" }
func (f providerFunc) Model() string                                { return "stub-model" }

func TestPreviewSystemPromptFailureTolerated(t *testing.T) {
	p := &stubProvider{text: `{"events": []}`}
	uc := newPreviewUseCase(&mockAPIKeysUC{key: "k-0123456789"},
		&mockAuthUC{systemPromptErr: errors.New("store offline")}, p)

	if _, err := uc.Preview(context.Background(), timeline.PreviewInput{UserID: "u1", TimelineText: "text"}); err != nil {
		t.Errorf("system prompt failure should not abort preview: %v", err)
	}
}

func TestProviders(t *testing.T) {
	uc := newPreviewUseCase(&mockAPIKeysUC{}, &mockAuthUC{}, &stubProvider{})

	out, err := uc.Providers(context.Background())
	if err != nil {
		t.Fatalf("Providers error: %v", err)
	}
	if len(out.AvailableProviders) != len(llmprovider.Names()) {
		t.Errorf("got %d providers, want %d", len(out.AvailableProviders), len(llmprovider.Names()))
	}
}
