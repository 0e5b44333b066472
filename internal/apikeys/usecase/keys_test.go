package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"timeline-to-calendar/internal/apikeys"
	"timeline-to-calendar/internal/apikeys/repository"
	"timeline-to-calendar/pkg/encrypter"
	"timeline-to-calendar/pkg/llmprovider"
	"timeline-to-calendar/pkg/log"
)

// mockRepo is an in-memory apikeys repository.
type mockRepo struct {
	records map[string]map[string]repository.Record
	err     error
}

func newMockRepo() *mockRepo {
	return &mockRepo{records: map[string]map[string]repository.Record{}}
}

func (m *mockRepo) Save(_ context.Context, userID string, rec repository.Record) error {
	if m.err != nil {
		return m.err
	}
	if m.records[userID] == nil {
		m.records[userID] = map[string]repository.Record{}
	}
	m.records[userID][rec.Provider] = rec
	return nil
}

func (m *mockRepo) Get(_ context.Context, userID, provider string) (repository.Record, error) {
	if m.err != nil {
		return repository.Record{}, m.err
	}
	return m.records[userID][provider], nil
}

func (m *mockRepo) List(_ context.Context, userID string) ([]repository.Record, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []repository.Record
	for _, rec := range m.records[userID] {
		out = append(out, rec)
	}
	return out, nil
}

func (m *mockRepo) Delete(_ context.Context, userID, provider string) error {
	if m.err != nil {
		return m.err
	}
	delete(m.records[userID], provider)
	return nil
}

func newTestUseCase(t *testing.T, repo *mockRepo) *implUseCase {
	t.Helper()
	enc, err := encrypter.New("test-secret")
	if err != nil {
		t.Fatalf("encrypter.New: %v", err)
	}
	return New(repo, enc, llmprovider.NewCatalog(8, time.Minute), log.NewNop())
}

func TestSave(t *testing.T) {
	tests := []struct {
		name    string
		input   apikeys.SaveInput
		wantErr error
	}{
		{
			name:  "Valid gemini key",
			input: apikeys.SaveInput{UserID: "u1", Provider: "gemini", APIKey: "AIzaSyD-0123456789"},
		},
		{
			name:    "Provider too short",
			input:   apikeys.SaveInput{UserID: "u1", Provider: "g", APIKey: "AIzaSyD-0123456789"},
			wantErr: apikeys.ErrProviderInvalid,
		},
		{
			name:    "Key too short",
			input:   apikeys.SaveInput{UserID: "u1", Provider: "gemini", APIKey: "short"},
			wantErr: apikeys.ErrKeyInvalid,
		},
		{
			name:    "Key too long",
			input:   apikeys.SaveInput{UserID: "u1", Provider: "gemini", APIKey: strings.Repeat("x", 101)},
			wantErr: apikeys.ErrKeyInvalid,
		},
		{
			name:    "Unknown provider",
			input:   apikeys.SaveInput{UserID: "u1", Provider: "claude", APIKey: "sk-0123456789"},
			wantErr: apikeys.ErrProviderUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newMockRepo()
			uc := newTestUseCase(t, repo)

			err := uc.Save(context.Background(), tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Save() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr != nil {
				return
			}

			rec := repo.records["u1"][tt.input.Provider]
			if rec.Ciphertext == tt.input.APIKey {
				t.Errorf("key stored in plaintext")
			}
			if rec.KeyHash == "" {
				t.Errorf("key hash missing")
			}
		})
	}
}

func TestSaveBoundaryLengths(t *testing.T) {
	uc := newTestUseCase(t, newMockRepo())

	// Exactly at the limits is accepted.
	if err := uc.Save(context.Background(), apikeys.SaveInput{
		UserID: "u1", Provider: "gemini", APIKey: strings.Repeat("k", 10),
	}); err != nil {
		t.Errorf("10-char key rejected: %v", err)
	}
	if err := uc.Save(context.Background(), apikeys.SaveInput{
		UserID: "u1", Provider: "gemini", APIKey: strings.Repeat("k", 100),
	}); err != nil {
		t.Errorf("100-char key rejected: %v", err)
	}
}

func TestList(t *testing.T) {
	repo := newMockRepo()
	uc := newTestUseCase(t, repo)
	ctx := context.Background()

	if err := uc.Save(ctx, apikeys.SaveInput{UserID: "u1", Provider: "openai", APIKey: "sk-0123456789"}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	out, err := uc.List(ctx, "u1")
	if err != nil {
		t.Fatalf("List error: %v", err)
	}

	// Every supported provider is present, stored ones flagged true.
	if len(out.Providers) != len(llmprovider.Names()) {
		t.Errorf("got %d providers, want %d", len(out.Providers), len(llmprovider.Names()))
	}
	if !out.Providers["openai"] {
		t.Errorf("openai should be marked stored")
	}
	if out.Providers["gemini"] {
		t.Errorf("gemini should not be marked stored")
	}
}

func TestRemove(t *testing.T) {
	repo := newMockRepo()
	uc := newTestUseCase(t, repo)
	ctx := context.Background()

	if err := uc.Remove(ctx, "u1", "gemini"); !errors.Is(err, apikeys.ErrKeyNotFound) {
		t.Errorf("expected ErrKeyNotFound, got %v", err)
	}

	if err := uc.Save(ctx, apikeys.SaveInput{UserID: "u1", Provider: "gemini", APIKey: "AIzaSyD-0123456789"}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := uc.Remove(ctx, "u1", "gemini"); err != nil {
		t.Fatalf("Remove error: %v", err)
	}
	if _, err := uc.PlaintextKey(ctx, "u1", "gemini"); !errors.Is(err, apikeys.ErrKeyNotFound) {
		t.Errorf("key still readable after remove: %v", err)
	}
}

func TestPlaintextKey(t *testing.T) {
	repo := newMockRepo()
	uc := newTestUseCase(t, repo)
	ctx := context.Background()

	const key = "AIzaSyD-0123456789"
	if err := uc.Save(ctx, apikeys.SaveInput{UserID: "u1", Provider: "gemini", APIKey: key}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := uc.PlaintextKey(ctx, "u1", "gemini")
	if err != nil {
		t.Fatalf("PlaintextKey error: %v", err)
	}
	if got != key {
		t.Errorf("PlaintextKey got %q, want %q", got, key)
	}

	if _, err := uc.PlaintextKey(ctx, "u2", "gemini"); !errors.Is(err, apikeys.ErrKeyNotFound) {
		t.Errorf("expected ErrKeyNotFound for other user, got %v", err)
	}
}

func TestProviders(t *testing.T) {
	uc := newTestUseCase(t, newMockRepo())

	out, err := uc.Providers(context.Background())
	if err != nil {
		t.Fatalf("Providers error: %v", err)
	}
	if len(out.AvailableProviders) != len(llmprovider.Names()) {
		t.Errorf("got %d providers, want %d", len(out.AvailableProviders), len(llmprovider.Names()))
	}
	for _, name := range out.AvailableProviders {
		if len(out.ProviderModels[name]) == 0 {
			t.Errorf("provider %s has no static models", name)
		}
	}
}

func TestModelsUnknownProvider(t *testing.T) {
	uc := newTestUseCase(t, newMockRepo())

	if _, err := uc.Models(context.Background(), "u1", "claude"); !errors.Is(err, apikeys.ErrProviderUnknown) {
		t.Errorf("expected ErrProviderUnknown, got %v", err)
	}
}

func TestModelsWithoutKey(t *testing.T) {
	uc := newTestUseCase(t, newMockRepo())

	// No stored key falls back to the static catalog.
	models, err := uc.Models(context.Background(), "u1", "deepseek")
	if err != nil {
		t.Fatalf("Models error: %v", err)
	}
	if len(models) != len(llmprovider.StaticModels("deepseek")) {
		t.Errorf("got %d models, want static list", len(models))
	}
}

func TestTestUnknownProvider(t *testing.T) {
	uc := newTestUseCase(t, newMockRepo())

	if _, err := uc.Test(context.Background(), "u1", "claude"); !errors.Is(err, apikeys.ErrProviderUnknown) {
		t.Errorf("expected ErrProviderUnknown, got %v", err)
	}
	if _, err := uc.Test(context.Background(), "u1", "gemini"); !errors.Is(err, apikeys.ErrKeyNotFound) {
		t.Errorf("expected ErrKeyNotFound, got %v", err)
	}
}
