package openai_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"timeline-to-calendar/pkg/openai"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) openai.IOpenAI {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := openai.New(openai.Config{
		APIKey:  "sk-test",
		BaseURL: srv.URL,
	})
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	return client
}

func TestNew(t *testing.T) {
	if _, err := openai.New(openai.Config{}); err == nil {
		t.Fatalf("expected error for missing API key")
	}

	client, err := openai.New(openai.Config{APIKey: "sk-test"})
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	if client.Model() != openai.DefaultModel {
		t.Errorf("empty model should default to %q, got %q", openai.DefaultModel, client.Model())
	}
}

func TestGenerateContent(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" || r.Method != http.MethodPost {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer sk-test" {
			t.Errorf("auth header got %q", got)
		}

		var req openai.Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("bad request body: %v", err)
		}
		if req.Model != openai.DefaultModel {
			t.Errorf("empty model not filled, got %q", req.Model)
		}

		json.NewEncoder(w).Encode(openai.Response{
			Choices: []openai.Choice{{Message: openai.Message{Role: "assistant", Content: "hello"}}},
			Usage:   openai.Usage{PromptTokens: 3, CompletionTokens: 1, TotalTokens: 4},
		})
	})

	resp, err := client.GenerateContent(context.Background(), &openai.Request{
		Messages: []openai.Message{{Role: "user", Content: "hi"}},
	})
	if err != nil {
		t.Fatalf("GenerateContent error: %v", err)
	}
	if resp.Text() != "hello" {
		t.Errorf("Text() got %q", resp.Text())
	}
	if resp.Usage.TotalTokens != 4 {
		t.Errorf("usage got %+v", resp.Usage)
	}
}

func TestGenerateContentAPIError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{"message": "Incorrect API key provided", "type": "invalid_request_error"},
		})
	})

	_, err := client.GenerateContent(context.Background(), &openai.Request{})
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(err.Error(), "401") || !strings.Contains(err.Error(), "Incorrect API key") {
		t.Errorf("error lacks status and vendor message: %v", err)
	}
}

func TestResponseTextEmpty(t *testing.T) {
	var resp openai.Response
	if resp.Text() != "" {
		t.Errorf("empty response Text() got %q", resp.Text())
	}
}

func TestListModels(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/models" || r.Method != http.MethodGet {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		w.Write([]byte(`{"data": [{"id": "gpt-4o"}, {"id": "gpt-4o-mini"}]}`))
	})

	models, err := client.ListModels(context.Background())
	if err != nil {
		t.Fatalf("ListModels error: %v", err)
	}
	if len(models) != 2 || models[0] != "gpt-4o" {
		t.Errorf("models got %v", models)
	}
}
