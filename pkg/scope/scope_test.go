package scope_test

import (
	"errors"
	"testing"
	"time"

	"timeline-to-calendar/pkg/scope"
)

func TestIssueVerify(t *testing.T) {
	m := scope.NewManager("unit-test-secret")

	payload := scope.Payload{
		SessionID: "sess-123",
		UserID:    "user-456",
		Email:     "user@example.com",
		Name:      "Test User",
	}

	token, err := m.Issue(payload, time.Now().Add(time.Hour))
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	got, err := m.Verify(token)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if got != payload {
		t.Errorf("Verify got %+v, want %+v", got, payload)
	}
}

func TestVerifyExpired(t *testing.T) {
	m := scope.NewManager("unit-test-secret")

	token, err := m.Issue(scope.Payload{UserID: "user-1"}, time.Now().Add(-time.Minute))
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	if _, err := m.Verify(token); !errors.Is(err, scope.ErrTokenExpired) {
		t.Errorf("expected ErrTokenExpired, got %v", err)
	}
}

func TestVerifyInvalid(t *testing.T) {
	m := scope.NewManager("unit-test-secret")
	other := scope.NewManager("different-secret")

	token, _ := other.Issue(scope.Payload{UserID: "user-1"}, time.Now().Add(time.Hour))

	tests := []struct {
		name  string
		token string
	}{
		{"Garbage", "not.a.jwt"},
		{"Empty", ""},
		{"Wrong secret", token},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := m.Verify(tt.token); !errors.Is(err, scope.ErrTokenInvalid) {
				t.Errorf("expected ErrTokenInvalid, got %v", err)
			}
		})
	}
}
