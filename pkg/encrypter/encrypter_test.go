package encrypter_test

import (
	"errors"
	"testing"

	"timeline-to-calendar/pkg/encrypter"
)

func TestNew(t *testing.T) {
	if _, err := encrypter.New(""); err == nil {
		t.Fatalf("expected error for empty secret")
	}

	// Any non-empty passphrase is a valid key after hashing.
	if _, err := encrypter.New("s"); err != nil {
		t.Fatalf("unexpected error for short secret: %v", err)
	}
}

func TestEncryptDecrypt(t *testing.T) {
	e, err := encrypter.New("unit-test-secret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []string{
		"",
		"sk-abcdef1234567890",
		"AIzaSyD-long-google-style-key-with-dashes_and_underscores",
	}

	for _, plaintext := range tests {
		ciphertext, err := e.Encrypt(plaintext)
		if err != nil {
			t.Fatalf("Encrypt(%q) error: %v", plaintext, err)
		}
		if ciphertext == plaintext && plaintext != "" {
			t.Errorf("Encrypt(%q) returned plaintext", plaintext)
		}

		got, err := e.Decrypt(ciphertext)
		if err != nil {
			t.Fatalf("Decrypt error: %v", err)
		}
		if got != plaintext {
			t.Errorf("round trip got %q, want %q", got, plaintext)
		}
	}
}

func TestEncryptNonDeterministic(t *testing.T) {
	e, _ := encrypter.New("unit-test-secret")

	a, _ := e.Encrypt("same input")
	b, _ := e.Encrypt("same input")
	if a == b {
		t.Errorf("expected distinct ciphertexts for repeated input")
	}
}

func TestDecryptInvalid(t *testing.T) {
	e, _ := encrypter.New("unit-test-secret")

	tests := []struct {
		name       string
		ciphertext string
	}{
		{"Not base64", "%%%not-base64%%%"},
		{"Too short", "YWJj"},
		{"Tampered", func() string {
			c, _ := e.Encrypt("secret value")
			return c[:len(c)-4] + "AAAA"
		}()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := e.Decrypt(tt.ciphertext); !errors.Is(err, encrypter.ErrInvalidCiphertext) {
				t.Errorf("expected ErrInvalidCiphertext, got %v", err)
			}
		})
	}
}

func TestDecryptWrongKey(t *testing.T) {
	a, _ := encrypter.New("secret-a")
	b, _ := encrypter.New("secret-b")

	ciphertext, _ := a.Encrypt("cross-key value")
	if _, err := b.Decrypt(ciphertext); !errors.Is(err, encrypter.ErrInvalidCiphertext) {
		t.Errorf("expected ErrInvalidCiphertext across keys, got %v", err)
	}
}
