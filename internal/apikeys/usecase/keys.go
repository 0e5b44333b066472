package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"timeline-to-calendar/internal/apikeys"
	"timeline-to-calendar/internal/apikeys/repository"
	"timeline-to-calendar/pkg/llmprovider"
)

const (
	minKeyLen      = 10
	maxKeyLen      = 100
	minProviderLen = 2
	maxProviderLen = 100
)

// Save validates and stores a provider credential, encrypted at rest.
func (uc *implUseCase) Save(ctx context.Context, input apikeys.SaveInput) error {
	if len(input.Provider) < minProviderLen || len(input.Provider) > maxProviderLen {
		return apikeys.ErrProviderInvalid
	}
	if len(input.APIKey) < minKeyLen || len(input.APIKey) > maxKeyLen {
		return apikeys.ErrKeyInvalid
	}
	if !llmprovider.Supported(input.Provider) {
		return apikeys.ErrProviderUnknown
	}

	ciphertext, err := uc.enc.Encrypt(input.APIKey)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Save Encrypt: %v", err)
		return err
	}

	rec := repository.Record{
		Provider:   input.Provider,
		Ciphertext: ciphertext,
		KeyHash:    hashKey(input.APIKey),
		UpdatedAt:  time.Now(),
	}
	if err := uc.repo.Save(ctx, input.UserID, rec); err != nil {
		uc.l.Errorf(ctx, "uc.Save repo.Save: %v", err)
		return err
	}

	uc.l.Infof(ctx, "api key saved for user %s provider %s", input.UserID, input.Provider)
	return nil
}

// List returns presence booleans per supported provider. The raw key is
// never read back.
func (uc *implUseCase) List(ctx context.Context, userID string) (apikeys.ListOutput, error) {
	records, err := uc.repo.List(ctx, userID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.List repo.List: %v", err)
		return apikeys.ListOutput{}, err
	}

	providers := make(map[string]bool, len(llmprovider.Names()))
	for _, name := range llmprovider.Names() {
		providers[name] = false
	}
	for _, rec := range records {
		providers[rec.Provider] = true
	}

	return apikeys.ListOutput{Providers: providers}, nil
}

// Remove deletes the stored key for a provider.
func (uc *implUseCase) Remove(ctx context.Context, userID, provider string) error {
	rec, err := uc.repo.Get(ctx, userID, provider)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Remove repo.Get: %v", err)
		return err
	}
	if rec.Provider == "" {
		return apikeys.ErrKeyNotFound
	}

	if err := uc.repo.Delete(ctx, userID, provider); err != nil {
		uc.l.Errorf(ctx, "uc.Remove repo.Delete: %v", err)
		return err
	}

	uc.l.Infof(ctx, "api key removed for user %s provider %s", userID, provider)
	return nil
}

// PlaintextKey decrypts and returns the stored key for sibling domains.
func (uc *implUseCase) PlaintextKey(ctx context.Context, userID, provider string) (string, error) {
	rec, err := uc.repo.Get(ctx, userID, provider)
	if err != nil {
		uc.l.Errorf(ctx, "uc.PlaintextKey repo.Get: %v", err)
		return "", err
	}
	if rec.Provider == "" {
		return "", apikeys.ErrKeyNotFound
	}

	plaintext, err := uc.enc.Decrypt(rec.Ciphertext)
	if err != nil {
		uc.l.Errorf(ctx, "uc.PlaintextKey Decrypt: %v", err)
		return "", err
	}
	return plaintext, nil
}

func hashKey(key string) string {
	sum := sha256.Sum256([]byte(key))
	return hex.EncodeToString(sum[:])
}
