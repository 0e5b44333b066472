package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"timeline-to-calendar/internal/apikeys/repository"
	"timeline-to-calendar/pkg/log"
)

const keysFile = "api_keys.json"

// Store is a file-backed API key repository. Keys are kept encrypted
// on disk, grouped per user, and rewritten wholesale on mutation.
type Store struct {
	mu   sync.RWMutex
	dir  string
	l    log.Logger
	keys map[string]map[string]keyRecord // userID -> provider -> record
}

var _ repository.Repository = (*Store)(nil)

// New opens (or creates) the file store under dir.
func New(dir string, l log.Logger) (*Store, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("failed to create data dir: %w", err)
	}

	s := &Store{
		dir:  dir,
		l:    l,
		keys: make(map[string]map[string]keyRecord),
	}

	if err := loadJSON(filepath.Join(dir, keysFile), &s.keys); err != nil {
		return nil, fmt.Errorf("failed to load api keys: %w", err)
	}

	return s, nil
}

// Save creates or overwrites a key record for (user, provider).
func (s *Store) Save(ctx context.Context, userID string, rec repository.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.keys[userID] == nil {
		s.keys[userID] = make(map[string]keyRecord)
	}
	s.keys[userID][rec.Provider] = keyRecord{
		Provider:   rec.Provider,
		Ciphertext: rec.Ciphertext,
		KeyHash:    rec.KeyHash,
		UpdatedAt:  rec.UpdatedAt,
	}
	return s.persist()
}

// Get returns the record for (user, provider), or a zero Record.
func (s *Store) Get(ctx context.Context, userID, provider string) (repository.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.keys[userID][provider]
	if !ok {
		return repository.Record{}, nil
	}
	return repository.Record(rec), nil
}

// List returns all records for a user, ordered by provider name.
func (s *Store) List(ctx context.Context, userID string) ([]repository.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := make([]repository.Record, 0, len(s.keys[userID]))
	for _, rec := range s.keys[userID] {
		records = append(records, repository.Record(rec))
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].Provider < records[j].Provider
	})
	return records, nil
}

// Delete removes the record for (user, provider). Deleting a missing
// record is a no-op.
func (s *Store) Delete(ctx context.Context, userID, provider string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.keys[userID][provider]; !ok {
		return nil
	}
	delete(s.keys[userID], provider)
	if len(s.keys[userID]) == 0 {
		delete(s.keys, userID)
	}
	return s.persist()
}

func (s *Store) persist() error {
	return writeJSON(filepath.Join(s.dir, keysFile), s.keys)
}

type keyRecord struct {
	Provider   string    `json:"provider"`
	Ciphertext string    `json:"ciphertext"`
	KeyHash    string    `json:"key_hash"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func loadJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return json.Unmarshal(data, v)
}

// writeJSON writes via a temp file and rename so a crash mid-write
// cannot truncate the store.
func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
