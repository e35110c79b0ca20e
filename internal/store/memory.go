package store

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/rs/zerolog/log"
	"zenhome-backend/internal/models"
)

// MemoryStore is an in-process snapshot slot used in tests and in
// DB-less development runs. It round-trips through JSON so it fails
// the same way the durable store does.
type MemoryStore struct {
	mu   sync.Mutex
	data []byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Seed primes the slot with raw bytes, valid or not. Test hook.
func (s *MemoryStore) Seed(raw []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = append([]byte(nil), raw...)
}

func (s *MemoryStore) Load(ctx context.Context) (*models.ProjectState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.data == nil {
		return nil, nil
	}
	var state models.ProjectState
	if err := json.Unmarshal(s.data, &state); err != nil {
		log.Error().Err(err).Str("key", SnapshotKey).Msg("stored project snapshot is malformed, falling back to default")
		return nil, nil
	}
	return &state, nil
}

func (s *MemoryStore) Save(ctx context.Context, state models.ProjectState) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = raw
	return nil
}
