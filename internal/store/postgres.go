package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
	"zenhome-backend/internal/models"
)

// PostgresStore keeps the project snapshot in a single-row key/value
// table. One project, one slot, whole-document upserts.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(connectionString string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return &PostgresStore{db: db}, nil
}

// Load reads the snapshot slot. Absent or malformed data is a soft
// failure: it is logged and (nil, nil) is returned so the caller can
// fall back to the default project. Only infrastructure failures
// (connection, query) surface as errors.
func (s *PostgresStore) Load(ctx context.Context) (*models.ProjectState, error) {
	var raw []byte
	err := s.db.QueryRowContext(ctx, `
		SELECT snapshot FROM project_snapshots WHERE key = $1
	`, SnapshotKey).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}

	var state models.ProjectState
	if err := json.Unmarshal(raw, &state); err != nil {
		log.Error().Err(err).Str("key", SnapshotKey).Msg("stored project snapshot is malformed, falling back to default")
		return nil, nil
	}
	return &state, nil
}

// Save upserts the full serialized snapshot. The write is a single
// statement, so a failure leaves the previous snapshot intact.
func (s *PostgresStore) Save(ctx context.Context, state models.ProjectState) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to serialize snapshot: %w", err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO project_snapshots (key, snapshot, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE SET snapshot = EXCLUDED.snapshot, updated_at = NOW()
	`, SnapshotKey, raw)
	if err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	return nil
}

func (s *PostgresStore) Close() error {
	return s.db.Close()
}
