package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// StateKey is the fixed key the full state blob is stored under.
const StateKey = "focusflow-state"

// ErrCorruptState wraps decode failures of the persisted blob so callers can
// distinguish "unreadable state" (fall back to defaults) from real DB errors.
var ErrCorruptState = errors.New("corrupt state blob")

type StateStore struct {
	db  *sql.DB
	key string
}

func NewStateStore(db *sql.DB) *StateStore {
	return &StateStore{db: db, key: StateKey}
}

// Load reads the state blob. It returns (nil, nil) when no blob has been
// written yet; a blob that fails to decode returns an error wrapping
// ErrCorruptState.
func (s *StateStore) Load(ctx context.Context) (*State, error) {
	row := s.db.QueryRowContext(ctx, `SELECT value FROM app_state WHERE key = ?`, s.key)

	var raw string
	if err := row.Scan(&raw); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("state load: %w", err)
	}

	var st State
	if err := json.Unmarshal([]byte(raw), &st); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptState, err)
	}
	return &st, nil
}

// Save overwrites the state blob wholesale.
func (s *StateStore) Save(ctx context.Context, st *State) error {
	data, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("state marshal: %w", err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO app_state (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, s.key, string(data), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("state save: %w", err)
	}
	return nil
}
