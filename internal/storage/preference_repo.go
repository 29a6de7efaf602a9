package storage

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_preference_store.go -package=mocks cruxpad/internal/storage PreferenceStore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a record is not found.
	ErrNotFound = errors.New("record not found")
)

// PreferenceStore persists per-client display preferences.
type PreferenceStore interface {
	// GetDarkMode returns the stored dark mode flag.
	// Returns ErrNotFound if the client never chose a theme.
	GetDarkMode(ctx context.Context, clientID string) (bool, error)
	// SetDarkMode stores the dark mode flag, replacing any previous value.
	SetDarkMode(ctx context.Context, clientID string, dark bool) error
}

// PreferenceRepo implements PreferenceStore on SQLite.
type PreferenceRepo struct {
	db *sql.DB
}

// NewPreferenceRepo creates a new PreferenceRepo.
func NewPreferenceRepo(db *sql.DB) *PreferenceRepo {
	return &PreferenceRepo{db: db}
}

// GetDarkMode returns the stored dark mode flag for clientID.
func (r *PreferenceRepo) GetDarkMode(ctx context.Context, clientID string) (bool, error) {
	var dark bool
	err := r.db.QueryRowContext(ctx,
		"SELECT dark_mode FROM preferences WHERE client_id = ?",
		clientID,
	).Scan(&dark)

	if errors.Is(err, sql.ErrNoRows) {
		return false, ErrNotFound
	}
	if err != nil {
		return false, fmt.Errorf("failed to query preference: %w", err)
	}
	return dark, nil
}

// SetDarkMode upserts the dark mode flag for clientID.
func (r *PreferenceRepo) SetDarkMode(ctx context.Context, clientID string, dark bool) error {
	if clientID == "" {
		return fmt.Errorf("client id is required")
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO preferences (client_id, dark_mode, updated_at)
		 VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT (client_id) DO UPDATE SET
		 dark_mode = excluded.dark_mode, updated_at = CURRENT_TIMESTAMP`,
		clientID, dark,
	)
	if err != nil {
		return fmt.Errorf("failed to store preference: %w", err)
	}
	return nil
}
