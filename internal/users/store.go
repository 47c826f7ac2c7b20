// internal/users/store.go

// Package users persists citizen profiles in PostgreSQL so a returning
// citizen does not have to answer the profiling questions again.
package users

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	stderrors "loksarthi/internal/common/errors"
	"loksarthi/internal/common/logger"
	"loksarthi/internal/models"
)

const createTableQuery = `
CREATE TABLE IF NOT EXISTS users (
	user_id    TEXT PRIMARY KEY,
	profile    JSONB NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	expires_at TIMESTAMPTZ NOT NULL DEFAULT NOW() + INTERVAL '1 year'
)`

// Each save pushes the retention window out another year; a sweep job can
// delete rows past expires_at.
const upsertProfileQuery = `
INSERT INTO users (user_id, profile, updated_at, expires_at)
VALUES ($1, $2, NOW(), NOW() + INTERVAL '1 year')
ON CONFLICT (user_id)
DO UPDATE SET profile = EXCLUDED.profile, updated_at = NOW(),
	expires_at = NOW() + INTERVAL '1 year'`

const selectProfileQuery = `SELECT profile FROM users WHERE user_id = $1`

const deleteProfileQuery = `DELETE FROM users WHERE user_id = $1`

// Store reads and writes citizen profiles keyed by user id.
type Store struct {
	db     *sql.DB
	logger logger.Logger
}

func NewStore(db *sql.DB, log logger.Logger) *Store {
	return &Store{
		db:     db,
		logger: log.WithFields(map[string]interface{}{"component": "user-store"}),
	}
}

// EnsureSchema creates the users table if it does not exist.
func (s *Store) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, createTableQuery); err != nil {
		return stderrors.NewProfileStoreFailedError(err)
	}
	return nil
}

// SaveProfile upserts the profile for a user.
func (s *Store) SaveProfile(ctx context.Context, userID string, profile *models.CitizenProfile) error {
	raw, err := json.Marshal(profile)
	if err != nil {
		return stderrors.NewProfileStoreFailedError(err)
	}

	if _, err := s.db.ExecContext(ctx, upsertProfileQuery, userID, raw); err != nil {
		return stderrors.NewProfileStoreFailedError(err)
	}
	return nil
}

// GetProfile loads the stored profile for a user. An unknown user returns
// (nil, nil).
func (s *Store) GetProfile(ctx context.Context, userID string) (*models.CitizenProfile, error) {
	var raw []byte
	err := s.db.QueryRowContext(ctx, selectProfileQuery, userID).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, stderrors.NewProfileStoreFailedError(err)
	}

	var profile models.CitizenProfile
	if err := json.Unmarshal(raw, &profile); err != nil {
		// Corrupt rows are logged and treated as absent, same as the
		// session store.
		s.logger.Error("discarding corrupt profile record", map[string]interface{}{
			"user_id": userID,
			"error":   err.Error(),
		})
		return nil, nil
	}
	return &profile, nil
}

// DeleteProfile removes a user's stored profile. This backs the right to
// erasure, so deleting an unknown user succeeds.
func (s *Store) DeleteProfile(ctx context.Context, userID string) error {
	if _, err := s.db.ExecContext(ctx, deleteProfileQuery, userID); err != nil {
		return stderrors.NewProfileStoreFailedError(err)
	}
	return nil
}
