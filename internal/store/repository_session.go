package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/mh-apps/aora-client/internal/logger"
	"github.com/mh-apps/aora-client/models"
)

type sessionRepository struct {
	*DB
	logger *logger.Logger
}

func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	return &sessionRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *sessionRepository) SaveSession(ctx context.Context, session models.Session) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin session save transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, deleteSessions); err != nil {
		r.logger.Err(err).
			Str("func", "sessionRepository.SaveSession").
			Msg("failed to clear previous session")
		return fmt.Errorf("failed to clear previous session: %w", err)
	}

	var expiresAt any
	if !session.ExpiresAt.IsZero() {
		expiresAt = session.ExpiresAt
	}

	_, err = tx.ExecContext(ctx, insertSession,
		session.ID,
		session.AccountID,
		session.Secret,
		expiresAt,
		time.Now().UTC(),
	)
	if err != nil {
		r.logger.Err(err).
			Str("func", "sessionRepository.SaveSession").
			Str("session_id", session.ID).
			Msg("failed to insert session")
		return fmt.Errorf("failed to save session: %w", err)
	}

	return tx.Commit()
}

func (r *sessionRepository) LoadSession(ctx context.Context) (models.Session, error) {
	var session models.Session
	var expiresAt sql.NullTime

	row := r.DB.QueryRowContext(ctx, selectSession)
	err := row.Scan(&session.ID, &session.AccountID, &session.Secret, &expiresAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Session{}, ErrLocalSessionNotFound
	}
	if err != nil {
		r.logger.Err(err).
			Str("func", "sessionRepository.LoadSession").
			Msg("failed to scan session row")
		return models.Session{}, fmt.Errorf("failed to load session: %w", err)
	}

	if expiresAt.Valid {
		session.ExpiresAt = expiresAt.Time
	}

	if session.Expired(time.Now()) {
		// Stale secrets are useless to the caller; drop the row eagerly.
		if err = r.DeleteSession(ctx); err != nil {
			return models.Session{}, err
		}
		return models.Session{}, ErrLocalSessionNotFound
	}

	return session, nil
}

func (r *sessionRepository) DeleteSession(ctx context.Context) error {
	if _, err := r.DB.ExecContext(ctx, deleteSessions); err != nil {
		r.logger.Err(err).
			Str("func", "sessionRepository.DeleteSession").
			Msg("failed to delete session")
		return fmt.Errorf("failed to delete session: %w", err)
	}

	return nil
}
