package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/codewise-hub/identity-service/internal/identity/domain"
)

type SessionRepository struct {
	db PgxIface
}

func NewSessionRepository(db PgxIface) *SessionRepository {
	return &SessionRepository{db: db}
}

func (r *SessionRepository) Create(ctx context.Context, record *domain.SessionRecord) error {
	query := `
		INSERT INTO session_records (id, account_id, token, ip_address, user_agent,
		                             expires_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.db.Exec(ctx, query,
		record.ID, record.AccountID, record.Token, record.IPAddress,
		record.UserAgent, record.ExpiresAt, record.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert session record: %w", err)
	}

	return nil
}

func (r *SessionRepository) GetByToken(ctx context.Context, token string) (*domain.SessionRecord, error) {
	query := `
		SELECT id, account_id, token, ip_address, user_agent, expires_at, created_at
		FROM session_records
		WHERE token = $1
		LIMIT 1
	`
	row := r.db.QueryRow(ctx, query, token)

	var record domain.SessionRecord
	err := row.Scan(&record.ID, &record.AccountID, &record.Token, &record.IPAddress,
		&record.UserAgent, &record.ExpiresAt, &record.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get session record by token: %w", err)
	}

	return &record, nil
}

// DeleteByToken revokes a single session. Deleting a token that has no
// record is not an error; revocation is idempotent.
func (r *SessionRepository) DeleteByToken(ctx context.Context, token string) error {
	query := `DELETE FROM session_records WHERE token = $1`
	if _, err := r.db.Exec(ctx, query, token); err != nil {
		return fmt.Errorf("failed to delete session record: %w", err)
	}

	return nil
}

// DeleteByAccountID revokes every session an account holds.
func (r *SessionRepository) DeleteByAccountID(ctx context.Context, accountID string) error {
	query := `DELETE FROM session_records WHERE account_id = $1`
	if _, err := r.db.Exec(ctx, query, accountID); err != nil {
		return fmt.Errorf("failed to delete account sessions: %w", err)
	}

	return nil
}
