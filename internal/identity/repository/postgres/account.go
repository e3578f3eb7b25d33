package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	autherror "github.com/codewise-hub/identity-service/internal/errors"
	"github.com/codewise-hub/identity-service/internal/identity/domain"
)

type AccountRepository struct {
	db PgxIface
}

func NewAccountRepository(db PgxIface) *AccountRepository {
	return &AccountRepository{db: db}
}

const accountColumns = `id, email, name, password_hash, role, age_bracket, package_id,
		       is_active, last_login_at, created_at, updated_at`

// Insert persists a new account. Email uniqueness is enforced by the
// accounts_email_key index, not by a prior read, so concurrent inserts
// for the same email resolve to exactly one success.
func (r *AccountRepository) Insert(ctx context.Context, account *domain.Account) error {
	query := `
		INSERT INTO accounts (id, email, name, password_hash, role, age_bracket,
		                      package_id, is_active, last_login_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err := r.db.Exec(ctx, query,
		account.ID, account.Email, account.Name, account.PasswordHash,
		string(account.Role), nullableString(string(account.AgeBracket)),
		account.PackageID, account.IsActive, account.LastLoginAt,
		account.CreatedAt, account.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return autherror.ErrAccountExists
		}
		return fmt.Errorf("failed to insert account: %w", err)
	}

	return nil
}

func (r *AccountRepository) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	query := `
		SELECT ` + accountColumns + `
		FROM accounts
		WHERE email = $1
		LIMIT 1
	`
	account, err := r.scanAccount(r.db.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get account by email: %w", err)
	}

	return account, nil
}

func (r *AccountRepository) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	query := `
		SELECT ` + accountColumns + `
		FROM accounts
		WHERE id = $1
		LIMIT 1
	`
	account, err := r.scanAccount(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get account by id: %w", err)
	}

	return account, nil
}

// TouchLastLogin stamps a successful authentication. Callers treat a
// failure here as non-fatal.
func (r *AccountRepository) TouchLastLogin(ctx context.Context, id string, at time.Time) error {
	query := `
		UPDATE accounts
		SET last_login_at = $2, updated_at = $2
		WHERE id = $1
	`
	_, err := r.db.Exec(ctx, query, id, at)
	if err != nil {
		return fmt.Errorf("failed to touch last login: %w", err)
	}

	return nil
}

func (r *AccountRepository) scanAccount(row pgx.Row) (*domain.Account, error) {
	var (
		account    domain.Account
		role       string
		ageBracket *string
	)
	err := row.Scan(&account.ID, &account.Email, &account.Name, &account.PasswordHash,
		&role, &ageBracket, &account.PackageID, &account.IsActive,
		&account.LastLoginAt, &account.CreatedAt, &account.UpdatedAt)
	if err != nil {
		return nil, err
	}

	account.Role = domain.Role(role)
	if ageBracket != nil {
		account.AgeBracket = domain.AgeBracket(*ageBracket)
	}

	return &account, nil
}

func nullableString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
