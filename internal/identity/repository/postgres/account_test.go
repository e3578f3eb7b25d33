package postgres_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	autherror "github.com/codewise-hub/identity-service/internal/errors"
	"github.com/codewise-hub/identity-service/internal/identity/domain"
	repo "github.com/codewise-hub/identity-service/internal/identity/repository/postgres"
)

var accountColumns = []string{
	"id", "email", "name", "password_hash", "role", "age_bracket",
	"package_id", "is_active", "last_login_at", "created_at", "updated_at",
}

func sampleAccount() *domain.Account {
	digest := "bcrypt-digest"
	now := time.Now()
	return &domain.Account{
		ID:           "account-123",
		Email:        "a@b.com",
		Name:         "Ann",
		PasswordHash: &digest,
		Role:         domain.RoleLearner,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// TestAccountRepository_Insert covers the Insert repository method,
// including translation of the unique-index violation.
func TestAccountRepository_Insert(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	ctx := context.Background()
	r := repo.NewAccountRepository(mock)
	account := sampleAccount()

	t.Run("success", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO accounts").
			WithArgs(account.ID, account.Email, account.Name, account.PasswordHash,
				string(account.Role), (*string)(nil), account.PackageID, account.IsActive,
				account.LastLoginAt, account.CreatedAt, account.UpdatedAt).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		err := r.Insert(ctx, account)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unique violation becomes ErrAccountExists", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO accounts").
			WithArgs(account.ID, account.Email, account.Name, account.PasswordHash,
				string(account.Role), (*string)(nil), account.PackageID, account.IsActive,
				account.LastLoginAt, account.CreatedAt, account.UpdatedAt).
			WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "accounts_email_key"})

		err := r.Insert(ctx, account)
		assert.ErrorIs(t, err, autherror.ErrAccountExists)
	})

	t.Run("database error", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO accounts").
			WithArgs(account.ID, account.Email, account.Name, account.PasswordHash,
				string(account.Role), (*string)(nil), account.PackageID, account.IsActive,
				account.LastLoginAt, account.CreatedAt, account.UpdatedAt).
			WillReturnError(fmt.Errorf("db error"))

		err := r.Insert(ctx, account)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, autherror.ErrAccountExists)
	})
}

func TestAccountRepository_GetByEmail(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	ctx := context.Background()
	r := repo.NewAccountRepository(mock)
	digest := "bcrypt-digest"

	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM accounts").
			WithArgs("a@b.com").
			WillReturnRows(pgxmock.NewRows(accountColumns).
				AddRow("account-123", "a@b.com", "Ann", &digest, "learner", (*string)(nil),
					(*string)(nil), true, (*time.Time)(nil), time.Now(), time.Now()))

		account, err := r.GetByEmail(ctx, "a@b.com")
		require.NoError(t, err)
		require.NotNil(t, account)
		assert.Equal(t, "account-123", account.ID)
		assert.Equal(t, domain.RoleLearner, account.Role)
		require.NotNil(t, account.PasswordHash)
		assert.Equal(t, digest, *account.PasswordHash)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM accounts").
			WithArgs("missing@b.com").
			WillReturnError(pgx.ErrNoRows)

		account, err := r.GetByEmail(ctx, "missing@b.com")
		require.NoError(t, err) // nil account, nil error
		assert.Nil(t, account)
	})

	t.Run("database error", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM accounts").
			WithArgs("a@b.com").
			WillReturnError(fmt.Errorf("db error"))

		_, err := r.GetByEmail(ctx, "a@b.com")
		assert.Error(t, err)
	})
}

func TestAccountRepository_GetByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	ctx := context.Background()
	r := repo.NewAccountRepository(mock)

	t.Run("success with nullable fields", func(t *testing.T) {
		lastLogin := time.Now().Add(-time.Hour)
		packageID := "starter-pack"
		mock.ExpectQuery("SELECT (.+) FROM accounts").
			WithArgs("account-123").
			WillReturnRows(pgxmock.NewRows(accountColumns).
				AddRow("account-123", "a@b.com", "Ann", (*string)(nil), "educator",
					func() *string { s := "adult"; return &s }(), &packageID, true,
					&lastLogin, time.Now(), time.Now()))

		account, err := r.GetByID(ctx, "account-123")
		require.NoError(t, err)
		require.NotNil(t, account)
		assert.Nil(t, account.PasswordHash)
		assert.Equal(t, domain.RoleEducator, account.Role)
		assert.Equal(t, domain.AgeBracketAdult, account.AgeBracket)
		require.NotNil(t, account.PackageID)
		assert.Equal(t, packageID, *account.PackageID)
		require.NotNil(t, account.LastLoginAt)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM accounts").
			WithArgs("missing-id").
			WillReturnError(pgx.ErrNoRows)

		account, err := r.GetByID(ctx, "missing-id")
		require.NoError(t, err)
		assert.Nil(t, account)
	})
}

func TestAccountRepository_TouchLastLogin(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	ctx := context.Background()
	r := repo.NewAccountRepository(mock)
	at := time.Now()

	t.Run("success", func(t *testing.T) {
		mock.ExpectExec("UPDATE accounts").
			WithArgs("account-123", at).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		err := r.TouchLastLogin(ctx, "account-123", at)
		assert.NoError(t, err)
	})

	t.Run("database error", func(t *testing.T) {
		mock.ExpectExec("UPDATE accounts").
			WithArgs("account-123", at).
			WillReturnError(fmt.Errorf("db error"))

		err := r.TouchLastLogin(ctx, "account-123", at)
		assert.Error(t, err)
	})
}
