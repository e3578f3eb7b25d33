package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	autherror "github.com/codewise-hub/identity-service/internal/errors"
	"github.com/codewise-hub/identity-service/internal/identity/domain"
	"github.com/codewise-hub/identity-service/internal/identity/dto"
)

// IdentityService orchestrates registration, authentication and token
// resolution over the account and session stores.
type IdentityService struct {
	accounts domain.AccountRepository
	sessions domain.SessionRepository
	hasher   *PasswordHasher
	tokens   TokenGenerator
	logger   *slog.Logger
}

func NewIdentityService(
	accounts domain.AccountRepository,
	sessions domain.SessionRepository,
	hasher *PasswordHasher,
	tokens TokenGenerator,
	logger *slog.Logger,
) *IdentityService {
	if logger == nil {
		logger = slog.Default()
	}
	return &IdentityService{
		accounts: accounts,
		sessions: sessions,
		hasher:   hasher,
		tokens:   tokens,
		logger:   logger,
	}
}

// Register creates an account and its first session. Uniqueness of the
// email is left to the store's constraint: two concurrent registrations
// for the same address resolve to one success and one ErrAccountExists.
func (s *IdentityService) Register(ctx context.Context, input dto.RegisterInput) (*domain.Account, string, error) {
	role, ageBracket, err := validateRegisterInput(&input)
	if err != nil {
		return nil, "", err
	}

	digest, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, "", err
	}

	now := time.Now()
	account := &domain.Account{
		ID:           uuid.NewString(),
		Email:        input.Email,
		Name:         input.Name,
		PasswordHash: &digest,
		Role:         role,
		AgeBracket:   ageBracket,
		PackageID:    input.PackageID,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.accounts.Insert(ctx, account); err != nil {
		return nil, "", err
	}

	token, err := s.issueSession(ctx, account.ID, input.IPAddress, input.UserAgent)
	if err != nil {
		return nil, "", err
	}

	return account, token, nil
}

// Authenticate verifies credentials and issues a fresh session. Unknown
// email, inactive account, missing local credential and wrong password
// all collapse into the single ErrInvalidCredentials outcome.
func (s *IdentityService) Authenticate(ctx context.Context, input dto.LoginInput) (*domain.Account, string, error) {
	account, err := s.accounts.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, "", err
	}
	if account == nil {
		return nil, "", autherror.ErrInvalidCredentials
	}

	if !account.IsActive {
		return nil, "", autherror.ErrInvalidCredentials
	}

	if account.PasswordHash == nil {
		// Provisioned externally; cannot authenticate locally.
		return nil, "", autherror.ErrInvalidCredentials
	}

	if !s.hasher.Verify(input.Password, *account.PasswordHash) {
		return nil, "", autherror.ErrInvalidCredentials
	}

	now := time.Now()
	if err := s.accounts.TouchLastLogin(ctx, account.ID, now); err != nil {
		// Best effort. A stale audit timestamp is better than a failed login.
		s.logger.Warn("failed to update last login", "account_id", account.ID, "error", err)
	} else {
		account.LastLoginAt = &now
		account.UpdatedAt = now
	}

	token, err := s.issueSession(ctx, account.ID, input.IPAddress, input.UserAgent)
	if err != nil {
		return nil, "", err
	}

	return account, token, nil
}

// Resolve translates a presented token back into the account it was
// issued for. Signature, embedded expiry, session record presence,
// record expiry and account existence are all required; any miss yields
// ErrInvalidToken. Nothing is mutated.
func (s *IdentityService) Resolve(ctx context.Context, token string) (*domain.Account, error) {
	claims, err := s.tokens.Verify(token)
	if err != nil {
		return nil, autherror.ErrInvalidToken
	}

	record, err := s.sessions.GetByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if record == nil {
		// Well-formed but never issued, or revoked.
		return nil, autherror.ErrInvalidToken
	}

	// The record carries its own expiry; it must agree with the claim in
	// the common case but is checked independently.
	if !time.Now().Before(record.ExpiresAt) {
		return nil, autherror.ErrInvalidToken
	}

	account, err := s.accounts.GetByID(ctx, claims.AccountID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, autherror.ErrInvalidToken
	}

	return account, nil
}

// Revoke deletes the session record backing a token, making the token
// unresolvable even before its embedded claim expires.
func (s *IdentityService) Revoke(ctx context.Context, token string) error {
	return s.sessions.DeleteByToken(ctx, token)
}

func (s *IdentityService) issueSession(ctx context.Context, accountID, ip, userAgent string) (string, error) {
	token, expiresAt, err := s.tokens.Issue(accountID)
	if err != nil {
		return "", err
	}

	record := &domain.SessionRecord{
		ID:        uuid.NewString(),
		AccountID: accountID,
		Token:     token,
		IPAddress: ip,
		UserAgent: userAgent,
		ExpiresAt: expiresAt,
		CreatedAt: time.Now(),
	}

	if err := s.sessions.Create(ctx, record); err != nil {
		return "", err
	}

	return token, nil
}

func validateRegisterInput(input *dto.RegisterInput) (domain.Role, domain.AgeBracket, error) {
	input.Email = strings.TrimSpace(input.Email)
	if input.Email == "" {
		return "", "", autherror.ErrEmailRequired
	}
	if !strings.Contains(input.Email, "@") {
		return "", "", autherror.ErrInvalidEmail
	}
	if input.Password == "" {
		return "", "", autherror.ErrPasswordRequired
	}
	if strings.TrimSpace(input.Name) == "" {
		return "", "", autherror.ErrNameRequired
	}

	role := domain.Role(input.Role)
	if input.Role == "" {
		role = domain.RoleLearner
	} else if !role.Valid() {
		return "", "", autherror.ErrInvalidRole
	}

	ageBracket := domain.AgeBracket(input.AgeBracket)
	if !ageBracket.Valid() {
		return "", "", autherror.ErrInvalidAgeBracket
	}

	return role, ageBracket, nil
}
