package domain

//go:generate mockgen -destination=../../mocks/mock_repositories.go -package=mocks -source=interface.go

import (
	"context"
	"time"
)

type AccountRepository interface {
	Insert(ctx context.Context, account *Account) error
	GetByEmail(ctx context.Context, email string) (*Account, error)
	GetByID(ctx context.Context, id string) (*Account, error)
	TouchLastLogin(ctx context.Context, id string, at time.Time) error
}

type SessionRepository interface {
	Create(ctx context.Context, record *SessionRecord) error
	GetByToken(ctx context.Context, token string) (*SessionRecord, error)
	DeleteByToken(ctx context.Context, token string) error
	DeleteByAccountID(ctx context.Context, accountID string) error
}
