package dto

import (
	"time"

	"github.com/codewise-hub/identity-service/internal/identity/domain"
)

// AccountOutput is the caller-facing view of an account. The password
// digest never appears here.
type AccountOutput struct {
	ID          string     `json:"id"`
	Email       string     `json:"email"`
	Name        string     `json:"name"`
	Role        string     `json:"role"`
	AgeBracket  string     `json:"age_bracket,omitempty"`
	PackageID   *string    `json:"package_id,omitempty"`
	IsActive    bool       `json:"is_active"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func NewAccountOutput(a *domain.Account) *AccountOutput {
	return &AccountOutput{
		ID:          a.ID,
		Email:       a.Email,
		Name:        a.Name,
		Role:        string(a.Role),
		AgeBracket:  string(a.AgeBracket),
		PackageID:   a.PackageID,
		IsActive:    a.IsActive,
		LastLoginAt: a.LastLoginAt,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

type AuthResponse struct {
	Account *AccountOutput `json:"account"`
	Token   string         `json:"token"`
}
