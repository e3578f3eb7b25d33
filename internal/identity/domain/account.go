package domain

import "time"

// Role classifies what kind of user an account belongs to.
type Role string

const (
	RoleLearner          Role = "learner"
	RoleEducator         Role = "educator"
	RoleGuardian         Role = "guardian"
	RoleInstitutionAdmin Role = "institution_admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleLearner, RoleEducator, RoleGuardian, RoleInstitutionAdmin:
		return true
	}
	return false
}

// AgeBracket is an optional coarse age classification. The empty value
// means "not provided".
type AgeBracket string

const (
	AgeBracketChild AgeBracket = "child"
	AgeBracketTeen  AgeBracket = "teen"
	AgeBracketAdult AgeBracket = "adult"
)

func (a AgeBracket) Valid() bool {
	switch a {
	case "", AgeBracketChild, AgeBracketTeen, AgeBracketAdult:
		return true
	}
	return false
}

type Account struct {
	ID           string
	Email        string
	Name         string
	PasswordHash *string // nil for accounts provisioned without a local password
	Role         Role
	AgeBracket   AgeBracket
	PackageID    *string
	IsActive     bool
	LastLoginAt  *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// SessionRecord is one issued, persisted proof of authentication. Expiry is
// fixed at creation; renewal means a new record, never an update in place.
type SessionRecord struct {
	ID        string
	AccountID string
	Token     string
	IPAddress string
	UserAgent string
	ExpiresAt time.Time
	CreatedAt time.Time
}
