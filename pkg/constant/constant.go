package constant

import "time"

const (
	// SessionLifetime is the fixed validity window shared by both issuance
	// paths. A session is never extended; a new login issues a new one.
	SessionLifetime = 7 * 24 * time.Hour

	// DefaultBcryptCost is the password hashing work factor used when the
	// deployment does not override it.
	DefaultBcryptCost = 12

	// FallbackTokenSecret is used when TOKEN_SECRET is absent and strict
	// mode is off. Anyone running with it in production has no token
	// integrity; startup logs a loud warning.
	FallbackTokenSecret = "codewise-insecure-dev-secret"
)
