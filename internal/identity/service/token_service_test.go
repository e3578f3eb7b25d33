package service

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTokenService(t *testing.T) {
	ts := NewTokenService("token-secret-key", 7*24*time.Hour)

	assert.NotNil(t, ts)
	assert.Equal(t, 7*24*time.Hour, ts.Lifetime())
}

func TestTokenService_Issue(t *testing.T) {
	tests := []struct {
		name      string
		secret    string
		lifetime  time.Duration
		accountID string
	}{
		{
			name:      "seven day lifetime",
			secret:    "test-secret-key-123",
			lifetime:  7 * 24 * time.Hour,
			accountID: "account-123",
		},
		{
			name:      "short lifetime",
			secret:    "test-secret-key-123",
			lifetime:  time.Minute,
			accountID: "account-456",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := NewTokenService(tt.secret, tt.lifetime)

			before := time.Now()
			token, expiresAt, err := ts.Issue(tt.accountID)
			after := time.Now()

			require.NoError(t, err)
			assert.NotEmpty(t, token)

			// Expiry is issued-at plus the fixed lifetime.
			assert.False(t, expiresAt.Before(before.Add(tt.lifetime)))
			assert.False(t, expiresAt.After(after.Add(tt.lifetime)))

			claims, err := ts.Verify(token)
			require.NoError(t, err)
			assert.Equal(t, tt.accountID, claims.AccountID)
			assert.WithinDuration(t, expiresAt, claims.ExpiresAt.Time, time.Second)
		})
	}
}

func TestTokenService_Verify_Expired(t *testing.T) {
	ts := NewTokenService("test-secret-key-123", -time.Minute)

	token, _, err := ts.Issue("account-123")
	require.NoError(t, err)

	claims, err := ts.Verify(token)
	assert.Error(t, err)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
	assert.Nil(t, claims)
}

func TestTokenService_Verify_WrongSecret(t *testing.T) {
	issuer := NewTokenService("secret-one", time.Hour)
	verifier := NewTokenService("secret-two", time.Hour)

	token, _, err := issuer.Issue("account-123")
	require.NoError(t, err)

	claims, err := verifier.Verify(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

// TestTokenService_Verify_TamperSensitivity flips single bits in the
// middle of each token segment and expects every altered token to fail
// verification. Mid-segment characters are used because the final
// character of a base64 segment carries unused padding bits.
func TestTokenService_Verify_TamperSensitivity(t *testing.T) {
	ts := NewTokenService("test-secret-key-123", time.Hour)

	token, _, err := ts.Issue("account-123")
	require.NoError(t, err)

	segments := strings.Split(token, ".")
	require.Len(t, segments, 3)

	offset := 0
	for seg, segment := range segments {
		pos := offset + len(segment)/2
		for bit := 0; bit < 8; bit++ {
			mutated := []byte(token)
			mutated[pos] ^= 1 << bit

			tampered := string(mutated)
			if tampered == token {
				continue
			}

			claims, err := ts.Verify(tampered)
			assert.Error(t, err, "bit %d of segment %d should invalidate the token", bit, seg)
			assert.Nil(t, claims)
		}
		offset += len(segment) + 1
	}
}

func TestTokenService_Verify_Malformed(t *testing.T) {
	ts := NewTokenService("test-secret-key-123", time.Hour)

	tests := []struct {
		name  string
		token string
	}{
		{name: "empty", token: ""},
		{name: "garbage", token: "not-a-jwt"},
		{name: "too few segments", token: "aaaa.bbbb"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := ts.Verify(tt.token)
			assert.Error(t, err)
			assert.Nil(t, claims)
		})
	}
}

// TestTokenService_Verify_RejectsNoneAlgorithm ensures an attacker
// cannot strip the signature by switching the algorithm header.
func TestTokenService_Verify_RejectsNoneAlgorithm(t *testing.T) {
	ts := NewTokenService("test-secret-key-123", time.Hour)

	claims := SessionClaims{
		AccountID: "account-123",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	require.True(t, strings.HasSuffix(unsigned, "."))

	parsed, err := ts.Verify(unsigned)
	assert.Error(t, err)
	assert.Nil(t, parsed)
}
