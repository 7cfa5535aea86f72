package auth

import (
	"testing"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTService(t *testing.T, secret string) *jwtService {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Session = secret

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc.(*jwtService)
}

func TestJWTService_IssueAndValidate(t *testing.T) {
	svc := newTestJWTService(t, "test_session_secret_key_very_long_for_testing")
	sessionID := uuid.New()

	token, err := svc.IssueSessionToken(sessionID, entity.PersonaFamily, time.Now().Add(time.Hour))
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.ValidateSessionToken(token)
	require.NoError(t, err)
	assert.Equal(t, sessionID, claims.SessionID)
	assert.Equal(t, entity.PersonaFamily, claims.Persona)
	assert.Equal(t, sessionID.String(), claims.Subject)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	svc := newTestJWTService(t, "test_session_secret_key_very_long_for_testing")
	expiresAt := time.Now().Add(time.Hour)

	token, err := svc.IssueSessionToken(uuid.New(), entity.PersonaGenZ, expiresAt)
	require.NoError(t, err)

	svc.now = func() time.Time { return expiresAt.Add(time.Minute) }
	claims, err := svc.ValidateSessionToken(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestJWTService_InvalidTokens(t *testing.T) {
	svc := newTestJWTService(t, "test_session_secret_key_very_long_for_testing")
	other := newTestJWTService(t, "another_secret_key_that_does_not_match_ours")

	foreign, err := other.IssueSessionToken(uuid.New(), entity.PersonaGenZ, time.Now().Add(time.Hour))
	require.NoError(t, err)

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sid": uuid.NewString(),
		"iss": sessionIssuer,
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	missingSession, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"iss": sessionIssuer,
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString(svc.secret)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{"not a jwt", "clearly-not-a-jwt-token-format"},
		{"wrong secret", foreign},
		{"unsigned", unsigned},
		{"no session", missingSession},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := svc.ValidateSessionToken(tt.token)
			assert.Error(t, err)
			assert.Nil(t, claims)
		})
	}
}

func TestJWTService_EmptySecret(t *testing.T) {
	svc, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
	assert.Nil(t, svc)
	assert.Contains(t, err.Error(), "session secret must be provided")
}
