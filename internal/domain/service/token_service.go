package service

import (
	"time"

	"storefront/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// SessionClaims are the claims of a shopper session token.
type SessionClaims struct {
	SessionID uuid.UUID      `json:"sid"`
	Persona   entity.Persona `json:"persona"`
	jwt.RegisteredClaims
}

// TokenService issues and validates the bearer tokens that bind a client to its session.
type TokenService interface {
	// IssueSessionToken creates a signed token that expires with the session.
	IssueSessionToken(sessionID uuid.UUID, persona entity.Persona, expiresAt time.Time) (string, error)

	// ValidateSessionToken checks the signature and expiry of a token string.
	ValidateSessionToken(tokenString string) (*SessionClaims, error)
}
