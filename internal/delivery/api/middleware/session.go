package middleware

import (
	"log/slog"
	"strings"

	"storefront/internal/delivery/api/response"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	contextKeySessionID = "sessionID"
	contextKeyPersona   = "persona"
)

// SessionMiddleware authenticates shoppers by their session bearer token.
type SessionMiddleware struct {
	sessionUC usecase.SessionUsecase
}

// NewSessionMiddleware is the constructor for SessionMiddleware.
func NewSessionMiddleware(sessionUC usecase.SessionUsecase) *SessionMiddleware {
	return &SessionMiddleware{sessionUC: sessionUC}
}

// Authenticate validates the session token and stores the session identity on the context.
func (m *SessionMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
		}

		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found || tokenString == "" {
			return response.Unauthorized(c, "INVALID_TOKEN_FORMAT", "Invalid token format, must be Bearer token")
		}

		claims, err := m.sessionUC.Authenticate(c.Request().Context(), tokenString)
		if err != nil {
			return response.HandleAppError(c, err)
		}

		c.Set(contextKeySessionID, claims.SessionID)
		c.Set(contextKeyPersona, claims.Persona)
		deliverycontext.WithLogAttrs(c,
			slog.String("session_id", claims.SessionID.String()),
			slog.String("persona", string(claims.Persona)),
		)

		return next(c)
	}
}

// GetSessionID returns the authenticated session ID.
func GetSessionID(c echo.Context) (uuid.UUID, bool) {
	id, ok := c.Get(contextKeySessionID).(uuid.UUID)

	return id, ok && id != uuid.Nil
}

// GetPersona returns the persona of the authenticated session.
func GetPersona(c echo.Context) (entity.Persona, bool) {
	persona, ok := c.Get(contextKeyPersona).(entity.Persona)

	return persona, ok
}
