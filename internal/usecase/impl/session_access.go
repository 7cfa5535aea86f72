// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/store"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// requestLogger returns a request-scoped logger if available, otherwise the fallback.
func requestLogger(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, fallback)
}

// sessionError maps repository session errors onto domain errors.
func sessionError(err error) error {
	if errors.Is(err, repository.ErrSessionNotFound) {
		return errors.Wrap(domainerrors.ErrSessionNotFound, err.Error())
	}

	return err
}

func requirePersona(session *store.Session, persona entity.Persona) error {
	if session.Persona != persona {
		return errors.Wrapf(domainerrors.ErrPersonaMismatch, "session persona is %s, not %s", session.Persona, persona)
	}

	return nil
}

// updatePersonaSession runs fn under the session lock after checking the persona.
func updatePersonaSession(
	ctx context.Context,
	sessions repository.SessionRepository,
	sessionID uuid.UUID,
	persona entity.Persona,
	fn func(session *store.Session) error,
) (*store.Session, error) {
	session, err := sessions.UpdateSession(ctx, sessionID, func(s *store.Session) error {
		if err := requirePersona(s, persona); err != nil {
			return err
		}

		return fn(s)
	})
	if err != nil {
		return nil, sessionError(err)
	}

	return session, nil
}

// loadPersonaSession returns a snapshot of the session after checking the persona.
func loadPersonaSession(
	ctx context.Context,
	sessions repository.SessionRepository,
	sessionID uuid.UUID,
	persona entity.Persona,
) (*store.Session, error) {
	session, err := sessions.FindSessionByID(ctx, sessionID)
	if err != nil {
		return nil, sessionError(err)
	}
	if err := requirePersona(session, persona); err != nil {
		return nil, err
	}

	return session, nil
}
