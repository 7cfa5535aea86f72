package impl

import (
	"context"
	"log/slog"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/domain/store"
	"storefront/internal/domain/wizard"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	sessions repository.SessionRepository
	tokens   service.TokenService
	ttl      time.Duration
	now      func() time.Time
	logger   *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(
	sessions repository.SessionRepository,
	tokens service.TokenService,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.SessionUsecase {
	return &sessionService{
		sessions: sessions,
		tokens:   tokens,
		ttl:      cfg.Session.TTL,
		now:      time.Now,
		logger:   logger,
	}
}

// StartSession opens a session for the persona and issues its token.
func (srv *sessionService) StartSession(ctx context.Context, persona entity.Persona) (*usecase.StartedSession, error) {
	if !persona.IsValid() {
		return nil, errors.Wrapf(domainerrors.ErrInvalidPersona, "persona %q", persona)
	}

	session, err := store.NewSession(persona, srv.now(), srv.ttl)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open session")
	}

	if err := srv.sessions.CreateSession(ctx, session); err != nil {
		return nil, errors.Wrap(err, "failed to create session")
	}

	token, err := srv.tokens.IssueSessionToken(session.ID, persona, session.ExpiresAt)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue session token")
	}

	requestLogger(ctx, srv.logger).Info("Session started",
		slog.String("session_id", session.ID.String()),
		slog.String("persona", persona.String()),
	)

	return &usecase.StartedSession{Session: session, Token: token}, nil
}

// Authenticate validates a session token and returns its claims.
func (srv *sessionService) Authenticate(ctx context.Context, token string) (*service.SessionClaims, error) {
	claims, err := srv.tokens.ValidateSessionToken(token)
	if err != nil {
		requestLogger(ctx, srv.logger).Debug("Rejected session token", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrSessionTokenInvalid, err.Error())
	}

	return claims, nil
}

// GetSession returns a snapshot of the session store.
func (srv *sessionService) GetSession(ctx context.Context, sessionID uuid.UUID) (*store.Session, error) {
	session, err := srv.sessions.FindSessionByID(ctx, sessionID)
	if err != nil {
		return nil, sessionError(err)
	}

	return session, nil
}

// ResetSession restores the persona store to its initial state.
func (srv *sessionService) ResetSession(ctx context.Context, sessionID uuid.UUID) (*store.Session, error) {
	session, err := srv.sessions.UpdateSession(ctx, sessionID, func(s *store.Session) error {
		s.Reset()

		return nil
	})
	if err != nil {
		return nil, sessionError(err)
	}

	requestLogger(ctx, srv.logger).Info("Session reset", slog.String("session_id", sessionID.String()))

	return session, nil
}

// Navigate applies a wizard event, guarded by the validation of the current step.
func (srv *sessionService) Navigate(ctx context.Context, sessionID uuid.UUID, event wizard.Event) (*usecase.Navigation, error) {
	if !event.IsValid() {
		return nil, errors.Wrapf(domainerrors.ErrUnknownEvent, "event %q", event)
	}

	var nav usecase.Navigation
	_, err := srv.sessions.UpdateSession(ctx, sessionID, func(s *store.Session) error {
		state, result, err := s.Flow().Fire(s.Wizard(), event, s.Gate())
		if err != nil {
			if errors.Is(err, wizard.ErrInvalidTransition) {
				return errors.Wrap(domainerrors.ErrInvalidTransition, err.Error())
			}

			return err
		}
		s.SetWizard(state)
		nav = usecase.Navigation{Wizard: state, Validation: result}

		return nil
	})
	if err != nil {
		return nil, sessionError(err)
	}

	return &nav, nil
}

// UpdateCart merges a cart patch into the Gen Z, Young Professional or Value Switcher store.
func (srv *sessionService) UpdateCart(ctx context.Context, sessionID uuid.UUID, patch store.CartPatch) (*store.Cart, error) {
	var cart store.Cart
	_, err := srv.sessions.UpdateSession(ctx, sessionID, func(s *store.Session) error {
		switch {
		case s.GenZ != nil:
			s.GenZ.SetCart(patch)
			cart = s.GenZ.Cart
		case s.YoungPro != nil:
			s.YoungPro.SetCart(patch)
			cart = s.YoungPro.Cart
		case s.Switcher != nil:
			s.Switcher.SetCart(patch)
			cart = s.Switcher.Cart
		default:
			return errors.Wrap(domainerrors.ErrPersonaMismatch, "family carts are built from the household")
		}

		return nil
	})
	if err != nil {
		return nil, sessionError(err)
	}

	return &cart, nil
}

// CleanupExpiredSessions removes expired sessions and reports how many were removed.
func (srv *sessionService) CleanupExpiredSessions(ctx context.Context) (int, error) {
	removed, err := srv.sessions.DeleteExpiredSessions(ctx, srv.now())
	if err != nil {
		return 0, errors.Wrap(err, "failed to delete expired sessions")
	}
	if removed > 0 {
		srv.logger.Info("Expired sessions removed", slog.Int("count", removed))
	}

	return removed, nil
}
