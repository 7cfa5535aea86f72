package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/catalog"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/recommend"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/domain/store"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type switcherService struct {
	sessions  repository.SessionRepository
	portings  repository.PortingRepository
	catalog   *catalog.Catalog
	hasher    service.PINHasher
	publisher service.EventPublisher
	now       func() time.Time
	logger    *slog.Logger
}

// NewSwitcherService creates a new Value Switcher service instance
func NewSwitcherService(
	sessions repository.SessionRepository,
	portings repository.PortingRepository,
	c *catalog.Catalog,
	hasher service.PINHasher,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.SwitcherUsecase {
	return &switcherService{
		sessions:  sessions,
		portings:  portings,
		catalog:   c,
		hasher:    hasher,
		publisher: publisher,
		now:       time.Now,
		logger:    logger,
	}
}

// SetCarrier merges a patch into the current carrier details
func (s *switcherService) SetCarrier(ctx context.Context, sessionID uuid.UUID, patch store.CarrierPatch) (*store.CurrentCarrier, error) {
	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		patch.Name = &name
	}

	session, err := updatePersonaSession(ctx, s.sessions, sessionID, entity.PersonaSwitcher, func(sess *store.Session) error {
		sess.Switcher.SetCarrier(patch)

		return nil
	})
	if err != nil {
		return nil, err
	}

	carrier := session.Switcher.Carrier

	return &carrier, nil
}

// SetUsage merges a patch into the switcher usage
func (s *switcherService) SetUsage(ctx context.Context, sessionID uuid.UUID, patch store.SwitcherUsagePatch) (*store.SwitcherUsage, error) {
	session, err := updatePersonaSession(ctx, s.sessions, sessionID, entity.PersonaSwitcher, func(sess *store.Session) error {
		sess.Switcher.SetUsage(patch)

		return nil
	})
	if err != nil {
		return nil, err
	}

	usage := session.Switcher.Usage

	return &usage, nil
}

// CheckBYO runs the compatibility check and keeps the result in the session
func (s *switcherService) CheckBYO(ctx context.Context, sessionID uuid.UUID, model string) (*entity.BYOInfo, error) {
	info := recommend.CheckBYO(model)

	_, err := updatePersonaSession(ctx, s.sessions, sessionID, entity.PersonaSwitcher, func(sess *store.Session) error {
		sess.Switcher.SetBYO(info)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &info, nil
}

// ToggleDeal selects or unselects a catalog deal and returns the selection
func (s *switcherService) ToggleDeal(ctx context.Context, sessionID uuid.UUID, dealID string) ([]string, error) {
	known := false
	for _, deal := range s.catalog.Deals() {
		if deal.ID == dealID {
			known = true

			break
		}
	}
	if !known {
		return nil, errors.Wrapf(domainerrors.ErrDealNotFound, "deal %q", dealID)
	}

	session, err := updatePersonaSession(ctx, s.sessions, sessionID, entity.PersonaSwitcher, func(sess *store.Session) error {
		sess.Switcher.ToggleDeal(dealID)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return session.Switcher.SelectedDeals, nil
}

// StartPorting opens a number transfer for the session
func (s *switcherService) StartPorting(ctx context.Context, sessionID uuid.UUID, req *usecase.PortingRequest) (*entity.PortingStatus, error) {
	pinHash, err := s.hasher.Hash(req.PIN)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrPortingFailed, err.Error())
	}

	var porting *entity.PortingStatus
	_, err = updatePersonaSession(ctx, s.sessions, sessionID, entity.PersonaSwitcher, func(sess *store.Session) error {
		switcher := sess.Switcher
		if switcher.PortingID != "" {
			return errors.Wrapf(domainerrors.ErrPortingAlreadyStarted, "porting %s", switcher.PortingID)
		}
		if switcher.Carrier.Name == "" {
			return domainerrors.NewValidationError(map[string]string{"carrier.name": "enter your current carrier"})
		}

		now := s.now()
		porting = &entity.PortingStatus{
			ID:            uuid.NewString(),
			SessionID:     sess.ID.String(),
			PhoneNumber:   req.PhoneNumber,
			Carrier:       switcher.Carrier.Name,
			AccountNumber: req.AccountNumber,
			PINHash:       pinHash,
			Steps:         entity.NewPortingSteps(now),
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		if err := s.portings.CreatePorting(ctx, porting); err != nil {
			if errors.Is(err, repository.ErrDuplicatePorting) {
				return errors.Wrap(domainerrors.ErrPortingAlreadyStarted, err.Error())
			}

			return errors.Wrap(domainerrors.ErrPortingFailed, err.Error())
		}
		switcher.SetPorting(porting.ID)

		return nil
	})
	if err != nil {
		return nil, err
	}

	logger := requestLogger(ctx, s.logger)
	logger.Info("Number transfer started",
		slog.String("porting_id", porting.ID),
		slog.String("carrier", porting.Carrier),
	)

	// The losing carrier acknowledges the request through the same event stream it uses for progress.
	event := &service.Event{
		ID:        uuid.NewString(),
		Type:      service.EventPortingUpdate,
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		PortingUpdate: &service.PortingUpdateEvent{
			PortingID: porting.ID,
			Carrier:   porting.Carrier,
		},
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		logger.Warn("Failed to publish porting update", slog.String("porting_id", porting.ID), slog.Any("error", err))
	}

	return porting, nil
}

// GetPorting returns the transfer of the session
func (s *switcherService) GetPorting(ctx context.Context, sessionID uuid.UUID) (*entity.PortingStatus, error) {
	session, err := loadPersonaSession(ctx, s.sessions, sessionID, entity.PersonaSwitcher)
	if err != nil {
		return nil, err
	}
	if session.Switcher.PortingID == "" {
		return nil, domainerrors.ErrPortingNotFound
	}

	porting, err := s.portings.FindPortingByID(ctx, session.Switcher.PortingID)
	if err != nil {
		if errors.Is(err, repository.ErrPortingNotFound) {
			return nil, errors.Wrap(domainerrors.ErrPortingNotFound, err.Error())
		}

		return nil, errors.Wrap(err, "failed to find porting")
	}

	return porting, nil
}
