package impl

import (
	"context"
	"log/slog"
	"strings"

	"storefront/internal/domain/catalog"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/recommend"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/store"
	"storefront/internal/domain/wizard"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type familyService struct {
	sessions repository.SessionRepository
	catalog  *catalog.Catalog
	logger   *slog.Logger
}

// NewFamilyService creates a new family plan builder service instance
func NewFamilyService(
	sessions repository.SessionRepository,
	c *catalog.Catalog,
	logger *slog.Logger,
) usecase.FamilyUsecase {
	return &familyService{
		sessions: sessions,
		catalog:  c,
		logger:   logger,
	}
}

// SetHousehold stores the members, assigning IDs to new ones, and validates them
func (s *familyService) SetHousehold(ctx context.Context, sessionID uuid.UUID, members []entity.HouseholdMember) (*usecase.HouseholdUpdate, error) {
	normalized := make([]entity.HouseholdMember, len(members))
	for i, m := range members {
		m.Name = strings.TrimSpace(m.Name)
		if m.ID == "" {
			m.ID = uuid.NewString()
		}
		normalized[i] = m
	}

	session, err := updatePersonaSession(ctx, s.sessions, sessionID, entity.PersonaFamily, func(sess *store.Session) error {
		sess.Family.SetHousehold(normalized)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &usecase.HouseholdUpdate{
		Members:    session.Family.Household,
		Validation: wizard.ValidateHousehold(session.Family.Household),
	}, nil
}

// SetUsage merges a patch into the household usage
func (s *familyService) SetUsage(ctx context.Context, sessionID uuid.UUID, patch store.UsagePatch) (*entity.HouseholdUsage, error) {
	session, err := updatePersonaSession(ctx, s.sessions, sessionID, entity.PersonaFamily, func(sess *store.Session) error {
		sess.Family.SetUsage(patch)

		return nil
	})
	if err != nil {
		return nil, err
	}

	usage := session.Family.Usage

	return &usage, nil
}

// ListDevices returns the family device browser for a category
func (s *familyService) ListDevices(_ context.Context, category recommend.FamilyCategory) []recommend.FamilyDevice {
	return recommend.FamilyDevices(s.catalog.Devices(), category)
}

// Recommend chooses the shared plan for the household
func (s *familyService) Recommend(ctx context.Context, sessionID uuid.UUID, withIndividual bool) (*entity.FamilyRecommendation, error) {
	var rec entity.FamilyRecommendation
	_, err := updatePersonaSession(ctx, s.sessions, sessionID, entity.PersonaFamily, func(sess *store.Session) error {
		household := sess.Family.Household
		if result := wizard.ValidateHousehold(household); !result.OK {
			return domainerrors.NewValidationError(result.Errors)
		}

		shared, ok := recommend.RecommendSharedPlan(s.catalog.SharedPlans(), len(household), sess.Family.Usage)
		if !ok {
			return errors.Wrapf(domainerrors.ErrNoSharedPlan, "household of %d", len(household))
		}

		var individual []entity.IndividualPlan
		if withIndividual {
			individual = recommend.IndividualPlans(household, sess.Family.Usage)
		}
		rec = recommend.Summarize(shared, individual)
		sess.Family.SetRecommendation(rec)

		return nil
	})
	if err != nil {
		return nil, err
	}

	requestLogger(ctx, s.logger).Info("Family plan recommended",
		slog.String("session_id", sessionID.String()),
		slog.String("shared_plan", rec.SharedPlan.ID),
		slog.Float64("total_savings", rec.TotalSavings),
	)

	return &rec, nil
}

// SelectDevice assigns a catalog device to a member
func (s *familyService) SelectDevice(ctx context.Context, sessionID uuid.UUID, memberID, deviceID string) error {
	if _, ok := s.catalog.Device(deviceID); !ok {
		return errors.Wrapf(domainerrors.ErrDeviceNotFound, "device %q", deviceID)
	}

	_, err := updatePersonaSession(ctx, s.sessions, sessionID, entity.PersonaFamily, func(sess *store.Session) error {
		if _, ok := sess.Family.Member(memberID); !ok {
			return errors.Wrapf(domainerrors.ErrMemberNotFound, "member %q", memberID)
		}
		sess.Family.SelectDevice(memberID, deviceID)

		return nil
	})

	return err
}

// GetSafety returns a member's settings, falling back to the role defaults
func (s *familyService) GetSafety(ctx context.Context, sessionID uuid.UUID, memberID string) (*entity.SafetySettings, error) {
	session, err := loadPersonaSession(ctx, s.sessions, sessionID, entity.PersonaFamily)
	if err != nil {
		return nil, err
	}

	member, ok := session.Family.Member(memberID)
	if !ok {
		return nil, errors.Wrapf(domainerrors.ErrMemberNotFound, "member %q", memberID)
	}

	settings := session.Family.SafetyFor(member)

	return &settings, nil
}

// UpdateSafety merges a patch into a member's settings
func (s *familyService) UpdateSafety(ctx context.Context, sessionID uuid.UUID, memberID string, patch store.SafetyPatch) (*entity.SafetySettings, error) {
	var settings entity.SafetySettings
	_, err := updatePersonaSession(ctx, s.sessions, sessionID, entity.PersonaFamily, func(sess *store.Session) error {
		member, ok := sess.Family.Member(memberID)
		if !ok {
			return errors.Wrapf(domainerrors.ErrMemberNotFound, "member %q", memberID)
		}
		settings = sess.Family.SetSafety(member, patch)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &settings, nil
}

// Summary assembles the review step
func (s *familyService) Summary(ctx context.Context, sessionID uuid.UUID) (*entity.FamilySummary, error) {
	var summary entity.FamilySummary
	_, err := updatePersonaSession(ctx, s.sessions, sessionID, entity.PersonaFamily, func(sess *store.Session) error {
		family := sess.Family
		if family.Recommendation == nil {
			return errors.Wrap(domainerrors.ErrNoSharedPlan, "no plan recommended yet")
		}

		devices := make(map[string]entity.Device, len(family.Devices))
		for memberID, deviceID := range family.Devices {
			if d, ok := s.catalog.Device(deviceID); ok {
				devices[memberID] = d
			}
		}

		summary = recommend.BuildFamilySummary(family.Household, *family.Recommendation, devices, family.Safety)
		family.SetSummary(summary)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &summary, nil
}
