package usecase

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/recommend"
	"storefront/internal/domain/store"
	"storefront/internal/domain/wizard"

	"github.com/google/uuid"
)

// HouseholdUpdate is the stored household with the validation of the household step.
type HouseholdUpdate struct {
	Members    []entity.HouseholdMember `json:"members"`
	Validation wizard.Result            `json:"validation"`
}

// FamilyUsecase defines the family plan builder operations.
type FamilyUsecase interface {
	// SetHousehold stores the members, assigning IDs to new ones, and validates them.
	SetHousehold(ctx context.Context, sessionID uuid.UUID, members []entity.HouseholdMember) (*HouseholdUpdate, error)

	// SetUsage merges a patch into the household usage.
	SetUsage(ctx context.Context, sessionID uuid.UUID, patch store.UsagePatch) (*entity.HouseholdUsage, error)

	// ListDevices returns the family device browser for a category.
	ListDevices(ctx context.Context, category recommend.FamilyCategory) []recommend.FamilyDevice

	// Recommend chooses the shared plan for the household, with the individual breakdown when requested.
	Recommend(ctx context.Context, sessionID uuid.UUID, withIndividual bool) (*entity.FamilyRecommendation, error)

	// SelectDevice assigns a catalog device to a member.
	SelectDevice(ctx context.Context, sessionID uuid.UUID, memberID, deviceID string) error

	// GetSafety returns a member's settings, falling back to the role defaults.
	GetSafety(ctx context.Context, sessionID uuid.UUID, memberID string) (*entity.SafetySettings, error)

	// UpdateSafety merges a patch into a member's settings.
	UpdateSafety(ctx context.Context, sessionID uuid.UUID, memberID string, patch store.SafetyPatch) (*entity.SafetySettings, error)

	// Summary assembles the review step.
	Summary(ctx context.Context, sessionID uuid.UUID) (*entity.FamilySummary, error)
}
