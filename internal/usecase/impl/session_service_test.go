package impl

import (
	"context"
	"testing"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/domain/store"
	"storefront/internal/domain/wizard"
	mockSvc "storefront/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type sessionServiceFixtures struct {
	service  *sessionService
	sessions repository.SessionRepository
	tokens   *mockSvc.MockTokenService
}

func createTestSessionService(t *testing.T) sessionServiceFixtures {
	sessions := newTestSessions()
	tokens := mockSvc.NewMockTokenService(t)
	cfg := &config.Config{Session: &config.SessionConfig{TTL: time.Hour}}

	svc := NewSessionService(sessions, tokens, cfg, testLogger())

	return sessionServiceFixtures{
		service:  svc.(*sessionService),
		sessions: sessions,
		tokens:   tokens,
	}
}

func TestSessionService_StartSession(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()

	fx.tokens.EXPECT().
		IssueSessionToken(mock.AnythingOfType("uuid.UUID"), entity.PersonaGenZ, mock.AnythingOfType("time.Time")).
		Return("signed-token", nil)

	started, err := fx.service.StartSession(ctx, entity.PersonaGenZ)
	require.NoError(t, err)
	assert.Equal(t, "signed-token", started.Token)
	assert.Equal(t, entity.PersonaGenZ, started.Session.Persona)
	assert.NotNil(t, started.Session.GenZ)
	assert.WithinDuration(t, time.Now().Add(time.Hour), started.Session.ExpiresAt, time.Minute)

	found, err := fx.service.GetSession(ctx, started.Session.ID)
	require.NoError(t, err)
	assert.Equal(t, started.Session.ID, found.ID)
}

func TestSessionService_StartSession_InvalidPersona(t *testing.T) {
	fx := createTestSessionService(t)

	_, err := fx.service.StartSession(context.Background(), entity.Persona("pirate"))
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidPersona))
}

func TestSessionService_StartSession_TokenFailure(t *testing.T) {
	fx := createTestSessionService(t)

	fx.tokens.EXPECT().
		IssueSessionToken(mock.Anything, mock.Anything, mock.Anything).
		Return("", errors.New("signing failed"))

	_, err := fx.service.StartSession(context.Background(), entity.PersonaFamily)
	assert.ErrorContains(t, err, "signing failed")
}

func TestSessionService_Authenticate(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()
	claims := &service.SessionClaims{SessionID: uuid.New(), Persona: entity.PersonaSwitcher}

	fx.tokens.EXPECT().ValidateSessionToken("good").Return(claims, nil)
	fx.tokens.EXPECT().ValidateSessionToken("bad").Return(nil, errors.New("token is expired"))

	got, err := fx.service.Authenticate(ctx, "good")
	require.NoError(t, err)
	assert.Equal(t, claims, got)

	_, err = fx.service.Authenticate(ctx, "bad")
	assert.True(t, errors.Is(err, domainerrors.ErrSessionTokenInvalid))
}

func TestSessionService_GetSession_NotFound(t *testing.T) {
	fx := createTestSessionService(t)

	_, err := fx.service.GetSession(context.Background(), uuid.New())
	assert.True(t, errors.Is(err, domainerrors.ErrSessionNotFound))
}

func TestSessionService_Navigate(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()
	id := openSession(t, fx.sessions, entity.PersonaYoungPro)

	// Young Pro steps advance without any answers.
	nav, err := fx.service.Navigate(ctx, id, wizard.EventNext)
	require.NoError(t, err)
	assert.True(t, nav.Validation.OK)
	assert.Equal(t, wizard.StepBudget, nav.Wizard.Current)

	nav, err = fx.service.Navigate(ctx, id, wizard.EventNext)
	require.NoError(t, err)
	assert.True(t, nav.Validation.OK)
	assert.Equal(t, wizard.StepTravel, nav.Wizard.Current)

	session, err := fx.service.GetSession(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, wizard.StepTravel, session.Wizard().Current)

	nav, err = fx.service.Navigate(ctx, id, wizard.EventBack)
	require.NoError(t, err)
	assert.Equal(t, wizard.StepBudget, nav.Wizard.Current)

	nav, err = fx.service.Navigate(ctx, id, wizard.EventBack)
	require.NoError(t, err)
	assert.Equal(t, wizard.StepPriorities, nav.Wizard.Current)

	_, err = fx.service.Navigate(ctx, id, wizard.EventBack)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidTransition))

	_, err = fx.service.Navigate(ctx, id, wizard.Event("jump"))
	assert.True(t, errors.Is(err, domainerrors.ErrUnknownEvent))
}

func TestSessionService_Navigate_HouseholdGate(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()
	id := openSession(t, fx.sessions, entity.PersonaFamily)

	// An empty household blocks the first step.
	nav, err := fx.service.Navigate(ctx, id, wizard.EventNext)
	require.NoError(t, err)
	assert.False(t, nav.Validation.OK)
	assert.Contains(t, nav.Validation.Errors, "members")
	assert.Equal(t, wizard.StepHousehold, nav.Wizard.Current)

	_, err = fx.sessions.UpdateSession(ctx, id, func(s *store.Session) error {
		s.Family.SetHousehold([]entity.HouseholdMember{
			{ID: "a", Name: "Alex", Age: 45, Role: entity.RoleParent},
			{ID: "b", Name: "Sam", Age: 43, Role: entity.RoleParent},
		})

		return nil
	})
	require.NoError(t, err)

	// From there the plan step advances without a recommendation.
	for _, want := range []wizard.Step{wizard.StepUsage, wizard.StepPlan, wizard.StepDevices} {
		nav, err = fx.service.Navigate(ctx, id, wizard.EventNext)
		require.NoError(t, err)
		require.True(t, nav.Validation.OK, "errors: %v", nav.Validation.Errors)
		assert.Equal(t, want, nav.Wizard.Current)
	}
}

func TestSessionService_ResetSession(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()
	id := openSession(t, fx.sessions, entity.PersonaGenZ)

	_, err := fx.service.UpdateCart(ctx, id, store.CartPatch{DeviceID: ptr("pixel-8a")})
	require.NoError(t, err)
	_, err = fx.service.Navigate(ctx, id, wizard.EventNext)
	require.NoError(t, err)

	session, err := fx.service.ResetSession(ctx, id)
	require.NoError(t, err)
	assert.Empty(t, session.GenZ.Cart.DeviceID)
	assert.Equal(t, wizard.StepStyle, session.GenZ.Wizard.Current)
}

func TestSessionService_UpdateCart(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()

	switcherID := openSession(t, fx.sessions, entity.PersonaSwitcher)
	cart, err := fx.service.UpdateCart(ctx, switcherID, store.CartPatch{PlanID: ptr("max"), TermMonths: ptr(36)})
	require.NoError(t, err)
	assert.Equal(t, "max", cart.PlanID)
	assert.Equal(t, 36, cart.TermMonths)

	familyID := openSession(t, fx.sessions, entity.PersonaFamily)
	_, err = fx.service.UpdateCart(ctx, familyID, store.CartPatch{PlanID: ptr("max")})
	assert.True(t, errors.Is(err, domainerrors.ErrPersonaMismatch))
}

func TestSessionService_CleanupExpiredSessions(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()
	openSession(t, fx.sessions, entity.PersonaGenZ)
	openSession(t, fx.sessions, entity.PersonaFamily)

	removed, err := fx.service.CleanupExpiredSessions(ctx)
	require.NoError(t, err)
	assert.Zero(t, removed)

	fx.service.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	removed, err = fx.service.CleanupExpiredSessions(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, removed)
}
