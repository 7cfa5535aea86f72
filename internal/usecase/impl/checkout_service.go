package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/catalog"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/domain/store"
	"storefront/internal/usecase"
	"storefront/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type checkoutService struct {
	sessions    repository.SessionRepository
	orders      repository.OrderRepository
	txManager   repository.TransactionManager
	catalog     *catalog.Catalog
	qrcodes     service.QRCodeService
	publisher   service.EventPublisher
	smdpAddress string
	now         func() time.Time
	logger      *slog.Logger
}

// CheckoutServiceParams holds dependencies for CheckoutService, injected by Fx.
type CheckoutServiceParams struct {
	fx.In

	Sessions  repository.SessionRepository
	Orders    repository.OrderRepository
	TxManager repository.TransactionManager
	Catalog   *catalog.Catalog
	QRCodes   service.QRCodeService
	Publisher service.EventPublisher
	Config    *config.Config
	Logger    *slog.Logger
}

// NewCheckoutService creates a new checkout service instance
func NewCheckoutService(params CheckoutServiceParams) usecase.CheckoutUsecase {
	var smdpAddress string
	if params.Config.ESIM != nil {
		smdpAddress = params.Config.ESIM.SMDPAddress
	}

	return &checkoutService{
		sessions:    params.Sessions,
		orders:      params.Orders,
		txManager:   params.TxManager,
		catalog:     params.Catalog,
		qrcodes:     params.QRCodes,
		publisher:   params.Publisher,
		smdpAddress: smdpAddress,
		now:         time.Now,
		logger:      params.Logger,
	}
}

// Checkout prices the session cart and places the order
func (s *checkoutService) Checkout(ctx context.Context, sessionID uuid.UUID, req *usecase.CheckoutRequest) (*entity.Order, error) {
	// The patch is priced on a snapshot and saved to the session only once the order exists.
	session, err := s.sessions.FindSessionByID(ctx, sessionID)
	if err != nil {
		return nil, sessionError(err)
	}
	applyCartPatch(session, req.Cart)

	order, err := s.buildOrder(session, req.Cart)
	if err != nil {
		return nil, err
	}
	order.NotifyToken = strings.TrimSpace(req.NotifyToken)

	var portingID string
	if session.Switcher != nil {
		portingID = session.Switcher.PortingID
	}

	err = s.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		if err := repos.NewOrderRepository().CreateOrder(ctx, order); err != nil {
			return errors.Wrap(err, "failed to create order")
		}
		if portingID == "" {
			return nil
		}

		portings := repos.NewPortingRepository()
		porting, err := portings.FindPortingByID(ctx, portingID)
		if err != nil {
			return errors.Wrap(err, "failed to find porting")
		}
		porting.OrderID = order.ID.String()
		porting.UpdatedAt = order.CreatedAt

		return errors.Wrap(portings.UpdatePorting(ctx, porting), "failed to attach porting")
	})
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrOrderCreationFailed, err.Error())
	}

	logger := requestLogger(ctx, s.logger)
	if _, err := s.sessions.UpdateSession(ctx, sessionID, func(sess *store.Session) error {
		applyCartPatch(sess, req.Cart)

		return nil
	}); err != nil {
		logger.Warn("Failed to save checkout cart to session",
			slog.String("order_id", order.ID.String()),
			slog.Any("error", err),
		)
	}
	logger.Info("Order placed",
		slog.String("order_id", order.ID.String()),
		slog.String("persona", order.Persona.String()),
		slog.Int("lines", len(order.Lines)),
		slog.Float64("monthly_total", order.MonthlyTotal),
	)

	s.publishOrderPlaced(ctx, logger, order)

	return order, nil
}

// publishOrderPlaced hands the confirmation to the fulfillment worker. The order stands even
// when the event cannot be delivered.
func (s *checkoutService) publishOrderPlaced(ctx context.Context, logger *slog.Logger, order *entity.Order) {
	event := &service.Event{
		ID:        uuid.NewString(),
		Type:      service.EventOrderPlaced,
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		OrderPlaced: &service.OrderPlacedEvent{
			OrderID:      order.ID.String(),
			SessionID:    order.SessionID.String(),
			Persona:      order.Persona.String(),
			Lines:        len(order.Lines),
			MonthlyTotal: order.MonthlyTotal,
			ESIM:         order.HasESIM(),
			NotifyToken:  order.NotifyToken,
		},
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		logger.Warn("Failed to publish order placed event",
			slog.String("order_id", order.ID.String()),
			slog.Any("error", err),
		)
	}
}

// GetOrder returns an order placed from the session
func (s *checkoutService) GetOrder(ctx context.Context, sessionID, orderID uuid.UUID) (*entity.Order, error) {
	order, err := s.orders.FindOrderByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, errors.Wrap(domainerrors.ErrOrderNotFound, err.Error())
		}

		return nil, errors.Wrap(err, "failed to find order")
	}
	if order.SessionID != sessionID {
		return nil, errors.Wrapf(domainerrors.ErrOrderNotFound, "order %s belongs to another session", orderID)
	}

	return order, nil
}

// ESIMQRCode renders the eSIM activation QR code of an order as PNG
func (s *checkoutService) ESIMQRCode(ctx context.Context, sessionID, orderID uuid.UUID) ([]byte, error) {
	order, err := s.GetOrder(ctx, sessionID, orderID)
	if err != nil {
		return nil, err
	}
	if order.ActivationID == "" {
		return nil, errors.Wrapf(domainerrors.ErrNoESIM, "order %s", orderID)
	}

	png, err := s.qrcodes.GenerateActivationQR(entity.ESIMActivation{
		SMDPAddress: s.smdpAddress,
		MatchingID:  order.ActivationID,
	})
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrQRCodeFailed, err.Error())
	}

	return png, nil
}

func applyCartPatch(sess *store.Session, patch store.CartPatch) {
	switch {
	case sess.GenZ != nil:
		sess.GenZ.SetCart(patch)
	case sess.YoungPro != nil:
		sess.YoungPro.SetCart(patch)
	case sess.Switcher != nil:
		sess.Switcher.SetCart(patch)
	}
}

// buildOrder prices the session into an order without persisting it.
func (s *checkoutService) buildOrder(sess *store.Session, patch store.CartPatch) (*entity.Order, error) {
	var (
		lines     []entity.OrderLine
		promoCode string
		err       error
	)

	switch {
	case sess.GenZ != nil:
		lines, err = s.cartLines(sess.GenZ.Cart)
		promoCode = sess.GenZ.Cart.PromoCode
	case sess.YoungPro != nil:
		lines, err = s.cartLines(sess.YoungPro.Cart)
		promoCode = sess.YoungPro.Cart.PromoCode
	case sess.Switcher != nil:
		lines, err = s.switcherLines(sess.Switcher)
		promoCode = sess.Switcher.Cart.PromoCode
	case sess.Family != nil:
		lines, err = s.familyLines(sess.Family, termOf(patch.TermMonths))
		if patch.PromoCode != nil {
			promoCode = *patch.PromoCode
		}
	}
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, domainerrors.ErrEmptyCart
	}

	order := &entity.Order{
		ID:        uuid.New(),
		SessionID: sess.ID,
		Persona:   sess.Persona,
		Lines:     lines,
		Status:    entity.OrderPlaced,
		CreatedAt: s.now(),
	}

	var monthly, upfront float64
	for _, line := range lines {
		monthly += line.DeviceMonthly + line.PlanMonthly
		upfront += line.Upfront
	}

	if code := strings.TrimSpace(promoCode); code != "" {
		promo, ok := s.catalog.Promo(code)
		if !ok {
			return nil, errors.Wrapf(domainerrors.ErrInvalidPromoCode, "code %q", code)
		}
		order.PromoCode = promo.Code
		order.Discount = min(promo.MonthlyCredit, monthly)
	}

	order.MonthlyTotal = util.RoundCents(max(monthly-order.Discount, 0))
	order.UpfrontTotal = util.RoundCents(upfront)
	if order.HasESIM() {
		order.ActivationID = newActivationID()
	}

	return order, nil
}

// cartLines prices a single device and plan cart.
func (s *checkoutService) cartLines(cart store.Cart) ([]entity.OrderLine, error) {
	if cart.IsEmpty() {
		return nil, domainerrors.ErrEmptyCart
	}
	if cart.DeviceID == "" {
		return nil, errors.Wrap(domainerrors.ErrEmptyCart, "no device selected")
	}

	plan, err := s.plan(cart.PlanID)
	if err != nil {
		return nil, err
	}
	line, err := s.deviceLine(cart.DeviceID, plan, termOf(&cart.TermMonths))
	if err != nil {
		return nil, err
	}

	return []entity.OrderLine{line}, nil
}

// switcherLines prices the switcher cart, which may keep the shopper's own phone.
func (s *checkoutService) switcherLines(sw *store.Switcher) ([]entity.OrderLine, error) {
	cart := sw.Cart
	if cart.DeviceID != "" {
		return s.cartLines(cart)
	}
	if sw.BYO == nil {
		return nil, domainerrors.ErrEmptyCart
	}
	if !sw.BYO.Compatible {
		return nil, errors.Wrapf(domainerrors.ErrIncompatibleDevice, "model %q", sw.BYO.Model)
	}

	plan, err := s.plan(cart.PlanID)
	if err != nil {
		return nil, err
	}

	return []entity.OrderLine{{
		PlanID:      plan.ID,
		TermMonths:  termOf(&cart.TermMonths),
		PlanMonthly: plan.MonthlyPrice,
		ESIM:        sw.BYO.SimType == entity.SimESIM,
	}}, nil
}

// familyLines prices one line per household member. The shared plan is billed once, on the
// first line; members without a device keep their own phone.
func (s *checkoutService) familyLines(f *store.Family, term int) ([]entity.OrderLine, error) {
	if f.Recommendation == nil {
		return nil, domainerrors.ErrNoSharedPlan
	}

	shared := f.Recommendation.SharedPlan
	lines := make([]entity.OrderLine, 0, len(f.Household))
	for i, member := range f.Household {
		line := entity.OrderLine{
			PlanID:     shared.ID,
			TermMonths: term,
		}
		if i == 0 {
			line.PlanMonthly = shared.Price
		}
		if deviceID := f.Devices[member.ID]; deviceID != "" {
			device, ok := s.catalog.Device(deviceID)
			if !ok {
				return nil, errors.Wrapf(domainerrors.ErrDeviceNotFound, "device %q", deviceID)
			}
			line.DeviceID = device.ID
			line.DeviceMonthly = device.MonthlyPrice(term)
			line.Upfront = device.Upfront
		}
		lines = append(lines, line)
	}

	return lines, nil
}

func (s *checkoutService) plan(planID string) (entity.Plan, error) {
	if planID == "" {
		return entity.Plan{}, errors.Wrap(domainerrors.ErrEmptyCart, "no plan selected")
	}
	plan, ok := s.catalog.Plan(planID)
	if !ok {
		return entity.Plan{}, errors.Wrapf(domainerrors.ErrPlanNotFound, "plan %q", planID)
	}

	return plan, nil
}

func (s *checkoutService) deviceLine(deviceID string, plan entity.Plan, term int) (entity.OrderLine, error) {
	device, ok := s.catalog.Device(deviceID)
	if !ok {
		return entity.OrderLine{}, errors.Wrapf(domainerrors.ErrDeviceNotFound, "device %q", deviceID)
	}

	return entity.OrderLine{
		DeviceID:      device.ID,
		PlanID:        plan.ID,
		TermMonths:    term,
		DeviceMonthly: device.MonthlyPrice(term),
		PlanMonthly:   plan.MonthlyPrice,
		Upfront:       device.Upfront,
	}, nil
}

func termOf(term *int) int {
	if term == nil || (*term != store.Term24 && *term != store.Term36) {
		return store.Term24
	}

	return *term
}

// newActivationID returns a matching ID in the form XXXX-XXXX-XXXX-XXXX.
func newActivationID() string {
	raw := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:16]

	return raw[0:4] + "-" + raw[4:8] + "-" + raw[8:12] + "-" + raw[12:16]
}
