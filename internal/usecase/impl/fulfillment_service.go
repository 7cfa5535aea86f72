package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"
	"storefront/internal/util"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type fulfillmentService struct {
	txManager repository.TransactionManager
	notifier  service.NotificationService
	now       func() time.Time
	logger    *slog.Logger
}

// FulfillmentServiceParams holds dependencies for FulfillmentService, injected by Fx.
type FulfillmentServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Notifier  service.NotificationService `optional:"true"`
	Logger    *slog.Logger
}

// NewFulfillmentService creates a new fulfillment service instance
func NewFulfillmentService(params FulfillmentServiceParams) usecase.FulfillmentUsecase {
	return &fulfillmentService{
		txManager: params.TxManager,
		notifier:  params.Notifier,
		now:       time.Now,
		logger:    params.Logger,
	}
}

// ConfirmOrder notifies the shopper that the order was placed
func (s *fulfillmentService) ConfirmOrder(ctx context.Context, event *service.OrderPlacedEvent) error {
	logger := requestLogger(ctx, s.logger).With(slog.String("order_id", event.OrderID))

	if event.NotifyToken == "" {
		logger.Debug("Order has no push token, skipping confirmation")

		return nil
	}
	if s.notifier == nil {
		logger.Info("Push notifications disabled, skipping confirmation")

		return nil
	}

	body := fmt.Sprintf("Your order of %d line(s) is placed. Monthly total %s.",
		event.Lines, util.FormatUSD(event.MonthlyTotal))
	if event.ESIM {
		body += " Scan the eSIM QR code in the app to activate."
	}
	data := map[string]string{
		"type":     string(service.EventOrderPlaced),
		"order_id": event.OrderID,
	}

	if err := s.notifier.SendSingleNotification(ctx, event.NotifyToken, "Order confirmed", body, data); err != nil {
		return errors.Wrap(err, "failed to send order confirmation")
	}
	logger.Info("Order confirmation sent")

	return nil
}

// AdvancePorting completes the next step of a number transfer after a carrier update
func (s *fulfillmentService) AdvancePorting(ctx context.Context, event *service.PortingUpdateEvent) (*entity.PortingStatus, error) {
	logger := requestLogger(ctx, s.logger).With(slog.String("porting_id", event.PortingID))

	var porting *entity.PortingStatus
	var advanced bool
	err := s.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		portings := repos.NewPortingRepository()

		var err error
		porting, err = portings.FindPortingByID(ctx, event.PortingID)
		if err != nil {
			return err
		}
		if advanced = porting.Advance(s.now()); !advanced {
			return nil
		}

		return portings.UpdatePorting(ctx, porting)
	})
	if err != nil {
		if errors.Is(err, repository.ErrPortingNotFound) {
			return nil, errors.Wrap(domainerrors.ErrPortingNotFound, err.Error())
		}

		return nil, errors.Wrap(domainerrors.ErrPortingFailed, err.Error())
	}

	if !advanced {
		logger.Info("Number transfer already complete")

		return porting, nil
	}
	logger.Info("Number transfer advanced",
		slog.String("step", porting.CurrentStep()),
		slog.Bool("done", porting.Done()),
	)

	return porting, nil
}
