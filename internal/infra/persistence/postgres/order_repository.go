// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"encoding/json"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{
		db: db,
	}
}

// CreateOrder persists a placed order with its lines.
func (repo *orderRepository) CreateOrder(ctx context.Context, order *entity.Order) error {
	orderM, err := fromOrderDomain(order)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return errors.Wrapf(repository.ErrDuplicateOrder, "order %s", order.ID)
		}

		return errors.Wrap(err, "failed to create order")
	}

	order.CreatedAt = orderM.CreatedAt

	return nil
}

// FindOrderByID retrieves an order by its unique ID.
func (repo *orderRepository) FindOrderByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.Wrapf(repository.ErrOrderNotFound, "order %s", id)
		}

		return nil, errors.Wrap(err, "failed to find order by ID")
	}

	return toOrderDomain(&orderM)
}

// FindOrdersBySession retrieves the orders placed from a session, oldest first.
func (repo *orderRepository) FindOrdersBySession(ctx context.Context, sessionID uuid.UUID) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel

	if err := repo.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("created_at ASC").
		Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find orders by session")
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		order, err := toOrderDomain(orderM)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}

	return orders, nil
}

func toOrderDomain(data *model.OrderModel) (*entity.Order, error) {
	var lineModels []model.OrderLineModel
	if len(data.Lines) > 0 {
		if err := json.Unmarshal(data.Lines, &lineModels); err != nil {
			return nil, errors.Wrapf(err, "failed to decode lines of order %s", data.ID)
		}
	}

	lines := make([]entity.OrderLine, 0, len(lineModels))
	for _, l := range lineModels {
		lines = append(lines, entity.OrderLine{
			DeviceID:      l.DeviceID,
			PlanID:        l.PlanID,
			TermMonths:    l.TermMonths,
			DeviceMonthly: l.DeviceMonthly,
			PlanMonthly:   l.PlanMonthly,
			Upfront:       l.Upfront,
			ESIM:          l.ESIM,
		})
	}

	return &entity.Order{
		ID:           data.ID,
		SessionID:    data.SessionID,
		Persona:      entity.Persona(data.Persona),
		Lines:        lines,
		MonthlyTotal: data.MonthlyTotal,
		UpfrontTotal: data.UpfrontTotal,
		PromoCode:    data.PromoCode,
		Discount:     data.Discount,
		ActivationID: data.ActivationID,
		NotifyToken:  data.NotifyToken,
		Status:       entity.OrderStatus(data.Status),
		CreatedAt:    data.CreatedAt,
	}, nil
}

func fromOrderDomain(data *entity.Order) (*model.OrderModel, error) {
	lineModels := make([]model.OrderLineModel, 0, len(data.Lines))
	for _, l := range data.Lines {
		lineModels = append(lineModels, model.OrderLineModel{
			DeviceID:      l.DeviceID,
			PlanID:        l.PlanID,
			TermMonths:    l.TermMonths,
			DeviceMonthly: l.DeviceMonthly,
			PlanMonthly:   l.PlanMonthly,
			Upfront:       l.Upfront,
			ESIM:          l.ESIM,
		})
	}

	lines, err := json.Marshal(lineModels)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to encode lines of order %s", data.ID)
	}

	return &model.OrderModel{
		ID:           data.ID,
		SessionID:    data.SessionID,
		Persona:      string(data.Persona),
		Lines:        datatypes.JSON(lines),
		MonthlyTotal: data.MonthlyTotal,
		UpfrontTotal: data.UpfrontTotal,
		PromoCode:    data.PromoCode,
		Discount:     data.Discount,
		ActivationID: data.ActivationID,
		NotifyToken:  data.NotifyToken,
		Status:       string(data.Status),
		CreatedAt:    data.CreatedAt,
	}, nil
}
