package postgres

import (
	"context"
	"encoding/json"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// portingRepository implements the repository.PortingRepository interface.
type portingRepository struct {
	db       *gorm.DB
	lockRows bool // Set for repositories bound to a transaction.
}

// NewPortingRepository is the constructor for portingRepository.
func NewPortingRepository(db *gorm.DB) repository.PortingRepository {
	return &portingRepository{
		db: db,
	}
}

// CreatePorting persists a new transfer request. The partial unique index on phone_number
// rejects a second open transfer for the same number.
func (repo *portingRepository) CreatePorting(ctx context.Context, porting *entity.PortingStatus) error {
	portingM, err := fromPortingDomain(porting)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(portingM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return errors.Wrapf(repository.ErrDuplicatePorting, "number %s", porting.PhoneNumber)
		}

		return errors.Wrap(err, "failed to create porting request")
	}

	porting.CreatedAt = portingM.CreatedAt
	porting.UpdatedAt = portingM.UpdatedAt

	return nil
}

// FindPortingByID retrieves a transfer by its unique ID. Inside a transaction the row is locked
// until commit so concurrent advances apply one step each.
func (repo *portingRepository) FindPortingByID(ctx context.Context, id string) (*entity.PortingStatus, error) {
	var portingM model.PortingModel

	query := repo.db.WithContext(ctx)
	if repo.lockRows {
		query = query.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	if err := query.Where("id = ?", id).First(&portingM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.Wrapf(repository.ErrPortingNotFound, "porting %s", id)
		}

		return nil, errors.Wrap(err, "failed to find porting request by ID")
	}

	return toPortingDomain(&portingM)
}

// UpdatePorting saves the steps and order link of an existing transfer.
func (repo *portingRepository) UpdatePorting(ctx context.Context, porting *entity.PortingStatus) error {
	steps, err := encodePortingSteps(porting)
	if err != nil {
		return err
	}

	result := repo.db.WithContext(ctx).
		Model(&model.PortingModel{}).
		Where("id = ?", porting.ID).
		Updates(map[string]any{
			"order_id":   porting.OrderID,
			"steps":      steps,
			"done":       porting.Done(),
			"updated_at": porting.UpdatedAt,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update porting request")
	}

	if result.RowsAffected == 0 {
		return errors.Wrapf(repository.ErrPortingNotFound, "porting %s", porting.ID)
	}

	return nil
}

func toPortingDomain(data *model.PortingModel) (*entity.PortingStatus, error) {
	var stepModels []model.PortingStepModel
	if len(data.Steps) > 0 {
		if err := json.Unmarshal(data.Steps, &stepModels); err != nil {
			return nil, errors.Wrapf(err, "failed to decode steps of porting %s", data.ID)
		}
	}

	steps := make([]entity.PortingStep, 0, len(stepModels))
	for _, s := range stepModels {
		steps = append(steps, entity.PortingStep{
			Name:        s.Name,
			Completed:   s.Completed,
			CompletedAt: s.CompletedAt,
		})
	}

	return &entity.PortingStatus{
		ID:            data.ID,
		SessionID:     data.SessionID,
		OrderID:       data.OrderID,
		PhoneNumber:   data.PhoneNumber,
		Carrier:       data.Carrier,
		AccountNumber: data.AccountNumber,
		PINHash:       data.PINHash,
		Steps:         steps,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}, nil
}

func fromPortingDomain(data *entity.PortingStatus) (*model.PortingModel, error) {
	steps, err := encodePortingSteps(data)
	if err != nil {
		return nil, err
	}

	return &model.PortingModel{
		ID:            data.ID,
		SessionID:     data.SessionID,
		OrderID:       data.OrderID,
		PhoneNumber:   data.PhoneNumber,
		Carrier:       data.Carrier,
		AccountNumber: data.AccountNumber,
		PINHash:       data.PINHash,
		Steps:         steps,
		Done:          data.Done(),
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}, nil
}

func encodePortingSteps(data *entity.PortingStatus) (datatypes.JSON, error) {
	stepModels := make([]model.PortingStepModel, 0, len(data.Steps))
	for _, s := range data.Steps {
		stepModels = append(stepModels, model.PortingStepModel{
			Name:        s.Name,
			Completed:   s.Completed,
			CompletedAt: s.CompletedAt,
		})
	}

	steps, err := json.Marshal(stepModels)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to encode steps of porting %s", data.ID)
	}

	return datatypes.JSON(steps), nil
}
