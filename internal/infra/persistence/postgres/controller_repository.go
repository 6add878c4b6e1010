// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"homehub/internal/domain/entity"
	domainerrors "homehub/internal/domain/errors"
	"homehub/internal/domain/repository"
	"homehub/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// controllerRepository implements the repository.ControllerRepository interface.
type controllerRepository struct {
	db *gorm.DB
}

// NewControllerRepository is the constructor for controllerRepository.
func NewControllerRepository(db *gorm.DB) repository.ControllerRepository {
	return &controllerRepository{db: db}
}

// Create provisions a new, unclaimed controller.
func (repo *controllerRepository) Create(ctx context.Context, controller *entity.Controller) error {
	controllerM := fromControllerDomain(controller)

	if err := repo.db.WithContext(ctx).Create(controllerM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateSerial
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrControllerCreationFailed.WrapMessage("missing controller serial")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create controller")
	}

	// Update the entity with generated values
	controller.ID = controllerM.ID
	controller.CreatedAt = controllerM.CreatedAt
	controller.UpdatedAt = controllerM.UpdatedAt

	return nil
}

// FindBySerial retrieves a controller by its unique hardware serial.
// The serial carries a unique constraint; more than one row is a fatal
// integrity fault, not a candidate set to choose from.
func (repo *controllerRepository) FindBySerial(ctx context.Context, serial string) (*entity.Controller, error) {
	var controllerModels []model.ControllerModel

	if err := repo.db.WithContext(ctx).
		Where("controller_sn = ?", serial).
		Limit(2).
		Find(&controllerModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find controller by serial")
	}

	switch len(controllerModels) {
	case 0:
		return nil, repository.ErrControllerNotFound
	case 1:
		return toControllerDomain(&controllerModels[0]), nil
	default:
		return nil, domainerrors.ErrDataIntegrityFault.WrapMessage("multiple controllers share one serial")
	}
}

// FindByOwner retrieves the controller claimed by the given user.
func (repo *controllerRepository) FindByOwner(ctx context.Context, userID uuid.UUID) (*entity.Controller, error) {
	var controllerM model.ControllerModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&controllerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrControllerNotFound
		}

		return nil, errors.Wrap(err, "failed to find controller by owner")
	}

	return toControllerDomain(&controllerM), nil
}

// AssignOwner binds an unclaimed controller to a user. The WHERE guard keeps
// the claim from overwriting a concurrent winner; the unique index on user_id
// rejects a second controller for the same user.
func (repo *controllerRepository) AssignOwner(ctx context.Context, controllerID uuid.UUID, userID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ControllerModel{}).
		Where("id = ? AND user_id IS NULL", controllerID).
		Update("user_id", userID)

	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrOwnerConflict
		}
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrControllerUpdateFailed.WrapMessage("invalid user reference")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to assign controller owner")
	}

	if result.RowsAffected == 0 {
		// Either the controller vanished or another request claimed it first.
		return repository.ErrOwnerConflict
	}

	return nil
}

// --- Mapper Functions ---

// toControllerDomain converts a GORM ControllerModel to a domain Controller entity.
func toControllerDomain(data *model.ControllerModel) *entity.Controller {
	if data == nil {
		return nil
	}

	return &entity.Controller{
		ID:        data.ID,
		SerialNo:  data.SerialNo,
		UserID:    data.UserID,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromControllerDomain converts a domain Controller entity to a GORM ControllerModel.
func fromControllerDomain(data *entity.Controller) *model.ControllerModel {
	if data == nil {
		return nil
	}

	return &model.ControllerModel{
		ID:       data.ID,
		SerialNo: data.SerialNo,
		UserID:   data.UserID,
	}
}
