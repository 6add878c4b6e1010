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

// entryRepository implements the repository.EntryRepository interface.
type entryRepository struct {
	db *gorm.DB
}

// NewEntryRepository is the constructor for entryRepository.
func NewEntryRepository(db *gorm.DB) repository.EntryRepository {
	return &entryRepository{db: db}
}

// Create persists a new telemetry entry.
func (repo *entryRepository) Create(ctx context.Context, entry *entity.Entry) error {
	entryM := fromEntryDomain(entry)

	if err := repo.db.WithContext(ctx).Create(entryM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrEntryCreationFailed.WrapMessage("invalid user reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrEntryCreationFailed.WrapMessage("missing required entry fields")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create entry")
	}

	// Update the entity with generated values
	entry.ID = entryM.ID
	entry.CreatedAt = entryM.CreatedAt

	return nil
}

// FindLatest retrieves the most recent entry for a (user, device type) pair.
func (repo *entryRepository) FindLatest(ctx context.Context, userID uuid.UUID, deviceType entity.DeviceType) (*entity.Entry, error) {
	var entryM model.EntryModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND device_type = ?", userID, deviceType.String()).
		Order("created_at DESC").
		First(&entryM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrEntryNotFound
		}

		return nil, errors.Wrap(err, "failed to find latest entry")
	}

	return toEntryDomain(&entryM), nil
}

// ListByUser retrieves all entries authored by a user in creation order.
func (repo *entryRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Entry, error) {
	var entryModels []*model.EntryModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&entryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list entries by user")
	}

	return toEntryDomainSlice(entryModels), nil
}

// ListByUserAndType retrieves a user's entries for one device type in creation order.
func (repo *entryRepository) ListByUserAndType(ctx context.Context, userID uuid.UUID, deviceType entity.DeviceType) ([]*entity.Entry, error) {
	var entryModels []*model.EntryModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND device_type = ?", userID, deviceType.String()).
		Order("created_at ASC").
		Find(&entryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list entries by device type")
	}

	return toEntryDomainSlice(entryModels), nil
}

// --- Mapper Functions ---

// toEntryDomain converts a GORM EntryModel to a domain Entry entity.
func toEntryDomain(data *model.EntryModel) *entity.Entry {
	if data == nil {
		return nil
	}

	return &entity.Entry{
		ID:         data.ID,
		UserID:     data.UserID,
		DeviceType: entity.DeviceType(data.DeviceType),
		DeviceData: data.DeviceData,
		CreatedAt:  data.CreatedAt,
	}
}

func toEntryDomainSlice(models []*model.EntryModel) []*entity.Entry {
	entries := make([]*entity.Entry, 0, len(models))
	for _, entryM := range models {
		entries = append(entries, toEntryDomain(entryM))
	}

	return entries
}

// fromEntryDomain converts a domain Entry entity to a GORM EntryModel.
func fromEntryDomain(data *entity.Entry) *model.EntryModel {
	if data == nil {
		return nil
	}

	return &model.EntryModel{
		ID:         data.ID,
		UserID:     data.UserID,
		DeviceType: data.DeviceType.String(),
		DeviceData: data.DeviceData,
	}
}
