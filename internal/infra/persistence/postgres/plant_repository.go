package postgres

import (
	"context"

	"vde/internal/domain/entity"
	domainerrors "vde/internal/domain/errors"
	"vde/internal/domain/repository"
	"vde/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// plantRepository implements the domain.PlantRepository interface using GORM.
type plantRepository struct {
	db *gorm.DB
}

// NewPlantRepository is the constructor for plantRepository.
func NewPlantRepository(db *gorm.DB) repository.PlantRepository {
	return &plantRepository{db: db}
}

// CreatePlant persists a new plant row. The referenced address (and contact
// person, when set) must exist.
func (repo *plantRepository) CreatePlant(ctx context.Context, plant *entity.Plant) error {
	plantM := fromPlantDomain(plant)

	if err := repo.db.WithContext(ctx).Create(plantM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrInvalidReference.WrapMessage("plant references a missing address or contact person")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrApplicationCreationFailed.WrapMessage("missing required plant information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create plant")
	}

	plant.ID = plantM.ID
	plant.CreatedAt = plantM.CreatedAt
	plant.UpdatedAt = plantM.UpdatedAt

	return nil
}

// FindPlantByID retrieves a plant by its unique ID.
func (repo *plantRepository) FindPlantByID(ctx context.Context, id int64) (*entity.Plant, error) {
	var plantM model.PlantModel
	if err := repo.db.WithContext(ctx).First(&plantM, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPlantNotFound
		}

		return nil, errors.Wrap(err, "failed to find plant by ID")
	}

	return toPlantDomain(&plantM), nil
}

// DeletePlant removes a plant by its ID.
func (repo *plantRepository) DeletePlant(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).Delete(&model.PlantModel{}, id)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete plant")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPlantNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toPlantDomain converts a GORM PlantModel to a domain Plant entity.
func toPlantDomain(data *model.PlantModel) *entity.Plant {
	if data == nil {
		return nil
	}

	return &entity.Plant{
		ID:                       data.ID,
		AddressID:                data.AddressID,
		ContactPersonID:          data.ContactPersonID,
		PlannedCommissioningDate: data.PlannedCommissioningDate,
		ActualCommissioningDate:  data.ActualCommissioningDate,
		CreatedAt:                data.CreatedAt,
		UpdatedAt:                data.UpdatedAt,
	}
}

// fromPlantDomain converts a domain Plant entity to a GORM PlantModel.
func fromPlantDomain(data *entity.Plant) *model.PlantModel {
	if data == nil {
		return nil
	}

	return &model.PlantModel{
		ID:                       data.ID,
		AddressID:                data.AddressID,
		ContactPersonID:          data.ContactPersonID,
		PlannedCommissioningDate: data.PlannedCommissioningDate,
		ActualCommissioningDate:  data.ActualCommissioningDate,
		CreatedAt:                data.CreatedAt,
		UpdatedAt:                data.UpdatedAt,
	}
}
