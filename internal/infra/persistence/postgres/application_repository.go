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

// applicationRepository implements the domain.ApplicationRepository interface using GORM.
type applicationRepository struct {
	db *gorm.DB
}

// NewApplicationRepository is the constructor for applicationRepository.
func NewApplicationRepository(db *gorm.DB) repository.ApplicationRepository {
	return &applicationRepository{db: db}
}

// CreateApplication persists a new application row. The plant, subscriber,
// operator and installer rows must already exist.
func (repo *applicationRepository) CreateApplication(ctx context.Context, application *entity.Application) error {
	applicationM := fromApplicationDomain(application)

	if err := repo.db.WithContext(ctx).Create(applicationM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrInvalidReference.WrapMessage("application references a missing row")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrApplicationCreationFailed.WrapMessage("missing required application information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create application")
	}

	application.ID = applicationM.ID
	application.SubmissionDate = applicationM.SubmissionDate
	application.CreatedAt = applicationM.CreatedAt
	application.UpdatedAt = applicationM.UpdatedAt

	return nil
}

// FindApplicationByID retrieves an application by its unique ID.
func (repo *applicationRepository) FindApplicationByID(ctx context.Context, id int64) (*entity.Application, error) {
	var applicationM model.ApplicationModel
	if err := repo.db.WithContext(ctx).First(&applicationM, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrApplicationNotFound
		}

		return nil, errors.Wrap(err, "failed to find application by ID")
	}

	return toApplicationDomain(&applicationM), nil
}

// ListRows returns the flat dashboard rows, left-joined so that applications
// with missing relations still appear. COALESCE keeps NULL join columns
// scannable as empty strings; display fallbacks live in the usecase layer.
func (repo *applicationRepository) ListRows(ctx context.Context) ([]*repository.ApplicationListRow, error) {
	rows := make([]*repository.ApplicationListRow, 0)

	err := repo.db.WithContext(ctx).
		Table("applications").
		Select(`applications.id,
			applications.system_type,
			applications.status,
			applications.submission_date,
			COALESCE(applications.place, '') AS place,
			COALESCE(subscribers.first_name, '') AS subscriber_first_name,
			COALESCE(subscribers.last_name, '') AS subscriber_last_name,
			COALESCE(installers.name, '') AS installer_name,
			COALESCE(plant_addresses.city, '') AS plant_city`).
		Joins("LEFT JOIN persons subscribers ON subscribers.id = applications.subscriber_id").
		Joins("LEFT JOIN companies installers ON installers.id = applications.installer_id").
		Joins("LEFT JOIN plants ON plants.id = applications.plant_id").
		Joins("LEFT JOIN addresses plant_addresses ON plant_addresses.id = plants.address_id").
		Order("applications.submission_date ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list application rows")
	}

	return rows, nil
}

// UpdateStatus sets the status column directly; there is no transition guard.
func (repo *applicationRepository) UpdateStatus(ctx context.Context, id int64, status entity.Status) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ApplicationModel{}).
		Where("id = ?", id).
		Update("status", string(status))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update application status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrApplicationNotFound
	}

	return nil
}

// DeleteApplication removes only the application row. A missing id is a
// no-op delete and reports success, matching the store's behavior.
func (repo *applicationRepository) DeleteApplication(ctx context.Context, id int64) error {
	if err := repo.db.WithContext(ctx).Delete(&model.ApplicationModel{}, id).Error; err != nil {
		return errors.Wrap(err, "failed to delete application")
	}

	return nil
}

// --- Mapper Functions ---

// toApplicationDomain converts a GORM ApplicationModel to a domain Application entity.
func toApplicationDomain(data *model.ApplicationModel) *entity.Application {
	if data == nil {
		return nil
	}

	return &entity.Application{
		ID:             data.ID,
		SystemType:     entity.SystemType(data.SystemType),
		PlantID:        data.PlantID,
		SubscriberID:   data.SubscriberID,
		OperatorID:     data.OperatorID,
		InstallerID:    data.InstallerID,
		Status:         entity.Status(data.Status),
		SubmissionDate: data.SubmissionDate,
		Place:          data.Place,
		SignatureDate:  data.SignatureDate,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

// fromApplicationDomain converts a domain Application entity to a GORM ApplicationModel.
func fromApplicationDomain(data *entity.Application) *model.ApplicationModel {
	if data == nil {
		return nil
	}

	return &model.ApplicationModel{
		ID:             data.ID,
		SystemType:     string(data.SystemType),
		PlantID:        data.PlantID,
		SubscriberID:   data.SubscriberID,
		OperatorID:     data.OperatorID,
		InstallerID:    data.InstallerID,
		Status:         string(data.Status),
		SubmissionDate: data.SubmissionDate,
		Place:          data.Place,
		SignatureDate:  data.SignatureDate,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}
