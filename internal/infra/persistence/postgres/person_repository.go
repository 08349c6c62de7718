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

// personRepository implements the domain.PersonRepository interface using GORM.
type personRepository struct {
	db *gorm.DB
}

// NewPersonRepository is the constructor for personRepository.
func NewPersonRepository(db *gorm.DB) repository.PersonRepository {
	return &personRepository{db: db}
}

// CreatePerson persists a new person row. The referenced address must exist.
func (repo *personRepository) CreatePerson(ctx context.Context, person *entity.Person) error {
	personM := fromPersonDomain(person)

	if err := repo.db.WithContext(ctx).Create(personM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrInvalidReference.WrapMessage("person references a missing address")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrApplicationCreationFailed.WrapMessage("missing required person information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create person")
	}

	person.ID = personM.ID
	person.CreatedAt = personM.CreatedAt
	person.UpdatedAt = personM.UpdatedAt

	return nil
}

// FindPersonByID retrieves a person by its unique ID.
func (repo *personRepository) FindPersonByID(ctx context.Context, id int64) (*entity.Person, error) {
	var personM model.PersonModel
	if err := repo.db.WithContext(ctx).First(&personM, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPersonNotFound
		}

		return nil, errors.Wrap(err, "failed to find person by ID")
	}

	return toPersonDomain(&personM), nil
}

// DeletePerson removes a person by its ID.
func (repo *personRepository) DeletePerson(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).Delete(&model.PersonModel{}, id)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete person")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPersonNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toPersonDomain converts a GORM PersonModel to a domain Person entity.
func toPersonDomain(data *model.PersonModel) *entity.Person {
	if data == nil {
		return nil
	}

	return &entity.Person{
		ID:        data.ID,
		FirstName: data.FirstName,
		LastName:  data.LastName,
		Phone:     data.Phone,
		Email:     data.Email,
		AddressID: data.AddressID,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromPersonDomain converts a domain Person entity to a GORM PersonModel.
func fromPersonDomain(data *entity.Person) *model.PersonModel {
	if data == nil {
		return nil
	}

	return &model.PersonModel{
		ID:        data.ID,
		FirstName: data.FirstName,
		LastName:  data.LastName,
		Phone:     data.Phone,
		Email:     data.Email,
		AddressID: data.AddressID,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
