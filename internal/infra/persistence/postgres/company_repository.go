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

// companyRepository implements the domain.CompanyRepository interface using GORM.
type companyRepository struct {
	db *gorm.DB
}

// NewCompanyRepository is the constructor for companyRepository.
func NewCompanyRepository(db *gorm.DB) repository.CompanyRepository {
	return &companyRepository{db: db}
}

// CreateCompany persists a new company row. A registration number already
// taken by another company surfaces as a conflict.
func (repo *companyRepository) CreateCompany(ctx context.Context, company *entity.Company) error {
	companyM := fromCompanyDomain(company)

	if err := repo.db.WithContext(ctx).Create(companyM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrRegistrationNumberConflict.WrapMessage("registration number already exists")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrInvalidReference.WrapMessage("company references a missing address")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrApplicationCreationFailed.WrapMessage("missing required company information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create company")
	}

	company.ID = companyM.ID
	company.CreatedAt = companyM.CreatedAt
	company.UpdatedAt = companyM.UpdatedAt

	return nil
}

// FindCompanyByID retrieves a company by its unique ID.
func (repo *companyRepository) FindCompanyByID(ctx context.Context, id int64) (*entity.Company, error) {
	var companyM model.CompanyModel
	if err := repo.db.WithContext(ctx).First(&companyM, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCompanyNotFound
		}

		return nil, errors.Wrap(err, "failed to find company by ID")
	}

	return toCompanyDomain(&companyM), nil
}

// DeleteCompany removes a company by its ID.
func (repo *companyRepository) DeleteCompany(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).Delete(&model.CompanyModel{}, id)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete company")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCompanyNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toCompanyDomain converts a GORM CompanyModel to a domain Company entity.
func toCompanyDomain(data *model.CompanyModel) *entity.Company {
	if data == nil {
		return nil
	}

	company := &entity.Company{
		ID:        data.ID,
		Name:      data.Name,
		Phone:     data.Phone,
		Email:     data.Email,
		AddressID: data.AddressID,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
	if data.RegistrationNumber != nil {
		company.RegistrationNumber = *data.RegistrationNumber
	}

	return company
}

// fromCompanyDomain converts a domain Company entity to a GORM CompanyModel.
// An empty registration number is stored as NULL so the unique index only
// applies to companies that actually have one.
func fromCompanyDomain(data *entity.Company) *model.CompanyModel {
	if data == nil {
		return nil
	}

	companyM := &model.CompanyModel{
		ID:        data.ID,
		Name:      data.Name,
		Phone:     data.Phone,
		Email:     data.Email,
		AddressID: data.AddressID,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
	if data.RegistrationNumber != "" {
		regNo := data.RegistrationNumber
		companyM.RegistrationNumber = &regNo
	}

	return companyM
}
