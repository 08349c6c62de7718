package repository

import (
	"context"

	"vde/internal/domain/entity"
	"vde/internal/errors"
)

// ErrCompanyNotFound is returned when a company is not found.
var ErrCompanyNotFound = errors.New("company not found")

// CompanyRepository defines the interface for company-related database operations.
type CompanyRepository interface {
	// CreateCompany persists a new company and writes the generated id back
	// into the entity. The registration number, when set, must be unique
	// across all companies.
	CreateCompany(ctx context.Context, company *entity.Company) error

	// FindCompanyByID retrieves a company by its unique ID.
	FindCompanyByID(ctx context.Context, id int64) (*entity.Company, error)

	// DeleteCompany removes a company by its ID.
	DeleteCompany(ctx context.Context, id int64) error
}
