package repository

import (
	"context"

	"vde/internal/domain/entity"
	"vde/internal/errors"
)

// ErrPersonNotFound is returned when a person is not found.
var ErrPersonNotFound = errors.New("person not found")

// PersonRepository defines the interface for person-related database operations.
// The referenced address must already be persisted before a person is created.
type PersonRepository interface {
	// CreatePerson persists a new person and writes the generated id back
	// into the entity.
	CreatePerson(ctx context.Context, person *entity.Person) error

	// FindPersonByID retrieves a person by its unique ID.
	FindPersonByID(ctx context.Context, id int64) (*entity.Person, error)

	// DeletePerson removes a person by its ID.
	DeletePerson(ctx context.Context, id int64) error
}
