package repository

import (
	"context"
	"time"

	"vde/internal/domain/entity"
	"vde/internal/errors"
)

// ErrApplicationNotFound is returned when an application is not found.
var ErrApplicationNotFound = errors.New("application not found")

// ApplicationListRow is the flat read model behind the dashboard table.
// Join columns of absent relations arrive as empty strings; display
// fallbacks are applied by the usecase layer.
type ApplicationListRow struct {
	ID                  int64
	SystemType          entity.SystemType
	Status              entity.Status
	SubmissionDate      time.Time
	Place               string
	SubscriberFirstName string
	SubscriberLastName  string
	InstallerName       string
	PlantCity           string
}

// ApplicationRepository defines the interface for application-related database operations.
type ApplicationRepository interface {
	// CreateApplication persists a new application and writes the generated
	// id, submission date and timestamps back into the entity.
	CreateApplication(ctx context.Context, application *entity.Application) error

	// FindApplicationByID retrieves an application by its unique ID.
	FindApplicationByID(ctx context.Context, id int64) (*entity.Application, error)

	// ListRows returns one flat row per application, left-joined with the
	// subscriber person, the installer company and the plant's address,
	// ordered by submission date ascending.
	ListRows(ctx context.Context) ([]*ApplicationListRow, error)

	// UpdateStatus sets the status of an application. Any valid status value
	// is settable; there is no transition guard.
	UpdateStatus(ctx context.Context, id int64, status entity.Status) error

	// DeleteApplication removes only the application row. Deleting an
	// unknown id is a no-op, not an error.
	DeleteApplication(ctx context.Context, id int64) error
}
