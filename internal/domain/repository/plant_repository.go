package repository

import (
	"context"

	"vde/internal/domain/entity"
	"vde/internal/errors"
)

// ErrPlantNotFound is returned when a plant is not found.
var ErrPlantNotFound = errors.New("plant not found")

// PlantRepository defines the interface for plant-related database operations.
// The referenced address must already be persisted before a plant is created.
type PlantRepository interface {
	// CreatePlant persists a new plant and writes the generated id back
	// into the entity.
	CreatePlant(ctx context.Context, plant *entity.Plant) error

	// FindPlantByID retrieves a plant by its unique ID.
	FindPlantByID(ctx context.Context, id int64) (*entity.Plant, error)

	// DeletePlant removes a plant by its ID.
	DeletePlant(ctx context.Context, id int64) error
}
