package entity

import "time"

// SystemType classifies an application as new construction, extension or
// dismantling of an electrical plant.
type SystemType string

// Supported system types.
const (
	SystemTypeNewConstruction SystemType = "new_construction"
	SystemTypeExtension       SystemType = "extension"
	SystemTypeDismantling     SystemType = "dismantling"
)

// Valid reports whether t is one of the supported system types.
func (t SystemType) Valid() bool {
	switch t {
	case SystemTypeNewConstruction, SystemTypeExtension, SystemTypeDismantling:
		return true
	default:
		return false
	}
}

// Status is the processing state of an application. There is no transition
// guard: any valid value is directly settable.
type Status string

// Application statuses. New applications always start as StatusPending.
const (
	StatusDraft       Status = "draft"
	StatusPending     Status = "pending"
	StatusUnderReview Status = "under_review"
	StatusApproved    Status = "approved"
	StatusRejected    Status = "rejected"
	StatusCompleted   Status = "completed"
)

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusDraft, StatusPending, StatusUnderReview, StatusApproved, StatusRejected, StatusCompleted:
		return true
	default:
		return false
	}
}

// Application is an intake record for an energy-system installation. It
// always references exactly one plant, one subscriber person and one
// installer company. The operator reference is optional; when the operator
// is the same party as the subscriber it carries the subscriber's id.
type Application struct {
	ID             int64      // Database-generated identifier.
	SystemType     SystemType // Classification of the requested work.
	PlantID        int64      // Required reference to the Plant.
	SubscriberID   int64      // Required reference to the subscriber Person.
	OperatorID     *int64     // Optional reference to the operator Person.
	InstallerID    *int64     // Reference to the installer Company.
	Status         Status     // Processing state, starts as pending.
	SubmissionDate time.Time  // Defaults to creation time in the storage layer.
	Place          string     // Optional free-text place of signature.
	SignatureDate  *time.Time // Optional signature date.
	CreatedAt      time.Time  // Timestamp of when this application was created.
	UpdatedAt      time.Time  // Timestamp of the last modification.
}
