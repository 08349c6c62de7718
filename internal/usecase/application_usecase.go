// Package usecase defines the application's use case interfaces and their
// input/output types.
package usecase

import (
	"context"
	"time"

	"vde/internal/domain/entity"
)

// AddressInput is a required address block of a submission. Country is
// optional and defaults to "Germany".
type AddressInput struct {
	Street      string `json:"street" validate:"required"`
	HouseNumber string `json:"houseNumber" validate:"required"`
	Postcode    string `json:"postcode" validate:"required"`
	City        string `json:"city" validate:"required"`
	Country     string `json:"country"`
}

// OptionalAddressInput is the operator's address block. Its fields only
// become required when the operator differs from the subscriber; that rule
// is enforced as a struct-level validation on SubmitApplicationInput.
type OptionalAddressInput struct {
	Street      string `json:"street"`
	HouseNumber string `json:"houseNumber"`
	Postcode    string `json:"postcode"`
	City        string `json:"city"`
	Country     string `json:"country"`
}

// Complete reports whether all four required address fields are present.
func (a *OptionalAddressInput) Complete() bool {
	return a != nil && a.Street != "" && a.HouseNumber != "" && a.Postcode != "" && a.City != ""
}

// SubscriberInput is the connection/property owner section.
type SubscriberInput struct {
	FirstName string       `json:"firstName" validate:"required"`
	LastName  string       `json:"lastName" validate:"required"`
	Phone     string       `json:"phone"`
	Email     string       `json:"email" validate:"omitempty,email"`
	Address   AddressInput `json:"address"`
}

// OperatorInput is the plant operator section. The whole block is optional
// when operatorSameAsSubscriber is set.
type OperatorInput struct {
	FirstName string                `json:"firstName"`
	LastName  string                `json:"lastName"`
	Phone     string                `json:"phone"`
	Email     string                `json:"email" validate:"omitempty,email"`
	Address   *OptionalAddressInput `json:"address"`
}

// InstallerInput is the installing company section.
type InstallerInput struct {
	Name               string       `json:"name" validate:"required"`
	RegistrationNumber string       `json:"registrationNumber"`
	Phone              string       `json:"phone"`
	Email              string       `json:"email" validate:"omitempty,email"`
	Address            AddressInput `json:"address"`
}

// ContactPersonInput is the optional on-site contact of the plant. A contact
// person row is only created when both names are present; it shares the
// plant's address.
type ContactPersonInput struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
	Email     string `json:"email" validate:"omitempty,email"`
}

// PlantInput is the plant information section. Commissioning dates are
// date-only strings (YYYY-MM-DD).
type PlantInput struct {
	Address                  AddressInput        `json:"address"`
	ContactPerson            *ContactPersonInput `json:"contactPerson"`
	PlannedCommissioningDate string              `json:"plannedCommissioningDate" validate:"omitempty,datetime=2006-01-02"`
	ActualCommissioningDate  string              `json:"actualCommissioningDate" validate:"omitempty,datetime=2006-01-02"`
}

// SubmitApplicationInput is the full intake form payload. Structural rules
// live in the validate tags; the conditional operator requirement is a
// struct-level rule attached to the "operator" field path.
type SubmitApplicationInput struct {
	SystemType               string          `json:"systemType" validate:"required,oneof=new_construction extension dismantling"`
	Place                    string          `json:"place"`
	Plant                    PlantInput      `json:"plant"`
	Subscriber               SubscriberInput `json:"subscriber"`
	OperatorSameAsSubscriber bool            `json:"operatorSameAsSubscriber"`
	Operator                 *OperatorInput  `json:"operator"`
	Installer                InstallerInput  `json:"installer"`
	SignatureDate            string          `json:"signatureDate" validate:"omitempty,datetime=2006-01-02"`
}

// ApplicationRow is a display-ready listing row with all fallbacks applied.
type ApplicationRow struct {
	ID             int64             `json:"id"`
	SystemType     entity.SystemType `json:"systemType"`
	Status         entity.Status     `json:"status"`
	SubmissionDate time.Time         `json:"submissionDate"`
	Place          string            `json:"place"`
	Subscriber     string            `json:"subscriber"`
	Installer      string            `json:"installer"`
}

// ApplicationSummary holds the dashboard counters, derived from the full
// projected list.
type ApplicationSummary struct {
	Total          int `json:"total"`
	PendingReviews int `json:"pendingReviews"`
	Approved       int `json:"approved"`
	Completed      int `json:"completed"`
}

// ApplicationUsecase defines the interface for the application intake workflow.
type ApplicationUsecase interface {
	// Submit validates nothing structurally (the delivery layer has already
	// done that), normalizes the submission into entity rows and persists
	// them in dependency order inside a single transaction. Returns the
	// created application.
	Submit(ctx context.Context, input *SubmitApplicationInput) (*entity.Application, error)

	// List returns all applications as flat display rows, ordered by
	// submission date ascending.
	List(ctx context.Context) ([]*ApplicationRow, error)

	// Summary returns the dashboard counters.
	Summary(ctx context.Context) (*ApplicationSummary, error)

	// UpdateStatus sets an application's status. Any valid status value is
	// accepted; there is no transition guard.
	UpdateStatus(ctx context.Context, id int64, status string) error

	// Delete removes an application. Without cascade (the default) only the
	// application row is removed; dependent rows stay in place.
	Delete(ctx context.Context, id int64) error
}
