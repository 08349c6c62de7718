// Package impl contains the use case implementations.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"vde/config"
	"vde/internal/domain/entity"
	domainerrors "vde/internal/domain/errors"
	"vde/internal/domain/repository"
	"vde/internal/errors"
	"vde/internal/usecase"
)

// fallbackNA substitutes missing display values in listing rows.
const fallbackNA = "N/A"

const dateLayout = "2006-01-02"

type applicationService struct {
	txManager       repository.TransactionManager
	applicationRepo repository.ApplicationRepository
	cfg             *config.Config
	logger          *slog.Logger
}

// NewApplicationService creates a new application intake service instance
func NewApplicationService(
	txManager repository.TransactionManager,
	applicationRepo repository.ApplicationRepository,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.ApplicationUsecase {
	if cfg.Application == nil {
		cfg.Application = &config.ApplicationConfig{}
	}

	return &applicationService{
		txManager:       txManager,
		applicationRepo: applicationRepo,
		cfg:             cfg,
		logger:          logger,
	}
}

// submissionPlan is the output of the normalization step: every row to
// create, before anything has touched storage. Cross-references are wired
// during the insert sequence once the generated ids are known.
type submissionPlan struct {
	plantAddress      *entity.Address
	subscriberAddress *entity.Address
	subscriber        *entity.Person
	operatorAddress   *entity.Address // nil when the operator aliases the subscriber
	operator          *entity.Person  // nil when the operator aliases the subscriber
	installerAddress  *entity.Address
	installer         *entity.Company
	contactPerson     *entity.Person // nil unless both contact names are present
	plant             *entity.Plant
	application       *entity.Application
}

// Submit normalizes a validated submission into entity rows and persists
// them in foreign-key order inside a single transaction. Any failure rolls
// back the whole chain.
func (s *applicationService) Submit(ctx context.Context, input *usecase.SubmitApplicationInput) (*entity.Application, error) {
	plan, err := s.normalize(input)
	if err != nil {
		return nil, err
	}

	err = s.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		return s.persistPlan(ctx, f, plan)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to submit application: %w", err)
	}

	s.logger.Info("application created",
		slog.Int64("applicationID", plan.application.ID),
		slog.String("systemType", string(plan.application.SystemType)),
	)

	return plan.application, nil
}

// normalize decomposes the submission into the exact set of rows to create
// and decides id reuse, without touching storage.
func (s *applicationService) normalize(input *usecase.SubmitApplicationInput) (*submissionPlan, error) {
	plannedDate, err := parseDate(input.Plant.PlannedCommissioningDate, "plant.plannedCommissioningDate")
	if err != nil {
		return nil, err
	}
	actualDate, err := parseDate(input.Plant.ActualCommissioningDate, "plant.actualCommissioningDate")
	if err != nil {
		return nil, err
	}
	signatureDate, err := parseDate(input.SignatureDate, "signatureDate")
	if err != nil {
		return nil, err
	}

	plan := &submissionPlan{
		plantAddress:      addressFromInput(input.Plant.Address),
		subscriberAddress: addressFromInput(input.Subscriber.Address),
		subscriber: &entity.Person{
			FirstName: input.Subscriber.FirstName,
			LastName:  input.Subscriber.LastName,
			Phone:     input.Subscriber.Phone,
			Email:     input.Subscriber.Email,
		},
		installerAddress: addressFromInput(input.Installer.Address),
		installer: &entity.Company{
			Name:               input.Installer.Name,
			RegistrationNumber: input.Installer.RegistrationNumber,
			Phone:              input.Installer.Phone,
			Email:              input.Installer.Email,
		},
		plant: &entity.Plant{
			PlannedCommissioningDate: plannedDate,
			ActualCommissioningDate:  actualDate,
		},
		application: &entity.Application{
			SystemType:    entity.SystemType(input.SystemType),
			Status:        entity.StatusPending,
			Place:         input.Place,
			SignatureDate: signatureDate,
		},
	}

	// Operator rows are only planned when the operator is a distinct party
	// with a complete address; otherwise the operator id falls back to the
	// subscriber id.
	if !input.OperatorSameAsSubscriber && input.Operator != nil && input.Operator.Address.Complete() {
		plan.operatorAddress = &entity.Address{
			Street:      input.Operator.Address.Street,
			HouseNumber: input.Operator.Address.HouseNumber,
			Postcode:    input.Operator.Address.Postcode,
			City:        input.Operator.Address.City,
			Country:     countryOrDefault(input.Operator.Address.Country),
		}
		plan.operator = &entity.Person{
			FirstName: input.Operator.FirstName,
			LastName:  input.Operator.LastName,
			Phone:     input.Operator.Phone,
			Email:     input.Operator.Email,
		}
	}

	// A plant contact person is only created when both names are present;
	// it shares the plant's address row.
	if contact := input.Plant.ContactPerson; contact != nil && contact.FirstName != "" && contact.LastName != "" {
		plan.contactPerson = &entity.Person{
			FirstName: contact.FirstName,
			LastName:  contact.LastName,
			Phone:     contact.Phone,
			Email:     contact.Email,
		}
	}

	return plan, nil
}

// persistPlan executes the inserts in strict foreign-key order, threading
// each generated id into the dependent rows.
func (s *applicationService) persistPlan(ctx context.Context, f repository.RepositoryFactory, plan *submissionPlan) error {
	addressRepo := f.NewAddressRepository()
	personRepo := f.NewPersonRepository()
	companyRepo := f.NewCompanyRepository()
	plantRepo := f.NewPlantRepository()
	applicationRepo := f.NewApplicationRepository()

	if err := addressRepo.CreateAddress(ctx, plan.plantAddress); err != nil {
		return err
	}

	if err := addressRepo.CreateAddress(ctx, plan.subscriberAddress); err != nil {
		return err
	}
	plan.subscriber.AddressID = plan.subscriberAddress.ID
	if err := personRepo.CreatePerson(ctx, plan.subscriber); err != nil {
		return err
	}

	operatorID := plan.subscriber.ID
	if plan.operator != nil {
		if err := addressRepo.CreateAddress(ctx, plan.operatorAddress); err != nil {
			return err
		}
		plan.operator.AddressID = plan.operatorAddress.ID
		if err := personRepo.CreatePerson(ctx, plan.operator); err != nil {
			return err
		}
		operatorID = plan.operator.ID
	}

	if err := addressRepo.CreateAddress(ctx, plan.installerAddress); err != nil {
		return err
	}
	installerAddressID := plan.installerAddress.ID
	plan.installer.AddressID = &installerAddressID
	if err := companyRepo.CreateCompany(ctx, plan.installer); err != nil {
		return err
	}

	if plan.contactPerson != nil {
		plan.contactPerson.AddressID = plan.plantAddress.ID
		if err := personRepo.CreatePerson(ctx, plan.contactPerson); err != nil {
			return err
		}
		contactPersonID := plan.contactPerson.ID
		plan.plant.ContactPersonID = &contactPersonID
	}

	plan.plant.AddressID = plan.plantAddress.ID
	if err := plantRepo.CreatePlant(ctx, plan.plant); err != nil {
		return err
	}

	installerID := plan.installer.ID
	plan.application.PlantID = plan.plant.ID
	plan.application.SubscriberID = plan.subscriber.ID
	plan.application.OperatorID = &operatorID
	plan.application.InstallerID = &installerID

	return applicationRepo.CreateApplication(ctx, plan.application)
}

// List returns all applications as display rows with the fallback rules
// applied: place falls back to the plant's city, names and installer fall
// back to "N/A".
func (s *applicationService) List(ctx context.Context) ([]*usecase.ApplicationRow, error) {
	rows, err := s.applicationRepo.ListRows(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}

	projected := make([]*usecase.ApplicationRow, 0, len(rows))
	for _, row := range rows {
		projected = append(projected, projectRow(row))
	}

	return projected, nil
}

// Summary derives the dashboard counters from the full projected list.
func (s *applicationService) Summary(ctx context.Context) (*usecase.ApplicationSummary, error) {
	rows, err := s.applicationRepo.ListRows(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize applications: %w", err)
	}

	summary := &usecase.ApplicationSummary{Total: len(rows)}
	for _, row := range rows {
		switch row.Status {
		case entity.StatusPending, entity.StatusUnderReview:
			summary.PendingReviews++
		case entity.StatusApproved:
			summary.Approved++
		case entity.StatusCompleted:
			summary.Completed++
		}
	}

	return summary, nil
}

// UpdateStatus sets the status directly; enum membership is the only check.
func (s *applicationService) UpdateStatus(ctx context.Context, id int64, status string) error {
	newStatus := entity.Status(status)
	if !newStatus.Valid() {
		return domainerrors.ErrInvalidStatus.WithDetails(fmt.Sprintf("unknown status %q", status))
	}

	if err := s.applicationRepo.UpdateStatus(ctx, id, newStatus); err != nil {
		if errors.Is(err, repository.ErrApplicationNotFound) {
			return domainerrors.ErrApplicationNotFound
		}

		return fmt.Errorf("failed to update application status: %w", err)
	}

	return nil
}

// Delete removes an application. Without cascade only the application row
// goes; the person/company/plant/address rows created for it stay in place.
// With cascade the dependent rows are removed in reverse foreign-key order
// within one transaction.
func (s *applicationService) Delete(ctx context.Context, id int64) error {
	if !s.cfg.Application.CascadeDelete {
		if err := s.applicationRepo.DeleteApplication(ctx, id); err != nil {
			return fmt.Errorf("failed to delete application: %w", err)
		}

		return nil
	}

	err := s.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		return s.cascadeDelete(ctx, f, id)
	})
	if err != nil {
		return fmt.Errorf("failed to delete application: %w", err)
	}

	return nil
}

// cascadeDelete removes the application together with the rows created for
// it. Rows shared through id aliasing (operator = subscriber, contact person
// address = plant address) are only removed once.
func (s *applicationService) cascadeDelete(ctx context.Context, f repository.RepositoryFactory, id int64) error {
	applicationRepo := f.NewApplicationRepository()
	plantRepo := f.NewPlantRepository()
	personRepo := f.NewPersonRepository()
	companyRepo := f.NewCompanyRepository()
	addressRepo := f.NewAddressRepository()

	application, err := applicationRepo.FindApplicationByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrApplicationNotFound) {
			// Deleting an unknown id is a no-op, matching the plain delete.
			return nil
		}

		return err
	}

	if err := applicationRepo.DeleteApplication(ctx, id); err != nil {
		return err
	}

	addressIDs := make([]int64, 0, 4)

	plant, err := plantRepo.FindPlantByID(ctx, application.PlantID)
	if err != nil {
		return err
	}
	if err := plantRepo.DeletePlant(ctx, plant.ID); err != nil {
		return err
	}
	addressIDs = append(addressIDs, plant.AddressID)

	// The contact person shares the plant's address, so only the person row
	// is removed here.
	if plant.ContactPersonID != nil {
		if err := personRepo.DeletePerson(ctx, *plant.ContactPersonID); err != nil {
			return err
		}
	}

	subscriber, err := personRepo.FindPersonByID(ctx, application.SubscriberID)
	if err != nil {
		return err
	}
	if err := personRepo.DeletePerson(ctx, subscriber.ID); err != nil {
		return err
	}
	addressIDs = append(addressIDs, subscriber.AddressID)

	if application.OperatorID != nil && *application.OperatorID != application.SubscriberID {
		operator, err := personRepo.FindPersonByID(ctx, *application.OperatorID)
		if err != nil {
			return err
		}
		if err := personRepo.DeletePerson(ctx, operator.ID); err != nil {
			return err
		}
		addressIDs = append(addressIDs, operator.AddressID)
	}

	if application.InstallerID != nil {
		installer, err := companyRepo.FindCompanyByID(ctx, *application.InstallerID)
		if err != nil {
			return err
		}
		if err := companyRepo.DeleteCompany(ctx, installer.ID); err != nil {
			return err
		}
		if installer.AddressID != nil {
			addressIDs = append(addressIDs, *installer.AddressID)
		}
	}

	for _, addressID := range addressIDs {
		if err := addressRepo.DeleteAddress(ctx, addressID); err != nil {
			return err
		}
	}

	return nil
}

// --- helpers ---

func addressFromInput(input usecase.AddressInput) *entity.Address {
	return &entity.Address{
		Street:      input.Street,
		HouseNumber: input.HouseNumber,
		Postcode:    input.Postcode,
		City:        input.City,
		Country:     countryOrDefault(input.Country),
	}
}

func countryOrDefault(country string) string {
	if country == "" {
		return entity.DefaultCountry
	}

	return country
}

func projectRow(row *repository.ApplicationListRow) *usecase.ApplicationRow {
	place := row.Place
	if place == "" {
		place = row.PlantCity
	}
	if place == "" {
		place = fallbackNA
	}

	subscriber := (&entity.Person{FirstName: row.SubscriberFirstName, LastName: row.SubscriberLastName}).FullName()
	if subscriber == "" {
		subscriber = fallbackNA
	}

	installer := row.InstallerName
	if installer == "" {
		installer = fallbackNA
	}

	return &usecase.ApplicationRow{
		ID:             row.ID,
		SystemType:     row.SystemType,
		Status:         row.Status,
		SubmissionDate: row.SubmissionDate,
		Place:          place,
		Subscriber:     subscriber,
		Installer:      installer,
	}
}

func parseDate(value, path string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}

	parsed, err := time.Parse(dateLayout, value)
	if err != nil {
		return nil, domainerrors.NewFieldValidationError(path, "must be a date in YYYY-MM-DD format")
	}

	return &parsed, nil
}
