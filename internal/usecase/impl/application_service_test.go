package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"vde/config"
	"vde/internal/domain/entity"
	domainerrors "vde/internal/domain/errors"
	"vde/internal/domain/repository"
	mockRepo "vde/internal/mocks/repository"
	"vde/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// applicationServiceFixtures holds all test dependencies for application service tests.
type applicationServiceFixtures struct {
	service         usecase.ApplicationUsecase
	txManager       *mockRepo.MockTransactionManager
	factory         *mockRepo.MockRepositoryFactory
	addressRepo     *mockRepo.MockAddressRepository
	personRepo      *mockRepo.MockPersonRepository
	companyRepo     *mockRepo.MockCompanyRepository
	plantRepo       *mockRepo.MockPlantRepository
	applicationRepo *mockRepo.MockApplicationRepository
}

func createTestApplicationService(t *testing.T, cfg *config.Config) applicationServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	addressRepo := mockRepo.NewMockAddressRepository(t)
	personRepo := mockRepo.NewMockPersonRepository(t)
	companyRepo := mockRepo.NewMockCompanyRepository(t)
	plantRepo := mockRepo.NewMockPlantRepository(t)
	applicationRepo := mockRepo.NewMockApplicationRepository(t)

	// Execute runs the submitted function against the mocked factory, so a
	// failing step propagates exactly like a rolled back transaction.
	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		}).Maybe()

	factory.EXPECT().NewAddressRepository().Return(addressRepo).Maybe()
	factory.EXPECT().NewPersonRepository().Return(personRepo).Maybe()
	factory.EXPECT().NewCompanyRepository().Return(companyRepo).Maybe()
	factory.EXPECT().NewPlantRepository().Return(plantRepo).Maybe()
	factory.EXPECT().NewApplicationRepository().Return(applicationRepo).Maybe()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := NewApplicationService(txManager, applicationRepo, cfg, logger)

	return applicationServiceFixtures{
		service:         service,
		txManager:       txManager,
		factory:         factory,
		addressRepo:     addressRepo,
		personRepo:      personRepo,
		companyRepo:     companyRepo,
		plantRepo:       plantRepo,
		applicationRepo: applicationRepo,
	}
}

func defaultTestConfig() *config.Config {
	return &config.Config{Application: &config.ApplicationConfig{}}
}

// expectIDAssignment wires all create expectations with sequential id
// generation, mimicking autoincrement columns, and records every created
// entity for later assertions.
type createdRows struct {
	addresses    []*entity.Address
	persons      []*entity.Person
	companies    []*entity.Company
	plants       []*entity.Plant
	applications []*entity.Application
}

func expectIDAssignment(fx applicationServiceFixtures) *createdRows {
	rows := &createdRows{}
	nextID := int64(0)
	nextVal := func() int64 {
		nextID++
		return nextID
	}

	fx.addressRepo.EXPECT().
		CreateAddress(mock.Anything, mock.AnythingOfType("*entity.Address")).
		RunAndReturn(func(_ context.Context, address *entity.Address) error {
			address.ID = nextVal()
			rows.addresses = append(rows.addresses, address)
			return nil
		}).Maybe()

	fx.personRepo.EXPECT().
		CreatePerson(mock.Anything, mock.AnythingOfType("*entity.Person")).
		RunAndReturn(func(_ context.Context, person *entity.Person) error {
			person.ID = nextVal()
			rows.persons = append(rows.persons, person)
			return nil
		}).Maybe()

	fx.companyRepo.EXPECT().
		CreateCompany(mock.Anything, mock.AnythingOfType("*entity.Company")).
		RunAndReturn(func(_ context.Context, company *entity.Company) error {
			company.ID = nextVal()
			rows.companies = append(rows.companies, company)
			return nil
		}).Maybe()

	fx.plantRepo.EXPECT().
		CreatePlant(mock.Anything, mock.AnythingOfType("*entity.Plant")).
		RunAndReturn(func(_ context.Context, plant *entity.Plant) error {
			plant.ID = nextVal()
			rows.plants = append(rows.plants, plant)
			return nil
		}).Maybe()

	fx.applicationRepo.EXPECT().
		CreateApplication(mock.Anything, mock.AnythingOfType("*entity.Application")).
		RunAndReturn(func(_ context.Context, application *entity.Application) error {
			application.ID = nextVal()
			application.SubmissionDate = time.Now()
			rows.applications = append(rows.applications, application)
			return nil
		}).Maybe()

	return rows
}

func validSubmission() *usecase.SubmitApplicationInput {
	return &usecase.SubmitApplicationInput{
		SystemType: "new_construction",
		Place:      "Munich",
		Plant: usecase.PlantInput{
			Address: usecase.AddressInput{
				Street:      "Solarstrasse",
				HouseNumber: "12",
				Postcode:    "80331",
				City:        "Munich",
			},
			PlannedCommissioningDate: "2026-07-01",
		},
		Subscriber: usecase.SubscriberInput{
			FirstName: "Anna",
			LastName:  "Schmidt",
			Phone:     "089123456",
			Email:     "anna.schmidt@example.com",
			Address: usecase.AddressInput{
				Street:      "Hauptstrasse",
				HouseNumber: "5",
				Postcode:    "80333",
				City:        "Munich",
			},
		},
		OperatorSameAsSubscriber: true,
		Installer: usecase.InstallerInput{
			Name:               "Elektro Mueller GmbH",
			RegistrationNumber: "HRB 12345",
			Address: usecase.AddressInput{
				Street:      "Gewerbering",
				HouseNumber: "3",
				Postcode:    "80335",
				City:        "Munich",
			},
		},
		SignatureDate: "2026-06-15",
	}
}

func TestApplicationService_Submit_OperatorSameAsSubscriber(t *testing.T) {
	fx := createTestApplicationService(t, defaultTestConfig())
	rows := expectIDAssignment(fx)

	ctx := context.Background()
	app, err := fx.service.Submit(ctx, validSubmission())
	require.NoError(t, err)
	require.NotNil(t, app)

	// Three addresses (plant, subscriber, installer), one person, one company.
	assert.Len(t, rows.addresses, 3)
	assert.Len(t, rows.persons, 1)
	assert.Len(t, rows.companies, 1)
	assert.Len(t, rows.plants, 1)
	assert.Len(t, rows.applications, 1)

	subscriber := rows.persons[0]
	assert.Equal(t, "Anna", subscriber.FirstName)
	assert.Equal(t, rows.addresses[1].ID, subscriber.AddressID)

	// The operator reference aliases the subscriber's id.
	require.NotNil(t, app.OperatorID)
	assert.Equal(t, subscriber.ID, *app.OperatorID)
	assert.Equal(t, subscriber.ID, app.SubscriberID)

	assert.Equal(t, entity.StatusPending, app.Status)
	assert.Equal(t, entity.SystemTypeNewConstruction, app.SystemType)
	assert.Equal(t, rows.plants[0].ID, app.PlantID)
	require.NotNil(t, app.InstallerID)
	assert.Equal(t, rows.companies[0].ID, *app.InstallerID)

	// Country defaults on every address.
	for _, address := range rows.addresses {
		assert.Equal(t, entity.DefaultCountry, address.Country)
	}

	require.NotNil(t, app.SignatureDate)
	assert.Equal(t, "2026-06-15", app.SignatureDate.Format("2006-01-02"))
}

func TestApplicationService_Submit_DistinctOperator(t *testing.T) {
	fx := createTestApplicationService(t, defaultTestConfig())
	rows := expectIDAssignment(fx)

	input := validSubmission()
	input.OperatorSameAsSubscriber = false
	input.Operator = &usecase.OperatorInput{
		FirstName: "Max",
		LastName:  "Weber",
		Address: &usecase.OptionalAddressInput{
			Street:      "Betreiberweg",
			HouseNumber: "8",
			Postcode:    "80337",
			City:        "Munich",
			Country:     "Austria",
		},
	}

	app, err := fx.service.Submit(context.Background(), input)
	require.NoError(t, err)

	// One extra address and person pair for the operator.
	assert.Len(t, rows.addresses, 4)
	require.Len(t, rows.persons, 2)

	operator := rows.persons[1]
	assert.Equal(t, "Max", operator.FirstName)
	assert.Equal(t, "Austria", rows.addresses[len(rows.addresses)-2].Country)

	require.NotNil(t, app.OperatorID)
	assert.Equal(t, operator.ID, *app.OperatorID)
	assert.NotEqual(t, app.SubscriberID, *app.OperatorID)
}

func TestApplicationService_Submit_IncompleteOperatorFallsBack(t *testing.T) {
	fx := createTestApplicationService(t, defaultTestConfig())
	rows := expectIDAssignment(fx)

	input := validSubmission()
	input.OperatorSameAsSubscriber = false
	input.Operator = &usecase.OperatorInput{
		FirstName: "Max",
		LastName:  "Weber",
		Address: &usecase.OptionalAddressInput{
			Street: "Betreiberweg",
			// House number, postcode and city missing.
		},
	}

	app, err := fx.service.Submit(context.Background(), input)
	require.NoError(t, err)

	// No operator rows were created; the reference falls back to the subscriber.
	assert.Len(t, rows.addresses, 3)
	require.Len(t, rows.persons, 1)
	require.NotNil(t, app.OperatorID)
	assert.Equal(t, rows.persons[0].ID, *app.OperatorID)
}

func TestApplicationService_Submit_ContactPersonSharesPlantAddress(t *testing.T) {
	fx := createTestApplicationService(t, defaultTestConfig())
	rows := expectIDAssignment(fx)

	input := validSubmission()
	input.Plant.ContactPerson = &usecase.ContactPersonInput{
		FirstName: "Julia",
		LastName:  "Braun",
		Phone:     "089987654",
	}

	app, err := fx.service.Submit(context.Background(), input)
	require.NoError(t, err)

	// No separate address for the contact person.
	assert.Len(t, rows.addresses, 3)
	require.Len(t, rows.persons, 2)

	contact := rows.persons[1]
	assert.Equal(t, "Julia", contact.FirstName)
	assert.Equal(t, rows.addresses[0].ID, contact.AddressID)

	plant := rows.plants[0]
	require.NotNil(t, plant.ContactPersonID)
	assert.Equal(t, contact.ID, *plant.ContactPersonID)
	assert.Equal(t, plant.ID, app.PlantID)
}

func TestApplicationService_Submit_ContactPersonRequiresBothNames(t *testing.T) {
	fx := createTestApplicationService(t, defaultTestConfig())
	rows := expectIDAssignment(fx)

	input := validSubmission()
	input.Plant.ContactPerson = &usecase.ContactPersonInput{
		FirstName: "Julia",
	}

	_, err := fx.service.Submit(context.Background(), input)
	require.NoError(t, err)

	// Only the subscriber person row exists.
	require.Len(t, rows.persons, 1)
	assert.Nil(t, rows.plants[0].ContactPersonID)
}

func TestApplicationService_Submit_InvalidDate(t *testing.T) {
	fx := createTestApplicationService(t, defaultTestConfig())

	input := validSubmission()
	input.Plant.PlannedCommissioningDate = "07/01/2026"

	_, err := fx.service.Submit(context.Background(), input)
	require.Error(t, err)

	var validationErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Fields(), "plant.plannedCommissioningDate")

	// Nothing reached the transaction manager.
	fx.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestApplicationService_Submit_RollsBackOnFailure(t *testing.T) {
	fx := createTestApplicationService(t, defaultTestConfig())

	fx.addressRepo.EXPECT().
		CreateAddress(mock.Anything, mock.AnythingOfType("*entity.Address")).
		RunAndReturn(func(_ context.Context, address *entity.Address) error {
			address.ID = 1
			return nil
		}).Times(2)

	fx.personRepo.EXPECT().
		CreatePerson(mock.Anything, mock.AnythingOfType("*entity.Person")).
		Return(errors.New("connection reset")).Once()

	_, err := fx.service.Submit(context.Background(), validSubmission())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to submit application")

	// The failing step aborts the chain before the installer is touched.
	fx.companyRepo.AssertNotCalled(t, "CreateCompany", mock.Anything, mock.Anything)
	fx.applicationRepo.AssertNotCalled(t, "CreateApplication", mock.Anything, mock.Anything)
}

func TestApplicationService_Submit_DuplicateRegistrationNumber(t *testing.T) {
	fx := createTestApplicationService(t, defaultTestConfig())

	nextID := int64(0)
	fx.addressRepo.EXPECT().
		CreateAddress(mock.Anything, mock.AnythingOfType("*entity.Address")).
		RunAndReturn(func(_ context.Context, address *entity.Address) error {
			nextID++
			address.ID = nextID
			return nil
		}).Times(3)

	fx.personRepo.EXPECT().
		CreatePerson(mock.Anything, mock.AnythingOfType("*entity.Person")).
		RunAndReturn(func(_ context.Context, person *entity.Person) error {
			nextID++
			person.ID = nextID
			return nil
		}).Once()

	fx.companyRepo.EXPECT().
		CreateCompany(mock.Anything, mock.AnythingOfType("*entity.Company")).
		Return(domainerrors.ErrRegistrationNumberConflict).Once()

	_, err := fx.service.Submit(context.Background(), validSubmission())
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrRegistrationNumberConflict.ErrorCode(), appErr.ErrorCode())

	// The conflict aborts the chain: no plant or application insert happens,
	// and the transaction wrapper discards the earlier inserts.
	fx.plantRepo.AssertNotCalled(t, "CreatePlant", mock.Anything, mock.Anything)
	fx.applicationRepo.AssertNotCalled(t, "CreateApplication", mock.Anything, mock.Anything)
}

func TestApplicationService_List_AppliesFallbacks(t *testing.T) {
	fx := createTestApplicationService(t, defaultTestConfig())

	submitted := time.Date(2026, 6, 15, 10, 0, 0, 0, time.UTC)
	fx.applicationRepo.EXPECT().
		ListRows(mock.Anything).
		Return([]*repository.ApplicationListRow{
			{
				ID:                  1,
				SystemType:          entity.SystemTypeNewConstruction,
				Status:              entity.StatusPending,
				SubmissionDate:      submitted,
				Place:               "Munich",
				SubscriberFirstName: "Anna",
				SubscriberLastName:  "Schmidt",
				InstallerName:       "Elektro Mueller GmbH",
				PlantCity:           "Munich",
			},
			{
				ID:                  2,
				SystemType:          entity.SystemTypeExtension,
				Status:              entity.StatusApproved,
				SubmissionDate:      submitted.Add(24 * time.Hour),
				SubscriberFirstName: "Anna",
				PlantCity:           "Augsburg",
			},
			{
				ID:             3,
				SystemType:     entity.SystemTypeDismantling,
				Status:         entity.StatusCompleted,
				SubmissionDate: submitted.Add(48 * time.Hour),
			},
		}, nil)

	rows, err := fx.service.List(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "Munich", rows[0].Place)
	assert.Equal(t, "Anna Schmidt", rows[0].Subscriber)
	assert.Equal(t, "Elektro Mueller GmbH", rows[0].Installer)

	// Empty place falls back to the plant's city, a lone first name still
	// renders without trailing space.
	assert.Equal(t, "Augsburg", rows[1].Place)
	assert.Equal(t, "Anna", rows[1].Subscriber)
	assert.Equal(t, "N/A", rows[1].Installer)

	// Nothing joined at all.
	assert.Equal(t, "N/A", rows[2].Place)
	assert.Equal(t, "N/A", rows[2].Subscriber)
	assert.Equal(t, "N/A", rows[2].Installer)
}

func TestApplicationService_Summary_Counters(t *testing.T) {
	fx := createTestApplicationService(t, defaultTestConfig())

	fx.applicationRepo.EXPECT().
		ListRows(mock.Anything).
		Return([]*repository.ApplicationListRow{
			{ID: 1, Status: entity.StatusPending},
			{ID: 2, Status: entity.StatusUnderReview},
			{ID: 3, Status: entity.StatusApproved},
			{ID: 4, Status: entity.StatusApproved},
			{ID: 5, Status: entity.StatusCompleted},
			{ID: 6, Status: entity.StatusRejected},
		}, nil)

	summary, err := fx.service.Summary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 6, summary.Total)
	assert.Equal(t, 2, summary.PendingReviews)
	assert.Equal(t, 2, summary.Approved)
	assert.Equal(t, 1, summary.Completed)
}

func TestApplicationService_UpdateStatus(t *testing.T) {
	fx := createTestApplicationService(t, defaultTestConfig())

	fx.applicationRepo.EXPECT().
		UpdateStatus(mock.Anything, int64(7), entity.StatusApproved).
		Return(nil)

	err := fx.service.UpdateStatus(context.Background(), 7, "approved")
	require.NoError(t, err)
}

func TestApplicationService_UpdateStatus_UnknownValue(t *testing.T) {
	fx := createTestApplicationService(t, defaultTestConfig())

	err := fx.service.UpdateStatus(context.Background(), 7, "archived")
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrInvalidStatus.ErrorCode(), appErr.ErrorCode())

	fx.applicationRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestApplicationService_UpdateStatus_NotFound(t *testing.T) {
	fx := createTestApplicationService(t, defaultTestConfig())

	fx.applicationRepo.EXPECT().
		UpdateStatus(mock.Anything, int64(404), entity.StatusApproved).
		Return(repository.ErrApplicationNotFound)

	err := fx.service.UpdateStatus(context.Background(), 404, "approved")
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrApplicationNotFound.ErrorCode(), appErr.ErrorCode())
}

func TestApplicationService_Delete_Plain(t *testing.T) {
	fx := createTestApplicationService(t, defaultTestConfig())

	fx.applicationRepo.EXPECT().
		DeleteApplication(mock.Anything, int64(3)).
		Return(nil)

	err := fx.service.Delete(context.Background(), 3)
	require.NoError(t, err)

	// Dependent rows are left alone.
	fx.plantRepo.AssertNotCalled(t, "DeletePlant", mock.Anything, mock.Anything)
	fx.personRepo.AssertNotCalled(t, "DeletePerson", mock.Anything, mock.Anything)
}

func TestApplicationService_Delete_Cascade(t *testing.T) {
	cfg := &config.Config{Application: &config.ApplicationConfig{CascadeDelete: true}}
	fx := createTestApplicationService(t, cfg)

	ctx := context.Background()
	operatorID := int64(2) // aliases the subscriber
	installerID := int64(5)
	contactID := int64(7)
	installerAddressID := int64(4)

	fx.applicationRepo.EXPECT().
		FindApplicationByID(mock.Anything, int64(10)).
		Return(&entity.Application{
			ID:           10,
			PlantID:      9,
			SubscriberID: 2,
			OperatorID:   &operatorID,
			InstallerID:  &installerID,
		}, nil)
	fx.applicationRepo.EXPECT().DeleteApplication(mock.Anything, int64(10)).Return(nil)

	fx.plantRepo.EXPECT().
		FindPlantByID(mock.Anything, int64(9)).
		Return(&entity.Plant{ID: 9, AddressID: 1, ContactPersonID: &contactID}, nil)
	fx.plantRepo.EXPECT().DeletePlant(mock.Anything, int64(9)).Return(nil)

	// Contact person shares the plant address; only the person row goes.
	fx.personRepo.EXPECT().DeletePerson(mock.Anything, int64(7)).Return(nil)

	fx.personRepo.EXPECT().
		FindPersonByID(mock.Anything, int64(2)).
		Return(&entity.Person{ID: 2, AddressID: 3}, nil)
	fx.personRepo.EXPECT().DeletePerson(mock.Anything, int64(2)).Return(nil)

	fx.companyRepo.EXPECT().
		FindCompanyByID(mock.Anything, int64(5)).
		Return(&entity.Company{ID: 5, AddressID: &installerAddressID}, nil)
	fx.companyRepo.EXPECT().DeleteCompany(mock.Anything, int64(5)).Return(nil)

	fx.addressRepo.EXPECT().DeleteAddress(mock.Anything, int64(1)).Return(nil)
	fx.addressRepo.EXPECT().DeleteAddress(mock.Anything, int64(3)).Return(nil)
	fx.addressRepo.EXPECT().DeleteAddress(mock.Anything, int64(4)).Return(nil)

	err := fx.service.Delete(ctx, 10)
	require.NoError(t, err)

	// The aliased operator row is the subscriber row; it is not looked up or
	// deleted a second time.
	fx.personRepo.AssertNumberOfCalls(t, "DeletePerson", 2)
}

func TestApplicationService_Delete_Cascade_UnknownID(t *testing.T) {
	cfg := &config.Config{Application: &config.ApplicationConfig{CascadeDelete: true}}
	fx := createTestApplicationService(t, cfg)

	fx.applicationRepo.EXPECT().
		FindApplicationByID(mock.Anything, int64(404)).
		Return(nil, repository.ErrApplicationNotFound)

	err := fx.service.Delete(context.Background(), 404)
	require.NoError(t, err)

	fx.applicationRepo.AssertNotCalled(t, "DeleteApplication", mock.Anything, mock.Anything)
}
