package postgres

import (
	"context"
	"testing"
	"time"

	"vde/internal/domain/entity"
	domainerrors "vde/internal/domain/errors"
	"vde/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	dialector := gormpostgres.New(gormpostgres.Config{
		Conn:       db,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return gormDB, mock
}

func TestAddressRepository_CreateAddress(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewAddressRepository(db)

	mock.ExpectQuery(`INSERT INTO "addresses"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))

	address := &entity.Address{
		Street:      "Solarstrasse",
		HouseNumber: "12",
		Postcode:    "80331",
		City:        "Munich",
		Country:     entity.DefaultCountry,
	}

	err := repo.CreateAddress(context.Background(), address)
	require.NoError(t, err)
	assert.Equal(t, int64(7), address.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddressRepository_FindAddressByID_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewAddressRepository(db)

	mock.ExpectQuery(`SELECT .+ FROM "addresses"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.FindAddressByID(context.Background(), 404)
	require.ErrorIs(t, err, repository.ErrAddressNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddressRepository_DeleteAddress_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewAddressRepository(db)

	mock.ExpectExec(`DELETE FROM "addresses"`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteAddress(context.Background(), 404)
	require.ErrorIs(t, err, repository.ErrAddressNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCompanyRepository_CreateCompany_DuplicateRegistrationNumber(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewCompanyRepository(db)

	mock.ExpectQuery(`INSERT INTO "companies"`).
		WillReturnError(errors.New(`pq: duplicate key value violates unique constraint "idx_companies_registration_number"`))

	company := &entity.Company{
		Name:               "Elektro Mueller GmbH",
		RegistrationNumber: "HRB 12345",
	}

	err := repo.CreateCompany(context.Background(), company)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrRegistrationNumberConflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCompanyMapper_EmptyRegistrationNumberStoredAsNull(t *testing.T) {
	companyM := fromCompanyDomain(&entity.Company{Name: "No Registry Ltd"})
	assert.Nil(t, companyM.RegistrationNumber)

	regNo := "HRB 99"
	roundTripped := toCompanyDomain(companyM)
	assert.Empty(t, roundTripped.RegistrationNumber)

	companyM.RegistrationNumber = &regNo
	assert.Equal(t, "HRB 99", toCompanyDomain(companyM).RegistrationNumber)
}

func TestApplicationRepository_UpdateStatus(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewApplicationRepository(db)

	mock.ExpectExec(`UPDATE "applications" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateStatus(context.Background(), 3, entity.StatusApproved)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplicationRepository_UpdateStatus_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewApplicationRepository(db)

	mock.ExpectExec(`UPDATE "applications" SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateStatus(context.Background(), 404, entity.StatusApproved)
	require.ErrorIs(t, err, repository.ErrApplicationNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplicationRepository_DeleteApplication_MissingIDIsNoop(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewApplicationRepository(db)

	mock.ExpectExec(`DELETE FROM "applications"`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteApplication(context.Background(), 404)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplicationRepository_ListRows(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewApplicationRepository(db)

	first := time.Date(2026, 6, 15, 10, 0, 0, 0, time.UTC)
	second := first.Add(24 * time.Hour)

	columns := []string{
		"id", "system_type", "status", "submission_date", "place",
		"subscriber_first_name", "subscriber_last_name", "installer_name", "plant_city",
	}
	// (?s) lets the pattern span the multi-line select clause.
	mock.ExpectQuery(`(?s)SELECT .+ FROM "applications" LEFT JOIN persons subscribers`).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(int64(1), "new_construction", "pending", first, "Munich", "Anna", "Schmidt", "Elektro Mueller GmbH", "Munich").
			AddRow(int64(2), "extension", "approved", second, "", "", "", "", "Augsburg"))

	rows, err := repo.ListRows(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, int64(1), rows[0].ID)
	assert.Equal(t, entity.SystemTypeNewConstruction, rows[0].SystemType)
	assert.Equal(t, "Anna", rows[0].SubscriberFirstName)
	assert.Equal(t, "Elektro Mueller GmbH", rows[0].InstallerName)

	// NULLs arrive as empty strings thanks to COALESCE; the usecase layer
	// applies the display fallbacks.
	assert.Empty(t, rows[1].Place)
	assert.Equal(t, "Augsburg", rows[1].PlantCity)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionManager_CommitsOnSuccess(t *testing.T) {
	db, mock := setupMockDB(t)
	tm := NewTransactionManager(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "addresses"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(1)))
	mock.ExpectCommit()

	err := tm.Execute(context.Background(), func(f repository.RepositoryFactory) error {
		return f.NewAddressRepository().CreateAddress(context.Background(), &entity.Address{
			Street:      "Solarstrasse",
			HouseNumber: "12",
			Postcode:    "80331",
			City:        "Munich",
		})
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionManager_RollsBackOnError(t *testing.T) {
	db, mock := setupMockDB(t)
	tm := NewTransactionManager(db)

	mock.ExpectBegin()
	mock.ExpectRollback()

	sentinel := errors.New("insert failed")
	err := tm.Execute(context.Background(), func(f repository.RepositoryFactory) error {
		return sentinel
	})
	require.ErrorIs(t, err, sentinel)
	assert.NoError(t, mock.ExpectationsWereMet())
}
