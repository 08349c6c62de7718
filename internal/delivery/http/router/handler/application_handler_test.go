package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"vde/internal/delivery/http/middleware"
	"vde/internal/delivery/http/validator"
	"vde/internal/domain/entity"
	domainerrors "vde/internal/domain/errors"
	mockUsecase "vde/internal/mocks/usecase"
	"vde/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const validSubmissionJSON = `{
	"systemType": "new_construction",
	"place": "Munich",
	"plant": {
		"address": {"street": "Solarstrasse", "houseNumber": "12", "postcode": "80331", "city": "Munich"},
		"plannedCommissioningDate": "2026-07-01"
	},
	"subscriber": {
		"firstName": "Anna",
		"lastName": "Schmidt",
		"email": "anna.schmidt@example.com",
		"address": {"street": "Hauptstrasse", "houseNumber": "5", "postcode": "80333", "city": "Munich"}
	},
	"operatorSameAsSubscriber": true,
	"installer": {
		"name": "Elektro Mueller GmbH",
		"registrationNumber": "HRB 12345",
		"address": {"street": "Gewerbering", "houseNumber": "3", "postcode": "80335", "city": "Munich"}
	},
	"signatureDate": "2026-06-15"
}`

func setupTestServer(t *testing.T) (*echo.Echo, *mockUsecase.MockApplicationUsecase) {
	uc := mockUsecase.NewMockApplicationUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := NewApplicationHandler(uc, logger)

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	e.POST("/applications", h.Create)
	e.GET("/applications", h.List)
	e.GET("/applications/summary", h.Summary)
	e.PATCH("/applications/:id/status", h.UpdateStatus)
	e.DELETE("/applications/:id", h.Delete)

	return e, uc
}

func doRequest(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	var envelope map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))

	return envelope
}

func TestApplicationHandler_Create(t *testing.T) {
	e, uc := setupTestServer(t)

	uc.EXPECT().
		Submit(mock.Anything, mock.AnythingOfType("*usecase.SubmitApplicationInput")).
		RunAndReturn(func(_ context.Context, input *usecase.SubmitApplicationInput) (*entity.Application, error) {
			assert.Equal(t, "Anna", input.Subscriber.FirstName)
			assert.True(t, input.OperatorSameAsSubscriber)

			return &entity.Application{ID: 42, Status: entity.StatusPending}, nil
		})

	rec := doRequest(e, http.MethodPost, "/applications", validSubmissionJSON)
	require.Equal(t, http.StatusCreated, rec.Code)

	envelope := decodeEnvelope(t, rec)
	assert.Equal(t, true, envelope["success"])
	data := envelope["data"].(map[string]any)
	assert.Equal(t, float64(42), data["id"])
	assert.Equal(t, "pending", data["status"])
}

func TestApplicationHandler_Create_MissingRequiredFields(t *testing.T) {
	e, uc := setupTestServer(t)

	payload := `{
		"systemType": "new_construction",
		"plant": {"address": {"street": "Solarstrasse", "houseNumber": "12", "postcode": "80331", "city": "Munich"}},
		"subscriber": {"lastName": "Schmidt", "address": {"street": "Hauptstrasse", "houseNumber": "5", "postcode": "80333", "city": "Munich"}},
		"operatorSameAsSubscriber": true,
		"installer": {"address": {"street": "Gewerbering", "houseNumber": "3", "postcode": "80335", "city": "Munich"}}
	}`

	rec := doRequest(e, http.MethodPost, "/applications", payload)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	envelope := decodeEnvelope(t, rec)
	errorInfo := envelope["error"].(map[string]any)
	assert.Equal(t, "VALIDATION_FAILED", errorInfo["code"])

	fields := errorInfo["fields"].(map[string]any)
	assert.Contains(t, fields, "subscriber.firstName")
	assert.Contains(t, fields, "installer.name")

	uc.AssertNotCalled(t, "Submit", mock.Anything, mock.Anything)
}

func TestApplicationHandler_Create_OperatorRequired(t *testing.T) {
	e, uc := setupTestServer(t)

	payload := strings.Replace(validSubmissionJSON, `"operatorSameAsSubscriber": true`, `"operatorSameAsSubscriber": false`, 1)

	rec := doRequest(e, http.MethodPost, "/applications", payload)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	envelope := decodeEnvelope(t, rec)
	fields := envelope["error"].(map[string]any)["fields"].(map[string]any)
	assert.Contains(t, fields, "operator")

	uc.AssertNotCalled(t, "Submit", mock.Anything, mock.Anything)
}

func TestApplicationHandler_Create_InvalidSystemType(t *testing.T) {
	e, uc := setupTestServer(t)

	payload := strings.Replace(validSubmissionJSON, "new_construction", "refurbishment", 1)

	rec := doRequest(e, http.MethodPost, "/applications", payload)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	envelope := decodeEnvelope(t, rec)
	fields := envelope["error"].(map[string]any)["fields"].(map[string]any)
	assert.Contains(t, fields, "systemType")

	uc.AssertNotCalled(t, "Submit", mock.Anything, mock.Anything)
}

func TestApplicationHandler_List(t *testing.T) {
	e, uc := setupTestServer(t)

	submitted := time.Date(2026, 6, 15, 10, 0, 0, 0, time.UTC)
	uc.EXPECT().
		List(mock.Anything).
		Return([]*usecase.ApplicationRow{
			{
				ID:             1,
				SystemType:     entity.SystemTypeNewConstruction,
				Status:         entity.StatusPending,
				SubmissionDate: submitted,
				Place:          "Munich",
				Subscriber:     "Anna Schmidt",
				Installer:      "Elektro Mueller GmbH",
			},
		}, nil)

	rec := doRequest(e, http.MethodGet, "/applications", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Anna Schmidt")
	assert.Contains(t, rec.Body.String(), "Elektro Mueller GmbH")
}

func TestApplicationHandler_Summary(t *testing.T) {
	e, uc := setupTestServer(t)

	uc.EXPECT().
		Summary(mock.Anything).
		Return(&usecase.ApplicationSummary{Total: 6, PendingReviews: 2, Approved: 2, Completed: 1}, nil)

	rec := doRequest(e, http.MethodGet, "/applications/summary", "")
	require.Equal(t, http.StatusOK, rec.Code)

	envelope := decodeEnvelope(t, rec)
	data := envelope["data"].(map[string]any)
	assert.Equal(t, float64(6), data["total"])
	assert.Equal(t, float64(2), data["pendingReviews"])
}

func TestApplicationHandler_UpdateStatus(t *testing.T) {
	e, uc := setupTestServer(t)

	uc.EXPECT().
		UpdateStatus(mock.Anything, int64(7), "approved").
		Return(nil)

	rec := doRequest(e, http.MethodPatch, "/applications/7/status", `{"status": "approved"}`)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestApplicationHandler_UpdateStatus_NonNumericID(t *testing.T) {
	e, uc := setupTestServer(t)

	rec := doRequest(e, http.MethodPatch, "/applications/abc/status", `{"status": "approved"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	envelope := decodeEnvelope(t, rec)
	fields := envelope["error"].(map[string]any)["fields"].(map[string]any)
	assert.Contains(t, fields, "id")

	uc.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestApplicationHandler_UpdateStatus_NotFound(t *testing.T) {
	e, uc := setupTestServer(t)

	uc.EXPECT().
		UpdateStatus(mock.Anything, int64(404), "approved").
		Return(domainerrors.ErrApplicationNotFound)

	rec := doRequest(e, http.MethodPatch, "/applications/404/status", `{"status": "approved"}`)
	require.Equal(t, http.StatusNotFound, rec.Code)

	envelope := decodeEnvelope(t, rec)
	errorInfo := envelope["error"].(map[string]any)
	assert.Equal(t, "APPLICATION_NOT_FOUND", errorInfo["code"])
}

func TestApplicationHandler_Delete(t *testing.T) {
	e, uc := setupTestServer(t)

	uc.EXPECT().
		Delete(mock.Anything, int64(3)).
		Return(nil)

	rec := doRequest(e, http.MethodDelete, "/applications/3", "")
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestHealthCheck(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, HealthCheck(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}
