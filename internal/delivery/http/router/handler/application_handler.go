// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"vde/internal/delivery/http/response"
	domainerrors "vde/internal/domain/errors"
	"vde/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ApplicationHandler holds dependencies for application-related handlers.
type ApplicationHandler struct {
	uc     usecase.ApplicationUsecase
	logger *slog.Logger
}

// NewApplicationHandler is the constructor for ApplicationHandler, injected by Fx.
func NewApplicationHandler(uc usecase.ApplicationUsecase, logger *slog.Logger) *ApplicationHandler {
	return &ApplicationHandler{
		uc:     uc,
		logger: logger,
	}
}

// Create handles a new application submission.
func (h *ApplicationHandler) Create(c echo.Context) error {
	var input *usecase.SubmitApplicationInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid application payload")
	}

	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	app, err := h.uc.Submit(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]any{
		"id":     app.ID,
		"status": app.Status,
	}, "Application submitted successfully")
}

// List returns all applications as display rows.
func (h *ApplicationHandler) List(c echo.Context) error {
	rows, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, rows, "")
}

// Summary returns the dashboard counters.
func (h *ApplicationHandler) Summary(c echo.Context) error {
	summary, err := h.uc.Summary(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, summary, "")
}

// updateStatusRequest is the body of the status update endpoint.
type updateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// UpdateStatus sets an application's review status.
func (h *ApplicationHandler) UpdateStatus(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var req *updateStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status payload")
	}

	if err := c.Validate(req); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.UpdateStatus(c.Request().Context(), id, req.Status); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"id": id, "status": req.Status}, "Status updated")
}

// Delete removes an application.
func (h *ApplicationHandler) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"id": id}, "Application deleted")
}

func parseID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, domainerrors.NewFieldValidationError("id", "Must be a numeric application id")
	}

	return id, nil
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
