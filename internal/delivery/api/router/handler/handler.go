// Package handler contains the HTTP handlers of the storefront API.
package handler

import (
	"net/http"

	"storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/response"
	"storefront/internal/delivery/api/validator"
	domainerrors "storefront/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HealthCheck reports that the server is up
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}

// bind decodes the request into req and validates it.
// Field errors become a ValidationError so they render as 422 with the field map.
func bind(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrInvalidInput.WithDetails(err.Error())
	}

	if err := c.Validate(req); err != nil {
		if fields := validator.FieldErrors(err); fields != nil {
			return domainerrors.NewValidationError(fields)
		}

		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}

// sessionID returns the session of the authenticated request.
func sessionID(c echo.Context) (uuid.UUID, error) {
	id, ok := middleware.GetSessionID(c)
	if !ok {
		return uuid.Nil, domainerrors.ErrSessionTokenInvalid
	}

	return id, nil
}

// pathID parses a UUID path parameter.
func pathID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.ErrInvalidID.WithDetails(name + " must be a UUID")
	}

	return id, nil
}
