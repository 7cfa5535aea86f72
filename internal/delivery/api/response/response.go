// Package response writes the JSON envelopes of the storefront API.
//
// Successful responses are {"data": ..., "meta": {"request_id": ...}}. Failures are
// {"error": {"code", "message", "details"}, "meta": {...}}.
package response

import (
	"net/http"

	deliverycontext "storefront/internal/delivery/context"
	domainerrors "storefront/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type SuccessResponse struct {
	Data any       `json:"data"`
	Meta *MetaInfo `json:"meta"`
}

type ErrorResponse struct {
	Error *ErrorInfo `json:"error"`
	Meta  *MetaInfo  `json:"meta"`
}

// ErrorInfo describes a failure. Details is always an object: per-field messages for
// validation failures, {"reason": ...} for other domain errors.
type ErrorInfo struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

type MetaInfo struct {
	RequestID string `json:"request_id"`
}

func meta(c echo.Context) *MetaInfo {
	return &MetaInfo{RequestID: deliverycontext.GetRequestID(c)}
}

// Success writes data in the success envelope.
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, SuccessResponse{Data: data, Meta: meta(c)})
}

// Error writes the error envelope. Details are dropped from 401, 403 and 5xx responses.
func Error(c echo.Context, statusCode int, errorCode string, message string, details map[string]string) error {
	if statusCode >= http.StatusInternalServerError ||
		statusCode == http.StatusUnauthorized ||
		statusCode == http.StatusForbidden {
		details = nil
	}

	return c.JSON(statusCode, ErrorResponse{
		Error: &ErrorInfo{Code: errorCode, Message: message, Details: details},
		Meta:  meta(c),
	})
}

func Unauthorized(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusUnauthorized, errorCode, message, nil)
}

func InternalServerError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message, nil)
}

// UnprocessableEntity reports a request that parsed but failed validation.
func UnprocessableEntity(c echo.Context, errorCode string, message string, details map[string]string) error {
	return Error(c, http.StatusUnprocessableEntity, errorCode, message, details)
}

// PNG writes an uncacheable PNG image.
func PNG(c echo.Context, image []byte) error {
	c.Response().Header().Set(echo.HeaderCacheControl, "no-store")

	return c.Blob(http.StatusOK, "image/png", image)
}

// HandleAppError writes domain errors with their own status and code. Other errors are returned
// with a stack so the centralized handler logs them and answers 500.
func HandleAppError(c echo.Context, err error) error {
	var validationErr *domainerrors.ValidationError
	if errors.As(err, &validationErr) {
		return UnprocessableEntity(c, validationErr.ErrorCode(), validationErr.Message(), validationErr.FieldDetails())
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		var details map[string]string
		if reason := appErr.Details(); reason != "" {
			details = map[string]string{"reason": reason}
		}

		return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), details)
	}

	return errors.WithStack(err)
}
