package errors

import (
	"net/http"

	"storefront/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Session-related errors
	ErrSessionNotFound = NewBaseError(
		http.StatusNotFound,
		"SESSION_NOT_FOUND",
		"Session not found or expired",
		"",
	)

	ErrSessionTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"SESSION_TOKEN_INVALID",
		"Invalid or expired session token",
		"",
	)

	ErrPersonaMismatch = NewBaseError(
		http.StatusConflict,
		"PERSONA_MISMATCH",
		"This action is not available for the session persona",
		"",
	)

	ErrInvalidPersona = NewBaseError(
		http.StatusBadRequest,
		"INVALID_PERSONA",
		"Unknown persona",
		"",
	)

	// Wizard-related errors
	ErrInvalidTransition = NewBaseError(
		http.StatusConflict,
		"INVALID_TRANSITION",
		"This step cannot be reached from the current step",
		"",
	)

	ErrUnknownEvent = NewBaseError(
		http.StatusBadRequest,
		"UNKNOWN_EVENT",
		"Unknown wizard event",
		"",
	)

	// Request-related errors
	ErrInvalidInput = NewBaseError(
		http.StatusBadRequest,
		"INVALID_INPUT",
		"Request could not be parsed",
		"",
	)

	ErrInvalidID = NewBaseError(
		http.StatusBadRequest,
		"INVALID_ID",
		"Invalid identifier",
		"",
	)

	ErrInvalidCategory = NewBaseError(
		http.StatusBadRequest,
		"INVALID_CATEGORY",
		"Unknown device category",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusUnprocessableEntity,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// Catalog-related errors
	ErrDeviceNotFound = NewBaseError(
		http.StatusNotFound,
		"DEVICE_NOT_FOUND",
		"Device not found",
		"",
	)

	ErrPlanNotFound = NewBaseError(
		http.StatusNotFound,
		"PLAN_NOT_FOUND",
		"Plan not found",
		"",
	)

	ErrInvalidCoordinates = NewBaseError(
		http.StatusBadRequest,
		"INVALID_COORDINATES",
		"Latitude must be within -90..90 and longitude within -180..180",
		"",
	)

	// Family-related errors
	ErrMemberNotFound = NewBaseError(
		http.StatusNotFound,
		"MEMBER_NOT_FOUND",
		"Household member not found",
		"",
	)

	ErrNoSharedPlan = NewBaseError(
		http.StatusUnprocessableEntity,
		"NO_SHARED_PLAN",
		"No shared plan covers this household size",
		"",
	)

	// Checkout-related errors
	ErrEmptyCart = NewBaseError(
		http.StatusUnprocessableEntity,
		"EMPTY_CART",
		"Choose a plan before checking out",
		"",
	)

	ErrInvalidPromoCode = NewBaseError(
		http.StatusUnprocessableEntity,
		"INVALID_PROMO_CODE",
		"Promo code is not valid",
		"",
	)

	ErrOrderNotFound = NewBaseError(
		http.StatusNotFound,
		"ORDER_NOT_FOUND",
		"Order not found",
		"",
	)

	ErrNoESIM = NewBaseError(
		http.StatusNotFound,
		"NO_ESIM",
		"This order has no eSIM line",
		"",
	)

	ErrOrderCreationFailed = NewBaseError(
		http.StatusInternalServerError,
		"ORDER_CREATION_FAILED",
		"Failed to place the order",
		"",
	)

	ErrQRCodeFailed = NewBaseError(
		http.StatusInternalServerError,
		"QR_CODE_FAILED",
		"Failed to generate the activation code",
		"",
	)

	// Porting-related errors
	ErrIncompatibleDevice = NewBaseError(
		http.StatusUnprocessableEntity,
		"INCOMPATIBLE_DEVICE",
		"This device cannot be used on the network",
		"",
	)

	ErrDealNotFound = NewBaseError(
		http.StatusNotFound,
		"DEAL_NOT_FOUND",
		"Deal not found",
		"",
	)

	ErrPortingNotFound = NewBaseError(
		http.StatusNotFound,
		"PORTING_NOT_FOUND",
		"No number transfer in progress",
		"",
	)

	ErrPortingAlreadyStarted = NewBaseError(
		http.StatusConflict,
		"PORTING_ALREADY_STARTED",
		"A number transfer is already in progress",
		"",
	)

	ErrPortingFailed = NewBaseError(
		http.StatusInternalServerError,
		"PORTING_FAILED",
		"Failed to start the number transfer",
		"",
	)
)
