package errors

// ValidationError is an AppError carrying per-field messages keyed by path, e.g. "members.0.age".
type ValidationError struct {
	*BaseError
	Fields map[string]string
}

// NewValidationError wraps field errors into a 422 VALIDATION_FAILED error.
func NewValidationError(fields map[string]string) *ValidationError {
	return &ValidationError{
		BaseError: ErrValidationFailed,
		Fields:    fields,
	}
}

// FieldDetails returns the per-field messages rendered as error details.
func (e *ValidationError) FieldDetails() map[string]string {
	return e.Fields
}
