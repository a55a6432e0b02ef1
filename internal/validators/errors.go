package validators

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-users-api/models"
)

var (
	ErrValidation      = errors.New("validation failed")
	ErrUnsupportedType = errors.New("unsupported type for validation")
)

// ValidationError lists every field that failed validation.
type ValidationError struct {
	Fields []models.FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return ErrValidation.Error() + ": " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// FieldErrors returns the per-field failures carried by err, or nil when err
// is not a validation error.
func FieldErrors(err error) []models.FieldError {
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return validationErr.Fields
	}
	return nil
}
