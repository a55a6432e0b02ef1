package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate *validator.Validate
	once     sync.Once
)

// getValidator returns the shared validator instance.
func getValidator() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())

		// report json names, not Go field names
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return fld.Name
			}
			return name
		})
	})
	return validate
}

// StructValidator validates any struct annotated with `validate` tags.
type StructValidator struct{}

func NewStructValidator() Validator {
	return &StructValidator{}
}

// Validate checks obj against its tags. When fields are given only those
// Go struct fields are checked.
func (v *StructValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	var err error
	if len(fields) > 0 {
		err = getValidator().StructPartialCtx(ctx, obj, fields...)
	} else {
		err = getValidator().StructCtx(ctx, obj)
	}
	if err == nil {
		return nil
	}

	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}

	result := &ValidationError{}
	for _, e := range validationErrors {
		result.Fields = append(result.Fields, fieldError(e))
	}

	return result
}
