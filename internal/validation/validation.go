// Package validation applies the per-operation input schemas. Violations are
// collected for the whole input rather than failing on the first field, and
// are reported in struct field declaration order.
package validation

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/isdelr/accounts-api/internal/apperr"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields under their JSON names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Check validates input against its schema tags. On failure it returns a 400
// apperr.Error listing every violation.
func Check(input any) error {
	err := validate.Struct(input)
	if err == nil {
		return nil
	}

	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return apperr.Internal(err)
	}

	violations := make([]apperr.Violation, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		violations = append(violations, apperr.Violation{
			Field:   fe.Field(),
			Message: violationMessage(fe),
		})
	}
	return apperr.SchemaViolations(violations)
}

// ParseID parses a URL id parameter as a positive integer.
func ParseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, apperr.SchemaViolations([]apperr.Violation{
			{Field: "id", Message: "id must be a positive integer"},
		})
	}
	return id, nil
}

func violationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", fe.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters long", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
