package http

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	apierrors "github.com/ekviron/orders-api/internal/shared/errors"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// Validator returns the shared validator configured with JSON field names
// and the notblank rule.
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		_ = validate.RegisterValidation("notblank", validateNotBlank)
	})
	return validate
}

// ValidateRequest checks the request DTO against its declared constraints
// and returns the itemized field violations plus any object-level ones.
// Both slices are nil when the value is valid.
func ValidateRequest(v any) ([]apierrors.FieldViolation, []apierrors.SubError) {
	err := Validator().Struct(v)
	if err == nil {
		return nil, nil
	}
	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return nil, []apierrors.SubError{{Object: objectName(v), Message: err.Error()}}
	}
	violations := make([]apierrors.FieldViolation, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		violations = append(violations, apierrors.FieldViolation{
			Field:         fieldPath(fieldErr),
			RejectedValue: fieldErr.Value(),
			Message:       violationMessage(fieldErr),
		})
	}
	return violations, nil
}

// fieldPath strips the root struct name off the namespace so violations read
// like "products[0].code" rather than "Order.products[0].code".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if idx := strings.Index(ns, "."); idx >= 0 {
		return ns[idx+1:]
	}
	return fe.Field()
}

func violationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank":
		if fe.Kind() == reflect.Slice {
			return "must not be empty"
		}
		return "must not be blank"
	case "min":
		if fe.Kind() == reflect.Slice {
			return "must not be empty"
		}
		return fmt.Sprintf("size must be at least %s", fe.Param())
	case "len":
		return fmt.Sprintf("size must be between %s and %s", fe.Param(), fe.Param())
	default:
		return "failed validation: " + fe.Tag()
	}
}

func validateNotBlank(fl validator.FieldLevel) bool {
	if fl.Field().Kind() != reflect.String {
		return true
	}
	return strings.TrimSpace(fl.Field().String()) != ""
}

func objectName(v any) string {
	t := reflect.TypeOf(v)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil {
		return "request"
	}
	return t.Name()
}
