package tms

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

// enumValues lists the accepted values of every string enum tag.
var enumValues = map[string][]string{
	"billing_status":      {"pending", "draft", "invoiced", "paid", "canceled"},
	"invoice_status":      {"draft", "issued", "paid", "partial", "overdue", "canceled"},
	"payment_status":      {"pending", "verified", "rejected"},
	"payment_method":      {"bank_transfer", "flashpay"},
	"address_type":        {"pickup", "return", "billing", "warehouse"},
	"billing_type":        {"consolidated", "transactional"},
	"billing_cycle":       {"weekly", "biweekly", "monthly", "custom"},
	"payment_terms":       {"due_on_receipt", "net_7", "net_15", "net_30", "net_45", "net_60", "net_90", "custom"},
	"delivery_event_type": {"draft", "created", "picked_up", "accepted", "delivering", "delivered", "failed", "exception", "canceled", "rescheduled", "returning", "returned", "in_transit_sorted", "in_transit_hub_inbound", "in_transit_hub_outbound"},
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.Split(field.Tag.Get("json"), ",")[0]
		if name == "" || name == "-" {
			return field.Name
		}
		return name
	})

	for tag, values := range enumValues {
		if err := v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
			if fl.Field().Kind() != reflect.String {
				return false
			}
			return slices.Contains(values, fl.Field().String())
		}); err != nil {
			panic(err)
		}
	}

	return v
}

// validateRequest checks the validate tags of a request struct before it is
// signed and sent. The error wraps [ErrInvalidRequest].
func validateRequest(req any) error {
	if req == nil {
		return nil
	}
	if err := validate.Struct(req); err != nil {
		return normalizeValidationError(err)
	}
	return nil
}

// requireID rejects empty path parameters, which would otherwise address the
// collection instead of a single entity.
func requireID(name, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%w: %s is required", ErrInvalidRequest, name)
	}
	return nil
}

func normalizeValidationError(err error) error {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	first := validationErrs[0]
	fieldPath := jsonPath(first)
	message := validationMessage(first)
	return fmt.Errorf("%w: %s %s", ErrInvalidRequest, fieldPath, message)
}

func jsonPath(fe validator.FieldError) string {
	path := fe.Namespace()
	if idx := strings.Index(path, "."); idx >= 0 {
		path = path[idx+1:]
	}
	if path == "" {
		return fe.Field()
	}
	return path
}

func validationMessage(fe validator.FieldError) string {
	if values, ok := enumValues[fe.Tag()]; ok {
		return fmt.Sprintf("must be one of [%s]", strings.Join(values, ", "))
	}
	switch fe.Tag() {
	case "required":
		return "is required"
	case "required_without":
		return fmt.Sprintf("is required when %s is empty", fe.Param())
	case "min":
		return fmt.Sprintf("must have at least %s entries", fe.Param())
	case "len":
		return fmt.Sprintf("must be exactly %s characters", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of [%s]", strings.ReplaceAll(fe.Param(), " ", ", "))
	case "email":
		return "must be a valid email address"
	case "url":
		return "must be a valid URL"
	case "datetime":
		return "must be an RFC 3339 timestamp"
	case "uppercase":
		return "must be uppercase"
	default:
		return fmt.Sprintf("failed validation: %s", fe.Tag())
	}
}

// validateParams validates optional query parameters. nil is valid.
func validateParams[T any](params *T) error {
	if params == nil {
		return nil
	}
	return validateRequest(params)
}
