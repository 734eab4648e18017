package validator

import (
	"errors"
	"strings"

	val "github.com/go-playground/validator/v10"
)

const (
	atLeast = "{field} must be greater than or equal to {param}"
	atMost  = "{field} must be less than or equal to {param}"
)

// templates maps a validation tag to the message shown for its first failing field.
var templates = map[string]string{
	"required": "{field} is required",
	"gte":      atLeast,
	"min":      atLeast,
	"lte":      atMost,
	"max":      atMost,
	"gt":       "{field} must be greater than {param}",
	"oneof":    "{field} must be one of {param}",
	"email":    "{field} must be a valid email address",
	"uuid":     "{field} must be a valid UUID",
	"decimal":  "{field} must be a decimal amount with at most two fraction digits",
	"datetime": "{field} must match the format {param}",
}

func message(err error) string {
	var fieldErrs val.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err.Error()
	}

	for _, fieldErr := range fieldErrs {
		if tmpl, ok := templates[fieldErr.Tag()]; ok {
			return strings.NewReplacer("{field}", fieldErr.Field(), "{param}", fieldErr.Param()).Replace(tmpl)
		}
	}

	return fieldErrs.Error()
}
