package validator

import (
	"errors"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var templates = map[string]string{
	"required": "{field} is required",
	"max":      "{field} must be at most {param} characters",
	"email":    "{field} must be a valid email address",
	"isodate":  "{field} must be a date in YYYY-MM-DD format",
	"phone":    "{field} must be a valid phone number",
}

// message reports the first field that failed. Tags without a template fall back to the
// validator's own text.
func message(err error) string {
	var fieldErrs val.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return err.Error()
	}

	for _, fieldErr := range fieldErrs {
		if tmpl, ok := templates[fieldErr.Tag()]; ok {
			return strings.NewReplacer("{field}", fieldErr.Field(), "{param}", fieldErr.Param()).Replace(tmpl)
		}
	}

	return fieldErrs.Error()
}

func fieldNames(err error) []string {
	var fieldErrs val.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return nil
	}

	res := make([]string, 0, len(fieldErrs))
	for _, fieldErr := range fieldErrs {
		res = append(res, fieldErr.Field())
	}

	return res
}
