// Package validation checks incoming job payloads and listing queries
// before they reach the job service. Failures are reported as
// apperr validation errors carrying a field-level breakdown.
package validation

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/maauso/jobboard-api/internal/apperr"
)

// Validator wraps a validator.Validate configured for request schemas.
// It is safe for concurrent use.
type Validator struct {
	validate *validator.Validate
}

// New creates a Validator that reports fields by their JSON names.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return &Validator{validate: v}
}

// requiredMessages overrides the generic "Required" message per field.
var requiredMessages = map[string]string{
	"title":       "Job Title is required",
	"description": "Short Description is required",
}

// check validates s and appends one message per failing field to details.
// Fields already present in details are skipped so a type error is not
// followed by a second, less precise message.
func (v *Validator) check(s any, details *apperr.Details) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	for _, fe := range verrs {
		field := fe.Field()
		if _, seen := details.FieldErrors[field]; seen {
			continue
		}
		details.AddField(field, message(fe))
	}
	return nil
}

// message translates a single validator failure into a client message.
func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		if msg, ok := requiredMessages[fe.Field()]; ok {
			return msg
		}
		return "Required"
	case "gt":
		return "Number must be greater than " + fe.Param()
	case "lte":
		return "Number must be less than or equal to " + fe.Param()
	default:
		return "Invalid value"
	}
}

// jsonKind names the JSON type of a raw value the way messages report it.
func jsonKind(raw []byte) string {
	s := strings.TrimSpace(string(raw))
	if s == "" {
		return "undefined"
	}
	switch s[0] {
	case '"':
		return "string"
	case '{':
		return "object"
	case '[':
		return "array"
	case 't', 'f':
		return "boolean"
	case 'n':
		return "null"
	default:
		return "number"
	}
}
