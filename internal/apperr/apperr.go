// Package apperr defines the error taxonomy of the HTTP API.
// Every failure a handler produces is normalised into an *Error whose Kind
// decides the response status.
package apperr

import (
	"errors"
	"fmt"
	"net/http"

	goerrors "github.com/go-errors/errors"

	"github.com/maauso/jobboard-api/internal/job"
)

// Kind classifies an API error.
type Kind string

const (
	// KindValidation is a client error caused by malformed or missing input.
	KindValidation Kind = "VALIDATION"
	// KindNotFound means the referenced resource or route does not exist.
	KindNotFound Kind = "NOT_FOUND"
	// KindPayloadTooLarge means the request body exceeded the configured limit.
	KindPayloadTooLarge Kind = "PAYLOAD_TOO_LARGE"
	// KindInternal is an unexpected server-side failure.
	KindInternal Kind = "INTERNAL"
)

// Status returns the HTTP status code for the kind.
func (k Kind) Status() int {
	switch k {
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindPayloadTooLarge:
		return http.StatusRequestEntityTooLarge
	default:
		return http.StatusInternalServerError
	}
}

// Details is the field-level breakdown of a validation failure.
type Details struct {
	// FormErrors holds messages that do not belong to a single field.
	FormErrors []string `json:"formErrors"`
	// FieldErrors maps a field path to its messages.
	FieldErrors map[string][]string `json:"fieldErrors"`
}

// NewDetails returns empty, non-nil Details.
func NewDetails() *Details {
	return &Details{
		FormErrors:  []string{},
		FieldErrors: map[string][]string{},
	}
}

// AddField records a message for field.
func (d *Details) AddField(field, msg string) {
	d.FieldErrors[field] = append(d.FieldErrors[field], msg)
}

// AddForm records a message that applies to the whole input.
func (d *Details) AddForm(msg string) {
	d.FormErrors = append(d.FormErrors, msg)
}

// Empty reports whether no messages were recorded.
func (d *Details) Empty() bool {
	return len(d.FormErrors) == 0 && len(d.FieldErrors) == 0
}

// Error is a classified API error.
// Message is safe to show to clients; Err is the cause and is only logged.
type Error struct {
	Kind    Kind
	Message string
	Details *Details
	Err     error
	Stack   []byte
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Status returns the HTTP status code for the error.
func (e *Error) Status() int {
	return e.Kind.Status()
}

// Validation returns a validation error carrying a field breakdown.
func Validation(message string, details *Details) *Error {
	return &Error{Kind: KindValidation, Message: message, Details: details}
}

// NotFound returns a not-found error.
func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

// PayloadTooLarge returns an error for an oversized request body.
func PayloadTooLarge(message string, err error) *Error {
	return &Error{Kind: KindPayloadTooLarge, Message: message, Err: err}
}

// Internal returns an internal error with a generic client-facing message.
// The stack of err, or of the call site when err has none, is captured for logging.
func Internal(message string, err error) *Error {
	var stack []byte
	if err != nil {
		var stackErr *goerrors.Error
		if errors.As(err, &stackErr) {
			stack = stackErr.Stack()
		} else {
			stack = goerrors.Wrap(err, 1).Stack()
		}
	} else {
		stack = goerrors.New(message).Stack()
	}

	return &Error{
		Kind:    KindInternal,
		Message: message,
		Err:     err,
		Stack:   stack,
	}
}

// From normalises err into an *Error. Existing *Error values pass through,
// job.ErrJobNotFound becomes a not-found error and anything else becomes an
// internal error with the given fallback message.
func From(err error, fallback string) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	if errors.Is(err, job.ErrJobNotFound) {
		return NotFound("Job not found")
	}
	return Internal(fallback, err)
}
