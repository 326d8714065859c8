package validation

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/maauso/jobboard-api/internal/apperr"
	"github.com/maauso/jobboard-api/internal/job"
)

// CreateJobRequest is the creation schema. Values are trimmed before
// the validate tags are checked.
type CreateJobRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	Company     string `json:"company"`
	Location    string `json:"location"`
}

// DecodeCreateJob reads a JSON job payload from r and validates it.
// Unknown fields are ignored; company and location default to "".
// It returns an *apperr.Error of kind validation (or payload too large)
// when the payload is rejected.
func (v *Validator) DecodeCreateJob(r io.Reader) (job.Fields, error) {
	details := apperr.NewDetails()

	raw, err := decodeObject(r, details)
	if err != nil {
		return job.Fields{}, err
	}

	var req CreateJobRequest
	if raw != nil {
		req.Title = stringField(raw, "title", true, details)
		req.Description = stringField(raw, "description", true, details)
		req.Company = stringField(raw, "company", false, details)
		req.Location = stringField(raw, "location", false, details)

		if err := v.check(req, details); err != nil {
			return job.Fields{}, apperr.Internal("Failed to create job", err)
		}
	}

	if !details.Empty() {
		return job.Fields{}, apperr.Validation("Validation failed", details)
	}

	return job.Fields{
		Title:       req.Title,
		Description: req.Description,
		Company:     req.Company,
		Location:    req.Location,
	}, nil
}

// decodeObject decodes r into a map of raw field values. An empty body is
// treated as an empty object. Shape problems are recorded as form errors and
// yield a nil map; an oversized body is returned as an error.
func decodeObject(r io.Reader, details *apperr.Details) (map[string]json.RawMessage, error) {
	var body json.RawMessage
	dec := json.NewDecoder(r)
	err := dec.Decode(&body)
	if err == nil && dec.More() {
		err = errors.New("trailing data after JSON value")
	}
	if err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case errors.As(err, &tooLarge):
			return nil, apperr.PayloadTooLarge("request entity too large", err)
		case errors.Is(err, io.EOF):
			return map[string]json.RawMessage{}, nil
		default:
			details.AddForm("Invalid JSON body")
			return nil, nil
		}
	}

	if kind := jsonKind(body); kind != "object" {
		details.AddForm("Expected object, received " + kind)
		return nil, nil
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		details.AddForm("Invalid JSON body")
		return nil, nil
	}
	return raw, nil
}

// stringField extracts and trims a string field. Missing required fields and
// values of the wrong JSON type are recorded in details.
func stringField(raw map[string]json.RawMessage, name string, required bool, details *apperr.Details) string {
	val, ok := raw[name]
	if !ok {
		if required {
			details.AddField(name, "Required")
		}
		return ""
	}

	var s string
	if err := json.Unmarshal(val, &s); err != nil || jsonKind(val) != "string" {
		details.AddField(name, "Expected string, received "+jsonKind(val))
		return ""
	}
	return strings.TrimSpace(s)
}
