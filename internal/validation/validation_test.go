package validation

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maauso/jobboard-api/internal/apperr"
	"github.com/maauso/jobboard-api/internal/job"
)

func requireValidationError(t *testing.T, err error, message string) *apperr.Details {
	t.Helper()
	var appErr *apperr.Error
	require.True(t, errors.As(err, &appErr), "expected *apperr.Error, got %v", err)
	require.Equal(t, apperr.KindValidation, appErr.Kind)
	require.Equal(t, message, appErr.Message)
	require.NotNil(t, appErr.Details)
	return appErr.Details
}

func TestDecodeCreateJob_Valid(t *testing.T) {
	v := New()

	fields, err := v.DecodeCreateJob(strings.NewReader(`{
		"title": "  React Intern ",
		"description": "Build UI features",
		"company": " Acme",
		"location": "Jerusalem ",
		"salary": 1000
	}`))
	require.NoError(t, err)

	assert.Equal(t, job.Fields{
		Title:       "React Intern",
		Description: "Build UI features",
		Company:     "Acme",
		Location:    "Jerusalem",
	}, fields)
}

func TestDecodeCreateJob_OptionalFieldsDefaultToEmpty(t *testing.T) {
	v := New()

	fields, err := v.DecodeCreateJob(strings.NewReader(`{"title":"t","description":"d"}`))
	require.NoError(t, err)
	assert.Equal(t, "", fields.Company)
	assert.Equal(t, "", fields.Location)
}

func TestDecodeCreateJob_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		fields map[string][]string
		form   []string
	}{
		{
			name: "empty object",
			body: `{}`,
			fields: map[string][]string{
				"title":       {"Required"},
				"description": {"Required"},
			},
		},
		{
			name: "empty body",
			body: ``,
			fields: map[string][]string{
				"title":       {"Required"},
				"description": {"Required"},
			},
		},
		{
			name: "whitespace only values",
			body: `{"title":"   ","description":"\t\n"}`,
			fields: map[string][]string{
				"title":       {"Job Title is required"},
				"description": {"Short Description is required"},
			},
		},
		{
			name: "missing description",
			body: `{"title":"React Intern"}`,
			fields: map[string][]string{
				"description": {"Required"},
			},
		},
		{
			name: "wrong types",
			body: `{"title":42,"description":"d","company":null,"location":["x"]}`,
			fields: map[string][]string{
				"title":    {"Expected string, received number"},
				"company":  {"Expected string, received null"},
				"location": {"Expected string, received array"},
			},
		},
		{
			name:   "malformed json",
			body:   `{"title":`,
			fields: map[string][]string{},
			form:   []string{"Invalid JSON body"},
		},
		{
			name:   "trailing data",
			body:   `{"title":"t","description":"d"} {}`,
			fields: map[string][]string{},
			form:   []string{"Invalid JSON body"},
		},
		{
			name:   "array body",
			body:   `[{"title":"t"}]`,
			fields: map[string][]string{},
			form:   []string{"Expected object, received array"},
		},
		{
			name:   "null body",
			body:   `null`,
			fields: map[string][]string{},
			form:   []string{"Expected object, received null"},
		},
	}

	v := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := v.DecodeCreateJob(strings.NewReader(tt.body))
			details := requireValidationError(t, err, "Validation failed")

			assert.Equal(t, tt.fields, details.FieldErrors)
			if tt.form == nil {
				assert.Empty(t, details.FormErrors)
			} else {
				assert.Equal(t, tt.form, details.FormErrors)
			}
		})
	}
}

func TestDecodeCreateJob_PayloadTooLarge(t *testing.T) {
	v := New()
	body := `{"title":"` + strings.Repeat("x", 2048) + `","description":"d"}`
	rec := httptest.NewRecorder()
	r := http.MaxBytesReader(rec, io.NopCloser(strings.NewReader(body)), 512)

	_, err := v.DecodeCreateJob(r)

	var appErr *apperr.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, apperr.KindPayloadTooLarge, appErr.Kind)
	assert.Equal(t, http.StatusRequestEntityTooLarge, appErr.Status())
}

func TestParseListQuery_Defaults(t *testing.T) {
	v := New()

	q, err := v.ParseListQuery(url.Values{})
	require.NoError(t, err)
	assert.Equal(t, job.Query{Page: job.DefaultPage, Limit: job.DefaultLimit}, q)
}

func TestParseListQuery_Valid(t *testing.T) {
	v := New()

	q, err := v.ParseListQuery(url.Values{
		"title":    {"  react "},
		"location": {"Tel Aviv"},
		"page":     {"2"},
		"limit":    {" 100 "},
		"sort":     {"ignored"},
	})
	require.NoError(t, err)
	assert.Equal(t, job.Query{Title: "react", Location: "Tel Aviv", Page: 2, Limit: 100}, q)
}

func TestParseListQuery_NumericCoercion(t *testing.T) {
	v := New()

	q, err := v.ParseListQuery(url.Values{"page": {"3.0"}, "limit": {"1e1"}})
	require.NoError(t, err)
	assert.Equal(t, 3, q.Page)
	assert.Equal(t, 10, q.Limit)
}

func TestParseListQuery_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		values url.Values
		fields map[string][]string
	}{
		{"non numeric page", url.Values{"page": {"abc"}}, map[string][]string{"page": {"Expected number, received nan"}}},
		{"fractional limit", url.Values{"limit": {"2.5"}}, map[string][]string{"limit": {"Expected integer, received float"}}},
		{"zero page", url.Values{"page": {"0"}}, map[string][]string{"page": {"Number must be greater than 0"}}},
		{"negative limit", url.Values{"limit": {"-5"}}, map[string][]string{"limit": {"Number must be greater than 0"}}},
		{"empty page", url.Values{"page": {""}}, map[string][]string{"page": {"Number must be greater than 0"}}},
		{"limit over max", url.Values{"limit": {"101"}}, map[string][]string{"limit": {"Number must be less than or equal to 100"}}},
		{"huge limit", url.Values{"limit": {"1e400"}}, map[string][]string{"limit": {"Expected integer, received float"}}},
		{"repeated title", url.Values{"title": {"a", "b"}}, map[string][]string{"title": {"Expected string, received array"}}},
		{
			"several fields",
			url.Values{"page": {"x"}, "limit": {"500"}},
			map[string][]string{
				"page":  {"Expected number, received nan"},
				"limit": {"Number must be less than or equal to 100"},
			},
		},
	}

	v := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := v.ParseListQuery(tt.values)
			details := requireValidationError(t, err, "Invalid query parameters")
			assert.Equal(t, tt.fields, details.FieldErrors)
		})
	}
}
