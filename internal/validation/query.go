package validation

import (
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/maauso/jobboard-api/internal/apperr"
	"github.com/maauso/jobboard-api/internal/job"
)

// ListJobsQuery is the listing query schema. Page and Limit are coerced
// from text and default to job.DefaultPage and job.DefaultLimit.
type ListJobsQuery struct {
	Title    string `json:"title"`
	Location string `json:"location"`
	Page     int    `json:"page" validate:"gt=0"`
	Limit    int    `json:"limit" validate:"gt=0,lte=100"`
}

// ParseListQuery validates listing query parameters.
// It returns an *apperr.Error of kind validation when a parameter is rejected.
func (v *Validator) ParseListQuery(values url.Values) (job.Query, error) {
	details := apperr.NewDetails()

	q := ListJobsQuery{
		Title:    textParam(values, "title", details),
		Location: textParam(values, "location", details),
		Page:     intParam(values, "page", job.DefaultPage, details),
		Limit:    intParam(values, "limit", job.DefaultLimit, details),
	}

	if err := v.check(q, details); err != nil {
		return job.Query{}, apperr.Internal("Failed to fetch jobs", err)
	}
	if !details.Empty() {
		return job.Query{}, apperr.Validation("Invalid query parameters", details)
	}

	return job.Query{
		Title:    q.Title,
		Location: q.Location,
		Page:     q.Page,
		Limit:    q.Limit,
	}, nil
}

// textParam returns the trimmed value of an optional text parameter.
func textParam(values url.Values, name string, details *apperr.Details) string {
	vals, ok := values[name]
	if !ok || len(vals) == 0 {
		return ""
	}
	if len(vals) > 1 {
		details.AddField(name, "Expected string, received array")
		return ""
	}
	return strings.TrimSpace(vals[0])
}

// intParam coerces an optional numeric parameter. An empty value coerces
// to 0 and is then rejected by the range rules.
func intParam(values url.Values, name string, def int, details *apperr.Details) int {
	vals, ok := values[name]
	if !ok || len(vals) == 0 {
		return def
	}
	if len(vals) > 1 {
		details.AddField(name, "Expected number, received nan")
		return def
	}

	s := strings.TrimSpace(vals[0])
	if s == "" {
		return 0
	}

	f, err := strconv.ParseFloat(s, 64)
	// Out-of-range input comes back as ±Inf with an error.
	if (err != nil && !math.IsInf(f, 0)) || math.IsNaN(f) {
		details.AddField(name, "Expected number, received nan")
		return def
	}
	if math.IsInf(f, 0) || f != math.Trunc(f) {
		details.AddField(name, "Expected integer, received float")
		return def
	}

	// Clamp so the int conversion is well defined; anything this large is
	// past the last page or over the limit bound anyway.
	f = math.Max(math.Min(f, math.MaxInt32), math.MinInt32)
	return int(f)
}
