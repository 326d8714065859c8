package job

import "strings"

// Pagination defaults and bounds.
const (
	// DefaultPage is the page returned when none is requested.
	DefaultPage = 1
	// DefaultLimit is the page size used when none is requested.
	DefaultLimit = 10
	// MaxLimit is the largest page size a caller may request.
	MaxLimit = 100
)

// Query holds listing filters and paging parameters.
// Zero Page or Limit means "use the default".
type Query struct {
	// Title filters by case-insensitive substring of the job title.
	Title string
	// Location filters by case-insensitive substring of the job location.
	Location string
	// Page is the 1-based page number.
	Page int
	// Limit is the maximum number of items per page.
	Limit int
}

// Normalize returns a copy of q with defaults applied and Limit clamped
// to [1, MaxLimit].
func (q Query) Normalize() Query {
	if q.Page < 1 {
		q.Page = DefaultPage
	}
	switch {
	case q.Limit < 1:
		q.Limit = DefaultLimit
	case q.Limit > MaxLimit:
		q.Limit = MaxLimit
	}
	return q
}

// Page is one page of listing results plus pagination metadata.
type Page struct {
	Page       int
	Limit      int
	Total      int
	TotalPages int
	Items      []Job
}

// FilterAndPaginate narrows jobs by the query filters and returns the
// requested page. The order of jobs is preserved. A page past the end
// yields an empty Items slice, never nil.
func FilterAndPaginate(jobs []Job, q Query) Page {
	q = q.Normalize()

	title := strings.ToLower(q.Title)
	location := strings.ToLower(q.Location)

	matched := make([]Job, 0, len(jobs))
	for _, j := range jobs {
		if title != "" && !strings.Contains(strings.ToLower(j.Title), title) {
			continue
		}
		if location != "" && !strings.Contains(strings.ToLower(j.Location), location) {
			continue
		}
		matched = append(matched, j)
	}

	total := len(matched)
	page := Page{
		Page:       q.Page,
		Limit:      q.Limit,
		Total:      total,
		TotalPages: (total + q.Limit - 1) / q.Limit,
		Items:      []Job{},
	}

	// Compare pages rather than offsets so a huge page number cannot overflow.
	if q.Page > page.TotalPages {
		return page
	}
	start := (q.Page - 1) * q.Limit
	end := min(start+q.Limit, total)
	page.Items = matched[start:end]
	return page
}
