// Package job provides the Job entity for the job board, the in-memory
// repository that owns every posting, and the query engine used to filter
// and paginate listings.
package job

import (
	"strings"
	"time"

	"github.com/maauso/jobboard-api/internal/job/id"
)

// Job represents a single job posting.
// Jobs are immutable once created; the repository hands out copies.
type Job struct {
	// ID is the unique identifier assigned at creation.
	ID string
	// Title is the job title. Never empty.
	Title string
	// Description is a short description of the role. Never empty.
	Description string
	// Company is the hiring company, or "" when not supplied.
	Company string
	// Location is where the job is based, or "" when not supplied.
	Location string
	// PostedAt is when the job was created.
	PostedAt time.Time
}

// Fields contains the caller-supplied attributes of a new job.
// Values are expected to be validated already.
type Fields struct {
	Title       string
	Description string
	Company     string
	Location    string
}

// New creates a new Job from the given fields with a generated ID
// and PostedAt set to the current time.
func New(f Fields) *Job {
	return NewWithID(id.Generate(), f)
}

// NewWithID creates a new Job with the specified ID.
// Useful for testing or when the ID needs to be externally generated.
func NewWithID(jobID string, f Fields) *Job {
	return &Job{
		ID:          jobID,
		Title:       strings.TrimSpace(f.Title),
		Description: strings.TrimSpace(f.Description),
		Company:     strings.TrimSpace(f.Company),
		Location:    strings.TrimSpace(f.Location),
		PostedAt:    time.Now().UTC(),
	}
}

// Clone returns a copy of the job for safe reads.
func (j *Job) Clone() *Job {
	c := *j
	return &c
}
