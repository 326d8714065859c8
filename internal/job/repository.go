package job

import (
	"context"
	"errors"
)

// ErrJobNotFound is returned when a job cannot be found by ID.
var ErrJobNotFound = errors.New("job not found")

// Repository defines the interface for job storage.
// It acts as a port in the hexagonal architecture pattern.
type Repository interface {
	// Create stores a new job built from fields and returns it.
	// The newest job is always first in listings.
	Create(ctx context.Context, fields Fields) (*Job, error)

	// Query filters and paginates the stored jobs.
	Query(ctx context.Context, q Query) (Page, error)

	// FindByID retrieves a job by its unique identifier.
	// Returns ErrJobNotFound if the job does not exist.
	FindByID(ctx context.Context, id string) (*Job, error)

	// List returns all jobs, newest first.
	List(ctx context.Context) ([]Job, error)
}
