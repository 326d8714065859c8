package job

import (
	"context"
	"sync"
)

// Compile-time check that MemoryRepository implements Repository.
var _ Repository = (*MemoryRepository)(nil)

// MemoryRepository is an in-memory implementation of Repository.
// Jobs are kept in insertion order behind an RWMutex; reads walk the
// slice backwards so the most recently created job comes first.
// Contents are lost when the process exits.
type MemoryRepository struct {
	mu   sync.RWMutex
	jobs []Job
}

// NewMemoryRepository creates a new, empty in-memory job repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		jobs: make([]Job, 0),
	}
}

// Create builds a job from fields, stores it and returns a copy.
func (r *MemoryRepository) Create(_ context.Context, fields Fields) (*Job, error) {
	job := New(fields)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.jobs = append(r.jobs, *job)
	return job.Clone(), nil
}

// Query runs FilterAndPaginate over a newest-first snapshot.
func (r *MemoryRepository) Query(_ context.Context, q Query) (Page, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return FilterAndPaginate(r.newestFirst(), q), nil
}

// FindByID retrieves a job by its ID.
// Returns a clone to prevent external mutations.
func (r *MemoryRepository) FindByID(_ context.Context, id string) (*Job, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.jobs {
		if r.jobs[i].ID == id {
			return r.jobs[i].Clone(), nil
		}
	}
	return nil, ErrJobNotFound
}

// List returns all jobs in the repository, newest first.
func (r *MemoryRepository) List(_ context.Context) ([]Job, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.newestFirst(), nil
}

// Len returns the number of stored jobs.
func (r *MemoryRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.jobs)
}

// Reset removes every job. It is meant for tests and administrative
// tooling and is not reachable over HTTP.
func (r *MemoryRepository) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.jobs = make([]Job, 0)
}

// newestFirst copies the stored jobs in reverse insertion order.
// Callers must hold r.mu.
func (r *MemoryRepository) newestFirst() []Job {
	out := make([]Job, len(r.jobs))
	for i, j := range r.jobs {
		out[len(r.jobs)-1-i] = j
	}
	return out
}
