// Package server provides the HTTP server for the job board API.
// It includes handlers, middleware, routes, and DTOs separated from domain types.
package server

import (
	"github.com/maauso/jobboard-api/internal/apperr"
	"github.com/maauso/jobboard-api/internal/job"
)

// postedAtFormat renders timestamps as ISO-8601 UTC with millisecond precision.
const postedAtFormat = "2006-01-02T15:04:05.000Z07:00"

// JobResponse is the HTTP representation of a job posting.
type JobResponse struct {
	// ID is the unique identifier for the job.
	ID string `json:"id"`
	// Title is the job title.
	Title string `json:"title"`
	// Description is a short description of the role.
	Description string `json:"description"`
	// Company is the hiring company, possibly empty.
	Company string `json:"company"`
	// Location is where the job is based, possibly empty.
	Location string `json:"location"`
	// PostedAt is the creation time in ISO-8601 format.
	PostedAt string `json:"postedAt"`
}

// ListJobsResponse is the HTTP response for a page of jobs.
type ListJobsResponse struct {
	Page       int           `json:"page"`
	Limit      int           `json:"limit"`
	Total      int           `json:"total"`
	TotalPages int           `json:"totalPages"`
	Items      []JobResponse `json:"items"`
}

// ErrorResponse is the standard error response format.
type ErrorResponse struct {
	// Error is the human-readable error message.
	Error string `json:"error"`
	// Details is the field-level breakdown of a validation failure.
	Details *apperr.Details `json:"details,omitempty"`
}

// HealthResponse is the HTTP response for the health check endpoint.
type HealthResponse struct {
	// Status is the health status of the service.
	Status string `json:"status"`
}

func newJobResponse(j *job.Job) JobResponse {
	return JobResponse{
		ID:          j.ID,
		Title:       j.Title,
		Description: j.Description,
		Company:     j.Company,
		Location:    j.Location,
		PostedAt:    j.PostedAt.UTC().Format(postedAtFormat),
	}
}

func newListJobsResponse(p job.Page) ListJobsResponse {
	items := make([]JobResponse, len(p.Items))
	for i := range p.Items {
		items[i] = newJobResponse(&p.Items[i])
	}
	return ListJobsResponse{
		Page:       p.Page,
		Limit:      p.Limit,
		Total:      p.Total,
		TotalPages: p.TotalPages,
		Items:      items,
	}
}
