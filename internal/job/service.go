package job

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/maauso/jobboard-api/internal/job/id"
)

var tracer = otel.Tracer("github.com/maauso/jobboard-api/internal/job")

// Service exposes the job board use cases on top of a Repository.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new Service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// CreateJob stores a new job posting built from validated fields.
func (s *Service) CreateJob(ctx context.Context, fields Fields) (*Job, error) {
	ctx, span := tracer.Start(ctx, "job.CreateJob")
	defer span.End()

	job, err := s.repo.Create(ctx, fields)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "create failed")
		s.logger.Error("failed to save job",
			slog.String("title", fields.Title),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("create job: %w", err)
	}

	span.SetAttributes(attribute.String("job.id", job.ID))
	s.logger.Info("job created",
		slog.String("job_id", job.ID),
		slog.String("title", job.Title),
		slog.String("company", job.Company),
		slog.String("location", job.Location),
	)
	return job, nil
}

// ListJobs returns one page of jobs matching q.
func (s *Service) ListJobs(ctx context.Context, q Query) (Page, error) {
	ctx, span := tracer.Start(ctx, "job.ListJobs")
	defer span.End()

	q = q.Normalize()
	span.SetAttributes(
		attribute.String("query.title", q.Title),
		attribute.String("query.location", q.Location),
		attribute.Int("query.page", q.Page),
		attribute.Int("query.limit", q.Limit),
	)

	page, err := s.repo.Query(ctx, q)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "query failed")
		return Page{}, fmt.Errorf("list jobs: %w", err)
	}

	span.SetAttributes(attribute.Int("result.total", page.Total))
	s.logger.Debug("jobs listed",
		slog.Int("page", page.Page),
		slog.Int("limit", page.Limit),
		slog.Int("total", page.Total),
		slog.Int("items", len(page.Items)),
	)
	return page, nil
}

// GetJob retrieves a job by ID.
// Returns ErrJobNotFound for unknown or malformed IDs.
func (s *Service) GetJob(ctx context.Context, jobID string) (*Job, error) {
	ctx, span := tracer.Start(ctx, "job.GetJob")
	defer span.End()
	span.SetAttributes(attribute.String("job.id", jobID))

	// Every stored ID is a UUID, so anything else cannot match.
	if !id.Valid(jobID) {
		return nil, ErrJobNotFound
	}
	return s.repo.FindByID(ctx, jobID)
}
