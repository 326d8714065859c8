// Package snapshot exports the job board contents to a storage backend.
package snapshot

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/maauso/jobboard-api/internal/job"
	"github.com/maauso/jobboard-api/internal/storage"
)

const (
	keyTimeFormat      = "20060102T150405.000Z"
	postedAtTimeFormat = "2006-01-02T15:04:05.000Z07:00"
)

var tracer = otel.Tracer("github.com/maauso/jobboard-api/internal/snapshot")

// Source lists the jobs to export.
type Source interface {
	List(ctx context.Context) ([]job.Job, error)
}

// Document is the exported file layout.
type Document struct {
	ExportedAt string   `json:"exportedAt"`
	Count      int      `json:"count"`
	Jobs       []Record `json:"jobs"`
}

// Record is one exported job.
type Record struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	PostedAt    string `json:"postedAt"`
}

// Exporter writes point-in-time snapshots of a job Source to Storage.
type Exporter struct {
	source Source
	store  storage.Storage
	logger *slog.Logger
	now    func() time.Time
}

// Option configures an Exporter.
type Option func(*Exporter)

// WithClock overrides the time source used for exportedAt and the key.
func WithClock(now func() time.Time) Option {
	return func(e *Exporter) {
		e.now = now
	}
}

// NewExporter creates a new Exporter.
func NewExporter(source Source, store storage.Storage, logger *slog.Logger, opts ...Option) *Exporter {
	if logger == nil {
		logger = slog.Default()
	}
	e := &Exporter{
		source: source,
		store:  store,
		logger: logger,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Export writes every job, newest first, as jobs-<UTC timestamp>.json and
// returns the storage location.
func (e *Exporter) Export(ctx context.Context) (string, error) {
	ctx, span := tracer.Start(ctx, "snapshot.Export")
	defer span.End()

	jobs, err := e.source.List(ctx)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return "", fmt.Errorf("list jobs: %w", err)
	}

	now := e.now().UTC()
	doc := Document{
		ExportedAt: now.Format(postedAtTimeFormat),
		Count:      len(jobs),
		Jobs:       make([]Record, len(jobs)),
	}
	for i, j := range jobs {
		doc.Jobs[i] = Record{
			ID:          j.ID,
			Title:       j.Title,
			Description: j.Description,
			Company:     j.Company,
			Location:    j.Location,
			PostedAt:    j.PostedAt.UTC().Format(postedAtTimeFormat),
		}
	}

	data, err := json.Marshal(doc)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return "", fmt.Errorf("encode snapshot: %w", err)
	}

	key := Key(now)
	location, err := e.store.Put(ctx, key, bytes.NewReader(data))
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return "", fmt.Errorf("store snapshot: %w", err)
	}

	span.SetAttributes(
		attribute.Int("snapshot.count", doc.Count),
		attribute.String("snapshot.location", location),
	)
	e.logger.Info("snapshot exported",
		slog.Int("count", doc.Count),
		slog.String("location", location),
	)
	return location, nil
}

// Key returns the object key for a snapshot taken at t.
func Key(t time.Time) string {
	return "jobs-" + t.UTC().Format(keyTimeFormat) + ".json"
}
