// Package bootstrap provides dependency initialization for the job board API.
package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/maauso/jobboard-api/internal/config"
	"github.com/maauso/jobboard-api/internal/job"
	"github.com/maauso/jobboard-api/internal/snapshot"
	"github.com/maauso/jobboard-api/internal/storage"
	"github.com/maauso/jobboard-api/internal/telemetry"
)

// Dependencies holds all initialized dependencies for the HTTP server.
type Dependencies struct {
	Repository *job.MemoryRepository
	JobService *job.Service
	// Exporter is nil when SNAPSHOT_ON_SHUTDOWN is disabled.
	Exporter *snapshot.Exporter
	// ShutdownTracer flushes spans; always non-nil.
	ShutdownTracer telemetry.ShutdownFunc
}

// NewDependencies creates and initializes all dependencies for the application.
func NewDependencies(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Dependencies, error) {
	// Initialize tracing
	shutdownTracer, err := telemetry.InitTracer(ctx, cfg.ServiceName, cfg.OTLPEndpoint)
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}
	if cfg.TracingEnabled() {
		logger.Info("tracing configured",
			slog.String("endpoint", cfg.OTLPEndpoint),
			slog.String("service_name", cfg.ServiceName),
		)
	}

	// Initialize job repository and service
	repo := job.NewMemoryRepository()
	svc := job.NewService(repo, logger)

	deps := &Dependencies{
		Repository:     repo,
		JobService:     svc,
		ShutdownTracer: shutdownTracer,
	}

	if !cfg.SnapshotOnShutdown {
		return deps, nil
	}

	// Initialize snapshot storage
	store, err := initStorage(ctx, cfg, logger)
	if err != nil {
		_ = shutdownTracer(ctx)
		return nil, err
	}
	deps.Exporter = snapshot.NewExporter(repo, store, logger)

	return deps, nil
}

// initStorage creates the appropriate storage backend based on configuration.
func initStorage(ctx context.Context, cfg *config.Config, logger *slog.Logger) (storage.Storage, error) {
	if cfg.S3Enabled() {
		s3Cfg := storage.S3Config{
			Bucket:          cfg.S3Bucket,
			Region:          cfg.S3Region,
			Endpoint:        cfg.S3Endpoint,
			AccessKeyID:     cfg.AWSAccessKeyID,
			SecretAccessKey: cfg.AWSSecretAccessKey,
		}
		s3Store, err := storage.NewS3Storage(ctx, s3Cfg)
		if err != nil {
			return nil, fmt.Errorf("create S3 storage: %w", err)
		}
		logger.Info("S3 snapshot storage configured",
			slog.String("bucket", cfg.S3Bucket),
			slog.String("region", cfg.S3Region),
		)
		return s3Store, nil
	}

	localStore, err := storage.NewLocalStorage(cfg.SnapshotDir)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}
	logger.Info("local snapshot storage configured",
		slog.String("dir", cfg.SnapshotDir),
	)
	return localStore, nil
}
