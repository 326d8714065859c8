package server

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/maauso/jobboard-api/internal/apperr"
	"github.com/maauso/jobboard-api/internal/job"
	"github.com/maauso/jobboard-api/internal/validation"
)

// Handlers contains the HTTP handlers for the API.
type Handlers struct {
	service   *job.Service
	validator *validation.Validator
	logger    *slog.Logger
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(service *job.Service, logger *slog.Logger) *Handlers {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handlers{
		service:   service,
		validator: validation.New(),
		logger:    logger,
	}
}

// Health handles GET /health requests.
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}

// CreateJob handles POST /api/jobs requests.
func (h *Handlers) CreateJob(w http.ResponseWriter, r *http.Request) {
	fields, err := h.validator.DecodeCreateJob(r.Body)
	if err != nil {
		h.writeAppError(w, r, err, "Failed to create job")
		return
	}

	created, err := h.service.CreateJob(r.Context(), fields)
	if err != nil {
		h.writeAppError(w, r, err, "Failed to create job")
		return
	}

	writeJSON(w, http.StatusCreated, newJobResponse(created))
}

// ListJobs handles GET /api/jobs requests.
func (h *Handlers) ListJobs(w http.ResponseWriter, r *http.Request) {
	q, err := h.validator.ParseListQuery(r.URL.Query())
	if err != nil {
		h.writeAppError(w, r, err, "Failed to fetch jobs")
		return
	}

	page, err := h.service.ListJobs(r.Context(), q)
	if err != nil {
		h.writeAppError(w, r, err, "Failed to fetch jobs")
		return
	}

	writeJSON(w, http.StatusOK, newListJobsResponse(page))
}

// GetJob handles GET /api/jobs/{id} requests.
func (h *Handlers) GetJob(w http.ResponseWriter, r *http.Request) {
	jobID := r.PathValue("id")

	found, err := h.service.GetJob(r.Context(), jobID)
	if err != nil {
		h.writeAppError(w, r, err, "Failed to fetch job")
		return
	}

	writeJSON(w, http.StatusOK, newJobResponse(found))
}

// NotFound handles every request that matches no other route.
func (h *Handlers) NotFound(w http.ResponseWriter, r *http.Request) {
	msg := fmt.Sprintf("Route not found: %s %s", r.Method, r.URL.RequestURI())
	h.writeAppError(w, r, apperr.NotFound(msg), "")
}

// writeAppError converts err into an error response. Every handler failure
// goes through here; fallback is the client message for unexpected errors.
func (h *Handlers) writeAppError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	appErr := apperr.From(err, fallback)

	switch appErr.Kind {
	case apperr.KindInternal:
		h.logger.Error("request failed",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("error", appErr.Error()),
			slog.String("stack", string(appErr.Stack)),
		)
	case apperr.KindNotFound:
		h.logger.Debug("not found",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
		)
	default:
		h.logger.Warn("request rejected",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("error", appErr.Error()),
		)
	}

	writeError(w, appErr.Status(), appErr.Message, appErr.Details)
}

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode JSON response", slog.String("error", err.Error()))
	}
}

// writeError writes an error response in the standard format.
func writeError(w http.ResponseWriter, status int, message string, details *apperr.Details) {
	writeJSON(w, status, ErrorResponse{
		Error:   message,
		Details: details,
	})
}
