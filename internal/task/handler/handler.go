package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"uxstudy/internal/platform/metrics"
	"uxstudy/internal/platform/middleware"
	"uxstudy/internal/task"
	dErrors "uxstudy/pkg/domain-errors"
	"uxstudy/pkg/platform/httputil"
)

const section = "task"

// Handler handles the task catalog, timer, and result endpoints.
type Handler struct {
	logger  *slog.Logger
	service *task.Service
	metrics *metrics.Metrics
}

// New creates a new task Handler.
func New(service *task.Service, logger *slog.Logger, metrics *metrics.Metrics) *Handler {
	return &Handler{
		logger:  logger,
		service: service,
		metrics: metrics,
	}
}

// Register registers the task routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/tasks", h.handleCatalog)
	r.Post("/tasks", h.handleSubmit)
	r.Post("/tasks/timer/start", h.handleTimerStart)
	r.Post("/tasks/timer/stop", h.handleTimerStop)
}

func (h *Handler) handleCatalog(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, map[string]any{"tasks": task.Catalog()})
}

func (h *Handler) handleTimerStart(w http.ResponseWriter, r *http.Request) {
	session := h.service.StartTimer(r.Context())
	httputil.WriteJSON(w, http.StatusCreated, map[string]string{
		"session_id": session.ID,
	})
}

type timerStopRequest struct {
	SessionID string `json:"session_id"`
}

func (h *Handler) handleTimerStop(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	var req timerStopRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}
	if req.SessionID == "" {
		httputil.WriteError(w, dErrors.New(dErrors.CodeValidation, "session_id is required"))
		return
	}

	session, err := h.service.StopTimer(ctx, req.SessionID)
	if err != nil {
		h.logger.WarnContext(ctx, "timer stop failed",
			"request_id", requestID,
			"session_id", req.SessionID,
			"error", err.Error(),
		)
		httputil.WriteError(w, err)
		return
	}

	seconds, _ := session.Elapsed()
	httputil.WriteJSON(w, http.StatusOK, map[string]any{
		"session_id":       session.ID,
		"duration_seconds": seconds,
	})
}

func (h *Handler) handleSubmit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	var req task.SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "invalid task request",
			"request_id", requestID,
			"error", err.Error(),
		)
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}

	record, err := h.service.Submit(ctx, &req)
	if err != nil {
		switch {
		case dErrors.Is(err, dErrors.CodeValidation):
			h.metrics.IncrementValidationFailures(section)
			h.logger.WarnContext(ctx, "task submission rejected",
				"request_id", requestID,
				"error", err.Error(),
			)
		case dErrors.Is(err, dErrors.CodeNotFound):
			h.logger.WarnContext(ctx, "task submission referenced unknown timer session",
				"request_id", requestID,
				"error", err.Error(),
			)
		default:
			h.logger.ErrorContext(ctx, "failed to record task result",
				"request_id", requestID,
				"error", err.Error(),
			)
		}
		httputil.WriteError(w, err)
		return
	}

	h.metrics.IncrementSubmissions(section)
	httputil.WriteJSON(w, http.StatusCreated, map[string]string{
		"timestamp":        record.Timestamp,
		"duration_seconds": record.DurationSeconds,
	})
}
