package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"uxstudy/internal/demographic"
	"uxstudy/internal/platform/metrics"
	"uxstudy/internal/platform/middleware"
	dErrors "uxstudy/pkg/domain-errors"
	"uxstudy/pkg/platform/httputil"
)

const section = "demographic"

// Handler handles the demographic questionnaire endpoint.
type Handler struct {
	logger  *slog.Logger
	service *demographic.Service
	metrics *metrics.Metrics
}

// New creates a new demographic Handler.
func New(service *demographic.Service, logger *slog.Logger, metrics *metrics.Metrics) *Handler {
	return &Handler{
		logger:  logger,
		service: service,
		metrics: metrics,
	}
}

// Register registers the demographic routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/demographics", h.handleSubmit)
}

func (h *Handler) handleSubmit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	var req demographic.SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "invalid demographic request",
			"request_id", requestID,
			"error", err.Error(),
		)
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}

	record, err := h.service.Submit(ctx, &req)
	if err != nil {
		if dErrors.Is(err, dErrors.CodeValidation) {
			h.metrics.IncrementValidationFailures(section)
			h.logger.WarnContext(ctx, "demographic submission rejected",
				"request_id", requestID,
				"error", err.Error(),
			)
			httputil.WriteError(w, err)
			return
		}
		h.logger.ErrorContext(ctx, "failed to record demographics",
			"request_id", requestID,
			"error", err.Error(),
		)
		httputil.WriteError(w, err)
		return
	}

	h.metrics.IncrementSubmissions(section)
	httputil.WriteJSON(w, http.StatusCreated, map[string]string{
		"timestamp": record.Timestamp,
	})
}
