package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"uxstudy/internal/exitpoll"
	"uxstudy/internal/platform/metrics"
	"uxstudy/internal/platform/middleware"
	dErrors "uxstudy/pkg/domain-errors"
	"uxstudy/pkg/platform/httputil"
)

const section = "exit"

// Handler handles the exit questionnaire endpoint.
type Handler struct {
	logger  *slog.Logger
	service *exitpoll.Service
	metrics *metrics.Metrics
}

// New creates a new exit questionnaire Handler.
func New(service *exitpoll.Service, logger *slog.Logger, metrics *metrics.Metrics) *Handler {
	return &Handler{
		logger:  logger,
		service: service,
		metrics: metrics,
	}
}

// Register registers the exit questionnaire routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/exit", h.handleSubmit)
}

func (h *Handler) handleSubmit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	var req exitpoll.SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "invalid exit questionnaire request",
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
			h.logger.WarnContext(ctx, "exit submission rejected",
				"request_id", requestID,
				"error", err.Error(),
			)
			httputil.WriteError(w, err)
			return
		}
		h.logger.ErrorContext(ctx, "failed to record exit questionnaire",
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
