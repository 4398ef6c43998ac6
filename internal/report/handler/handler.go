package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"uxstudy/internal/platform/metrics"
	"uxstudy/internal/platform/middleware"
	"uxstudy/internal/report"
	"uxstudy/pkg/platform/httputil"
)

// Handler handles the aggregated report endpoint.
type Handler struct {
	logger  *slog.Logger
	service *report.Service
	metrics *metrics.Metrics
}

// New creates a new report Handler.
func New(service *report.Service, logger *slog.Logger, metrics *metrics.Metrics) *Handler {
	return &Handler{
		logger:  logger,
		service: service,
		metrics: metrics,
	}
}

// Register registers the report routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/report", h.handleReport)
}

func (h *Handler) handleReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	rpt, err := h.service.Build(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to build report",
			"request_id", middleware.GetRequestID(ctx),
			"error", err.Error(),
		)
		httputil.WriteError(w, err)
		return
	}

	h.metrics.IncrementReportRequests()
	httputil.WriteJSON(w, http.StatusOK, rpt)
}
