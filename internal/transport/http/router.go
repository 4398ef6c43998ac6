// Package httptransport assembles the HTTP surface: middleware chain, section
// routers, report, and operational endpoints. Business logic stays in the
// section services; this package only wires.
package httptransport

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"uxstudy/internal/platform/metrics"
	"uxstudy/internal/platform/middleware"
	"uxstudy/internal/study"
	"uxstudy/pkg/platform/httputil"
)

// SectionHandler is anything that can register its routes on the router.
type SectionHandler interface {
	Register(r chi.Router)
}

// NewRouter wires all endpoints behind the shared middleware chain.
func NewRouter(logger *slog.Logger, m *metrics.Metrics, handlers ...SectionHandler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RequestID)
	r.Use(middleware.RequestTime)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(middleware.ContentTypeJSON)
	r.Use(middleware.LatencyMiddleware(m))

	r.Get("/", handleHome)
	r.Get("/healthz", handleHealthz)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	for _, h := range handlers {
		h.Register(r)
	}
	return r
}

func handleHome(w http.ResponseWriter, _ *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, study.Current())
}

func handleHealthz(w http.ResponseWriter, _ *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
