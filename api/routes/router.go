package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/novalabs/nova-agent-backend/api/controllers"
	"github.com/novalabs/nova-agent-backend/api/middleware"
	"github.com/novalabs/nova-agent-backend/internal/session"
	"github.com/novalabs/nova-agent-backend/internal/tools"
	"github.com/novalabs/nova-agent-backend/pkg/config"
	"github.com/novalabs/nova-agent-backend/pkg/logger"
	"github.com/novalabs/nova-agent-backend/pkg/metrics"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	sessions *session.Manager,
	registry *tools.Registry,
	toolMetrics *metrics.ToolMetrics,
	gatherer prometheus.Gatherer,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg))
	})

	if gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/tools", controllers.ToolList(registry, logg))
		r.Route("/sessions", func(r chi.Router) {
			r.Post("/", controllers.SessionCreate(sessions, logg))
			r.Delete("/{sessionId}", controllers.SessionEnd(sessions, logg))
			r.Post("/{sessionId}/tools/{toolName}", controllers.ToolInvoke(registry, sessions, toolMetrics, logg))
		})
	})

	return r
}
