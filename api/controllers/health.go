package controllers

import (
	"net/http"
	"os"

	"github.com/novalabs/nova-agent-backend/api/responses"
	"github.com/novalabs/nova-agent-backend/pkg/config"
	pkgerrors "github.com/novalabs/nova-agent-backend/pkg/errors"
	"github.com/novalabs/nova-agent-backend/pkg/logger"
)

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Nova-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady verifies the data directory is reachable, since every store
// persists there.
func HealthReady(cfg *config.Config, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Nova-Env", cfg.App.Env)

		if err := os.MkdirAll(cfg.Storage.DataDir, 0o755); err != nil {
			responses.WriteError(r.Context(), logg, w,
				pkgerrors.Wrap(pkgerrors.CodeDependency, err, "data directory unavailable"))
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "ready"})
	}
}
