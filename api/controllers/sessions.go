package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/novalabs/nova-agent-backend/api/responses"
	"github.com/novalabs/nova-agent-backend/internal/session"
	pkgerrors "github.com/novalabs/nova-agent-backend/pkg/errors"
	"github.com/novalabs/nova-agent-backend/pkg/logger"
)

// SessionCreate opens a new conversation session.
func SessionCreate(manager *session.Manager, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if manager == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "session manager unavailable"))
			return
		}

		state := manager.Create()
		ctx := logg.WithSessionID(r.Context(), state.ID())
		logg.Info(ctx, "session created")

		responses.WriteSuccessStatus(w, http.StatusCreated, map[string]string{
			"session_id": state.ID(),
		})
	}
}

// SessionEnd destroys a session, discarding its cart.
func SessionEnd(manager *session.Manager, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if manager == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "session manager unavailable"))
			return
		}

		sessionID := chi.URLParam(r, "sessionId")
		if err := manager.End(sessionID); err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "session not found"))
			return
		}

		ctx := logg.WithSessionID(r.Context(), sessionID)
		logg.Info(ctx, "session ended")
		responses.WriteSuccess(w, map[string]string{"status": "ended"})
	}
}
