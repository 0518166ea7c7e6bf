package controllers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/novalabs/nova-agent-backend/api/responses"
	"github.com/novalabs/nova-agent-backend/api/validators"
	"github.com/novalabs/nova-agent-backend/internal/session"
	"github.com/novalabs/nova-agent-backend/internal/tools"
	pkgerrors "github.com/novalabs/nova-agent-backend/pkg/errors"
	"github.com/novalabs/nova-agent-backend/pkg/logger"
	"github.com/novalabs/nova-agent-backend/pkg/metrics"
	"github.com/novalabs/nova-agent-backend/pkg/types"
)

// ToolInvoke dispatches a tool call for a session. Arguments arrive as a JSON
// body, are validated against the tool's request type, and the result comes
// back as a single human-readable string.
func ToolInvoke(registry *tools.Registry, manager *session.Manager, toolMetrics *metrics.ToolMetrics, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if registry == nil || manager == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "tool adapter unavailable"))
			return
		}

		sessionID := chi.URLParam(r, "sessionId")
		state, ok := manager.Get(sessionID)
		if !ok {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "session not found"))
			return
		}

		toolName := chi.URLParam(r, "toolName")
		handler, ok := registry.Get(toolName)
		if !ok {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "unknown tool"))
			return
		}

		ctx := logg.WithSessionID(r.Context(), sessionID)
		ctx = logg.WithTool(ctx, toolName)

		req := handler.NewRequest()
		if err := validators.DecodeJSONBody(r, req); err != nil {
			toolMetrics.IncFailure(toolName)
			responses.WriteError(ctx, logg, w, err)
			return
		}

		start := time.Now()
		result, err := handler.Invoke(ctx, state, req)
		toolMetrics.ObserveDuration(toolName, time.Since(start))
		if err != nil {
			toolMetrics.IncFailure(toolName)
			responses.WriteError(ctx, logg, w, err)
			return
		}

		toolMetrics.IncSuccess(toolName)
		logg.Info(ctx, "tool invoked")
		responses.WriteSuccess(w, types.ToolResult{Result: result})
	}
}

// ToolList enumerates the registered tools.
func ToolList(registry *tools.Registry, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if registry == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "tool adapter unavailable"))
			return
		}
		responses.WriteSuccess(w, map[string][]string{"tools": registry.Names()})
	}
}
