// Package tools is the adapter boundary between the conversational runtime
// and the domain services. Every tool takes validated primitive arguments and
// answers with a short human-readable string, the only channel the runtime
// understands.
package tools

import (
	"context"
	"fmt"
	"sort"

	"github.com/novalabs/nova-agent-backend/internal/session"
	pkgerrors "github.com/novalabs/nova-agent-backend/pkg/errors"
)

// Handler decodes and runs a single tool. NewRequest returns a fresh request
// DTO for the boundary to decode into; Invoke runs the tool against the
// session.
type Handler interface {
	NewRequest() any
	Invoke(ctx context.Context, sess *session.State, req any) (string, error)
}

// Registry maps tool names to handlers.
type Registry struct {
	tools map[string]Handler
}

func NewRegistry() *Registry {
	return &Registry{tools: make(map[string]Handler)}
}

// Register adds a named tool. Re-registering a name is a wiring bug.
func (r *Registry) Register(name string, handler Handler) error {
	if name == "" {
		return fmt.Errorf("tool name required")
	}
	if handler == nil {
		return fmt.Errorf("handler required for tool %q", name)
	}
	if _, exists := r.tools[name]; exists {
		return fmt.Errorf("tool %q already registered", name)
	}
	r.tools[name] = handler
	return nil
}

// Get looks up a tool by name.
func (r *Registry) Get(name string) (Handler, bool) {
	handler, ok := r.tools[name]
	return handler, ok
}

// Names lists the registered tools in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.tools))
	for name := range r.tools {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

type tool[T any] struct {
	fn func(ctx context.Context, sess *session.State, req *T) (string, error)
}

// newTool adapts a typed tool function into a Handler.
func newTool[T any](fn func(ctx context.Context, sess *session.State, req *T) (string, error)) Handler {
	return tool[T]{fn: fn}
}

func (t tool[T]) NewRequest() any {
	return new(T)
}

func (t tool[T]) Invoke(ctx context.Context, sess *session.State, req any) (string, error) {
	typed, ok := req.(*T)
	if !ok {
		return "", pkgerrors.New(pkgerrors.CodeInternal, "tool request type mismatch")
	}
	return t.fn(ctx, sess, typed)
}
