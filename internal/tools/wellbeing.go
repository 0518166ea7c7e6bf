package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/novalabs/nova-agent-backend/internal/barista"
	"github.com/novalabs/nova-agent-backend/internal/session"
	"github.com/novalabs/nova-agent-backend/internal/wellness"
)

// CoffeeOrderRequest carries the customer's next answer in the coffee flow.
type CoffeeOrderRequest struct {
	Message string `json:"message" validate:"required"`
}

// WellnessPromptRequest has no arguments.
type WellnessPromptRequest struct{}

// WellnessCheckInRequest records today's mood and goals.
type WellnessCheckInRequest struct {
	Mood  string   `json:"mood" validate:"required"`
	Goals []string `json:"goals"`
}

type baristaTools struct {
	barista barista.Service
}

// RegisterBarista wires the coffee-order tool into the registry.
func RegisterBarista(r *Registry, svc barista.Service) error {
	if r == nil {
		return fmt.Errorf("registry required")
	}
	if svc == nil {
		return fmt.Errorf("barista service required")
	}
	bt := &baristaTools{barista: svc}
	return r.Register("coffee_order", newTool(bt.coffeeOrder))
}

func (bt *baristaTools) coffeeOrder(ctx context.Context, sess *session.State, req *CoffeeOrderRequest) (string, error) {
	return bt.barista.HandleMessage(ctx, sess.Coffee(), req.Message)
}

type wellnessTools struct {
	journal wellness.Journal
}

// RegisterWellness wires the check-in tools into the registry.
func RegisterWellness(r *Registry, journal wellness.Journal) error {
	if r == nil {
		return fmt.Errorf("registry required")
	}
	if journal == nil {
		return fmt.Errorf("wellness journal required")
	}
	wt := &wellnessTools{journal: journal}
	if err := r.Register("wellness_prompt", newTool(wt.prompt)); err != nil {
		return err
	}
	return r.Register("wellness_checkin", newTool(wt.checkIn))
}

func (wt *wellnessTools) prompt(ctx context.Context, sess *session.State, req *WellnessPromptRequest) (string, error) {
	return wt.journal.Prompt(ctx), nil
}

func (wt *wellnessTools) checkIn(ctx context.Context, sess *session.State, req *WellnessCheckInRequest) (string, error) {
	entry, err := wt.journal.CheckIn(ctx, req.Mood, req.Goals)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Got it — you're feeling %s. Your goals are %s. Let's make today manageable!",
		entry.Mood, strings.Join(entry.Goals, ", ")), nil
}
