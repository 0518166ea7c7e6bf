package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/novalabs/nova-agent-backend/internal/session"
	"github.com/novalabs/nova-agent-backend/internal/tutor"
)

// GetConceptRequest fetches course content by id or title.
type GetConceptRequest struct {
	ConceptID string `json:"concept_id"`
}

// SwitchModeRequest changes the tutoring interaction mode.
type SwitchModeRequest struct {
	Mode string `json:"mode" validate:"required"`
}

type tutorTools struct {
	tutor tutor.Service
}

// RegisterTutor wires the tutoring tool-set into the registry.
func RegisterTutor(r *Registry, svc tutor.Service) error {
	if r == nil {
		return fmt.Errorf("registry required")
	}
	if svc == nil {
		return fmt.Errorf("tutor service required")
	}

	tt := &tutorTools{tutor: svc}
	if err := r.Register("get_concept", newTool(tt.getConcept)); err != nil {
		return err
	}
	return r.Register("switch_mode", newTool(tt.switchMode))
}

func (tt *tutorTools) getConcept(ctx context.Context, sess *session.State, req *GetConceptRequest) (string, error) {
	concept, err := tt.tutor.GetConcept(ctx, req.ConceptID)
	if err != nil {
		return "", err
	}

	parts := []string{fmt.Sprintf("%s: %s", concept.ID, concept.Title)}
	if concept.Summary != "" {
		parts = append(parts, concept.Summary)
	}
	if concept.SampleQuestion != "" {
		parts = append(parts, "Sample question: "+concept.SampleQuestion)
	}
	return strings.Join(parts, "\n"), nil
}

func (tt *tutorTools) switchMode(ctx context.Context, sess *session.State, req *SwitchModeRequest) (string, error) {
	mode, voice, err := tt.tutor.SwitchMode(ctx, req.Mode)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Switched to %s mode (voice: %s).", mode, voice), nil
}
