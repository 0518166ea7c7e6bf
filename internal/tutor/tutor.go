// Package tutor serves course concepts and the per-mode voice mapping for the
// tutoring assistant.
package tutor

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	pkgerrors "github.com/novalabs/nova-agent-backend/pkg/errors"
	"github.com/novalabs/nova-agent-backend/pkg/jsonstore"
	"github.com/novalabs/nova-agent-backend/pkg/logger"
)

// Concept is one entry of the course content document.
type Concept struct {
	ID             string `json:"id"`
	Title          string `json:"title"`
	Summary        string `json:"summary,omitempty"`
	SampleQuestion string `json:"sample_question,omitempty"`
}

// Mode selects the interaction style and its voice.
type Mode string

const (
	ModeLearn     Mode = "learn"
	ModeQuiz      Mode = "quiz"
	ModeTeachBack Mode = "teach_back"
)

var voiceByMode = map[Mode]string{
	ModeLearn:     "en-US-matthew",
	ModeQuiz:      "en-US-alicia",
	ModeTeachBack: "en-US-ken",
}

// Service answers concept lookups and mode switches.
type Service interface {
	GetConcept(ctx context.Context, conceptID string) (*Concept, error)
	ListConcepts(ctx context.Context) []Concept
	SwitchMode(ctx context.Context, mode string) (Mode, string, error)
}

type service struct {
	path string
	logg *logger.Logger
}

// NewService builds a tutor service over the content document path.
func NewService(path string, logg *logger.Logger) (Service, error) {
	if path == "" {
		return nil, fmt.Errorf("tutor content path required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &service{path: path, logg: logg}, nil
}

// ListConcepts re-reads the content document on every call. Missing or
// unreadable content degrades to an empty list after logging.
func (s *service) ListConcepts(ctx context.Context) []Concept {
	var concepts []Concept
	if err := jsonstore.Read(s.path, &concepts); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			s.logg.Warn(s.logg.WithField(ctx, "path", s.path), "tutor content missing")
		} else {
			s.logg.Error(s.logg.WithField(ctx, "path", s.path), "failed to load tutor content", err)
		}
		return nil
	}
	return concepts
}

// GetConcept matches by id or case-insensitive title, defaulting to the first
// concept when no id is given or nothing matches.
func (s *service) GetConcept(ctx context.Context, conceptID string) (*Concept, error) {
	concepts := s.ListConcepts(ctx)
	if len(concepts) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "no course content available")
	}

	query := strings.ToLower(strings.TrimSpace(conceptID))
	if query == "" {
		return &concepts[0], nil
	}
	for idx := range concepts {
		if concepts[idx].ID == query || strings.ToLower(concepts[idx].Title) == query {
			return &concepts[idx], nil
		}
	}
	return &concepts[0], nil
}

// SwitchMode validates the requested mode and returns it with its voice.
func (s *service) SwitchMode(ctx context.Context, mode string) (Mode, string, error) {
	m := Mode(strings.ToLower(strings.TrimSpace(mode)))
	voice, ok := voiceByMode[m]
	if !ok {
		return "", "", pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("unknown mode %q", mode))
	}
	s.logg.Info(s.logg.WithField(ctx, "mode", string(m)), "tutor mode switch requested")
	return m, voice, nil
}

// VoiceForMode exposes the voice mapping for session bootstrap.
func VoiceForMode(mode Mode) (string, bool) {
	voice, ok := voiceByMode[mode]
	return voice, ok
}
