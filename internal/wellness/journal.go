// Package wellness keeps the daily check-in journal.
package wellness

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	pkgerrors "github.com/novalabs/nova-agent-backend/pkg/errors"
	"github.com/novalabs/nova-agent-backend/pkg/jsonstore"
	"github.com/novalabs/nova-agent-backend/pkg/logger"
)

// Entry is one recorded check-in.
type Entry struct {
	Timestamp string   `json:"timestamp"`
	Mood      string   `json:"mood"`
	Goals     []string `json:"goals"`
	Summary   string   `json:"summary"`
}

// Journal appends check-ins to a JSON-array document and builds the opening
// prompt from the most recent entry.
type Journal interface {
	Load(ctx context.Context) ([]Entry, error)
	CheckIn(ctx context.Context, mood string, goals []string) (*Entry, error)
	Prompt(ctx context.Context) string
}

type journal struct {
	path string
	logg *logger.Logger
	now  func() time.Time
}

// NewJournal builds a journal over the given document path.
func NewJournal(path string, logg *logger.Logger) (Journal, error) {
	if path == "" {
		return nil, fmt.Errorf("wellness log path required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &journal{
		path: path,
		logg: logg,
		now:  func() time.Time { return time.Now().UTC() },
	}, nil
}

// Load returns every entry. A missing document is an empty journal; a corrupt
// one is reported as a persistence error.
func (j *journal) Load(ctx context.Context) ([]Entry, error) {
	var entries []Entry
	if err := jsonstore.Read(j.path, &entries); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodePersistence, err, "wellness log unavailable")
	}
	return entries, nil
}

// CheckIn validates and appends a new entry, rewriting the whole document.
func (j *journal) CheckIn(ctx context.Context, mood string, goals []string) (*Entry, error) {
	mood = strings.TrimSpace(mood)
	if mood == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "mood is required")
	}
	cleaned := make([]string, 0, len(goals))
	for _, goal := range goals {
		if goal = strings.TrimSpace(goal); goal != "" {
			cleaned = append(cleaned, goal)
		}
	}

	entry := Entry{
		Timestamp: j.now().Format(time.RFC3339),
		Mood:      mood,
		Goals:     cleaned,
		Summary:   fmt.Sprintf("Mood: %s, goals: %s", mood, strings.Join(cleaned, ", ")),
	}

	entries, err := j.Load(ctx)
	if err != nil {
		return nil, err
	}
	entries = append(entries, entry)
	if err := jsonstore.Write(j.path, entries); err != nil {
		j.logg.Error(j.logg.WithField(ctx, "path", j.path), "failed to save wellness entry", err)
		return nil, pkgerrors.Wrap(pkgerrors.CodePersistence, err, "persist wellness entry")
	}
	return &entry, nil
}

// Prompt opens the daily check-in, referencing the previous entry when one
// exists. A corrupt journal degrades to the no-history prompt after logging.
func (j *journal) Prompt(ctx context.Context) string {
	const ask = "Let's do today's quick check-in. How are you feeling and what's your energy like today?"

	entries, err := j.Load(ctx)
	if err != nil {
		j.logg.Error(ctx, "failed to load wellness log", err)
		return ask
	}
	if len(entries) == 0 {
		return ask
	}
	last := entries[len(entries)-1]
	return fmt.Sprintf("Last time you said you felt %s and planned %s. %s",
		last.Mood, strings.Join(last.Goals, ", "), ask)
}
