package barista

import (
	"context"
	"fmt"

	pkgerrors "github.com/novalabs/nova-agent-backend/pkg/errors"
	"github.com/novalabs/nova-agent-backend/pkg/jsonstore"
	"github.com/novalabs/nova-agent-backend/pkg/logger"
)

// Service advances a session's coffee order and persists completed summaries.
type Service interface {
	HandleMessage(ctx context.Context, collector *Collector, message string) (string, error)
}

type service struct {
	path string
	logg *logger.Logger
}

// NewService builds a barista service writing summaries to the given path.
func NewService(path string, logg *logger.Logger) (Service, error) {
	if path == "" {
		return nil, fmt.Errorf("coffee order path required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &service{path: path, logg: logg}, nil
}

// HandleMessage feeds one answer into the collector. When the order completes
// it is written as a single JSON object, fully overwriting any previous
// summary. A failed write surfaces as a persistence error and the reply is
// withheld so the conversation can retry.
func (s *service) HandleMessage(ctx context.Context, collector *Collector, message string) (string, error) {
	if collector == nil {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "order collector required")
	}

	reply, completed := collector.Next(message)
	if completed != nil {
		if err := jsonstore.Write(s.path, completed); err != nil {
			s.logg.Error(s.logg.WithField(ctx, "path", s.path), "failed to save coffee order", err)
			return "", pkgerrors.Wrap(pkgerrors.CodePersistence, err, "persist coffee order")
		}
		s.logg.Info(s.logg.WithField(ctx, "customer", completed.Name), "coffee order saved")
	}
	return reply, nil
}
