package store

import (
	"context"

	"github.com/rotisserie/eris"

	"benefits-engine/internal/model"
)

// ErrNotFound is returned when no evaluation has the requested ID.
var ErrNotFound = eris.New("evaluation not found")

// Store keeps evaluation responses. Profiles are never stored.
type Store interface {
	SaveEvaluation(ctx context.Context, resp *model.EvaluationResponse) error
	GetEvaluation(ctx context.Context, id string) (*model.EvaluationResponse, error)
	ListEvaluations(ctx context.Context, limit int) ([]model.EvaluationSummary, error)
	Migrate(ctx context.Context) error
	Close() error
}

// DefaultListLimit applies when ListEvaluations is called without a limit.
const DefaultListLimit = 50
