package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"benefits-engine/internal/jsonpatch"
	"benefits-engine/internal/metrics"
	"benefits-engine/internal/model"
	"benefits-engine/internal/profile"
	"benefits-engine/internal/programs"
)

// Process decodes the request's profile and evaluates the requested
// programs, or every program when none are named.
func Process(req *model.EvaluationRequest) *model.EvaluationResponse {
	start := time.Now()

	var messages []model.EvaluationMessage
	addMessage := func(level, code, text string) {
		messages = append(messages, model.EvaluationMessage{
			ID:      len(messages),
			Level:   level,
			Code:    code,
			Message: text,
		})
	}

	ids := req.Programs
	if len(ids) == 0 {
		ids = programs.IDs()
	} else {
		known := make([]string, 0, len(ids))
		seen := make(map[string]bool, len(ids))
		for _, id := range ids {
			if seen[id] {
				continue
			}
			seen[id] = true
			if _, ok := programs.Get(id); !ok {
				addMessage(model.LevelWarning, model.CodeUnknownProgram, fmt.Sprintf("Unknown program: %s", id))
				continue
			}
			known = append(known, id)
		}
		ids = known
	}

	outcome := model.OutcomeSuccess
	results := []model.Result{}

	p, err := decodeProfile(req.Profile)
	if err != nil {
		outcome = model.OutcomeFailure
		var verr *profile.ValidationError
		if errors.As(err, &verr) {
			for _, issue := range verr.Issues {
				metrics.ValidationIssues.WithLabelValues(issue.Code).Inc()
				addMessage(model.LevelCritical, model.CodeInvalidProfile, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
			}
		} else {
			metrics.ValidationIssues.WithLabelValues(model.CodeInvalidProfile).Inc()
			addMessage(model.LevelCritical, model.CodeInvalidProfile, err.Error())
		}
	} else {
		if !p.IncomeValid {
			addMessage(model.LevelWarning, model.CodeIncomeIncomplete,
				"Income and assets are incomplete; income-tested programs may be unknown")
		}
		results = run(p, ids)
	}

	elapsed := time.Since(start)
	now := time.Now().UTC()

	if messages == nil {
		messages = []model.EvaluationMessage{}
	}

	resp := &model.EvaluationResponse{
		EvaluationMetadata: model.EvaluationMetadata{
			EvaluationID:          uuid.New().String(),
			RequestID:             req.RequestID,
			EvaluationStartedAt:   now.Add(-elapsed).Format(time.RFC3339),
			EvaluationCompletedAt: now.Format(time.RFC3339),
			EvaluationDurationMs:  elapsed.Milliseconds(),
			EvaluationOutcome:     outcome,
		},
		EvaluationResult: model.EvaluationResult{
			Messages: messages,
			Results:  results,
		},
	}

	metrics.ObserveEvaluation(outcome, elapsed, results)
	zap.L().Debug("engine: evaluated profile",
		zap.String("evaluation_id", resp.EvaluationMetadata.EvaluationID),
		zap.String("request_id", req.RequestID),
		zap.String("outcome", outcome),
		zap.Int("programs", len(results)),
		zap.Int("messages", len(messages)),
		zap.Duration("elapsed", elapsed),
	)
	return resp
}

func decodeProfile(raw []byte) (*model.Profile, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, eris.New("profile is required")
	}
	return profile.Decode(raw)
}

func run(p *model.Profile, ids []string) []model.Result {
	results := make([]model.Result, 0, len(ids))
	for _, id := range ids {
		prog, ok := programs.Get(id)
		if !ok {
			continue
		}
		r := prog.Evaluate(p)
		r.Name = prog.Name
		results = append(results, r)
	}
	return results
}

// Evaluate runs the named programs, or all of them when ids is empty,
// against a profile built in Go.
func Evaluate(p *model.Profile, ids []string) ([]model.Result, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		ids = programs.IDs()
	}
	for _, id := range ids {
		if _, ok := programs.Get(id); !ok {
			return nil, eris.Errorf("engine: unknown program %q", id)
		}
	}
	return run(p, ids), nil
}

// ProcessBatch evaluates reqs with at most limit running at once. Responses
// keep the order of reqs. Cancelling ctx stops requests that have not
// started yet.
func ProcessBatch(ctx context.Context, reqs []model.EvaluationRequest, limit int) ([]*model.EvaluationResponse, error) {
	if limit < 1 {
		limit = 1
	}
	metrics.BatchesInFlight.Inc()
	defer metrics.BatchesInFlight.Dec()

	out := make([]*model.EvaluationResponse, len(reqs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i := range reqs {
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out[i] = Process(&reqs[i])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, eris.Wrap(err, "engine: batch evaluation")
	}
	return out, nil
}

// Compare evaluates the same programs for two versions of a profile and
// reports the programs whose verdict or benefit changed.
func Compare(req *model.CompareRequest) *model.CompareResponse {
	before := Process(&model.EvaluationRequest{Programs: req.Programs, Profile: req.Before})
	after := Process(&model.EvaluationRequest{Programs: req.Programs, Profile: req.After})

	resp := &model.CompareResponse{
		Before:        before,
		After:         after,
		Changes:       []model.Change{},
		AnswerChanges: []jsonpatch.Op{},
	}
	if before.EvaluationMetadata.EvaluationOutcome != model.OutcomeSuccess ||
		after.EvaluationMetadata.EvaluationOutcome != model.OutcomeSuccess {
		return resp
	}

	resp.Changes = Diff(before.EvaluationResult.Results, after.EvaluationResult.Results)
	// Both profiles passed schema validation, so they are valid JSON.
	if ops, err := jsonpatch.DiffDocuments(req.Before, req.After); err == nil && ops != nil {
		resp.AnswerChanges = ops
	}
	return resp
}

// Diff lists the programs whose verdict or estimated benefit differs,
// in the order of after.
func Diff(before, after []model.Result) []model.Change {
	prev := make(map[string]model.Result, len(before))
	for _, r := range before {
		prev[r.Program] = r
	}
	changes := []model.Change{}
	for _, r := range after {
		b := prev[r.Program]
		if b.Eligible == r.Eligible && sameBenefit(b.EstimatedBenefit, r.EstimatedBenefit) {
			continue
		}
		changes = append(changes, model.Change{
			Program:       r.Program,
			Before:        b.Eligible,
			After:         r.Eligible,
			BenefitBefore: b.EstimatedBenefit,
			BenefitAfter:  r.EstimatedBenefit,
		})
	}
	return changes
}

func sameBenefit(a, b *float64) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
