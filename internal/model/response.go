package model

import "benefits-engine/internal/jsonpatch"

type EvaluationResponse struct {
	EvaluationMetadata EvaluationMetadata `json:"evaluation_metadata" yaml:"evaluation_metadata"`
	EvaluationResult   EvaluationResult   `json:"evaluation_result" yaml:"evaluation_result"`
}

type EvaluationMetadata struct {
	EvaluationID          string `json:"evaluation_id" yaml:"evaluation_id"`
	RequestID             string `json:"request_id,omitempty" yaml:"request_id,omitempty"`
	EvaluationStartedAt   string `json:"evaluation_started_at" yaml:"evaluation_started_at"`
	EvaluationCompletedAt string `json:"evaluation_completed_at" yaml:"evaluation_completed_at"`
	EvaluationDurationMs  int64  `json:"evaluation_duration_ms" yaml:"evaluation_duration_ms"`
	EvaluationOutcome     string `json:"evaluation_outcome" yaml:"evaluation_outcome"`
}

type EvaluationResult struct {
	Messages []EvaluationMessage `json:"messages" yaml:"messages"`
	Results  []Result            `json:"results" yaml:"results"`
}

// Result is one program's verdict. EstimatedBenefit is a monthly amount and
// is only set for programs that compute one, when eligible.
type Result struct {
	Program          string   `json:"program" yaml:"program"`
	Name             string   `json:"name,omitempty" yaml:"name,omitempty"`
	Eligible         Tristate `json:"eligible" yaml:"eligible"`
	EstimatedBenefit *float64 `json:"estimatedBenefit,omitempty" yaml:"estimatedBenefit,omitempty"`
}

// Change is a program whose verdict or benefit differs between two
// evaluations.
type Change struct {
	Program       string   `json:"program" yaml:"program"`
	Before        Tristate `json:"before" yaml:"before"`
	After         Tristate `json:"after" yaml:"after"`
	BenefitBefore *float64 `json:"benefitBefore,omitempty" yaml:"benefitBefore,omitempty"`
	BenefitAfter  *float64 `json:"benefitAfter,omitempty" yaml:"benefitAfter,omitempty"`
}

// CompareResponse holds both evaluations, the programs whose verdict moved
// and the answers that differ between the two profiles.
type CompareResponse struct {
	Before        *EvaluationResponse `json:"before" yaml:"before"`
	After         *EvaluationResponse `json:"after" yaml:"after"`
	Changes       []Change            `json:"changes" yaml:"changes"`
	AnswerChanges []jsonpatch.Op      `json:"answer_changes" yaml:"answer_changes"`
}

type BatchResponse struct {
	Responses []*EvaluationResponse `json:"responses" yaml:"responses"`
}

// EvaluationSummary is a stored evaluation without its results.
type EvaluationSummary struct {
	EvaluationID string `json:"evaluation_id" yaml:"evaluation_id"`
	RequestID    string `json:"request_id,omitempty" yaml:"request_id,omitempty"`
	Outcome      string `json:"outcome" yaml:"outcome"`
	Eligible     int    `json:"eligible" yaml:"eligible"`
	CreatedAt    string `json:"created_at" yaml:"created_at"`
}

type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

const (
	OutcomeSuccess = "SUCCESS"
	OutcomeFailure = "FAILURE"
)
