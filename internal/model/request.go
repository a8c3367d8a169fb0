package model

import json "github.com/goccy/go-json"

// EvaluationRequest asks for eligibility verdicts for one profile.
// An empty Programs list evaluates every registered program.
type EvaluationRequest struct {
	RequestID string          `json:"request_id,omitempty"`
	Programs  []string        `json:"programs,omitempty"`
	Profile   json.RawMessage `json:"profile"`
}

type BatchRequest struct {
	Requests []EvaluationRequest `json:"requests"`
}

// CompareRequest evaluates the same programs for two versions of a profile.
type CompareRequest struct {
	Programs []string        `json:"programs,omitempty"`
	Before   json.RawMessage `json:"before"`
	After    json.RawMessage `json:"after"`
}
