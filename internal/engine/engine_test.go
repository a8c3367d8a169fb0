package engine

import (
	"context"
	"testing"

	json "github.com/goccy/go-json"

	"benefits-engine/internal/model"
	"benefits-engine/internal/programs"
)

const singleAdult = `{
	"age": "30",
	"householdSize": 1,
	"housingSituation": "housed",
	"paysUtilities": true,
	"hasKitchen": true,
	"income": {"valid": true, "wages": [[900]]},
	"assets": [[100]]
}`

func resultFor(t *testing.T, resp *model.EvaluationResponse, id string) model.Result {
	t.Helper()
	for _, r := range resp.EvaluationResult.Results {
		if r.Program == id {
			return r
		}
	}
	t.Fatalf("no result for %s", id)
	return model.Result{}
}

func TestProcessAllPrograms(t *testing.T) {
	resp := Process(&model.EvaluationRequest{
		RequestID: "req-1",
		Profile:   json.RawMessage(singleAdult),
	})

	if resp.EvaluationMetadata.EvaluationOutcome != model.OutcomeSuccess {
		t.Fatalf("expected SUCCESS, got %s", resp.EvaluationMetadata.EvaluationOutcome)
	}
	if resp.EvaluationMetadata.RequestID != "req-1" {
		t.Fatalf("expected request_id req-1, got %s", resp.EvaluationMetadata.RequestID)
	}
	if resp.EvaluationMetadata.EvaluationID == "" {
		t.Fatal("expected an evaluation id")
	}
	if len(resp.EvaluationResult.Messages) != 0 {
		t.Fatalf("expected 0 messages, got %v", resp.EvaluationResult.Messages)
	}
	if len(resp.EvaluationResult.Results) != len(programs.IDs()) {
		t.Fatalf("expected %d results, got %d", len(programs.IDs()), len(resp.EvaluationResult.Results))
	}

	calfresh := resultFor(t, resp, programs.IDCalFresh)
	if calfresh.Eligible != model.Yes {
		t.Fatalf("expected calfresh eligible, got %s", calfresh.Eligible)
	}
	if calfresh.Name == "" {
		t.Fatal("expected program name on result")
	}
	if calfresh.EstimatedBenefit == nil {
		t.Fatal("expected calfresh benefit estimate")
	}

	if r := resultFor(t, resp, programs.IDSSI); r.Eligible != model.No {
		t.Fatalf("expected ssi ineligible, got %s", r.Eligible)
	}
}

func TestProcessSelectedPrograms(t *testing.T) {
	resp := Process(&model.EvaluationRequest{
		Programs: []string{programs.IDLifeline, "section8", programs.IDLifeline, programs.IDCARE},
		Profile:  json.RawMessage(singleAdult),
	})

	if resp.EvaluationMetadata.EvaluationOutcome != model.OutcomeSuccess {
		t.Fatalf("expected SUCCESS, got %s", resp.EvaluationMetadata.EvaluationOutcome)
	}
	results := resp.EvaluationResult.Results
	if len(results) != 2 || results[0].Program != programs.IDLifeline || results[1].Program != programs.IDCARE {
		t.Fatalf("expected lifeline then care, got %+v", results)
	}

	msgs := resp.EvaluationResult.Messages
	if len(msgs) != 1 {
		t.Fatalf("expected 1 message, got %d", len(msgs))
	}
	if msgs[0].Level != model.LevelWarning || msgs[0].Code != model.CodeUnknownProgram {
		t.Fatalf("expected WARNING UNKNOWN_PROGRAM, got %s %s", msgs[0].Level, msgs[0].Code)
	}
}

func TestProcessIncompleteIncome(t *testing.T) {
	resp := Process(&model.EvaluationRequest{
		Programs: []string{programs.IDGA},
		Profile:  json.RawMessage(`{"age": 40, "housingSituation": "shelter"}`),
	})

	if resp.EvaluationMetadata.EvaluationOutcome != model.OutcomeSuccess {
		t.Fatalf("expected SUCCESS, got %s", resp.EvaluationMetadata.EvaluationOutcome)
	}
	msgs := resp.EvaluationResult.Messages
	if len(msgs) != 1 || msgs[0].Code != model.CodeIncomeIncomplete {
		t.Fatalf("expected INCOME_INCOMPLETE warning, got %+v", msgs)
	}
	if r := resultFor(t, resp, programs.IDGA); r.Eligible != model.Unknown {
		t.Fatalf("expected ga unknown, got %s", r.Eligible)
	}
}

func TestProcessInvalidProfile(t *testing.T) {
	resp := Process(&model.EvaluationRequest{
		Profile: json.RawMessage(`{"age": "abc", "householdSize": 2, "householdSpouse": [true, false]}`),
	})

	if resp.EvaluationMetadata.EvaluationOutcome != model.OutcomeFailure {
		t.Fatalf("expected FAILURE, got %s", resp.EvaluationMetadata.EvaluationOutcome)
	}
	if len(resp.EvaluationResult.Results) != 0 {
		t.Fatalf("expected no results, got %d", len(resp.EvaluationResult.Results))
	}
	msgs := resp.EvaluationResult.Messages
	if len(msgs) != 2 {
		t.Fatalf("expected 2 messages, got %+v", msgs)
	}
	for i, m := range msgs {
		if m.ID != i {
			t.Fatalf("expected message id %d, got %d", i, m.ID)
		}
		if m.Level != model.LevelCritical || m.Code != model.CodeInvalidProfile {
			t.Fatalf("expected CRITICAL INVALID_PROFILE, got %s %s", m.Level, m.Code)
		}
	}
}

func TestProcessMissingProfile(t *testing.T) {
	resp := Process(&model.EvaluationRequest{})
	if resp.EvaluationMetadata.EvaluationOutcome != model.OutcomeFailure {
		t.Fatalf("expected FAILURE, got %s", resp.EvaluationMetadata.EvaluationOutcome)
	}
	if len(resp.EvaluationResult.Messages) != 1 {
		t.Fatalf("expected 1 message, got %d", len(resp.EvaluationResult.Messages))
	}
}

func TestEvaluate(t *testing.T) {
	age := 70
	p := &model.Profile{
		Members:     []model.Member{{Age: &age}},
		Citizen:     true,
		Housing:     model.HousingShelter,
		IncomeValid: true,
	}

	results, err := Evaluate(p, []string{programs.IDNoFeeID, programs.IDSSI})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	for _, r := range results {
		if r.Eligible != model.Yes {
			t.Fatalf("expected %s eligible, got %s", r.Program, r.Eligible)
		}
	}

	if _, err := Evaluate(p, []string{"section8"}); err == nil {
		t.Fatal("expected error for unknown program")
	}
	if _, err := Evaluate(&model.Profile{}, nil); err == nil {
		t.Fatal("expected error for profile without members")
	}
}

func TestProcessBatch(t *testing.T) {
	reqs := []model.EvaluationRequest{
		{RequestID: "a", Programs: []string{programs.IDCalFresh}, Profile: json.RawMessage(singleAdult)},
		{RequestID: "b", Programs: []string{programs.IDCalFresh}, Profile: json.RawMessage(`{"age": "x"}`)},
		{RequestID: "c", Programs: []string{programs.IDCalFresh}, Profile: json.RawMessage(`{}`)},
	}

	resps, err := ProcessBatch(context.Background(), reqs, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resps) != 3 {
		t.Fatalf("expected 3 responses, got %d", len(resps))
	}
	want := []string{model.OutcomeSuccess, model.OutcomeFailure, model.OutcomeSuccess}
	for i, resp := range resps {
		if resp.EvaluationMetadata.RequestID != reqs[i].RequestID {
			t.Fatalf("response %d out of order: %s", i, resp.EvaluationMetadata.RequestID)
		}
		if resp.EvaluationMetadata.EvaluationOutcome != want[i] {
			t.Fatalf("response %d: expected %s, got %s", i, want[i], resp.EvaluationMetadata.EvaluationOutcome)
		}
	}
}

func TestProcessBatchCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ProcessBatch(ctx, []model.EvaluationRequest{{Profile: json.RawMessage(`{}`)}}, 1)
	if err == nil {
		t.Fatal("expected error for cancelled context")
	}
}

func TestCompare(t *testing.T) {
	resp := Compare(&model.CompareRequest{
		Programs: []string{programs.IDCalFresh, programs.IDLifeline, programs.IDNoFeeID},
		Before:   json.RawMessage(singleAdult),
		After: json.RawMessage(`{
			"age": "30",
			"householdSize": 1,
			"housingSituation": "housed",
			"paysUtilities": true,
			"hasKitchen": true,
			"income": {"valid": true, "wages": [[5000]]},
			"assets": [[100]]
		}`),
	})

	if len(resp.Changes) != 2 {
		t.Fatalf("expected 2 changes, got %+v", resp.Changes)
	}
	c := resp.Changes[0]
	if c.Program != programs.IDCalFresh || c.Before != model.Yes || c.After != model.No {
		t.Fatalf("unexpected calfresh change: %+v", c)
	}
	if c.BenefitBefore == nil || c.BenefitAfter != nil {
		t.Fatalf("expected benefit to disappear, got %+v", c)
	}
	if resp.Changes[1].Program != programs.IDLifeline {
		t.Fatalf("expected lifeline change, got %s", resp.Changes[1].Program)
	}

	if len(resp.AnswerChanges) != 1 || resp.AnswerChanges[0].Path != "/income/wages/0/0" {
		t.Fatalf("expected one wage answer change, got %+v", resp.AnswerChanges)
	}
}

func TestCompareInvalidSide(t *testing.T) {
	resp := Compare(&model.CompareRequest{
		Before: json.RawMessage(singleAdult),
		After:  json.RawMessage(`{"housingSituation": "castle"}`),
	})
	if resp.After.EvaluationMetadata.EvaluationOutcome != model.OutcomeFailure {
		t.Fatalf("expected after FAILURE, got %s", resp.After.EvaluationMetadata.EvaluationOutcome)
	}
	if len(resp.Changes) != 0 {
		t.Fatalf("expected no changes, got %d", len(resp.Changes))
	}
}
