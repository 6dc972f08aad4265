package trip

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"

	"tripdesk/internal/ai"
	"tripdesk/internal/modules/intent"
)

type stubProvider struct {
	response string
	err      error
}

func (s *stubProvider) Complete(ctx context.Context, messages []ai.Message, opts ai.Options) (string, error) {
	return s.response, s.err
}

func TestParserUsesLLMPlan(t *testing.T) {
	p := NewParser(&stubProvider{response: `{
		"origin": "MAD",
		"finalDestination": "LIS",
		"intermediateStops": ["BCN"],
		"transportationLegs": [
			{"mode": "train", "from": "MAD", "to": "BCN"},
			{"mode": "flight", "from": "BCN", "to": "LIS"}
		],
		"dates": {"startDate": "2030-09-01", "endDate": "2030-09-14"}
	}`}, zap.NewNop())

	plan := p.Parse(context.Background(), "two weeks Madrid, Barcelona, Lisbon",
		intent.Parameters{Intent: intent.IntentTripPlanning}, nil, "")
	if !plan.IsValid {
		t.Fatalf("plan invalid: %q", plan.Clarification)
	}
	if plan.Origin != "MAD" || plan.FinalDestination != "LIS" {
		t.Fatalf("endpoints: %s -> %s", plan.Origin, plan.FinalDestination)
	}
}

func TestParserFallsBackToRoadTripRule(t *testing.T) {
	p := NewParser(&stubProvider{err: errors.New("model down")}, zap.NewNop())

	plan := p.Parse(context.Background(),
		"road trip from San Francisco to Las Vegas via the Grand Canyon",
		intent.Parameters{Intent: intent.IntentTripPlanning}, nil, "")
	if !plan.IsValid {
		t.Fatalf("fallback should have produced a plan: %q", plan.Clarification)
	}
	if plan.Origin != "SFO" {
		t.Fatalf("origin = %q", plan.Origin)
	}
}

func TestParserReturnsClarificationWhenNothingWorks(t *testing.T) {
	p := NewParser(&stubProvider{err: errors.New("model down")}, zap.NewNop())

	plan := p.Parse(context.Background(), "plan me something nice",
		intent.Parameters{Intent: intent.IntentTripPlanning}, nil, "")
	if plan.IsValid {
		t.Fatal("unstructured request should not yield a valid plan")
	}
	if !strings.Contains(plan.Clarification, "starting from") {
		t.Fatalf("clarification = %q", plan.Clarification)
	}
}
