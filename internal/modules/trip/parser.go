// README: Trip-plan parsing: LLM strategy first, deterministic fallback second.
package trip

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"tripdesk/internal/ai"
	"tripdesk/internal/modules/intent"
)

// Strategy is one way of turning a free-form multi-destination request
// into a Plan. Strategies are tried in order; the first success wins.
type Strategy interface {
	Name() string
	Parse(ctx context.Context, message string, params intent.Parameters, history []ai.Message, timeContext string) (Plan, bool)
}

// Parser runs the strategy chain. It never returns an error: when no
// strategy yields enough structure the result is an invalid Plan carrying
// a clarification question.
type Parser struct {
	strategies []Strategy
	log        *zap.Logger
}

func NewParser(provider ai.Provider, log *zap.Logger) *Parser {
	return &Parser{
		strategies: []Strategy{
			&llmStrategy{provider: provider, log: log},
			&roadTripStrategy{log: log},
		},
		log: log,
	}
}

// Parse decomposes the request into an ordered plan.
func (p *Parser) Parse(ctx context.Context, message string, params intent.Parameters, history []ai.Message, timeContext string) Plan {
	for _, s := range p.strategies {
		if plan, ok := s.Parse(ctx, message, params, history, timeContext); ok {
			p.log.Debug("trip plan parsed", zap.String("strategy", s.Name()))
			plan.IsValid = true
			return plan
		}
	}
	return Plan{
		IsValid:       false,
		Clarification: "I couldn't quite work out your route. Could you tell me where you're starting from, where you want to end up, and any stops along the way?",
	}
}

// llmStrategy asks the completion service to decompose the request.
type llmStrategy struct {
	provider ai.Provider
	log      *zap.Logger
}

func (s *llmStrategy) Name() string { return "llm" }

const planPrompt = `You decompose multi-destination travel requests into a structured plan.

Rules:
- Preserve any 3-letter airport-code tokens from the message VERBATIM. Never rename "SFO" to "San Francisco".
- transportationLegs must cover the route in travel order.
- Dates are YYYY-MM-DD; resolve relative dates against the time context.
- Respond with PURE JSON only:
{
  "origin": "string",
  "finalDestination": "string",
  "intermediateStops": ["string", ...],
  "transportationLegs": [{"mode": "flight"|"car"|"train", "from": "string", "to": "string"}, ...],
  "activities": ["string", ...],
  "dates": {"startDate": "YYYY-MM-DD", "endDate": "YYYY-MM-DD"}
}`

func (s *llmStrategy) Parse(ctx context.Context, message string, params intent.Parameters, history []ai.Message, timeContext string) (Plan, bool) {
	messages := make([]ai.Message, 0, len(history)+2)
	messages = append(messages, ai.Message{Role: ai.RoleSystem, Content: planPrompt + "\n\nTime context: " + timeContext})
	messages = append(messages, history...)
	messages = append(messages, ai.Message{Role: ai.RoleUser, Content: message})

	raw, err := s.provider.Complete(ctx, messages, ai.Options{Temperature: 0.2, MaxTokens: 768, JSON: true})
	if err != nil {
		s.log.Warn("trip plan completion failed", zap.Error(err))
		return Plan{}, false
	}

	var plan Plan
	if err := json.Unmarshal([]byte(ai.CleanJSON(raw)), &plan); err != nil {
		s.log.Warn("trip plan JSON unparsable", zap.Error(err))
		return Plan{}, false
	}

	// Enough structure to orchestrate: both route endpoints known.
	if plan.Origin == "" || plan.FinalDestination == "" {
		return Plan{}, false
	}
	return plan, true
}
