// README: Assistant entry point: one message in, one response envelope out.
package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"tripdesk/internal/ai"
	"tripdesk/internal/modules/cards"
	"tripdesk/internal/modules/conversation"
	"tripdesk/internal/modules/intent"
	"tripdesk/internal/modules/timezone"
	"tripdesk/internal/modules/trip"
	"tripdesk/internal/search"
)

// EnvelopeType classifies one assistant reply.
type EnvelopeType string

const (
	TypeResponse          EnvelopeType = "response"
	TypeResponseWithCards EnvelopeType = "response_with_cards"
	TypeClarification     EnvelopeType = "clarification"
	TypeError             EnvelopeType = "error"
)

// Envelope is the terminal output of one message-processing cycle.
type Envelope struct {
	Type       EnvelopeType      `json:"type"`
	Message    string            `json:"message"`
	Cards      []cards.Card      `json:"cards"`
	Parameters intent.Parameters `json:"parameters"`
}

// Input carries everything the assistant needs for one turn.
type Input struct {
	Message          string
	ConversationID   string
	UserID           string
	FrontendTimezone string
	TimezoneOverride string
}

const apologyMessage = "Sorry, something went wrong on my side. Please try that again."

// Deps wires the assistant's collaborators.
type Deps struct {
	Classifier   *intent.Classifier
	Parser       *trip.Parser
	Orchestrator *trip.Orchestrator
	Flights      search.FlightProvider
	Hotels       search.HotelProvider
	Places       search.PlaceProvider
	Synthesizer  *Synthesizer
	Window       *conversation.WindowBuilder
	Provider     ai.Provider
	MaxTurns     int
	TokenBudget  int
	Log          *zap.Logger
}

// Assistant is the decision core: it classifies a message, routes it to a
// handler, and returns a response envelope. It holds no per-conversation
// state; continuity comes entirely from stored history.
type Assistant struct {
	classifier   *intent.Classifier
	parser       *trip.Parser
	orchestrator *trip.Orchestrator
	flights      search.FlightProvider
	hotels       search.HotelProvider
	places       search.PlaceProvider
	synth        *Synthesizer
	window       *conversation.WindowBuilder
	provider     ai.Provider
	maxTurns     int
	tokenBudget  int
	handlers     map[intent.Intent]handlerFunc
	log          *zap.Logger
}

func NewAssistant(d Deps) *Assistant {
	a := &Assistant{
		classifier:   d.Classifier,
		parser:       d.Parser,
		orchestrator: d.Orchestrator,
		flights:      d.Flights,
		hotels:       d.Hotels,
		places:       d.Places,
		synth:        d.Synthesizer,
		window:       d.Window,
		provider:     d.Provider,
		maxTurns:     d.MaxTurns,
		tokenBudget:  d.TokenBudget,
		log:          d.Log,
	}
	if a.maxTurns <= 0 {
		a.maxTurns = 10
	}
	if a.tokenBudget <= 0 {
		a.tokenBudget = 2000
	}
	a.handlers = map[intent.Intent]handlerFunc{
		intent.IntentFlightSearch:    a.handleFlight,
		intent.IntentHotelSearch:     a.handleHotel,
		intent.IntentPlaceSearch:     a.handlePlace,
		intent.IntentTripPlanning:    a.handleTrip,
		intent.IntentGeneralQuestion: a.handleGeneral,
	}
	return a
}

// ProcessMessage is the sole public entry point. It never panics outward:
// any uncaught failure becomes an error-type envelope with a fixed apology.
func (a *Assistant) ProcessMessage(ctx context.Context, in Input) (env Envelope) {
	defer func() {
		if r := recover(); r != nil {
			a.log.Error("assistant recovered from panic", zap.Any("panic", r))
			env = Envelope{
				Type:       TypeError,
				Message:    apologyMessage,
				Cards:      []cards.Card{},
				Parameters: intent.Parameters{Intent: intent.IntentGeneralQuestion},
			}
		}
	}()

	loc := timezone.Resolve(in.TimezoneOverride, in.FrontendTimezone, in.Message)
	timeContext := time.Now().In(loc).Format(time.RFC3339) + " (" + loc.String() + ")"

	turns := a.window.Build(ctx, in.ConversationID, a.maxTurns, a.tokenBudget)
	history := toAIMessages(turns)

	result := a.classifier.Classify(ctx, in.Message, history, timeContext)
	a.log.Info("message classified",
		zap.String("intent", string(result.Params.Intent)),
		zap.String("tier", result.Tier.String()))

	env = a.route(result.Params.Intent)(ctx, request{
		message:     in.Message,
		params:      &result.Params,
		history:     history,
		timeContext: timeContext,
	})
	env.Parameters = result.Params
	if env.Cards == nil {
		env.Cards = []cards.Card{}
	}
	return env
}

func toAIMessages(turns []conversation.Turn) []ai.Message {
	out := make([]ai.Message, 0, len(turns))
	for _, t := range turns {
		role := ai.RoleUser
		if t.Role == conversation.RoleAssistant {
			role = ai.RoleAssistant
		}
		out = append(out, ai.Message{Role: role, Content: t.Content})
	}
	return out
}
