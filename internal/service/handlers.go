// README: Per-intent handlers: validate, map, call a provider, phrase a reply.
package service

import (
	"context"

	"go.uber.org/zap"

	"tripdesk/internal/ai"
	"tripdesk/internal/modules/cards"
	"tripdesk/internal/modules/intent"
	"tripdesk/internal/modules/mapping"
	"tripdesk/internal/modules/validation"
	"tripdesk/internal/search/amadeus"
)

// handleFlight runs the full validate-map-search pipeline. Provider errors
// carrying the amadeus marker are surfaced verbatim so the user sees the
// provider's own diagnostic; everything else is wrapped.
func (a *Assistant) handleFlight(ctx context.Context, req request) Envelope {
	res := validation.Validate(req.params)
	if !res.IsValid {
		return a.clarify(ctx, res)
	}

	mapped, err := mapping.MapParameters(*req.params)
	if err != nil {
		a.log.Error("flight mapping failed", zap.Error(err))
		return Envelope{Type: TypeError, Message: "I couldn't turn that into a flight search. Could you rephrase your request?"}
	}

	found, err := a.flights.SearchFlights(ctx, mapped)
	if err != nil {
		if amadeus.IsProviderError(err) {
			return Envelope{Type: TypeError, Message: err.Error()}
		}
		a.log.Error("flight search failed", zap.Error(err))
		return Envelope{Type: TypeError, Message: "Sorry, the flight search is unavailable right now. Please try again in a moment."}
	}

	return a.respondWithCards(ctx, found, Summary{
		Intent:      intent.IntentFlightSearch,
		Origin:      mapped["originLocationCode"],
		Destination: mapped["destinationLocationCode"],
		CardCount:   len(found),
	})
}

// handleHotel validates, then checks the check-in/check-out pair with a
// dedicated clarification path instead of a hard validation error.
func (a *Assistant) handleHotel(ctx context.Context, req request) Envelope {
	res := validation.Validate(req.params)
	if !res.IsValid {
		return a.clarify(ctx, res)
	}
	if req.params.CheckInDate == "" || req.params.CheckOutDate == "" {
		return a.clarify(ctx, validation.Result{Suggestions: []string{
			"Which dates would you like to check in and check out (YYYY-MM-DD)?",
		}})
	}

	mapped, err := mapping.MapParameters(*req.params)
	if err != nil {
		a.log.Error("hotel mapping failed", zap.Error(err))
		return Envelope{Type: TypeError, Message: "I couldn't turn that into a hotel search. Could you rephrase your request?"}
	}

	found, err := a.hotels.SearchHotels(ctx, mapped)
	if err != nil {
		a.log.Error("hotel search failed", zap.Error(err))
		return Envelope{Type: TypeError, Message: "Sorry, the hotel search is unavailable right now. Please try again in a moment."}
	}

	return a.respondWithCards(ctx, found, Summary{
		Intent:      intent.IntentHotelSearch,
		Destination: mapped["cityCode"],
		CardCount:   len(found),
	})
}

func (a *Assistant) handlePlace(ctx context.Context, req request) Envelope {
	res := validation.Validate(req.params)
	if !res.IsValid {
		return a.clarify(ctx, res)
	}

	mapped, err := mapping.MapParameters(*req.params)
	if err != nil {
		a.log.Error("place mapping failed", zap.Error(err))
		return Envelope{Type: TypeError, Message: "I couldn't turn that into a place search. Could you rephrase your request?"}
	}

	query := mapped["query"]
	if query == "" {
		query = "top attractions"
	}
	found, err := a.places.SearchPlaces(ctx, query, mapped["location"])
	if err != nil {
		a.log.Error("place search failed", zap.Error(err))
		return Envelope{Type: TypeError, Message: "Sorry, the place search is unavailable right now. Please try again in a moment."}
	}

	destination := mapped["location"]
	if destination == "" {
		destination = query
	}
	return a.respondWithCards(ctx, found, Summary{
		Intent:      intent.IntentPlaceSearch,
		Destination: destination,
		CardCount:   len(found),
	})
}

// handleTrip decomposes the request into a plan and fans the plan out to
// the orchestrator. An unparsable route yields a clarification, never an
// error.
func (a *Assistant) handleTrip(ctx context.Context, req request) Envelope {
	plan := a.parser.Parse(ctx, req.message, *req.params, req.history, req.timeContext)
	if !plan.IsValid {
		return Envelope{Type: TypeClarification, Message: plan.Clarification}
	}

	results := a.orchestrator.Execute(ctx, plan)

	all := make([]cards.Card, 0,
		len(results.Flights)+len(results.Hotels)+len(results.RentalCars)+len(results.Activities))
	all = append(all, results.Flights...)
	all = append(all, results.Hotels...)
	all = append(all, results.RentalCars...)
	all = append(all, results.Activities...)

	message := a.synth.Synthesize(ctx, KindTripSummary, Summary{
		Origin:      plan.Origin,
		Destination: plan.FinalDestination,
		Flights:     len(results.Flights),
		Hotels:      len(results.Hotels),
		Activities:  len(results.Activities),
	})
	return Envelope{Type: TypeResponseWithCards, Message: message, Cards: all}
}

const generalPrompt = `You are a helpful travel assistant. Answer the user's question conversationally in at most three sentences. If the question is unrelated to travel, answer briefly and mention what you can help plan.`

const generalFallback = "I'm best at helping with flights, hotels, places to visit, and trip planning. What would you like to plan?"

// handleGeneral answers free-form questions directly from the completion
// service. It is also the terminal default of the routing table, so it must
// always produce a response.
func (a *Assistant) handleGeneral(ctx context.Context, req request) Envelope {
	messages := make([]ai.Message, 0, len(req.history)+2)
	messages = append(messages, ai.Message{Role: ai.RoleSystem, Content: generalPrompt + "\n\nTime context: " + req.timeContext})
	messages = append(messages, req.history...)
	messages = append(messages, ai.Message{Role: ai.RoleUser, Content: req.message})

	reply, err := a.provider.Complete(ctx, messages, ai.Options{Temperature: 0.7, MaxTokens: 512})
	if err != nil || reply == "" {
		if err != nil {
			a.log.Warn("general-question completion failed", zap.Error(err))
		}
		reply = generalFallback
	}
	return Envelope{Type: TypeResponse, Message: reply}
}

// clarify phrases blocking validation errors and suggestions as a question.
func (a *Assistant) clarify(ctx context.Context, res validation.Result) Envelope {
	questions := make([]string, 0, len(res.Errors)+len(res.Suggestions))
	questions = append(questions, res.Errors...)
	questions = append(questions, res.Suggestions...)
	return Envelope{
		Type:    TypeClarification,
		Message: a.synth.Synthesize(ctx, KindClarification, Summary{Questions: questions}),
	}
}

func (a *Assistant) respondWithCards(ctx context.Context, found []cards.Card, sum Summary) Envelope {
	message := a.synth.Synthesize(ctx, KindResults, sum)
	if len(found) == 0 {
		return Envelope{Type: TypeResponse, Message: message}
	}
	return Envelope{Type: TypeResponseWithCards, Message: message, Cards: found}
}
