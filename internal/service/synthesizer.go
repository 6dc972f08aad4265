// README: Natural-language reply synthesis with deterministic fallbacks.
package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"tripdesk/internal/ai"
	"tripdesk/internal/modules/intent"
)

// Kind selects the phrasing template for one reply.
type Kind string

const (
	KindResults       Kind = "results"
	KindClarification Kind = "clarification"
	KindTripSummary   Kind = "trip_summary"
)

// Summary is the structured outcome a reply is phrased from.
type Summary struct {
	Intent      intent.Intent
	Origin      string
	Destination string
	CardCount   int
	Flights     int
	Hotels      int
	Activities  int
	Questions   []string
}

// Synthesizer turns structured outcomes into user-facing prose. The
// completion service provides the phrasing; when it fails or returns
// nothing, a fixed parameterized fallback string is used instead, so the
// reply is never empty and never an error leak.
type Synthesizer struct {
	provider ai.Provider
	log      *zap.Logger
}

func NewSynthesizer(provider ai.Provider, log *zap.Logger) *Synthesizer {
	return &Synthesizer{provider: provider, log: log}
}

const synthesizerPrompt = `You are a friendly travel assistant. Write ONE short reply (at most two sentences) presenting the outcome described below. Do not invent results that are not in the outcome. Do not use markdown.`

// Synthesize phrases the outcome for the user.
func (s *Synthesizer) Synthesize(ctx context.Context, kind Kind, sum Summary) string {
	fallback := fallbackFor(kind, sum)

	messages := []ai.Message{
		{Role: ai.RoleSystem, Content: synthesizerPrompt},
		{Role: ai.RoleUser, Content: describeOutcome(kind, sum)},
	}
	raw, err := s.provider.Complete(ctx, messages, ai.Options{Temperature: 0.7, MaxTokens: 256})
	if err != nil {
		s.log.Warn("reply synthesis failed, using fallback", zap.String("kind", string(kind)), zap.Error(err))
		return fallback
	}
	reply := strings.TrimSpace(raw)
	if reply == "" {
		return fallback
	}
	return reply
}

func describeOutcome(kind Kind, sum Summary) string {
	switch kind {
	case KindClarification:
		return "The user's request is missing details. Ask for: " + strings.Join(sum.Questions, "; ")
	case KindTripSummary:
		return fmt.Sprintf("A multi-leg trip from %s to %s was planned: %d flight options, %d stay options, %d activity ideas. Cards with details follow the message.",
			sum.Origin, sum.Destination, sum.Flights, sum.Hotels, sum.Activities)
	default:
		return fmt.Sprintf("A %s search for %q returned %d results. Cards with details follow the message.",
			sum.Intent, sum.Destination, sum.CardCount)
	}
}

// fallbackFor is the deterministic reply used when the completion service
// is unavailable.
func fallbackFor(kind Kind, sum Summary) string {
	switch kind {
	case KindClarification:
		return "I need a bit more information before I can search: " + strings.Join(sum.Questions, " ")
	case KindTripSummary:
		return fmt.Sprintf("Here is your trip from %s to %s: %d flight options, %d stays and %d activity ideas below.",
			sum.Origin, sum.Destination, sum.Flights, sum.Hotels, sum.Activities)
	default:
		if sum.CardCount == 0 {
			return fmt.Sprintf("I couldn't find any results for %s. You could try different dates or another destination.", sum.Destination)
		}
		return fmt.Sprintf("I found %d options for %s. Have a look at the cards below.", sum.CardCount, sum.Destination)
	}
}
