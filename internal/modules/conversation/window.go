// README: Context-window construction with a token budget.
package conversation

import (
	"context"

	"go.uber.org/zap"
)

// HistoryProvider abstracts the turn store so the builder can run against
// the pgx store or a test double.
type HistoryProvider interface {
	FindTurns(ctx context.Context, conversationID string, excludeTypes []string, limit int) ([]Turn, error)
}

// WindowBuilder loads prior turns and trims them to a token budget.
type WindowBuilder struct {
	history HistoryProvider
	log     *zap.Logger
}

func NewWindowBuilder(history HistoryProvider, log *zap.Logger) *WindowBuilder {
	return &WindowBuilder{history: history, log: log}
}

// EstimateTokens is a cheap character-count heuristic. It only needs to be
// monotonic in text length, not exact.
func EstimateTokens(text string) int {
	return len(text) / 4
}

// Build returns up to maxTurns dialogue turns in chronological order whose
// cumulative estimated tokens fit the budget. Oldest turns are dropped
// first; the most recent turn survives even if it alone exceeds the budget.
// Store failures yield an empty window: history must never block a reply.
func (b *WindowBuilder) Build(ctx context.Context, conversationID string, maxTurns, tokenBudget int) []Turn {
	if conversationID == "" || maxTurns <= 0 {
		return nil
	}

	newest, err := b.history.FindTurns(ctx, conversationID, []string{TypeSystem, TypeError}, maxTurns)
	if err != nil {
		b.log.Warn("history read failed, continuing without context",
			zap.String("conversation_id", conversationID), zap.Error(err))
		return nil
	}
	if len(newest) == 0 {
		return nil
	}

	// Store order is newest-first; flip to chronological.
	turns := make([]Turn, len(newest))
	for i, t := range newest {
		turns[len(newest)-1-i] = t
	}

	total := 0
	for _, t := range turns {
		total += EstimateTokens(t.Content)
	}
	for total > tokenBudget && len(turns) > 1 {
		total -= EstimateTokens(turns[0].Content)
		turns = turns[1:]
	}
	return turns
}
