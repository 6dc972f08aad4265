package ai

import (
	"context"
	"strings"
)

// Provider defines the contract for the completion service.
// This interface allows swapping different backends (Gemini, OpenAI, etc.)
// and stubbing the model out in tests.
type Provider interface {
	// Complete sends a system instruction plus conversation history plus the
	// latest user turn and returns the raw model text. Callers own parsing.
	Complete(ctx context.Context, messages []Message, opts Options) (string, error)
}

// CleanJSON removes markdown code fences if present (e.g. ```json ... ```).
// Models occasionally wrap structured output even in JSON mode.
func CleanJSON(input string) string {
	input = strings.TrimSpace(input)
	input = strings.TrimPrefix(input, "```json")
	input = strings.TrimPrefix(input, "```")
	input = strings.TrimSuffix(input, "```")
	return strings.TrimSpace(input)
}
