// README: Stateless dispatch from classified intent to handler.
package service

import (
	"context"

	"tripdesk/internal/ai"
	"tripdesk/internal/modules/intent"
)

// request is the per-turn context a handler operates on. params is shared
// with the caller so repairs made by validation are visible in the envelope.
type request struct {
	message     string
	params      *intent.Parameters
	history     []ai.Message
	timeContext string
}

// route looks the handler up in the dispatch table. Anything unknown falls
// back to the general-question handler.
func (a *Assistant) route(it intent.Intent) handlerFunc {
	if h, ok := a.handlers[it]; ok {
		return h
	}
	return a.handleGeneral
}

type handlerFunc func(ctx context.Context, req request) Envelope
