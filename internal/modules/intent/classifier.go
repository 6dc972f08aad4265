package intent

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"tripdesk/internal/ai"
)

// Tier records which rung of the fallback ladder produced a result.
type Tier int

const (
	// TierExtracted: the full classify-and-extract call succeeded.
	TierExtracted Tier = iota
	// TierReclassified: extraction failed, the narrow label-only call succeeded.
	TierReclassified
	// TierDefaulted: both calls failed; the static general_question default.
	TierDefaulted
)

func (t Tier) String() string {
	switch t {
	case TierExtracted:
		return "extracted"
	case TierReclassified:
		return "reclassified"
	default:
		return "defaulted"
	}
}

// Result is a classification outcome plus its provenance tier.
type Result struct {
	Params Parameters
	Tier   Tier
}

// Classifier turns free-form messages into structured parameters.
// It never returns an error: one degraded model call must not abort the
// conversation, so failures walk down the ladder instead.
type Classifier struct {
	provider ai.Provider
	log      *zap.Logger
}

func NewClassifier(provider ai.Provider, log *zap.Logger) *Classifier {
	return &Classifier{provider: provider, log: log}
}

// Classify runs the two-tier ladder: structured extraction, then label-only
// reclassification, then the static default.
func (c *Classifier) Classify(ctx context.Context, message string, history []ai.Message, timeContext string) Result {
	if params, ok := c.extract(ctx, message, history, timeContext); ok {
		return Result{Params: params, Tier: TierExtracted}
	}

	if label, ok := c.reclassify(ctx, message); ok {
		return Result{Params: Parameters{Intent: label}, Tier: TierReclassified}
	}

	return Result{Params: Parameters{Intent: IntentGeneralQuestion}, Tier: TierDefaulted}
}

func (c *Classifier) extract(ctx context.Context, message string, history []ai.Message, timeContext string) (Parameters, bool) {
	messages := make([]ai.Message, 0, len(history)+2)
	messages = append(messages, ai.Message{Role: ai.RoleSystem, Content: buildExtractionPrompt(timeContext)})
	messages = append(messages, history...)
	messages = append(messages, ai.Message{Role: ai.RoleUser, Content: message})

	raw, err := c.provider.Complete(ctx, messages, ai.Options{Temperature: 0.2, MaxTokens: 512, JSON: true})
	if err != nil {
		c.log.Warn("intent extraction call failed", zap.Error(err))
		return Parameters{}, false
	}

	var params Parameters
	if err := json.Unmarshal([]byte(ai.CleanJSON(raw)), &params); err != nil {
		c.log.Warn("intent extraction returned unparsable JSON", zap.Error(err))
		return Parameters{}, false
	}

	resolved, recognized := Parse(string(params.Intent))
	if !recognized {
		c.log.Warn("intent extraction returned unknown label", zap.String("label", string(params.Intent)))
		return Parameters{}, false
	}
	params.Intent = resolved
	return params, true
}

func (c *Classifier) reclassify(ctx context.Context, message string) (Intent, bool) {
	messages := []ai.Message{
		{Role: ai.RoleSystem, Content: buildReclassifyPrompt()},
		{Role: ai.RoleUser, Content: message},
	}

	raw, err := c.provider.Complete(ctx, messages, ai.Options{Temperature: 0, MaxTokens: 16})
	if err != nil {
		c.log.Warn("intent reclassification call failed", zap.Error(err))
		return IntentGeneralQuestion, false
	}

	// An unknown label still yields general_question, but counts as a
	// successful reclassification: the model answered, we coerced.
	label, _ := Parse(raw)
	return label, true
}
