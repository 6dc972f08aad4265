package ai

// Role identifies the author of a conversation message.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one role-tagged utterance passed to the completion model.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Options tune a single completion call.
type Options struct {
	// Temperature controls randomness. Structured extraction calls want
	// something low (0.1-0.4); prose synthesis can go higher.
	Temperature float32

	// MaxTokens caps the response length. Zero means the provider default.
	MaxTokens int32

	// JSON forces a pure-JSON response when the backend supports it.
	JSON bool
}
