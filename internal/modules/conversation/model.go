// README: Conversation turn model and type constants.
package conversation

import "time"

// Role of a dialogue turn.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Turn types stored alongside dialogue. Non-dialogue types are excluded
// from context windows.
const (
	TypeMessage = "message"
	TypeSystem  = "system"
	TypeError   = "error"
)

// Turn is one role-tagged utterance. Immutable once created.
type Turn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Record is a persisted turn row.
type Record struct {
	ConversationID string
	Role           string
	TurnType       string
	Content        string
	CreatedAt      time.Time
}
