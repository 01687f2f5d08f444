package chat

import "time"

// Turn roles. The model gateway only forwards these two.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Turn is one role-tagged message within a session. Turns are immutable
// once appended to a history.
type Turn struct {
	Role    string    `json:"role"`
	Content string    `json:"content"`
	TS      time.Time `json:"ts"`
}

// NewTurn stamps a turn with the current UTC time.
func NewTurn(role, content string) Turn {
	return Turn{Role: role, Content: content, TS: time.Now().UTC()}
}
