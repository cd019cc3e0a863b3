package domain

// MessageRole identifies the author of a conversation message.
type MessageRole string

const (
	RoleUser      MessageRole = "user"
	RoleAssistant MessageRole = "assistant"
)

// ConversationMessage is one turn of a chat session. Assistant content grows
// incrementally while a response is streaming; only the bounded recent window
// is ever sent back upstream as context.
type ConversationMessage struct {
	Role    MessageRole `json:"role"`
	Content string      `json:"content"`
}
