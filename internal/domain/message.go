package domain

import "time"

// MessageRole represents the sender of a chat turn
type MessageRole string

const (
	RoleUser      MessageRole = "user"
	RoleAssistant MessageRole = "assistant"
)

// ChatTurn is one message of an assistant conversation
type ChatTurn struct {
	ID        string      `json:"id"`
	Role      MessageRole `json:"role"`
	Content   string      `json:"content"`
	CreatedAt time.Time   `json:"created_at"`
}

// ChatInput is a submitted chat line
type ChatInput struct {
	Message string `json:"message" validate:"required,max=2000"`
}

// ChatExchange is a user turn together with the assistant's reply
type ChatExchange struct {
	User  ChatTurn `json:"user"`
	Reply ChatTurn `json:"reply"`
}
