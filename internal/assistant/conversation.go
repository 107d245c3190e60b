package assistant

import (
	"time"

	"github.com/Rrens/kopiloka/internal/domain"
	"github.com/google/uuid"
)

// suggestionWindow is the conversation length up to which suggested
// questions are offered
const suggestionWindow = 2

// Conversation is the append-only turn log of one chat session
type Conversation struct {
	Turns []domain.ChatTurn `json:"turns"`
}

// NewConversation starts a conversation with the welcome greeting
func NewConversation(now time.Time) *Conversation {
	c := &Conversation{}
	c.Append(domain.RoleAssistant, WelcomeMessage, now)
	return c
}

// Append adds a turn and returns it
func (c *Conversation) Append(role domain.MessageRole, content string, now time.Time) domain.ChatTurn {
	turn := domain.ChatTurn{
		ID:        uuid.NewString(),
		Role:      role,
		Content:   content,
		CreatedAt: now,
	}
	c.Turns = append(c.Turns, turn)
	return turn
}

// Reset drops all turns and leaves only the reset greeting
func (c *Conversation) Reset(now time.Time) {
	c.Turns = nil
	c.Append(domain.RoleAssistant, ResetMessage, now)
}

// Suggestions returns the suggested questions while the conversation is fresh
func (c *Conversation) Suggestions() []string {
	if len(c.Turns) > suggestionWindow {
		return []string{}
	}
	return SuggestedQuestions
}
