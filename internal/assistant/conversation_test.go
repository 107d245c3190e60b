package assistant_test

import (
	"testing"
	"time"

	"github.com/Rrens/kopiloka/internal/assistant"
	"github.com/Rrens/kopiloka/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConversation_Lifecycle(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	c := assistant.NewConversation(now)

	require.Len(t, c.Turns, 1)
	assert.Equal(t, domain.RoleAssistant, c.Turns[0].Role)
	assert.Equal(t, assistant.WelcomeMessage, c.Turns[0].Content)
	assert.Equal(t, assistant.SuggestedQuestions, c.Suggestions())

	c.Append(domain.RoleUser, "halo", now)
	c.Append(domain.RoleAssistant, "hai", now)
	assert.Len(t, c.Turns, 3)
	assert.Empty(t, c.Suggestions())
	assert.NotEqual(t, c.Turns[1].ID, c.Turns[2].ID)

	c.Reset(now)
	require.Len(t, c.Turns, 1)
	assert.Equal(t, assistant.ResetMessage, c.Turns[0].Content)
}
