// internal/models/session_test.go
package models

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSession(t *testing.T) {
	s := NewSession("fixed-id")
	assert.Equal(t, "fixed-id", s.SessionID)
	assert.Equal(t, DefaultLanguage, s.Language)
	assert.Equal(t, PillarGreeting, s.CurrentPillar)
	assert.NotZero(t, s.CreatedAt)

	generated := NewSession("")
	assert.NotEmpty(t, generated.SessionID)
	assert.NotEqual(t, NewSession("").SessionID, generated.SessionID)
}

func TestAddMessage_TrimsHistory(t *testing.T) {
	s := NewSession("")
	for i := 0; i < 25; i++ {
		s.AddMessage("user", fmt.Sprintf("message %d", i))
	}

	require.Len(t, s.ConversationHistory, maxStoredMessages)
	// The oldest turns were dropped, the newest kept.
	assert.Equal(t, "message 5", s.ConversationHistory[0].Content)
	assert.Equal(t, "message 24", s.ConversationHistory[len(s.ConversationHistory)-1].Content)
}

func TestRecentHistory(t *testing.T) {
	s := NewSession("")
	for i := 0; i < 10; i++ {
		s.AddMessage("user", fmt.Sprintf("message %d", i))
	}

	recent := s.RecentHistory(4)
	require.Len(t, recent, 4)
	assert.Equal(t, "message 6", recent[0].Content)

	// Asking for more than exists returns everything.
	assert.Len(t, s.RecentHistory(50), 10)
	assert.Len(t, s.RecentHistory(0), 10)
}
