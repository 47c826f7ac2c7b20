// internal/models/session.go
package models

import (
	"time"

	"github.com/google/uuid"
)

// Service pillars a session can be parked in.
const (
	PillarGreeting        = "greeting"
	PillarSchemeDiscovery = "scheme_discovery"
	PillarRTI             = "rti"
	PillarFinancial       = "financial"
)

const (
	// maxStoredMessages bounds the history persisted with a session.
	maxStoredMessages = 20
	// DefaultLanguage is Hindi, matching the primary audience.
	DefaultLanguage = "hi"
)

// Message is one turn of the conversation.
type Message struct {
	Role      string `json:"role"` // user or assistant
	Content   string `json:"content"`
	Timestamp int64  `json:"timestamp"`
}

// MatchedScheme is the trimmed match summary surfaced in API responses and
// kept on the session for follow-up turns.
type MatchedScheme struct {
	Name    string `json:"name"`
	Benefit string `json:"benefit"`
	Score   int    `json:"score"`
}

// Session is the conversation state for one citizen, persisted between turns.
type Session struct {
	SessionID           string         `json:"session_id"`
	UserID              string         `json:"user_id,omitempty"`
	Language            string         `json:"language"`
	CurrentPillar       string         `json:"current_pillar"`
	Profile             CitizenProfile `json:"profile"`
	ConversationHistory []Message      `json:"conversation_history"`
	MatchedSchemes      []MatchedScheme `json:"matched_schemes,omitempty"`
	CreatedAt           int64          `json:"created_at"`
	UpdatedAt           int64          `json:"updated_at"`
}

// NewSession creates an empty session. A blank id gets a fresh UUID.
func NewSession(id string) *Session {
	if id == "" {
		id = uuid.NewString()
	}
	now := time.Now().Unix()
	return &Session{
		SessionID:     id,
		Language:      DefaultLanguage,
		CurrentPillar: PillarGreeting,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// AddMessage appends a turn and trims stored history to the retention cap.
func (s *Session) AddMessage(role, content string) {
	s.ConversationHistory = append(s.ConversationHistory, Message{
		Role:      role,
		Content:   content,
		Timestamp: time.Now().Unix(),
	})
	if len(s.ConversationHistory) > maxStoredMessages {
		s.ConversationHistory = s.ConversationHistory[len(s.ConversationHistory)-maxStoredMessages:]
	}
	s.UpdatedAt = time.Now().Unix()
}

// RecentHistory returns the last n messages for model context.
func (s *Session) RecentHistory(n int) []Message {
	if n <= 0 || len(s.ConversationHistory) <= n {
		return s.ConversationHistory
	}
	return s.ConversationHistory[len(s.ConversationHistory)-n:]
}
