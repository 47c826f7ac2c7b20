// internal/ai/generator.go
package ai

import (
	"context"

	"loksarthi/internal/models"
)

// Generator is the contract for the hosted text-generation collaborator. The
// model is a black box: it receives a system prompt, the current user message
// and recent conversation history, and returns text.
type Generator interface {
	Generate(ctx context.Context, systemPrompt, userMessage string, history []models.Message) (string, error)
}

// HistoryWindow is how many recent messages are forwarded as model context.
const HistoryWindow = 6

// TrimHistory bounds the context sent to the model.
func TrimHistory(history []models.Message) []models.Message {
	if len(history) <= HistoryWindow {
		return history
	}
	return history[len(history)-HistoryWindow:]
}
