// internal/ai/intent.go
package ai

import (
	"context"
	"encoding/json"
	"strings"

	"loksarthi/internal/common/logger"
	"loksarthi/internal/models"
)

// Intents the classifier can return.
const (
	IntentGreeting        = "greeting"
	IntentSchemeDiscovery = "scheme_discovery"
	IntentProfileUpdate   = "profile_update"
	IntentRTI             = "rti"
	IntentFinancial       = "financial"
)

// IntentResult is the structured classification of one user message.
type IntentResult struct {
	Intent           string                 `json:"intent"`
	ProfileUpdates   map[string]interface{} `json:"profile_updates"`
	LanguageDetected string                 `json:"language_detected"`
}

const intentSystemPrompt = `You are LokSarthi's intent classifier. Analyze the user's message and return a JSON response.

INTENTS:
- "greeting": User is greeting, asking what the service does, or starting a conversation
- "scheme_discovery": User wants to find government schemes they're eligible for
- "rti": User wants to file an RTI application, grievance, or complaint against a government department
- "financial": User asks about loans, interest rates, savings, scams, or financial advice
- "profile_update": User is providing personal information (age, occupation, location, etc.)

PROFILE EXTRACTION:
Extract any personal details mentioned. Map to these fields:
- age (integer)
- gender ("male"/"female"/"other")
- state (Indian state name in English)
- district (district name)
- occupation ("farmer"/"labourer"/"vendor"/"student"/"homemaker"/"unemployed"/"other")
- category ("general"/"sc"/"st"/"obc"/"minority")
- annual_income (integer in INR)
- bpl_status (true/false)
- disability (true/false)
- marital_status ("married"/"widowed"/"single"/"divorced")
- land_ownership (true/false)
- education_level ("none"/"primary"/"secondary"/"graduate")
- family_members (integer)
- children_count (integer)

IMPORTANT: The user may write in Hindi, Tamil, Telugu, or other Indian languages transliterated in English. Understand the meaning regardless of language.

Respond ONLY with valid JSON, no other text:
{"intent": "...", "profile_updates": {...}, "language_detected": "..."}`

// Classifier wraps the generator with intent detection and profile
// extraction. Any model or parse failure degrades to a greeting result so a
// broken classifier never breaks the conversation.
type Classifier struct {
	generator Generator
	logger    logger.Logger
}

func NewClassifier(generator Generator, log logger.Logger) *Classifier {
	return &Classifier{
		generator: generator,
		logger:    log.WithFields(map[string]interface{}{"component": "intent-classifier"}),
	}
}

func (c *Classifier) DetectIntent(ctx context.Context, userMessage string, history []models.Message) *IntentResult {
	response, err := c.generator.Generate(ctx, intentSystemPrompt, userMessage, TrimHistory(history))
	if err != nil {
		c.logger.Warn("intent classification failed, defaulting to greeting", map[string]interface{}{
			"error": err.Error(),
		})
		return defaultIntentResult()
	}

	var result IntentResult
	if err := json.Unmarshal([]byte(StripCodeFence(response)), &result); err != nil {
		c.logger.Warn("intent response was not valid JSON, defaulting to greeting", map[string]interface{}{
			"error": err.Error(),
		})
		return defaultIntentResult()
	}

	if result.Intent == "" {
		result.Intent = IntentGreeting
	}
	if result.ProfileUpdates == nil {
		result.ProfileUpdates = map[string]interface{}{}
	}
	return &result
}

func defaultIntentResult() *IntentResult {
	return &IntentResult{
		Intent:           IntentGreeting,
		ProfileUpdates:   map[string]interface{}{},
		LanguageDetected: models.DefaultLanguage,
	}
}

// StripCodeFence removes a markdown code fence the model sometimes wraps
// around JSON output.
func StripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	if idx := strings.Index(s, "\n"); idx >= 0 {
		s = s[idx+1:]
	}
	if idx := strings.LastIndex(s, "```"); idx >= 0 {
		s = s[:idx]
	}
	return strings.TrimSpace(s)
}
