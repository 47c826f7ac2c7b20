// internal/orchestrator/orchestrator.go

// Package orchestrator is the central brain of the conversation. Each user
// message flows through intent detection, profile extraction, pillar routing
// and optional speech synthesis, mutating the session as it goes.
package orchestrator

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"loksarthi/internal/ai"
	"loksarthi/internal/common/logger"
	"loksarthi/internal/common/metrics"
	"loksarthi/internal/common/observability"
	"loksarthi/internal/models"
	"loksarthi/internal/scheme"
)

// ttsMaxRunes caps how long a response may be before audio generation is
// skipped. Speech synthesis is billed per character.
const (
	ttsMaxRunes       = 500
	ttsTranslateRunes = 300
)

// IntentDetector classifies one user message in conversation context.
type IntentDetector interface {
	DetectIntent(ctx context.Context, userMessage string, history []models.Message) *ai.IntentResult
}

// PillarHandler serves one conversational turn for a service pillar.
type PillarHandler interface {
	Handle(ctx context.Context, userMessage string, profile *models.CitizenProfile, language string) (string, error)
}

// Translator converts text between supported languages.
type Translator interface {
	TranslateText(ctx context.Context, text, sourceLang, targetLang string) (string, error)
}

// SpeechSynthesizer renders text to base64-encoded audio.
type SpeechSynthesizer interface {
	Synthesize(ctx context.Context, text string) (string, error)
}

// Response is the result of one processed message.
type Response struct {
	Text        string                 `json:"text"`
	AudioBase64 string                 `json:"audio_base64,omitempty"`
	Language    string                 `json:"language"`
	Pillar      string                 `json:"pillar"`
	Schemes     []models.MatchedScheme `json:"schemes,omitempty"`
}

// Options wires the orchestrator's collaborators. Translator, Speech and
// Observability are optional; absent ones disable the corresponding step.
type Options struct {
	Intents       IntentDetector
	Generator     ai.Generator
	Matcher       *scheme.Matcher
	Completer     *scheme.ProfileCompleter
	RTI           PillarHandler
	Financial     PillarHandler
	Translator    Translator
	Speech        SpeechSynthesizer
	Observability *observability.Observability
	AskThreshold  float64
	MaxResults    int
	Logger        logger.Logger
}

// Orchestrator routes user messages to the correct service pillar.
type Orchestrator struct {
	intents      IntentDetector
	generator    ai.Generator
	matcher      *scheme.Matcher
	completer    *scheme.ProfileCompleter
	rti          PillarHandler
	financial    PillarHandler
	translator   Translator
	speech       SpeechSynthesizer
	obs          *observability.Observability
	askThreshold float64
	maxResults   int
	logger       logger.Logger
}

func New(opts Options) *Orchestrator {
	if opts.AskThreshold <= 0 {
		opts.AskThreshold = scheme.DefaultAskThreshold
	}
	if opts.MaxResults <= 0 {
		opts.MaxResults = scheme.DefaultMaxResults
	}
	return &Orchestrator{
		intents:      opts.Intents,
		generator:    opts.Generator,
		matcher:      opts.Matcher,
		completer:    opts.Completer,
		rti:          opts.RTI,
		financial:    opts.Financial,
		translator:   opts.Translator,
		speech:       opts.Speech,
		obs:          opts.Observability,
		askThreshold: opts.AskThreshold,
		maxResults:   opts.MaxResults,
		logger:       opts.Logger.WithFields(map[string]interface{}{"component": "orchestrator"}),
	}
}

// ProcessMessage runs one full conversational turn. The session is mutated
// in place; persisting it is the caller's job.
func (o *Orchestrator) ProcessMessage(ctx context.Context, session *models.Session, userMessage string) *Response {
	start := time.Now()

	if o.obs != nil {
		var span trace.Span
		ctx, span = o.obs.StartTurn(ctx, session.CurrentPillar)
		defer func() {
			// The pillar is only known once routing resolves.
			span.SetAttributes(attribute.String("pillar", session.CurrentPillar))
			span.End()
		}()
	}

	intent := o.intents.DetectIntent(ctx, userMessage, session.RecentHistory(ai.HistoryWindow))
	metrics.IntentsDetected.WithLabelValues(intent.Intent).Inc()

	if IsSupportedLanguage(intent.LanguageDetected) {
		session.Language = intent.LanguageDetected
	}
	language := session.Language

	for _, err := range session.Profile.ApplyUpdates(intent.ProfileUpdates) {
		o.logger.Warn("discarding unusable profile update", map[string]interface{}{
			"session_id": session.SessionID,
			"error":      err.Error(),
		})
	}

	session.AddMessage("user", userMessage)

	var responseText string
	switch intent.Intent {
	case ai.IntentGreeting:
		session.CurrentPillar = models.PillarGreeting
		responseText = GreetingResponse(language)

	case ai.IntentSchemeDiscovery, ai.IntentProfileUpdate:
		session.CurrentPillar = models.PillarSchemeDiscovery
		responseText = o.handleSchemeDiscovery(ctx, session, language)

	case ai.IntentRTI:
		session.CurrentPillar = models.PillarRTI
		responseText = o.handlePillar(ctx, o.rti, session, userMessage, language)

	case ai.IntentFinancial:
		session.CurrentPillar = models.PillarFinancial
		responseText = o.handlePillar(ctx, o.financial, session, userMessage, language)

	default:
		// Unknown intent: stay in the flow the citizen was already in.
		switch session.CurrentPillar {
		case models.PillarSchemeDiscovery:
			responseText = o.handleSchemeDiscovery(ctx, session, language)
		case models.PillarRTI:
			responseText = o.handlePillar(ctx, o.rti, session, userMessage, language)
		case models.PillarFinancial:
			responseText = o.handlePillar(ctx, o.financial, session, userMessage, language)
		default:
			responseText = GreetingResponse(language)
		}
	}

	session.AddMessage("assistant", responseText)

	metrics.MessagesProcessed.WithLabelValues(session.CurrentPillar).Inc()
	if o.obs != nil {
		o.obs.RecordMessageProcessed(ctx, session.CurrentPillar)
		o.obs.RecordTurnDuration(ctx, time.Since(start), session.CurrentPillar)
	}

	return &Response{
		Text:        responseText,
		AudioBase64: o.synthesizeAudio(ctx, responseText, language),
		Language:    language,
		Pillar:      session.CurrentPillar,
		Schemes:     session.MatchedSchemes,
	}
}

// handlePillar invokes a pillar handler, degrading to a static apology so a
// failed model call never breaks the conversation.
func (o *Orchestrator) handlePillar(ctx context.Context, handler PillarHandler, session *models.Session, userMessage, language string) string {
	response, err := handler.Handle(ctx, userMessage, &session.Profile, language)
	if err != nil {
		o.logger.Error("pillar handler failed", map[string]interface{}{
			"session_id": session.SessionID,
			"pillar":     session.CurrentPillar,
			"error":      err.Error(),
		})
		return pillarFallback(language)
	}
	return response
}

// synthesizeAudio produces base64 audio for short responses. Responses in
// languages the voice does not speak are first translated to Hindi. Any
// failure is logged and the turn proceeds without audio.
func (o *Orchestrator) synthesizeAudio(ctx context.Context, text, language string) string {
	if o.speech == nil {
		return ""
	}

	runes := []rune(text)
	if len(runes) >= ttsMaxRunes {
		return ""
	}

	ttsText := text
	if language != "hi" && language != "en" {
		if o.translator == nil {
			return ""
		}
		source := runes
		if len(source) > ttsTranslateRunes {
			source = source[:ttsTranslateRunes]
		}
		translated, err := o.translator.TranslateText(ctx, string(source), language, "hi")
		if err != nil {
			o.logger.Warn("translation for speech failed, skipping audio", map[string]interface{}{
				"error": err.Error(),
			})
			return ""
		}
		ttsText = translated
	}

	audio, err := o.speech.Synthesize(ctx, ttsText)
	if err != nil {
		o.logger.Warn("speech synthesis failed, returning text only", map[string]interface{}{
			"error": err.Error(),
		})
		return ""
	}
	return audio
}
