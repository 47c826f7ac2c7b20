// internal/orchestrator/orchestrator_test.go
package orchestrator

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"loksarthi/internal/ai"
	"loksarthi/internal/common/logger"
	"loksarthi/internal/common/observability"
	"loksarthi/internal/models"
	"loksarthi/internal/scheme"
)

type stubIntents struct {
	result *ai.IntentResult
}

func (s *stubIntents) DetectIntent(context.Context, string, []models.Message) *ai.IntentResult {
	if s.result.ProfileUpdates == nil {
		s.result.ProfileUpdates = map[string]interface{}{}
	}
	return s.result
}

type stubGenerator struct {
	response string
	err      error
	prompts  []string
}

func (g *stubGenerator) Generate(_ context.Context, systemPrompt, _ string, _ []models.Message) (string, error) {
	g.prompts = append(g.prompts, systemPrompt)
	return g.response, g.err
}

type stubPillar struct {
	response string
	err      error
	calls    int
}

func (p *stubPillar) Handle(context.Context, string, *models.CitizenProfile, string) (string, error) {
	p.calls++
	return p.response, p.err
}

type stubTranslator struct {
	out   string
	calls int
}

func (t *stubTranslator) TranslateText(_ context.Context, text, _, _ string) (string, error) {
	t.calls++
	if t.out == "" {
		return text, nil
	}
	return t.out, nil
}

type stubSpeech struct {
	audio string
	err   error
	texts []string
}

func (s *stubSpeech) Synthesize(_ context.Context, text string) (string, error) {
	s.texts = append(s.texts, text)
	return s.audio, s.err
}

func discoveryCatalog() *scheme.Catalog {
	return scheme.NewCatalog([]models.Scheme{
		{
			SchemeID:      "jan-dhan",
			Name:          "PM Jan Dhan Yojana",
			NameHindi:     "पीएम जन धन योजना",
			BenefitAmount: "Zero-balance bank account",
			Eligibility:   &models.EligibilityRules{},
		},
		{
			SchemeID:      "pension-60",
			Name:          "Old Age Pension",
			BenefitAmount: "₹1,000 per month",
			Eligibility:   &models.EligibilityRules{AgeMin: models.IntPtr(60)},
		},
	})
}

type fixture struct {
	orch      *Orchestrator
	intents   *stubIntents
	generator *stubGenerator
	rti       *stubPillar
	financial *stubPillar
	speech    *stubSpeech
	translate *stubTranslator
}

func newFixture(intent *ai.IntentResult) *fixture {
	f := &fixture{
		intents:   &stubIntents{result: intent},
		generator: &stubGenerator{response: "model explanation"},
		rti:       &stubPillar{response: "rti response"},
		financial: &stubPillar{response: "financial response"},
		speech:    &stubSpeech{audio: "bW9ja21wMw=="},
		translate: &stubTranslator{},
	}
	f.orch = New(Options{
		Intents:    f.intents,
		Generator:  f.generator,
		Matcher:    scheme.NewMatcher(discoveryCatalog()),
		Completer:  scheme.NewProfileCompleter(scheme.DefaultCompleteThreshold),
		RTI:        f.rti,
		Financial:  f.financial,
		Translator: f.translate,
		Speech:     f.speech,
		Logger:     logger.NewNoOpLogger(),
	})
	return f
}

func TestProcessMessage_Greeting(t *testing.T) {
	f := newFixture(&ai.IntentResult{Intent: ai.IntentGreeting, LanguageDetected: "hi"})
	session := models.NewSession("")

	response := f.orch.ProcessMessage(context.Background(), session, "namaste")

	assert.Equal(t, GreetingResponse("hi"), response.Text)
	assert.Equal(t, models.PillarGreeting, response.Pillar)
	assert.Equal(t, "hi", response.Language)

	// Both turns are recorded on the session.
	require.Len(t, session.ConversationHistory, 2)
	assert.Equal(t, "user", session.ConversationHistory[0].Role)
	assert.Equal(t, "namaste", session.ConversationHistory[0].Content)
	assert.Equal(t, "assistant", session.ConversationHistory[1].Role)
}

func TestProcessMessage_LanguageSwitch(t *testing.T) {
	tests := []struct {
		name     string
		detected string
		expected string
	}{
		{"supported language adopted", "ta", "ta"},
		{"english adopted", "en", "en"},
		{"unsupported language ignored", "fr", models.DefaultLanguage},
		{"blank ignored", "", models.DefaultLanguage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(&ai.IntentResult{Intent: ai.IntentGreeting, LanguageDetected: tt.detected})
			session := models.NewSession("")

			response := f.orch.ProcessMessage(context.Background(), session, "hello")
			assert.Equal(t, tt.expected, session.Language)
			assert.Equal(t, tt.expected, response.Language)
		})
	}
}

func TestProcessMessage_AppliesProfileUpdates(t *testing.T) {
	f := newFixture(&ai.IntentResult{
		Intent:           ai.IntentProfileUpdate,
		LanguageDetected: "hi",
		ProfileUpdates: map[string]interface{}{
			"age":        float64(62), // JSON numbers decode as float64
			"occupation": "farmer",
			"bpl_status": true,
			"unknown":    "ignored",
		},
	})
	session := models.NewSession("")

	f.orch.ProcessMessage(context.Background(), session, "main 62 saal ka kisan hoon, BPL card hai")

	require.NotNil(t, session.Profile.Age)
	assert.Equal(t, 62, *session.Profile.Age)
	require.NotNil(t, session.Profile.Occupation)
	assert.Equal(t, "farmer", *session.Profile.Occupation)
	require.NotNil(t, session.Profile.BPLStatus)
	assert.True(t, *session.Profile.BPLStatus)
}

func TestProcessMessage_DiscoveryAsksFirstQuestion(t *testing.T) {
	f := newFixture(&ai.IntentResult{Intent: ai.IntentSchemeDiscovery, LanguageDetected: "hi"})
	session := models.NewSession("")

	response := f.orch.ProcessMessage(context.Background(), session, "mere liye yojana batao")

	assert.Equal(t, models.PillarSchemeDiscovery, response.Pillar)
	assert.True(t, strings.HasPrefix(response.Text, profilingIntros["hi"]))
	assert.Contains(t, response.Text, ProfileQuestion(models.FieldAge, "hi"))
	assert.Empty(t, response.Schemes)
}

func TestProcessMessage_DiscoveryAsksNextQuestion(t *testing.T) {
	f := newFixture(&ai.IntentResult{Intent: ai.IntentSchemeDiscovery, LanguageDetected: "en"})
	session := models.NewSession("")
	session.Language = "en"
	session.Profile.Age = models.IntPtr(62)

	response := f.orch.ProcessMessage(context.Background(), session, "I am 62 years old")

	assert.Contains(t, response.Text, "Thank you! 👍 Next question:")
	assert.Contains(t, response.Text, ProfileQuestion(models.FieldGender, "en"))
}

func TestProcessMessage_DiscoveryMatchesWhenProfileSufficient(t *testing.T) {
	f := newFixture(&ai.IntentResult{Intent: ai.IntentSchemeDiscovery, LanguageDetected: "hi"})
	session := models.NewSession("")
	session.Profile.Age = models.IntPtr(62)
	session.Profile.Gender = models.StringPtr("male")
	session.Profile.State = models.StringPtr("Bihar")

	response := f.orch.ProcessMessage(context.Background(), session, "ab yojana batao")

	assert.Equal(t, "model explanation", response.Text)
	require.Len(t, response.Schemes, 2)
	assert.Equal(t, session.MatchedSchemes, response.Schemes)

	// The explanation prompt carries the matched schemes.
	require.Len(t, f.generator.prompts, 1)
	assert.Contains(t, f.generator.prompts[0], "PM Jan Dhan Yojana")
	assert.Contains(t, f.generator.prompts[0], "Old Age Pension")
}

func TestProcessMessage_DiscoveryExplainFailureFallsBackToPlainList(t *testing.T) {
	f := newFixture(&ai.IntentResult{Intent: ai.IntentSchemeDiscovery, LanguageDetected: "hi"})
	f.generator.err = errors.New("model unavailable")
	session := models.NewSession("")
	session.Profile.Age = models.IntPtr(62)
	session.Profile.Gender = models.StringPtr("male")
	session.Profile.State = models.StringPtr("Bihar")

	response := f.orch.ProcessMessage(context.Background(), session, "yojana batao")

	assert.Contains(t, response.Text, "पीएम जन धन योजना")
	assert.Contains(t, response.Text, "₹1,000 per month")
	require.Len(t, response.Schemes, 2)
}

func TestProcessMessage_RoutesToPillars(t *testing.T) {
	tests := []struct {
		name   string
		intent string
		pillar string
	}{
		{"rti intent", ai.IntentRTI, models.PillarRTI},
		{"financial intent", ai.IntentFinancial, models.PillarFinancial},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(&ai.IntentResult{Intent: tt.intent, LanguageDetected: "hi"})
			session := models.NewSession("")

			response := f.orch.ProcessMessage(context.Background(), session, "message")
			assert.Equal(t, tt.pillar, response.Pillar)
			assert.Equal(t, tt.pillar, session.CurrentPillar)
		})
	}
}

func TestProcessMessage_UnknownIntentContinuesCurrentPillar(t *testing.T) {
	f := newFixture(&ai.IntentResult{Intent: "something_else", LanguageDetected: "hi"})
	session := models.NewSession("")
	session.CurrentPillar = models.PillarRTI

	response := f.orch.ProcessMessage(context.Background(), session, "haan theek hai")

	assert.Equal(t, "rti response", response.Text)
	assert.Equal(t, 1, f.rti.calls)
	assert.Equal(t, models.PillarRTI, session.CurrentPillar)
}

func TestProcessMessage_UnknownIntentWithoutFlowGreets(t *testing.T) {
	f := newFixture(&ai.IntentResult{Intent: "something_else", LanguageDetected: "hi"})
	session := models.NewSession("")

	response := f.orch.ProcessMessage(context.Background(), session, "hmm")
	assert.Equal(t, GreetingResponse("hi"), response.Text)
}

func TestProcessMessage_PillarFailureDegradesToApology(t *testing.T) {
	f := newFixture(&ai.IntentResult{Intent: ai.IntentRTI, LanguageDetected: "hi"})
	f.rti.err = errors.New("model unavailable")
	session := models.NewSession("")

	response := f.orch.ProcessMessage(context.Background(), session, "pension nahi aa rahi hai complaint karni hai")

	assert.Equal(t, pillarFallback("hi"), response.Text)
	// The apology is still recorded so the conversation stays consistent.
	require.Len(t, session.ConversationHistory, 2)
	assert.Equal(t, pillarFallback("hi"), session.ConversationHistory[1].Content)
}

// ==========================================================================
// Speech synthesis
// ==========================================================================

func TestSynthesizeAudio_ShortResponse(t *testing.T) {
	f := newFixture(&ai.IntentResult{Intent: ai.IntentRTI, LanguageDetected: "hi"})
	f.rti.response = "chhota jawab"
	session := models.NewSession("")

	response := f.orch.ProcessMessage(context.Background(), session, "rti ke baare mein batao jaldi se")

	assert.Equal(t, "bW9ja21wMw==", response.AudioBase64)
	require.Len(t, f.speech.texts, 1)
	assert.Equal(t, "chhota jawab", f.speech.texts[0])
	assert.Zero(t, f.translate.calls, "hindi responses need no translation for speech")
}

func TestSynthesizeAudio_LongResponseSkipped(t *testing.T) {
	f := newFixture(&ai.IntentResult{Intent: ai.IntentRTI, LanguageDetected: "hi"})
	f.rti.response = strings.Repeat("बहुत लंबा जवाब ", 100)
	session := models.NewSession("")

	response := f.orch.ProcessMessage(context.Background(), session, "complaint hai")

	assert.Empty(t, response.AudioBase64)
	assert.Empty(t, f.speech.texts)
}

func TestSynthesizeAudio_TranslatesUnsupportedVoiceLanguage(t *testing.T) {
	f := newFixture(&ai.IntentResult{Intent: ai.IntentRTI, LanguageDetected: "ta"})
	f.rti.response = "tamil response text"
	f.translate.out = "hindi translation"
	session := models.NewSession("")

	response := f.orch.ProcessMessage(context.Background(), session, "vanakkam")

	assert.Equal(t, 1, f.translate.calls)
	require.Len(t, f.speech.texts, 1)
	assert.Equal(t, "hindi translation", f.speech.texts[0])
	assert.Equal(t, "bW9ja21wMw==", response.AudioBase64)
}

func TestSynthesizeAudio_SynthesisFailureReturnsTextOnly(t *testing.T) {
	f := newFixture(&ai.IntentResult{Intent: ai.IntentGreeting, LanguageDetected: "en"})
	f.speech.err = errors.New("polly unavailable")
	session := models.NewSession("")

	response := f.orch.ProcessMessage(context.Background(), session, "hello")
	assert.NotEmpty(t, response.Text)
	assert.Empty(t, response.AudioBase64)
}

func TestExplainSchemes_NoMatches(t *testing.T) {
	f := newFixture(&ai.IntentResult{Intent: ai.IntentSchemeDiscovery})
	text := f.orch.explainSchemes(context.Background(), nil, &models.CitizenProfile{}, "en")
	assert.Contains(t, text, "couldn't find any matching schemes")
}

func TestProcessMessage_OpensSpanPerTurn(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	defer tp.Shutdown(context.Background())

	f := newFixture(&ai.IntentResult{Intent: ai.IntentRTI, LanguageDetected: "hi"})
	f.orch.obs = observability.NewWithTracer(tp.Tracer("loksarthi"))
	session := models.NewSession("")

	f.orch.ProcessMessage(context.Background(), session, "ration card ke liye shikayat karni hai")

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "orchestrator.process_message", spans[0].Name())

	attrs := attribute.NewSet(spans[0].Attributes()...)
	pillar, ok := attrs.Value(attribute.Key("pillar"))
	require.True(t, ok)
	assert.Equal(t, models.PillarRTI, pillar.AsString())
}

func TestProcessMessage_NoObservabilityStillWorks(t *testing.T) {
	f := newFixture(&ai.IntentResult{Intent: ai.IntentGreeting, LanguageDetected: "hi"})
	session := models.NewSession("")

	response := f.orch.ProcessMessage(context.Background(), session, "namaste")
	assert.NotEmpty(t, response.Text)
}
