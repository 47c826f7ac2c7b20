// internal/orchestrator/discovery.go
package orchestrator

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"loksarthi/internal/common/metrics"
	"loksarthi/internal/models"
	"loksarthi/internal/scheme"
)

// explainTopSchemes caps how many matches are put in front of the model.
const explainTopSchemes = 5

// handleSchemeDiscovery runs the progressive-profiling loop. While the
// profile is below the ask threshold it keeps asking questions; once it is
// rich enough it matches and explains.
func (o *Orchestrator) handleSchemeDiscovery(ctx context.Context, session *models.Session, language string) string {
	next, ok := o.completer.NextQuestion(&session.Profile)
	completeness := session.Profile.CompletenessScore()

	if ok && completeness < o.askThreshold {
		question := ProfileQuestion(next, language)
		if completeness == 0 {
			intro, found := profilingIntros[language]
			if !found {
				intro = profilingIntros["en"]
			}
			return intro + question
		}
		if language == "hi" {
			return fmt.Sprintf("धन्यवाद! 👍 अगला सवाल:\n\n%s", question)
		}
		return fmt.Sprintf("Thank you! 👍 Next question:\n\n%s", question)
	}

	matches := o.matcher.Match(&session.Profile, o.maxResults)
	metrics.SchemeMatchesReturned.Observe(float64(len(matches)))
	session.MatchedSchemes = scheme.Summarize(matches)

	return o.explainSchemes(ctx, matches, &session.Profile, language)
}

// explainSchemes asks the model for a friendly explanation of the matched
// schemes. A model failure degrades to a plain formatted list so the citizen
// still sees their matches.
func (o *Orchestrator) explainSchemes(ctx context.Context, matches []scheme.Match, profile *models.CitizenProfile, language string) string {
	if len(matches) == 0 {
		return "I couldn't find any matching schemes based on your profile. Let me ask a few more questions to improve the results."
	}

	top := matches
	if len(top) > explainTopSchemes {
		top = top[:explainTopSchemes]
	}

	summaries := make([]string, 0, len(top))
	for i, match := range top {
		s := match.Scheme
		summaries = append(summaries, fmt.Sprintf(
			"%d. %s (%s)\n   Benefit: %s\n   Documents: %s\n   How to apply: %s",
			i+1, s.Name, s.NameHindi, s.BenefitAmount,
			strings.Join(s.Documents, ", "), s.HowToApply))
	}

	profileJSON, _ := json.Marshal(profile)
	systemPrompt := fmt.Sprintf(`You are LokSarthi, a warm and caring AI assistant helping Indian citizens discover government schemes.

CITIZEN PROFILE:
%s

MATCHED SCHEMES (ranked by relevance):
%s

INSTRUCTIONS:
1. Explain the top matched schemes in simple, everyday language (5th-grade level)
2. For each scheme, explain: what benefit they get, why they qualify, what documents to keep ready, and where to apply
3. Use ₹ amounts and real numbers
4. Be encouraging: "Aapko yeh milega!" (You will get this!)
5. If the language is Hindi, respond in Hindi. If English, respond in English.
6. Keep it conversational, not formal
7. At the end, ask if they want more details about any specific scheme
8. Mention that you can also help with RTI applications and financial advice`,
		profileJSON, strings.Join(summaries, "\n\n"))

	start := time.Now()
	explanation, err := o.generator.Generate(ctx, systemPrompt,
		fmt.Sprintf("Please explain my eligible schemes. My language is: %s", language), nil)
	metrics.LLMCallDuration.WithLabelValues("explain_schemes").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.LLMCallFailures.WithLabelValues("explain_schemes").Inc()
		o.logger.Warn("scheme explanation failed, returning plain list", map[string]interface{}{
			"error": err.Error(),
		})
		return plainSchemeList(top, language)
	}
	return explanation
}

// plainSchemeList is the no-model fallback rendering of matches.
func plainSchemeList(matches []scheme.Match, language string) string {
	var b strings.Builder
	if language == "hi" {
		b.WriteString("आपके लिए ये योजनाएँ मिली हैं:\n\n")
	} else {
		b.WriteString("Here are the schemes matched for you:\n\n")
	}
	for i, match := range matches {
		s := match.Scheme
		name := s.Name
		if language == "hi" && s.NameHindi != "" {
			name = s.NameHindi
		}
		b.WriteString(fmt.Sprintf("%d. %s: %s\n", i+1, name, s.BenefitAmount))
	}
	return b.String()
}
