// internal/services/rti/assistant.go

// Package rti turns plain-language grievances into formal RTI applications
// under Section 6(1) of the Right to Information Act, 2005.
package rti

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"loksarthi/internal/ai"
	stderrors "loksarthi/internal/common/errors"
	"loksarthi/internal/common/logger"
	"loksarthi/internal/common/metrics"
	"loksarthi/internal/models"
)

// shortMessageWords is the cutoff below which a message is treated as a
// question about RTI rather than a substantial complaint worth drafting for.
const shortMessageWords = 10

// Classification is the structured reading of one complaint.
type Classification struct {
	Category         string `json:"category"`
	Department       string `json:"department"`
	IssueSummary     string `json:"issue_summary"`
	Location         string `json:"location"`
	Duration         string `json:"duration"`
	PreviousAttempts string `json:"previous_attempts"`
}

const classifySystemPrompt = `You are an RTI expert for India. Analyze the citizen's complaint and classify it.

Return ONLY valid JSON:
{
    "category": one of ["ration_card_delay", "pension_delay", "road_repair", "water_supply", "scheme_benefit_not_received", "electricity_issue", "mgnrega_wage_delay", "general"],
    "department": "specific government department name",
    "issue_summary": "one-line summary of the issue",
    "location": "city/district/state mentioned",
    "duration": "how long the issue has persisted",
    "previous_attempts": "any previous complaints mentioned"
}`

// Assistant drafts RTI applications and answers RTI questions.
type Assistant struct {
	generator ai.Generator
	logger    logger.Logger
}

func NewAssistant(generator ai.Generator, log logger.Logger) *Assistant {
	return &Assistant{
		generator: generator,
		logger:    log.WithFields(map[string]interface{}{"component": "rti-assistant"}),
	}
}

// Classify categorizes a complaint. Model or parse failures degrade to the
// general category with the complaint text as the summary, never to an error.
func (a *Assistant) Classify(ctx context.Context, complaint string) *Classification {
	start := time.Now()
	response, err := a.generator.Generate(ctx, classifySystemPrompt, complaint, nil)
	metrics.LLMCallDuration.WithLabelValues("rti_classify").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.LLMCallFailures.WithLabelValues("rti_classify").Inc()
		a.logger.Warn("complaint classification failed, using general template", map[string]interface{}{
			"error": err.Error(),
		})
		return fallbackClassification(complaint)
	}

	var result Classification
	if err := json.Unmarshal([]byte(ai.StripCodeFence(response)), &result); err != nil {
		a.logger.Warn("classification response was not valid JSON, using general template", map[string]interface{}{
			"error": err.Error(),
		})
		return fallbackClassification(complaint)
	}

	if _, ok := templates[result.Category]; !ok {
		result.Category = CategoryGeneral
	}
	return &result
}

func fallbackClassification(complaint string) *Classification {
	summary := complaint
	if len(summary) > 200 {
		summary = summary[:200]
	}
	return &Classification{
		Category:     CategoryGeneral,
		Department:   "Concerned department",
		IssueSummary: summary,
	}
}

// GenerateApplication drafts a complete formal RTI application for a
// complaint, with submission instructions appended.
func (a *Assistant) GenerateApplication(ctx context.Context, complaint string, profile *models.CitizenProfile) (string, error) {
	classification := a.Classify(ctx, complaint)
	template := TemplateFor(classification.Category)

	classificationJSON, _ := json.Marshal(classification)
	questionsJSON, _ := json.Marshal(template.Questions)

	state := "[State]"
	if profile.State != nil {
		state = *profile.State
	}
	district := "[District]"
	if profile.District != nil {
		district = *profile.District
	}

	systemPrompt := fmt.Sprintf(`You are an expert RTI application drafter for India.

COMPLAINT: %s
CLASSIFICATION: %s
TEMPLATE DEPARTMENT: %s
TEMPLATE PIO: %s
TEMPLATE FEE: %s
SUGGESTED QUESTIONS: %s

CITIZEN PROFILE:
Name: [Citizen's name - to be filled]
Address: %s, %s

Generate a COMPLETE, FORMAL RTI application in the following format:

---
**RTI APPLICATION**
Under Section 6(1) of the Right to Information Act, 2005

To,
The Public Information Officer,
[Department name],
[Address]

Subject: Application seeking information under RTI Act, 2005 regarding [issue]

Sir/Madam,

I, [Name], resident of [address], hereby seek the following information under the Right to Information Act, 2005:

[Numbered list of 4-6 specific, pointed questions about the issue]

I am enclosing the prescribed fee of %s [payment mode].

[If BPL: I belong to Below Poverty Line category and am exempted from paying the fee as per Section 7(5) of the RTI Act, 2005. A copy of my BPL certificate is enclosed.]

I request that the information be provided within the statutory period of 30 days.

Yours faithfully,
[Name]
[Address]
[Phone]
Date: [Current Date]

Enclosures:
1. Fee payment proof / BPL certificate
2. [Any relevant document copies]
---

Make the questions SPECIFIC to the citizen's actual complaint, not generic. Include the template questions but customize them.
Respond in English (the RTI application should be in English as it's a legal document).`,
		complaint, classificationJSON, template.Department, template.PIO, template.Fee, questionsJSON,
		state, district, template.Fee)

	start := time.Now()
	application, err := a.generator.Generate(ctx, systemPrompt, complaint, nil)
	metrics.LLMCallDuration.WithLabelValues("rti_draft").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.LLMCallFailures.WithLabelValues("rti_draft").Inc()
		return "", stderrors.NewLLMSynthesisFailedError(err)
	}

	return application + submissionInstructions(template), nil
}

func submissionInstructions(t Template) string {
	return fmt.Sprintf(`

📋 **HOW TO SUBMIT THIS RTI:**

1. **Online (Easiest):** Go to rtionline.gov.in → Click "Submit Request" → Select department → Paste this application → Pay ₹10 online
2. **By Post:** Print this, attach ₹10 postal order/DD, send by registered post to the PIO address
3. **In Person:** Visit the PIO office with this application and ₹10 fee

⏰ **Timeline:** You will receive a response within 30 days. If not, you can file a First Appeal.
💡 **Tip:** Keep a copy of the application and acknowledgment receipt for your records.
🆓 **BPL Citizens:** You are exempted from the ₹10 fee. Attach your BPL certificate instead.

Department: %s
PIO: %s
`, t.Department, t.PIO)
}

// Handle serves one RTI turn. Substantial complaints get a drafted
// application plus a plain-language explanation; short messages get a
// conversational answer about the RTI process.
func (a *Assistant) Handle(ctx context.Context, userMessage string, profile *models.CitizenProfile, language string) (string, error) {
	if len(strings.Fields(userMessage)) > shortMessageWords {
		application, err := a.GenerateApplication(ctx, userMessage, profile)
		if err != nil {
			return "", err
		}

		explanationPrompt := fmt.Sprintf(`Explain to the citizen in %s language (use simple words):
1. You have created an RTI application for them
2. Their complaint is about: [summarize briefly]
3. They need to submit it to [department]
4. It will cost ₹10 (free for BPL)
5. They will get a response in 30 days
6. Ask if they want to modify anything

Keep it warm, encouraging, and simple. Use phrases like "Aapki RTI tayyar hai!"`, language)

		start := time.Now()
		explanation, err := a.generator.Generate(ctx, explanationPrompt, userMessage, nil)
		metrics.LLMCallDuration.WithLabelValues("rti_explain").Observe(time.Since(start).Seconds())
		if err != nil {
			metrics.LLMCallFailures.WithLabelValues("rti_explain").Inc()
			// The drafted application still has value without the explanation.
			a.logger.Warn("explanation generation failed, returning application only", map[string]interface{}{
				"error": err.Error(),
			})
			return application, nil
		}
		return explanation + "\n\n" + application, nil
	}

	profileJSON, _ := json.Marshal(profile)
	systemPrompt := fmt.Sprintf(`You are LokSarthi's RTI Assistant. The citizen wants to file an RTI or grievance.

CITIZEN'S MESSAGE: %s
CITIZEN PROFILE: %s

Determine what the citizen needs:
1. If they have a clear complaint → Generate the RTI application
2. If the complaint is vague → Ask clarifying questions (which department? what happened? when? where?)
3. If they want to know about RTI → Explain what RTI is and how it works

Respond in the citizen's language (%s). Be empathetic and encouraging.
If generating an RTI, also explain in simple language what you've done and next steps.`, userMessage, profileJSON, language)

	start := time.Now()
	response, err := a.generator.Generate(ctx, systemPrompt, userMessage, nil)
	metrics.LLMCallDuration.WithLabelValues("rti_handle").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.LLMCallFailures.WithLabelValues("rti_handle").Inc()
		return "", stderrors.NewLLMSynthesisFailedError(err)
	}
	return response, nil
}
