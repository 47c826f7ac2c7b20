// internal/services/financial/advisor.go

// Package financial provides loan cost calculation, scam detection and
// financial literacy responses for citizens who are likely targets of
// predatory lending.
package financial

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

// Advisor answers financial queries, with scam detection short-circuiting
// ahead of any model call.
type Advisor struct {
	generator ai.Generator
	logger    logger.Logger
}

func NewAdvisor(generator ai.Generator, log logger.Logger) *Advisor {
	return &Advisor{
		generator: generator,
		logger:    log.WithFields(map[string]interface{}{"component": "financial-advisor"}),
	}
}

// Handle serves one financial turn. Known scam patterns return an immediate
// warning without consulting the model.
func (a *Advisor) Handle(ctx context.Context, userMessage string, profile *models.CitizenProfile, language string) (string, error) {
	if alert := DetectScam(userMessage); alert.IsScam {
		a.logger.Info("scam pattern detected in user message", map[string]interface{}{
			"language": language,
		})
		return alert.Alert(language), nil
	}

	profileJSON, _ := json.Marshal(profile)

	alternatives := make([]string, 0, len(GovtLoanSchemes))
	for _, s := range GovtLoanSchemes {
		alternatives = append(alternatives,
			fmt.Sprintf("- %s: %s interest, %s, for %s", s.Name, s.Rate, s.Amount, s.For))
	}

	systemPrompt := fmt.Sprintf(`You are LokSarthi's Financial Advisor. Help the citizen with financial literacy.

CITIZEN PROFILE: %s
LANGUAGE: %s

GOVERNMENT LOAN ALTERNATIVES (always mention these as better options):
%s

YOUR CAPABILITIES:
1. **Loan Explanation**: If they mention a loan amount/rate, calculate EMI and explain in exact ₹ amounts
2. **Fraud Detection**: Flag predatory rates (>36%% annual = exploitative, >24%% = high)
3. **Scam Alert**: Warn about OTP scams, advance fee frauds, fake lotteries
4. **Government Alternatives**: Always suggest cheaper government loan schemes
5. **Savings Advice**: Explain Sukanya Samriddhi, PPF, PM Jan Dhan benefits
6. **GST Basics**: Simple explanation if asked

RULES:
- Always use exact ₹ amounts, never percentages alone
- Compare sahukar/private rates with government rates
- Be protective and assume the citizen might be getting exploited
- Respond in %s language
- Use simple, everyday words
- If they mention monthly rates (like "5%% per month"), convert to annual (5%% × 12 = 60%% annual!) and flag it

Example: If someone says "sahukar is offering 5%% monthly rate on ₹50,000 loan":
- Convert: 5%% monthly = 60%% annual, which is EXPLOITATIVE!
- Calculate exact EMI and total repayment
- Show how much they'd save with PM MUDRA at 8%% instead
- Guide them to apply for MUDRA loan`,
		profileJSON, language, strings.Join(alternatives, "\n"), language)

	start := time.Now()
	response, err := a.generator.Generate(ctx, systemPrompt, userMessage, nil)
	metrics.LLMCallDuration.WithLabelValues("financial_handle").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.LLMCallFailures.WithLabelValues("financial_handle").Inc()
		return "", stderrors.NewLLMSynthesisFailedError(err)
	}
	return response, nil
}
