// internal/services/financial/advisor_test.go
package financial

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	stderrors "loksarthi/internal/common/errors"
	"loksarthi/internal/common/logger"
	"loksarthi/internal/models"
)

type scriptedGenerator struct {
	response string
	err      error
	prompts  []string
	calls    int
}

func (g *scriptedGenerator) Generate(_ context.Context, systemPrompt, _ string, _ []models.Message) (string, error) {
	g.calls++
	g.prompts = append(g.prompts, systemPrompt)
	return g.response, g.err
}

func TestDetectScam(t *testing.T) {
	tests := []struct {
		name    string
		message string
		isScam  bool
	}{
		{"otp request", "Bank wale ne phone par OTP batao bola", true},
		{"advance fee", "Loan ke liye paisa pehle jama karna hoga kya?", true},
		{"fake lottery", "Mujhe message aaya ki maine 25 lakh ki lottery jeeti hai", true},
		{"kyc phone call", "Koi bola mera KYC update karna hai phone par", true},
		{"suspicious link", "Ek link aaya hai bola link open karo form ke liye", true},
		{"legitimate emi question", "₹50,000 ka loan 12% par lena theek rahega?", false},
		{"savings question", "PPF mein paise kaise jama karein?", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			alert := DetectScam(tt.message)
			assert.Equal(t, tt.isScam, alert.IsScam)
			if tt.isScam {
				assert.NotEmpty(t, alert.AlertHindi)
				assert.NotEmpty(t, alert.AlertEnglish)
			}
		})
	}
}

func TestScamAlert_LanguageSelection(t *testing.T) {
	alert := DetectScam("share otp please")
	require.True(t, alert.IsScam)

	assert.Equal(t, alert.AlertHindi, alert.Alert("hi"))
	assert.Equal(t, alert.AlertEnglish, alert.Alert("en"))
	// Unsupported alert languages fall back to English.
	assert.Equal(t, alert.AlertEnglish, alert.Alert("ta"))
}

func TestHandle_ScamShortCircuitsModel(t *testing.T) {
	gen := &scriptedGenerator{response: "should never be used"}
	advisor := NewAdvisor(gen, logger.NewNoOpLogger())

	response, err := advisor.Handle(context.Background(), "mujhe lottery ka inam mila hai", &models.CitizenProfile{}, "hi")
	require.NoError(t, err)

	assert.Contains(t, response, "FRAUD")
	assert.Zero(t, gen.calls, "scam warnings must not spend a model call")
}

func TestHandle_QueryGoesToModel(t *testing.T) {
	gen := &scriptedGenerator{response: "₹50,000 par 8% MUDRA loan ki EMI ₹2,207 hogi 24 mahine ke liye."}
	advisor := NewAdvisor(gen, logger.NewNoOpLogger())

	profile := &models.CitizenProfile{Occupation: models.StringPtr("vendor")}
	response, err := advisor.Handle(context.Background(), "₹50,000 ka loan chahiye dukaan ke liye", profile, "hi")
	require.NoError(t, err)

	assert.Contains(t, response, "MUDRA")
	require.Len(t, gen.prompts, 1)
	// The prompt carries the profile and every government alternative.
	assert.Contains(t, gen.prompts[0], `"occupation":"vendor"`)
	for _, s := range GovtLoanSchemes {
		assert.Contains(t, gen.prompts[0], s.Name)
	}
}

func TestHandle_ModelFailure(t *testing.T) {
	gen := &scriptedGenerator{err: errors.New("model unavailable")}
	advisor := NewAdvisor(gen, logger.NewNoOpLogger())

	_, err := advisor.Handle(context.Background(), "loan kaise milega?", &models.CitizenProfile{}, "hi")
	require.Error(t, err)

	stdErr, ok := err.(*stderrors.StandardError)
	require.True(t, ok)
	assert.Equal(t, stderrors.ErrCodeLLMSynthesisFailed, stdErr.Code)
	assert.True(t, stdErr.Retryable)
}
