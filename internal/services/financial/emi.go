// internal/services/financial/emi.go
package financial

import (
	"fmt"
	"math"
)

// Annual interest rate cutoffs for risk flagging.
const (
	predatoryRateThreshold = 36.0
	highRateThreshold      = 24.0
)

// Risk levels for a loan's interest rate.
const (
	RiskHigh   = "HIGH"
	RiskMedium = "MEDIUM"
	RiskLow    = "LOW"
)

// LoanBreakdown is the full cost picture of a loan.
type LoanBreakdown struct {
	Principal          float64 `json:"principal"`
	AnnualRate         float64 `json:"annual_rate"`
	TenureMonths       int     `json:"tenure_months"`
	MonthlyEMI         int64   `json:"monthly_emi"`
	TotalPayment       int64   `json:"total_payment"`
	TotalInterest      int64   `json:"total_interest"`
	InterestPercentage float64 `json:"interest_percentage"`
	IsPredatory        bool    `json:"is_predatory"`
	RiskLevel          string  `json:"risk_level"`
}

// CalculateEMI computes the equated monthly installment and total cost of a
// loan using standard amortization.
func CalculateEMI(principal, annualRate float64, tenureMonths int) (*LoanBreakdown, error) {
	if principal <= 0 || annualRate <= 0 || tenureMonths <= 0 {
		return nil, fmt.Errorf("invalid loan parameters: principal=%.2f rate=%.2f tenure=%d",
			principal, annualRate, tenureMonths)
	}

	monthlyRate := annualRate / (12 * 100)
	factor := math.Pow(1+monthlyRate, float64(tenureMonths))
	emi := principal * monthlyRate * factor / (factor - 1)

	totalPayment := emi * float64(tenureMonths)
	totalInterest := totalPayment - principal
	interestPercentage := totalInterest / principal * 100

	return &LoanBreakdown{
		Principal:          principal,
		AnnualRate:         annualRate,
		TenureMonths:       tenureMonths,
		MonthlyEMI:         int64(math.Round(emi)),
		TotalPayment:       int64(math.Round(totalPayment)),
		TotalInterest:      int64(math.Round(totalInterest)),
		InterestPercentage: math.Round(interestPercentage*10) / 10,
		IsPredatory:        annualRate > predatoryRateThreshold,
		RiskLevel:          riskLevel(annualRate),
	}, nil
}

func riskLevel(annualRate float64) string {
	switch {
	case annualRate > predatoryRateThreshold:
		return RiskHigh
	case annualRate > highRateThreshold:
		return RiskMedium
	default:
		return RiskLow
	}
}

// RateAssessment flags an interest rate and suggests cheaper government
// alternatives when it is too high.
type RateAssessment struct {
	IsPredatory  bool         `json:"is_predatory"`
	IsHigh       bool         `json:"is_high"`
	AlertHindi   string       `json:"alert_hi,omitempty"`
	AlertEnglish string       `json:"alert_en"`
	Alternatives []LoanScheme `json:"alternatives,omitempty"`
}

// AssessRate classifies an annual interest rate against the predatory and
// high-rate thresholds.
func AssessRate(annualRate float64) *RateAssessment {
	switch {
	case annualRate > predatoryRateThreshold:
		return &RateAssessment{
			IsPredatory:  true,
			AlertHindi:   fmt.Sprintf("⚠️ ख़तरा: %g%% सालाना ब्याज बहुत ज़्यादा है! यह शोषणकारी (predatory) लेंडिंग है। सरकारी योजनाओं से 4-9%% ब्याज पर लोन मिल सकता है।", annualRate),
			AlertEnglish: fmt.Sprintf("⚠️ DANGER: %g%% annual interest is extremely high! This is predatory lending. Government schemes offer loans at 4-9%% interest.", annualRate),
			Alternatives: GovtLoanSchemes[:3],
		}
	case annualRate > highRateThreshold:
		return &RateAssessment{
			IsHigh:       true,
			AlertHindi:   fmt.Sprintf("⚠️ सावधान: %g%% ब्याज काफ़ी ज़्यादा है। सरकारी योजनाओं में कम ब्याज पर लोन उपलब्ध है।", annualRate),
			AlertEnglish: fmt.Sprintf("⚠️ CAUTION: %g%% interest is quite high. Government schemes offer lower rates.", annualRate),
			Alternatives: GovtLoanSchemes[:3],
		}
	default:
		return &RateAssessment{
			AlertEnglish: fmt.Sprintf("✅ %g%% annual interest is within reasonable range.", annualRate),
		}
	}
}
