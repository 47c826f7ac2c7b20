// internal/scheme/score.go
package scheme

import (
	"strings"

	"loksarthi/internal/models"
)

const (
	baseScore = 50 // every scheme that passed filtering starts here
	maxScore  = 100

	occupationBonus = 15
	categoryBonus   = 10
	genderBonus     = 10
	bplBonus        = 10
	highValueBonus  = 5
)

// highValueAmount is the currency literal treated as a large benefit.
const highValueAmount = "₹5,00,000"

// Score ranks a scheme for a profile that already passed filtering. Bonuses
// stack independently, so the result is monotone in the number of matching
// conditions and always stays within [50,100].
//
// The high-value check is a textual heuristic over the benefit description
// ("lakh" or a five-lakh literal); a numeric benefit field in the catalog
// could replace it.
func Score(profile *models.CitizenProfile, s *models.Scheme) int {
	score := baseScore
	rules := s.Eligibility

	if rules != nil {
		if len(rules.Occupations) > 0 && profile.Occupation != nil && contains(rules.Occupations, *profile.Occupation) {
			score += occupationBonus
		}
		if len(rules.Categories) > 0 && profile.Category != nil && contains(rules.Categories, *profile.Category) {
			score += categoryBonus
		}
		if len(rules.Gender) > 0 && profile.Gender != nil && contains(rules.Gender, *profile.Gender) {
			score += genderBonus
		}
		if rules.BPLRequired && profile.BPLStatus != nil && *profile.BPLStatus {
			score += bplBonus
		}
	}

	benefit := s.BenefitAmount
	if strings.Contains(strings.ToLower(benefit), "lakh") || strings.Contains(benefit, highValueAmount) {
		score += highValueBonus
	}

	// The current bonus table sums to exactly maxScore; the clamp guards
	// against future bonus additions pushing past it.
	if score > maxScore {
		score = maxScore
	}
	return score
}
