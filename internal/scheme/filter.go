// internal/scheme/filter.go
package scheme

import (
	"strings"

	"loksarthi/internal/models"
)

// Passes reports whether a profile clears a scheme's hard eligibility rules.
// A rule only disqualifies when it is present AND the matching profile field
// is known: unknown is never a negative signal. An empty rule set passes
// everything.
func Passes(profile *models.CitizenProfile, rules *models.EligibilityRules) bool {
	if rules.Empty() {
		return true
	}

	// Age bounds, inclusive
	if rules.AgeMin != nil && profile.Age != nil && *profile.Age < *rules.AgeMin {
		return false
	}
	if rules.AgeMax != nil && profile.Age != nil && *profile.Age > *rules.AgeMax {
		return false
	}

	if len(rules.Gender) > 0 && profile.Gender != nil && !contains(rules.Gender, *profile.Gender) {
		return false
	}

	// States match case-insensitively
	if len(rules.States) > 0 && profile.State != nil && !containsFold(rules.States, *profile.State) {
		return false
	}

	if len(rules.Occupations) > 0 && profile.Occupation != nil && !contains(rules.Occupations, *profile.Occupation) {
		return false
	}

	if len(rules.Categories) > 0 && profile.Category != nil && !contains(rules.Categories, *profile.Category) {
		return false
	}

	if rules.IncomeMax != nil && profile.AnnualIncome != nil && *profile.AnnualIncome > *rules.IncomeMax {
		return false
	}

	if rules.BPLRequired && profile.BPLStatus != nil && !*profile.BPLStatus {
		return false
	}

	if rules.RequiresDisability() && profile.Disability != nil && !*profile.Disability {
		return false
	}

	if rules.LandRequired && profile.LandOwnership != nil && !*profile.LandOwnership {
		return false
	}

	if len(rules.MaritalStatus) > 0 && profile.MaritalStatus != nil && !contains(rules.MaritalStatus, *profile.MaritalStatus) {
		return false
	}

	return true
}

func contains(values []string, v string) bool {
	for _, item := range values {
		if item == v {
			return true
		}
	}
	return false
}

func containsFold(values []string, v string) bool {
	for _, item := range values {
		if strings.EqualFold(item, v) {
			return true
		}
	}
	return false
}
