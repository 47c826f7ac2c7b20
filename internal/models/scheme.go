// internal/models/scheme.go
package models

// EligibilityRules is a scheme's hard constraint set. Every rule is optional;
// an absent rule constrains nothing. Unrecognized keys in the catalog JSON
// are dropped at decode time, which keeps old binaries forward compatible
// with newer catalogs.
type EligibilityRules struct {
	AgeMin             *int     `json:"age_min,omitempty"`
	AgeMax             *int     `json:"age_max,omitempty"`
	Gender             []string `json:"gender,omitempty"`
	States             []string `json:"states,omitempty"`
	Occupations        []string `json:"occupations,omitempty"`
	Categories         []string `json:"categories,omitempty"`
	IncomeMax          *int     `json:"income_max,omitempty"`
	BPLRequired        bool     `json:"bpl_required,omitempty"`
	DisabilityRequired bool     `json:"disability_required,omitempty"`
	Disability         bool     `json:"disability,omitempty"` // legacy alias of disability_required
	LandRequired       bool     `json:"land_required,omitempty"`
	MaritalStatus      []string `json:"marital_status,omitempty"`
}

// Empty reports whether the rule set constrains nothing, which makes the
// scheme universally eligible.
func (r *EligibilityRules) Empty() bool {
	if r == nil {
		return true
	}
	return r.AgeMin == nil && r.AgeMax == nil &&
		len(r.Gender) == 0 && len(r.States) == 0 &&
		len(r.Occupations) == 0 && len(r.Categories) == 0 &&
		r.IncomeMax == nil &&
		!r.BPLRequired && !r.DisabilityRequired && !r.Disability && !r.LandRequired &&
		len(r.MaritalStatus) == 0
}

// RequiresDisability folds the legacy "disability" key into the canonical
// disability_required rule.
func (r *EligibilityRules) RequiresDisability() bool {
	return r != nil && (r.DisabilityRequired || r.Disability)
}

// Scheme is one government benefit program from the static catalog. Loaded
// once at startup and treated as read-only afterwards.
type Scheme struct {
	SchemeID      string            `json:"scheme_id"`
	Name          string            `json:"name"`
	NameHindi     string            `json:"name_hi,omitempty"`
	Ministry      string            `json:"ministry,omitempty"`
	Description   string            `json:"description,omitempty"`
	BenefitAmount string            `json:"benefit_amount"`
	BenefitType   string            `json:"benefit_type,omitempty"`
	Eligibility   *EligibilityRules `json:"eligibility,omitempty"`
	HowToApply    string            `json:"how_to_apply,omitempty"`
	ApplyURL      string            `json:"apply_url,omitempty"`
	Documents     []string          `json:"documents,omitempty"`
}
