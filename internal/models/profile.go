// internal/models/profile.go
package models

// CitizenProfile holds everything known about a citizen so far. Every field
// is a pointer: nil means "unknown", and unknown is never a negative signal
// for eligibility filtering.
type CitizenProfile struct {
	Age              *int    `json:"age,omitempty"`
	Gender           *string `json:"gender,omitempty"` // male, female, other
	State            *string `json:"state,omitempty"`
	District         *string `json:"district,omitempty"`
	Occupation       *string `json:"occupation,omitempty"` // farmer, labourer, vendor, student, homemaker, unemployed, other
	Category         *string `json:"category,omitempty"`   // general, sc, st, obc, minority
	AnnualIncome     *int    `json:"annual_income,omitempty"`
	BPLStatus        *bool   `json:"bpl_status,omitempty"`
	Disability       *bool   `json:"disability,omitempty"`
	MaritalStatus    *string `json:"marital_status,omitempty"` // married, widowed, single, divorced
	LandOwnership    *bool   `json:"land_ownership,omitempty"`
	EducationLevel   *string `json:"education_level,omitempty"` // none, primary, secondary, graduate
	FamilyMembers    *int    `json:"family_members,omitempty"`
	ChildrenCount    *int    `json:"children_count,omitempty"`
	ChildrenInSchool *bool   `json:"children_in_school,omitempty"`
	PregnantInFamily *bool   `json:"pregnant_in_family,omitempty"`
	SeniorInFamily   *bool   `json:"senior_in_family,omitempty"`
}

// CriticalFields are the six fields counted by CompletenessScore.
var CriticalFields = []Field{
	FieldAge, FieldGender, FieldState, FieldOccupation, FieldCategory, FieldAnnualIncome,
}

// CompletenessScore returns the fraction [0,1] of critical fields that are known.
func (p *CitizenProfile) CompletenessScore() float64 {
	filled := 0
	for _, f := range CriticalFields {
		if f.IsSet(p) {
			filled++
		}
	}
	return float64(filled) / float64(len(CriticalFields))
}

// Pointer constructors for building profiles field by field.

func IntPtr(v int) *int          { return &v }
func StringPtr(v string) *string { return &v }
func BoolPtr(v bool) *bool       { return &v }
