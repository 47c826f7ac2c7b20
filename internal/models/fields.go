// internal/models/fields.go
package models

import "fmt"

// Field enumerates the profile attributes that can be read or written by
// name. The set is closed: intent extraction and the progressive profiler
// operate only on these identifiers, so a typo is a compile-time or
// lookup-time error instead of silent reflection.
type Field string

const (
	FieldAge              Field = "age"
	FieldGender           Field = "gender"
	FieldState            Field = "state"
	FieldDistrict         Field = "district"
	FieldOccupation       Field = "occupation"
	FieldCategory         Field = "category"
	FieldAnnualIncome     Field = "annual_income"
	FieldBPLStatus        Field = "bpl_status"
	FieldDisability       Field = "disability"
	FieldMaritalStatus    Field = "marital_status"
	FieldLandOwnership    Field = "land_ownership"
	FieldEducationLevel   Field = "education_level"
	FieldFamilyMembers    Field = "family_members"
	FieldChildrenCount    Field = "children_count"
	FieldChildrenInSchool Field = "children_in_school"
	FieldPregnantInFamily Field = "pregnant_in_family"
	FieldSeniorInFamily   Field = "senior_in_family"
)

type fieldAccessor struct {
	isSet func(*CitizenProfile) bool
	set   func(*CitizenProfile, interface{}) error
}

var fieldAccessors = map[Field]fieldAccessor{
	FieldAge:              intField(func(p *CitizenProfile) **int { return &p.Age }),
	FieldGender:           stringField(func(p *CitizenProfile) **string { return &p.Gender }),
	FieldState:            stringField(func(p *CitizenProfile) **string { return &p.State }),
	FieldDistrict:         stringField(func(p *CitizenProfile) **string { return &p.District }),
	FieldOccupation:       stringField(func(p *CitizenProfile) **string { return &p.Occupation }),
	FieldCategory:         stringField(func(p *CitizenProfile) **string { return &p.Category }),
	FieldAnnualIncome:     intField(func(p *CitizenProfile) **int { return &p.AnnualIncome }),
	FieldBPLStatus:        boolField(func(p *CitizenProfile) **bool { return &p.BPLStatus }),
	FieldDisability:       boolField(func(p *CitizenProfile) **bool { return &p.Disability }),
	FieldMaritalStatus:    stringField(func(p *CitizenProfile) **string { return &p.MaritalStatus }),
	FieldLandOwnership:    boolField(func(p *CitizenProfile) **bool { return &p.LandOwnership }),
	FieldEducationLevel:   stringField(func(p *CitizenProfile) **string { return &p.EducationLevel }),
	FieldFamilyMembers:    intField(func(p *CitizenProfile) **int { return &p.FamilyMembers }),
	FieldChildrenCount:    intField(func(p *CitizenProfile) **int { return &p.ChildrenCount }),
	FieldChildrenInSchool: boolField(func(p *CitizenProfile) **bool { return &p.ChildrenInSchool }),
	FieldPregnantInFamily: boolField(func(p *CitizenProfile) **bool { return &p.PregnantInFamily }),
	FieldSeniorInFamily:   boolField(func(p *CitizenProfile) **bool { return &p.SeniorInFamily }),
}

func intField(slot func(*CitizenProfile) **int) fieldAccessor {
	return fieldAccessor{
		isSet: func(p *CitizenProfile) bool { return *slot(p) != nil },
		set: func(p *CitizenProfile, v interface{}) error {
			switch val := v.(type) {
			case int:
				*slot(p) = &val
			case int64:
				i := int(val)
				*slot(p) = &i
			case float64: // JSON numbers decode as float64
				i := int(val)
				*slot(p) = &i
			default:
				return fmt.Errorf("expected number, got %T", v)
			}
			return nil
		},
	}
}

func stringField(slot func(*CitizenProfile) **string) fieldAccessor {
	return fieldAccessor{
		isSet: func(p *CitizenProfile) bool { return *slot(p) != nil },
		set: func(p *CitizenProfile, v interface{}) error {
			s, ok := v.(string)
			if !ok {
				return fmt.Errorf("expected string, got %T", v)
			}
			*slot(p) = &s
			return nil
		},
	}
}

func boolField(slot func(*CitizenProfile) **bool) fieldAccessor {
	return fieldAccessor{
		isSet: func(p *CitizenProfile) bool { return *slot(p) != nil },
		set: func(p *CitizenProfile, v interface{}) error {
			b, ok := v.(bool)
			if !ok {
				return fmt.Errorf("expected bool, got %T", v)
			}
			*slot(p) = &b
			return nil
		},
	}
}

// IsSet reports whether the field is known on the profile.
func (f Field) IsSet(p *CitizenProfile) bool {
	acc, ok := fieldAccessors[f]
	if !ok {
		return false
	}
	return acc.isSet(p)
}

// Apply sets a field value on the profile. Unknown field names and nil
// values are ignored so that forward-compatible extractor output never
// corrupts a profile.
func (p *CitizenProfile) Apply(field Field, value interface{}) error {
	if value == nil {
		return nil
	}
	acc, ok := fieldAccessors[field]
	if !ok {
		return nil
	}
	return acc.set(p, value)
}

// ApplyUpdates merges a map of extracted field values into the profile,
// skipping entries that fail type checks.
func (p *CitizenProfile) ApplyUpdates(updates map[string]interface{}) []error {
	var errs []error
	for name, value := range updates {
		if err := p.Apply(Field(name), value); err != nil {
			errs = append(errs, fmt.Errorf("field %s: %w", name, err))
		}
	}
	return errs
}
