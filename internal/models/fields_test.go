// internal/models/fields_test.go
package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApply(t *testing.T) {
	tests := []struct {
		name  string
		field Field
		value interface{}
		check func(t *testing.T, p *CitizenProfile)
	}{
		{
			"int from json float", FieldAge, float64(35),
			func(t *testing.T, p *CitizenProfile) {
				require.NotNil(t, p.Age)
				assert.Equal(t, 35, *p.Age)
			},
		},
		{
			"int from native int", FieldAnnualIncome, 80000,
			func(t *testing.T, p *CitizenProfile) {
				require.NotNil(t, p.AnnualIncome)
				assert.Equal(t, 80000, *p.AnnualIncome)
			},
		},
		{
			"string", FieldOccupation, "farmer",
			func(t *testing.T, p *CitizenProfile) {
				require.NotNil(t, p.Occupation)
				assert.Equal(t, "farmer", *p.Occupation)
			},
		},
		{
			"bool", FieldBPLStatus, true,
			func(t *testing.T, p *CitizenProfile) {
				require.NotNil(t, p.BPLStatus)
				assert.True(t, *p.BPLStatus)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &CitizenProfile{}
			require.NoError(t, p.Apply(tt.field, tt.value))
			tt.check(t, p)
		})
	}
}

func TestApply_Ignored(t *testing.T) {
	p := &CitizenProfile{}

	// Nil values and unknown field names are silently dropped.
	assert.NoError(t, p.Apply(FieldAge, nil))
	assert.NoError(t, p.Apply(Field("shoe_size"), 42))
	assert.Equal(t, *p, CitizenProfile{})
}

func TestApply_TypeMismatch(t *testing.T) {
	p := &CitizenProfile{}

	assert.Error(t, p.Apply(FieldAge, "thirty five"))
	assert.Error(t, p.Apply(FieldGender, 1))
	assert.Error(t, p.Apply(FieldBPLStatus, "yes"))
	assert.Equal(t, *p, CitizenProfile{})
}

func TestApplyUpdates(t *testing.T) {
	p := &CitizenProfile{}

	errs := p.ApplyUpdates(map[string]interface{}{
		"age":            float64(62),
		"state":          "Bihar",
		"bpl_status":     true,
		"annual_income":  "not a number", // type mismatch, reported
		"unknown_field":  "ignored",      // unknown, dropped silently
		"marital_status": nil,            // nil, dropped silently
	})

	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "annual_income")

	require.NotNil(t, p.Age)
	assert.Equal(t, 62, *p.Age)
	require.NotNil(t, p.State)
	assert.Equal(t, "Bihar", *p.State)
	assert.Nil(t, p.AnnualIncome)
	assert.Nil(t, p.MaritalStatus)
}

func TestIsSet(t *testing.T) {
	p := &CitizenProfile{Age: IntPtr(30)}

	assert.True(t, FieldAge.IsSet(p))
	assert.False(t, FieldGender.IsSet(p))
	assert.False(t, Field("shoe_size").IsSet(p))
}
