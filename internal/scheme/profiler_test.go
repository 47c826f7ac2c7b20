// internal/scheme/profiler_test.go
package scheme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loksarthi/internal/models"
)

func TestNextQuestion_PriorityOrder(t *testing.T) {
	// Scenario C: empty profile walks the priority order one field at a time.
	pc := NewProfileCompleter(DefaultCompleteThreshold)
	profile := &models.CitizenProfile{}

	field, ok := pc.NextQuestion(profile)
	require.True(t, ok)
	assert.Equal(t, models.FieldAge, field)

	profile.Age = models.IntPtr(35)
	assert.InDelta(t, 1.0/6.0, profile.CompletenessScore(), 1e-9)

	field, ok = pc.NextQuestion(profile)
	require.True(t, ok)
	assert.Equal(t, models.FieldGender, field)

	profile.Gender = models.StringPtr("female")
	field, ok = pc.NextQuestion(profile)
	require.True(t, ok)
	assert.Equal(t, models.FieldState, field)

	profile.State = models.StringPtr("Bihar")
	field, ok = pc.NextQuestion(profile)
	require.True(t, ok)
	assert.Equal(t, models.FieldOccupation, field)

	profile.Occupation = models.StringPtr("farmer")
	field, ok = pc.NextQuestion(profile)
	require.True(t, ok)
	assert.Equal(t, models.FieldCategory, field)
}

func TestNextQuestion_TerminalThreshold(t *testing.T) {
	pc := NewProfileCompleter(DefaultCompleteThreshold)

	// Five of six critical fields known: completeness 5/6 ≈ 0.83 ≥ 0.8, so
	// the completer stops even though income, marital status and BPL are
	// still unknown. This is the intended 6-vs-8 field asymmetry.
	profile := &models.CitizenProfile{
		Age:        models.IntPtr(35),
		Gender:     models.StringPtr("female"),
		State:      models.StringPtr("Bihar"),
		Occupation: models.StringPtr("farmer"),
		Category:   models.StringPtr("general"),
	}

	_, ok := pc.NextQuestion(profile)
	assert.False(t, ok)
}

func TestNextQuestion_ScansBeyondCriticalFields(t *testing.T) {
	// With a higher terminal threshold the scan keeps going into the two
	// non-critical fields before reporting completion.
	pc := NewProfileCompleter(1.1)

	profile := &models.CitizenProfile{
		Age:          models.IntPtr(35),
		Gender:       models.StringPtr("female"),
		State:        models.StringPtr("Bihar"),
		Occupation:   models.StringPtr("farmer"),
		Category:     models.StringPtr("general"),
		AnnualIncome: models.IntPtr(80000),
	}

	field, ok := pc.NextQuestion(profile)
	require.True(t, ok)
	assert.Equal(t, models.FieldMaritalStatus, field)

	profile.MaritalStatus = models.StringPtr("married")
	field, ok = pc.NextQuestion(profile)
	require.True(t, ok)
	assert.Equal(t, models.FieldBPLStatus, field)

	profile.BPLStatus = models.BoolPtr(false)
	_, ok = pc.NextQuestion(profile)
	assert.False(t, ok, "no further question once all eight fields are known")
}

func TestNextQuestion_SkipsKnownFieldsInOrder(t *testing.T) {
	pc := NewProfileCompleter(DefaultCompleteThreshold)

	profile := &models.CitizenProfile{
		Age:   models.IntPtr(35),
		State: models.StringPtr("Bihar"),
	}

	field, ok := pc.NextQuestion(profile)
	require.True(t, ok)
	assert.Equal(t, models.FieldGender, field, "gender precedes occupation even when state is already known")
}

func TestQuestionOrder_IsFixed(t *testing.T) {
	expected := []models.Field{
		models.FieldAge,
		models.FieldGender,
		models.FieldState,
		models.FieldOccupation,
		models.FieldCategory,
		models.FieldAnnualIncome,
		models.FieldMaritalStatus,
		models.FieldBPLStatus,
	}
	assert.Equal(t, expected, QuestionOrder())
}

func TestCompletenessScore(t *testing.T) {
	tests := []struct {
		name     string
		profile  *models.CitizenProfile
		expected float64
	}{
		{"empty", &models.CitizenProfile{}, 0},
		{"one critical field", &models.CitizenProfile{Age: models.IntPtr(30)}, 1.0 / 6.0},
		{
			"non-critical fields do not count",
			&models.CitizenProfile{MaritalStatus: models.StringPtr("married"), BPLStatus: models.BoolPtr(true)},
			0,
		},
		{"all critical fields", fullProfile(), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, tt.profile.CompletenessScore(), 1e-9)
		})
	}
}
