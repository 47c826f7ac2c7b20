// internal/scheme/profiler.go
package scheme

import "loksarthi/internal/models"

// Progressive profiling policy knobs. The orchestrator starts matching once
// completeness reaches AskThreshold; the completer itself keeps proposing
// questions until CompleteThreshold. They are distinct on purpose and
// overridable via config.
const (
	DefaultAskThreshold      = 0.5
	DefaultCompleteThreshold = 0.8
)

// questionPriority is the fixed order in which missing fields are asked.
// Note the asymmetry with models.CriticalFields: completeness is scored over
// six fields while the scan covers eight, so marital status and BPL are only
// asked while the six critical fields haven't pushed completeness past the
// terminal threshold. This mirrors the established product behavior; keep
// the two lists independent.
var questionPriority = []models.Field{
	models.FieldAge,
	models.FieldGender,
	models.FieldState,
	models.FieldOccupation,
	models.FieldCategory,
	models.FieldAnnualIncome,
	models.FieldMaritalStatus,
	models.FieldBPLStatus,
}

// ProfileCompleter decides which profiling question to ask next. It is a
// pure function of the profile; the surrounding dialogue layer owns the
// one-question-per-turn policy.
type ProfileCompleter struct {
	completeThreshold float64
}

func NewProfileCompleter(completeThreshold float64) *ProfileCompleter {
	if completeThreshold <= 0 {
		completeThreshold = DefaultCompleteThreshold
	}
	return &ProfileCompleter{completeThreshold: completeThreshold}
}

// NextQuestion returns the first unset field in priority order and true, or
// a zero Field and false once the profile is complete: either completeness
// reached the terminal threshold or all eight scanned fields are known.
func (pc *ProfileCompleter) NextQuestion(profile *models.CitizenProfile) (models.Field, bool) {
	if profile.CompletenessScore() >= pc.completeThreshold {
		return "", false
	}

	for _, f := range questionPriority {
		if !f.IsSet(profile) {
			return f, true
		}
	}

	return "", false
}

// QuestionOrder exposes the scan order for callers rendering question lists.
func QuestionOrder() []models.Field {
	out := make([]models.Field, len(questionPriority))
	copy(out, questionPriority)
	return out
}
