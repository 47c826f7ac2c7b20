// internal/scheme/matcher.go
package scheme

import (
	"sort"

	"loksarthi/internal/models"
)

// DefaultMaxResults caps the ranked match list returned to callers.
const DefaultMaxResults = 7

// Match pairs a catalog scheme with its relevance score for one profile. It
// lives only for the duration of the caller's response.
type Match struct {
	Scheme *models.Scheme `json:"scheme"`
	Score  int            `json:"score"`
}

// Matcher applies filter and scorer over an injected immutable catalog.
type Matcher struct {
	catalog *Catalog
}

func NewMatcher(catalog *Catalog) *Matcher {
	return &Matcher{catalog: catalog}
}

// Match returns the top maxResults schemes the profile is eligible for,
// ranked by descending relevance. Ties keep catalog order (stable sort), so
// output is deterministic. The result may be shorter than maxResults and may
// be empty; an empty list is a valid outcome, not an error.
func (m *Matcher) Match(profile *models.CitizenProfile, maxResults int) []Match {
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}

	schemes := m.catalog.Schemes()
	matches := make([]Match, 0, len(schemes))

	for i := range schemes {
		s := &schemes[i]
		if s.Eligibility.Empty() || Passes(profile, s.Eligibility) {
			matches = append(matches, Match{Scheme: s, Score: Score(profile, s)})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	if len(matches) > maxResults {
		matches = matches[:maxResults]
	}
	return matches
}

// Summarize trims matches to the session-resident form.
func Summarize(matches []Match) []models.MatchedScheme {
	out := make([]models.MatchedScheme, 0, len(matches))
	for _, m := range matches {
		out = append(out, models.MatchedScheme{
			Name:    m.Scheme.Name,
			Benefit: m.Scheme.BenefitAmount,
			Score:   m.Score,
		})
	}
	return out
}
