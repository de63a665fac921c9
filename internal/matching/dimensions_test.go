package matching_test

import (
	"testing"

	"go-culturematch-backend/internal/matching"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDimensionScorer(t *testing.T) {
	var scorer matching.DimensionScorer

	t.Run("Should fail with ScoringError on missing features", func(t *testing.T) {
		_, err := scorer.Score(nil)
		var sErr *matching.ScoringError
		require.ErrorAs(t, err, &sErr)

		_, err = scorer.Score(&matching.CandidateFeatures{})
		require.ErrorAs(t, err, &sErr)
		assert.Equal(t, "nationality", sErr.Feature)
	})

	t.Run("Should credit experience on dedication", func(t *testing.T) {
		junior, err := scorer.Score(&matching.CandidateFeatures{Nationality: "ID", ExperienceYears: 0})
		require.NoError(t, err)
		senior, err := scorer.Score(&matching.CandidateFeatures{Nationality: "ID", ExperienceYears: 12})
		require.NoError(t, err)

		assert.Greater(t, senior.Dedication, junior.Dedication)
		assert.Greater(t, senior.Harmony, junior.Harmony)
	})

	t.Run("Should credit service keywords and language breadth on service", func(t *testing.T) {
		plain, err := scorer.Score(&matching.CandidateFeatures{Nationality: "PH"})
		require.NoError(t, err)
		serviceHeavy, err := scorer.Score(&matching.CandidateFeatures{
			Nationality: "PH",
			Skills:      []string{"customer support", "sales"},
			Languages: map[string]matching.ProficiencyLevel{
				"english":  matching.LevelNative,
				"tagalog":  matching.LevelNative,
				"japanese": matching.LevelConversational,
			},
		})
		require.NoError(t, err)

		assert.Greater(t, serviceHeavy.Service, plain.Service)
	})

	t.Run("Should fall back to the default prior for unlisted nationalities", func(t *testing.T) {
		a, err := scorer.Score(&matching.CandidateFeatures{Nationality: "ZZ"})
		require.NoError(t, err)
		b, err := scorer.Score(&matching.CandidateFeatures{Nationality: matching.NationalityOther})
		require.NoError(t, err)

		assert.Equal(t, a, b)
	})

	t.Run("Should clamp every dimension to 100", func(t *testing.T) {
		loaded, err := scorer.Score(&matching.CandidateFeatures{
			Nationality:     "JP",
			ExperienceYears: 40,
			Skills: []string{
				"teamwork", "scrum", "agile", "pair programming", "mentoring", "facilitation",
				"kaizen", "ci/cd", "testing", "code review", "refactoring", "automation",
				"customer support", "sales", "communication", "presentation", "hospitality",
				"project management", "stakeholder coordination",
			},
			Languages: map[string]matching.ProficiencyLevel{
				"japanese": matching.LevelNative,
				"english":  matching.LevelNative,
				"mandarin": matching.LevelBusiness,
				"korean":   matching.LevelBusiness,
			},
		})
		require.NoError(t, err)

		for _, dim := range matching.AllDimensions {
			assert.LessOrEqual(t, loaded.Value(dim), 100.0, string(dim))
		}
	})
}
