package matching_test

import (
	"testing"

	"go-culturematch-backend/internal/matching"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeCandidate(t *testing.T) {
	t.Run("Should lowercase, dedupe and sort skills", func(t *testing.T) {
		f, err := matching.NormalizeCandidate(matching.CandidateRecord{
			Nationality:     "jp",
			TechnicalSkills: []string{"React", "  Node.js ", "react", "", "Go"},
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"go", "node.js", "react"}, f.Skills)
		assert.Equal(t, "JP", f.Nationality)
	})

	t.Run("Should accept OTHER nationality bucket", func(t *testing.T) {
		f, err := matching.NormalizeCandidate(matching.CandidateRecord{Nationality: "other"})
		require.NoError(t, err)
		assert.Equal(t, matching.NationalityOther, f.Nationality)
	})

	t.Run("Should reject unrecognized nationality", func(t *testing.T) {
		_, err := matching.NormalizeCandidate(matching.CandidateRecord{Nationality: "JPN"})
		var vErr *matching.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "nationality", vErr.Field)
	})

	t.Run("Should reject missing nationality instead of defaulting", func(t *testing.T) {
		_, err := matching.NormalizeCandidate(matching.CandidateRecord{})
		var vErr *matching.ValidationError
		require.ErrorAs(t, err, &vErr)
	})

	t.Run("Should reject negative experience, not clamp it", func(t *testing.T) {
		_, err := matching.NormalizeCandidate(matching.CandidateRecord{
			Nationality:     "ID",
			ExperienceYears: -1,
		})
		var vErr *matching.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "experience_years", vErr.Field)
	})

	t.Run("Should map CEFR and JLPT levels to canonical rungs", func(t *testing.T) {
		f, err := matching.NormalizeCandidate(matching.CandidateRecord{
			Nationality: "VN",
			LanguageProficiency: map[string]string{
				"Japanese": "N2",
				"English":  "B2",
				"german":   "native",
			},
		})
		require.NoError(t, err)
		assert.Equal(t, matching.LevelBusiness, f.Languages["japanese"])
		assert.Equal(t, matching.LevelConversational, f.Languages["english"])
		assert.Equal(t, matching.LevelNative, f.Languages["german"])
	})

	t.Run("Should reject unknown proficiency level", func(t *testing.T) {
		_, err := matching.NormalizeCandidate(matching.CandidateRecord{
			Nationality:         "ID",
			LanguageProficiency: map[string]string{"english": "fluent-ish"},
		})
		var vErr *matching.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "language_proficiency", vErr.Field)
	})
}

func TestNormalizeJob(t *testing.T) {
	t.Run("Should resolve requirement aliases to dimensions", func(t *testing.T) {
		f, err := matching.NormalizeJob(matching.JobRecord{
			RequiredSkills: []string{"Python", "python", "SQL"},
			CulturalRequirements: map[string]float64{
				"teamwork":      0.5,
				"communication": 0.3,
			},
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"python", "sql"}, f.RequiredSkills)
		assert.Equal(t, 0.5, f.CulturalWeights[matching.DimensionHarmony])
		assert.Equal(t, 0.3, f.CulturalWeights[matching.DimensionService])
	})

	t.Run("Should reject unknown cultural requirement", func(t *testing.T) {
		_, err := matching.NormalizeJob(matching.JobRecord{
			CulturalRequirements: map[string]float64{"vibes": 1},
		})
		var vErr *matching.ValidationError
		require.ErrorAs(t, err, &vErr)
	})

	t.Run("Should reject inverted experience band", func(t *testing.T) {
		_, err := matching.NormalizeJob(matching.JobRecord{
			MinExperienceYears: 5,
			MaxExperienceYears: 2,
		})
		var vErr *matching.ValidationError
		require.ErrorAs(t, err, &vErr)
	})
}
