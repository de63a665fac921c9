package matching_test

import (
	"testing"

	"go-culturematch-backend/internal/matching"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEngine(t *testing.T) *matching.Engine {
	t.Helper()
	engine, err := matching.NewEngine(matching.DefaultConfig())
	require.NoError(t, err)
	return engine
}

func sampleCandidate() matching.CandidateRecord {
	return matching.CandidateRecord{
		Nationality:     "JP",
		TechnicalSkills: []string{"JavaScript", "React"},
		LanguageProficiency: map[string]string{
			"japanese": "native",
			"english":  "business",
		},
		ExperienceYears: 8,
	}
}

func TestEngineScoreWithoutJob(t *testing.T) {
	engine := newEngine(t)

	result, err := engine.Score(sampleCandidate(), nil, "en")
	require.NoError(t, err)

	t.Run("Should compute all five dimensions within bounds", func(t *testing.T) {
		for _, dim := range matching.AllDimensions {
			v := result.DimensionScores.Value(dim)
			assert.GreaterOrEqual(t, v, 0.0, string(dim))
			assert.LessOrEqual(t, v, 100.0, string(dim))
			assert.NotZero(t, v, string(dim))
		}
	})

	t.Run("Should skip skills and experience terms without a job", func(t *testing.T) {
		assert.Zero(t, result.SkillsMatch)
		assert.Zero(t, result.ExperienceMatch)
	})

	t.Run("Should keep the overall score and confidence in bounds", func(t *testing.T) {
		assert.GreaterOrEqual(t, result.OverallScore, 0.0)
		assert.LessOrEqual(t, result.OverallScore, 100.0)
		assert.GreaterOrEqual(t, result.Confidence, 0.0)
		assert.LessOrEqual(t, result.Confidence, 100.0)
	})

	t.Run("Should respect the timeline floor", func(t *testing.T) {
		assert.GreaterOrEqual(t, result.IntegrationTimelineDays, 15)
	})

	t.Run("Should always return at least one recommendation", func(t *testing.T) {
		assert.NotEmpty(t, result.Recommendations)
	})
}

func TestEngineDeterminism(t *testing.T) {
	engine := newEngine(t)
	job := &matching.JobRecord{
		RequiredSkills:       []string{"React", "TypeScript"},
		CulturalRequirements: map[string]float64{"teamwork": 0.4},
		Location:             "Tokyo",
		MinExperienceYears:   3,
	}

	first, err := engine.Score(sampleCandidate(), job, "en")
	require.NoError(t, err)
	second, err := engine.Score(sampleCandidate(), job, "en")
	require.NoError(t, err)

	assert.Equal(t, first, second, "identical inputs must produce identical results")
}

func TestEngineScoreWithJob(t *testing.T) {
	engine := newEngine(t)

	job := &matching.JobRecord{
		RequiredSkills:     []string{"React", "Python"},
		MinExperienceYears: 3,
		MaxExperienceYears: 10,
	}
	result, err := engine.Score(sampleCandidate(), job, "en")
	require.NoError(t, err)

	// Candidate covers react but not python.
	assert.Equal(t, 50.0, result.SkillsMatch)
	assert.Equal(t, 100.0, result.ExperienceMatch)
	assert.GreaterOrEqual(t, result.OverallScore, 0.0)
	assert.LessOrEqual(t, result.OverallScore, 100.0)
}

func TestEngineValidationFailures(t *testing.T) {
	engine := newEngine(t)

	t.Run("Should reject negative experience without fabricating a result", func(t *testing.T) {
		rec := sampleCandidate()
		rec.ExperienceYears = -1

		result, err := engine.Score(rec, nil, "en")
		assert.Nil(t, result)
		var vErr *matching.ValidationError
		require.ErrorAs(t, err, &vErr)
	})

	t.Run("Should reject a malformed job record", func(t *testing.T) {
		job := &matching.JobRecord{CulturalRequirements: map[string]float64{"synergy": 1}}
		result, err := engine.Score(sampleCandidate(), job, "en")
		assert.Nil(t, result)
		var vErr *matching.ValidationError
		require.ErrorAs(t, err, &vErr)
	})
}

func TestEngineLocalizedRecommendations(t *testing.T) {
	engine := newEngine(t)

	// A sparse profile lands below the threshold on several dimensions.
	rec := matching.CandidateRecord{Nationality: "OTHER"}

	en, err := engine.Score(rec, nil, "en")
	require.NoError(t, err)
	ja, err := engine.Score(rec, nil, "ja-JP")
	require.NoError(t, err)
	unknown, err := engine.Score(rec, nil, "fr")
	require.NoError(t, err)

	assert.NotEmpty(t, en.Recommendations)
	assert.Equal(t, len(en.Recommendations), len(ja.Recommendations))
	assert.NotEqual(t, en.Recommendations[0], ja.Recommendations[0])
	assert.Equal(t, en.Recommendations, unknown.Recommendations, "unsupported locale falls back to English")
}
