package matching_test

import (
	"testing"

	"go-culturematch-backend/internal/matching"

	"github.com/stretchr/testify/assert"
)

func TestRecommenderBelowThreshold(t *testing.T) {
	rec := matching.NewRecommender(75)

	dims := matching.DimensionScores{
		Harmony:     80,
		Improvement: 60,
		Service:     90,
		Dedication:  50,
		Consensus:   74,
	}

	got := rec.Recommend(dims, "en")

	t.Run("Should emit one entry per weak dimension in fixed order", func(t *testing.T) {
		assert.Len(t, got, 3)
		assert.Contains(t, got[0], "kaizen")         // improvement
		assert.Contains(t, got[1], "follow-through") // dedication
		assert.Contains(t, got[2], "nemawashi")      // consensus
	})
}

func TestRecommenderAllStrong(t *testing.T) {
	rec := matching.NewRecommender(75)

	dims := matching.DimensionScores{
		Harmony:     80,
		Improvement: 85,
		Service:     90,
		Dedication:  75,
		Consensus:   95,
	}

	t.Run("Should return the single positive entry", func(t *testing.T) {
		got := rec.Recommend(dims, "en")
		assert.Len(t, got, 1)
		assert.Contains(t, got[0], "Strong cultural alignment")
	})

	t.Run("Should localize the positive entry", func(t *testing.T) {
		id := rec.Recommend(dims, "id")
		ja := rec.Recommend(dims, "ja")
		assert.NotEqual(t, id[0], ja[0])
	})
}

func TestRecommenderThresholdFallback(t *testing.T) {
	rec := matching.NewRecommender(0)

	dims := matching.DimensionScores{Harmony: 74, Improvement: 80, Service: 80, Dedication: 80, Consensus: 80}

	t.Run("Should use the default threshold when given zero", func(t *testing.T) {
		got := rec.Recommend(dims, "en")
		assert.Len(t, got, 1)
		assert.Contains(t, got[0], "group-first")
	})
}
