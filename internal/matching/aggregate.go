package matching

import (
	"fmt"
	"math"
)

const weightEpsilon = 1e-9

// AggregatorConfig holds the weight sets the Aggregator combines
// sub-scores with. Both sets must sum to 1.0; DefaultAggregatorConfig
// provides the shipped defaults.
type AggregatorConfig struct {
	// DimensionWeights spreads the cultural portion across the five
	// axes. Sum must be 1.0.
	DimensionWeights map[Dimension]float64

	// When a job is supplied the overall score blends three terms.
	// DimensionShare + SkillsWeight + ExperienceWeight must be 1.0.
	DimensionShare   float64
	SkillsWeight     float64
	ExperienceWeight float64
}

// DefaultAggregatorConfig returns equal dimension weights and a
// 60/25/15 split between cultural fit, skills match and experience
// match when a job is present.
func DefaultAggregatorConfig() AggregatorConfig {
	return AggregatorConfig{
		DimensionWeights: map[Dimension]float64{
			DimensionHarmony:     0.2,
			DimensionImprovement: 0.2,
			DimensionService:     0.2,
			DimensionDedication:  0.2,
			DimensionConsensus:   0.2,
		},
		DimensionShare:   0.60,
		SkillsWeight:     0.25,
		ExperienceWeight: 0.15,
	}
}

// Aggregator combines dimension scores and (optionally) skills and
// experience match into one overall score plus the derived integration
// timeline. It is immutable after construction and safe for concurrent
// use.
type Aggregator struct {
	cfg AggregatorConfig
}

// NewAggregator validates the weight invariants once, up front. A
// violated invariant is a deployment fault: it returns AggregationError
// and the service must not start serving.
func NewAggregator(cfg AggregatorConfig) (*Aggregator, error) {
	var dimSum float64
	for _, dim := range AllDimensions {
		w := cfg.DimensionWeights[dim]
		if w < 0 {
			return nil, &AggregationError{Detail: fmt.Sprintf("negative weight for %s", dim)}
		}
		dimSum += w
	}
	if math.Abs(dimSum-1.0) > weightEpsilon {
		return nil, &AggregationError{Detail: fmt.Sprintf("dimension weights sum to %.4f, want 1.0", dimSum)}
	}

	blendSum := cfg.DimensionShare + cfg.SkillsWeight + cfg.ExperienceWeight
	if cfg.DimensionShare < 0 || cfg.SkillsWeight < 0 || cfg.ExperienceWeight < 0 {
		return nil, &AggregationError{Detail: "negative blend weight"}
	}
	if math.Abs(blendSum-1.0) > weightEpsilon {
		return nil, &AggregationError{Detail: fmt.Sprintf("blend weights sum to %.4f, want 1.0", blendSum)}
	}

	return &Aggregator{cfg: cfg}, nil
}

// Aggregate produces the overall score, timeline and confidence.
// Without a job the overall score is purely the weighted cultural
// dimensions; with a job it blends in skills and experience match, and
// the job's cultural requirement weights tilt the dimension portion.
func (a *Aggregator) Aggregate(dims DimensionScores, candidate *CandidateFeatures, job *JobFeatures) (overall, skillsMatch, experienceMatch float64, timelineDays int, confidence float64) {
	cultural := a.culturalScore(dims, job)

	if job == nil {
		overall = clamp(cultural)
	} else {
		skillsMatch = SkillsMatch(candidate.Skills, job.RequiredSkills)
		experienceMatch = ExperienceMatch(candidate.ExperienceYears, job.MinExperienceYears, job.MaxExperienceYears)
		overall = clamp(a.cfg.DimensionShare*cultural +
			a.cfg.SkillsWeight*skillsMatch +
			a.cfg.ExperienceWeight*experienceMatch)
	}

	timelineDays = IntegrationTimelineDays(overall)
	confidence = confidenceFor(candidate, job)
	return overall, skillsMatch, experienceMatch, timelineDays, confidence
}

// culturalScore applies the configured dimension weights, tilted by the
// job's cultural requirements when present. A requirement weight of w
// scales its dimension's base weight by (1 + w); the tilted weights are
// renormalized so they still sum to one.
func (a *Aggregator) culturalScore(dims DimensionScores, job *JobFeatures) float64 {
	var sum, weightSum float64
	for _, dim := range AllDimensions {
		w := a.cfg.DimensionWeights[dim]
		if job != nil {
			w *= 1 + job.CulturalWeights[dim]
		}
		sum += w * dims.Value(dim)
		weightSum += w
	}
	if weightSum == 0 {
		return 0
	}
	return sum / weightSum
}

// SkillsMatch is the share of required skills the candidate covers, as
// a percentage. A job that requires nothing is fully matched. Inputs
// are expected in normalized (lowercase, deduplicated) form.
func SkillsMatch(candidateSkills, requiredSkills []string) float64 {
	if len(requiredSkills) == 0 {
		return 100
	}
	have := make(map[string]bool, len(candidateSkills))
	for _, s := range candidateSkills {
		have[s] = true
	}
	shared := 0
	for _, s := range requiredSkills {
		if have[s] {
			shared++
		}
	}
	return float64(shared) / float64(len(requiredSkills)) * 100
}

// ExperienceMatch compares candidate years against the job's expected
// band. Meeting the minimum scores 100; below it the score degrades
// proportionally. A job without a band is fully matched; anything above
// the band stays at 100 (overqualification is not penalized).
func ExperienceMatch(years, bandMin, bandMax int) float64 {
	if bandMin <= 0 {
		return 100
	}
	if years >= bandMin {
		return 100
	}
	return float64(years) / float64(bandMin) * 100
}

// IntegrationTimelineDays derives the predicted ramp-up period from the
// overall score: max(15, round(150 - overall)). Monotonically
// non-increasing in the score, floored at 15 days.
func IntegrationTimelineDays(overall float64) int {
	days := int(math.Round(150 - overall))
	if days < 15 {
		return 15
	}
	return days
}

// confidenceFor measures input completeness, not prediction quality:
// richer profiles yield higher confidence. Deterministic by
// construction.
func confidenceFor(candidate *CandidateFeatures, job *JobFeatures) float64 {
	if candidate == nil {
		return 0
	}
	conf := 40.0
	conf += 20 * ratio(len(candidate.Skills), 3)
	conf += 20 * ratio(len(candidate.Languages), 2)
	if candidate.ExperienceYears > 0 {
		conf += 10
	}
	if job != nil {
		conf += 10
	}
	return clamp(conf)
}
