// Package matching implements the candidate-job compatibility scorer:
// a pure, deterministic pipeline of profile normalization, cultural
// dimension scoring, weighted aggregation and recommendation
// generation. It holds no state between calls; concurrent scoring of
// independent pairs needs no synchronization.
package matching

// MatchResult is the scorer's output contract. All percentage fields
// are in [0, 100]; Recommendations is never empty on success.
type MatchResult struct {
	OverallScore            float64         `json:"overall_score"`
	DimensionScores         DimensionScores `json:"dimension_scores"`
	SkillsMatch             float64         `json:"skills_match"`
	ExperienceMatch         float64         `json:"experience_match"`
	IntegrationTimelineDays int             `json:"integration_timeline_days"`
	Recommendations         []string        `json:"recommendations"`
	Confidence              float64         `json:"confidence"`
	PriorTableVersion       int             `json:"prior_table_version"`
}

// Config configures an Engine. Zero values fall back to the shipped
// defaults, except weight sets which are validated as given.
type Config struct {
	Aggregator              AggregatorConfig
	RecommendationThreshold float64
}

// DefaultConfig returns the shipped engine configuration.
func DefaultConfig() Config {
	return Config{
		Aggregator:              DefaultAggregatorConfig(),
		RecommendationThreshold: DefaultRecommendationThreshold,
	}
}

// Engine is the scoring pipeline. Construct it once at startup;
// construction fails with AggregationError on an invalid weight
// configuration, so a misconfigured deployment never serves a request.
type Engine struct {
	scorer      DimensionScorer
	aggregator  *Aggregator
	recommender *Recommender
}

func NewEngine(cfg Config) (*Engine, error) {
	agg, err := NewAggregator(cfg.Aggregator)
	if err != nil {
		return nil, err
	}
	return &Engine{
		aggregator:  agg,
		recommender: NewRecommender(cfg.RecommendationThreshold),
	}, nil
}

// Score runs the full pipeline for one (candidate, job) pair. The job
// is optional; without it the overall score is purely cultural. Errors
// are typed (ValidationError, ScoringError) and never replaced with
// fabricated results.
func (e *Engine) Score(candidate CandidateRecord, job *JobRecord, lang string) (*MatchResult, error) {
	features, err := NormalizeCandidate(candidate)
	if err != nil {
		return nil, err
	}

	var jobFeatures *JobFeatures
	if job != nil {
		jobFeatures, err = NormalizeJob(*job)
		if err != nil {
			return nil, err
		}
	}

	dims, err := e.scorer.Score(features)
	if err != nil {
		return nil, err
	}

	overall, skills, exp, timeline, confidence := e.aggregator.Aggregate(dims, features, jobFeatures)

	return &MatchResult{
		OverallScore:            overall,
		DimensionScores:         dims,
		SkillsMatch:             skills,
		ExperienceMatch:         exp,
		IntegrationTimelineDays: timeline,
		Recommendations:         e.recommender.Recommend(dims, lang),
		Confidence:              confidence,
		PriorTableVersion:       PriorTableVersion,
	}, nil
}
