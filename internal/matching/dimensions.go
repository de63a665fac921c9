package matching

import "strings"

// Dimension names one of the five cultural-trait axes.
type Dimension string

const (
	DimensionHarmony     Dimension = "harmony"
	DimensionImprovement Dimension = "improvement"
	DimensionService     Dimension = "service"
	DimensionDedication  Dimension = "dedication"
	DimensionConsensus   Dimension = "consensus"
)

// AllDimensions is the canonical iteration order for the five axes.
// Recommendation ordering and weight validation both rely on it.
var AllDimensions = []Dimension{
	DimensionHarmony,
	DimensionImprovement,
	DimensionService,
	DimensionDedication,
	DimensionConsensus,
}

// dimensionAliases resolves the requirement names employers actually
// send (e.g. "teamwork") to the dimension they load onto.
var dimensionAliases = map[string]Dimension{
	"harmony":         DimensionHarmony,
	"teamwork":        DimensionHarmony,
	"improvement":     DimensionImprovement,
	"kaizen":          DimensionImprovement,
	"growth_mindset":  DimensionImprovement,
	"service":         DimensionService,
	"communication":   DimensionService,
	"customer_focus":  DimensionService,
	"dedication":      DimensionDedication,
	"work_ethic":      DimensionDedication,
	"perseverance":    DimensionDedication,
	"consensus":       DimensionConsensus,
	"collaboration":   DimensionConsensus,
	"decision_making": DimensionConsensus,
}

// DimensionScores carries the five cultural sub-scores, each in [0, 100].
type DimensionScores struct {
	Harmony     float64 `json:"harmony"`
	Improvement float64 `json:"improvement"`
	Service     float64 `json:"service"`
	Dedication  float64 `json:"dedication"`
	Consensus   float64 `json:"consensus"`
}

// Value returns the score for a single axis.
func (d DimensionScores) Value(dim Dimension) float64 {
	switch dim {
	case DimensionHarmony:
		return d.Harmony
	case DimensionImprovement:
		return d.Improvement
	case DimensionService:
		return d.Service
	case DimensionDedication:
		return d.Dedication
	case DimensionConsensus:
		return d.Consensus
	}
	return 0
}

// Skill keyword classes used as dimension signals. Membership is checked
// by substring so "customer support engineer" still counts for service.
var (
	collaborativeKeywords = []string{"teamwork", "scrum", "agile", "pair programming", "mentoring", "facilitation"}
	improvementKeywords   = []string{"kaizen", "ci/cd", "testing", "code review", "refactoring", "automation", "lean"}
	serviceKeywords       = []string{"customer", "support", "sales", "service", "communication", "presentation", "hospitality"}
	leadershipKeywords    = []string{"lead", "management", "project management", "coordination", "stakeholder"}
)

// DimensionScorer computes the five cultural sub-scores from normalized
// candidate features. Every signal is an explicit function of the input:
// identical features always produce identical scores.
type DimensionScorer struct{}

// Score computes all five dimensions. Each dimension starts from the
// versioned nationality prior and is adjusted by bounded feature
// signals, then clamped to [0, 100].
//
//	harmony     = prior + 12*experienceCredit + 8*collaborativeSignal
//	improvement = prior + 10*skillBreadth + 10*improvementSignal
//	service     = prior + 10*serviceSignal + 10*languageBreadth
//	dedication  = prior + 16*experienceCredit + 4*skillBreadth
//	consensus   = prior + 8*experienceCredit + 8*businessLanguages + 4*leadershipSignal
func (s *DimensionScorer) Score(f *CandidateFeatures) (DimensionScores, error) {
	if f == nil {
		return DimensionScores{}, &ScoringError{Feature: "candidate"}
	}
	if f.Nationality == "" {
		return DimensionScores{}, &ScoringError{Feature: "nationality"}
	}

	prior := priorFor(f.Nationality)

	expCredit := ratio(f.ExperienceYears, 12)
	skillBreadth := ratio(len(f.Skills), 10)
	langBreadth := ratio(len(f.Languages), 4)
	bizLangs := ratio(countAtLeast(f.Languages, LevelBusiness), 2)

	collab := keywordSignal(f.Skills, collaborativeKeywords)
	improve := keywordSignal(f.Skills, improvementKeywords)
	service := keywordSignal(f.Skills, serviceKeywords)
	lead := keywordSignal(f.Skills, leadershipKeywords)

	return DimensionScores{
		Harmony:     clamp(prior.Harmony + 12*expCredit + 8*collab),
		Improvement: clamp(prior.Improvement + 10*skillBreadth + 10*improve),
		Service:     clamp(prior.Service + 10*service + 10*langBreadth),
		Dedication:  clamp(prior.Dedication + 16*expCredit + 4*skillBreadth),
		Consensus:   clamp(prior.Consensus + 8*expCredit + 8*bizLangs + 4*lead),
	}, nil
}

// keywordSignal is the fraction of a keyword class present in the skill
// set, in [0, 1]. Empty skill sets contribute nothing.
func keywordSignal(skills []string, class []string) float64 {
	if len(skills) == 0 {
		return 0
	}
	hits := 0
	for _, kw := range class {
		for _, skill := range skills {
			if strings.Contains(skill, kw) {
				hits++
				break
			}
		}
	}
	return float64(hits) / float64(len(class))
}

func countAtLeast(langs map[string]ProficiencyLevel, floor ProficiencyLevel) int {
	n := 0
	for _, lvl := range langs {
		if lvl >= floor {
			n++
		}
	}
	return n
}

// ratio maps a count onto [0, 1] with saturation at limit.
func ratio(n, limit int) float64 {
	if n <= 0 {
		return 0
	}
	if n >= limit {
		return 1
	}
	return float64(n) / float64(limit)
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
