package matching

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// NationalityOther is the bucket for candidates whose nationality is not
// expressed as an ISO alpha-2 code.
const NationalityOther = "OTHER"

// ProficiencyLevel is a validated language proficiency rung.
type ProficiencyLevel int

const (
	LevelBasic ProficiencyLevel = iota + 1
	LevelConversational
	LevelBusiness
	LevelNative
)

func (l ProficiencyLevel) String() string {
	switch l {
	case LevelBasic:
		return "basic"
	case LevelConversational:
		return "conversational"
	case LevelBusiness:
		return "business"
	case LevelNative:
		return "native"
	}
	return "unknown"
}

// proficiencyAliases maps accepted level spellings to the canonical rung.
// CEFR bands and JLPT grades are folded in because both certificate
// families show up on real candidate records.
var proficiencyAliases = map[string]ProficiencyLevel{
	"basic":          LevelBasic,
	"conversational": LevelConversational,
	"business":       LevelBusiness,
	"native":         LevelNative,
	// CEFR
	"a1": LevelBasic,
	"a2": LevelBasic,
	"b1": LevelConversational,
	"b2": LevelConversational,
	"c1": LevelBusiness,
	"c2": LevelNative,
	// JLPT
	"n5": LevelBasic,
	"n4": LevelBasic,
	"n3": LevelConversational,
	"n2": LevelBusiness,
	"n1": LevelNative,
}

var nationalityRegex = regexp.MustCompile(`^[A-Z]{2}$`)

// CandidateRecord is the raw candidate shape handed over by the storage
// layer. Fields may be missing or malformed; NormalizeCandidate is the
// single validation boundary for them.
type CandidateRecord struct {
	Nationality         string            `json:"nationality"`
	TechnicalSkills     []string          `json:"technical_skills"`
	LanguageProficiency map[string]string `json:"language_proficiency"`
	ExperienceYears     int               `json:"experience_years"`
}

// JobRecord is the raw job shape handed over by the storage layer.
type JobRecord struct {
	RequiredSkills       []string           `json:"required_skills"`
	CulturalRequirements map[string]float64 `json:"cultural_requirements"`
	Location             string             `json:"location"`
	MinExperienceYears   int                `json:"min_experience_years"`
	MaxExperienceYears   int                `json:"max_experience_years"`
}

// CandidateFeatures is the canonical feature set the scorer consumes.
type CandidateFeatures struct {
	Nationality     string
	Skills          []string // deduplicated, lowercase, sorted
	Languages       map[string]ProficiencyLevel
	ExperienceYears int
}

// JobFeatures is the canonical job-side feature set.
type JobFeatures struct {
	RequiredSkills     []string // deduplicated, lowercase, sorted
	CulturalWeights    map[Dimension]float64
	Location           string
	MinExperienceYears int
	MaxExperienceYears int
}

// NormalizeCandidate validates a raw candidate record and produces the
// canonical feature set. It is a pure transformation: it never defaults
// a malformed field, it rejects it.
func NormalizeCandidate(rec CandidateRecord) (*CandidateFeatures, error) {
	nat := strings.ToUpper(strings.TrimSpace(rec.Nationality))
	if nat == "" {
		return nil, &ValidationError{Field: "nationality", Reason: "is required"}
	}
	if nat != NationalityOther && !nationalityRegex.MatchString(nat) {
		return nil, &ValidationError{
			Field:  "nationality",
			Reason: fmt.Sprintf("%q is not a 2-letter ISO code or %q", rec.Nationality, NationalityOther),
		}
	}

	if rec.ExperienceYears < 0 {
		return nil, &ValidationError{Field: "experience_years", Reason: "must not be negative"}
	}

	langs := make(map[string]ProficiencyLevel, len(rec.LanguageProficiency))
	for lang, raw := range rec.LanguageProficiency {
		key := strings.ToLower(strings.TrimSpace(lang))
		if key == "" {
			return nil, &ValidationError{Field: "language_proficiency", Reason: "language name must not be empty"}
		}
		level, ok := proficiencyAliases[strings.ToLower(strings.TrimSpace(raw))]
		if !ok {
			return nil, &ValidationError{
				Field:  "language_proficiency",
				Reason: fmt.Sprintf("unknown level %q for %q", raw, lang),
			}
		}
		langs[key] = level
	}

	return &CandidateFeatures{
		Nationality:     nat,
		Skills:          normalizeSkills(rec.TechnicalSkills),
		Languages:       langs,
		ExperienceYears: rec.ExperienceYears,
	}, nil
}

// NormalizeJob validates a raw job record. Cultural requirement names
// must resolve to a known dimension; an unrecognized name is rejected
// rather than silently dropped.
func NormalizeJob(rec JobRecord) (*JobFeatures, error) {
	if rec.MinExperienceYears < 0 || rec.MaxExperienceYears < 0 {
		return nil, &ValidationError{Field: "experience_band", Reason: "must not be negative"}
	}
	if rec.MaxExperienceYears > 0 && rec.MaxExperienceYears < rec.MinExperienceYears {
		return nil, &ValidationError{Field: "experience_band", Reason: "max must not be below min"}
	}

	weights := make(map[Dimension]float64, len(rec.CulturalRequirements))
	for name, w := range rec.CulturalRequirements {
		dim, ok := dimensionAliases[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			return nil, &ValidationError{
				Field:  "cultural_requirements",
				Reason: fmt.Sprintf("unknown requirement %q", name),
			}
		}
		if w < 0 {
			return nil, &ValidationError{
				Field:  "cultural_requirements",
				Reason: fmt.Sprintf("weight for %q must not be negative", name),
			}
		}
		weights[dim] += w
	}

	return &JobFeatures{
		RequiredSkills:     normalizeSkills(rec.RequiredSkills),
		CulturalWeights:    weights,
		Location:           strings.TrimSpace(rec.Location),
		MinExperienceYears: rec.MinExperienceYears,
		MaxExperienceYears: rec.MaxExperienceYears,
	}, nil
}

func normalizeSkills(raw []string) []string {
	seen := make(map[string]bool, len(raw))
	out := make([]string, 0, len(raw))
	for _, s := range raw {
		s = strings.ToLower(strings.TrimSpace(s))
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}
