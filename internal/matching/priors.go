package matching

// PriorTableVersion identifies the active nationality prior table. Bump
// whenever the table below changes so persisted results can be traced
// back to the table that produced them.
const PriorTableVersion = 1

// dimensionPriors holds the per-nationality baseline for each cultural
// dimension. These are explicit starting points the feature signals in
// dimensions.go adjust from, never final scores. Nationalities without
// an entry (including OTHER) fall back to defaultPrior.
var dimensionPriors = map[string]DimensionScores{
	"JP": {Harmony: 72, Improvement: 70, Service: 74, Dedication: 72, Consensus: 74},
	"ID": {Harmony: 70, Improvement: 62, Service: 70, Dedication: 66, Consensus: 68},
	"VN": {Harmony: 66, Improvement: 66, Service: 64, Dedication: 70, Consensus: 62},
	"PH": {Harmony: 68, Improvement: 62, Service: 72, Dedication: 66, Consensus: 64},
	"TH": {Harmony: 68, Improvement: 60, Service: 70, Dedication: 64, Consensus: 64},
	"MM": {Harmony: 66, Improvement: 58, Service: 64, Dedication: 68, Consensus: 62},
	"IN": {Harmony: 62, Improvement: 68, Service: 66, Dedication: 70, Consensus: 60},
	"CN": {Harmony: 64, Improvement: 68, Service: 62, Dedication: 70, Consensus: 62},
	"KR": {Harmony: 66, Improvement: 70, Service: 66, Dedication: 72, Consensus: 64},
	"BR": {Harmony: 62, Improvement: 62, Service: 68, Dedication: 62, Consensus: 60},
	"US": {Harmony: 58, Improvement: 66, Service: 64, Dedication: 62, Consensus: 56},
}

var defaultPrior = DimensionScores{
	Harmony:     62,
	Improvement: 62,
	Service:     62,
	Dedication:  62,
	Consensus:   60,
}

func priorFor(nationality string) DimensionScores {
	if p, ok := dimensionPriors[nationality]; ok {
		return p
	}
	return defaultPrior
}
