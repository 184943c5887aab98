package domain

// ImportanceTier orders categories by how much a goal description
// suffers when the category is missing.
type ImportanceTier string

const (
	TierLow      ImportanceTier = "low"
	TierMedium   ImportanceTier = "medium"
	TierHigh     ImportanceTier = "high"
	TierCritical ImportanceTier = "critical"
)

// Score maps a tier onto [0,1].
func (t ImportanceTier) Score() float64 {
	switch t {
	case TierCritical:
		return 1.0
	case TierHigh:
		return 0.75
	case TierMedium:
		return 0.5
	case TierLow:
		return 0.25
	default:
		return 0
	}
}

// TierOrder lists tiers from most to least important, the order in which
// suggestions are disclosed.
var TierOrder = []ImportanceTier{TierCritical, TierHigh, TierMedium, TierLow}

// MatchStrategy identifies which matching pass produced a match.
// Strategies are tried from most to least strict; the first success
// for a descriptor wins.
type MatchStrategy string

const (
	StrategyExact        MatchStrategy = "exact"
	StrategyWordBoundary MatchStrategy = "word_boundary"
	StrategyContains     MatchStrategy = "contains"
	StrategyFuzzy        MatchStrategy = "fuzzy"
)

// BaseConfidence returns the strategy's confidence multiplier.
func (s MatchStrategy) BaseConfidence() float64 {
	switch s {
	case StrategyExact:
		return 1.0
	case StrategyWordBoundary:
		return 0.95
	case StrategyContains:
		return 0.80
	case StrategyFuzzy:
		return 0.70
	default:
		return 0
	}
}

// AnalysisState is the orchestrator's user-visible state machine.
type AnalysisState string

const (
	StateIdle      AnalysisState = "idle"
	StateAnalyzing AnalysisState = "analyzing"
	StateCompleted AnalysisState = "completed"
	StateError     AnalysisState = "error"
)
