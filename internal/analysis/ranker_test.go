package analysis

import (
	"testing"

	"github.com/alexanderramin/telos/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func match(cat domain.Category, confidence float64) domain.Match {
	return domain.Match{
		Keyword:    "kw",
		Category:   cat,
		Strategy:   domain.StrategyExact,
		Confidence: confidence,
	}
}

func TestRankSuggestions_TierOrderBeforeConfidence(t *testing.T) {
	cfg := DefaultConfig()
	matches := []domain.Match{
		match(domain.CategoryNutrition, 0.9), // low tier, strong signal
		match(domain.CategoryHealth, 0.5),    // critical tier, weaker signal
		match(domain.CategoryLocation, 0.8),  // medium tier
	}

	got := RankSuggestions(cfg, matches, nil, 150)
	require.Len(t, got, 3)
	assert.Equal(t, domain.CategoryHealth, got[0])
	assert.Equal(t, domain.CategoryLocation, got[1])
	assert.Equal(t, domain.CategoryNutrition, got[2])
}

func TestRankSuggestions_ConfidenceOrderWithinTier(t *testing.T) {
	cfg := DefaultConfig()
	matches := []domain.Match{
		match(domain.CategoryLocation, 0.4),
		match(domain.CategoryLocation, 0.3), // sums to 0.7
		match(domain.CategorySchedule, 0.9),
		match(domain.CategoryEquipment, 0.5),
	}

	got := RankSuggestions(cfg, matches, nil, 150)
	require.Len(t, got, 3)
	assert.Equal(t, domain.CategorySchedule, got[0])
	assert.Equal(t, domain.CategoryLocation, got[1])
	assert.Equal(t, domain.CategoryEquipment, got[2])
}

func TestRankSuggestions_SelectedCategoriesDropped(t *testing.T) {
	cfg := DefaultConfig()
	matches := []domain.Match{
		match(domain.CategoryHealth, 0.9),
		match(domain.CategoryGoalType, 0.8),
	}

	got := RankSuggestions(cfg, matches, []domain.Category{domain.CategoryHealth}, 150)
	require.Len(t, got, 1)
	assert.Equal(t, domain.CategoryGoalType, got[0])
}

func TestRankSuggestions_DisclosureSteps(t *testing.T) {
	cfg := DefaultConfig()
	matches := []domain.Match{
		match(domain.CategoryHealth, 0.9),
		match(domain.CategoryGoalType, 0.8),
		match(domain.CategoryLocation, 0.7),
		match(domain.CategoryNutrition, 0.6),
	}

	// Short text, nothing selected: a single suggestion.
	assert.Len(t, RankSuggestions(cfg, matches, nil, 30), 1)

	// Past the first text step: two.
	assert.Len(t, RankSuggestions(cfg, matches, nil, 51), 2)

	// Past the second text step: three.
	assert.Len(t, RankSuggestions(cfg, matches, nil, 101), 3)
}

func TestRankSuggestions_DisclosureGrowsWithSelections(t *testing.T) {
	cfg := DefaultConfig()
	matches := []domain.Match{
		match(domain.CategoryHealth, 0.9),
		match(domain.CategoryGoalType, 0.8),
		match(domain.CategoryLocation, 0.7),
		match(domain.CategoryNutrition, 0.6),
		match(domain.CategorySchedule, 0.5),
		match(domain.CategoryEquipment, 0.4),
		match(domain.CategoryMotivation, 0.3),
	}

	// Short text but three committed categories opens the second step.
	selected := []domain.Category{
		domain.CategoryHealth,
		domain.CategoryGoalType,
		domain.CategoryLocation,
	}
	assert.Len(t, RankSuggestions(cfg, matches, selected, 30), 2)

	// Five committed categories opens the third step.
	selected = append(selected, domain.CategoryNutrition, domain.CategorySchedule)
	assert.Len(t, RankSuggestions(cfg, matches, selected, 30), 2,
		"only two unselected candidates remain")
}

func TestRankSuggestions_CappedByMaxSuggestedChips(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxSuggestedChips = 2
	matches := []domain.Match{
		match(domain.CategoryHealth, 0.9),
		match(domain.CategoryGoalType, 0.8),
		match(domain.CategoryLocation, 0.7),
	}

	got := RankSuggestions(cfg, matches, nil, 200)
	assert.Len(t, got, 2)
}

func TestRankSuggestions_NoMatches(t *testing.T) {
	assert.Empty(t, RankSuggestions(DefaultConfig(), nil, nil, 200))
}

func TestMaxToShow_Boundaries(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 1, maxToShow(cfg, 50, 0), "at the first step, not past it")
	assert.Equal(t, 2, maxToShow(cfg, 51, 0))
	assert.Equal(t, 2, maxToShow(cfg, 100, 0))
	assert.Equal(t, 3, maxToShow(cfg, 101, 0))

	assert.Equal(t, 1, maxToShow(cfg, 0, 2))
	assert.Equal(t, 2, maxToShow(cfg, 0, 3))
	assert.Equal(t, 2, maxToShow(cfg, 0, 4))
	assert.Equal(t, 3, maxToShow(cfg, 0, 5))
}
