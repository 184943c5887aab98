package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTierScore_Ordering(t *testing.T) {
	assert.Greater(t, TierCritical.Score(), TierHigh.Score())
	assert.Greater(t, TierHigh.Score(), TierMedium.Score())
	assert.Greater(t, TierMedium.Score(), TierLow.Score())
	assert.Zero(t, ImportanceTier("bogus").Score())
}

func TestStrategyBaseConfidence_Ordering(t *testing.T) {
	assert.Greater(t, StrategyExact.BaseConfidence(), StrategyWordBoundary.BaseConfidence())
	assert.Greater(t, StrategyWordBoundary.BaseConfidence(), StrategyContains.BaseConfidence())
	assert.Greater(t, StrategyContains.BaseConfidence(), StrategyFuzzy.BaseConfidence())
	assert.Zero(t, MatchStrategy("bogus").BaseConfidence())
}

func TestCatalog_WellFormed(t *testing.T) {
	seen := make(map[Category]bool)
	for _, spec := range Catalog() {
		assert.False(t, seen[spec.Category], "duplicate category %s", spec.Category)
		seen[spec.Category] = true

		assert.NotEmpty(t, spec.Label)
		assert.NotEmpty(t, spec.Triggers)
		assert.Greater(t, spec.Tier.Score(), 0.0)

		for _, trigger := range spec.Triggers {
			assert.Equal(t, strings.ToLower(trigger), trigger,
				"trigger %q must be lowercase", trigger)
			assert.Equal(t, strings.TrimSpace(trigger), trigger,
				"trigger %q must be trimmed", trigger)
		}
	}
	assert.Len(t, seen, 8)
}

func TestCatalogTier(t *testing.T) {
	assert.Equal(t, TierCritical, CatalogTier(CategoryHealth))
	assert.Equal(t, TierMedium, CatalogTier(CategoryLocation))
	assert.Equal(t, TierLow, CatalogTier(Category("unknown")))
}

func TestCatalogLabel(t *testing.T) {
	assert.Equal(t, "Workout location", CatalogLabel(CategoryLocation))
	assert.Equal(t, "unknown", CatalogLabel(Category("unknown")))
}

func TestAnalysisResult_Categories(t *testing.T) {
	r := AnalysisResult{Matches: []Match{
		{Category: CategoryGoalType},
		{Category: CategoryGoalType},
		{Category: CategoryLocation},
	}}
	cats := r.Categories()
	assert.Len(t, cats, 2)
	assert.Contains(t, cats, CategoryGoalType)
	assert.Contains(t, cats, CategoryLocation)
}
