package matcher

import (
	"testing"

	"github.com/alexanderramin/telos/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildVocabulary_Descriptors(t *testing.T) {
	specs := []domain.CategorySpec{
		{
			Category: domain.CategoryLocation,
			Tier:     domain.TierMedium,
			Triggers: []string{"At-Home", "gym"},
		},
	}

	vocab := BuildVocabulary(specs)
	require.Len(t, vocab[domain.CategoryLocation], 2)

	d := vocab[domain.CategoryLocation][0]
	assert.Equal(t, "At-Home", d.Original)
	assert.Equal(t, "at home", d.Normalized)
	assert.Equal(t, []string{"at", "home"}, d.Words)
	assert.Equal(t, domain.CategoryLocation, d.Category)
}

func TestBuildVocabulary_ImportanceAveragesTierAndLength(t *testing.T) {
	specs := []domain.CategorySpec{
		{Category: domain.CategoryHealth, Tier: domain.TierCritical, Triggers: []string{"injury"}},
	}

	vocab := BuildVocabulary(specs)
	// avg(1.0, 6/15) = 0.7
	assert.InDelta(t, 0.7, vocab[domain.CategoryHealth][0].Importance, 1e-9)
}

func TestBuildVocabulary_LengthBonusSaturates(t *testing.T) {
	specs := []domain.CategorySpec{
		{Category: domain.CategoryHealth, Tier: domain.TierCritical, Triggers: []string{"recovering from surgery"}},
	}

	vocab := BuildVocabulary(specs)
	// avg(1.0, min(1, 23/15)) = 1.0
	assert.InDelta(t, 1.0, vocab[domain.CategoryHealth][0].Importance, 1e-9)
}

func TestBuildVocabulary_ImportanceInUnitRange(t *testing.T) {
	vocab := BuildVocabulary(domain.Catalog())
	for cat, descriptors := range vocab {
		require.NotEmpty(t, descriptors, "category %s has no descriptors", cat)
		for _, d := range descriptors {
			assert.GreaterOrEqual(t, d.Importance, 0.0)
			assert.LessOrEqual(t, d.Importance, 1.0)
		}
	}
}
