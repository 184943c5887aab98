package analysis

import (
	"sort"

	"github.com/alexanderramin/telos/internal/domain"
)

// RankSuggestions aggregates matches by category and returns an ordered,
// size-bounded suggestion list under the progressive-disclosure policy:
// candidates are surfaced tier by tier (critical first) and the number
// shown grows with text length and with how many categories the user has
// already settled.
func RankSuggestions(cfg Config, matches []domain.Match, selected []domain.Category, textLength int) []domain.Category {
	sums := make(map[domain.Category]float64)
	tiers := make(map[domain.Category]domain.ImportanceTier)
	for _, m := range matches {
		sums[m.Category] += m.Confidence
		tiers[m.Category] = domain.CatalogTier(m.Category)
	}

	selectedSet := make(map[domain.Category]bool, len(selected))
	for _, c := range selected {
		selectedSet[c] = true
	}

	var candidates []domain.Category
	for c := range sums {
		if !selectedSet[c] {
			candidates = append(candidates, c)
		}
	}
	sort.Slice(candidates, func(i, j int) bool {
		if sums[candidates[i]] != sums[candidates[j]] {
			return sums[candidates[i]] > sums[candidates[j]]
		}
		return candidates[i] < candidates[j]
	})

	// Concatenate tiers critical→low, keeping confidence order within a tier.
	var ordered []domain.Category
	for _, tier := range domain.TierOrder {
		for _, c := range candidates {
			if tiers[c] == tier {
				ordered = append(ordered, c)
			}
		}
	}

	max := maxToShow(cfg, textLength, len(selected))
	if len(ordered) > max {
		ordered = ordered[:max]
	}
	if len(ordered) > cfg.MaxSuggestedChips {
		ordered = ordered[:cfg.MaxSuggestedChips]
	}
	return ordered
}

// maxToShow is the disclosure step function: one suggestion for a fresh
// short description, more as the user writes or commits to categories.
func maxToShow(cfg Config, textLength, selections int) int {
	if textLength > cfg.DisclosureTextSteps[1] || selections > cfg.DisclosureSelectionSteps[1] {
		return 3
	}
	if textLength > cfg.DisclosureTextSteps[0] || selections > cfg.DisclosureSelectionSteps[0] {
		return 2
	}
	return 1
}
