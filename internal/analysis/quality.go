package analysis

import (
	"fmt"

	"github.com/alexanderramin/telos/internal/domain"
)

// ScoreText computes the [0,1] quality score of a goal description from
// text statistics and match confidences. Additive, capped at 1.
func ScoreText(text string, matches []domain.Match) float64 {
	var score float64

	// Length component, max 0.4.
	for _, threshold := range []int{20, 50, 100, 200} {
		if len(text) >= threshold {
			score += 0.1
		}
	}

	// Word-count component, max 0.2.
	words := countWords(text)
	if words >= 5 {
		score += 0.05
	}
	if words >= 10 {
		score += 0.05
	}
	if words >= 20 {
		score += 0.1
	}

	// Keyword-relevance component.
	score += avgConfidence(matches) * 0.4

	if score > 1 {
		score = 1
	}
	return score
}

// OverallConfidence is the mean match confidence plus a diversity bonus of
// 0.05 per distinct matched category (bonus capped at 0.2), rewarding
// descriptions that touch several categories over repeating one.
func OverallConfidence(matches []domain.Match) float64 {
	if len(matches) == 0 {
		return 0
	}

	distinct := make(map[domain.Category]bool)
	for _, m := range matches {
		distinct[m.Category] = true
	}
	bonus := float64(len(distinct)) * 0.05
	if bonus > 0.2 {
		bonus = 0.2
	}

	confidence := avgConfidence(matches) + bonus
	if confidence > 1 {
		confidence = 1
	}
	return confidence
}

// readinessThreshold is the combined score at which a description is good
// enough to hand off downstream.
const readinessThreshold = 0.7

// AssessQuality gates readiness on text quality combined with how well the
// selected categories cover the catalog, weighting critical tiers most.
func AssessQuality(text string, matches []domain.Match, selected []domain.Category) domain.QualityAssessment {
	textScore := ScoreText(text, matches)
	completeness := selectionCompleteness(selected)
	combined := 0.6*textScore + 0.4*completeness

	var feedback []string
	if len(text) < 50 {
		feedback = append(feedback, "Add more detail about what you want to achieve.")
	}
	if completeness < 0.3 {
		feedback = append(feedback, "Pick the suggestions that apply to you.")
	}
	if !hasSelectedTier(selected, domain.TierCritical) {
		feedback = append(feedback, fmt.Sprintf("Mention any %s so the plan can account for them.",
			domain.CatalogLabel(domain.CategoryHealth)))
	}
	if len(matches) == 0 && len(text) >= 20 {
		feedback = append(feedback, "Describe your goal in concrete terms (where, when, how often).")
	}

	return domain.QualityAssessment{
		OverallScore: combined,
		Feedback:     feedback,
		IsReady:      combined >= readinessThreshold,
	}
}

// selectionCompleteness is the tier-weighted share of the catalog the
// user has already settled.
func selectionCompleteness(selected []domain.Category) float64 {
	var total, got float64
	selectedSet := make(map[domain.Category]bool, len(selected))
	for _, c := range selected {
		selectedSet[c] = true
	}
	for _, spec := range domain.Catalog() {
		w := spec.Tier.Score()
		total += w
		if selectedSet[spec.Category] {
			got += w
		}
	}
	if total == 0 {
		return 0
	}
	return got / total
}

func hasSelectedTier(selected []domain.Category, tier domain.ImportanceTier) bool {
	for _, c := range selected {
		if domain.CatalogTier(c) == tier {
			return true
		}
	}
	return false
}

func avgConfidence(matches []domain.Match) float64 {
	if len(matches) == 0 {
		return 0
	}
	var sum float64
	for _, m := range matches {
		sum += m.Confidence
	}
	return sum / float64(len(matches))
}

func countWords(text string) int {
	n := 0
	inWord := false
	for _, r := range text {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			inWord = false
		} else if !inWord {
			inWord = true
			n++
		}
	}
	return n
}
