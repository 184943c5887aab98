package formatter

import (
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/telos/internal/domain"
	"github.com/alexanderramin/telos/internal/repository"
	"github.com/stretchr/testify/assert"
)

func TestFormatAnalysisResult(t *testing.T) {
	r := &domain.AnalysisResult{
		Text: "lose weight at home",
		Matches: []domain.Match{
			{
				Keyword:    "lose weight",
				Category:   domain.CategoryGoalType,
				Strategy:   domain.StrategyWordBoundary,
				Confidence: 0.7,
			},
		},
		Suggestions: []domain.Category{domain.CategoryGoalType},
		Confidence:  0.75,
		Latency:     2 * time.Millisecond,
	}

	out := FormatAnalysisResult(r)
	assert.Contains(t, out, "Analysis")
	assert.Contains(t, out, "Matches")
	assert.Contains(t, out, "lose weight")
	assert.Contains(t, out, "word_boundary")
	assert.Contains(t, out, "Goal type")
	assert.Contains(t, out, "Suggested next")
}

func TestFormatAnalysisResult_NoSuggestions(t *testing.T) {
	out := FormatAnalysisResult(&domain.AnalysisResult{Text: "qwerty"})
	assert.Contains(t, out, "No category suggestions.")
}

func TestFormatQuality(t *testing.T) {
	out := FormatQuality(domain.QualityAssessment{
		OverallScore: 0.85,
		IsReady:      true,
	})
	assert.Contains(t, out, "Quality")
	assert.Contains(t, out, "85%")
	assert.Contains(t, out, "Ready to hand off.")

	out = FormatQuality(domain.QualityAssessment{
		OverallScore: 0.2,
		Feedback:     []string{"Add more detail about what you want to achieve."},
	})
	assert.Contains(t, out, "Add more detail")
	assert.NotContains(t, out, "Ready to hand off.")
}

func TestFormatHistory_TruncatesLongText(t *testing.T) {
	logs := []*repository.AnalysisLog{{
		ID:        "x",
		Text:      strings.Repeat("a", 80),
		CreatedAt: time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC),
	}}

	out := FormatHistory(logs)
	assert.Contains(t, out, strings.Repeat("a", 57)+"...")
	assert.NotContains(t, out, strings.Repeat("a", 58))
}

func TestChip(t *testing.T) {
	assert.Contains(t, Chip("Goal type", domain.TierHigh, false), "[ Goal type ]")
	assert.Contains(t, Chip("Goal type", domain.TierHigh, true), "[✓ Goal type]")
}

func TestProgressBar(t *testing.T) {
	empty := ProgressBar(0, 10)
	assert.Contains(t, empty, strings.Repeat("░", 10))
	assert.NotContains(t, empty, "█")

	full := ProgressBar(1, 10)
	assert.Contains(t, full, strings.Repeat("█", 10))

	half := ProgressBar(0.5, 10)
	assert.Contains(t, half, strings.Repeat("█", 5)+strings.Repeat("░", 5))

	clamped := ProgressBar(1.7, 4)
	assert.Contains(t, clamped, strings.Repeat("█", 4))
}

func TestConfidenceLabel(t *testing.T) {
	assert.Contains(t, ConfidenceLabel(0.75), "75%")
	assert.Contains(t, ConfidenceLabel(0), "0%")
}
