package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/telos/internal/domain"
	"github.com/alexanderramin/telos/internal/repository"
	"github.com/charmbracelet/lipgloss"
)

// FormatAnalysisResult renders a completed analysis for one-shot output.
func FormatAnalysisResult(r *domain.AnalysisResult) string {
	var b strings.Builder

	b.WriteString(Header("Analysis") + "\n")
	fmt.Fprintf(&b, "  %s %s\n", StyleBold.Render("Confidence:"), ConfidenceLabel(r.Confidence))
	fmt.Fprintf(&b, "  %s %d\n", StyleBold.Render("Matches:"), len(r.Matches))
	fmt.Fprintf(&b, "  %s %s\n", StyleBold.Render("Latency:"), r.Latency)

	if len(r.Matches) > 0 {
		b.WriteString("\n" + Header("Matches") + "\n")
		for _, m := range r.Matches {
			tier := domain.CatalogTier(m.Category)
			fmt.Fprintf(&b, "  %s %-22s %-14s %.2f  %s\n",
				TierStyle(tier).Render("●"),
				domain.CatalogLabel(m.Category),
				string(m.Strategy),
				m.Confidence,
				Dim(fmt.Sprintf("%q", m.Keyword)),
			)
		}
	}

	if len(r.Suggestions) > 0 {
		b.WriteString("\n" + Header("Suggested next") + "\n")
		for _, c := range r.Suggestions {
			tier := domain.CatalogTier(c)
			fmt.Fprintf(&b, "  %s\n", Chip(domain.CatalogLabel(c), tier, false))
		}
	} else {
		b.WriteString("\n" + Dim("No category suggestions.") + "\n")
	}

	return b.String()
}

// FormatQuality renders a quality assessment with feedback lines.
func FormatQuality(q domain.QualityAssessment) string {
	var b strings.Builder
	b.WriteString(Header("Quality") + "\n")
	fmt.Fprintf(&b, "  %s %s\n", ProgressBar(q.OverallScore, 24), scoreStyle(q.OverallScore).Render(fmt.Sprintf("%.0f%%", q.OverallScore*100)))
	if q.IsReady {
		b.WriteString("  " + StyleGreen.Render("Ready to hand off.") + "\n")
	}
	for _, f := range q.Feedback {
		fmt.Fprintf(&b, "  %s %s\n", StyleYellow.Render("→"), f)
	}
	return b.String()
}

// FormatVocab renders the category catalog.
func FormatVocab(specs []domain.CategorySpec) string {
	var b strings.Builder
	b.WriteString(Header("Vocabulary") + "\n")
	for _, spec := range specs {
		fmt.Fprintf(&b, "\n%s %s %s\n",
			TierStyle(spec.Tier).Render("●"),
			StyleBold.Render(spec.Label),
			Dim(fmt.Sprintf("(%s, %d phrases)", spec.Tier, len(spec.Triggers))),
		)
		fmt.Fprintf(&b, "  %s\n", strings.Join(spec.Triggers, ", "))
	}
	return b.String()
}

// FormatHistory renders stored analysis summaries, newest first.
func FormatHistory(logs []*repository.AnalysisLog) string {
	if len(logs) == 0 {
		return Dim("No analyses recorded yet.") + "\n"
	}
	var b strings.Builder
	b.WriteString(Header("History") + "\n")
	for _, log := range logs {
		text := log.Text
		if len(text) > 60 {
			text = text[:57] + "..."
		}
		fmt.Fprintf(&b, "  %s  %s  %s\n",
			Dim(log.CreatedAt.Local().Format("2006-01-02 15:04")),
			ConfidenceLabel(log.Confidence),
			text,
		)
		if len(log.Suggestions) > 0 {
			labels := make([]string, len(log.Suggestions))
			for i, c := range log.Suggestions {
				labels[i] = domain.CatalogLabel(c)
			}
			fmt.Fprintf(&b, "      %s\n", Dim("suggested: "+strings.Join(labels, ", ")))
		}
	}
	return b.String()
}

// Chip renders a category chip, highlighted when selected.
func Chip(label string, tier domain.ImportanceTier, selected bool) string {
	if selected {
		return TierStyle(tier).Bold(true).Render("[✓ " + label + "]")
	}
	return TierStyle(tier).Render("[ " + label + " ]")
}

// ProgressBar renders score as a fixed-width bar.
func ProgressBar(score float64, width int) string {
	if score < 0 {
		score = 0
	}
	if score > 1 {
		score = 1
	}
	filled := int(score*float64(width) + 0.5)
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return scoreStyle(score).Render(bar)
}

// ConfidenceLabel renders a [0,1] confidence as a colored percentage.
func ConfidenceLabel(c float64) string {
	return scoreStyle(c).Render(fmt.Sprintf("%.0f%%", c*100))
}

func scoreStyle(score float64) lipgloss.Style {
	switch {
	case score >= 0.7:
		return StyleGreen
	case score >= 0.4:
		return StyleYellow
	default:
		return StyleRed
	}
}
