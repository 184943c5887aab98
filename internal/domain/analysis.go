package domain

import "time"

// KeywordDescriptor is the preprocessed form of one trigger phrase of one
// category. Built once by the vocabulary preprocessor; read-only thereafter.
type KeywordDescriptor struct {
	Original   string
	Normalized string
	Words      []string
	Category   Category
	Tier       ImportanceTier

	// Importance is the average of the tier score and a length bonus
	// min(1, len/15): longer, more specific phrases score higher.
	Importance float64
}

// Match records one descriptor found in the analyzed text.
// Confidence = strategy base confidence × descriptor importance, optionally
// scaled by fuzzy distance; always in [0,1].
type Match struct {
	Keyword    string
	Category   Category
	Strategy   MatchStrategy
	Confidence float64

	// Start/End span the matched range in the normalized text.
	Start int
	End   int

	// Context is a short snippet of normalized text around the match.
	Context string
}

// AnalysisResult is the immutable outcome of analyzing one input text.
type AnalysisResult struct {
	Text           string
	NormalizedText string

	// Matches is sorted by confidence descending; entries below the
	// configured confidence threshold are already dropped.
	Matches []Match

	// Suggestions is the ranked, size-bounded category list.
	Suggestions []Category

	// Confidence is the overall [0,1] confidence for the result.
	Confidence float64

	Latency   time.Duration
	CreatedAt time.Time
}

// Categories returns the distinct matched categories in first-seen order.
func (r *AnalysisResult) Categories() []Category {
	seen := make(map[Category]bool, len(r.Matches))
	var out []Category
	for _, m := range r.Matches {
		if !seen[m.Category] {
			seen[m.Category] = true
			out = append(out, m.Category)
		}
	}
	return out
}

// QualityAssessment reports whether a goal description is complete enough
// to hand off downstream.
type QualityAssessment struct {
	OverallScore float64
	Feedback     []string
	IsReady      bool
}
