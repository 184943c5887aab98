package matcher

import (
	"github.com/alexanderramin/telos/internal/domain"
)

// phraseLengthCap is the phrase length at which the specificity bonus
// saturates: importance = avg(tierScore, min(1, len/15)).
const phraseLengthCap = 15.0

// BuildVocabulary preprocesses the category catalog into per-category
// keyword descriptors with precomputed importance scores. The result is
// immutable; callers share it freely across goroutines.
func BuildVocabulary(specs []domain.CategorySpec) map[domain.Category][]domain.KeywordDescriptor {
	vocab := make(map[domain.Category][]domain.KeywordDescriptor, len(specs))
	for _, spec := range specs {
		descriptors := make([]domain.KeywordDescriptor, 0, len(spec.Triggers))
		for _, phrase := range spec.Triggers {
			normalized := Normalize(phrase)
			if normalized == "" {
				continue
			}
			descriptors = append(descriptors, domain.KeywordDescriptor{
				Original:   phrase,
				Normalized: normalized,
				Words:      Tokenize(normalized),
				Category:   spec.Category,
				Tier:       spec.Tier,
				Importance: importance(spec.Tier, normalized),
			})
		}
		vocab[spec.Category] = descriptors
	}
	return vocab
}

func importance(tier domain.ImportanceTier, normalized string) float64 {
	lengthScore := float64(len(normalized)) / phraseLengthCap
	if lengthScore > 1 {
		lengthScore = 1
	}
	return (tier.Score() + lengthScore) / 2
}
