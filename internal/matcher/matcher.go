package matcher

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/alexanderramin/telos/internal/domain"
)

// Options holds the matching knobs the engine needs. Zero values are
// replaced with defaults by NewEngine.
type Options struct {
	// MinConfidence drops matches scoring below it. Default 0.5.
	MinConfidence float64

	// MaxFuzzyDistance is the largest accepted edit distance. Default 2.
	MaxFuzzyDistance int

	// MinKeywordLength is the shortest keyword eligible for fuzzy
	// matching. Default 2.
	MinKeywordLength int

	// EnableFuzzy turns the fuzzy pass on. Default true.
	EnableFuzzy bool
}

// DefaultOptions returns the standard matching options.
func DefaultOptions() Options {
	return Options{
		MinConfidence:    0.5,
		MaxFuzzyDistance: 2,
		MinKeywordLength: 2,
		EnableFuzzy:      true,
	}
}

// contextRadius is how many characters of surrounding text a match snippet
// carries on each side.
const contextRadius = 20

// Engine finds vocabulary matches in normalized goal text using a strategy
// cascade of decreasing strictness. The vocabulary is built asynchronously
// at construction; Match blocks until it is ready. Safe for concurrent use.
type Engine struct {
	opts  Options
	vocab map[domain.Category][]domain.KeywordDescriptor
	ready chan struct{}
}

// NewEngine creates an Engine over the given category catalog and starts
// building the vocabulary in the background. An empty catalog is a
// configuration error: it would silently suppress every match.
func NewEngine(specs []domain.CategorySpec, opts Options) (*Engine, error) {
	triggers := 0
	for _, spec := range specs {
		triggers += len(spec.Triggers)
	}
	if triggers == 0 {
		return nil, fmt.Errorf("matcher: vocabulary is empty")
	}

	if opts.MinConfidence <= 0 {
		opts.MinConfidence = DefaultOptions().MinConfidence
	}
	if opts.MaxFuzzyDistance <= 0 {
		opts.MaxFuzzyDistance = DefaultOptions().MaxFuzzyDistance
	}
	if opts.MinKeywordLength <= 0 {
		opts.MinKeywordLength = DefaultOptions().MinKeywordLength
	}

	e := &Engine{
		opts:  opts,
		ready: make(chan struct{}),
	}
	go func() {
		e.vocab = BuildVocabulary(specs)
		close(e.ready)
	}()
	return e, nil
}

// Vocabulary blocks until preprocessing finishes and returns the descriptor
// map. The map must not be mutated.
func (e *Engine) Vocabulary() map[domain.Category][]domain.KeywordDescriptor {
	<-e.ready
	return e.vocab
}

// Match runs the strategy cascade for every descriptor against the
// normalized text. One match per descriptor at most; the result is filtered
// to the confidence threshold and sorted by confidence descending.
func (e *Engine) Match(normalizedText string) []domain.Match {
	<-e.ready

	if normalizedText == "" {
		return nil
	}
	words := Tokenize(normalizedText)

	var matches []domain.Match
	for _, descriptors := range e.vocab {
		for _, d := range descriptors {
			if m, ok := e.matchDescriptor(normalizedText, words, d); ok && m.Confidence >= e.opts.MinConfidence {
				matches = append(matches, m)
			}
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Confidence > matches[j].Confidence
	})
	return matches
}

// matchDescriptor tries each strategy in order of strictness and stops at
// the first success, so the fuzzy pass only pays its cost when every
// cheaper strategy has failed.
func (e *Engine) matchDescriptor(text string, words []string, d domain.KeywordDescriptor) (domain.Match, bool) {
	if text == d.Normalized {
		return e.buildMatch(text, d, domain.StrategyExact, 0, len(text), 1), true
	}

	if start, end, ok := wordBoundaryIndex(text, d.Normalized); ok {
		return e.buildMatch(text, d, domain.StrategyWordBoundary, start, end, 1), true
	}

	if start := strings.Index(text, d.Normalized); start >= 0 {
		return e.buildMatch(text, d, domain.StrategyContains, start, start+len(d.Normalized), 1), true
	}

	if e.opts.EnableFuzzy {
		if scale, ok := e.fuzzyScale(words, d); ok {
			// Fuzzy matches have no exact location in the text.
			return e.buildMatch(text, d, domain.StrategyFuzzy, 0, 0, scale), true
		}
	}

	return domain.Match{}, false
}

// fuzzyScale compares each input word against the descriptor and returns
// the confidence scale of the closest acceptable word. Keywords shorter
// than MinKeywordLength are excluded: distance/length ratios degenerate
// for zero- and one-character keywords.
func (e *Engine) fuzzyScale(words []string, d domain.KeywordDescriptor) (float64, bool) {
	kwLen := utf8.RuneCountInString(d.Normalized)
	if kwLen < e.opts.MinKeywordLength {
		return 0, false
	}

	best := -1
	for _, w := range words {
		// A word differing in length by more than the cutoff cannot
		// be within distance; skip the DP entirely.
		if diff := utf8.RuneCountInString(w) - kwLen; diff > e.opts.MaxFuzzyDistance || -diff > e.opts.MaxFuzzyDistance {
			continue
		}
		dist := Levenshtein(w, d.Normalized)
		if dist > e.opts.MaxFuzzyDistance {
			continue
		}
		if float64(dist) >= float64(kwLen)/2 {
			continue
		}
		if best < 0 || dist < best {
			best = dist
		}
	}
	if best < 0 {
		return 0, false
	}
	return 1 - float64(best)/float64(kwLen), true
}

func (e *Engine) buildMatch(text string, d domain.KeywordDescriptor, strategy domain.MatchStrategy, start, end int, scale float64) domain.Match {
	confidence := strategy.BaseConfidence() * d.Importance * scale
	if confidence > 1 {
		confidence = 1
	}
	if confidence < 0 {
		confidence = 0
	}
	return domain.Match{
		Keyword:    d.Original,
		Category:   d.Category,
		Strategy:   strategy,
		Confidence: confidence,
		Start:      start,
		End:        end,
		Context:    snippet(text, start, end),
	}
}

// wordBoundaryIndex locates needle in haystack as a standalone token
// sequence: the characters adjacent to the occurrence must not be word
// characters.
func wordBoundaryIndex(haystack, needle string) (int, int, bool) {
	if needle == "" {
		return 0, 0, false
	}
	from := 0
	for {
		i := strings.Index(haystack[from:], needle)
		if i < 0 {
			return 0, 0, false
		}
		start := from + i
		end := start + len(needle)
		if boundaryBefore(haystack, start) && boundaryAfter(haystack, end) {
			return start, end, true
		}
		from = start + 1
	}
}

func boundaryBefore(s string, i int) bool {
	if i == 0 {
		return true
	}
	r, _ := utf8.DecodeLastRuneInString(s[:i])
	return !isWordRune(r)
}

func boundaryAfter(s string, i int) bool {
	if i >= len(s) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(s[i:])
	return !isWordRune(r)
}

// snippet returns up to contextRadius characters around [start,end).
func snippet(text string, start, end int) string {
	if end <= start || end > len(text) {
		return ""
	}
	from := start - contextRadius
	if from < 0 {
		from = 0
	}
	to := end + contextRadius
	if to > len(text) {
		to = len(text)
	}
	// Snap to rune boundaries so the snippet stays valid UTF-8.
	for from < len(text) && !utf8.RuneStart(text[from]) {
		from++
	}
	for to < len(text) && !utf8.RuneStart(text[to]) {
		to++
	}
	return strings.TrimSpace(text[from:to])
}
