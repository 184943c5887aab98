package analysis

import (
	"os"
	"strconv"
	"time"
)

// Config holds all tunables for the analysis pipeline.
type Config struct {
	// DebounceInterval is the quiet period after the last text change
	// before analysis runs.
	DebounceInterval time.Duration

	// MinTextLength short-circuits analysis for shorter inputs.
	MinTextLength int

	// MaxSuggestedChips bounds the ranked suggestion list.
	MaxSuggestedChips int

	// MinConfidenceThreshold drops matches scoring below it.
	MinConfidenceThreshold float64

	// MaxFuzzyDistance is the largest accepted Levenshtein distance.
	MaxFuzzyDistance int

	// MinKeywordLength is the shortest keyword eligible for fuzzy matching.
	MinKeywordLength int

	// EnableFuzzyMatching turns the fuzzy strategy on.
	EnableFuzzyMatching bool

	// CacheCapacity bounds the result cache; LRU eviction beyond it.
	CacheCapacity int

	// CacheTTL is the maximum age of a cached result.
	CacheTTL time.Duration

	// HistoryLimit caps the completed-analysis ring buffer.
	HistoryLimit int

	// DisclosureTextSteps are the text lengths at which a second and
	// third suggestion tier opens up. Tuned UX defaults, not invariants.
	DisclosureTextSteps [2]int

	// DisclosureSelectionSteps are the selection counts with the same role.
	DisclosureSelectionSteps [2]int
}

// DefaultConfig returns the standard pipeline configuration.
func DefaultConfig() Config {
	return Config{
		DebounceInterval:         500 * time.Millisecond,
		MinTextLength:            3,
		MaxSuggestedChips:        3,
		MinConfidenceThreshold:   0.5,
		MaxFuzzyDistance:         2,
		MinKeywordLength:         2,
		EnableFuzzyMatching:      true,
		CacheCapacity:            100,
		CacheTTL:                 300 * time.Second,
		HistoryLimit:             20,
		DisclosureTextSteps:      [2]int{50, 100},
		DisclosureSelectionSteps: [2]int{2, 4},
	}
}

// LoadConfig reads pipeline configuration from environment variables,
// falling back to defaults for any unset values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("TELOS_DEBOUNCE_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.DebounceInterval = time.Duration(n) * time.Millisecond
		}
	}
	if v := os.Getenv("TELOS_MIN_TEXT_LENGTH"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.MinTextLength = n
		}
	}
	if v := os.Getenv("TELOS_MAX_CHIPS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.MaxSuggestedChips = n
		}
	}
	if v := os.Getenv("TELOS_MIN_CONFIDENCE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f >= 0 && f <= 1 {
			cfg.MinConfidenceThreshold = f
		}
	}
	if v := os.Getenv("TELOS_MAX_FUZZY_DISTANCE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.MaxFuzzyDistance = n
		}
	}
	if v := os.Getenv("TELOS_FUZZY_ENABLED"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.EnableFuzzyMatching = b
		}
	}
	if v := os.Getenv("TELOS_CACHE_CAPACITY"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.CacheCapacity = n
		}
	}
	if v := os.Getenv("TELOS_CACHE_TTL_SEC"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.CacheTTL = time.Duration(n) * time.Second
		}
	}

	return cfg
}
