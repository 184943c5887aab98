package analysis

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/alexanderramin/telos/internal/domain"
	"github.com/alexanderramin/telos/internal/matcher"
)

// StateEvent is one state-machine transition published to the host.
// Visibility is a diff against the previous suggestion set: true means a
// category became visible, false means a previously shown category must be
// hidden. The host applies the diff rather than the raw list to avoid
// flicker.
type StateEvent struct {
	State       domain.AnalysisState
	Confidence  float64
	Reason      string
	Result      *domain.AnalysisResult
	Suggestions []domain.Category
	Visibility  map[domain.Category]bool
}

// Service is the debounced, cancellable, single-flight analysis pipeline.
// Analyze is fire-and-forget; the host observes results through Events()
// and the snapshot accessors. At most one analysis is authoritative at a
// time: a newer input always supersedes, and results for stale inputs are
// discarded silently.
type Service interface {
	Analyze(text string)
	ForceAnalyze(ctx context.Context, text string) (*domain.AnalysisResult, error)

	CurrentResult() *domain.AnalysisResult
	CurrentSuggestions() []domain.Category
	ShouldShow(c domain.Category) bool
	State() (domain.AnalysisState, float64)

	SetSelectedCategories(cats []domain.Category)
	SelectedCategories() []domain.Category
	QualityAssessment(selected []domain.Category) domain.QualityAssessment

	History() []*domain.AnalysisResult
	Reset()

	Events() <-chan StateEvent
	Close()
}

type forceRequest struct {
	text  string
	reply chan outcome
}

type outcome struct {
	gen      uint64
	result   *domain.AnalysisResult
	err      error
	cacheHit bool
	reply    chan outcome
}

type analysisService struct {
	cfg      Config
	engine   *matcher.Engine
	cache    *resultCache
	observer Observer

	// Snapshot read by the host; written only by the run loop (and
	// SetSelectedCategories for the selection set).
	mu          sync.RWMutex
	state       domain.AnalysisState
	confidence  float64
	reason      string
	result      *domain.AnalysisResult
	suggestions []domain.Category
	visible     map[domain.Category]bool
	selected    []domain.Category
	history     []*domain.AnalysisResult

	textCh   chan string
	forceCh  chan forceRequest
	resetCh  chan chan struct{}
	resultCh chan outcome
	events   chan StateEvent
	done     chan struct{}
	closing  sync.Once
}

// NewService creates the pipeline over the given engine and starts its run
// loop. A nil observer defaults to NoopObserver.
func NewService(engine *matcher.Engine, cfg Config, observer Observer) Service {
	if observer == nil {
		observer = NoopObserver{}
	}
	s := &analysisService{
		cfg:      cfg,
		engine:   engine,
		cache:    newResultCache(cfg.CacheCapacity, cfg.CacheTTL),
		observer: observer,
		state:    domain.StateIdle,
		visible:  make(map[domain.Category]bool),
		textCh:   make(chan string, 64),
		forceCh:  make(chan forceRequest),
		resetCh:  make(chan chan struct{}),
		resultCh: make(chan outcome, 8),
		events:   make(chan StateEvent, 16),
		done:     make(chan struct{}),
	}
	go s.run()
	return s
}

// NewDefaultService builds an engine over the built-in catalog and wraps
// it in a pipeline.
func NewDefaultService(cfg Config, observer Observer) (Service, error) {
	engine, err := matcher.NewEngine(domain.Catalog(), matcher.Options{
		MinConfidence:    cfg.MinConfidenceThreshold,
		MaxFuzzyDistance: cfg.MaxFuzzyDistance,
		MinKeywordLength: cfg.MinKeywordLength,
		EnableFuzzy:      cfg.EnableFuzzyMatching,
	})
	if err != nil {
		return nil, fmt.Errorf("building matching engine: %w", err)
	}
	return NewService(engine, cfg, observer), nil
}

// ── host-facing API ─────────────────────────────────────────────────────────

func (s *analysisService) Analyze(text string) {
	select {
	case s.textCh <- text:
	case <-s.done:
	}
}

func (s *analysisService) ForceAnalyze(ctx context.Context, text string) (*domain.AnalysisResult, error) {
	req := forceRequest{text: text, reply: make(chan outcome, 1)}
	select {
	case s.forceCh <- req:
	case <-s.done:
		return nil, fmt.Errorf("analysis service closed")
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	select {
	case out := <-req.reply:
		return out.result, out.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (s *analysisService) CurrentResult() *domain.AnalysisResult {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.result
}

func (s *analysisService) CurrentSuggestions() []domain.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Category, len(s.suggestions))
	copy(out, s.suggestions)
	return out
}

func (s *analysisService) ShouldShow(c domain.Category) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.visible[c]
}

func (s *analysisService) State() (domain.AnalysisState, float64) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state, s.confidence
}

func (s *analysisService) SetSelectedCategories(cats []domain.Category) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = append([]domain.Category(nil), cats...)
}

func (s *analysisService) SelectedCategories() []domain.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Category(nil), s.selected...)
}

func (s *analysisService) QualityAssessment(selected []domain.Category) domain.QualityAssessment {
	s.mu.RLock()
	result := s.result
	s.mu.RUnlock()

	text := ""
	var matches []domain.Match
	if result != nil {
		text = result.Text
		matches = result.Matches
	}
	return AssessQuality(text, matches, selected)
}

func (s *analysisService) History() []*domain.AnalysisResult {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*domain.AnalysisResult, len(s.history))
	copy(out, s.history)
	return out
}

func (s *analysisService) Reset() {
	ack := make(chan struct{})
	select {
	case s.resetCh <- ack:
		<-ack
	case <-s.done:
	}
}

func (s *analysisService) Events() <-chan StateEvent {
	return s.events
}

func (s *analysisService) Close() {
	s.closing.Do(func() { close(s.done) })
}

// ── run loop ────────────────────────────────────────────────────────────────

// run owns the debounce timer, the generation counter, and every snapshot
// write. Only the most recent generation may publish; anything older is
// treated as cancelled.
func (s *analysisService) run() {
	timer := time.NewTimer(time.Hour)
	stopTimer(timer)
	defer stopTimer(timer)

	var (
		gen          uint64
		pendingText  string
		lastAnalyzed string
	)

	for {
		select {
		case <-s.done:
			return

		case text := <-s.textCh:
			if tooShort(text, s.cfg.MinTextLength) {
				stopTimer(timer)
				pendingText = ""
				lastAnalyzed = ""
				gen++ // supersede any in-flight analysis
				s.retract()
				continue
			}
			pendingText = text
			stopTimer(timer)
			timer.Reset(s.cfg.DebounceInterval)

		case <-timer.C:
			if pendingText == "" || pendingText == lastAnalyzed {
				continue
			}
			gen++
			lastAnalyzed = pendingText
			s.setAnalyzing()
			go s.analyze(gen, pendingText, nil)

		case req := <-s.forceCh:
			stopTimer(timer)
			pendingText = ""
			if tooShort(req.text, s.cfg.MinTextLength) {
				gen++
				s.retract()
				req.reply <- outcome{result: emptyResult(req.text)}
				continue
			}
			gen++
			lastAnalyzed = req.text
			s.setAnalyzing()
			go s.analyze(gen, req.text, req.reply)

		case out := <-s.resultCh:
			if out.reply != nil {
				out.reply <- out
			}
			if out.gen != gen {
				// Superseded while in flight; result is dropped silently.
				continue
			}
			if out.err != nil {
				s.setError(out.err)
				continue
			}
			s.publish(out)

		case ack := <-s.resetCh:
			stopTimer(timer)
			pendingText = ""
			lastAnalyzed = ""
			gen++
			s.clearState()
			close(ack)
		}
	}
}

// analyze runs in its own goroutine so the run loop never blocks on the
// CPU-bound matching work. Panics are converted to the error state rather
// than crashing the host: analysis is a best-effort enhancement.
func (s *analysisService) analyze(gen uint64, text string, reply chan outcome) {
	defer func() {
		if r := recover(); r != nil {
			s.deliver(outcome{gen: gen, err: fmt.Errorf("analysis panic: %v", r), reply: reply})
		}
	}()

	if cached := s.cache.get(text); cached != nil {
		s.deliver(outcome{gen: gen, result: cached, cacheHit: true, reply: reply})
		return
	}

	start := time.Now()
	normalized := matcher.Normalize(text)
	matches := s.engine.Match(normalized)
	suggestions := RankSuggestions(s.cfg, matches, s.SelectedCategories(), len(text))

	result := &domain.AnalysisResult{
		Text:           text,
		NormalizedText: normalized,
		Matches:        matches,
		Suggestions:    suggestions,
		Confidence:     OverallConfidence(matches),
		Latency:        time.Since(start),
		CreatedAt:      start.UTC(),
	}
	s.deliver(outcome{gen: gen, result: result, reply: reply})
}

func (s *analysisService) deliver(out outcome) {
	select {
	case s.resultCh <- out:
	case <-s.done:
	}
}

// ── state transitions (run loop only) ───────────────────────────────────────

func (s *analysisService) setAnalyzing() {
	s.mu.Lock()
	s.state = domain.StateAnalyzing
	s.reason = ""
	s.mu.Unlock()

	s.emit(StateEvent{State: domain.StateAnalyzing})
}

func (s *analysisService) setError(err error) {
	s.mu.Lock()
	s.state = domain.StateError
	s.reason = err.Error()
	s.mu.Unlock()

	s.observer.OnAnalysisComplete(AnalysisEvent{Err: err.Error()})
	// Recoverable: previous suggestions stay visible, next input resumes.
	s.emit(StateEvent{State: domain.StateError, Reason: err.Error()})
}

func (s *analysisService) publish(out outcome) {
	result := out.result

	s.mu.Lock()
	diff := visibilityDiff(s.visible, result.Suggestions)
	s.state = domain.StateCompleted
	s.confidence = result.Confidence
	s.reason = ""
	s.result = result
	s.suggestions = result.Suggestions
	s.visible = shownSet(result.Suggestions)
	if !out.cacheHit {
		s.history = append(s.history, result)
		if len(s.history) > s.cfg.HistoryLimit {
			s.history = s.history[len(s.history)-s.cfg.HistoryLimit:]
		}
	}
	s.mu.Unlock()

	if !out.cacheHit {
		s.cache.put(result.Text, result)
	}

	s.observer.OnAnalysisComplete(AnalysisEvent{
		TextLength: len(result.Text),
		Matches:    len(result.Matches),
		Confidence: result.Confidence,
		LatencyMs:  result.Latency.Milliseconds(),
		CacheHit:   out.cacheHit,
	})
	s.emit(StateEvent{
		State:       domain.StateCompleted,
		Confidence:  result.Confidence,
		Result:      result,
		Suggestions: result.Suggestions,
		Visibility:  diff,
	})
}

// retract moves to idle and hides everything currently shown, for inputs
// below the minimum length.
func (s *analysisService) retract() {
	s.mu.Lock()
	diff := visibilityDiff(s.visible, nil)
	s.state = domain.StateIdle
	s.confidence = 0
	s.reason = ""
	s.result = nil
	s.suggestions = nil
	s.visible = make(map[domain.Category]bool)
	s.mu.Unlock()

	s.emit(StateEvent{State: domain.StateIdle, Visibility: diff})
}

// clearState is retract plus history and selection cleanup. The cache is
// left untouched: it is keyed by text, not by session.
func (s *analysisService) clearState() {
	s.mu.Lock()
	diff := visibilityDiff(s.visible, nil)
	s.state = domain.StateIdle
	s.confidence = 0
	s.reason = ""
	s.result = nil
	s.suggestions = nil
	s.visible = make(map[domain.Category]bool)
	s.history = nil
	s.selected = nil
	s.mu.Unlock()

	s.emit(StateEvent{State: domain.StateIdle, Visibility: diff})
}

// emit publishes on the bounded event channel, dropping the oldest event
// when the host is not keeping up.
func (s *analysisService) emit(ev StateEvent) {
	for {
		select {
		case s.events <- ev:
			return
		default:
			select {
			case <-s.events:
			default:
			}
		}
	}
}

// ── helpers ─────────────────────────────────────────────────────────────────

func tooShort(text string, min int) bool {
	return len(strings.TrimSpace(text)) < min
}

func emptyResult(text string) *domain.AnalysisResult {
	return &domain.AnalysisResult{
		Text:           text,
		NormalizedText: matcher.Normalize(text),
		CreatedAt:      time.Now().UTC(),
	}
}

// visibilityDiff marks categories entering the suggestion list as shown
// and previously shown categories missing from it as hidden.
func visibilityDiff(previous map[domain.Category]bool, next []domain.Category) map[domain.Category]bool {
	diff := make(map[domain.Category]bool)
	nextSet := make(map[domain.Category]bool, len(next))
	for _, c := range next {
		nextSet[c] = true
		if !previous[c] {
			diff[c] = true
		}
	}
	for c, shown := range previous {
		if shown && !nextSet[c] {
			diff[c] = false
		}
	}
	return diff
}

func shownSet(cats []domain.Category) map[domain.Category]bool {
	set := make(map[domain.Category]bool, len(cats))
	for _, c := range cats {
		set[c] = true
	}
	return set
}

func stopTimer(t *time.Timer) {
	if !t.Stop() {
		select {
		case <-t.C:
		default:
		}
	}
}
