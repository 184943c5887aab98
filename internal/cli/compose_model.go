package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/telos/internal/analysis"
	"github.com/alexanderramin/telos/internal/cli/formatter"
	"github.com/alexanderramin/telos/internal/domain"
	"github.com/alexanderramin/telos/internal/repository"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
)

// stateEventMsg wraps a pipeline state event for the bubbletea loop.
type stateEventMsg analysis.StateEvent

// composeModel is the bubbletea Model for the live composition view: a
// textarea on top, suggestion chips and a quality meter below, fed by the
// debounced analysis pipeline.
type composeModel struct {
	app   *App
	input textarea.Model

	width  int
	height int

	state       domain.AnalysisState
	confidence  float64
	reason      string
	result      *domain.AnalysisResult
	suggestions []domain.Category
	visible     map[domain.Category]bool
	selected    map[domain.Category]bool
	quality     domain.QualityAssessment

	// savedLog is set when the user saves and quits; the command persists
	// it after the program exits.
	savedLog *repository.AnalysisLog

	quitting bool
}

func newComposeModel(app *App) composeModel {
	ta := textarea.New()
	ta.Placeholder = "Describe your training goal..."
	ta.Focus()
	ta.CharLimit = 500
	ta.SetHeight(5)

	selected := make(map[domain.Category]bool)
	for _, c := range app.Analysis.SelectedCategories() {
		selected[c] = true
	}

	return composeModel{
		app:      app,
		input:    ta,
		state:    domain.StateIdle,
		visible:  make(map[domain.Category]bool),
		selected: selected,
		quality:  app.Analysis.QualityAssessment(app.Analysis.SelectedCategories()),
	}
}

// waitForEvent blocks on the pipeline's event stream; the returned message
// re-enters Update, which re-subscribes.
func waitForEvent(events <-chan analysis.StateEvent) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-events
		if !ok {
			return nil
		}
		return stateEventMsg(ev)
	}
}

// ── bubbletea interface ──────────────────────────────────────────────────────

func (m composeModel) Init() tea.Cmd {
	return tea.Batch(
		textarea.Blink,
		waitForEvent(m.app.Analysis.Events()),
	)
}

func (m composeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.SetWidth(msg.Width - 4)
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			return m, tea.Quit

		case tea.KeyCtrlS:
			if m.result != nil {
				m.savedLog = &repository.AnalysisLog{
					ID:          uuid.NewString(),
					Text:        m.result.Text,
					Confidence:  m.result.Confidence,
					Matches:     len(m.result.Matches),
					Suggestions: m.result.Suggestions,
					LatencyMs:   m.result.Latency.Milliseconds(),
					CreatedAt:   time.Now().UTC(),
				}
			}
			m.quitting = true
			return m, tea.Quit

		case tea.KeyTab:
			// Accept the top suggestion as a decided category.
			m.toggleTopSuggestion()
			return m, nil
		}

		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		m.app.Analysis.Analyze(m.input.Value())
		return m, cmd

	case stateEventMsg:
		m.applyEvent(analysis.StateEvent(msg))
		return m, waitForEvent(m.app.Analysis.Events())
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *composeModel) applyEvent(ev analysis.StateEvent) {
	m.state = ev.State
	m.reason = ev.Reason
	if ev.State == domain.StateCompleted {
		m.confidence = ev.Confidence
		m.result = ev.Result
		m.suggestions = ev.Suggestions
	}
	if ev.State == domain.StateIdle {
		m.confidence = 0
		m.result = nil
		m.suggestions = nil
	}
	// Apply the visibility diff rather than rebuilding from the raw list,
	// so untouched chips do not flicker.
	for c, show := range ev.Visibility {
		if show {
			m.visible[c] = true
		} else {
			delete(m.visible, c)
		}
	}
	m.quality = m.app.Analysis.QualityAssessment(m.selectedList())
}

func (m *composeModel) toggleTopSuggestion() {
	if len(m.suggestions) == 0 {
		return
	}
	top := m.suggestions[0]
	if m.selected[top] {
		delete(m.selected, top)
	} else {
		m.selected[top] = true
	}
	m.app.Analysis.SetSelectedCategories(m.selectedList())
	m.quality = m.app.Analysis.QualityAssessment(m.selectedList())
}

func (m *composeModel) selectedList() []domain.Category {
	var out []domain.Category
	for _, spec := range domain.Catalog() {
		if m.selected[spec.Category] {
			out = append(out, spec.Category)
		}
	}
	return out
}

func (m composeModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(formatter.Header("telos compose") + "\n\n")
	b.WriteString(m.input.View() + "\n\n")
	b.WriteString(m.statusLine() + "\n")

	if chips := m.chipRow(); chips != "" {
		b.WriteString(chips + "\n")
	}

	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s %s\n",
		formatter.ProgressBar(m.quality.OverallScore, 24),
		formatter.ConfidenceLabel(m.quality.OverallScore)))
	for _, f := range m.quality.Feedback {
		b.WriteString(formatter.Dim("  → "+f) + "\n")
	}
	if m.quality.IsReady {
		b.WriteString(formatter.StyleGreen.Render("  Ready to hand off.") + "\n")
	}

	b.WriteString("\n" + formatter.Dim("tab: accept suggestion · ctrl+s: save & quit · esc: quit"))
	return b.String()
}

func (m composeModel) statusLine() string {
	switch m.state {
	case domain.StateAnalyzing:
		return formatter.StyleYellow.Render("analyzing...")
	case domain.StateCompleted:
		return fmt.Sprintf("%s %s",
			formatter.StyleGreen.Render("analyzed"),
			formatter.ConfidenceLabel(m.confidence))
	case domain.StateError:
		return formatter.StyleRed.Render("analysis error: " + m.reason)
	default:
		return formatter.Dim("waiting for input")
	}
}

func (m composeModel) chipRow() string {
	var chips []string
	for _, spec := range domain.Catalog() {
		if m.selected[spec.Category] {
			chips = append(chips, formatter.Chip(spec.Label, spec.Tier, true))
			continue
		}
		if m.visible[spec.Category] {
			chips = append(chips, formatter.Chip(spec.Label, spec.Tier, false))
		}
	}
	return strings.Join(chips, " ")
}
