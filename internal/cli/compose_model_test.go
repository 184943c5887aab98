package cli

import (
	"testing"
	"time"

	"github.com/alexanderramin/telos/internal/analysis"
	"github.com/alexanderramin/telos/internal/domain"
	"github.com/alexanderramin/telos/internal/teatest"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	svc, err := analysis.NewDefaultService(analysis.DefaultConfig(), nil)
	require.NoError(t, err)
	t.Cleanup(svc.Close)
	return &App{
		Analysis:      svc,
		IsInteractive: func() bool { return true },
	}
}

func completedEvent(text string, suggestions ...domain.Category) stateEventMsg {
	visibility := make(map[domain.Category]bool, len(suggestions))
	for _, c := range suggestions {
		visibility[c] = true
	}
	return stateEventMsg(analysis.StateEvent{
		State:      domain.StateCompleted,
		Confidence: 0.72,
		Result: &domain.AnalysisResult{
			Text:      text,
			Latency:   2 * time.Millisecond,
			CreatedAt: time.Now().UTC(),
		},
		Suggestions: suggestions,
		Visibility:  visibility,
	})
}

func TestComposeModel_InitialView(t *testing.T) {
	d := teatest.New(t, newComposeModel(newTestApp(t)), 80, 24)

	view := d.View()
	assert.Contains(t, view, "telos compose")
	assert.Contains(t, view, "waiting for input")
	assert.Contains(t, view, "Describe your training goal")
}

func TestComposeModel_AnalyzingState(t *testing.T) {
	d := teatest.New(t, newComposeModel(newTestApp(t)), 80, 24)

	d.Send(stateEventMsg(analysis.StateEvent{State: domain.StateAnalyzing}))
	assert.Contains(t, d.View(), "analyzing...")
}

func TestComposeModel_CompletedShowsChips(t *testing.T) {
	d := teatest.New(t, newComposeModel(newTestApp(t)), 80, 24)

	d.Send(completedEvent("lose weight at home", domain.CategoryGoalType))

	view := d.View()
	assert.Contains(t, view, "analyzed")
	assert.Contains(t, view, "Goal type")

	m := d.Model.(composeModel)
	assert.Equal(t, domain.StateCompleted, m.state)
	require.NotNil(t, m.result)
	assert.Equal(t, "lose weight at home", m.result.Text)
}

func TestComposeModel_VisibilityDiffHidesChips(t *testing.T) {
	d := teatest.New(t, newComposeModel(newTestApp(t)), 80, 24)

	d.Send(completedEvent("lose weight at home", domain.CategoryGoalType))
	require.Contains(t, d.View(), "Goal type")

	d.Send(stateEventMsg(analysis.StateEvent{
		State:      domain.StateIdle,
		Visibility: map[domain.Category]bool{domain.CategoryGoalType: false},
	}))
	assert.NotContains(t, d.View(), "Goal type")
	assert.Contains(t, d.View(), "waiting for input")
}

func TestComposeModel_TabAcceptsTopSuggestion(t *testing.T) {
	app := newTestApp(t)
	d := teatest.New(t, newComposeModel(app), 80, 24)

	d.Send(completedEvent("lose weight at home",
		domain.CategoryGoalType, domain.CategoryLocation))
	d.Send(tea.KeyMsg{Type: tea.KeyTab})

	m := d.Model.(composeModel)
	assert.True(t, m.selected[domain.CategoryGoalType])
	assert.Equal(t, []domain.Category{domain.CategoryGoalType},
		app.Analysis.SelectedCategories())

	// A second tab toggles the selection off again.
	d.Send(tea.KeyMsg{Type: tea.KeyTab})
	m = d.Model.(composeModel)
	assert.False(t, m.selected[domain.CategoryGoalType])
	assert.Empty(t, app.Analysis.SelectedCategories())
}

func TestComposeModel_ErrorState(t *testing.T) {
	d := teatest.New(t, newComposeModel(newTestApp(t)), 80, 24)

	d.Send(stateEventMsg(analysis.StateEvent{
		State:  domain.StateError,
		Reason: "analysis panic: boom",
	}))
	assert.Contains(t, d.View(), "analysis error")
}

func TestComposeModel_CtrlSSavesResult(t *testing.T) {
	d := teatest.New(t, newComposeModel(newTestApp(t)), 80, 24)

	d.Send(completedEvent("lose weight at home", domain.CategoryGoalType))
	d.Send(tea.KeyMsg{Type: tea.KeyCtrlS})

	assert.True(t, d.Quitting)
	m := d.Model.(composeModel)
	require.NotNil(t, m.savedLog)
	assert.Equal(t, "lose weight at home", m.savedLog.Text)
	assert.NotEmpty(t, m.savedLog.ID)
	assert.Equal(t, []domain.Category{domain.CategoryGoalType}, m.savedLog.Suggestions)
}

func TestComposeModel_CtrlSWithoutResultJustQuits(t *testing.T) {
	d := teatest.New(t, newComposeModel(newTestApp(t)), 80, 24)

	d.Send(tea.KeyMsg{Type: tea.KeyCtrlS})

	assert.True(t, d.Quitting)
	assert.Nil(t, d.Model.(composeModel).savedLog)
}

func TestComposeModel_EscQuits(t *testing.T) {
	d := teatest.New(t, newComposeModel(newTestApp(t)), 80, 24)

	d.Send(tea.KeyMsg{Type: tea.KeyEsc})
	assert.True(t, d.Quitting)
	assert.Empty(t, d.View())
}

func TestComposeModel_TypingForwardsToPipeline(t *testing.T) {
	d := teatest.New(t, newComposeModel(newTestApp(t)), 80, 24)

	d.Type("run")
	assert.Equal(t, "run", d.Model.(composeModel).input.Value())
}
