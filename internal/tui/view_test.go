package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/pagekit/internal/validation"
)

func TestViewRendersSections(t *testing.T) {
	m := newTestModel(t)
	m = send(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	out := m.View()
	require.Contains(t, out, m.cfg.Title)
	require.Contains(t, out, "Event handling")
	require.Contains(t, out, "Interactive elements")
	require.Contains(t, out, "Sign up")
	require.Contains(t, out, "Theme: dark")
	require.Contains(t, out, "Reach 10 to win! 🎯")
	require.Contains(t, out, "Create account")
	require.NotContains(t, out, m.cfg.Message)
}

func TestViewShowsToggledMessage(t *testing.T) {
	m := newTestModel(t)
	m = send(t, m, keyEnter)

	require.Contains(t, m.View(), m.cfg.Message)
}

func TestViewShowsActivePanelOnly(t *testing.T) {
	m := newTestModel(t)
	out := m.View()
	require.Contains(t, out, m.cfg.Tabs[0].Content)
	require.NotContains(t, out, m.cfg.Tabs[1].Content)

	m = focusControl(t, m, focusTarget{control: controlTabs})
	m = send(t, m, keyRight)
	out = m.View()
	require.Contains(t, out, m.cfg.Tabs[1].Content)
	require.NotContains(t, out, m.cfg.Tabs[0].Content)
}

func TestViewShowsGoalReached(t *testing.T) {
	m := newTestModel(t)
	m.counter.Value = m.cfg.Counter.Goal

	require.Contains(t, m.View(), "You reached 10! 🏆")
}

func TestViewExpandsFAQAnswer(t *testing.T) {
	m := newTestModel(t)
	answer := m.cfg.FAQ[0].Answer
	require.NotContains(t, m.View(), answer)

	m = focusControl(t, m, focusTarget{control: controlFAQ, index: 0})
	m = send(t, m, keyEnter)
	require.Contains(t, m.View(), answer)
}

func TestViewRendersFormErrorsAndStatus(t *testing.T) {
	m := newTestModel(t)
	m = focusControl(t, m, focusTarget{control: controlSubmit})
	m = send(t, m, keyEnter)

	out := m.View()
	require.Contains(t, out, validation.MsgEmailInvalid)
	require.Contains(t, out, validation.MsgPasswordTooShort)
	require.Contains(t, out, validation.MsgTermsRequired)
	require.Contains(t, out, "[ ] I accept the terms")
}

func TestViewMasksPasswords(t *testing.T) {
	m := newTestModel(t)
	m = focusControl(t, m, focusTarget{control: controlPassword})
	m = send(t, m, runes("Secret1"))

	require.NotContains(t, m.View(), "Secret1")
}

func TestViewEmptyWhenQuitting(t *testing.T) {
	m := newTestModel(t)
	m.quitting = true
	require.Empty(t, m.View())
}
