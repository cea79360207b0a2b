package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles Bubbletea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case tea.QuitMsg:
		m.quitting = true
		return m, nil
	}

	// Cursor blinks and other widget messages belong to the focused input.
	if input := m.textInput(m.focused().control); input != nil {
		var cmd tea.Cmd
		*input, cmd = input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Next):
		return m.moveFocus(1)
	case key.Matches(msg, m.keys.Prev):
		return m.moveFocus(-1)
	}

	target := m.focused()
	if m.textInput(target.control) == nil && key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	switch target.control {
	case controlMessageToggle:
		if key.Matches(msg, m.keys.Activate) {
			m.message.Toggle()
			m.log.With("hidden", m.message.Hidden).Debug("message toggled")
		}
	case controlTheme:
		if key.Matches(msg, m.keys.Activate) {
			m.theme = m.theme.Toggle()
			m.styles = newStyles(m.theme)
			m.log.With("theme", string(m.theme)).Debug("theme toggled")
		}
	case controlTabs:
		return m.handleTabKeys(msg)
	case controlCounter:
		return m.handleCounterKeys(msg)
	case controlFAQ:
		if key.Matches(msg, m.keys.Activate) && target.index < len(m.cfg.FAQ) {
			id := m.cfg.FAQ[target.index].ID
			m.faq.Toggle(id)
			m.log.WithFields(map[string]any{"faq": id, "expanded": m.faq.Expanded(id)}).Debug("faq toggled")
		}
	case controlLiveInput:
		var cmd tea.Cmd
		m.live, cmd = m.live.Update(msg)
		m.preview.Set(m.live.Value())
		return m, cmd
	case controlName, controlEmail, controlPassword, controlConfirm:
		if key.Matches(msg, m.keys.Submit) {
			return m.submit()
		}
		return m.updateFormInput(target.control, msg)
	case controlTerms:
		switch {
		case key.Matches(msg, m.keys.Check):
			m.form.terms = !m.form.terms
			m.validateField(controlTerms)
		case key.Matches(msg, m.keys.Submit):
			return m.submit()
		}
	case controlSubmit:
		if key.Matches(msg, m.keys.Activate) {
			return m.submit()
		}
	}

	return m, nil
}

func (m Model) handleTabKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.TabLeft):
		m.tabs.Prev()
	case key.Matches(msg, m.keys.TabRight), key.Matches(msg, m.keys.Activate):
		m.tabs.Next()
	case key.Matches(msg, m.keys.TabJump):
		index := int(msg.String()[0] - '1')
		if index >= len(m.cfg.Tabs) || !m.tabs.Select(m.cfg.Tabs[index].ID) {
			return m, nil
		}
	default:
		return m, nil
	}
	m.log.With("tab", m.tabs.Active()).Debug("tab selected")
	return m, nil
}

func (m Model) handleCounterKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Increment), key.Matches(msg, m.keys.Activate):
		m.counter.Increment()
	case key.Matches(msg, m.keys.Decrement):
		m.counter.Decrement()
	case key.Matches(msg, m.keys.Reset):
		m.counter.Reset()
	default:
		return m, nil
	}
	m.log.With("count", m.counter.Value).Debug("counter changed")
	return m, nil
}

// updateFormInput forwards msg to a signup text field and treats any change
// of its value as an input event for that field.
func (m Model) updateFormInput(c control, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	input := m.textInput(c)
	before := input.Value()

	var cmd tea.Cmd
	*input, cmd = input.Update(msg)

	if input.Value() != before {
		m.validateField(c)
	}
	return m, cmd
}

func (m *Model) validateField(c control) {
	field, ok := formFields[c]
	if !ok {
		return
	}
	if _, err := m.orch.ValidateField(field); err != nil {
		m.log.Error(err, "field validation failed")
	}
}

// submit runs a full validation pass. The key press that triggers it is
// consumed here, so submitting never quits or navigates away.
func (m Model) submit() (tea.Model, tea.Cmd) {
	outcome := m.orch.ValidateAndSubmit(m.form.Snapshot())
	m.log.WithFields(map[string]any{
		"outcome": string(outcome.Status),
		"cleared": outcome.ClearFields,
	}).Info("signup submitted")
	return m, nil
}

func (m Model) moveFocus(delta int) (tea.Model, tea.Cmd) {
	m.blur(m.focused())
	m.focus = (m.focus + delta + len(m.order)) % len(m.order)
	return m, m.focusOn(m.focused())
}

func (m *Model) blur(target focusTarget) {
	if target.control == controlHoverBox {
		m.highlight.Blur()
	}
	if input := m.textInput(target.control); input != nil {
		input.Blur()
	}
}

func (m *Model) focusOn(target focusTarget) tea.Cmd {
	if target.control == controlHoverBox {
		m.highlight.Focus()
	}
	if input := m.textInput(target.control); input != nil {
		return input.Focus()
	}
	return nil
}
