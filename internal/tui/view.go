package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/pagekit/internal/page"
	"github.com/alexisbeaulieu97/pagekit/internal/validation"
)

var fieldLabels = []struct {
	control control
	label   string
}{
	{controlName, "Full name"},
	{controlEmail, "Email"},
	{controlPassword, "Password"},
	{controlConfirm, "Confirm password"},
}

// View renders the current state of the model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	s := m.styles
	sections := []string{
		s.title.Render(m.cfg.Title),
		s.section.Render("Event handling"),
		m.renderButton(controlMessageToggle, "Toggle message"),
	}
	if !m.message.Hidden {
		sections = append(sections, "  "+s.text.Render(m.cfg.Message))
	}
	sections = append(sections,
		m.renderHoverBox(),
		m.renderLiveInput(),
		s.section.Render("Interactive elements"),
		m.renderButton(controlTheme, fmt.Sprintf("Theme: %s", m.theme)),
		m.renderTabs(),
		m.renderCounter(),
	)
	if faq := m.renderFAQ(); faq != "" {
		sections = append(sections, faq)
	}
	sections = append(sections,
		s.section.Render("Sign up"),
		m.renderForm(),
		"",
		m.help.View(m.keys),
	)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) marker(target focusTarget) string {
	if m.focused() == target {
		return m.styles.marker.Render("›") + " "
	}
	return "  "
}

func (m Model) renderButton(c control, label string) string {
	style := m.styles.button
	if m.isFocused(c) {
		style = m.styles.buttonFocused
	}
	return m.marker(focusTarget{control: c}) + style.Render(label)
}

func (m Model) renderHoverBox() string {
	style := m.styles.box
	label := "Focus me to highlight"
	if m.highlight.Active {
		style = m.styles.boxActive
		label = "Highlighted!"
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, m.marker(focusTarget{control: controlHoverBox}), style.Render(label))
}

func (m Model) renderLiveInput() string {
	preview := m.styles.muted.Render("(nothing typed yet)")
	if m.preview.Text != "" {
		preview = m.styles.text.Render(m.preview.Text)
	}
	return m.marker(focusTarget{control: controlLiveInput}) + m.styles.label.Render("Live input") + m.live.View() +
		"\n  " + m.styles.label.Render("Preview") + preview
}

func (m Model) renderTabs() string {
	labels := make([]string, 0, len(m.cfg.Tabs))
	content := ""
	for _, tab := range m.cfg.Tabs {
		style := m.styles.tab
		if m.tabs.IsSelected(tab.ID) {
			style = m.styles.tabActive
		}
		labels = append(labels, style.Render(tab.Label))
		if m.tabs.PanelActive(tab.ID) {
			content = tab.Content
		}
	}

	bar := m.marker(focusTarget{control: controlTabs}) + lipgloss.JoinHorizontal(lipgloss.Top, labels...)
	return bar + "\n" + m.styles.panel.Render(content)
}

func (m Model) renderCounter() string {
	line := fmt.Sprintf("Count: %d", m.counter.Value)
	controls := m.styles.muted.Render("  [-] [+] [0]")
	hint := page.CountHint(m.counter.Value, m.cfg.Counter.Goal)
	return m.marker(focusTarget{control: controlCounter}) + m.styles.text.Render(line) + controls +
		"\n  " + m.styles.muted.Render(hint)
}

func (m Model) renderFAQ() string {
	if len(m.cfg.FAQ) == 0 {
		return ""
	}

	lines := make([]string, 0, len(m.cfg.FAQ)*2)
	for i, item := range m.cfg.FAQ {
		icon := "▸"
		if m.faq.Expanded(item.ID) {
			icon = "▾"
		}
		lines = append(lines, m.marker(focusTarget{control: controlFAQ, index: i})+m.styles.text.Render(icon+" "+item.Question))
		if !m.faq.AnswerHidden(item.ID) {
			lines = append(lines, m.styles.panel.Render("  "+item.Answer))
		}
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderForm() string {
	s := m.styles
	var lines []string

	for _, field := range fieldLabels {
		input := m.form.input(formFields[field.control])
		lines = append(lines, m.marker(focusTarget{control: field.control})+s.label.Render(field.label)+input.View())
		if msg := m.form.fieldError(formFields[field.control]); msg != "" {
			lines = append(lines, s.fieldError.Render(msg))
		}
	}

	box := "[ ]"
	if m.form.terms {
		box = "[x]"
	}
	lines = append(lines, m.marker(focusTarget{control: controlTerms})+s.text.Render(box+" I accept the terms"))
	if msg := m.form.fieldError(validation.FieldTerms); msg != "" {
		lines = append(lines, s.fieldError.Render(msg))
	}

	lines = append(lines, m.renderButton(controlSubmit, "Create account"))

	if status := m.form.status; status != "" {
		style := s.status
		if status == m.cfg.Messages.Success {
			style = s.statusSuccess
		}
		lines = append(lines, style.Render(status))
	}

	return strings.Join(lines, "\n")
}
