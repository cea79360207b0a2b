package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/pagekit/internal/page"
)

type palette struct {
	text    lipgloss.Color
	muted   lipgloss.Color
	primary lipgloss.Color
	accent  lipgloss.Color
	success lipgloss.Color
	danger  lipgloss.Color
	surface lipgloss.Color
}

var (
	darkPalette = palette{
		text:    lipgloss.Color("252"),
		muted:   lipgloss.Color("244"),
		primary: lipgloss.Color("205"),
		accent:  lipgloss.Color("39"),
		success: lipgloss.Color("42"),
		danger:  lipgloss.Color("196"),
		surface: lipgloss.Color("236"),
	}
	lightPalette = palette{
		text:    lipgloss.Color("235"),
		muted:   lipgloss.Color("242"),
		primary: lipgloss.Color("162"),
		accent:  lipgloss.Color("25"),
		success: lipgloss.Color("28"),
		danger:  lipgloss.Color("160"),
		surface: lipgloss.Color("254"),
	}
)

type styles struct {
	title         lipgloss.Style
	section       lipgloss.Style
	text          lipgloss.Style
	muted         lipgloss.Style
	button        lipgloss.Style
	buttonFocused lipgloss.Style
	box           lipgloss.Style
	boxActive     lipgloss.Style
	tab           lipgloss.Style
	tabActive     lipgloss.Style
	panel         lipgloss.Style
	label         lipgloss.Style
	fieldError    lipgloss.Style
	status        lipgloss.Style
	statusSuccess lipgloss.Style
	marker        lipgloss.Style
}

func newStyles(theme page.Theme) styles {
	p := darkPalette
	if theme == page.ThemeLight {
		p = lightPalette
	}

	return styles{
		title:         lipgloss.NewStyle().Bold(true).Foreground(p.primary),
		section:       lipgloss.NewStyle().Bold(true).Foreground(p.accent).MarginTop(1),
		text:          lipgloss.NewStyle().Foreground(p.text),
		muted:         lipgloss.NewStyle().Foreground(p.muted),
		button:        lipgloss.NewStyle().Foreground(p.text).Background(p.surface).Padding(0, 1),
		buttonFocused: lipgloss.NewStyle().Foreground(p.surface).Background(p.primary).Bold(true).Padding(0, 1),
		box: lipgloss.NewStyle().
			Foreground(p.muted).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.muted).
			Padding(0, 2),
		boxActive: lipgloss.NewStyle().
			Foreground(p.text).
			Bold(true).
			Border(lipgloss.ThickBorder()).
			BorderForeground(p.primary).
			Padding(0, 2),
		tab:           lipgloss.NewStyle().Foreground(p.muted).Padding(0, 1),
		tabActive:     lipgloss.NewStyle().Foreground(p.primary).Bold(true).Underline(true).Padding(0, 1),
		panel:         lipgloss.NewStyle().Foreground(p.text).PaddingLeft(2),
		label:         lipgloss.NewStyle().Foreground(p.text).Width(18),
		fieldError:    lipgloss.NewStyle().Foreground(p.danger).PaddingLeft(18),
		status:        lipgloss.NewStyle().Foreground(p.danger).Bold(true).MarginTop(1),
		statusSuccess: lipgloss.NewStyle().Foreground(p.success).Bold(true).MarginTop(1),
		marker:        lipgloss.NewStyle().Foreground(p.primary).Bold(true),
	}
}
