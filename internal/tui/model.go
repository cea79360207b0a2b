package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/pagekit/internal/config"
	"github.com/alexisbeaulieu97/pagekit/internal/logger"
	"github.com/alexisbeaulieu97/pagekit/internal/page"
	"github.com/alexisbeaulieu97/pagekit/internal/validation"
	pageerrors "github.com/alexisbeaulieu97/pagekit/pkg/errors"
)

// control identifies a focusable element of the page.
type control int

const (
	controlMessageToggle control = iota
	controlHoverBox
	controlLiveInput
	controlTheme
	controlTabs
	controlCounter
	controlFAQ
	controlName
	controlEmail
	controlPassword
	controlConfirm
	controlTerms
	controlSubmit
)

// focusTarget is one stop in the tab order. index selects the FAQ item for controlFAQ.
type focusTarget struct {
	control control
	index   int
}

var formFields = map[control]validation.FieldID{
	controlName:     validation.FieldName,
	controlEmail:    validation.FieldEmail,
	controlPassword: validation.FieldPassword,
	controlConfirm:  validation.FieldConfirm,
	controlTerms:    validation.FieldTerms,
}

// Model contains the Bubbletea state for the interactive page.
type Model struct {
	cfg    *config.Config
	log    *logger.Logger
	keys   keyMap
	help   help.Model
	styles styles

	order []focusTarget
	focus int

	message   page.Visibility
	highlight page.Highlight
	preview   page.Preview
	live      textinput.Model
	theme     page.Theme
	tabs      page.Tabs
	counter   page.Counter
	faq       page.FAQ

	form *signupForm
	orch *validation.Orchestrator

	quitting bool
}

// NewModel constructs the page for cfg. cfg must not be nil; log may be nil.
func NewModel(cfg *config.Config, log *logger.Logger) Model {
	form := newSignupForm()
	theme := cfg.PageTheme()

	live := textinput.New()
	live.Placeholder = "Type to see a live preview"
	live.Prompt = ""
	live.CharLimit = 120

	m := Model{
		cfg:     cfg,
		log:     log.With("component", "tui"),
		keys:    defaultKeyMap(),
		help:    help.New(),
		styles:  newStyles(theme),
		message: page.Visibility{Hidden: true},
		live:    live,
		theme:   theme,
		tabs:    page.NewTabs(cfg.TabIDs()...),
		faq:     page.NewFAQ(cfg.FAQIDs()...),
		form:    form,
		orch: validation.NewOrchestrator(form,
			validation.WithLogger(log),
			validation.WithSuccessMessage(cfg.Messages.Success),
		),
	}
	m.order = buildFocusOrder(len(cfg.FAQ))
	return m
}

func buildFocusOrder(faqItems int) []focusTarget {
	order := []focusTarget{
		{control: controlMessageToggle},
		{control: controlHoverBox},
		{control: controlLiveInput},
		{control: controlTheme},
		{control: controlTabs},
		{control: controlCounter},
	}
	for i := 0; i < faqItems; i++ {
		order = append(order, focusTarget{control: controlFAQ, index: i})
	}
	return append(order,
		focusTarget{control: controlName},
		focusTarget{control: controlEmail},
		focusTarget{control: controlPassword},
		focusTarget{control: controlConfirm},
		focusTarget{control: controlTerms},
		focusTarget{control: controlSubmit},
	)
}

// Init starts the Bubbletea program.
func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle(m.cfg.Title)
}

// Run drives the page until the user quits or ctx is cancelled.
func Run(ctx context.Context, m Model, opts ...tea.ProgramOption) error {
	options := append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, opts...)
	if _, err := tea.NewProgram(m, options...).Run(); err != nil {
		return pageerrors.NewTerminalError("run", err)
	}
	return nil
}

// focused returns the control that currently holds focus.
func (m Model) focused() focusTarget {
	return m.order[m.focus]
}

func (m Model) isFocused(c control) bool {
	return m.focused().control == c
}

// textInput returns the widget behind a text control, or nil.
func (m *Model) textInput(c control) *textinput.Model {
	if c == controlLiveInput {
		return &m.live
	}
	if field, ok := formFields[c]; ok {
		return m.form.input(field)
	}
	return nil
}
