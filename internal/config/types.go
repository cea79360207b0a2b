package config

import (
	"github.com/alexisbeaulieu97/pagekit/internal/page"
)

// Config represents the full page configuration document.
type Config struct {
	Version  string    `yaml:"version" validate:"required,semver"`
	Title    string    `yaml:"title" validate:"required,min=1,max=100"`
	Theme    string    `yaml:"theme,omitempty" validate:"omitempty,oneof=dark light"`
	Message  string    `yaml:"message,omitempty" validate:"max=200"`
	Counter  Counter   `yaml:"counter,omitempty"`
	Tabs     []Tab     `yaml:"tabs" validate:"required,min=1,max=10,dive"`
	FAQ      []FAQItem `yaml:"faq,omitempty" validate:"omitempty,max=20,dive"`
	Messages Messages  `yaml:"messages,omitempty"`
}

// Counter configures the click counter.
type Counter struct {
	Goal int `yaml:"goal,omitempty" validate:"omitempty,min=1,max=1000"`
}

// Tab describes one tab and the panel it controls.
type Tab struct {
	ID      string `yaml:"id" validate:"required,item_id"`
	Label   string `yaml:"label,omitempty" validate:"max=40"`
	Content string `yaml:"content" validate:"required"`
}

// FAQItem is one collapsible question.
type FAQItem struct {
	ID       string `yaml:"id" validate:"required,item_id"`
	Question string `yaml:"question" validate:"required"`
	Answer   string `yaml:"answer" validate:"required"`
}

// Messages holds user-facing strings for the signup form.
type Messages struct {
	Success string `yaml:"success,omitempty" validate:"max=200"`
}

// PageTheme returns the configured starting theme.
func (c *Config) PageTheme() page.Theme {
	if c == nil {
		return page.ThemeDark
	}
	theme, err := page.ParseTheme(c.Theme)
	if err != nil {
		return page.ThemeDark
	}
	return theme
}

// TabIDs returns tab ids in display order.
func (c *Config) TabIDs() []string {
	ids := make([]string, 0, len(c.Tabs))
	for _, tab := range c.Tabs {
		ids = append(ids, tab.ID)
	}
	return ids
}

// FAQIDs returns FAQ item ids in display order.
func (c *Config) FAQIDs() []string {
	ids := make([]string, 0, len(c.FAQ))
	for _, item := range c.FAQ {
		ids = append(ids, item.ID)
	}
	return ids
}
