// Package page holds the transient state behind the interactive page widgets.
// Every value here is owned by the UI layer that renders it; nothing is global.
package page

import (
	"fmt"
	"strings"
)

// Visibility tracks whether a toggleable element is hidden.
type Visibility struct {
	Hidden bool
}

// Toggle flips the visibility.
func (v *Visibility) Toggle() {
	v.Hidden = !v.Hidden
}

// Highlight tracks the hover/focus highlight of a box.
type Highlight struct {
	Active bool
}

func (h *Highlight) Enter() { h.Active = true }
func (h *Highlight) Leave() { h.Active = false }
func (h *Highlight) Focus() { h.Active = true }
func (h *Highlight) Blur()  { h.Active = false }

// Preview mirrors the latest value typed into the live input.
type Preview struct {
	Text string
}

// Set replaces the preview text.
func (p *Preview) Set(value string) {
	p.Text = value
}

// Theme is the page colour scheme.
type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// ParseTheme converts a raw name into a Theme.
func ParseTheme(raw string) (Theme, error) {
	switch Theme(strings.ToLower(strings.TrimSpace(raw))) {
	case ThemeDark:
		return ThemeDark, nil
	case ThemeLight:
		return ThemeLight, nil
	default:
		return "", fmt.Errorf("unknown theme %q", raw)
	}
}

// Toggle returns the opposite theme. Unknown values toggle to light, as the
// page starts dark.
func (t Theme) Toggle() Theme {
	if t == ThemeLight {
		return ThemeDark
	}
	return ThemeLight
}

// Counter is the click counter.
type Counter struct {
	Value int
}

func (c *Counter) Increment() { c.Value++ }
func (c *Counter) Decrement() { c.Value-- }
func (c *Counter) Reset()     { c.Value = 0 }

// CountHint returns the hint shown under the counter for value against goal.
func CountHint(value, goal int) string {
	if value >= goal {
		return fmt.Sprintf("You reached %d! 🏆", goal)
	}
	return fmt.Sprintf("Reach %d to win! 🎯", goal)
}
