package page

// Tabs tracks which of an ordered set of tabs is selected. Each tab controls
// the panel with the same id, so exactly one tab and one panel are active.
type Tabs struct {
	ids    []string
	active int
}

// NewTabs creates tabs in display order with the first one selected.
func NewTabs(ids ...string) Tabs {
	return Tabs{ids: append([]string(nil), ids...)}
}

// IDs returns the tab ids in display order.
func (t Tabs) IDs() []string {
	return append([]string(nil), t.ids...)
}

// Active returns the selected tab id, or "" when there are no tabs.
func (t Tabs) Active() string {
	if len(t.ids) == 0 {
		return ""
	}
	return t.ids[t.active]
}

// Select activates id. Unknown ids leave the selection unchanged and return false.
func (t *Tabs) Select(id string) bool {
	for i, candidate := range t.ids {
		if candidate == id {
			t.active = i
			return true
		}
	}
	return false
}

// Next selects the following tab, wrapping at the end.
func (t *Tabs) Next() {
	if len(t.ids) == 0 {
		return
	}
	t.active = (t.active + 1) % len(t.ids)
}

// Prev selects the preceding tab, wrapping at the start.
func (t *Tabs) Prev() {
	if len(t.ids) == 0 {
		return
	}
	t.active = (t.active - 1 + len(t.ids)) % len(t.ids)
}

// IsSelected reports the aria-selected state of tab id.
func (t Tabs) IsSelected(id string) bool {
	return id != "" && t.Active() == id
}

// PanelActive reports whether the panel controlled by panelID is shown.
func (t Tabs) PanelActive(panelID string) bool {
	return t.IsSelected(panelID)
}
