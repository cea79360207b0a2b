package page

// FAQ tracks which questions of a collapsible FAQ are expanded. All answers
// start collapsed.
type FAQ struct {
	ids      []string
	expanded map[string]bool
}

// NewFAQ creates an FAQ for the given item ids.
func NewFAQ(ids ...string) FAQ {
	return FAQ{
		ids:      append([]string(nil), ids...),
		expanded: make(map[string]bool, len(ids)),
	}
}

// IDs returns the item ids in display order.
func (f FAQ) IDs() []string {
	return append([]string(nil), f.ids...)
}

// Toggle flips the expanded state of id and reports whether id is known.
func (f *FAQ) Toggle(id string) bool {
	if !f.has(id) {
		return false
	}
	if f.expanded == nil {
		f.expanded = make(map[string]bool)
	}
	f.expanded[id] = !f.expanded[id]
	return true
}

// Expanded reports the aria-expanded state of id.
func (f FAQ) Expanded(id string) bool {
	return f.expanded[id]
}

// AnswerHidden reports whether the answer for id is hidden.
func (f FAQ) AnswerHidden(id string) bool {
	return !f.Expanded(id)
}

func (f FAQ) has(id string) bool {
	for _, candidate := range f.ids {
		if candidate == id {
			return true
		}
	}
	return false
}
