package viewstate

// Tabs tracks which of a fixed set of mutually exclusive panels is visible
// and which panels have loaded their data. A panel loads lazily on first
// selection; switching away and back does not re-fetch unless the panel
// explicitly invalidates after a mutation.
type Tabs struct {
	names  []string
	active int
	loaded map[string]bool
}

// NewTabs builds a selector over the given panel names; the first one starts
// active.
func NewTabs(names ...string) *Tabs {
	return &Tabs{names: names, loaded: make(map[string]bool)}
}

// Names returns the panel names in display order.
func (t *Tabs) Names() []string { return t.names }

// Active returns the active panel's name.
func (t *Tabs) Active() string {
	if len(t.names) == 0 {
		return ""
	}
	return t.names[t.active]
}

// ActiveIndex returns the active panel's position.
func (t *Tabs) ActiveIndex() int { return t.active }

// Select activates the named panel and reports whether its data still needs
// loading. Selecting an unknown name is a no-op returning false.
func (t *Tabs) Select(name string) (needsLoad bool) {
	for i, n := range t.names {
		if n == name {
			t.active = i
			return !t.loaded[name]
		}
	}
	return false
}

// Next cycles to the following panel and reports whether it needs loading.
func (t *Tabs) Next() (needsLoad bool) {
	if len(t.names) == 0 {
		return false
	}
	t.active = (t.active + 1) % len(t.names)
	return !t.loaded[t.Active()]
}

// Prev cycles to the preceding panel and reports whether it needs loading.
func (t *Tabs) Prev() (needsLoad bool) {
	if len(t.names) == 0 {
		return false
	}
	t.active = (t.active - 1 + len(t.names)) % len(t.names)
	return !t.loaded[t.Active()]
}

// MarkLoaded records that the named panel's data has been fetched.
func (t *Tabs) MarkLoaded(name string) {
	t.loaded[name] = true
}

// Invalidate forgets the named panel's loaded mark so the next selection
// re-fetches, used after mutations that require fresh server state.
func (t *Tabs) Invalidate(name string) {
	delete(t.loaded, name)
}
