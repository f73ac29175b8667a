package viewstate

// ActionSet tracks which remote actions are in flight. A busy flag carries
// the acted-upon record's identifier, not a plain boolean, so only the
// specific row being worked on shows a spinner while its siblings stay
// interactive.
type ActionSet struct {
	busy map[string]map[string]struct{}
}

// Start marks action as busy for the record with the given id. Singleton
// actions (send-gift, send-reminders) pass an empty id.
func (a *ActionSet) Start(action, id string) {
	if a.busy == nil {
		a.busy = make(map[string]map[string]struct{})
	}
	ids := a.busy[action]
	if ids == nil {
		ids = make(map[string]struct{})
		a.busy[action] = ids
	}
	ids[id] = struct{}{}
}

// Done clears the busy flag for one record of one action.
func (a *ActionSet) Done(action, id string) {
	ids := a.busy[action]
	delete(ids, id)
	if len(ids) == 0 {
		delete(a.busy, action)
	}
}

// Busy reports whether action is in flight for the specific record.
func (a *ActionSet) Busy(action, id string) bool {
	_, ok := a.busy[action][id]
	return ok
}

// AnyBusy reports whether action is in flight for any record.
func (a *ActionSet) AnyBusy(action string) bool {
	return len(a.busy[action]) > 0
}
