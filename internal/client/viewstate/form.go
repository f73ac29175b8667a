package viewstate

// FormState names the modal form lifecycle states.
type FormState int

const (
	FormClosed FormState = iota
	FormOpen
	FormSubmitting
)

// Form is the modal create-or-edit lifecycle controller:
//
//	Closed -> Open(blank)     -> Submitting -> Closed | Open(error shown)
//	Closed -> Open(prefilled) -> Submitting -> Closed | Open(error shown)
//
// The draft of type T carries the pending field values; on failure it is
// kept verbatim so the admin never loses entered input.
type Form[T any] struct {
	state   FormState
	editing bool
	draft   T
	err     string
}

// OpenBlank opens the form for creation with all fields at their defaults.
func (f *Form[T]) OpenBlank(defaults T) {
	if f.state == FormSubmitting {
		return
	}
	f.state = FormOpen
	f.editing = false
	f.draft = defaults
	f.err = ""
}

// OpenEdit opens the form prefilled with the target record's current values.
func (f *Form[T]) OpenEdit(record T) {
	if f.state == FormSubmitting {
		return
	}
	f.state = FormOpen
	f.editing = true
	f.draft = record
	f.err = ""
}

// Submit moves the form into Submitting. It reports false when the form is
// not open or a submission is already in flight, guarding against
// double-submits.
func (f *Form[T]) Submit() bool {
	if f.state != FormOpen {
		return false
	}
	f.state = FormSubmitting
	f.err = ""
	return true
}

// Succeed closes the form and clears the draft.
func (f *Form[T]) Succeed() {
	var zero T
	f.state = FormClosed
	f.editing = false
	f.draft = zero
	f.err = ""
}

// Fail returns the form to Open with the error shown; the draft is kept.
func (f *Form[T]) Fail(msg string) {
	if f.state != FormSubmitting {
		return
	}
	f.state = FormOpen
	f.err = msg
}

// Cancel closes the form and discards the draft. Cancelling is not possible
// while a submission is in flight; it reports whether it took effect.
func (f *Form[T]) Cancel() bool {
	if f.state == FormSubmitting || f.state == FormClosed {
		return false
	}
	var zero T
	f.state = FormClosed
	f.editing = false
	f.draft = zero
	f.err = ""
	return true
}

// State returns the current lifecycle state.
func (f *Form[T]) State() FormState { return f.state }

// Visible reports whether the form is on screen (Open or Submitting).
func (f *Form[T]) Visible() bool { return f.state != FormClosed }

// Submitting reports whether a submission is in flight; inputs and the
// submit control are disabled for exactly this window.
func (f *Form[T]) Submitting() bool { return f.state == FormSubmitting }

// Editing reports whether the form was opened for an existing record.
func (f *Form[T]) Editing() bool { return f.editing }

// Draft returns a pointer to the pending field values for in-place edits.
func (f *Form[T]) Draft() *T { return &f.draft }

// Err returns the error text shown in the form, if any.
func (f *Form[T]) Err() string { return f.err }
