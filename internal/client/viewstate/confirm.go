package viewstate

// Confirm models a destructive action's confirm-then-act flow as an explicit
// two-step state transition (Idle -> Pending -> resolved) instead of a
// control-flow-suspending dialog call. The subject carries whatever the
// resolved action needs, typically the target record.
type Confirm[T any] struct {
	pending bool
	subject T
	prompt  string
}

// Ask enters PendingConfirmation for the given subject. A second Ask while
// one is pending replaces it; only one confirmation is shown at a time.
func (c *Confirm[T]) Ask(subject T, prompt string) {
	c.pending = true
	c.subject = subject
	c.prompt = prompt
}

// Confirmed resolves the pending confirmation positively and returns the
// subject. ok is false when nothing was pending.
func (c *Confirm[T]) Confirmed() (subject T, ok bool) {
	if !c.pending {
		var zero T
		return zero, false
	}
	subject = c.subject
	c.reset()
	return subject, true
}

// Cancelled resolves the pending confirmation negatively.
func (c *Confirm[T]) Cancelled() {
	c.reset()
}

// Pending reports whether a confirmation is awaiting an answer.
func (c *Confirm[T]) Pending() bool { return c.pending }

// Prompt returns the question to show while pending.
func (c *Confirm[T]) Prompt() string { return c.prompt }

// Subject returns the pending subject without resolving, for rendering.
func (c *Confirm[T]) Subject() T { return c.subject }

func (c *Confirm[T]) reset() {
	var zero T
	c.pending = false
	c.subject = zero
	c.prompt = ""
}
