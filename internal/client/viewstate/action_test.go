package viewstate

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestActionSet_BusyIsScopedToRecord(t *testing.T) {
	var a ActionSet

	a.Start("delete", "A")

	// Only A shows busy; B stays interactive.
	require.True(t, a.Busy("delete", "A"))
	require.False(t, a.Busy("delete", "B"))
	require.True(t, a.AnyBusy("delete"))

	a.Done("delete", "A")
	require.False(t, a.Busy("delete", "A"))
	require.False(t, a.AnyBusy("delete"))
}

func TestActionSet_ActionsAreIndependent(t *testing.T) {
	var a ActionSet

	a.Start("delete", "A")
	a.Start("sendGift", "")

	require.True(t, a.Busy("sendGift", ""))
	require.False(t, a.Busy("delete", ""))

	a.Done("sendGift", "")
	require.True(t, a.Busy("delete", "A"))
}

func TestActionSet_ZeroValueIsUsable(t *testing.T) {
	var a ActionSet
	require.False(t, a.Busy("delete", "A"))
	require.False(t, a.AnyBusy("delete"))
	a.Done("delete", "A") // no-op, must not panic
}

func TestConfirm_TwoStepFlow(t *testing.T) {
	var c Confirm[rec]

	_, ok := c.Confirmed()
	require.False(t, ok)

	c.Ask(rec{ID: "v1", Name: "1.0.0"}, "Delete version 1.0.0?")
	require.True(t, c.Pending())
	require.Equal(t, "Delete version 1.0.0?", c.Prompt())

	subject, ok := c.Confirmed()
	require.True(t, ok)
	require.Equal(t, "v1", subject.ID)
	require.False(t, c.Pending())
}

func TestConfirm_CancelledResolvesWithoutSubject(t *testing.T) {
	var c Confirm[rec]
	c.Ask(rec{ID: "v1"}, "Sure?")

	c.Cancelled()

	require.False(t, c.Pending())
	_, ok := c.Confirmed()
	require.False(t, ok)
}

func TestConfirm_SecondAskReplacesFirst(t *testing.T) {
	var c Confirm[rec]
	c.Ask(rec{ID: "first"}, "a")
	c.Ask(rec{ID: "second"}, "b")

	subject, ok := c.Confirmed()
	require.True(t, ok)
	require.Equal(t, "second", subject.ID)
}
