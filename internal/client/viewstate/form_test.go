package viewstate

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type draft struct {
	Title    string
	Priority int
}

func TestForm_CancelIsIdempotentAndResetsFields(t *testing.T) {
	var f Form[draft]

	f.OpenBlank(draft{Priority: 0})
	f.Draft().Title = "half-typed"
	require.True(t, f.Cancel())

	// Next open must start from defaults again, not the abandoned draft.
	f.OpenBlank(draft{Priority: 0})
	require.Equal(t, draft{Priority: 0}, *f.Draft())
	require.Empty(t, f.Err())
}

func TestForm_EditPrefillsVerbatim(t *testing.T) {
	var f Form[draft]
	record := draft{Title: "Cramps relief", Priority: 3}

	f.OpenEdit(record)

	require.True(t, f.Editing())
	require.Equal(t, record, *f.Draft())
}

func TestForm_SubmitGuardsReentry(t *testing.T) {
	var f Form[draft]
	f.OpenBlank(draft{})

	require.True(t, f.Submit())
	require.True(t, f.Submitting())
	// No second submission can be issued while one is in flight.
	require.False(t, f.Submit())
}

func TestForm_SubmitRequiresOpenForm(t *testing.T) {
	var f Form[draft]
	require.False(t, f.Submit())
}

func TestForm_FailureKeepsDraftAndShowsError(t *testing.T) {
	var f Form[draft]
	f.OpenBlank(draft{})
	f.Draft().Title = "entered text"
	require.True(t, f.Submit())

	f.Fail("Duplicate version")

	require.Equal(t, FormOpen, f.State())
	require.Equal(t, "entered text", f.Draft().Title)
	require.Equal(t, "Duplicate version", f.Err())

	// Retrying clears the shown error.
	require.True(t, f.Submit())
	require.Empty(t, f.Err())
}

func TestForm_SuccessClosesAndClears(t *testing.T) {
	var f Form[draft]
	f.OpenEdit(draft{Title: "x"})
	require.True(t, f.Submit())

	f.Succeed()

	require.Equal(t, FormClosed, f.State())
	require.False(t, f.Visible())
	require.False(t, f.Editing())
	require.Equal(t, draft{}, *f.Draft())
}

func TestForm_CannotCancelWhileSubmitting(t *testing.T) {
	var f Form[draft]
	f.OpenBlank(draft{})
	require.True(t, f.Submit())

	require.False(t, f.Cancel())
	require.True(t, f.Submitting())
}

func TestForm_OpenIgnoredWhileSubmitting(t *testing.T) {
	var f Form[draft]
	f.OpenBlank(draft{})
	f.Draft().Title = "pending"
	require.True(t, f.Submit())

	f.OpenBlank(draft{})
	f.OpenEdit(draft{Title: "other"})

	require.True(t, f.Submitting())
	require.Equal(t, "pending", f.Draft().Title)
}
