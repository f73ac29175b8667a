package viewstate

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type rec struct {
	ID   string
	Name string
}

func TestListStore_CreateInsertsAtFrontWithoutReload(t *testing.T) {
	var s ListStore[rec]
	seq := s.BeginLoad()
	require.True(t, s.ApplyLoad(seq, []rec{{ID: "g1", Name: "Mug"}, {ID: "g2", Name: "Socks"}}))

	s.InsertFront(rec{ID: "g3", Name: "Candle"})

	require.Equal(t, 3, s.Len())
	require.Equal(t, "Candle", s.Records()[0].Name)
	require.Equal(t, "Mug", s.Records()[1].Name)
}

func TestListStore_StaleLoadResponseIsDiscarded(t *testing.T) {
	var s ListStore[rec]

	first := s.BeginLoad()
	second := s.BeginLoad()

	// The second (newer) request resolves first.
	require.True(t, s.ApplyLoad(second, []rec{{ID: "new"}}))
	// The older response arrives late and must not overwrite the display.
	require.False(t, s.ApplyLoad(first, []rec{{ID: "old"}}))

	require.Equal(t, 1, s.Len())
	require.Equal(t, "new", s.Records()[0].ID)
	require.False(t, s.Loading())
}

func TestListStore_LoadingTracksInFlightCount(t *testing.T) {
	var s ListStore[rec]
	require.False(t, s.Loading())

	a := s.BeginLoad()
	b := s.BeginLoad()
	require.True(t, s.Loading())

	s.AbortLoad(a)
	require.True(t, s.Loading())
	s.ApplyLoad(b, nil)
	require.False(t, s.Loading())
}

func TestListStore_RemoveWhere(t *testing.T) {
	var s ListStore[rec]
	s.ReplaceAll([]rec{{ID: "a"}, {ID: "b"}, {ID: "c"}})

	removed := s.RemoveWhere(func(r rec) bool { return r.ID == "b" })

	require.Equal(t, 1, removed)
	require.Equal(t, 2, s.Len())
	require.Equal(t, "a", s.Records()[0].ID)
	require.Equal(t, "c", s.Records()[1].ID)
}

func TestListStore_PatchUpdatesFirstMatch(t *testing.T) {
	var s ListStore[rec]
	s.ReplaceAll([]rec{{ID: "a", Name: "old"}, {ID: "b"}})

	ok := s.Patch(
		func(r rec) bool { return r.ID == "a" },
		func(r *rec) { r.Name = "new" },
	)

	require.True(t, ok)
	require.Equal(t, "new", s.Records()[0].Name)

	require.False(t, s.Patch(func(r rec) bool { return r.ID == "zz" }, func(r *rec) {}))
}

func TestListStore_LoadedOnlyAfterFirstApply(t *testing.T) {
	var s ListStore[rec]
	require.False(t, s.Loaded())

	seq := s.BeginLoad()
	require.False(t, s.Loaded())
	s.ApplyLoad(seq, nil)
	require.True(t, s.Loaded())
}
