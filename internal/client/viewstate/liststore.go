// Package viewstate implements the generic view-model building blocks the
// resource views are assembled from: an ordered list store with
// stale-response protection, a modal form lifecycle, per-record busy
// tracking, a two-step confirmation flow, lazy-loading tabs, and the
// next-month countdown. Everything here is UI-framework independent and runs
// on a single cooperative event loop, so no locking is needed.
package viewstate

// ListStore holds one view's private copy of a server collection. Loads are
// tagged with a monotonically increasing sequence number; a response whose
// sequence number is not newer than the last applied one is discarded, so
// overlapping loads can never roll the displayed collection backwards.
type ListStore[T any] struct {
	records []T

	nextSeq    uint64
	appliedSeq uint64
	inFlight   int
}

// BeginLoad registers a new load and returns its sequence number. The caller
// must pass the same number to ApplyLoad or AbortLoad when the fetch resolves.
func (s *ListStore[T]) BeginLoad() uint64 {
	s.nextSeq++
	s.inFlight++
	return s.nextSeq
}

// ApplyLoad installs a load result. It reports false — leaving the records
// untouched — when a newer result has already been applied.
func (s *ListStore[T]) ApplyLoad(seq uint64, records []T) bool {
	if s.inFlight > 0 {
		s.inFlight--
	}
	if seq <= s.appliedSeq {
		return false
	}
	s.appliedSeq = seq
	s.records = records
	return true
}

// AbortLoad records that a load finished without a usable result.
func (s *ListStore[T]) AbortLoad(seq uint64) {
	if s.inFlight > 0 {
		s.inFlight--
	}
}

// Loading reports whether any load is still in flight.
func (s *ListStore[T]) Loading() bool {
	return s.inFlight > 0
}

// Loaded reports whether at least one load has been applied.
func (s *ListStore[T]) Loaded() bool {
	return s.appliedSeq > 0
}

// Records returns the current collection. Callers must not mutate it.
func (s *ListStore[T]) Records() []T {
	return s.records
}

// Len returns the number of records currently held.
func (s *ListStore[T]) Len() int {
	return len(s.records)
}

// InsertFront prepends a freshly created record, keeping
// most-recently-created-first order without a reload.
func (s *ListStore[T]) InsertFront(record T) {
	s.records = append([]T{record}, s.records...)
}

// RemoveWhere drops every record matching the predicate and reports how many
// were removed.
func (s *ListStore[T]) RemoveWhere(match func(T) bool) int {
	kept := s.records[:0]
	removed := 0
	for _, r := range s.records {
		if match(r) {
			removed++
			continue
		}
		kept = append(kept, r)
	}
	s.records = kept
	return removed
}

// ReplaceAll swaps in a server-provided collection outside the load
// sequence, e.g. after a mutation that returns the fresh list.
func (s *ListStore[T]) ReplaceAll(records []T) {
	s.records = records
}

// Patch applies update to the first record matching the predicate and
// reports whether one was found.
func (s *ListStore[T]) Patch(match func(T) bool, update func(*T)) bool {
	for i := range s.records {
		if match(s.records[i]) {
			update(&s.records[i])
			return true
		}
	}
	return false
}
