package services

import "sync/atomic"

// StoreRevision is a monotonically increasing version of the whole
// record store. Every successful mutation bumps it; derived views are
// memoized against it and recomputed in full when it moves. At this data
// scale partial invalidation is not worth having.
type StoreRevision struct {
	n atomic.Uint64
}

// NewStoreRevision creates a revision counter shared by all services.
func NewStoreRevision() *StoreRevision {
	return &StoreRevision{}
}

// Bump records that some record set changed.
func (r *StoreRevision) Bump() {
	r.n.Add(1)
}

// Current returns the current revision.
func (r *StoreRevision) Current() uint64 {
	return r.n.Load()
}
