package agent

import "sync"

// actionRing stores the last N recorded actions.
type actionRing struct {
	mu      sync.Mutex
	size    int
	records []ActionRecord
	next    int
	full    bool
}

func newActionRing(size int) *actionRing {
	if size <= 0 {
		size = 1
	}
	return &actionRing{
		size:    size,
		records: make([]ActionRecord, size),
	}
}

func (r *actionRing) add(rec ActionRecord) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.records[r.next] = rec
	r.next++
	if r.next >= r.size {
		r.next = 0
		r.full = true
	}
}

// snapshot returns the buffered records in chronological order.
func (r *actionRing) snapshot() []ActionRecord {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.full {
		out := make([]ActionRecord, r.next)
		copy(out, r.records[:r.next])
		return out
	}

	out := make([]ActionRecord, r.size)
	copy(out, r.records[r.next:])
	copy(out[r.size-r.next:], r.records[:r.next])
	return out
}
