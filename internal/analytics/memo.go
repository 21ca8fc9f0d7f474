package analytics

import (
	"sync"
	"time"

	"github.com/salespulse/salespulse/internal/sales"
)

// Memo caches the last computed snapshot keyed on the identity of the sale
// collection. It is the in-process companion to the Redis-backed Service
// cache, meant for callers that fetch the collection once and recompute
// KPIs repeatedly over it within a single render cycle, such as a report
// builder composing several views from one listing. A call with an
// unchanged collection must not re-scan. Identity means the same backing
// array and length, so appends and replacements both miss.
type Memo struct {
	mu       sync.Mutex
	computed bool
	head     *sales.Sale
	length   int
	snap     KPISnapshot
}

// Snapshot returns the memoized snapshot, recomputing only when list's
// identity differs from the previous call.
func (m *Memo) Snapshot(list []sales.Sale, now time.Time, loc *time.Location) KPISnapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	var head *sales.Sale
	if len(list) > 0 {
		head = &list[0]
	}
	if m.computed && m.length == len(list) && m.head == head {
		return m.snap
	}

	m.snap = Compute(list, now, loc)
	m.head = head
	m.length = len(list)
	m.computed = true
	return m.snap
}

// Reset forgets the cached snapshot, forcing the next call to recompute.
func (m *Memo) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.computed = false
	m.head = nil
	m.length = 0
}
