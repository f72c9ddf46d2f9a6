// Package pqueue provides a generic binary min-heap used as the frontier
// structure by the shortest-path searches.
//
// The queue intentionally offers no decrease-key and no arbitrary
// removal. Callers follow the lazy-deletion pattern instead: when a
// better priority for an item is discovered, push a fresh entry and skip
// the stale one at Pop time via an external "already settled" marker.
// This keeps every operation at O(log n) on a plain slice, at the cost of
// up to one heap entry per relaxation.
//
// Ordering among entries with equal priority is whatever the heap shape
// happens to produce; it is deterministic for a fixed push/pop sequence
// but not otherwise specified.
package pqueue

import "golang.org/x/exp/constraints"

// entry pairs an item with the priority it was pushed under.
type entry[T any, P constraints.Ordered] struct {
	item     T
	priority P
}

// Queue is a binary min-heap of items of type T keyed by priorities of
// ordered type P. The zero value is not ready for use; call New.
type Queue[T any, P constraints.Ordered] struct {
	entries []entry[T, P]
}

// New returns an empty queue with room for capacity entries.
func New[T any, P constraints.Ordered](capacity int) *Queue[T, P] {
	return &Queue[T, P]{entries: make([]entry[T, P], 0, capacity)}
}

// Len reports the number of entries currently held, stale ones included.
func (q *Queue[T, P]) Len() int { return len(q.entries) }

// Push inserts item under the given priority. O(log n).
func (q *Queue[T, P]) Push(item T, priority P) {
	q.entries = append(q.entries, entry[T, P]{item: item, priority: priority})
	q.siftUp(len(q.entries) - 1)
}

// Pop removes and returns the entry with the smallest priority. The
// third result is false when the queue is empty. O(log n).
func (q *Queue[T, P]) Pop() (item T, priority P, ok bool) {
	if len(q.entries) == 0 {
		return item, priority, false
	}

	root := q.entries[0]
	last := len(q.entries) - 1
	q.entries[0] = q.entries[last]
	// Clear the vacated slot so the backing array does not pin items.
	q.entries[last] = entry[T, P]{}
	q.entries = q.entries[:last]
	if last > 0 {
		q.siftDown(0)
	}

	return root.item, root.priority, true
}

// siftUp restores the heap invariant upward from index i.
func (q *Queue[T, P]) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if q.entries[parent].priority <= q.entries[i].priority {
			break
		}
		q.entries[i], q.entries[parent] = q.entries[parent], q.entries[i]
		i = parent
	}
}

// siftDown restores the heap invariant downward from index i.
func (q *Queue[T, P]) siftDown(i int) {
	n := len(q.entries)
	for {
		left := 2*i + 1
		if left >= n {
			return
		}
		smallest := left
		if right := left + 1; right < n && q.entries[right].priority < q.entries[left].priority {
			smallest = right
		}
		if q.entries[i].priority <= q.entries[smallest].priority {
			return
		}
		q.entries[i], q.entries[smallest] = q.entries[smallest], q.entries[i]
		i = smallest
	}
}
