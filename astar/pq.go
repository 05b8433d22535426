// SPDX-License-Identifier: MIT
package astar

import "github.com/katalvlaran/gridpath/grid"

// openEntry is one open-set record. Entries are never updated in place:
// a cell is pushed once per stay in the open set, with the f-score it had
// at push time.
type openEntry struct {
	cell *grid.Cell
	f    int    // f-score at push time
	seq  uint64 // insertion sequence, strictly increasing per search
}

// openQueue is a min-heap of *openEntry ordered by (f, seq) lexicographically.
// seq makes the order total: among equal f-scores the earliest insertion
// wins, so expansion order is reproducible.
type openQueue []*openEntry

// Len returns the number of items in the heap.
func (q openQueue) Len() int { return len(q) }

// Less orders by f, then by insertion sequence.
func (q openQueue) Less(i, j int) bool {
	if q[i].f != q[j].f {
		return q[i].f < q[j].f
	}
	return q[i].seq < q[j].seq
}

// Swap swaps two elements in the heap.
func (q openQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

// Push adds x onto the heap. Called by heap.Push; x must be *openEntry.
func (q *openQueue) Push(x interface{}) { *q = append(*q, x.(*openEntry)) }

// Pop removes and returns the last element. Called by heap.Pop.
func (q *openQueue) Pop() interface{} {
	old := *q
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]

	return item
}
