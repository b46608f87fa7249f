package limitset

import "github.com/katalvlaran/kleinian/algebra"

// wordItem is one frontier element: a freely reduced word split as
// prefix·letter, stored with the priority that orders the heap.
type wordItem struct {
	matrix   algebra.Mat2 // product of all letters before the final one
	last     int          // Quad index of the final letter
	priority float64      // negated inverse radius of the word's circle
}

// wordPQ is a max-heap of *wordItem ordered by priority descending.
// Priority is −RadiusInv, so the word whose circle is largest pops first;
// a line (RadiusInv 0) outranks every proper circle.
type wordPQ []*wordItem

// Len returns the number of items in the heap.
func (pq wordPQ) Len() int { return len(pq) }

// Less defines the comparison: larger priority → popped earlier.
func (pq wordPQ) Less(i, j int) bool { return pq[i].priority > pq[j].priority }

// Swap swaps two elements in the heap.
func (pq wordPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type *wordItem.
func (pq *wordPQ) Push(x interface{}) { *pq = append(*pq, x.(*wordItem)) }

// Pop removes and returns the highest-priority element.
// Called by heap.Pop; returns interface{} that must be cast to *wordItem.
func (pq *wordPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	it := old[n-1]
	*pq = old[:n-1]

	return it
}
