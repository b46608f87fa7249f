package limitset

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/kleinian/algebra"
	"github.com/katalvlaran/kleinian/group"
)

// Frontier is the mutable state of one limit-set traversal: a max-heap of
// freely reduced words ordered by the size of their circles.
//
// A Frontier is single-use. Seed it with NewFrontier, grow it with Advance,
// then drain it with Points.
type Frontier struct {
	gens group.Quad // the four generators and their seed circles; read-only
	opts Options    // resolved configuration
	pq   wordPQ     // max-heap of words pending expansion
}

// NewFrontier seeds a traversal over the given generators with the four
// one-letter words. A nil opts is equivalent to DefaultOptions().
//
// Returns ErrInvalidPriority if any seed circle yields a NaN priority,
// which happens when the Quad carries non-finite matrices or circles.
func NewFrontier(gens group.Quad, opts *Options) (*Frontier, error) {
	// 1) Resolve options: nil means defaults, a nil hook means no-op.
	cfg := DefaultOptions()
	if opts != nil {
		cfg = *opts
		if cfg.OnAdvance == nil {
			cfg.OnAdvance = func(int, int) {}
		}
	}

	// 2) Allocate the frontier and its heap.
	f := &Frontier{
		gens: gens,
		opts: cfg,
		pq:   make(wordPQ, 0, 4),
	}
	heap.Init(&f.pq)

	// 3) Seed one word per generator: the empty prefix ending in letter i.
	id := algebra.Identity()
	for i := range gens {
		it, err := f.newItem(id, i)
		if err != nil {
			return nil, err
		}
		heap.Push(&f.pq, it)
	}

	return f, nil
}

// newItem builds the heap entry for the word prefix·gens[last]. Its priority
// is the negated inverse radius of the circle the word carries the final
// letter's seed to, so larger circles sort first.
func (f *Frontier) newItem(prefix algebra.Mat2, last int) (*wordItem, error) {
	p := -f.gens[last].Circle.Transform(prefix).RadiusInv()
	if math.IsNaN(p) {
		return nil, fmt.Errorf("%w: word ending in generator %d", ErrInvalidPriority, last)
	}

	return &wordItem{matrix: prefix, last: last, priority: p}, nil
}

// Advance pops the word whose circle is largest, folds its final letter into
// the prefix matrix, and pushes the three one-letter extensions that keep
// the word freely reduced. The excluded extension is the algebraic inverse
// of the letter just folded: appending it would cancel and revisit the
// parent word. Net frontier growth is exactly two words per call.
//
// Returns ErrEmptyFrontier once Points has drained the heap, and
// ErrInvalidPriority if a child circle degenerates to NaN.
func (f *Frontier) Advance() error {
	// 1) A drained frontier has nothing left to expand.
	if f.pq.Len() == 0 {
		return ErrEmptyFrontier
	}

	// 2) Pop the best word and fold its final letter into the prefix.
	it := heap.Pop(&f.pq).(*wordItem)
	m := it.matrix.Mul(f.gens[it.last].Matrix)

	// 3) Push the successors last+3, last+4, last+5 (mod 4): every letter
	//    except the inverse (last+2) mod 4.
	var next int
	for j := 3; j <= 5; j++ {
		next = (it.last + j) % 4
		child, err := f.newItem(m, next)
		if err != nil {
			return err
		}
		f.opts.OnAdvance(it.last, next)
		heap.Push(&f.pq, child)
	}

	return nil
}

// Len reports the number of words currently on the frontier.
func (f *Frontier) Len() int { return f.pq.Len() }

// Points drains the frontier in priority order and maps every word to the
// center of its circle. The frontier is spent afterwards: Len reports zero
// and further Advance calls return ErrEmptyFrontier.
func (f *Frontier) Points() []complex128 {
	pts := make([]complex128, 0, f.pq.Len())
	var it *wordItem
	for f.pq.Len() > 0 {
		it = heap.Pop(&f.pq).(*wordItem)
		pts = append(pts, f.gens[it.last].Circle.Transform(it.matrix).Center())
	}

	return pts
}

// Generate samples at least n limit-set points from the given generators.
//
// The traversal seeds four one-letter words and always refines the word
// whose circle is largest, until the frontier holds n or more words; it
// then drains every word to the center of its circle. Each refinement
// removes one word and adds three, so the result length is the smallest
// number of the form 4+2k that reaches n.
//
// Returns:
//
//   - pts: the sampled centers, largest circle first.
//   - err: ErrBadCount if n < 1, or ErrInvalidPriority if the generators
//     degenerate mid-traversal.
//
// Complexity:
//
//   - Time:  O(n log n); each Advance costs O(log n) heap work.
//   - Space: O(n) for the frontier.
func Generate(gens group.Quad, n int, opts *Options) ([]complex128, error) {
	// 1) Validate the budget.
	if n < 1 {
		return nil, fmt.Errorf("%w: n=%d", ErrBadCount, n)
	}

	// 2) Seed the frontier with the four one-letter words.
	f, err := NewFrontier(gens, opts)
	if err != nil {
		return nil, err
	}

	// 3) Refine the largest circle until the budget is covered.
	for f.Len() < n {
		if err = f.Advance(); err != nil {
			return nil, err
		}
	}

	// 4) Drain every pending word to its circle center.
	return f.Points(), nil
}

// FromTraces builds the commutator-scheme group for the trace pair (ta, tb)
// and samples n limit-set points from it with default options. It is the
// shortest path from two complex numbers to a point cloud.
func FromTraces(ta, tb complex128, n int) ([]complex128, error) {
	q, err := group.Commutator(ta, tb)
	if err != nil {
		return nil, fmt.Errorf("limitset: building commutator group: %w", err)
	}

	return Generate(q, n, nil)
}
