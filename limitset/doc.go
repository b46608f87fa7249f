// Package limitset samples the limit set of a Kleinian group by best-first
// traversal of the group's Cayley graph.
//
// Overview:
//
//   - A group.Quad supplies four Möbius generators {a, b, a⁻¹, b⁻¹}, each
//     carrying a seed circle. Acting on the seeds, the group folds the
//     plane into a nest of ever-smaller circles that closes in on the
//     limit set.
//   - Every freely reduced word over the generators owns one circle of the
//     nest: the word's prefix applied to the seed circle of its final
//     letter. Longer words mean smaller circles, and the circle centers
//     converge to limit-set points.
//   - The frontier keeps the words pending expansion on a max-heap keyed
//     by circle size, so the coarsest region of the nest is always refined
//     next. Draining the frontier yields one sample per word: the center
//     of the word's circle.
//
// Traversal:
//
//   - NewFrontier seeds the four one-letter words with the identity prefix.
//   - Advance pops the word with the largest circle and extends it by the
//     three letters that keep it freely reduced; the inverse of the final
//     letter is skipped because appending it would cancel. Each call grows
//     the frontier by a net two words.
//   - Points drains the heap into circle centers, largest circle first,
//     after which the Frontier is spent.
//   - Generate wires the three together: seed, grow until Len ≥ n, drain.
//     The result length is the smallest number of the form 4+2k that
//     reaches n.
//   - FromTraces adds the commutator-scheme shortcut from a trace pair.
//
// Complexity:
//
//   - Time:  O(n log n) for n sampled points; each Advance costs one heap
//     pop and three pushes of O(log n) each.
//   - Space: O(n) frontier entries of constant size.
//
// Error handling (sentinel errors):
//
//   - ErrBadCount:        Generate called with n < 1.
//   - ErrInvalidPriority: a word produced a NaN priority, meaning the
//     generators or seed circles are degenerate. Checked at seed time and
//     on every expansion, so a poisoned value never enters the heap order.
//   - ErrEmptyFrontier:   Advance called after Points drained the frontier.
//
// Thread safety:
//
//   - A Frontier is single-goroutine state. Run concurrent traversals on
//     separate Frontier values; they share nothing.
//
// See also:
//
//   - group: generator construction for the supported relator schemes.
//   - window: fitting a sampled cloud onto an integer pixel grid.
package limitset
