// Package group constructs two-generator Kleinian groups from trace
// parameters.
//
// Overview:
//
//   - A group is represented by a Quad: the four unimodular matrices
//     a, b, a⁻¹, b⁻¹ in that fixed order, each paired with a seed circle.
//   - Three construction schemes are provided, differing in which traces
//     parameterize the group and which words are forced to be parabolic:
//
//     Commutator: traces of a and b are free; the commutator word
//     a·b·a⁻¹·b⁻¹ has trace −2 (Grandma's recipe). The classic
//     ta = tb = 2 instance is the Apollonian gasket.
//     XX: traces of a and b are free; the words a·b·a·b⁻¹ and its
//     rotations are parabolic.
//     X: single trace parameter; the short words b⁻¹·a⁻¹, a·b⁻¹, b·a,
//     a⁻¹·b are parabolic.
//
//   - Each scheme derives four parabolic witness words k1..k4 and seeds
//     generator i with the circle through the fixed points of kᵢ and kᵢ₊₁
//     (indices cyclic). Those circles are what a limit-set traversal ranks
//     and refines.
//
// Index conventions:
//
//   - Quad order is a, b, a⁻¹, b⁻¹. Inverse(i) = (i+2) mod 4 maps a
//     generator index to the index of its algebraic inverse.
//
// Errors (sentinel):
//
//   - ErrSingularParameters: a trace parameter is non-finite, or an
//     intermediate value divides by zero, or a derived generator overflows.
//   - ErrUnknownScheme: Build received a Scheme outside the defined set.
//   - circle.ErrDegenerateTransform surfaces (wrapped with the seed index)
//     when a witness word degenerates, for example X with trace exactly 2,
//     where b == a⁻¹ and the witnesses collapse to the identity.
//
// Determinism: all constructions are closed-form; the same traces always
// produce the same Quad, bit for bit.
package group
