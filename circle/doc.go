// Package circle represents circles of the complex plane in inversive
// coordinates and implements the Möbius group action on them.
//
// Overview:
//
//   - A Circle is a Hermitian 2×2 coefficient matrix H. The locus is the set
//     of points z satisfying the quadratic form
//
//     (z̄ 1) · H · (z 1)ᵀ = 0
//
//     which expands to Re(H.A)·|z|² + H.B·z̄ + conj(H.B)·z + Re(H.D) = 0.
//   - Construction normalizes H so that −det(H) = 1. Under that normalization
//     |Re(H.A)| is exactly the reciprocal radius and −H.B / Re(H.A) the center.
//   - A Möbius transformation m acts on coefficient matrices contravariantly:
//     H ↦ m⁻¹† · H · m⁻¹. Transform implements this action; composition
//     therefore reads c.Transform(m.Mul(n)) == c.Transform(n).Transform(m).
//
// The one nontrivial constructor, ForTransforms, produces the circle fixed
// setwise by two parabolic transformations: it passes through both of their
// fixed points. It is the geometric seed of a limit-set traversal; each group
// generator gets the circle spanned by a conjugate pair of parabolic words.
//
// Errors (sentinel):
//
//   - ErrDegenerateTransform: one of the inputs to ForTransforms has a zero
//     traceless part (it is a multiple of the identity), or the resulting
//     coefficient matrix cannot be normalized.
//
// A transform fixing the point at infinity yields Re(H.A) == 0: the "circle"
// is a straight line, RadiusInv reports 0 and Center is unbounded. This is a
// legal value, not an error; seed circles of real trace parameters routinely
// come out as lines. Consumers key on RadiusInv == 0, and in a largest-first
// refinement a line outranks every proper circle.
//
// All operations are O(1). Circle is a value type and safe to copy.
package circle
