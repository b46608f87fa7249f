// Package algebra provides the 2×2 complex matrix arithmetic underlying
// Möbius transformations of the Riemann sphere.
//
// Overview:
//
//   - Mat2 is a plain value type holding four complex128 entries in row-major
//     order (A B / C D). All operations return new values; nothing mutates.
//   - The matrices of interest are unimodular (det = 1), so Inverse uses the
//     adjugate directly and never divides by the determinant.
//   - Dagger is the conjugate transpose; InverseDagger fuses Inverse and
//     Dagger into a single entry shuffle. Both appear on the hot path of the
//     circle action C ↦ M⁻¹† · H · M⁻¹ and are kept allocation-free.
//
// Conventions:
//
//   - A Mat2 {A, B, C, D} acts on the sphere as z ↦ (A·z + B) / (C·z + D).
//   - Composition reads right to left: Mul(m, n) applies n first, then m.
//
// All operations are O(1) time and space. Mat2 values are safe to copy and
// share between goroutines; there is no interior mutability.
package algebra
