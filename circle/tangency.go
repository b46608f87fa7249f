package circle

import (
	"errors"
	"fmt"
	"math/cmplx"

	"github.com/katalvlaran/kleinian/algebra"
)

// ErrDegenerateTransform indicates that a transform handed to ForTransforms
// is a scalar multiple of the identity, or that the resulting coefficient
// matrix could not be normalized to −det = 1.
var ErrDegenerateTransform = errors.New("circle: degenerate transform")

// ForTransforms constructs the circle passing through the fixed points of
// the parabolic transformations u and v.
//
// Each input is reduced to its traceless part n = m − (tr(m)/2)·I, which for
// a parabolic m is nilpotent and factors as an outer product of two vectors.
// The representative row vectors of u and v are combined into a rank-one
// matrix, symmetrized into a Hermitian form, and normalized to −det = 1.
//
// Returns ErrDegenerateTransform if either traceless part is zero (u or v is
// a multiple of the identity) or if the symmetrized form has zero or
// non-finite normalizer.
//
// Complexity: O(1).
func ForTransforms(u, v algebra.Mat2) (Circle, error) {
	// 1) Extract representative row vectors of the nilpotent parts.
	uv, err := nilpotentRow(traceless(u))
	if err != nil {
		return Circle{}, fmt.Errorf("%w: first transform: %w", ErrDegenerateTransform, err)
	}
	vv, err := nilpotentRow(traceless(v))
	if err != nil {
		return Circle{}, fmt.Errorf("%w: second transform: %w", ErrDegenerateTransform, err)
	}

	// 2) Rank-one pairing m[i][j] = conj(vv[i]) · uv[j].
	m := algebra.Mat2{
		A: cmplx.Conj(vv[0]) * uv[0],
		B: cmplx.Conj(vv[0]) * uv[1],
		C: cmplx.Conj(vv[1]) * uv[0],
		D: cmplx.Conj(vv[1]) * uv[1],
	}

	// 3) Symmetrize into a Hermitian form and normalize to −det = 1.
	mh := m.Add(m.Dagger())
	norm := cmplx.Sqrt(-mh.Det())
	if norm == 0 || cmplx.IsNaN(norm) || cmplx.IsInf(norm) {
		return Circle{}, fmt.Errorf("%w: unnormalizable form (norm=%v)", ErrDegenerateTransform, norm)
	}

	return Circle{H: mh.Scale(1 / norm)}, nil
}

// traceless returns m − (tr(m)/2)·I. For parabolic m (tr = ±2) the result
// is nilpotent: zero trace and zero determinant.
func traceless(m algebra.Mat2) algebra.Mat2 {
	return m.Sub(algebra.Identity().Scale(0.5 * m.Trace()))
}

// nilpotentRow factors the nilpotent matrix n as ±(column)·(row) and returns
// the row vector. The pivot is the off-diagonal entry of larger magnitude,
// keeping the square root away from cancellation.
func nilpotentRow(n algebra.Mat2) ([2]complex128, error) {
	if normSq(n.B) >= normSq(n.C) {
		s := cmplx.Sqrt(-n.B)
		if s == 0 {
			return [2]complex128{}, errors.New("zero traceless part")
		}

		return [2]complex128{n.A / s, -s}, nil
	}

	s := cmplx.Sqrt(n.C)
	if s == 0 {
		return [2]complex128{}, errors.New("zero traceless part")
	}

	return [2]complex128{s, n.D / s}, nil
}

// normSq is |z|² without the square root.
func normSq(z complex128) float64 {
	return real(z)*real(z) + imag(z)*imag(z)
}
