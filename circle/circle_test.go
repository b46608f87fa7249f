// Package circle_test contains unit tests for inversive-coordinate circles:
// center/radius extraction, the Möbius action, and tangency-circle
// construction from parabolic transform pairs.
package circle_test

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kleinian/algebra"
	"github.com/katalvlaran/kleinian/circle"
)

// newCircle builds the normalized coefficient matrix of the circle with the
// given center and radius:
//
//	| 1/r        −c/r          |
//	| −conj(c)/r (|c|²−r²)/r   |
//
// This form has −det = 1, matching what ForTransforms produces.
func newCircle(center complex128, r float64) circle.Circle {
	rc := complex(r, 0)

	return circle.Circle{H: algebra.Mat2{
		A: 1 / rc,
		B: -center / rc,
		C: -cmplx.Conj(center) / rc,
		D: (center*cmplx.Conj(center) - rc*rc) / rc,
	}}
}

// requirePointOn asserts that p lies on c, by comparing |p − center| to the
// radius.
func requirePointOn(t *testing.T, c circle.Circle, p complex128) {
	t.Helper()
	require.InDelta(t, c.Radius(), cmplx.Abs(p-c.Center()), 1e-9)
}

// TestCircle_CenterRadiusInv reads back center and reciprocal radius from
// known coefficient matrices.
func TestCircle_CenterRadiusInv(t *testing.T) {
	unit := circle.Circle{H: algebra.Mat2{A: 1, D: -1}}
	require.Equal(t, 1.0, unit.RadiusInv())
	require.Equal(t, 1.0, unit.Radius())
	require.Equal(t, complex128(0), unit.Center())

	c := newCircle(0.5, 0.5)
	require.InDelta(t, 2.0, c.RadiusInv(), 1e-12)
	require.InDelta(t, 0.5, c.Radius(), 1e-12)
	require.InDelta(t, 0.5, real(c.Center()), 1e-12)
	require.InDelta(t, 0.0, imag(c.Center()), 1e-12)

	// RadiusInv takes the magnitude: a globally negated matrix is the same circle.
	neg := circle.Circle{H: unit.H.Scale(-1)}
	require.Equal(t, 1.0, neg.RadiusInv())

	// The real line in normalized coordinates: zero diagonal, ±i off-diagonal.
	line := circle.Circle{H: algebra.Mat2{B: 1i, C: -1i}}
	require.Zero(t, line.RadiusInv())
	require.True(t, math.IsInf(line.Radius(), 1))
}

// TestCircle_Transform_Translation moves the unit circle by a translation
// matrix and expects the center to shift while the radius stays put.
func TestCircle_Transform_Translation(t *testing.T) {
	unit := circle.Circle{H: algebra.Mat2{A: 1, D: -1}}
	tr := complex(3, -2)
	shift := algebra.Mat2{A: 1, B: tr, D: 1}

	got := unit.Transform(shift)
	require.InDelta(t, 1.0, got.RadiusInv(), 1e-12)
	require.InDelta(t, real(tr), real(got.Center()), 1e-12)
	require.InDelta(t, imag(tr), imag(got.Center()), 1e-12)
}

// TestCircle_Transform_Composition checks the contravariant composition law:
// transforming by m·n equals transforming by n, then by m.
func TestCircle_Transform_Composition(t *testing.T) {
	c := newCircle(complex(1, 1), 2)
	m := algebra.Mat2{A: 2, B: 1, C: 1, D: 1}
	n := algebra.Mat2{A: 1 - 1i, B: 1, C: 1, D: 1 + 1i}

	once := c.Transform(m.Mul(n))
	twice := c.Transform(n).Transform(m)
	require.InDelta(t, once.RadiusInv(), twice.RadiusInv(), 1e-12)
	require.InDelta(t, real(once.Center()), real(twice.Center()), 1e-12)
	require.InDelta(t, imag(once.Center()), imag(twice.Center()), 1e-12)
}

// TestForTransforms_KnownPair runs the construction on a hand-worked pair.
//
// u = (1 0 / 1 1) fixes 0; conjugating by b = (2 1 / 1 1) gives a parabolic
// v fixing b(0) = 1. The circle through both fixed points has center 0.5 and
// radius 0.5. Its image under b has center 1.25 and radius 0.25, externally
// tangent to the original at the shared fixed point 1.
func TestForTransforms_KnownPair(t *testing.T) {
	u := algebra.Mat2{A: 1, C: 1, D: 1}
	b := algebra.Mat2{A: 2, B: 1, C: 1, D: 1}
	v := b.Mul(u).Mul(b.Inverse())

	c, err := circle.ForTransforms(u, v)
	require.NoError(t, err)
	require.InDelta(t, 2.0, c.RadiusInv(), 1e-12)
	require.InDelta(t, 0.5, real(c.Center()), 1e-12)
	require.InDelta(t, 0.0, imag(c.Center()), 1e-12)

	bc := c.Transform(b)
	require.InDelta(t, 4.0, bc.RadiusInv(), 1e-12)
	require.InDelta(t, 1.25, real(bc.Center()), 1e-12)

	// External tangency: center distance equals the sum of radii.
	d := cmplx.Abs(bc.Center() - c.Center())
	require.InDelta(t, c.Radius()+bc.Radius(), d, 1e-12)
}

// TestForTransforms_ThroughFixedPoints verifies, for a complex-valued pair,
// that the constructed circle passes through the fixed points of both inputs.
func TestForTransforms_ThroughFixedPoints(t *testing.T) {
	w := complex(2, 1)
	z := complex(0.5, -0.25)
	u := algebra.Mat2{A: 1, C: w, D: 1}    // parabolic fixing 0
	conj := algebra.Mat2{A: 1, B: z, D: 1} // translation by z
	v := conj.Mul(u).Mul(conj.Inverse())   // parabolic fixing z

	c, err := circle.ForTransforms(u, v)
	require.NoError(t, err)
	requirePointOn(t, c, 0)
	requirePointOn(t, c, z)
}

// TestForTransforms_Degenerate rejects inputs whose traceless part vanishes.
func TestForTransforms_Degenerate(t *testing.T) {
	u := algebra.Mat2{A: 1, C: 1, D: 1}

	_, err := circle.ForTransforms(algebra.Identity(), u)
	require.ErrorIs(t, err, circle.ErrDegenerateTransform)

	_, err = circle.ForTransforms(u, algebra.Identity().Scale(2))
	require.ErrorIs(t, err, circle.ErrDegenerateTransform)
}
