package circle

import (
	"github.com/katalvlaran/kleinian/algebra"
)

// Circle is a circle of the complex plane in inversive coordinates: a
// Hermitian coefficient matrix H, normalized by constructors so that
// −det(H) = 1. The zero value is not a valid circle; obtain one from
// ForTransforms or by transforming an existing circle.
type Circle struct {
	H algebra.Mat2
}

// RadiusInv returns the reciprocal of the radius, |Re(H.A)|.
// A zero result means the circle is a straight line.
func (c Circle) RadiusInv() float64 {
	re := real(c.H.A)
	if re < 0 {
		return -re
	}

	return re
}

// Radius returns 1 / RadiusInv. For a line the result is +Inf.
func (c Circle) Radius() float64 {
	return 1 / c.RadiusInv()
}

// Center returns the center point −H.B / Re(H.A).
// For a line (Re(H.A) == 0) the result is unbounded.
func (c Circle) Center() complex128 {
	return -c.H.B / complex(real(c.H.A), 0)
}

// Transform returns the image of c under the Möbius transformation m.
// Coefficient matrices transform contravariantly:
//
//	H ↦ m⁻¹† · H · m⁻¹
//
// so c.Transform(m.Mul(n)) equals c.Transform(n).Transform(m).
// m must be unimodular; Transform relies on the adjugate inverse.
func (c Circle) Transform(m algebra.Mat2) Circle {
	return Circle{H: m.InverseDagger().Mul(c.H).Mul(m.Inverse())}
}
