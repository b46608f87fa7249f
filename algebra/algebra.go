package algebra

import "math/cmplx"

// Mat2 is a 2×2 complex matrix in row-major order:
//
//	| A  B |
//	| C  D |
//
// It represents the Möbius transformation z ↦ (A·z + B) / (C·z + D).
// Mat2 is a value type: all methods return fresh values and never mutate.
type Mat2 struct {
	A, B, C, D complex128
}

// Identity returns the 2×2 identity matrix.
func Identity() Mat2 {
	return Mat2{A: 1, D: 1}
}

// Mul returns the matrix product m·n (apply n first, then m).
// Complexity: O(1), 8 multiplications.
func (m Mat2) Mul(n Mat2) Mat2 {
	return Mat2{
		A: m.A*n.A + m.B*n.C,
		B: m.A*n.B + m.B*n.D,
		C: m.C*n.A + m.D*n.C,
		D: m.C*n.B + m.D*n.D,
	}
}

// Add returns the entrywise sum m + n.
func (m Mat2) Add(n Mat2) Mat2 {
	return Mat2{
		A: m.A + n.A,
		B: m.B + n.B,
		C: m.C + n.C,
		D: m.D + n.D,
	}
}

// Sub returns the entrywise difference m − n.
func (m Mat2) Sub(n Mat2) Mat2 {
	return Mat2{
		A: m.A - n.A,
		B: m.B - n.B,
		C: m.C - n.C,
		D: m.D - n.D,
	}
}

// Scale returns m with every entry multiplied by s.
func (m Mat2) Scale(s complex128) Mat2 {
	return Mat2{
		A: s * m.A,
		B: s * m.B,
		C: s * m.C,
		D: s * m.D,
	}
}

// Trace returns the sum of the diagonal entries, A + D.
func (m Mat2) Trace() complex128 {
	return m.A + m.D
}

// Det returns the determinant A·D − B·C.
func (m Mat2) Det() complex128 {
	return m.A*m.D - m.B*m.C
}

// Inverse returns the adjugate of m:
//
//	|  D  −B |
//	| −C   A |
//
// For unimodular matrices (det = 1) the adjugate IS the inverse, so no
// division by the determinant is performed. Callers holding a matrix with
// det ≠ 1 must divide by Det themselves.
func (m Mat2) Inverse() Mat2 {
	return Mat2{
		A: m.D,
		B: -m.B,
		C: -m.C,
		D: m.A,
	}
}

// Dagger returns the conjugate transpose of m.
func (m Mat2) Dagger() Mat2 {
	return Mat2{
		A: cmplx.Conj(m.A),
		B: cmplx.Conj(m.C),
		C: cmplx.Conj(m.B),
		D: cmplx.Conj(m.D),
	}
}

// InverseDagger returns the conjugate transpose of the adjugate in one step.
// Equivalent to m.Inverse().Dagger(), without the intermediate value.
// Carries the same unimodularity caveat as Inverse.
func (m Mat2) InverseDagger() Mat2 {
	return Mat2{
		A: cmplx.Conj(m.D),
		B: -cmplx.Conj(m.C),
		C: -cmplx.Conj(m.B),
		D: cmplx.Conj(m.A),
	}
}
