package group

import (
	"fmt"
	"math/cmplx"

	"github.com/katalvlaran/kleinian/algebra"
)

// XX builds a generator quadruple in which the words a·b·a·b⁻¹ and its
// cyclic rotations are parabolic, from the traces ta of a and tb of b.
//
// a is written directly from its half-trace; the off-diagonal entries of b
// come from b1 = sqrt(c0 + c1) with
//
//	c0 = (ta²/4 − 1)·(tb²/4 + 1) + 2
//	c1 = ta·sqrt((ta²/4 − 1)·tb²/4 + 1)
//
// Returns ErrSingularParameters when a trace is non-finite or b1 vanishes
// (for example ta = 0, tb = 2).
func XX(ta, tb complex128) (Quad, error) {
	if !finiteC(ta) || !finiteC(tb) {
		return Quad{}, fmt.Errorf("%w: non-finite trace (ta=%v, tb=%v)", ErrSingularParameters, ta, tb)
	}

	hta := 0.5 * ta
	htb := 0.5 * tb
	hta21 := hta*hta - 1
	htb2 := htb * htb

	c0 := hta21*(htb2+1) + 2
	c1 := ta * cmplx.Sqrt(hta21*htb2+1)
	b1 := cmplx.Sqrt(c0 + c1)
	if b1 == 0 {
		return Quad{}, fmt.Errorf("%w: b1 vanishes (ta=%v, tb=%v)", ErrSingularParameters, ta, tb)
	}

	// Unimodular by construction: det(a) = hta² − (hta²−1), det(b) = htb² − (htb²−1).
	a := algebra.Mat2{A: hta, B: hta21, C: 1, D: hta}
	b := algebra.Mat2{A: htb, B: b1, C: (htb2 - 1) / b1, D: htb}
	ai := a.Inverse()
	bi := b.Inverse()

	k1 := bi.Mul(ai).Mul(b).Mul(ai)
	k2 := a.Mul(b).Mul(a).Mul(bi)
	k3 := b.Mul(a).Mul(bi).Mul(a)
	k4 := ai.Mul(bi).Mul(ai).Mul(b)

	return assemble(
		[4]algebra.Mat2{a, b, ai, bi},
		[4]algebra.Mat2{k1, k2, k3, k4},
	)
}
