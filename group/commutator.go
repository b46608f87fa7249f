package group

import (
	"fmt"
	"math/cmplx"

	"github.com/katalvlaran/kleinian/algebra"
)

// Commutator builds a generator quadruple whose commutator a·b·a⁻¹·b⁻¹ has
// trace −2, from the traces ta of a and tb of b (Grandma's recipe).
//
// Derivation, in order:
//
//  1. Solve x² − ta·tb·x + (ta² + tb²) = 0 for the trace of a·b, taking the
//     branch with the principal square root subtracted.
//  2. Fix the normalization point z0 = (tab − 2)·tb / (tb·tab − 2·ta + 2i·tab).
//  3. Write b and a·b explicitly and recover a = (a·b)·b⁻¹.
//  4. The four cyclic rotations of the commutator word are the parabolic
//     witnesses; adjacent pairs span the seed circles.
//
// ta = tb = 2 yields the Apollonian gasket. Returns ErrSingularParameters
// when a trace is non-finite or the z0 denominator or z0 itself vanishes.
func Commutator(ta, tb complex128) (Quad, error) {
	if !finiteC(ta) || !finiteC(tb) {
		return Quad{}, fmt.Errorf("%w: non-finite trace (ta=%v, tb=%v)", ErrSingularParameters, ta, tb)
	}

	// 1) Trace of the product word a·b.
	c0 := ta*ta + tb*tb
	c1 := ta * tb
	tab := 0.5 * (c1 - cmplx.Sqrt(c1*c1-4*c0))

	// 2) Normalization point. Both the denominator and z0 must be nonzero:
	//    z0 multiplies one off-diagonal entry of a·b and divides the other.
	denom := tb*tab - 2*ta + 2i*tab
	if denom == 0 {
		return Quad{}, fmt.Errorf("%w: z0 denominator vanishes (ta=%v, tb=%v)", ErrSingularParameters, ta, tb)
	}
	z0 := (tab - 2) * tb / denom
	if z0 == 0 {
		return Quad{}, fmt.Errorf("%w: z0 vanishes (ta=%v, tb=%v)", ErrSingularParameters, ta, tb)
	}

	// 3) Explicit b and a·b, then a. Both are unimodular by construction.
	htb := 0.5 * tb
	htab := 0.5 * tab
	b := algebra.Mat2{A: htb - 1i, B: htb, C: htb, D: htb + 1i}
	ab := algebra.Mat2{A: htab, B: (htab - 1) / z0, C: (htab + 1) * z0, D: htab}
	a := ab.Mul(b.Inverse())
	ai := a.Inverse()
	bi := b.Inverse()

	// 4) Cyclic rotations of the commutator word.
	k1 := bi.Mul(a).Mul(b).Mul(ai)
	k2 := a.Mul(b).Mul(ai).Mul(bi)
	k3 := b.Mul(ai).Mul(bi).Mul(a)
	k4 := ai.Mul(bi).Mul(a).Mul(b)

	return assemble(
		[4]algebra.Mat2{a, b, ai, bi},
		[4]algebra.Mat2{k1, k2, k3, k4},
	)
}
