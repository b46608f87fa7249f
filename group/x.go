package group

import (
	"fmt"

	"github.com/katalvlaran/kleinian/algebra"
)

// X builds a generator quadruple from a single trace parameter ta. The
// half-traces of a and b are reciprocal (ah·bh = 1), which makes all four
// length-two words b⁻¹·a⁻¹, a·b⁻¹, b·a, a⁻¹·b parabolic.
//
// Returns ErrSingularParameters for ta = 0 or a non-finite ta. Note that
// ta = 2 is structurally singular one level up: there b equals a⁻¹, the
// witness words collapse to the identity, and the seed circles come back as
// circle.ErrDegenerateTransform.
func X(ta complex128) (Quad, error) {
	if !finiteC(ta) {
		return Quad{}, fmt.Errorf("%w: non-finite trace (ta=%v)", ErrSingularParameters, ta)
	}

	ah := 0.5 * ta
	if ah == 0 {
		return Quad{}, fmt.Errorf("%w: zero trace (ta=%v)", ErrSingularParameters, ta)
	}
	bh := 1 / ah

	// det(a) = ah² − (ah²−1) = 1, det(b) = bh² + bh·(ah−bh) = ah·bh = 1.
	a := algebra.Mat2{A: ah, B: 1, C: ah*ah - 1, D: ah}
	b := algebra.Mat2{A: bh, B: -bh, C: ah - bh, D: bh}
	ai := a.Inverse()
	bi := b.Inverse()

	k1 := bi.Mul(ai)
	k2 := a.Mul(bi)
	k3 := b.Mul(a)
	k4 := ai.Mul(b)

	return assemble(
		[4]algebra.Mat2{a, b, ai, bi},
		[4]algebra.Mat2{k1, k2, k3, k4},
	)
}
