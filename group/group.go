package group

import (
	"errors"
	"fmt"
	"math/cmplx"

	"github.com/katalvlaran/kleinian/algebra"
	"github.com/katalvlaran/kleinian/circle"
)

// Sentinel errors returned by the scheme constructors.
var (
	// ErrSingularParameters indicates that the requested trace parameters
	// drive the construction through a division by zero, a non-finite input,
	// or a non-finite derived generator.
	ErrSingularParameters = errors.New("group: singular trace parameters")

	// ErrUnknownScheme indicates a Scheme value outside the defined constants.
	ErrUnknownScheme = errors.New("group: unknown construction scheme")
)

// Generator pairs one group generator with its seed circle.
type Generator struct {
	// Matrix is the unimodular Möbius matrix of this generator.
	Matrix algebra.Mat2

	// Circle is the seed circle assigned to this generator: the circle
	// through the fixed points of the two adjacent parabolic witness words.
	Circle circle.Circle
}

// Quad is a complete generator set in the fixed order a, b, a⁻¹, b⁻¹.
type Quad [4]Generator

// Inverse maps a generator index to the index of its algebraic inverse:
// a ↔ a⁻¹ and b ↔ b⁻¹, i.e. (i+2) mod 4.
func Inverse(i int) int {
	return (i + 2) % 4
}

// Scheme selects one of the trace-parameter recipes.
type Scheme int

const (
	// SchemeCommutator normalizes the commutator trace to −2 (two free traces).
	SchemeCommutator Scheme = iota

	// SchemeXX makes a·b·a·b⁻¹ and its rotations parabolic (two free traces).
	SchemeXX

	// SchemeX makes the length-two words parabolic (single free trace; the
	// second trace argument of Build is ignored).
	SchemeX
)

// String returns the canonical tag of the scheme.
func (s Scheme) String() string {
	switch s {
	case SchemeXX:
		return "xxi"
	case SchemeX:
		return "xii"
	case SchemeCommutator:
		return "commutator"
	default:
		return fmt.Sprintf("Scheme(%d)", int(s))
	}
}

// ParseScheme maps a textual tag to a Scheme. "xxi" selects SchemeXX and
// "xii" selects SchemeX; every other tag, including the empty string, selects
// SchemeCommutator. Parsing is deliberately permissive so that interfaces can
// pass user input straight through.
func ParseScheme(tag string) Scheme {
	switch tag {
	case "xxi":
		return SchemeXX
	case "xii":
		return SchemeX
	default:
		return SchemeCommutator
	}
}

// Build dispatches to the scheme constructor. SchemeX uses only ta and
// ignores tb. An out-of-range Scheme yields ErrUnknownScheme.
func Build(s Scheme, ta, tb complex128) (Quad, error) {
	switch s {
	case SchemeCommutator:
		return Commutator(ta, tb)
	case SchemeXX:
		return XX(ta, tb)
	case SchemeX:
		return X(ta)
	default:
		return Quad{}, fmt.Errorf("%w: %d", ErrUnknownScheme, int(s))
	}
}

// assemble finishes a scheme: it validates the four generator matrices and
// seeds each with the circle through the fixed points of its adjacent
// witness-word pair (words[i], words[i+1 mod 4]).
func assemble(mats, words [4]algebra.Mat2) (Quad, error) {
	var i int
	for i = range mats {
		if !finiteMat(mats[i]) {
			return Quad{}, fmt.Errorf("%w: generator %d has non-finite entries", ErrSingularParameters, i)
		}
	}

	var q Quad
	var c circle.Circle
	var err error
	for i = range words {
		c, err = circle.ForTransforms(words[i], words[(i+1)%4])
		if err != nil {
			return Quad{}, fmt.Errorf("group: seed circle %d: %w", i, err)
		}
		q[i] = Generator{Matrix: mats[i], Circle: c}
	}

	return q, nil
}

// finiteC reports whether z has finite real and imaginary parts.
func finiteC(z complex128) bool {
	return !cmplx.IsNaN(z) && !cmplx.IsInf(z)
}

// finiteMat reports whether every entry of m is finite.
func finiteMat(m algebra.Mat2) bool {
	return finiteC(m.A) && finiteC(m.B) && finiteC(m.C) && finiteC(m.D)
}
