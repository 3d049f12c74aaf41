// Package vector_math provides small generic vector types for geometry code.
package vector_math

import (
	"errors"
	"math"

	"golang.org/x/exp/constraints"
)

// Number is any element type a vector can carry. Operations that only need
// addition, subtraction and multiplication are available for all of them.
type Number interface {
	constraints.Integer | constraints.Float
}

// Float element types additionally support NaN tests, square roots and
// reciprocals.
type Float interface {
	constraints.Float
}

// Signed element types support absolute values.
type Signed interface {
	constraints.Signed | constraints.Float
}

var (
	ErrInvalidComponent = errors.New("vector component is NaN")
	ErrIndexOutOfRange  = errors.New("vector index out of range")
)

func isNaN[T Float](f T) bool {
	return f != f
}

func sqrt[T Float](f T) T {
	return T(math.Sqrt(float64(f)))
}

func abs[T Signed](n T) T {
	if n < 0 {
		return -n
	}
	return n
}
