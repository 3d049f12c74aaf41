package vector_math

import "fmt"

type Vector2[T Number] struct {
	X, Y T
}

type (
	Vector2i = Vector2[int32]
	Vector2f = Vector2[float32]
)

// NewVector2 is the validating constructor. It panics with an error wrapping
// ErrInvalidComponent if x or y is NaN. Use a composite literal to skip the check.
func NewVector2[T Float](x, y T) Vector2[T] {
	if isNaN(x) || isNaN(y) {
		panic(fmt.Errorf("%w: Vector2{%v, %v}", ErrInvalidComponent, x, y))
	}
	return Vector2[T]{X: x, Y: y}
}

func (v Vector2[T]) Add(w Vector2[T]) Vector2[T] {
	return Vector2[T]{
		X: v.X + w.X,
		Y: v.Y + w.Y,
	}
}

func (v Vector2[T]) Sub(w Vector2[T]) Vector2[T] {
	return Vector2[T]{
		X: v.X - w.X,
		Y: v.Y - w.Y,
	}
}

func (v *Vector2[T]) AddAssign(w Vector2[T]) {
	v.X += w.X
	v.Y += w.Y
}

func (v *Vector2[T]) SubAssign(w Vector2[T]) {
	v.X -= w.X
	v.Y -= w.Y
}

// MulAssign scales v in place.
func (v *Vector2[T]) MulAssign(factor T) {
	v.X *= factor
	v.Y *= factor
}

func (v Vector2[T]) Neg() Vector2[T] {
	return Vector2[T]{
		X: -v.X,
		Y: -v.Y,
	}
}

// Index returns component 0 (X) or 1 (Y). Any other index panics with an
// error wrapping ErrIndexOutOfRange.
func (v Vector2[T]) Index(i int) T {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		panic(fmt.Errorf("%w: %d for Vector2", ErrIndexOutOfRange, i))
	}
}

func (v Vector2[T]) LengthSquared() T {
	return (v.X * v.X) + (v.Y * v.Y)
}

func (v Vector2[T]) Dot(w Vector2[T]) T {
	return Vec2Dot(v, w)
}

func Vec2Dot[T Number](a, b Vector2[T]) T {
	return (a.X * b.X) + (a.Y * b.Y)
}

// Vec2Mul scales v by factor.
func Vec2Mul[T Float](v Vector2[T], factor T) Vector2[T] {
	return Vector2[T]{
		X: v.X * factor,
		Y: v.Y * factor,
	}
}

// Vec2Div multiplies v by the reciprocal of divisor. A zero divisor yields
// infinite or NaN components rather than an error.
func Vec2Div[T Float](v Vector2[T], divisor T) Vector2[T] {
	return Vec2Mul(v, 1/divisor)
}

func Vec2Length[T Float](v Vector2[T]) T {
	return sqrt(v.LengthSquared())
}

func Vec2HasNaNs[T Float](v Vector2[T]) bool {
	return isNaN(v.X) || isNaN(v.Y)
}

func Vec2Abs[T Signed](v Vector2[T]) Vector2[T] {
	return Vector2[T]{
		X: abs(v.X),
		Y: abs(v.Y),
	}
}
