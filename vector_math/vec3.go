package vector_math

import (
	"fmt"
)

type Vector3[T Number] struct {
	X, Y, Z T
}

type (
	Vector3i = Vector3[int32]
	Vector3f = Vector3[float32]
)

// NewVector3 is the validating constructor, see NewVector2.
func NewVector3[T Float](x, y, z T) Vector3[T] {
	if isNaN(x) || isNaN(y) || isNaN(z) {
		panic(fmt.Errorf("%w: Vector3{%v, %v, %v}", ErrInvalidComponent, x, y, z))
	}
	return Vector3[T]{X: x, Y: y, Z: z}
}

func (v Vector3[T]) Add(w Vector3[T]) Vector3[T] {
	return Vector3[T]{
		X: v.X + w.X,
		Y: v.Y + w.Y,
		Z: v.Z + w.Z,
	}
}

func (v Vector3[T]) Sub(w Vector3[T]) Vector3[T] {
	return Vector3[T]{
		X: v.X - w.X,
		Y: v.Y - w.Y,
		Z: v.Z - w.Z,
	}
}

func (v *Vector3[T]) AddAssign(w Vector3[T]) {
	v.X += w.X
	v.Y += w.Y
	v.Z += w.Z
}

func (v *Vector3[T]) SubAssign(w Vector3[T]) {
	v.X -= w.X
	v.Y -= w.Y
	v.Z -= w.Z
}

func (v *Vector3[T]) MulAssign(factor T) {
	v.X *= factor
	v.Y *= factor
	v.Z *= factor
}

func (v Vector3[T]) Neg() Vector3[T] {
	return Vector3[T]{
		X: -v.X,
		Y: -v.Y,
		Z: -v.Z,
	}
}

// Index returns X, Y or Z for 0, 1 or 2 and panics for anything else.
func (v Vector3[T]) Index(i int) T {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	default:
		panic(fmt.Errorf("%w: %d for Vector3", ErrIndexOutOfRange, i))
	}
}

func (v Vector3[T]) LengthSquared() T {
	return (v.X * v.X) + (v.Y * v.Y) + (v.Z * v.Z)
}

func (v Vector3[T]) Dot(w Vector3[T]) T {
	return Vec3Dot(v, w)
}

func Vec3Dot[T Number](a, b Vector3[T]) T {
	return (a.X * b.X) + (a.Y * b.Y) + (a.Z * b.Z)
}

func Vec3Mul[T Float](v Vector3[T], factor T) Vector3[T] {
	return Vector3[T]{
		X: v.X * factor,
		Y: v.Y * factor,
		Z: v.Z * factor,
	}
}

func Vec3Div[T Float](v Vector3[T], divisor T) Vector3[T] {
	return Vec3Mul(v, 1/divisor)
}

func Vec3Length[T Float](v Vector3[T]) T {
	return sqrt(v.LengthSquared())
}

func Vec3HasNaNs[T Float](v Vector3[T]) bool {
	return isNaN(v.X) || isNaN(v.Y) || isNaN(v.Z)
}

func Vec3Abs[T Signed](v Vector3[T]) Vector3[T] {
	return Vector3[T]{
		X: abs(v.X),
		Y: abs(v.Y),
		Z: abs(v.Z),
	}
}
