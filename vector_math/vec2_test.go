package vector_math

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

// requirePanicsWith runs f and checks that it panics with an error matching target.
func requirePanicsWith(t *testing.T, target error, f func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a panic")
		err, ok := r.(error)
		require.True(t, ok, "panic value %v is not an error", r)
		require.ErrorIs(t, err, target)
	}()
	f()
}

func TestNewVector2(t *testing.T) {
	nan := float32(math.NaN())

	require.NotPanics(t, func() { NewVector2[float32](3.2, 3.1) })
	require.Equal(t, Vector2f{X: 3.2, Y: 3.1}, NewVector2[float32](3.2, 3.1))

	requirePanicsWith(t, ErrInvalidComponent, func() { NewVector2(nan, 3.1) })
	requirePanicsWith(t, ErrInvalidComponent, func() { NewVector2(3.1, nan) })
	requirePanicsWith(t, ErrInvalidComponent, func() { NewVector2(math.NaN(), math.NaN()) })
}

func TestVector2Add(t *testing.T) {
	v1 := Vector2f{X: 2, Y: 3}
	v2 := Vector2f{X: 1, Y: -1}

	require.Equal(t, Vector2f{X: 3, Y: 2}, v1.Add(v2))
	require.NotEqual(t, Vector2f{}, v1.Add(v2))
	require.Equal(t, v1.Add(v2), v2.Add(v1))
	// operands are untouched
	require.Equal(t, Vector2f{X: 2, Y: 3}, v1)
}

func TestVector2AddAssign(t *testing.T) {
	v1 := Vector2f{X: 2, Y: 3}
	v2 := Vector2f{X: 1, Y: -1}

	v1.AddAssign(v2)

	require.Equal(t, Vector2f{X: 3, Y: 2}, v1)
	require.Equal(t, Vector2f{X: 2, Y: 3}.Add(v2), v1)
}

func TestVector2Sub(t *testing.T) {
	v1 := Vector2f{X: 2, Y: 3}
	v2 := Vector2f{X: 1, Y: -1}

	require.Equal(t, Vector2f{X: 1, Y: 4}, v1.Sub(v2))

	v1.SubAssign(v2)
	require.Equal(t, Vector2f{X: 1, Y: 4}, v1)
}

func TestVector2Mul(t *testing.T) {
	v1 := Vector2f{X: 1, Y: 3}

	require.Equal(t, Vector2f{X: 2, Y: 6}, Vec2Mul(v1, 2))
	require.NotEqual(t, Vector2f{X: 1.9, Y: 6}, Vec2Mul(v1, 2))
	require.Equal(t, v1, Vec2Mul(v1, 1))
	require.Equal(t, v1.Neg(), Vec2Mul(v1, -1))

	v1.MulAssign(2)
	require.Equal(t, Vector2f{X: 2, Y: 6}, v1)

	vi := Vector2i{X: -2, Y: 5}
	vi.MulAssign(3)
	require.Equal(t, Vector2i{X: -6, Y: 15}, vi)
}

func TestVector2Div(t *testing.T) {
	v1 := Vector2f{X: 1, Y: 1}

	require.Equal(t, Vector2f{X: 0.5, Y: 0.5}, Vec2Div(v1, 2))
	require.NotEqual(t, v1, Vec2Div(v1, 2))

	v2 := Vector2[float64]{X: 1, Y: 0.1}
	for _, s := range []float64{3, 7, 0.3, -11} {
		require.Equal(t, Vec2Mul(v2, 1/s), Vec2Div(v2, s))
	}

	inf := Vec2Div(v1, 0)
	require.True(t, math.IsInf(float64(inf.X), 1))
	require.True(t, math.IsInf(float64(inf.Y), 1))
	require.True(t, Vec2HasNaNs(Vec2Div(Vector2f{}, 0)))
}

func TestVector2Neg(t *testing.T) {
	v1 := Vector2f{X: 1, Y: 1}

	require.Equal(t, Vector2f{X: -1, Y: -1}, v1.Neg())
	require.Equal(t, v1, v1.Neg().Neg())
	require.NotEqual(t, v1, v1.Neg())
	require.Equal(t, Vector2f{}, v1.Add(v1.Neg()))
}

func TestVector2Length(t *testing.T) {
	v1 := Vector2f{X: 0, Y: 3}

	require.Equal(t, float32(9), v1.LengthSquared())
	require.Equal(t, float32(3), Vec2Length(v1))

	v2 := Vector2[float64]{X: 1.5, Y: -2.25}
	require.Equal(t, v2.Dot(v2), v2.LengthSquared())
	require.Equal(t, math.Sqrt(v2.LengthSquared()), Vec2Length(v2))

	require.Equal(t, int32(25), Vector2i{X: 3, Y: -4}.LengthSquared())
}

func TestVector2HasNaNs(t *testing.T) {
	require.True(t, Vec2HasNaNs(Vector2f{X: 0, Y: float32(math.NaN())}))
	require.True(t, Vec2HasNaNs(Vector2f{X: float32(math.NaN()), Y: 0}))
	require.False(t, Vec2HasNaNs(Vector2f{X: 0, Y: 0}))
	require.False(t, Vec2HasNaNs(Vector2f{X: float32(math.Inf(1)), Y: 0}))
}

func TestVector2Index(t *testing.T) {
	v1 := Vector2i{X: 1, Y: 2}

	require.Equal(t, v1.X, v1.Index(0))
	require.Equal(t, v1.Y, v1.Index(1))

	for _, i := range []int{2, 3, -1} {
		requirePanicsWith(t, ErrIndexOutOfRange, func() { v1.Index(i) })
	}
}

func TestVector2Abs(t *testing.T) {
	require.Equal(t, Vector2i{X: 1, Y: 2}, Vec2Abs(Vector2i{X: -1, Y: 2}))
	require.Equal(t, Vector2f{X: 1.5, Y: 0}, Vec2Abs(Vector2f{X: -1.5, Y: 0}))
}

func TestVector2Dot(t *testing.T) {
	v1 := Vector2[float64]{X: -1, Y: 2}

	require.Equal(t, 5.0, Vec2Dot(v1, v1))
	require.Equal(t, 5.0, v1.Dot(v1))

	v2 := Vector2i{X: 4, Y: -3}
	v3 := Vector2i{X: 2, Y: 7}
	require.Equal(t, int32(-13), v2.Dot(v3))
	require.Equal(t, v2.Dot(v3), Vec2Dot(v2, v3))
}

func TestVector2ValueSemantics(t *testing.T) {
	v1 := Vector2f{X: 1, Y: 2}
	v2 := v1
	v2.AddAssign(Vector2f{X: 1, Y: 1})

	require.Equal(t, Vector2f{X: 1, Y: 2}, v1)
	require.Equal(t, Vector2f{X: 2, Y: 3}, v2)
}
