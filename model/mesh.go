package model

import (
	"errors"
	"fmt"
	vm "renderbase/vector_math"
	"unsafe"
)

var (
	ErrInvalidVertex   = errors.New("vertex has NaN components")
	ErrIndexOutOfRange = errors.New("vertex index out of range")
)

type Mesh struct {
	Name     string
	Vertices []Vertex
	VIndices []uint32
}

func NewMesh(name string, v []Vertex, id []uint32) *Mesh {
	return &Mesh{
		Name:     name,
		Vertices: v,
		VIndices: id,
	}
}

// Validate reports the first vertex carrying a NaN position or color and the
// first index that does not address a vertex.
func (m *Mesh) Validate() error {
	for i, v := range m.Vertices {
		if vm.Vec3HasNaNs(v.Pos) || vm.Vec3HasNaNs(v.Color) || vm.Vec2HasNaNs(v.TexCoord) {
			return fmt.Errorf("mesh %q vertex %d: %w", m.Name, i, ErrInvalidVertex)
		}
	}
	for i, id := range m.VIndices {
		if int(id) >= len(m.Vertices) {
			return fmt.Errorf(
				"mesh %q index %d points to vertex %d of %d: %w",
				m.Name, i, id, len(m.Vertices), ErrIndexOutOfRange,
			)
		}
	}
	return nil
}

// Bounds returns the componentwise minimum and maximum vertex position.
// ok is false for a mesh without vertices.
func (m *Mesh) Bounds() (lo vm.Vector3f, hi vm.Vector3f, ok bool) {
	if len(m.Vertices) == 0 {
		return lo, hi, false
	}
	lo = m.Vertices[0].Pos
	hi = m.Vertices[0].Pos
	for _, v := range m.Vertices[1:] {
		for i := 0; i < 3; i++ {
			c := v.Pos.Index(i)
			setComponent(&lo, i, min(lo.Index(i), c))
			setComponent(&hi, i, max(hi.Index(i), c))
		}
	}
	return lo, hi, true
}

// Centroid returns the mean vertex position.
func (m *Mesh) Centroid() (vm.Vector3f, bool) {
	if len(m.Vertices) == 0 {
		return vm.Vector3f{}, false
	}
	var sum vm.Vector3f
	for _, v := range m.Vertices {
		sum.AddAssign(v.Pos)
	}
	return vm.Vec3Div(sum, float32(len(m.Vertices))), true
}

func (m *Mesh) TriangleCount() int {
	return len(m.VIndices) / 3
}

// VertexBufferSize returns the size required for keeping all vertices in device memory.
func (m *Mesh) VertexBufferSize() int {
	return int(unsafe.Sizeof(Vertex{})) * len(m.Vertices)
}

// IndexBufferSize returns the size required for keeping all indices in device memory.
func (m *Mesh) IndexBufferSize() int {
	return int(unsafe.Sizeof(uint32(0))) * len(m.VIndices)
}

func setComponent(v *vm.Vector3f, i int, f float32) {
	switch i {
	case 0:
		v.X = f
	case 1:
		v.Y = f
	case 2:
		v.Z = f
	}
}
