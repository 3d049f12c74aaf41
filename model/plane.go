package model

import vm "renderbase/vector_math"

// NewGridPlane returns a 2x2 quad in the z = 0 plane built from two triangles.
func NewGridPlane(name string) *Mesh {
	v := []Vertex{
		{
			Pos:      vm.Vector3f{X: -1, Y: -1, Z: 0},
			Color:    vm.Vector3f{X: 1, Y: 0, Z: 0},
			TexCoord: vm.Vector2f{X: 0, Y: 0},
		},
		{
			Pos:      vm.Vector3f{X: -1, Y: 1, Z: 0},
			Color:    vm.Vector3f{X: 0, Y: 1, Z: 0},
			TexCoord: vm.Vector2f{X: 0, Y: 1},
		},
		{
			Pos:      vm.Vector3f{X: 1, Y: 1, Z: 0},
			Color:    vm.Vector3f{X: 0, Y: 0, Z: 1},
			TexCoord: vm.Vector2f{X: 1, Y: 1},
		},
		{
			Pos:      vm.Vector3f{X: 1, Y: -1, Z: 0},
			Color:    vm.Vector3f{X: 1, Y: 0.5, Z: 1},
			TexCoord: vm.Vector2f{X: 1, Y: 0},
		},
	}

	id := []uint32{
		0, 1, 2,
		2, 3, 0,
	}

	return NewMesh(name, v, id)
}
