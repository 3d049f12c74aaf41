package model

import vm "renderbase/vector_math"

// NewCubeMesh returns a unit cube centred on the origin, one colour per corner.
func NewCubeMesh(name string) *Mesh {
	v := []Vertex{ // 8 * 32 = 256 Byte
		{ // [0]
			Pos:      vm.Vector3f{X: -0.5, Y: -0.5, Z: -0.5},
			Color:    vm.Vector3f{X: 1, Y: 0, Z: 0},
			TexCoord: vm.Vector2f{X: 1, Y: 1},
		},
		{ // [1]
			Pos:      vm.Vector3f{X: 0.5, Y: -0.5, Z: -0.5},
			Color:    vm.Vector3f{X: 0, Y: 1, Z: 0},
			TexCoord: vm.Vector2f{X: 0, Y: 1},
		},
		{ // [2]
			Pos:      vm.Vector3f{X: 0.5, Y: 0.5, Z: -0.5},
			Color:    vm.Vector3f{X: 0, Y: 0, Z: 1},
			TexCoord: vm.Vector2f{X: 0, Y: 0},
		},
		{ // [3]
			Pos:      vm.Vector3f{X: -0.5, Y: 0.5, Z: -0.5},
			Color:    vm.Vector3f{X: 1, Y: 0.5, Z: 1},
			TexCoord: vm.Vector2f{X: 1, Y: 0},
		},
		{ // [4]
			Pos:      vm.Vector3f{X: -0.5, Y: -0.5, Z: 0.5},
			Color:    vm.Vector3f{X: 1, Y: 0.5, Z: 0.5},
			TexCoord: vm.Vector2f{X: 1, Y: 1},
		},
		{ // [5]
			Pos:      vm.Vector3f{X: 0.5, Y: -0.5, Z: 0.5},
			Color:    vm.Vector3f{X: 0.5, Y: 1, Z: 0.5},
			TexCoord: vm.Vector2f{X: 0, Y: 1},
		},
		{ // [6]
			Pos:      vm.Vector3f{X: 0.5, Y: 0.5, Z: 0.5},
			Color:    vm.Vector3f{X: 0.5, Y: 0.5, Z: 1},
			TexCoord: vm.Vector2f{X: 0, Y: 0},
		},
		{ // [7]
			Pos:      vm.Vector3f{X: -0.5, Y: 0.5, Z: 0.5},
			Color:    vm.Vector3f{X: 0, Y: 0.5, Z: 0},
			TexCoord: vm.Vector2f{X: 1, Y: 0},
		},
	}

	id := []uint32{
		2, 1, 0, 0, 3, 2, // front
		5, 1, 6, 1, 2, 6, // right
		4, 5, 6, 7, 4, 6, // back
		4, 7, 0, 0, 7, 3, // left
		0, 1, 5, 5, 4, 0, // top
		3, 7, 6, 2, 3, 6, // bottom
	}

	return NewMesh(name, v, id)
}
