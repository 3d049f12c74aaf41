package stl

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"renderbase/model"
	vm "renderbase/vector_math"
)

const (
	headerSize = 80
	countSize  = 4
	// normal + 3 vertices (12 Byte each) + 2 Byte attribute count
	stride = 50
)

var ErrTruncated = errors.New("stl data truncated")

func ReadStlFile(path string) (*model.Mesh, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	m, err := Parse(b)
	if err != nil {
		return nil, fmt.Errorf("reading stl file %s: %w", path, err)
	}
	m.Name = filepath.Base(path)
	return m, nil
}

// Parse decodes a binary STL buffer. Every triangle contributes three
// vertices that carry the facet normal as their color.
func Parse(b []byte) (*model.Mesh, error) {
	if len(b) < headerSize+countSize {
		return nil, fmt.Errorf("%w: %d Byte is shorter than the header", ErrTruncated, len(b))
	}
	triangleCnt := binary.LittleEndian.Uint32(b[headerSize : headerSize+countSize])
	body := b[headerSize+countSize:]
	if uint64(len(body)) < uint64(triangleCnt)*stride {
		return nil, fmt.Errorf(
			"%w: header announces %d triangles but only %d Byte follow",
			ErrTruncated, triangleCnt, len(body),
		)
	}

	v := make([]model.Vertex, 0, triangleCnt*3)
	id := make([]uint32, 0, triangleCnt*3)
	for t := uint32(0); t < triangleCnt; t++ {
		i := int(t) * stride
		normal := toVec3(body[i : i+12])
		if vm.Vec3HasNaNs(normal) {
			return nil, fmt.Errorf("triangle %d normal: %w", t, model.ErrInvalidVertex)
		}
		for k := 0; k < 3; k++ {
			off := i + 12 + k*12
			pos := toVec3(body[off : off+12])
			if vm.Vec3HasNaNs(pos) {
				return nil, fmt.Errorf("triangle %d vertex %d: %w", t, k, model.ErrInvalidVertex)
			}
			id = append(id, uint32(len(v)))
			v = append(v, model.Vertex{
				Pos:   pos,
				Color: normal,
			})
		}
	}

	return model.NewMesh("", v, id), nil
}

func toVec3(bytes []byte) vm.Vector3f {
	return vm.Vector3f{
		X: toFloat32(bytes[:4]),
		Y: toFloat32(bytes[4:8]),
		Z: toFloat32(bytes[8:12]),
	}
}

func toFloat32(bytes []byte) float32 {
	bits := binary.LittleEndian.Uint32(bytes)
	return math.Float32frombits(bits)
}
