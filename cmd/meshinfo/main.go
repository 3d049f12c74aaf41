package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"
	"renderbase/model"
	"renderbase/stl"
	vm "renderbase/vector_math"
)

var (
	file   = flag.String("file", "", "binary STL file to inspect, the built-in cube is used when empty")
	format = flag.String("format", "yaml", "report format: yaml or text")
)

func init() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.SetOutput(os.Stderr)
}

type Report struct {
	Name             string     `yaml:"name"`
	Vertices         int        `yaml:"vertices"`
	Indices          int        `yaml:"indices"`
	Triangles        int        `yaml:"triangles"`
	BoundsMin        [3]float32 `yaml:"bounds_min,flow"`
	BoundsMax        [3]float32 `yaml:"bounds_max,flow"`
	Centroid         [3]float32 `yaml:"centroid,flow"`
	Diagonal         float32    `yaml:"diagonal"`
	VertexBufferSize int        `yaml:"vertex_buffer_bytes"`
	IndexBufferSize  int        `yaml:"index_buffer_bytes"`
}

func main() {
	flag.Parse()
	log.Printf("Using GoLang: [%s]", runtime.Version())

	m, err := loadMesh(*file)
	if err != nil {
		log.Fatal(err)
	}
	if err := m.Validate(); err != nil {
		log.Fatal(err)
	}
	log.Printf("Loaded mesh %q, %d vertices, %d indices", m.Name, len(m.Vertices), len(m.VIndices))

	if err := writeReport(os.Stdout, NewReport(m), *format); err != nil {
		log.Fatal(err)
	}
}

func loadMesh(path string) (*model.Mesh, error) {
	if path == "" {
		return model.NewCubeMesh("cube"), nil
	}
	return stl.ReadStlFile(path)
}

func NewReport(m *model.Mesh) Report {
	r := Report{
		Name:             m.Name,
		Vertices:         len(m.Vertices),
		Indices:          len(m.VIndices),
		Triangles:        m.TriangleCount(),
		VertexBufferSize: m.VertexBufferSize(),
		IndexBufferSize:  m.IndexBufferSize(),
	}
	if lo, hi, ok := m.Bounds(); ok {
		r.BoundsMin = toArray(lo)
		r.BoundsMax = toArray(hi)
		r.Diagonal = vm.Vec3Length(hi.Sub(lo))
	}
	if c, ok := m.Centroid(); ok {
		r.Centroid = toArray(c)
	}
	return r
}

func writeReport(w io.Writer, r Report, format string) error {
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	case "text":
		_, err := fmt.Fprintf(w,
			"%s: %d vertices, %d triangles\nbounds %v .. %v (diagonal %g)\ncentroid %v\nbuffers %d + %d Byte\n",
			r.Name, r.Vertices, r.Triangles, r.BoundsMin, r.BoundsMax, r.Diagonal, r.Centroid,
			r.VertexBufferSize, r.IndexBufferSize,
		)
		return err
	default:
		return fmt.Errorf("unknown report format %q", format)
	}
}

func toArray(v vm.Vector3f) [3]float32 {
	return [3]float32{v.Index(0), v.Index(1), v.Index(2)}
}
