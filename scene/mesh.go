package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"lightmap-viewer/core"
	"lightmap-viewer/materials"
)

// Geometry is a mesh's uploaded buffers (e.g. *opengl.GPUMesh).
type Geometry interface {
	Draw()
}

// Mesh holds CPU-side vertex/index data, its uploaded geometry and the
// shared Material that shades it.
type Mesh struct {
	Name string
	core.MeshData

	// MaterialName is the name the importer assigned; Material is resolved
	// from it by Scene.AssignMaterials.
	MaterialName string
	Material     *materials.Material

	GPU Geometry
}

func NewMesh(name string, vertices []core.Vertex, indices []uint32) *Mesh {
	return &Mesh{
		Name:     name,
		MeshData: core.MeshData{Vertices: vertices, Indices: indices},
	}
}

// Draw applies the mesh's material and issues one draw of its geometry.
// A mesh without a material or without uploaded geometry draws nothing.
func (m *Mesh) Draw(p materials.Pipeline, model mgl32.Mat4, cam materials.Camera, aspect float32) {
	if m.Material == nil || m.GPU == nil {
		return
	}
	m.Material.Apply(p, model, cam, aspect)
	m.GPU.Draw()
}

// TriangleCount is the number of triangles the mesh draws.
func (m *Mesh) TriangleCount() int {
	if len(m.Indices) > 0 {
		return len(m.Indices) / 3
	}
	return len(m.Vertices) / 3
}
