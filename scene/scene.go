package scene

import (
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"lightmap-viewer/core"
	"lightmap-viewer/internal/logger"
	"lightmap-viewer/materials"
)

// MaterialResolver finds the material a mesh names, or returns fallback.
// *materials.Library implements it.
type MaterialResolver interface {
	Resolve(name string, fallback *materials.Material) *materials.Material
}

// Scene is a flat list of meshes drawn with one shared model transform.
type Scene struct {
	Meshes []*Mesh
	Model  mgl32.Mat4
}

func NewScene(meshes []*Mesh) *Scene {
	return &Scene{Meshes: meshes, Model: mgl32.Ident4()}
}

// ModelTransform scales uniformly, then rotates about X by rotateX degrees.
// The rotation is applied to vertices first.
func ModelTransform(scale, rotateX float32) mgl32.Mat4 {
	return mgl32.Scale3D(scale, scale, scale).Mul4(mgl32.HomogRotate3DX(mgl32.DegToRad(rotateX)))
}

// AssignMaterials points every mesh at the material its MaterialName resolves
// to. Meshes sharing a name share the Material.
func (s *Scene) AssignMaterials(r MaterialResolver, fallback *materials.Material) {
	for _, m := range s.Meshes {
		m.Material = r.Resolve(m.MaterialName, fallback)
	}
}

// Upload hands each mesh's data to upload and keeps the resulting geometry.
func (s *Scene) Upload(upload func(core.MeshData) Geometry) {
	for _, m := range s.Meshes {
		m.GPU = upload(m.MeshData)
		if m.GPU == nil {
			logger.Log.Warn("mesh has no geometry", zap.String("mesh", m.Name))
		}
	}
}

// Draw draws every mesh in order with the scene model transform.
func (s *Scene) Draw(p materials.Pipeline, cam materials.Camera, aspect float32) {
	for _, m := range s.Meshes {
		m.Draw(p, s.Model, cam, aspect)
	}
}

// Materials returns the distinct materials in use, in first-use order.
func (s *Scene) Materials() []*materials.Material {
	seen := make(map[*materials.Material]bool)
	var out []*materials.Material
	for _, m := range s.Meshes {
		if m.Material != nil && !seen[m.Material] {
			seen[m.Material] = true
			out = append(out, m.Material)
		}
	}
	return out
}

// Stats reports mesh and triangle counts.
func (s *Scene) Stats() (meshes, triangles int) {
	for _, m := range s.Meshes {
		triangles += m.TriangleCount()
	}
	return len(s.Meshes), triangles
}
