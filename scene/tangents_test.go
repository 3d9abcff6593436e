package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"

	"lightmap-viewer/core"
)

func quad() *Mesh {
	up := mgl32.Vec3{0, 1, 0}
	verts := []core.Vertex{
		{Position: mgl32.Vec3{0, 0, 0}, Normal: up, UV: mgl32.Vec2{0, 0}},
		{Position: mgl32.Vec3{1, 0, 0}, Normal: up, UV: mgl32.Vec2{1, 0}},
		{Position: mgl32.Vec3{1, 0, 1}, Normal: up, UV: mgl32.Vec2{1, 1}},
		{Position: mgl32.Vec3{0, 0, 1}, Normal: up, UV: mgl32.Vec2{0, 1}},
	}
	return NewMesh("quad", verts, []uint32{0, 1, 2, 0, 2, 3})
}

func assertVec3(t *testing.T, want, got mgl32.Vec3) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i], got[i], 1e-5, "component %d of %v", i, got)
	}
}

func TestComputeTangentsFollowsUVs(t *testing.T) {
	m := quad()
	ComputeTangents(m)

	for _, v := range m.Vertices {
		assertVec3(t, mgl32.Vec3{1, 0, 0}, v.Tangent)
		assertVec3(t, mgl32.Vec3{0, 0, 1}, v.Bitangent)
	}
}

func TestComputeTangentsDegenerateUVs(t *testing.T) {
	m := quad()
	for i := range m.Vertices {
		m.Vertices[i].UV = mgl32.Vec2{}
	}
	ComputeTangents(m)

	// Normal is +Y, so the approximation crosses +X with it.
	for _, v := range m.Vertices {
		assertVec3(t, mgl32.Vec3{0, 0, 1}, v.Tangent)
		assertVec3(t, mgl32.Vec3{1, 0, 0}, v.Bitangent)
	}
}

func TestComputeTangentsIgnoresBadIndices(t *testing.T) {
	m := quad()
	m.Indices = append(m.Indices, 0, 1, 99)

	assert.NotPanics(t, func() { ComputeTangents(m) })
	assertVec3(t, mgl32.Vec3{1, 0, 0}, m.Vertices[0].Tangent)
}

func TestApproximateTangent(t *testing.T) {
	v := core.Vertex{Normal: mgl32.Vec3{0, 0, 1}}
	ApproximateTangent(&v)

	assertVec3(t, mgl32.Vec3{1, 0, 0}, v.Tangent)
	assertVec3(t, mgl32.Vec3{0, 1, 0}, v.Bitangent)
	assert.InDelta(t, 0, v.Tangent.Dot(v.Normal), 1e-6)
}
