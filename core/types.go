package core

import "github.com/go-gl/mathgl/mgl32"

type Color struct {
	R, G, B, A float32
}

var (
	ColorWhite = Color{1, 1, 1, 1}
	ColorBlack = Color{0, 0, 0, 1}
)

// Vertex is the interleaved layout uploaded for every mesh. UV addresses the
// surface textures, LightmapUV the baked lightmaps.
type Vertex struct {
	Position   mgl32.Vec3
	Normal     mgl32.Vec3
	UV         mgl32.Vec2
	LightmapUV mgl32.Vec2
	Tangent    mgl32.Vec3
	Bitangent  mgl32.Vec3
}

type MeshData struct {
	Vertices []Vertex
	Indices  []uint32
}
