package scene

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"lightmap-viewer/core"
)

// Builtin model names accepted by LoadModel.
const (
	BuiltinPlane  = "builtin:plane"
	BuiltinSphere = "builtin:sphere"
)

// CreatePlane generates a flat XZ plane facing +Y. The lightmap UVs span the
// whole plane once; the surface UVs repeat tile times.
func CreatePlane(width, depth float32, subdivisions int, tile float32) *Mesh {
	if subdivisions < 1 {
		subdivisions = 1
	}

	var vertices []core.Vertex
	var indices []uint32

	halfW := width / 2.0
	halfD := depth / 2.0

	for z := 0; z <= subdivisions; z++ {
		for x := 0; x <= subdivisions; x++ {
			u := float32(x) / float32(subdivisions)
			v := float32(z) / float32(subdivisions)

			vertices = append(vertices, core.Vertex{
				Position:   mgl32.Vec3{-halfW + u*width, 0, -halfD + v*depth},
				Normal:     mgl32.Vec3{0, 1, 0},
				UV:         mgl32.Vec2{u * tile, v * tile},
				LightmapUV: mgl32.Vec2{u, v},
			})
		}
	}

	for z := 0; z < subdivisions; z++ {
		for x := 0; x < subdivisions; x++ {
			topLeft := uint32(z*(subdivisions+1) + x)
			topRight := topLeft + 1
			bottomLeft := topLeft + uint32(subdivisions+1)
			bottomRight := bottomLeft + 1

			indices = append(indices, topLeft, bottomLeft, topRight)
			indices = append(indices, topRight, bottomLeft, bottomRight)
		}
	}

	m := NewMesh("Plane", vertices, indices)
	ComputeTangents(m)
	return m
}

// CreateSphere generates a UV sphere. Lightmap UVs equal the surface UVs.
func CreateSphere(radius float32, segments, rings int) *Mesh {
	if segments < 3 {
		segments = 3
	}
	if rings < 2 {
		rings = 2
	}

	var vertices []core.Vertex
	var indices []uint32

	for ring := 0; ring <= rings; ring++ {
		phi := float32(ring) * math32.Pi / float32(rings)
		sinPhi, cosPhi := math32.Sin(phi), math32.Cos(phi)

		for seg := 0; seg <= segments; seg++ {
			theta := float32(seg) * 2 * math32.Pi / float32(segments)
			sinTheta, cosTheta := math32.Sin(theta), math32.Cos(theta)

			normal := mgl32.Vec3{sinPhi * cosTheta, cosPhi, sinPhi * sinTheta}
			uv := mgl32.Vec2{float32(seg) / float32(segments), float32(ring) / float32(rings)}

			vertices = append(vertices, core.Vertex{
				Position:   normal.Mul(radius),
				Normal:     normal,
				UV:         uv,
				LightmapUV: uv,
			})
		}
	}

	for ring := 0; ring < rings; ring++ {
		for seg := 0; seg < segments; seg++ {
			current := uint32(ring*(segments+1) + seg)
			next := current + uint32(segments+1)

			indices = append(indices, current, next, current+1)
			indices = append(indices, current+1, next, next+1)
		}
	}

	m := NewMesh("Sphere", vertices, indices)
	ComputeTangents(m)
	return m
}

// builtinModel returns the meshes for a builtin model name. Units match the
// default scene scale of 0.01, which shrinks them to a few metres.
func builtinModel(name string) ([]*Mesh, bool) {
	switch name {
	case BuiltinPlane:
		return []*Mesh{CreatePlane(2000, 2000, 8, 8)}, true
	case BuiltinSphere:
		return []*Mesh{CreateSphere(200, 32, 16)}, true
	}
	return nil, false
}
