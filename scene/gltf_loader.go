package scene

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
	"go.uber.org/zap"

	"lightmap-viewer/core"
	"lightmap-viewer/internal/logger"
)

// LoadGLTF opens a .glb or .gltf file and returns one Mesh per triangle
// primitive. TEXCOORD_0 feeds the surface UVs and TEXCOORD_1 the lightmap UVs.
// Node transforms are not applied; the scene model transform places every mesh.
func LoadGLTF(path string) ([]*Mesh, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("gltf open %q: %w", path, err)
	}

	var meshes []*Mesh
	for mi, gm := range doc.Meshes {
		for pi, prim := range gm.Primitives {
			if prim.Mode != gltf.PrimitiveTriangles {
				logger.Log.Debug("gltf: skipping non-triangle primitive",
					zap.Int("mesh", mi), zap.Int("primitive", pi))
				continue
			}
			m, err := loadGLTFPrimitive(doc, gm.Name, pi, prim)
			if err != nil {
				logger.Log.Warn("gltf: skipping primitive",
					zap.Int("mesh", mi), zap.Int("primitive", pi), zap.Error(err))
				continue
			}
			if prim.Material != nil && *prim.Material < len(doc.Materials) {
				m.MaterialName = doc.Materials[*prim.Material].Name
			}
			meshes = append(meshes, m)
		}
	}
	if len(meshes) == 0 {
		return nil, fmt.Errorf("no triangle geometry found in %q", path)
	}
	return meshes, nil
}

// loadGLTFPrimitive converts one glTF mesh primitive into a Mesh.
func loadGLTFPrimitive(doc *gltf.Document, meshName string, primIdx int, prim *gltf.Primitive) (*Mesh, error) {
	name := fmt.Sprintf("%s_p%d", meshName, primIdx)
	if meshName == "" {
		name = fmt.Sprintf("prim_%d", primIdx)
	}

	posIdx, ok := prim.Attributes["POSITION"]
	if !ok {
		return nil, fmt.Errorf("no POSITION attribute")
	}
	var attrs vertexAttributes
	var err error
	attrs.positions, err = modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
	if err != nil {
		return nil, fmt.Errorf("positions: %w", err)
	}
	if idx, ok := prim.Attributes["NORMAL"]; ok {
		attrs.normals = optionalStream(name, "NORMAL", func() ([][3]float32, error) {
			return modeler.ReadNormal(doc, doc.Accessors[idx], nil)
		})
	}
	if idx, ok := prim.Attributes["TEXCOORD_0"]; ok {
		attrs.uvs = optionalStream(name, "TEXCOORD_0", func() ([][2]float32, error) {
			return modeler.ReadTextureCoord(doc, doc.Accessors[idx], nil)
		})
	}
	if idx, ok := prim.Attributes["TEXCOORD_1"]; ok {
		attrs.lightmapUVs = optionalStream(name, "TEXCOORD_1", func() ([][2]float32, error) {
			return modeler.ReadTextureCoord(doc, doc.Accessors[idx], nil)
		})
	}
	if idx, ok := prim.Attributes["TANGENT"]; ok {
		attrs.tangents = optionalStream(name, "TANGENT", func() ([][4]float32, error) {
			return modeler.ReadTangent(doc, doc.Accessors[idx], nil)
		})
	}

	var indices []uint32
	if prim.Indices != nil {
		indices, err = modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
		if err != nil {
			return nil, fmt.Errorf("indices: %w", err)
		}
	}

	m := NewMesh(name, attrs.vertices(), indices)
	if len(attrs.tangents) < len(attrs.positions) {
		ComputeTangents(m)
	}
	return m, nil
}

// optionalStream reads a vertex stream the primitive can load without. A read
// error is logged and the stream dropped, so vertices() falls back to defaults.
func optionalStream[T any](mesh, attr string, read func() ([]T, error)) []T {
	data, err := read()
	if err != nil {
		logger.Log.Warn("gltf: ignoring attribute",
			zap.String("mesh", mesh), zap.String("attribute", attr), zap.Error(err))
		return nil
	}
	return data
}

// vertexAttributes are the raw per-vertex streams of one primitive.
// Every stream but positions may be shorter than positions or absent.
type vertexAttributes struct {
	positions   [][3]float32
	normals     [][3]float32
	uvs         [][2]float32
	lightmapUVs [][2]float32
	tangents    [][4]float32
}

// vertices interleaves the streams. A missing normal points up, missing UV
// sets are (0, 0), and a tangent's w component picks the bitangent sign.
func (a vertexAttributes) vertices() []core.Vertex {
	verts := make([]core.Vertex, len(a.positions))
	for i, p := range a.positions {
		v := core.Vertex{
			Position: p,
			Normal:   mgl32.Vec3{0, 1, 0},
		}
		if i < len(a.normals) {
			v.Normal = a.normals[i]
		}
		if i < len(a.uvs) {
			v.UV = a.uvs[i]
		}
		if i < len(a.lightmapUVs) {
			v.LightmapUV = a.lightmapUVs[i]
		}
		if i < len(a.tangents) {
			t := a.tangents[i]
			v.Tangent = mgl32.Vec3{t[0], t[1], t[2]}
			w := t[3]
			if w == 0 {
				w = 1
			}
			v.Bitangent = v.Normal.Cross(v.Tangent).Mul(w)
		}
		verts[i] = v
	}
	return verts
}
