package materials

import "github.com/go-gl/mathgl/mgl32"

// TextureTarget selects the bind point for a texture handle.
type TextureTarget int

const (
	Target2D      TextureTarget = iota // GL_TEXTURE_2D
	TargetCubemap                      // GL_TEXTURE_CUBE_MAP
)

func (t TextureTarget) String() string {
	if t == TargetCubemap {
		return "cubemap"
	}
	return "2d"
}

// Texture is one texture binding declared by a material.
// The GPU handle is owned by the TextureCache and shared between materials.
type Texture struct {
	Handle uint32
	Unit   uint32
	Type   string // semantic sampler tag, e.g. "diffuseTexture" or "lightmap0"

	// Path is the resolved source file. Empty for cubemaps.
	Path    string
	Faces   [6]string
	Cubemap bool

	// Tiling scales the surface UVs; (1, 1) unless the description overrides it.
	Tiling mgl32.Vec2
}

// DefaultTiling is the UV scale used when a texture declares none.
var DefaultTiling = mgl32.Vec2{1, 1}

// Target returns the bind point matching the texture kind.
func (t Texture) Target() TextureTarget {
	if t.Cubemap {
		return TargetCubemap
	}
	return Target2D
}

// Key is the cache identity: the source path, or the first face for cubemaps.
func (t Texture) Key() string {
	if t.Cubemap {
		return t.Faces[0]
	}
	return t.Path
}

// TilingUniform is the conventional uniform carrying this texture's tiling.
func (t Texture) TilingUniform() string {
	return t.Type + "Tiling"
}
