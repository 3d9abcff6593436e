package materials

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"lightmap-viewer/internal/logger"
	"lightmap-viewer/textures"
)

// Loader turns material descriptions into Materials. One Loader, and its
// TextureCache, is shared by every material of a scene.
type Loader struct {
	Backend  Backend
	// Cache and Samplers default to a fresh cache over Backend and the
	// default sampler units.
	Cache    *TextureCache
	Samplers *SamplerRegistry

	// AssetRoot resolves relative texture and shader paths.
	AssetRoot string

	Log *zap.Logger

	// ReadFile defaults to os.ReadFile.
	ReadFile func(name string) ([]byte, error)
}

// NewLoader wires a loader with a fresh cache and the default sampler units.
func NewLoader(backend Backend, assetRoot string) *Loader {
	return &Loader{
		Backend:   backend,
		Cache:     NewTextureCache(backend),
		Samplers:  DefaultSamplers(),
		AssetRoot: assetRoot,
	}
}

// New returns an empty material around an already-built program.
func New(name string, program uint32) *Material {
	m := newMaterial(DefaultSamplers(), logger.Log.With(zap.String("material", name)))
	m.Name = name
	m.Program = program
	m.compiled = program != 0
	return m
}

// Load reads and builds the material at path. It never fails outright: any
// problem is logged, kept in Material.Err, and the material is returned in
// whatever state it reached.
func (l *Loader) Load(path string) *Material {
	log := l.log()
	m := newMaterial(l.samplers(), log)

	data, err := l.readFile(path)
	if err != nil {
		m.err = fmt.Errorf("material %q: %w", path, err)
		log.Error("failed to load material description", zap.String("path", path), zap.Error(err))
		return m
	}
	desc, err := DecodeDescription(strings.NewReader(string(data)))
	if err != nil {
		m.err = fmt.Errorf("material %q: %w", path, err)
		log.Error("failed to parse material description", zap.String("path", path), zap.Error(err))
		return m
	}
	l.build(m, desc)
	return m
}

func (l *Loader) build(m *Material, desc *Description) {
	m.Name = desc.Name
	m.log = m.log.With(zap.String("material", m.Name))

	if desc.Textures != nil {
		for _, td := range desc.Textures.Items {
			if t, ok := l.texture(m, td); ok {
				m.Textures = append(m.Textures, t)
			}
		}
	}

	if desc.Parameters != nil {
		for _, pd := range desc.Parameters.Items {
			p, err := ParseParam(pd.Type, pd.Value)
			if err != nil {
				m.log.Warn("skipping parameter", zap.String("param", pd.Name), zap.Error(err))
				continue
			}
			m.SetParam(pd.Name, p)
		}
	}

	m.Blend = desc.Blending.blend()
	m.Features = FeaturesFor(m.Textures)

	if desc.Shader != nil {
		m.VertexPath = l.resolve(desc.Shader.Vertex)
		m.FragmentPath = l.resolve(desc.Shader.Fragment)
		l.compile(m)
	}
}

func (l *Loader) texture(m *Material, td TextureDecl) (Texture, bool) {
	t := Texture{Type: td.Type, Tiling: DefaultTiling}
	unit, err := td.unit()
	if err != nil {
		m.log.Warn("bad texture unit, using 0", zap.String("type", td.Type), zap.Error(err))
	}
	t.Unit = unit
	switch td.XMLName.Local {
	case "texture":
		t.Path = l.resolve(td.Path)
		tiling, err := td.tiling()
		if err != nil {
			m.log.Warn("bad tiling, using 1", zap.String("type", td.Type), zap.Error(err))
		}
		t.Tiling = mgl32.Vec2{tiling[0], tiling[1]}
		t.Handle = l.cache().Texture2D(t.Path)
	case "cubemap":
		if len(td.Faces) != 6 {
			m.log.Error("skipping cubemap", zap.String("type", td.Type),
				zap.Int("faces", len(td.Faces)), zap.Error(ErrCubemapFaces))
			return t, false
		}
		t.Cubemap = true
		for i, f := range td.Faces {
			t.Faces[i] = l.resolve(f.Path)
		}
		t.Handle = l.cache().Cubemap(t.Faces)
	default:
		return t, false
	}
	return t, true
}

func (l *Loader) compile(m *Material) {
	vs, err := l.readFile(m.VertexPath)
	if err != nil {
		m.log.Error("failed to read vertex shader", zap.String("path", m.VertexPath), zap.Error(err))
	}
	fs, err := l.readFile(m.FragmentPath)
	if err != nil {
		m.log.Error("failed to read fragment shader", zap.String("path", m.FragmentPath), zap.Error(err))
	}
	frag := InjectDefines(string(fs), m.Features.Defines())

	prog, err := l.Backend.CompileProgram(string(vs), frag, m.Name)
	m.Program = prog
	if err != nil {
		m.log.Error("shader program build failed", zap.Error(err))
		return
	}
	m.compiled = true
}

func (l *Loader) resolve(p string) string {
	if p == "" || textures.IsBuiltin(p) || filepath.IsAbs(p) || l.AssetRoot == "" {
		return p
	}
	return filepath.Join(l.AssetRoot, p)
}

func (l *Loader) readFile(name string) ([]byte, error) {
	if l.ReadFile != nil {
		return l.ReadFile(name)
	}
	return os.ReadFile(name)
}

func (l *Loader) cache() *TextureCache {
	if l.Cache == nil {
		l.Cache = NewTextureCache(l.Backend)
		l.Cache.Log = l.Log
	}
	return l.Cache
}

func (l *Loader) samplers() *SamplerRegistry {
	if l.Samplers != nil {
		return l.Samplers
	}
	return DefaultSamplers()
}

func (l *Loader) log() *zap.Logger {
	if l.Log != nil {
		return l.Log
	}
	return logger.Log
}
