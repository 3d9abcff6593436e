package materials

import (
	"sort"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// Uniform names every material program may declare.
const (
	UniformModel      = "model"
	UniformView       = "view"
	UniformProjection = "projection"
	UniformViewPos    = "viewPos"
)

// paramDefaults are uploaded when the program declares the uniform but the
// material carries no parameter of that name.
var paramDefaults = map[string]Param{
	"detailBlendFactor": Float(0),
}

// Material binds a compiled program, its textures, typed parameters and blend
// state for a single draw. Any number of meshes may share one Material.
//
// The program is compiled once at load. Only the parameter set changes
// afterwards, through SetParam and friends.
type Material struct {
	Name         string
	Program      uint32
	VertexPath   string
	FragmentPath string
	Textures     []Texture
	Blend        BlendState
	Features     Features

	params     map[string]Param
	paramOrder []string

	samplers  *SamplerRegistry
	locations map[string]int32
	missing   map[string]struct{}
	log       *zap.Logger

	compiled bool
	err      error
}

func newMaterial(samplers *SamplerRegistry, log *zap.Logger) *Material {
	return &Material{
		Blend:     DefaultBlend(),
		params:    make(map[string]Param),
		samplers:  samplers,
		locations: make(map[string]int32),
		missing:   make(map[string]struct{}),
		log:       log,
	}
}

// Err returns the first problem met while loading, if any.
func (m *Material) Err() error { return m.err }

// Valid reports whether the description loaded and the program linked.
func (m *Material) Valid() bool { return m.err == nil && m.compiled }

// Param returns the named parameter.
func (m *Material) Param(name string) (Param, bool) {
	p, ok := m.params[name]
	return p, ok
}

// ParamNames lists parameter names in sorted order.
func (m *Material) ParamNames() []string {
	return append([]string(nil), m.paramOrder...)
}

// SetParam inserts or replaces a parameter. Takes effect on the next Apply.
func (m *Material) SetParam(name string, p Param) {
	if _, ok := m.params[name]; !ok {
		i := sort.SearchStrings(m.paramOrder, name)
		m.paramOrder = append(m.paramOrder, "")
		copy(m.paramOrder[i+1:], m.paramOrder[i:])
		m.paramOrder[i] = name
	}
	m.params[name] = p
}

func (m *Material) SetFloat(name string, v float32) { m.SetParam(name, Float(v)) }
func (m *Material) SetInt(name string, v int32) { m.SetParam(name, Int(v)) }
func (m *Material) SetVec3(name string, v mgl32.Vec3) { m.SetParam(name, Vec3(v)) }

// Apply binds the material's complete state for the next draw call:
// program, transforms, parameters, textures, sampler units, tiling, blend.
// Uniforms the program does not declare are skipped. Blend state is set
// every call and never restored.
func (m *Material) Apply(p Pipeline, model mgl32.Mat4, cam Camera, aspect float32) {
	p.UseProgram(m.Program)

	if loc := m.location(p, UniformModel); loc >= 0 {
		p.UniformMatrix4(loc, model)
	}
	if loc := m.location(p, UniformView); loc >= 0 {
		p.UniformMatrix4(loc, cam.ViewMatrix())
	}
	if loc := m.location(p, UniformProjection); loc >= 0 {
		p.UniformMatrix4(loc, cam.ProjectionMatrix(aspect))
	}
	if loc := m.location(p, UniformViewPos); loc >= 0 {
		p.Uniform3f(loc, cam.Position())
	}

	for _, name := range m.paramOrder {
		loc := m.location(p, name)
		if loc < 0 {
			m.reportMissing(name)
			continue
		}
		m.params[name].upload(p, loc)
	}
	for name, def := range paramDefaults {
		if _, ok := m.params[name]; ok {
			continue
		}
		if loc := m.location(p, name); loc >= 0 {
			def.upload(p, loc)
		}
	}

	for _, t := range m.Textures {
		p.BindTexture(t.Unit, t.Target(), t.Handle)
	}

	m.samplers.Each(func(name string, unit int32) {
		if loc := m.location(p, name); loc >= 0 {
			p.Uniform1i(loc, unit)
		}
	})

	for _, t := range m.Textures {
		if t.Type == "" {
			continue
		}
		if loc := m.location(p, t.TilingUniform()); loc >= 0 {
			p.Uniform2f(loc, t.Tiling)
		}
	}

	p.SetBlend(m.Blend)
}

// location resolves a uniform once per material; the program never changes.
func (m *Material) location(p Pipeline, name string) int32 {
	if loc, ok := m.locations[name]; ok {
		return loc
	}
	loc := p.UniformLocation(m.Program, name)
	m.locations[name] = loc
	return loc
}

func (m *Material) reportMissing(name string) {
	if _, seen := m.missing[name]; seen {
		return
	}
	m.missing[name] = struct{}{}
	m.log.Debug("parameter has no matching uniform", zap.String("uniform", name))
}
