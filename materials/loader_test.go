package materials

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestLoadMissingFile(t *testing.T) {
	l, backend, logs := newTestLoader(t, memFS{})

	m := l.Load("nope.xml")
	require.NotNil(t, m)
	assert.Error(t, m.Err())
	assert.False(t, m.Valid())
	assert.Empty(t, backend.compiled)
	assert.Equal(t, 1, logs.FilterMessage("failed to load material description").Len())
}

func TestLoadWithoutMaterialRoot(t *testing.T) {
	l, _, logs := newTestLoader(t, memFS{"bad.xml": `<materials name="x"/>`})

	m := l.Load("bad.xml")
	assert.True(t, errors.Is(m.Err(), ErrNoRoot))
	assert.False(t, m.Valid())
	assert.Equal(t, 1, logs.FilterMessage("failed to parse material description").Len())
}

func TestLoadParsesParametersAndSkipsBadOnes(t *testing.T) {
	files := shaderFiles()
	files["p.xml"] = `<material name="p">
  <parameters>
    <parameter name="color" type="vec3" value="1.0 0.5 0.25"/>
    <parameter name="roughness" type="float" value="2.5"/>
    <parameter name="layers" type="int" value="7"/>
    <parameter name="broken" type="float" value="abc"/>
    <parameter name="matrix" type="mat4" value="1"/>
  </parameters>
  <shader vertex="shaders/rnm.vert" fragment="shaders/rnm.frag"/>
</material>`
	l, _, logs := newTestLoader(t, files)
	m := l.Load("p.xml")
	require.True(t, m.Valid())

	c, ok := m.Param("color")
	require.True(t, ok)
	assert.Equal(t, Vec3(mgl32.Vec3{1, 0.5, 0.25}), c)

	r, _ := m.Param("roughness")
	assert.Equal(t, Float(2.5), r)
	n, _ := m.Param("layers")
	assert.Equal(t, Int(7), n)

	_, ok = m.Param("broken")
	assert.False(t, ok)
	_, ok = m.Param("matrix")
	assert.False(t, ok)
	assert.Equal(t, 2, logs.FilterMessage("skipping parameter").Len())
}

func TestLoadBlendDefaultsAndUnknownTokens(t *testing.T) {
	files := shaderFiles()
	files["b.xml"] = `<material name="b">
  <blending enabled="true" srcFactor="BOGUS" equation="GL_FUNC_SUBTRACT"/>
</material>`
	files["none.xml"] = `<material name="none"/>`
	l, _, _ := newTestLoader(t, files)

	b := l.Load("b.xml")
	assert.Equal(t, BlendState{Enabled: true, Src: FactorOne, Dst: FactorZero, Equation: EquationSubtract}, b.Blend)

	none := l.Load("none.xml")
	assert.NoError(t, none.Err())
	assert.Equal(t, DefaultBlend(), none.Blend)
	assert.False(t, none.Valid(), "no shader means no program")
}

func TestLoadInjectsFeatureDefines(t *testing.T) {
	files := shaderFiles()
	files["env.xml"] = `<material name="env">
  <textures>
    <texture unit="1" type="bumpMap" path="textures/bump.png"/>
    <cubemap unit="5" type="environmentMap">
      <face path="sky/px.tga"/><face path="sky/nx.tga"/>
      <face path="sky/py.tga"/><face path="sky/ny.tga"/>
      <face path="sky/pz.tga"/><face path="sky/nz.tga"/>
    </cubemap>
  </textures>
  <shader vertex="shaders/rnm.vert" fragment="shaders/rnm.frag"/>
</material>`
	l, backend, _ := newTestLoader(t, files)
	m := l.Load("env.xml")
	require.True(t, m.Valid())

	assert.True(t, m.Features.Has(FeatureEnvironmentMap|FeatureBumpMap))
	require.Len(t, backend.compiled, 1)
	prog := backend.compiled[0]
	assert.Equal(t, "env", prog.label)
	assert.Equal(t, testVertexShader, prog.vertex)
	assert.True(t, strings.HasPrefix(prog.fragment,
		"#version 410 core\n#define HAS_ENVIRONMENT_MAP\n#define HAS_BUMP_MAP\n"))

	require.Len(t, m.Textures, 2)
	cube := m.Textures[1]
	assert.True(t, cube.Cubemap)
	assert.Equal(t, TargetCubemap, cube.Target())
	assert.Equal(t, "sky/px.tga", cube.Key())
	require.Len(t, backend.cubemaps, 1)
	assert.Equal(t, "sky/nz.tga", backend.cubemaps[0][5])
}

func TestLoadSkipsIncompleteCubemap(t *testing.T) {
	files := shaderFiles()
	files["c.xml"] = `<material name="c">
  <textures>
    <cubemap unit="5" type="environmentMap"><face path="a.tga"/><face path="b.tga"/></cubemap>
  </textures>
</material>`
	l, backend, logs := newTestLoader(t, files)
	m := l.Load("c.xml")

	assert.Empty(t, m.Textures)
	assert.Empty(t, backend.cubemaps)
	entries := logs.FilterMessage("skipping cubemap").All()
	require.Len(t, entries, 1)
	assert.Equal(t, int64(2), entries[0].ContextMap()["faces"])
}

func TestLoadShaderFailureKeepsMaterial(t *testing.T) {
	files := shaderFiles()
	files["f.xml"] = `<material name="broken_shader">
  <parameters><parameter name="shininess" type="float" value="8"/></parameters>
  <shader vertex="shaders/rnm.vert" fragment="shaders/rnm.frag"/>
</material>`
	l, backend, logs := newTestLoader(t, files)
	backend.failLabel = "broken_shader"

	m := l.Load("f.xml")
	assert.NoError(t, m.Err())
	assert.False(t, m.Valid())
	_, ok := m.Param("shininess")
	assert.True(t, ok)

	entries := logs.FilterMessage("shader program build failed").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "broken_shader", entries[0].ContextMap()["material"])
}

func TestLoadResolvesAgainstAssetRoot(t *testing.T) {
	root := filepath.Join("assets", "sponza")
	files := memFS{
		"m.xml": `<material name="m">
  <textures>
    <texture unit="0" type="diffuseTexture" path="textures/wall.png"/>
    <texture unit="1" type="normalMap" path="builtin:flat-normal"/>
  </textures>
  <shader vertex="shaders/rnm.vert" fragment="shaders/rnm.frag"/>
</material>`,
		filepath.Join(root, "shaders/rnm.vert"): testVertexShader,
		filepath.Join(root, "shaders/rnm.frag"): testFragmentShader,
	}
	l, backend, _ := newTestLoader(t, files)
	l.AssetRoot = root

	m := l.Load("m.xml")
	require.True(t, m.Valid())
	assert.Equal(t, []string{filepath.Join(root, "textures/wall.png"), "builtin:flat-normal"}, backend.uploads)
	assert.Equal(t, filepath.Join(root, "shaders/rnm.frag"), m.FragmentPath)
}

func TestLoadToleratesBadNumericAttributes(t *testing.T) {
	files := shaderFiles()
	files["n.xml"] = `<material name="n">
  <textures>
    <texture unit="0" type="diffuseTexture" path="textures/wall.png"><tiling u="abc" v="2"/></texture>
    <texture unit="one" type="lightmap0" path="textures/lm0.png"/>
  </textures>
  <parameters><parameter name="shininess" type="float" value="16"/></parameters>
  <shader vertex="shaders/rnm.vert" fragment="shaders/rnm.frag"/>
</material>`
	l, backend, logs := newTestLoader(t, files)

	m := l.Load("n.xml")
	require.NoError(t, m.Err())
	require.True(t, m.Valid())
	assert.Equal(t, "n", m.Name)
	assert.Len(t, backend.compiled, 1)

	require.Len(t, m.Textures, 2)
	assert.Equal(t, mgl32.Vec2{1, 2}, m.Textures[0].Tiling)
	assert.Equal(t, uint32(0), m.Textures[1].Unit)
	assert.Equal(t, DefaultTiling, m.Textures[1].Tiling)
	assert.Equal(t, []string{"textures/wall.png", "textures/lm0.png"}, backend.uploads)

	s, ok := m.Param("shininess")
	require.True(t, ok)
	assert.Equal(t, Float(16), s)

	assert.Equal(t, 1, logs.FilterMessage("bad tiling, using 1").Len())
	units := logs.FilterMessage("bad texture unit, using 0").All()
	require.Len(t, units, 1)
	assert.Equal(t, "lightmap0", units[0].ContextMap()["type"])
}

func TestLoaderZeroValueDefaults(t *testing.T) {
	files := shaderFiles()
	files["z.xml"] = `<material name="z">
  <textures>
    <texture unit="0" type="diffuseTexture" path="textures/wall.png"/>
    <texture unit="3" type="lightmap1" path="textures/wall.png"/>
  </textures>
  <shader vertex="shaders/rnm.vert" fragment="shaders/rnm.frag"/>
</material>`
	backend := newFakeBackend()
	log, _ := newObservedLogger(zapcore.DebugLevel)
	l := &Loader{Backend: backend, ReadFile: files.ReadFile, Log: log}

	var m *Material
	require.NotPanics(t, func() { m = l.Load("z.xml") })
	require.True(t, m.Valid())
	require.NotNil(t, l.Cache)
	assert.Same(t, log, l.Cache.Log)

	require.Len(t, m.Textures, 2)
	assert.Equal(t, m.Textures[0].Handle, m.Textures[1].Handle)
	assert.Equal(t, []string{"textures/wall.png"}, backend.uploads)
}
