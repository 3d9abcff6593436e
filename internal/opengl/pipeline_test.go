package opengl

import (
	"testing"
	"unsafe"

	gl "github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"

	"lightmap-viewer/core"
	"lightmap-viewer/materials"
)

func TestBlendMapping(t *testing.T) {
	assert.Equal(t, uint32(gl.ZERO), glBlendFactor(materials.FactorZero))
	assert.Equal(t, uint32(gl.ONE), glBlendFactor(materials.FactorOne))
	assert.Equal(t, uint32(gl.SRC_ALPHA), glBlendFactor(materials.FactorSrcAlpha))
	assert.Equal(t, uint32(gl.ONE_MINUS_SRC_ALPHA), glBlendFactor(materials.FactorOneMinusSrcAlpha))
	assert.Equal(t, uint32(gl.FUNC_ADD), glBlendEquation(materials.EquationAdd))
	assert.Equal(t, uint32(gl.FUNC_SUBTRACT), glBlendEquation(materials.EquationSubtract))
}

func TestTargetMapping(t *testing.T) {
	assert.Equal(t, uint32(gl.TEXTURE_2D), glTarget(materials.Target2D))
	assert.Equal(t, uint32(gl.TEXTURE_CUBE_MAP), glTarget(materials.TargetCubemap))
}

func TestVertexLayoutCoversVertex(t *testing.T) {
	stride := unsafe.Sizeof(core.Vertex{})
	var floats int32
	for i, a := range vertexLayout {
		assert.Equal(t, uint32(i), a.location)
		assert.Less(t, a.offset, stride)
		floats += a.size
	}
	assert.Equal(t, stride, uintptr(floats)*4, "attributes tile the whole vertex")
}

func TestSkyViewProjectionDropsTranslation(t *testing.T) {
	view := mgl32.Translate3D(3, -5, 7)
	proj := mgl32.Perspective(mgl32.DegToRad(45), 1, 0.1, 500)

	assert.Equal(t, proj, SkyViewProjection(view, proj))
}

func TestSkyboxCubeIsClosed(t *testing.T) {
	assert.Len(t, skyboxVerts, 36*3)
	for _, c := range skyboxVerts {
		assert.True(t, c == 1 || c == -1)
	}
}
