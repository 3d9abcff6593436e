package opengl

import (
	gl "github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"lightmap-viewer/materials"
)

func (d *Device) UseProgram(program uint32) {
	gl.UseProgram(program)
}

func (d *Device) UniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

func (d *Device) UniformMatrix4(loc int32, m mgl32.Mat4) {
	gl.UniformMatrix4fv(loc, 1, false, &m[0])
}

func (d *Device) Uniform1f(loc int32, v float32) {
	gl.Uniform1f(loc, v)
}

func (d *Device) Uniform1i(loc int32, v int32) {
	gl.Uniform1i(loc, v)
}

func (d *Device) Uniform2f(loc int32, v mgl32.Vec2) {
	gl.Uniform2f(loc, v[0], v[1])
}

func (d *Device) Uniform3f(loc int32, v mgl32.Vec3) {
	gl.Uniform3f(loc, v[0], v[1], v[2])
}

// BindTexture makes handle current on the given texture unit.
func (d *Device) BindTexture(unit uint32, target materials.TextureTarget, handle uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	gl.BindTexture(glTarget(target), handle)
}

// SetBlend writes the global blend state. Nothing is restored afterwards.
func (d *Device) SetBlend(state materials.BlendState) {
	if !state.Enabled {
		gl.Disable(gl.BLEND)
		return
	}
	gl.Enable(gl.BLEND)
	gl.BlendFunc(glBlendFactor(state.Src), glBlendFactor(state.Dst))
	gl.BlendEquation(glBlendEquation(state.Equation))
}

func glTarget(t materials.TextureTarget) uint32 {
	if t == materials.TargetCubemap {
		return gl.TEXTURE_CUBE_MAP
	}
	return gl.TEXTURE_2D
}

func glBlendFactor(f materials.BlendFactor) uint32 {
	switch f {
	case materials.FactorZero:
		return gl.ZERO
	case materials.FactorSrcAlpha:
		return gl.SRC_ALPHA
	case materials.FactorOneMinusSrcAlpha:
		return gl.ONE_MINUS_SRC_ALPHA
	}
	return gl.ONE
}

func glBlendEquation(e materials.BlendEquation) uint32 {
	if e == materials.EquationSubtract {
		return gl.FUNC_SUBTRACT
	}
	return gl.FUNC_ADD
}
