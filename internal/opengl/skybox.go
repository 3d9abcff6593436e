package opengl

import (
	"fmt"

	gl "github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Skybox draws an environment cubemap behind the scene using an inverted
// unit cube. The vertex shader writes gl_Position.z = w so every fragment
// sits on the far plane.
type Skybox struct {
	vao     uint32
	vbo     uint32
	prog    uint32
	cubemap uint32

	vpLoc  int32
	envLoc int32
}

const skyVertSrc = `#version 410 core
layout(location = 0) in vec3 inPosition;

uniform mat4 skyVP;

out vec3 fragDir;

void main() {
    fragDir = inPosition;
    vec4 pos = skyVP * vec4(inPosition, 1.0);
    gl_Position = pos.xyww;
}
`

const skyFragSrc = `#version 410 core
in vec3 fragDir;
out vec4 outColor;

uniform samplerCube environmentMap;

void main() {
    outColor = vec4(texture(environmentMap, fragDir).rgb, 1.0);
}
`

// 36 positions (xyz) for a unit cube, CCW from the outside.
// Face culling stays off so the inside faces are visible.
var skyboxVerts = []float32{
	// -Z face
	-1, -1, -1, 1, 1, -1, 1, -1, -1,
	1, 1, -1, -1, -1, -1, -1, 1, -1,
	// +Z face
	-1, -1, 1, 1, -1, 1, 1, 1, 1,
	1, 1, 1, -1, 1, 1, -1, -1, 1,
	// -X face
	-1, 1, 1, -1, 1, -1, -1, -1, -1,
	-1, -1, -1, -1, -1, 1, -1, 1, 1,
	// +X face
	1, 1, 1, 1, -1, -1, 1, 1, -1,
	1, -1, -1, 1, 1, 1, 1, -1, 1,
	// -Y face
	-1, -1, -1, 1, -1, -1, 1, -1, 1,
	1, -1, 1, -1, -1, 1, -1, -1, -1,
	// +Y face
	-1, 1, -1, 1, 1, 1, 1, 1, -1,
	1, 1, 1, -1, 1, -1, -1, 1, 1,
}

// NewSkybox compiles the sky program and uploads the cube geometry.
// cubemap is a handle produced by LoadCubemap.
func (d *Device) NewSkybox(cubemap uint32) (*Skybox, error) {
	prog, err := d.CompileProgram(skyVertSrc, skyFragSrc, "skybox")
	if err != nil {
		return nil, fmt.Errorf("skybox shader: %w", err)
	}

	sb := &Skybox{
		prog:    prog,
		cubemap: cubemap,
		vpLoc:   d.UniformLocation(prog, "skyVP"),
		envLoc:  d.UniformLocation(prog, "environmentMap"),
	}

	gl.GenVertexArrays(1, &sb.vao)
	gl.GenBuffers(1, &sb.vbo)
	gl.BindVertexArray(sb.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, sb.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(skyboxVerts)*4, gl.Ptr(skyboxVerts), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 12, 0)
	gl.BindVertexArray(0)

	return sb, nil
}

// SkyViewProjection strips the translation from view so the sky stays
// centred on the eye.
func SkyViewProjection(view, proj mgl32.Mat4) mgl32.Mat4 {
	return proj.Mul4(view.Mat3().Mat4())
}

// Draw renders the sky with depth writes off and blending disabled.
// It leaves program and blend state changed; the next material Apply sets both.
func (sb *Skybox) Draw(view, proj mgl32.Mat4) {
	gl.DepthFunc(gl.LEQUAL)
	gl.DepthMask(false)
	gl.Disable(gl.BLEND)

	vp := SkyViewProjection(view, proj)
	gl.UseProgram(sb.prog)
	gl.UniformMatrix4fv(sb.vpLoc, 1, false, &vp[0])
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_CUBE_MAP, sb.cubemap)
	gl.Uniform1i(sb.envLoc, 0)

	gl.BindVertexArray(sb.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, 36)
	gl.BindVertexArray(0)

	gl.DepthMask(true)
	gl.DepthFunc(gl.LESS)
}

// Destroy frees the cube buffers. The program and cubemap belong to the Device.
func (sb *Skybox) Destroy() {
	gl.DeleteVertexArrays(1, &sb.vao)
	gl.DeleteBuffers(1, &sb.vbo)
}
