package materials

import "github.com/go-gl/mathgl/mgl32"

// TextureLoader uploads pixel data to the GPU. A failed load still returns
// whatever handle the backend produced (usually 0) together with the error.
type TextureLoader interface {
	LoadTexture2D(path string) (uint32, error)
	LoadCubemap(faces [6]string) (uint32, error)
}

// ShaderCompiler builds a program from GLSL source text. label names the
// program in diagnostics. On failure the returned handle may be unusable but
// is still returned.
type ShaderCompiler interface {
	CompileProgram(vertexSrc, fragmentSrc, label string) (uint32, error)
}

// Backend is everything a Loader needs from the graphics layer at load time.
type Backend interface {
	TextureLoader
	ShaderCompiler
}

// Pipeline is the immediate-mode GPU state touched by Material.Apply.
// All calls mutate global state; nothing is scoped or restored.
type Pipeline interface {
	UseProgram(program uint32)
	// UniformLocation returns -1 when the program has no such active uniform.
	UniformLocation(program uint32, name string) int32

	UniformMatrix4(loc int32, m mgl32.Mat4)
	Uniform1f(loc int32, v float32)
	Uniform1i(loc int32, v int32)
	Uniform2f(loc int32, v mgl32.Vec2)
	Uniform3f(loc int32, v mgl32.Vec3)

	BindTexture(unit uint32, target TextureTarget, handle uint32)
	SetBlend(state BlendState)
}

// Camera supplies the per-draw view state.
type Camera interface {
	ViewMatrix() mgl32.Mat4
	ProjectionMatrix(aspect float32) mgl32.Mat4
	Position() mgl32.Vec3
}
