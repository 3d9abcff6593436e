package renderer

import (
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"lightmap-viewer/core"
	"lightmap-viewer/materials"
	"lightmap-viewer/scene"
)

// Target is the GPU surface a frame is drawn into (*opengl.Device).
type Target interface {
	materials.Pipeline
	Clear(c core.Color)
	SetViewport(width, height int)
}

// Background is drawn after the scene where depth is still at the far plane
// (*opengl.Skybox).
type Background interface {
	Draw(view, proj mgl32.Mat4)
}

// RenderEngine clears the target and draws every mesh of a scene each frame.
type RenderEngine struct {
	target     Target
	ClearColor core.Color
	Background Background

	width, height int

	// Per-frame stats (populated during Render)
	lastMeshes    int
	lastTriangles int
}

func NewRenderEngine(target Target, width, height int) *RenderEngine {
	re := &RenderEngine{target: target, ClearColor: core.ColorBlack}
	re.Resize(width, height)
	return re
}

// Resize updates the viewport when the framebuffer size changed.
func (re *RenderEngine) Resize(width, height int) {
	if width == re.width && height == re.height {
		return
	}
	re.width, re.height = width, height
	re.target.SetViewport(width, height)
}

// Aspect is width over height; 1 while the framebuffer is empty.
func (re *RenderEngine) Aspect() float32 {
	if re.height == 0 {
		return 1
	}
	return float32(re.width) / float32(re.height)
}

// Render draws one frame. Meshes are drawn in scene order, each through its
// own material, with the scene model transform.
func (re *RenderEngine) Render(s *scene.Scene, cam materials.Camera) {
	re.target.Clear(re.ClearColor)
	re.lastMeshes, re.lastTriangles = 0, 0
	if s == nil || re.width == 0 || re.height == 0 {
		return
	}
	s.Draw(re.target, cam, re.Aspect())
	re.lastMeshes, re.lastTriangles = s.Stats()

	if re.Background != nil {
		re.Background.Draw(cam.ViewMatrix(), cam.ProjectionMatrix(re.Aspect()))
	}
}

// DrawStats returns stats from the most recent Render call.
func (re *RenderEngine) DrawStats() (meshes, triangles int) {
	return re.lastMeshes, re.lastTriangles
}

// FrameCounter averages frame rate over fixed reporting windows.
type FrameCounter struct {
	Interval time.Duration

	frames  int
	elapsed time.Duration
}

// Tick adds one frame of length dt. It reports the average FPS once per
// Interval and restarts the window.
func (fc *FrameCounter) Tick(dt time.Duration) (fps float64, ok bool) {
	fc.frames++
	fc.elapsed += dt
	interval := fc.Interval
	if interval <= 0 {
		interval = time.Second
	}
	if fc.elapsed < interval {
		return 0, false
	}
	fps = float64(fc.frames) / fc.elapsed.Seconds()
	fc.frames, fc.elapsed = 0, 0
	return fps, true
}
