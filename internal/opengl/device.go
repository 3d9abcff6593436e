package opengl

import (
	"fmt"

	gl "github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"lightmap-viewer/core"
	"lightmap-viewer/internal/logger"
	"lightmap-viewer/materials"
)

var (
	_ materials.Backend  = (*Device)(nil)
	_ materials.Pipeline = (*Device)(nil)
)

// Device is the OpenGL implementation of the material backend and pipeline.
// Every method must run on the goroutine that owns the current GL context.
type Device struct {
	log      *zap.Logger
	programs []uint32
	textures []uint32
	meshes   map[*GPUMesh]struct{}
}

// NewDevice loads GL entry points for the current context and sets the fixed
// pipeline state the viewer relies on.
func NewDevice(log *zap.Logger) (*Device, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}
	if log == nil {
		log = logger.Log
	}
	log.Info("OpenGL ready",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))))

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.TEXTURE_CUBE_MAP_SEAMLESS)

	return &Device{
		log:    log,
		meshes: make(map[*GPUMesh]struct{}),
	}, nil
}

// SetViewport resizes the GL viewport.
func (d *Device) SetViewport(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

// Clear clears color and depth.
func (d *Device) Clear(c core.Color) {
	gl.ClearColor(c.R, c.G, c.B, c.A)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// Destroy releases every program, texture and mesh created through d.
func (d *Device) Destroy() {
	for m := range d.meshes {
		d.ReleaseMesh(m)
	}
	for _, p := range d.programs {
		gl.DeleteProgram(p)
	}
	if len(d.textures) > 0 {
		gl.DeleteTextures(int32(len(d.textures)), &d.textures[0])
	}
	d.programs = nil
	d.textures = nil
}
