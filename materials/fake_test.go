package materials

import (
	"errors"
	"fmt"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// fakeBackend hands out sequential handles and records every upload.
type fakeBackend struct {
	next      uint32
	uploads   []string
	cubemaps  [][6]string
	failPaths map[string]bool

	compiled  []fakeProgram
	failLabel string
}

type fakeProgram struct {
	vertex, fragment, label string
	handle                  uint32
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{next: 1, failPaths: map[string]bool{}}
}

func (b *fakeBackend) handle() uint32 {
	h := b.next
	b.next++
	return h
}

func (b *fakeBackend) LoadTexture2D(path string) (uint32, error) {
	b.uploads = append(b.uploads, path)
	if b.failPaths[path] {
		return 0, fmt.Errorf("open %s: no such file", path)
	}
	return b.handle(), nil
}

func (b *fakeBackend) LoadCubemap(faces [6]string) (uint32, error) {
	b.cubemaps = append(b.cubemaps, faces)
	return b.handle(), nil
}

func (b *fakeBackend) CompileProgram(vs, fs, label string) (uint32, error) {
	h := b.handle()
	b.compiled = append(b.compiled, fakeProgram{vs, fs, label, h})
	if label == b.failLabel {
		return h, errors.New("fragment: 0:3: syntax error")
	}
	return h, nil
}

// call is one recorded Pipeline invocation.
type call struct {
	op    string
	name  string // uniform name, resolved through the location table
	value any
}

// fakePipeline resolves uniform names from a per-program declaration list and
// records every state change in order.
type fakePipeline struct {
	declared map[uint32][]string
	names    map[int32]string
	lookups  int
	calls    []call
	program  uint32
	bound    map[uint32]uint32
	blend    BlendState
}

func newFakePipeline() *fakePipeline {
	return &fakePipeline{
		declared: map[uint32][]string{},
		names:    map[int32]string{},
		bound:    map[uint32]uint32{},
	}
}

func (p *fakePipeline) declare(program uint32, uniforms ...string) {
	p.declared[program] = append(p.declared[program], uniforms...)
}

func (p *fakePipeline) UseProgram(program uint32) {
	p.program = program
	p.calls = append(p.calls, call{op: "use", value: program})
}

func (p *fakePipeline) UniformLocation(program uint32, name string) int32 {
	p.lookups++
	for i, n := range p.declared[program] {
		if n == name {
			loc := int32(program)*100 + int32(i)
			p.names[loc] = name
			return loc
		}
	}
	return -1
}

func (p *fakePipeline) record(op string, loc int32, v any) {
	p.calls = append(p.calls, call{op: op, name: p.names[loc], value: v})
}

func (p *fakePipeline) UniformMatrix4(loc int32, m mgl32.Mat4) { p.record("mat4", loc, m) }
func (p *fakePipeline) Uniform1f(loc int32, v float32) { p.record("1f", loc, v) }
func (p *fakePipeline) Uniform1i(loc int32, v int32) { p.record("1i", loc, v) }
func (p *fakePipeline) Uniform2f(loc int32, v mgl32.Vec2) { p.record("2f", loc, v) }
func (p *fakePipeline) Uniform3f(loc int32, v mgl32.Vec3) { p.record("3f", loc, v) }

func (p *fakePipeline) BindTexture(unit uint32, target TextureTarget, handle uint32) {
	p.bound[unit] = handle
	p.calls = append(p.calls, call{op: "bind", name: target.String(), value: [2]uint32{unit, handle}})
}

func (p *fakePipeline) SetBlend(state BlendState) {
	p.blend = state
	p.calls = append(p.calls, call{op: "blend", value: state})
}

// uniform returns the last value written to name.
func (p *fakePipeline) uniform(name string) (any, bool) {
	for i := len(p.calls) - 1; i >= 0; i-- {
		c := p.calls[i]
		if c.name == name && c.op != "bind" {
			return c.value, true
		}
	}
	return nil, false
}

func (p *fakePipeline) reset() { p.calls = nil }

type fakeCamera struct{}

func (fakeCamera) ViewMatrix() mgl32.Mat4 { return mgl32.Translate3D(0, -5, 0) }
func (fakeCamera) ProjectionMatrix(aspect float32) mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(45), aspect, 0.1, 500)
}
func (fakeCamera) Position() mgl32.Vec3 { return mgl32.Vec3{0, 5, 0} }

// memFS serves material and shader sources from memory.
type memFS map[string]string

func (fs memFS) ReadFile(name string) ([]byte, error) {
	s, ok := fs[name]
	if !ok {
		return nil, fmt.Errorf("open %s: file does not exist", name)
	}
	return []byte(s), nil
}

func newObservedLogger(level zapcore.Level) (*zap.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(level)
	return zap.New(core), logs
}

func newTestLoader(t *testing.T, files memFS) (*Loader, *fakeBackend, *observer.ObservedLogs) {
	t.Helper()
	backend := newFakeBackend()
	log, logs := newObservedLogger(zapcore.DebugLevel)
	l := NewLoader(backend, "")
	l.Log = log
	l.Cache.Log = log
	l.ReadFile = files.ReadFile
	return l, backend, logs
}

const testVertexShader = "#version 410 core\nvoid main() {}\n"
const testFragmentShader = "#version 410 core\nout vec4 color;\nvoid main() { color = vec4(1); }\n"

func shaderFiles() memFS {
	return memFS{
		"shaders/rnm.vert": testVertexShader,
		"shaders/rnm.frag": testFragmentShader,
	}
}
