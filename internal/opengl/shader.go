package opengl

import (
	"errors"
	"fmt"
	"strings"

	gl "github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"
)

// CompileProgram compiles and links a program, logging each failing stage
// with its info log. The program object is returned even when a stage fails.
func (d *Device) CompileProgram(vertexSrc, fragmentSrc, label string) (uint32, error) {
	log := d.log.With(zap.String("material", label))

	var errs []error
	prog := gl.CreateProgram()
	d.programs = append(d.programs, prog)

	for _, st := range []struct {
		name string
		kind uint32
		src  string
	}{
		{"vertex", gl.VERTEX_SHADER, vertexSrc},
		{"fragment", gl.FRAGMENT_SHADER, fragmentSrc},
	} {
		shader, err := compileShader(st.src, st.kind)
		if err != nil {
			log.Error("shader compile failed", zap.String("stage", st.name), zap.Error(err))
			errs = append(errs, fmt.Errorf("%s: %w", st.name, err))
		}
		gl.AttachShader(prog, shader)
		// Flagged for deletion; freed with the program.
		gl.DeleteShader(shader)
	}

	if err := linkProgram(prog); err != nil {
		log.Error("program link failed", zap.String("stage", "link"), zap.Error(err))
		errs = append(errs, fmt.Errorf("link: %w", err))
	}
	if len(errs) > 0 {
		return prog, errors.Join(errs...)
	}
	log.Debug("program linked", zap.Uint32("program", prog))
	return prog, nil
}

func compileShader(src string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csrc, free := gl.Strs(src + "\x00")
	gl.ShaderSource(shader, 1, csrc, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen+1))
		gl.GetShaderInfoLog(shader, logLen, nil, gl.Str(log))
		return shader, fmt.Errorf("compile failed: %v", strings.TrimRight(log, "\x00"))
	}
	return shader, nil
}

func linkProgram(prog uint32) error {
	gl.LinkProgram(prog)

	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen+1))
		gl.GetProgramInfoLog(prog, logLen, nil, gl.Str(log))
		return fmt.Errorf("link failed: %v", strings.TrimRight(log, "\x00"))
	}
	return nil
}
