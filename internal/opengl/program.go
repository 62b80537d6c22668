package opengl

import (
	"fmt"
	"strings"

	gl "github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"desk-scene/core"
)

// Program wraps a linked GL program as a render.ShaderParams sink with a
// uniform-location cache. Uniform names missing from the program resolve to
// location -1, which GL ignores; the first miss per name is logged once.
type Program struct {
	id     uint32
	log    core.Logger
	locs   map[string]int32
	warned map[string]bool
}

func newParams(id uint32, log core.Logger) *Program {
	return &Program{
		id:     id,
		log:    log,
		locs:   make(map[string]int32),
		warned: make(map[string]bool),
	}
}

func (p *Program) loc(name string) int32 {
	if l, ok := p.locs[name]; ok {
		return l
	}
	l := gl.GetUniformLocation(p.id, gl.Str(name+"\x00"))
	p.locs[name] = l
	if l < 0 && !p.warned[name] {
		p.warned[name] = true
		p.log.Debugf("uniform %q not found in program", name)
	}
	return l
}

func (p *Program) SetMat4Value(name string, value mgl32.Mat4) {
	gl.UseProgram(p.id)
	gl.UniformMatrix4fv(p.loc(name), 1, false, &value[0])
}

func (p *Program) SetVec4Value(name string, value mgl32.Vec4) {
	gl.UseProgram(p.id)
	gl.Uniform4f(p.loc(name), value.X(), value.Y(), value.Z(), value.W())
}

func (p *Program) SetVec3Value(name string, value mgl32.Vec3) {
	gl.UseProgram(p.id)
	gl.Uniform3f(p.loc(name), value.X(), value.Y(), value.Z())
}

func (p *Program) SetVec2Value(name string, value mgl32.Vec2) {
	gl.UseProgram(p.id)
	gl.Uniform2f(p.loc(name), value.X(), value.Y())
}

func (p *Program) SetFloatValue(name string, value float32) {
	gl.UseProgram(p.id)
	gl.Uniform1f(p.loc(name), value)
}

func (p *Program) SetIntValue(name string, value int32) {
	gl.UseProgram(p.id)
	gl.Uniform1i(p.loc(name), value)
}

func (p *Program) SetBoolValue(name string, value bool) {
	v := int32(0)
	if value {
		v = 1
	}
	p.SetIntValue(name, v)
}

func (p *Program) SetSampler2DValue(name string, unit int32) {
	p.SetIntValue(name, unit)
}

func newProgram(vertSrc, fragSrc string) (uint32, error) {
	vert, err := compileShader(vertSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, fmt.Errorf("vertex: %w", err)
	}
	frag, err := compileShader(fragSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, fmt.Errorf("fragment: %w", err)
	}

	prog := gl.CreateProgram()
	gl.AttachShader(prog, vert)
	gl.AttachShader(prog, frag)
	gl.LinkProgram(prog)

	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen+1))
		gl.GetProgramInfoLog(prog, logLen, nil, gl.Str(log))
		return 0, fmt.Errorf("link failed: %v", log)
	}

	gl.DeleteShader(vert)
	gl.DeleteShader(frag)
	return prog, nil
}

func compileShader(src string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csrc, free := gl.Strs(src)
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
		return 0, fmt.Errorf("compile failed: %v", log)
	}
	return shader, nil
}
