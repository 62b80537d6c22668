// Package opengl implements the renderer-facing interfaces (shader sink,
// texture device, mesh device) on an OpenGL 4.1 core context. The context
// is an explicitly owned handle, not ambient global state: create one after
// the window's GL context is current and pass its parts to the scene core.
package opengl

import (
	"fmt"

	gl "github.com/go-gl/gl/v4.1-core/gl"

	"desk-scene/core"
	"desk-scene/render"
)

// Context owns the GL state this renderer uses: the shader program and the
// texture and mesh devices. Must be created and used on the GL thread.
type Context struct {
	program  *Program
	textures *TextureDevice
	meshes   *MeshDevice
	log      core.Logger
}

// NewContext initializes OpenGL, compiles and links the scene shader, and
// enables depth testing. The GLFW window context must already be current.
func NewContext(log core.Logger) (*Context, error) {
	if log == nil {
		log = core.NewNopLogger()
	}
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}
	log.Infof("OpenGL version: %s", gl.GoStr(gl.GetString(gl.VERSION)))

	prog, err := newProgram(vertSrc, fragSrc)
	if err != nil {
		return nil, fmt.Errorf("scene shader: %w", err)
	}

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)

	return &Context{
		program:  newParams(prog, log),
		textures: &TextureDevice{},
		meshes:   newMeshDevice(),
		log:      log,
	}, nil
}

// Params returns the shader-parameter sink bound to the scene program.
func (c *Context) Params() render.ShaderParams { return c.program }

// Textures returns the GPU texture device.
func (c *Context) Textures() *TextureDevice { return c.textures }

// Meshes returns the GPU mesh device.
func (c *Context) Meshes() *MeshDevice { return c.meshes }

// SetViewport resizes the GL viewport.
func (c *Context) SetViewport(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

// BeginFrame clears the framebuffer to the given color and activates the
// scene program for the uniform writes that follow.
func (c *Context) BeginFrame(clear core.Color) {
	gl.ClearColor(clear.R, clear.G, clear.B, clear.A)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	gl.UseProgram(c.program.id)
}

// Destroy releases the GL objects the context owns.
func (c *Context) Destroy() {
	c.meshes.ReleaseAll()
	gl.DeleteProgram(c.program.id)
}
