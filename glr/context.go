// Package glr maps OpenGL programs, buffers and state onto Go values.
//
// Every GPU object is owned by exactly one wrapper and released by its
// Delete method. State changes that must be undone (viewport, framebuffer
// bindings, enabled vertex attribute slots) are expressed as guard values
// whose Restore or Release method is meant to be deferred:
//
//	vp := glr.PushViewportRect(gl, 0, 0, w, h)
//	defer vp.Restore()
//
// Programs reflect their active uniforms and attributes once at link time.
// Uniform values and vertex streams are matched against those catalogs by
// name, using Go struct declarations as the source of truth:
//
//	type sceneUniforms struct {
//		MVP   math32.Matrix4 `glr:"mvp"`
//		Color glr.Rgba       `glr:"color"`
//	}
//
//	type vertex struct {
//		Pos math32.Vector3 `glr:"pos"`
//	}
//
//	prg.Draw(glr.Uniforms(&u), verts, glr.TRIANGLES)
//
// All calls must be made from the goroutine that owns the GL context.
package glr

// Raw driver handles. A zero value never names a live object.
type (
	TextureID      uint32
	BufferID       uint32
	VertexArrayID  uint32
	RenderbufferID uint32
	FramebufferID  uint32
	ShaderID       uint32
	ProgramID      uint32
)

// UniformLocation is a uniform location inside a linked program.
type UniformLocation int32

// ActiveInfo describes one active uniform or attribute as reported by
// the driver.
type ActiveInfo struct {
	Name string
	Size int32
	Type uint32
}

// Context is the device context: the only channel to the graphics driver.
// It is supplied by the caller (see backend/opengl) and shared by every
// wrapper created from it.
//
// Create methods return a zero handle when the driver cannot allocate.
type Context interface {
	GetError() uint32
	GetIntegerv(pname uint32, data []int32)

	CreateTexture() TextureID
	DeleteTexture(id TextureID)
	CreateBuffer() BufferID
	DeleteBuffer(id BufferID)
	CreateVertexArray() VertexArrayID
	DeleteVertexArray(id VertexArrayID)
	CreateRenderbuffer() RenderbufferID
	DeleteRenderbuffer(id RenderbufferID)
	CreateFramebuffer() FramebufferID
	DeleteFramebuffer(id FramebufferID)

	CreateShader(kind uint32) ShaderID
	DeleteShader(id ShaderID)
	ShaderSource(id ShaderID, source string)
	CompileShader(id ShaderID)
	GetShaderCompileStatus(id ShaderID) bool
	GetShaderInfoLog(id ShaderID) string

	CreateProgram() ProgramID
	DeleteProgram(id ProgramID)
	AttachShader(p ProgramID, s ShaderID)
	LinkProgram(p ProgramID)
	GetProgramLinkStatus(p ProgramID) bool
	GetProgramInfoLog(p ProgramID) string
	UseProgram(p ProgramID)

	GetActiveUniforms(p ProgramID) int
	GetActiveUniform(p ProgramID, index uint32) (ActiveInfo, bool)
	GetUniformLocation(p ProgramID, name string) (UniformLocation, bool)
	GetActiveAttributes(p ProgramID) int
	GetActiveAttribute(p ProgramID, index uint32) (ActiveInfo, bool)
	GetAttribLocation(p ProgramID, name string) (uint32, bool)

	Uniform1f(loc UniformLocation, v float32)
	Uniform1i(loc UniformLocation, v int32)
	Uniform1ui(loc UniformLocation, v uint32)
	Uniform2f(loc UniformLocation, v0, v1 float32)
	Uniform3f(loc UniformLocation, v0, v1, v2 float32)
	Uniform4f(loc UniformLocation, v0, v1, v2, v3 float32)
	UniformMatrix3fv(loc UniformLocation, transpose bool, m []float32)
	UniformMatrix4fv(loc UniformLocation, transpose bool, m []float32)

	EnableVertexAttribArray(index uint32)
	DisableVertexAttribArray(index uint32)
	VertexAttribPointer(index uint32, size int32, kind uint32, normalized bool, stride int32, offset int)

	BindBuffer(target uint32, id BufferID)
	BufferData(target uint32, data []byte, usage uint32)
	BufferSubData(target uint32, offset int, data []byte)
	BindVertexArray(id VertexArrayID)
	DrawArrays(mode uint32, first, count int32)

	Viewport(x, y, width, height int32)
	Scissor(x, y, width, height int32)
	Enable(capability uint32)
	Disable(capability uint32)
	IsEnabled(capability uint32) bool
	BlendEquation(mode uint32)
	BlendFuncSeparate(srcRGB, dstRGB, srcAlpha, dstAlpha uint32)
	ClearColor(r, g, b, a float32)
	Clear(mask uint32)

	ActiveTexture(unit uint32)
	BindTexture(target uint32, id TextureID)
	TexParameteri(target, pname uint32, param int32)
	TexImage2D(target uint32, level, internalFormat, width, height int32, format, kind uint32, pixels []byte)
	PixelStorei(pname uint32, param int32)

	BindFramebuffer(target uint32, id FramebufferID)
	BindRenderbuffer(target uint32, id RenderbufferID)
	RenderbufferStorageMultisample(target uint32, samples int32, internalFormat uint32, width, height int32)
	FramebufferRenderbuffer(target, attachment, rbTarget uint32, id RenderbufferID)
	CheckFramebufferStatus(target uint32) uint32
	BlitFramebuffer(srcX0, srcY0, srcX1, srcY1, dstX0, dstY0, dstX1, dstY1 int32, mask, filter uint32)
	ReadPixels(x, y, width, height int32, format, kind uint32, pixels []byte)
}
