// Package opengl connects glr and imgui to a desktop OpenGL 4.1 core
// context created with GLFW.
package opengl

import (
	"fmt"
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/go-theft-auto/imgui/glr"
)

// Context is a glr.Context backed by the OpenGL context current on the
// calling thread.
type Context struct{}

var _ glr.Context = (*Context)(nil)

// NewContext loads the OpenGL entry points. A context must be current on
// the calling thread (see glfw.Window.MakeContextCurrent).
func NewContext() (*Context, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("gl init: %w", err)
	}
	return &Context{}, nil
}

// Version returns the GL_VERSION string of the driver.
func (*Context) Version() string {
	return gl.GoStr(gl.GetString(gl.VERSION))
}

// ptr returns a pointer to the first element of a slice, or nil when it
// is empty.
func ptr[T any](s []T) unsafe.Pointer {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Pointer(unsafe.SliceData(s))
}

// cstr returns a NUL terminated copy of s for the C entry points.
func cstr(s string) *uint8 {
	if !strings.HasSuffix(s, "\x00") {
		s += "\x00"
	}
	return gl.Str(s)
}

func (*Context) GetError() uint32 { return gl.GetError() }

func (*Context) GetIntegerv(pname uint32, data []int32) {
	if len(data) == 0 {
		return
	}
	gl.GetIntegerv(pname, &data[0])
}

func (*Context) CreateTexture() glr.TextureID {
	var id uint32
	gl.GenTextures(1, &id)
	return glr.TextureID(id)
}

func (*Context) DeleteTexture(id glr.TextureID) {
	v := uint32(id)
	gl.DeleteTextures(1, &v)
}

func (*Context) CreateBuffer() glr.BufferID {
	var id uint32
	gl.GenBuffers(1, &id)
	return glr.BufferID(id)
}

func (*Context) DeleteBuffer(id glr.BufferID) {
	v := uint32(id)
	gl.DeleteBuffers(1, &v)
}

func (*Context) CreateVertexArray() glr.VertexArrayID {
	var id uint32
	gl.GenVertexArrays(1, &id)
	return glr.VertexArrayID(id)
}

func (*Context) DeleteVertexArray(id glr.VertexArrayID) {
	v := uint32(id)
	gl.DeleteVertexArrays(1, &v)
}

func (*Context) CreateRenderbuffer() glr.RenderbufferID {
	var id uint32
	gl.GenRenderbuffers(1, &id)
	return glr.RenderbufferID(id)
}

func (*Context) DeleteRenderbuffer(id glr.RenderbufferID) {
	v := uint32(id)
	gl.DeleteRenderbuffers(1, &v)
}

func (*Context) CreateFramebuffer() glr.FramebufferID {
	var id uint32
	gl.GenFramebuffers(1, &id)
	return glr.FramebufferID(id)
}

func (*Context) DeleteFramebuffer(id glr.FramebufferID) {
	v := uint32(id)
	gl.DeleteFramebuffers(1, &v)
}

func (*Context) CreateShader(kind uint32) glr.ShaderID {
	return glr.ShaderID(gl.CreateShader(kind))
}

func (*Context) DeleteShader(id glr.ShaderID) { gl.DeleteShader(uint32(id)) }

func (*Context) ShaderSource(id glr.ShaderID, source string) {
	csource, free := gl.Strs(source + "\x00")
	defer free()
	gl.ShaderSource(uint32(id), 1, csource, nil)
}

func (*Context) CompileShader(id glr.ShaderID) { gl.CompileShader(uint32(id)) }

func (*Context) GetShaderCompileStatus(id glr.ShaderID) bool {
	var status int32
	gl.GetShaderiv(uint32(id), gl.COMPILE_STATUS, &status)
	return status == gl.TRUE
}

func (*Context) GetShaderInfoLog(id glr.ShaderID) string {
	var n int32
	gl.GetShaderiv(uint32(id), gl.INFO_LOG_LENGTH, &n)
	if n == 0 {
		return ""
	}
	buf := make([]uint8, n+1)
	gl.GetShaderInfoLog(uint32(id), n, nil, &buf[0])
	return gl.GoStr(&buf[0])
}

func (*Context) CreateProgram() glr.ProgramID { return glr.ProgramID(gl.CreateProgram()) }

func (*Context) DeleteProgram(id glr.ProgramID) { gl.DeleteProgram(uint32(id)) }

func (*Context) AttachShader(p glr.ProgramID, s glr.ShaderID) {
	gl.AttachShader(uint32(p), uint32(s))
}

func (*Context) LinkProgram(p glr.ProgramID) { gl.LinkProgram(uint32(p)) }

func (*Context) GetProgramLinkStatus(p glr.ProgramID) bool {
	var status int32
	gl.GetProgramiv(uint32(p), gl.LINK_STATUS, &status)
	return status == gl.TRUE
}

func (*Context) GetProgramInfoLog(p glr.ProgramID) string {
	var n int32
	gl.GetProgramiv(uint32(p), gl.INFO_LOG_LENGTH, &n)
	if n == 0 {
		return ""
	}
	buf := make([]uint8, n+1)
	gl.GetProgramInfoLog(uint32(p), n, nil, &buf[0])
	return gl.GoStr(&buf[0])
}

func (*Context) UseProgram(p glr.ProgramID) { gl.UseProgram(uint32(p)) }

func (*Context) GetActiveUniforms(p glr.ProgramID) int {
	var n int32
	gl.GetProgramiv(uint32(p), gl.ACTIVE_UNIFORMS, &n)
	return int(n)
}

func (*Context) GetActiveUniform(p glr.ProgramID, index uint32) (glr.ActiveInfo, bool) {
	var maxLen int32
	gl.GetProgramiv(uint32(p), gl.ACTIVE_UNIFORM_MAX_LENGTH, &maxLen)
	return activeInfo(maxLen, func(buf *uint8, length, size *int32, kind *uint32) {
		gl.GetActiveUniform(uint32(p), index, maxLen, length, size, kind, buf)
	})
}

func (*Context) GetUniformLocation(p glr.ProgramID, name string) (glr.UniformLocation, bool) {
	loc := gl.GetUniformLocation(uint32(p), cstr(name))
	return glr.UniformLocation(loc), loc >= 0
}

func (*Context) GetActiveAttributes(p glr.ProgramID) int {
	var n int32
	gl.GetProgramiv(uint32(p), gl.ACTIVE_ATTRIBUTES, &n)
	return int(n)
}

func (*Context) GetActiveAttribute(p glr.ProgramID, index uint32) (glr.ActiveInfo, bool) {
	var maxLen int32
	gl.GetProgramiv(uint32(p), gl.ACTIVE_ATTRIBUTE_MAX_LENGTH, &maxLen)
	return activeInfo(maxLen, func(buf *uint8, length, size *int32, kind *uint32) {
		gl.GetActiveAttrib(uint32(p), index, maxLen, length, size, kind, buf)
	})
}

func activeInfo(maxLen int32, query func(buf *uint8, length, size *int32, kind *uint32)) (glr.ActiveInfo, bool) {
	if maxLen <= 0 {
		return glr.ActiveInfo{}, false
	}
	buf := make([]uint8, maxLen+1)
	var length, size int32
	var kind uint32
	query(&buf[0], &length, &size, &kind)
	if length == 0 {
		return glr.ActiveInfo{}, false
	}
	return glr.ActiveInfo{Name: string(buf[:length]), Size: size, Type: kind}, true
}

func (*Context) GetAttribLocation(p glr.ProgramID, name string) (uint32, bool) {
	loc := gl.GetAttribLocation(uint32(p), cstr(name))
	if loc < 0 {
		return 0, false
	}
	return uint32(loc), true
}

func (*Context) Uniform1f(loc glr.UniformLocation, v float32) { gl.Uniform1f(int32(loc), v) }

func (*Context) Uniform1i(loc glr.UniformLocation, v int32) { gl.Uniform1i(int32(loc), v) }

func (*Context) Uniform1ui(loc glr.UniformLocation, v uint32) { gl.Uniform1ui(int32(loc), v) }

func (*Context) Uniform2f(loc glr.UniformLocation, v0, v1 float32) {
	gl.Uniform2f(int32(loc), v0, v1)
}

func (*Context) Uniform3f(loc glr.UniformLocation, v0, v1, v2 float32) {
	gl.Uniform3f(int32(loc), v0, v1, v2)
}

func (*Context) Uniform4f(loc glr.UniformLocation, v0, v1, v2, v3 float32) {
	gl.Uniform4f(int32(loc), v0, v1, v2, v3)
}

func (*Context) UniformMatrix3fv(loc glr.UniformLocation, transpose bool, m []float32) {
	if len(m) < 9 {
		return
	}
	gl.UniformMatrix3fv(int32(loc), int32(len(m)/9), transpose, &m[0])
}

func (*Context) UniformMatrix4fv(loc glr.UniformLocation, transpose bool, m []float32) {
	if len(m) < 16 {
		return
	}
	gl.UniformMatrix4fv(int32(loc), int32(len(m)/16), transpose, &m[0])
}

func (*Context) EnableVertexAttribArray(index uint32) { gl.EnableVertexAttribArray(index) }

func (*Context) DisableVertexAttribArray(index uint32) { gl.DisableVertexAttribArray(index) }

func (*Context) VertexAttribPointer(index uint32, size int32, kind uint32, normalized bool, stride int32, offset int) {
	gl.VertexAttribPointerWithOffset(index, size, kind, normalized, stride, uintptr(offset))
}

func (*Context) BindBuffer(target uint32, id glr.BufferID) { gl.BindBuffer(target, uint32(id)) }

func (*Context) BufferData(target uint32, data []byte, usage uint32) {
	gl.BufferData(target, len(data), ptr(data), usage)
}

func (*Context) BufferSubData(target uint32, offset int, data []byte) {
	if len(data) == 0 {
		return
	}
	gl.BufferSubData(target, offset, len(data), ptr(data))
}

func (*Context) BindVertexArray(id glr.VertexArrayID) { gl.BindVertexArray(uint32(id)) }

func (*Context) DrawArrays(mode uint32, first, count int32) { gl.DrawArrays(mode, first, count) }

func (*Context) Viewport(x, y, width, height int32) { gl.Viewport(x, y, width, height) }

func (*Context) Scissor(x, y, width, height int32) { gl.Scissor(x, y, width, height) }

func (*Context) Enable(capability uint32) { gl.Enable(capability) }

func (*Context) Disable(capability uint32) { gl.Disable(capability) }

func (*Context) IsEnabled(capability uint32) bool { return gl.IsEnabled(capability) }

func (*Context) BlendEquation(mode uint32) { gl.BlendEquation(mode) }

func (*Context) BlendFuncSeparate(srcRGB, dstRGB, srcAlpha, dstAlpha uint32) {
	gl.BlendFuncSeparate(srcRGB, dstRGB, srcAlpha, dstAlpha)
}

func (*Context) ClearColor(r, g, b, a float32) { gl.ClearColor(r, g, b, a) }

func (*Context) Clear(mask uint32) { gl.Clear(mask) }

func (*Context) ActiveTexture(unit uint32) { gl.ActiveTexture(unit) }

func (*Context) BindTexture(target uint32, id glr.TextureID) { gl.BindTexture(target, uint32(id)) }

func (*Context) TexParameteri(target, pname uint32, param int32) {
	gl.TexParameteri(target, pname, param)
}

func (*Context) TexImage2D(target uint32, level, internalFormat, width, height int32, format, kind uint32, pixels []byte) {
	gl.TexImage2D(target, level, internalFormat, width, height, 0, format, kind, ptr(pixels))
}

func (*Context) PixelStorei(pname uint32, param int32) { gl.PixelStorei(pname, param) }

func (*Context) BindFramebuffer(target uint32, id glr.FramebufferID) {
	gl.BindFramebuffer(target, uint32(id))
}

func (*Context) BindRenderbuffer(target uint32, id glr.RenderbufferID) {
	gl.BindRenderbuffer(target, uint32(id))
}

func (*Context) RenderbufferStorageMultisample(target uint32, samples int32, internalFormat uint32, width, height int32) {
	gl.RenderbufferStorageMultisample(target, samples, internalFormat, width, height)
}

func (*Context) FramebufferRenderbuffer(target, attachment, rbTarget uint32, id glr.RenderbufferID) {
	gl.FramebufferRenderbuffer(target, attachment, rbTarget, uint32(id))
}

func (*Context) CheckFramebufferStatus(target uint32) uint32 {
	return gl.CheckFramebufferStatus(target)
}

func (*Context) BlitFramebuffer(srcX0, srcY0, srcX1, srcY1, dstX0, dstY0, dstX1, dstY1 int32, mask, filter uint32) {
	gl.BlitFramebuffer(srcX0, srcY0, srcX1, srcY1, dstX0, dstY0, dstX1, dstY1, mask, filter)
}

func (*Context) ReadPixels(x, y, width, height int32, format, kind uint32, pixels []byte) {
	gl.ReadPixels(x, y, width, height, format, kind, ptr(pixels))
}
