// Package gltest provides an in-memory glr.Context for tests.
//
// Driver records every call and simulates the small part of the GL state
// machine that glr and its callers read back: viewport, scissor,
// bindings, enabled capabilities and attribute slots, buffer contents,
// program reflection and the error queue.
package gltest

import (
	"slices"
	"strings"

	"github.com/go-theft-auto/imgui/glr"
)

// Call is one recorded driver call.
type Call struct {
	Name string
	Args []any
}

// Driver is a recording glr.Context.
type Driver struct {
	// Calls lists every call in issue order.
	Calls []Call

	// Uniforms and Attributes are reported as the active interface of
	// every program that links. Locations are the list indices.
	Uniforms   []glr.ActiveInfo
	Attributes []glr.ActiveInfo
	// Unresolved names resolve to no location.
	Unresolved map[string]bool

	// CompileLog, when set, decides whether a shader compiles: a non-empty
	// result fails the compile with that log. By default a source
	// compiles if it declares main.
	CompileLog func(kind uint32, source string) string
	// LinkLog, when non-empty, fails every link with that log.
	LinkLog string

	// MaxSamples rejects larger multisample counts with INVALID_OPERATION.
	// Zero accepts every count.
	MaxSamples int32
	// FailAlloc makes every Create call return a zero handle and queue
	// OUT_OF_MEMORY.
	FailAlloc bool
	// FramebufferStatus is returned by CheckFramebufferStatus.
	// Zero means FRAMEBUFFER_COMPLETE.
	FramebufferStatus uint32

	ViewportRect    [4]int32
	ScissorBox      [4]int32
	DrawFramebuffer glr.FramebufferID
	ReadFramebuffer glr.FramebufferID
	Renderbuffer    glr.RenderbufferID
	ArrayBuffer     glr.BufferID
	VertexArray     glr.VertexArrayID
	Program         glr.ProgramID
	Texture         glr.TextureID
	ClearRGBA       [4]float32

	// Capabilities and AttribSlots hold what is currently enabled.
	Capabilities map[uint32]bool
	AttribSlots  map[uint32]bool
	// Buffers holds the storage of every buffer by handle.
	Buffers map[glr.BufferID][]byte
	// Live maps every undeleted handle to its object kind.
	Live map[uint32]string

	shaders map[glr.ShaderID]*shaderState
	links   map[glr.ProgramID]bool
	errs    []uint32
	next    uint32
}

type shaderState struct {
	kind     uint32
	source   string
	compiled bool
	log      string
}

// New returns a driver with an 800x600 viewport and nothing bound.
func New() *Driver {
	return &Driver{
		ViewportRect: [4]int32{0, 0, 800, 600},
		Unresolved:   make(map[string]bool),
		Capabilities: make(map[uint32]bool),
		AttribSlots:  make(map[uint32]bool),
		Buffers:      make(map[glr.BufferID][]byte),
		Live:         make(map[uint32]string),
		shaders:      make(map[glr.ShaderID]*shaderState),
		links:        make(map[glr.ProgramID]bool),
	}
}

var _ glr.Context = (*Driver)(nil)

// PushError queues a driver error for the next GetError.
func (d *Driver) PushError(code uint32) {
	d.errs = append(d.errs, code)
}

// Named returns the recorded calls with the given name.
func (d *Driver) Named(name string) []Call {
	var out []Call
	for _, c := range d.Calls {
		if c.Name == name {
			out = append(out, c)
		}
	}
	return out
}

// Names returns the names of all recorded calls.
func (d *Driver) Names() []string {
	out := make([]string, len(d.Calls))
	for i, c := range d.Calls {
		out[i] = c.Name
	}
	return out
}

// Reset forgets the recorded calls but keeps the simulated state.
func (d *Driver) Reset() {
	d.Calls = nil
}

func (d *Driver) record(name string, args ...any) {
	d.Calls = append(d.Calls, Call{Name: name, Args: args})
}

func (d *Driver) alloc(kind string) uint32 {
	if d.FailAlloc {
		d.PushError(glr.OUT_OF_MEMORY)
		return 0
	}
	d.next++
	d.Live[d.next] = kind
	return d.next
}

func (d *Driver) free(id uint32) {
	delete(d.Live, id)
}

func (d *Driver) GetError() uint32 {
	d.record("GetError")
	if len(d.errs) == 0 {
		return glr.NO_ERROR
	}
	code := d.errs[0]
	d.errs = d.errs[1:]
	return code
}

func (d *Driver) GetIntegerv(pname uint32, data []int32) {
	d.record("GetIntegerv", pname)
	switch pname {
	case glr.VIEWPORT:
		copy(data, d.ViewportRect[:])
	case glr.SCISSOR_BOX:
		copy(data, d.ScissorBox[:])
	case glr.DRAW_FRAMEBUFFER_BINDING:
		data[0] = int32(d.DrawFramebuffer)
	case glr.READ_FRAMEBUFFER_BINDING:
		data[0] = int32(d.ReadFramebuffer)
	case glr.RENDERBUFFER_BINDING:
		data[0] = int32(d.Renderbuffer)
	case glr.ARRAY_BUFFER_BINDING:
		data[0] = int32(d.ArrayBuffer)
	case glr.VERTEX_ARRAY_BINDING:
		data[0] = int32(d.VertexArray)
	case glr.CURRENT_PROGRAM:
		data[0] = int32(d.Program)
	case glr.TEXTURE_BINDING_2D:
		data[0] = int32(d.Texture)
	}
}

func (d *Driver) CreateTexture() glr.TextureID {
	d.record("CreateTexture")
	return glr.TextureID(d.alloc("texture"))
}

func (d *Driver) DeleteTexture(id glr.TextureID) {
	d.record("DeleteTexture", id)
	d.free(uint32(id))
}

func (d *Driver) CreateBuffer() glr.BufferID {
	d.record("CreateBuffer")
	return glr.BufferID(d.alloc("buffer"))
}

func (d *Driver) DeleteBuffer(id glr.BufferID) {
	d.record("DeleteBuffer", id)
	delete(d.Buffers, id)
	d.free(uint32(id))
}

func (d *Driver) CreateVertexArray() glr.VertexArrayID {
	d.record("CreateVertexArray")
	return glr.VertexArrayID(d.alloc("vertex array"))
}

func (d *Driver) DeleteVertexArray(id glr.VertexArrayID) {
	d.record("DeleteVertexArray", id)
	d.free(uint32(id))
}

func (d *Driver) CreateRenderbuffer() glr.RenderbufferID {
	d.record("CreateRenderbuffer")
	return glr.RenderbufferID(d.alloc("renderbuffer"))
}

func (d *Driver) DeleteRenderbuffer(id glr.RenderbufferID) {
	d.record("DeleteRenderbuffer", id)
	d.free(uint32(id))
}

func (d *Driver) CreateFramebuffer() glr.FramebufferID {
	d.record("CreateFramebuffer")
	return glr.FramebufferID(d.alloc("framebuffer"))
}

func (d *Driver) DeleteFramebuffer(id glr.FramebufferID) {
	d.record("DeleteFramebuffer", id)
	d.free(uint32(id))
}

func (d *Driver) CreateShader(kind uint32) glr.ShaderID {
	d.record("CreateShader", kind)
	id := glr.ShaderID(d.alloc("shader"))
	if id != 0 {
		d.shaders[id] = &shaderState{kind: kind}
	}
	return id
}

func (d *Driver) DeleteShader(id glr.ShaderID) {
	d.record("DeleteShader", id)
	delete(d.shaders, id)
	d.free(uint32(id))
}

func (d *Driver) ShaderSource(id glr.ShaderID, source string) {
	d.record("ShaderSource", id, source)
	if sh := d.shaders[id]; sh != nil {
		sh.source = source
	}
}

func (d *Driver) CompileShader(id glr.ShaderID) {
	d.record("CompileShader", id)
	sh := d.shaders[id]
	if sh == nil {
		d.PushError(glr.INVALID_VALUE)
		return
	}
	if d.CompileLog != nil {
		sh.log = d.CompileLog(sh.kind, sh.source)
	} else if !strings.Contains(sh.source, "void main") {
		sh.log = "0:1(1): error: no function with name 'main'"
	}
	sh.compiled = sh.log == ""
}

func (d *Driver) GetShaderCompileStatus(id glr.ShaderID) bool {
	d.record("GetShaderCompileStatus", id)
	sh := d.shaders[id]
	return sh != nil && sh.compiled
}

func (d *Driver) GetShaderInfoLog(id glr.ShaderID) string {
	d.record("GetShaderInfoLog", id)
	if sh := d.shaders[id]; sh != nil {
		return sh.log
	}
	return ""
}

func (d *Driver) CreateProgram() glr.ProgramID {
	d.record("CreateProgram")
	return glr.ProgramID(d.alloc("program"))
}

func (d *Driver) DeleteProgram(id glr.ProgramID) {
	d.record("DeleteProgram", id)
	delete(d.links, id)
	d.free(uint32(id))
}

func (d *Driver) AttachShader(p glr.ProgramID, s glr.ShaderID) {
	d.record("AttachShader", p, s)
}

func (d *Driver) LinkProgram(p glr.ProgramID) {
	d.record("LinkProgram", p)
	d.links[p] = d.LinkLog == ""
}

func (d *Driver) GetProgramLinkStatus(p glr.ProgramID) bool {
	d.record("GetProgramLinkStatus", p)
	return d.links[p]
}

func (d *Driver) GetProgramInfoLog(p glr.ProgramID) string {
	d.record("GetProgramInfoLog", p)
	if d.links[p] {
		return ""
	}
	return d.LinkLog
}

func (d *Driver) UseProgram(p glr.ProgramID) {
	d.record("UseProgram", p)
	d.Program = p
}

func (d *Driver) GetActiveUniforms(p glr.ProgramID) int {
	d.record("GetActiveUniforms", p)
	return len(d.Uniforms)
}

func (d *Driver) GetActiveUniform(p glr.ProgramID, index uint32) (glr.ActiveInfo, bool) {
	d.record("GetActiveUniform", p, index)
	if int(index) >= len(d.Uniforms) {
		return glr.ActiveInfo{}, false
	}
	return d.Uniforms[index], true
}

func (d *Driver) GetUniformLocation(p glr.ProgramID, name string) (glr.UniformLocation, bool) {
	d.record("GetUniformLocation", p, name)
	i := slices.IndexFunc(d.Uniforms, func(u glr.ActiveInfo) bool { return u.Name == name })
	if i < 0 || d.Unresolved[name] {
		return -1, false
	}
	return glr.UniformLocation(i), true
}

func (d *Driver) GetActiveAttributes(p glr.ProgramID) int {
	d.record("GetActiveAttributes", p)
	return len(d.Attributes)
}

func (d *Driver) GetActiveAttribute(p glr.ProgramID, index uint32) (glr.ActiveInfo, bool) {
	d.record("GetActiveAttribute", p, index)
	if int(index) >= len(d.Attributes) {
		return glr.ActiveInfo{}, false
	}
	return d.Attributes[index], true
}

func (d *Driver) GetAttribLocation(p glr.ProgramID, name string) (uint32, bool) {
	d.record("GetAttribLocation", p, name)
	i := slices.IndexFunc(d.Attributes, func(a glr.ActiveInfo) bool { return a.Name == name })
	if i < 0 || d.Unresolved[name] {
		return 0, false
	}
	return uint32(i), true
}

func (d *Driver) Uniform1f(loc glr.UniformLocation, v float32) {
	d.record("Uniform1f", loc, v)
}

func (d *Driver) Uniform1i(loc glr.UniformLocation, v int32) {
	d.record("Uniform1i", loc, v)
}

func (d *Driver) Uniform1ui(loc glr.UniformLocation, v uint32) {
	d.record("Uniform1ui", loc, v)
}

func (d *Driver) Uniform2f(loc glr.UniformLocation, v0, v1 float32) {
	d.record("Uniform2f", loc, v0, v1)
}

func (d *Driver) Uniform3f(loc glr.UniformLocation, v0, v1, v2 float32) {
	d.record("Uniform3f", loc, v0, v1, v2)
}

func (d *Driver) Uniform4f(loc glr.UniformLocation, v0, v1, v2, v3 float32) {
	d.record("Uniform4f", loc, v0, v1, v2, v3)
}

func (d *Driver) UniformMatrix3fv(loc glr.UniformLocation, transpose bool, m []float32) {
	d.record("UniformMatrix3fv", loc, transpose, slices.Clone(m))
}

func (d *Driver) UniformMatrix4fv(loc glr.UniformLocation, transpose bool, m []float32) {
	d.record("UniformMatrix4fv", loc, transpose, slices.Clone(m))
}

func (d *Driver) EnableVertexAttribArray(index uint32) {
	d.record("EnableVertexAttribArray", index)
	d.AttribSlots[index] = true
}

func (d *Driver) DisableVertexAttribArray(index uint32) {
	d.record("DisableVertexAttribArray", index)
	delete(d.AttribSlots, index)
}

func (d *Driver) VertexAttribPointer(index uint32, size int32, kind uint32, normalized bool, stride int32, offset int) {
	d.record("VertexAttribPointer", index, size, kind, normalized, stride, offset)
}

func (d *Driver) BindBuffer(target uint32, id glr.BufferID) {
	d.record("BindBuffer", target, id)
	if target == glr.ARRAY_BUFFER {
		d.ArrayBuffer = id
	}
}

func (d *Driver) BufferData(target uint32, data []byte, usage uint32) {
	d.record("BufferData", target, len(data), usage)
	if target == glr.ARRAY_BUFFER && d.ArrayBuffer != 0 {
		d.Buffers[d.ArrayBuffer] = slices.Clone(data)
	}
}

func (d *Driver) BufferSubData(target uint32, offset int, data []byte) {
	d.record("BufferSubData", target, offset, len(data))
	if target != glr.ARRAY_BUFFER || d.ArrayBuffer == 0 {
		return
	}
	buf := d.Buffers[d.ArrayBuffer]
	if offset+len(data) > len(buf) {
		d.PushError(glr.INVALID_VALUE)
		return
	}
	copy(buf[offset:], data)
}

func (d *Driver) BindVertexArray(id glr.VertexArrayID) {
	d.record("BindVertexArray", id)
	d.VertexArray = id
}

func (d *Driver) DrawArrays(mode uint32, first, count int32) {
	d.record("DrawArrays", mode, first, count)
}

func (d *Driver) Viewport(x, y, width, height int32) {
	d.record("Viewport", x, y, width, height)
	d.ViewportRect = [4]int32{x, y, width, height}
}

func (d *Driver) Scissor(x, y, width, height int32) {
	d.record("Scissor", x, y, width, height)
	d.ScissorBox = [4]int32{x, y, width, height}
}

func (d *Driver) Enable(capability uint32) {
	d.record("Enable", capability)
	d.Capabilities[capability] = true
}

func (d *Driver) Disable(capability uint32) {
	d.record("Disable", capability)
	delete(d.Capabilities, capability)
}

func (d *Driver) IsEnabled(capability uint32) bool {
	d.record("IsEnabled", capability)
	return d.Capabilities[capability]
}

func (d *Driver) BlendEquation(mode uint32) {
	d.record("BlendEquation", mode)
}

func (d *Driver) BlendFuncSeparate(srcRGB, dstRGB, srcAlpha, dstAlpha uint32) {
	d.record("BlendFuncSeparate", srcRGB, dstRGB, srcAlpha, dstAlpha)
}

func (d *Driver) ClearColor(r, g, b, a float32) {
	d.record("ClearColor", r, g, b, a)
	d.ClearRGBA = [4]float32{r, g, b, a}
}

func (d *Driver) Clear(mask uint32) {
	d.record("Clear", mask)
}

func (d *Driver) ActiveTexture(unit uint32) {
	d.record("ActiveTexture", unit)
}

func (d *Driver) BindTexture(target uint32, id glr.TextureID) {
	d.record("BindTexture", target, id)
	if target == glr.TEXTURE_2D {
		d.Texture = id
	}
}

func (d *Driver) TexParameteri(target, pname uint32, param int32) {
	d.record("TexParameteri", target, pname, param)
}

func (d *Driver) TexImage2D(target uint32, level, internalFormat, width, height int32, format, kind uint32, pixels []byte) {
	d.record("TexImage2D", target, level, internalFormat, width, height, format, kind, len(pixels))
}

func (d *Driver) PixelStorei(pname uint32, param int32) {
	d.record("PixelStorei", pname, param)
}

func (d *Driver) BindFramebuffer(target uint32, id glr.FramebufferID) {
	d.record("BindFramebuffer", target, id)
	switch target {
	case glr.FRAMEBUFFER:
		d.DrawFramebuffer, d.ReadFramebuffer = id, id
	case glr.DRAW_FRAMEBUFFER:
		d.DrawFramebuffer = id
	case glr.READ_FRAMEBUFFER:
		d.ReadFramebuffer = id
	}
}

func (d *Driver) BindRenderbuffer(target uint32, id glr.RenderbufferID) {
	d.record("BindRenderbuffer", target, id)
	d.Renderbuffer = id
}

func (d *Driver) RenderbufferStorageMultisample(target uint32, samples int32, internalFormat uint32, width, height int32) {
	d.record("RenderbufferStorageMultisample", target, samples, internalFormat, width, height)
	if d.MaxSamples > 0 && samples > d.MaxSamples {
		d.PushError(glr.INVALID_OPERATION)
	}
}

func (d *Driver) FramebufferRenderbuffer(target, attachment, rbTarget uint32, id glr.RenderbufferID) {
	d.record("FramebufferRenderbuffer", target, attachment, rbTarget, id)
}

func (d *Driver) CheckFramebufferStatus(target uint32) uint32 {
	d.record("CheckFramebufferStatus", target)
	if d.FramebufferStatus != 0 {
		return d.FramebufferStatus
	}
	return glr.FRAMEBUFFER_COMPLETE
}

func (d *Driver) BlitFramebuffer(srcX0, srcY0, srcX1, srcY1, dstX0, dstY0, dstX1, dstY1 int32, mask, filter uint32) {
	d.record("BlitFramebuffer", srcX0, srcY0, srcX1, srcY1, dstX0, dstY0, dstX1, dstY1, mask, filter)
}

// ReadPixels fills RGBA/UNSIGNED_BYTE reads with the last clear color.
func (d *Driver) ReadPixels(x, y, width, height int32, format, kind uint32, pixels []byte) {
	d.record("ReadPixels", x, y, width, height, format, kind)
	if format != glr.RGBA || kind != glr.UNSIGNED_BYTE {
		return
	}
	var px [4]byte
	for i, c := range d.ClearRGBA {
		px[i] = byte(min(max(c, 0), 1)*255 + 0.5)
	}
	for i := 0; i+4 <= len(pixels); i += 4 {
		copy(pixels[i:], px[:])
	}
}
