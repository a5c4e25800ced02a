package glr

// Texture owns a texture object.
type Texture struct {
	gl Context
	id TextureID
}

// GenerateTexture allocates a texture object.
func GenerateTexture(gl Context) (*Texture, error) {
	id := gl.CreateTexture()
	if id == 0 {
		return nil, errorFrom(gl)
	}
	return &Texture{gl: gl, id: id}, nil
}

// ID returns the raw handle.
func (t *Texture) ID() TextureID {
	return t.id
}

// IntoID gives up ownership of the handle. The caller becomes responsible
// for deleting it; Delete on t is a no-op afterwards.
func (t *Texture) IntoID() TextureID {
	id := t.id
	t.id = 0
	return id
}

// Delete releases the texture. Calling it again does nothing.
func (t *Texture) Delete() {
	if t.id != 0 {
		t.gl.DeleteTexture(t.id)
		t.id = 0
	}
}

// Buffer owns a buffer object.
type Buffer struct {
	gl Context
	id BufferID
}

// GenerateBuffer allocates a buffer object.
func GenerateBuffer(gl Context) (*Buffer, error) {
	id := gl.CreateBuffer()
	if id == 0 {
		return nil, errorFrom(gl)
	}
	return &Buffer{gl: gl, id: id}, nil
}

// ID returns the raw handle.
func (b *Buffer) ID() BufferID {
	return b.id
}

// Delete releases the buffer. Calling it again does nothing.
func (b *Buffer) Delete() {
	if b.id != 0 {
		b.gl.DeleteBuffer(b.id)
		b.id = 0
	}
}

// VertexArray owns a vertex array object.
type VertexArray struct {
	gl Context
	id VertexArrayID
}

// GenerateVertexArray allocates a vertex array object.
func GenerateVertexArray(gl Context) (*VertexArray, error) {
	id := gl.CreateVertexArray()
	if id == 0 {
		return nil, errorFrom(gl)
	}
	return &VertexArray{gl: gl, id: id}, nil
}

// ID returns the raw handle.
func (v *VertexArray) ID() VertexArrayID {
	return v.id
}

// Delete releases the vertex array. Calling it again does nothing.
func (v *VertexArray) Delete() {
	if v.id != 0 {
		v.gl.DeleteVertexArray(v.id)
		v.id = 0
	}
}

// Renderbuffer owns a renderbuffer object.
type Renderbuffer struct {
	gl Context
	id RenderbufferID
}

// GenerateRenderbuffer allocates a renderbuffer object.
func GenerateRenderbuffer(gl Context) (*Renderbuffer, error) {
	id := gl.CreateRenderbuffer()
	if id == 0 {
		return nil, errorFrom(gl)
	}
	return &Renderbuffer{gl: gl, id: id}, nil
}

// ID returns the raw handle.
func (r *Renderbuffer) ID() RenderbufferID {
	return r.id
}

// Delete releases the renderbuffer. Calling it again does nothing.
func (r *Renderbuffer) Delete() {
	if r.id != 0 {
		r.gl.DeleteRenderbuffer(r.id)
		r.id = 0
	}
}

// Framebuffer owns a framebuffer object.
type Framebuffer struct {
	gl Context
	id FramebufferID
}

// GenerateFramebuffer allocates a framebuffer object.
func GenerateFramebuffer(gl Context) (*Framebuffer, error) {
	id := gl.CreateFramebuffer()
	if id == 0 {
		return nil, errorFrom(gl)
	}
	return &Framebuffer{gl: gl, id: id}, nil
}

// ID returns the raw handle.
func (f *Framebuffer) ID() FramebufferID {
	return f.id
}

// Delete releases the framebuffer. Calling it again does nothing.
func (f *Framebuffer) Delete() {
	if f.id != 0 {
		f.gl.DeleteFramebuffer(f.id)
		f.id = 0
	}
}

// shader is a compiled stage. It only lives while a Program is linked.
type shader struct {
	gl Context
	id ShaderID
}

func (s *shader) delete() {
	if s.id != 0 {
		s.gl.DeleteShader(s.id)
		s.id = 0
	}
}
