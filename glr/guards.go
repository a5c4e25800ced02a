package glr

// Guards capture a piece of GL state when created and put it back when
// restored. They nest: restore them in reverse order of creation, which
// is what a chain of defers does.

// PushViewport saves the viewport rectangle.
type PushViewport struct {
	gl   Context
	prev [4]int32
	done bool
}

// NewPushViewport captures the current viewport without changing it.
func NewPushViewport(gl Context) *PushViewport {
	pv := &PushViewport{gl: gl}
	gl.GetIntegerv(VIEWPORT, pv.prev[:])
	return pv
}

// PushViewportRect captures the current viewport and sets a new one.
func PushViewportRect(gl Context, x, y, width, height int32) *PushViewport {
	pv := NewPushViewport(gl)
	pv.Viewport(x, y, width, height)
	return pv
}

// Viewport changes the viewport inside the guarded scope.
func (pv *PushViewport) Viewport(x, y, width, height int32) {
	pv.gl.Viewport(x, y, width, height)
}

// Previous returns the captured rectangle as x, y, width, height.
func (pv *PushViewport) Previous() [4]int32 {
	return pv.prev
}

// Restore reapplies the captured viewport.
func (pv *PushViewport) Restore() {
	if pv.done {
		return
	}
	pv.done = true
	pv.gl.Viewport(pv.prev[0], pv.prev[1], pv.prev[2], pv.prev[3])
}

// FramebufferTarget selects the draw or read framebuffer binding point.
type FramebufferTarget interface {
	Target() uint32
	Binding() uint32
}

// DrawFramebuffer is the GL_DRAW_FRAMEBUFFER binding point.
type DrawFramebuffer struct{}

func (DrawFramebuffer) Target() uint32  { return DRAW_FRAMEBUFFER }
func (DrawFramebuffer) Binding() uint32 { return DRAW_FRAMEBUFFER_BINDING }

// ReadFramebuffer is the GL_READ_FRAMEBUFFER binding point.
type ReadFramebuffer struct{}

func (ReadFramebuffer) Target() uint32  { return READ_FRAMEBUFFER }
func (ReadFramebuffer) Binding() uint32 { return READ_FRAMEBUFFER_BINDING }

// BinderFramebuffer restores a framebuffer binding on Restore.
type BinderFramebuffer[T FramebufferTarget] struct {
	gl   Context
	prev FramebufferID
	done bool
}

// BinderDrawFramebuffer guards the draw framebuffer binding.
type BinderDrawFramebuffer = BinderFramebuffer[DrawFramebuffer]

// BinderReadFramebuffer guards the read framebuffer binding.
type BinderReadFramebuffer = BinderFramebuffer[ReadFramebuffer]

// NewBinderFramebuffer captures the framebuffer currently bound to T
// without changing it.
func NewBinderFramebuffer[T FramebufferTarget](gl Context) *BinderFramebuffer[T] {
	var tgt T
	var cur [1]int32
	gl.GetIntegerv(tgt.Binding(), cur[:])
	return &BinderFramebuffer[T]{gl: gl, prev: FramebufferID(cur[0])}
}

// BindFramebuffer binds fb to T. Restore goes back to the default
// framebuffer, not to whatever was bound before.
func BindFramebuffer[T FramebufferTarget](fb *Framebuffer) *BinderFramebuffer[T] {
	b := &BinderFramebuffer[T]{gl: fb.gl}
	b.Rebind(fb)
	return b
}

// Target returns the GL binding point.
func (b *BinderFramebuffer[T]) Target() uint32 {
	var tgt T
	return tgt.Target()
}

// Rebind binds another framebuffer inside the guarded scope. A nil fb
// binds the default framebuffer.
func (b *BinderFramebuffer[T]) Rebind(fb *Framebuffer) {
	var id FramebufferID
	if fb != nil {
		id = fb.id
	}
	b.gl.BindFramebuffer(b.Target(), id)
}

// Restore binds the captured framebuffer again.
func (b *BinderFramebuffer[T]) Restore() {
	if b.done {
		return
	}
	b.done = true
	b.gl.BindFramebuffer(b.Target(), b.prev)
}

// BinderRenderbuffer keeps a renderbuffer bound. Unlike the framebuffer
// binder it does not capture anything: Restore always unbinds.
type BinderRenderbuffer struct {
	gl   Context
	done bool
}

// BindRenderbuffer binds rb to GL_RENDERBUFFER.
func BindRenderbuffer(rb *Renderbuffer) *BinderRenderbuffer {
	b := &BinderRenderbuffer{gl: rb.gl}
	b.Rebind(rb)
	return b
}

// Target returns GL_RENDERBUFFER.
func (b *BinderRenderbuffer) Target() uint32 {
	return RENDERBUFFER
}

// Rebind binds another renderbuffer inside the guarded scope.
func (b *BinderRenderbuffer) Rebind(rb *Renderbuffer) {
	b.gl.BindRenderbuffer(RENDERBUFFER, rb.id)
}

// Restore unbinds the renderbuffer target.
func (b *BinderRenderbuffer) Restore() {
	if b.done {
		return
	}
	b.done = true
	b.gl.BindRenderbuffer(RENDERBUFFER, 0)
}

// PushCapability saves whether a capability (GL_BLEND, GL_SCISSOR_TEST...)
// is enabled and puts it back on Restore.
type PushCapability struct {
	gl         Context
	capability uint32
	was        bool
	done       bool
}

// SetCapability captures the state of capability and then enables or
// disables it.
func SetCapability(gl Context, capability uint32, enable bool) *PushCapability {
	pc := &PushCapability{gl: gl, capability: capability, was: gl.IsEnabled(capability)}
	setCapability(gl, capability, enable)
	return pc
}

// Restore puts the capability back to its captured state.
func (pc *PushCapability) Restore() {
	if pc.done {
		return
	}
	pc.done = true
	setCapability(pc.gl, pc.capability, pc.was)
}

func setCapability(gl Context, capability uint32, enable bool) {
	if enable {
		gl.Enable(capability)
	} else {
		gl.Disable(capability)
	}
}

// vertexAttribEnabler enables one attribute slot until disabled.
type vertexAttribEnabler struct {
	gl    Context
	index uint32
}

func enableVertexAttrib(gl Context, index uint32) vertexAttribEnabler {
	gl.EnableVertexAttribArray(index)
	return vertexAttribEnabler{gl: gl, index: index}
}

func (e vertexAttribEnabler) disable() {
	e.gl.DisableVertexAttribArray(e.index)
}

// inlineEnablers is the number of slots an attribEnablers holds without
// allocating. Most vertex records have fewer fields than this.
const inlineEnablers = 8

// attribEnablers collects the slots enabled for one draw call.
// It is a Binding: Release disables every slot, last enabled first.
type attribEnablers struct {
	inline [inlineEnablers]vertexAttribEnabler
	n      int
	more   []vertexAttribEnabler
}

func (a *attribEnablers) enable(gl Context, index uint32) {
	e := enableVertexAttrib(gl, index)
	if a.n < inlineEnablers {
		a.inline[a.n] = e
		a.n++
		return
	}
	a.more = append(a.more, e)
}

// Len returns the number of enabled slots.
func (a *attribEnablers) Len() int {
	return a.n + len(a.more)
}

// Release disables the slots in reverse order. It may be called once.
func (a *attribEnablers) Release() {
	for i := len(a.more) - 1; i >= 0; i-- {
		a.more[i].disable()
	}
	for i := a.n - 1; i >= 0; i-- {
		a.inline[i].disable()
	}
	a.more = nil
	a.n = 0
}
