package glr

import "fmt"

// MultisampleTarget is an offscreen color target with as many samples as
// the driver allows. Render into it between Begin and the returned
// scope's Restore, then Resolve it into a single-sampled framebuffer.
type MultisampleTarget struct {
	gl            Context
	color         *Renderbuffer
	fb            *Framebuffer
	samples       int32
	width, height int32
}

// NewMultisampleTarget allocates an RGBA8 target of the given size.
func NewMultisampleTarget(gl Context, width, height int32) (*MultisampleTarget, error) {
	color, err := GenerateRenderbuffer(gl)
	if err != nil {
		return nil, fmt.Errorf("color renderbuffer: %w", err)
	}
	rb := BindRenderbuffer(color)
	samples, err := TryRenderbufferStorageMultisample(gl, RENDERBUFFER, RGBA8, width, height)
	rb.Restore()
	if err != nil {
		color.Delete()
		return nil, err
	}

	fb, err := GenerateFramebuffer(gl)
	if err != nil {
		color.Delete()
		return nil, fmt.Errorf("framebuffer: %w", err)
	}
	bind := NewBinderFramebuffer[DrawFramebuffer](gl)
	bind.Rebind(fb)
	gl.FramebufferRenderbuffer(DRAW_FRAMEBUFFER, COLOR_ATTACHMENT0, RENDERBUFFER, color.id)
	status := gl.CheckFramebufferStatus(DRAW_FRAMEBUFFER)
	bind.Restore()
	if status != FRAMEBUFFER_COMPLETE {
		fb.Delete()
		color.Delete()
		return nil, fmt.Errorf("glr: multisample framebuffer incomplete (status %#x)", status)
	}
	return &MultisampleTarget{gl: gl, color: color, fb: fb, samples: samples, width: width, height: height}, nil
}

// Samples returns the negotiated sample count.
func (t *MultisampleTarget) Samples() int32 { return t.samples }

// Size returns the target size in pixels.
func (t *MultisampleTarget) Size() (width, height int32) { return t.width, t.height }

// Framebuffer returns the framebuffer the target renders into.
func (t *MultisampleTarget) Framebuffer() *Framebuffer { return t.fb }

// TargetScope undoes MultisampleTarget.Begin.
type TargetScope struct {
	viewport *PushViewport
	draw     *BinderDrawFramebuffer
}

// Restore puts back the viewport and the draw framebuffer, in that order.
func (s *TargetScope) Restore() {
	s.viewport.Restore()
	s.draw.Restore()
}

// Begin makes the target the draw framebuffer and sets the viewport to
// cover it.
func (t *MultisampleTarget) Begin() *TargetScope {
	draw := NewBinderFramebuffer[DrawFramebuffer](t.gl)
	draw.Rebind(t.fb)
	vp := PushViewportRect(t.gl, 0, 0, t.width, t.height)
	return &TargetScope{viewport: vp, draw: draw}
}

// Resolve blits the samples into dst, or into the default framebuffer
// when dst is nil. Framebuffer bindings are left as they were.
func (t *MultisampleTarget) Resolve(dst *Framebuffer) {
	read := NewBinderFramebuffer[ReadFramebuffer](t.gl)
	defer read.Restore()
	read.Rebind(t.fb)
	draw := NewBinderFramebuffer[DrawFramebuffer](t.gl)
	defer draw.Restore()
	draw.Rebind(dst)
	t.gl.BlitFramebuffer(0, 0, t.width, t.height, 0, 0, t.width, t.height, COLOR_BUFFER_BIT, NEAREST)
}

// Delete releases the framebuffer and its renderbuffer.
func (t *MultisampleTarget) Delete() {
	t.fb.Delete()
	t.color.Delete()
}
