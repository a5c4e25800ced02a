package glr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/imgui/glr"
	"github.com/go-theft-auto/imgui/glr/gltest"
)

func TestPushViewportRestoresCapturedRect(t *testing.T) {
	d := gltest.New()
	d.ViewportRect = [4]int32{4, 8, 640, 480}

	vp := glr.PushViewportRect(d, 0, 0, 64, 64)
	assert.Equal(t, [4]int32{0, 0, 64, 64}, d.ViewportRect)
	assert.Equal(t, [4]int32{4, 8, 640, 480}, vp.Previous())

	vp.Viewport(1, 2, 3, 4)
	d.Viewport(9, 9, 9, 9)
	vp.Restore()
	assert.Equal(t, [4]int32{4, 8, 640, 480}, d.ViewportRect)

	d.Reset()
	vp.Restore()
	assert.Empty(t, d.Named("Viewport"), "second Restore must not touch state")
}

func TestNewPushViewportDoesNotChangeState(t *testing.T) {
	d := gltest.New()
	vp := glr.NewPushViewport(d)
	assert.Empty(t, d.Named("Viewport"))
	vp.Restore()
	assert.Equal(t, [4]int32{0, 0, 800, 600}, d.ViewportRect)
}

func TestBinderFramebufferRestoresCaptured(t *testing.T) {
	d := gltest.New()
	d.DrawFramebuffer = 42
	d.ReadFramebuffer = 43
	fb, err := glr.GenerateFramebuffer(d)
	require.NoError(t, err)

	draw := glr.NewBinderFramebuffer[glr.DrawFramebuffer](d)
	assert.Equal(t, uint32(glr.DRAW_FRAMEBUFFER), draw.Target())
	draw.Rebind(fb)
	assert.Equal(t, fb.ID(), d.DrawFramebuffer)

	read := glr.NewBinderFramebuffer[glr.ReadFramebuffer](d)
	read.Rebind(fb)
	read.Rebind(nil)
	assert.Equal(t, glr.FramebufferID(0), d.ReadFramebuffer)

	read.Restore()
	draw.Restore()
	assert.Equal(t, glr.FramebufferID(42), d.DrawFramebuffer)
	assert.Equal(t, glr.FramebufferID(43), d.ReadFramebuffer)
}

func TestBindFramebufferRestoresDefault(t *testing.T) {
	d := gltest.New()
	d.DrawFramebuffer = 42
	fb, err := glr.GenerateFramebuffer(d)
	require.NoError(t, err)

	b := glr.BindFramebuffer[glr.DrawFramebuffer](fb)
	assert.Equal(t, fb.ID(), d.DrawFramebuffer)
	b.Restore()
	assert.Equal(t, glr.FramebufferID(0), d.DrawFramebuffer)
}

func TestBinderRenderbufferUnbinds(t *testing.T) {
	d := gltest.New()
	d.Renderbuffer = 17
	rb, err := glr.GenerateRenderbuffer(d)
	require.NoError(t, err)

	b := glr.BindRenderbuffer(rb)
	assert.Equal(t, uint32(glr.RENDERBUFFER), b.Target())
	assert.Equal(t, rb.ID(), d.Renderbuffer)
	b.Restore()
	assert.Equal(t, glr.RenderbufferID(0), d.Renderbuffer, "renderbuffer binder restores none, not the previous binding")
}

func TestSetCapabilityRestores(t *testing.T) {
	d := gltest.New()
	d.Capabilities[glr.BLEND] = true

	blend := glr.SetCapability(d, glr.BLEND, false)
	scissor := glr.SetCapability(d, glr.SCISSOR_TEST, true)
	assert.False(t, d.Capabilities[glr.BLEND])
	assert.True(t, d.Capabilities[glr.SCISSOR_TEST])

	scissor.Restore()
	blend.Restore()
	assert.True(t, d.Capabilities[glr.BLEND])
	assert.False(t, d.Capabilities[glr.SCISSOR_TEST])
}

func TestNestedGuardsRestoreOnEarlyReturn(t *testing.T) {
	d := gltest.New()
	d.DrawFramebuffer = 5
	fb, err := glr.GenerateFramebuffer(d)
	require.NoError(t, err)

	render := func() error {
		vp := glr.PushViewportRect(d, 0, 0, 32, 32)
		defer vp.Restore()
		bind := glr.NewBinderFramebuffer[glr.DrawFramebuffer](d)
		defer bind.Restore()
		bind.Rebind(fb)
		inner := glr.PushViewportRect(d, 1, 1, 2, 2)
		defer inner.Restore()
		return assert.AnError
	}
	require.Error(t, render())

	assert.Equal(t, [4]int32{0, 0, 800, 600}, d.ViewportRect)
	assert.Equal(t, glr.FramebufferID(5), d.DrawFramebuffer)
}

func TestNestedGuardsRestoreOnPanic(t *testing.T) {
	d := gltest.New()
	assert.Panics(t, func() {
		vp := glr.PushViewportRect(d, 0, 0, 32, 32)
		defer vp.Restore()
		c := glr.SetCapability(d, glr.DEPTH_TEST, true)
		defer c.Restore()
		panic("boom")
	})
	assert.Equal(t, [4]int32{0, 0, 800, 600}, d.ViewportRect)
	assert.False(t, d.Capabilities[glr.DEPTH_TEST])
}
