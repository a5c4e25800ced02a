package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/imgui"
)

// GLFWAdapter feeds window size and mouse input from a GLFW window into
// an imgui.Context.
type GLFWAdapter struct {
	window *glfw.Window
	ctx    *imgui.Context
}

// NewGLFWAdapter installs the window's mouse callbacks. Callbacks set
// earlier on the window are replaced.
func NewGLFWAdapter(window *glfw.Window, ctx *imgui.Context) *GLFWAdapter {
	a := &GLFWAdapter{window: window, ctx: ctx}

	window.SetMouseButtonCallback(a.mouseButtonCallback)
	window.SetScrollCallback(a.scrollCallback)
	window.SetCursorPosCallback(a.cursorPosCallback)
	window.SetCursorEnterCallback(a.cursorEnterCallback)

	a.NewFrame()
	return a
}

// NewFrame updates the display size and framebuffer scale. Call it once
// per frame after polling events and before Context.DoFrame.
func (a *GLFWAdapter) NewFrame() {
	w, h := a.window.GetSize()
	fbw, _ := a.window.GetFramebufferSize()
	scale := float32(1)
	if w > 0 {
		scale = float32(fbw) / float32(w)
	}
	a.ctx.SetSize(imgui.V2(float32(w), float32(h)), scale)
}

// FramebufferSize returns the framebuffer size in pixels.
func (a *GLFWAdapter) FramebufferSize() (width, height int32) {
	w, h := a.window.GetFramebufferSize()
	return int32(w), int32(h)
}

func (a *GLFWAdapter) mouseButtonCallback(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	guiButton := glfwMouseButtonToGUI(button)
	if guiButton < 0 {
		return
	}

	switch action {
	case glfw.Press:
		a.ctx.Input().SetMouseButton(guiButton, true)
	case glfw.Release:
		a.ctx.Input().SetMouseButton(guiButton, false)
	}
}

func (a *GLFWAdapter) scrollCallback(w *glfw.Window, xoff, yoff float64) {
	a.ctx.Input().AddMouseWheel(float32(xoff), float32(yoff))
}

// GLFW reports the cursor in screen coordinates, which are display units.
func (a *GLFWAdapter) cursorPosCallback(w *glfw.Window, xpos, ypos float64) {
	a.ctx.Input().SetMousePos(imgui.V2(float32(xpos), float32(ypos)))
}

func (a *GLFWAdapter) cursorEnterCallback(w *glfw.Window, entered bool) {
	if !entered {
		a.ctx.Input().ClearMousePos()
	}
}

// glfwMouseButtonToGUI maps GLFW mouse buttons to GUI mouse buttons.
func glfwMouseButtonToGUI(button glfw.MouseButton) imgui.MouseButton {
	switch button {
	case glfw.MouseButtonLeft:
		return imgui.MouseButtonLeft
	case glfw.MouseButtonRight:
		return imgui.MouseButtonRight
	case glfw.MouseButtonMiddle:
		return imgui.MouseButtonMiddle
	default:
		return -1
	}
}
