/*
Package imgui provides an immediate-mode GUI modeled on Dear ImGui: the
interface is rebuilt every frame from plain Go code, and each frame ends
as a list of draw commands for a renderer.

# Overview

A Context owns fonts, windows and input. Each frame runs through
DoFrame, which takes two functions: one records the interface through a
Frame, the other receives the resulting DrawData.

	ctx := imgui.New(imgui.WithFont(imgui.DefaultFont(15)))
	r, err := renderer.New(gl, ctx)

	for !window.ShouldClose() {
	    ctx.SetSize(displaySize, framebufferScale)
	    if changed, err := ctx.UpdateAtlas(); err == nil && changed {
	        r.UpdateAtlas(ctx.Atlas())
	    }

	    ctx.DoFrame(func(f *imgui.Frame) {
	        f.SetNextWindowPos(imgui.V2(20, 20), imgui.CondFirstUseEver, imgui.Vec2{})
	        f.WithWindow("Stats", nil, imgui.WindowFlagsNone, func(f *imgui.Frame) {
	            f.TextUnformatted("Hello World")
	        })
	    }, r.Render)

	    window.SwapBuffers()
	}

# Fonts

Fonts are rasterized into a single-channel atlas with golang.org/x/image.
AddFont registers a font, MergeFont adds glyphs from another font to the
most recent one, and FontInfo.CharRange selects extra runes. The atlas is
rebuilt by UpdateAtlas when fonts or the framebuffer scale change; the
renderer then uploads the new pixels.

# Draw lists

Every window, plus a background and a foreground layer, records into a
DrawList. Indices are 16-bit and relative to their command's
VertexOffset. Commands change with the clip rectangle and texture. A
command may instead carry a CallbackToken: renderers call
DrawData.Invoke for it at that point of the frame. Tokens run at most
once and expire when the next frame starts.

# Coordinates

Positions are in display units with the origin at the top-left corner.
DrawData.FramebufferScale converts them to framebuffer pixels.
*/
package imgui
