package imgui_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/imgui"
)

func frame(ctx *imgui.Context, ui func(f *imgui.Frame)) {
	ctx.DoFrame(ui, nil)
}

func TestDoFrameListOrder(t *testing.T) {
	ctx := imgui.New()
	var a, b *imgui.DrawList
	ui := func(f *imgui.Frame) {
		f.WithWindow("A", nil, imgui.WindowFlagsNone, func(f *imgui.Frame) { a = f.WindowDrawList() })
		f.WithWindow("B", nil, imgui.WindowFlagsNone, func(f *imgui.Frame) { b = f.WindowDrawList() })
	}

	ctx.DoFrame(ui, func(dd *imgui.DrawData) {
		require.Len(t, dd.Lists, 4)
		assert.Same(t, a, dd.Lists[1])
		assert.Same(t, b, dd.Lists[2])
		assert.Equal(t, imgui.V2(800, 600), dd.DisplaySize)
		assert.Equal(t, imgui.V2(1, 1), dd.FramebufferScale)
	})

	ctx.DoFrame(func(f *imgui.Frame) {
		f.SetNextWindowFocus()
		f.WithWindow("A", nil, imgui.WindowFlagsNone, func(f *imgui.Frame) { a = f.WindowDrawList() })
		f.WithWindow("B", nil, imgui.WindowFlagsNone, func(f *imgui.Frame) { b = f.WindowDrawList() })
	}, func(dd *imgui.DrawData) {
		require.Len(t, dd.Lists, 4)
		assert.Same(t, b, dd.Lists[1])
		assert.Same(t, a, dd.Lists[2], "focused windows are drawn last")
	})
}

func TestDoFrameReusesListSlice(t *testing.T) {
	ctx := imgui.New()
	ui := func(f *imgui.Frame) {
		f.WithWindow("A", nil, imgui.WindowFlagsNone, nil)
	}
	var first **imgui.DrawList
	ctx.DoFrame(ui, func(dd *imgui.DrawData) { first = &dd.Lists[0] })
	ctx.DoFrame(ui, func(dd *imgui.DrawData) {
		require.Len(t, dd.Lists, 3)
		assert.Same(t, first, &dd.Lists[0])
	})
}

func TestDoFrameRejectsNesting(t *testing.T) {
	ctx := imgui.New()
	assert.Panics(t, func() {
		ctx.DoFrame(func(f *imgui.Frame) {
			ctx.DoFrame(nil, nil)
		}, nil)
	})
	assert.NotPanics(t, func() { frame(ctx, nil) }, "the context recovers after a panicking frame")
}

func TestImplicitWindow(t *testing.T) {
	ctx := imgui.New()
	ctx.DoFrame(func(f *imgui.Frame) {
		f.TextUnformatted("outside")
	}, func(dd *imgui.DrawData) {
		require.Len(t, dd.Lists, 3)
		assert.NotEmpty(t, dd.Lists[1].CmdBuffer)
	})
	ctx.DoFrame(nil, func(dd *imgui.DrawData) {
		assert.Len(t, dd.Lists, 2, "no content, no implicit window")
	})
}

func TestSetNextWindowPosConditions(t *testing.T) {
	ctx := imgui.New()
	var pos imgui.Vec2
	show := func(cond imgui.Cond, at imgui.Vec2) {
		frame(ctx, func(f *imgui.Frame) {
			f.SetNextWindowPos(at, cond, imgui.Vec2{})
			f.WithWindow("W", nil, imgui.WindowFlagsNone, func(f *imgui.Frame) { pos = f.WindowPos() })
		})
	}

	show(imgui.CondFirstUseEver, imgui.V2(10, 10))
	assert.Equal(t, imgui.V2(10, 10), pos)
	show(imgui.CondFirstUseEver, imgui.V2(20, 20))
	assert.Equal(t, imgui.V2(10, 10), pos, "only on creation")

	show(imgui.CondOnce, imgui.V2(30, 30))
	assert.Equal(t, imgui.V2(10, 10), pos, "the first placement used up CondOnce")

	show(imgui.CondAlways, imgui.V2(50, 50))
	assert.Equal(t, imgui.V2(50, 50), pos)
	show(0, imgui.V2(60, 60))
	assert.Equal(t, imgui.V2(60, 60), pos, "zero means always")

	show(imgui.CondAppearing, imgui.V2(70, 70))
	assert.Equal(t, imgui.V2(60, 60), pos, "already visible")
	frame(ctx, nil)
	show(imgui.CondAppearing, imgui.V2(70, 70))
	assert.Equal(t, imgui.V2(70, 70), pos, "reappearing after a hidden frame")
}

func TestSetNextWindowPosOnce(t *testing.T) {
	ctx := imgui.New()
	var pos imgui.Vec2
	show := func(cond imgui.Cond, at imgui.Vec2) {
		frame(ctx, func(f *imgui.Frame) {
			f.SetNextWindowPos(at, cond, imgui.Vec2{})
			f.WithWindow("O", nil, imgui.WindowFlagsNone, func(f *imgui.Frame) { pos = f.WindowPos() })
		})
	}

	show(imgui.CondOnce, imgui.V2(30, 30))
	assert.Equal(t, imgui.V2(30, 30), pos)
	show(imgui.CondOnce, imgui.V2(40, 40))
	assert.Equal(t, imgui.V2(30, 30), pos, "only the first time")
	show(imgui.CondAlways, imgui.V2(50, 50))
	assert.Equal(t, imgui.V2(50, 50), pos, "CondAlways is never used up")
}

func TestSetNextWindowPosPivot(t *testing.T) {
	ctx := imgui.New()
	var pos, size imgui.Vec2
	frame(ctx, func(f *imgui.Frame) {
		f.SetNextWindowSize(imgui.V2(200, 100), imgui.CondAlways)
		f.SetNextWindowPos(imgui.V2(400, 300), imgui.CondAlways, imgui.V2(0.5, 0.5))
		f.WithWindow("Centered", nil, imgui.WindowFlagsNone, func(f *imgui.Frame) {
			pos, size = f.WindowPos(), f.WindowSize()
		})
	})
	assert.Equal(t, imgui.V2(300, 250), pos)
	assert.Equal(t, imgui.V2(200, 100), size)
}

func TestSizeConstraints(t *testing.T) {
	ctx := imgui.New()
	var size imgui.Vec2
	frame(ctx, func(f *imgui.Frame) {
		f.SetNextWindowSize(imgui.V2(500, 500), imgui.CondAlways)
		f.SetNextWindowSizeConstraints(imgui.V2(100, -1), imgui.V2(300, -1))
		f.WithWindow("W", nil, imgui.WindowFlagsNone, func(f *imgui.Frame) { size = f.WindowSize() })
	})
	assert.Equal(t, imgui.V2(300, 500), size, "negative bounds leave the axis alone")

	var seen imgui.SizeCallbackData
	frame(ctx, func(f *imgui.Frame) {
		f.SetNextWindowSize(imgui.V2(250, 130), imgui.CondAlways)
		f.SetNextWindowSizeConstraintsCallback(imgui.V2(0, 0), imgui.V2(1000, 1000), func(d *imgui.SizeCallbackData) {
			seen = *d
			step := float32(64)
			d.SetDesiredSize(imgui.V2(float32(int(d.DesiredSize().X/step))*step, float32(int(d.DesiredSize().Y/step))*step))
		})
		f.WithWindow("W", nil, imgui.WindowFlagsNone, func(f *imgui.Frame) { size = f.WindowSize() })
	})
	assert.Equal(t, imgui.V2(300, 500), seen.CurrentSize())
	assert.Equal(t, imgui.V2(250, 130), seen.DesiredSize())
	assert.Equal(t, imgui.V2(192, 128), size)
}

func TestAutoFitToContent(t *testing.T) {
	ctx := imgui.New()
	var size imgui.Vec2
	ui := func(f *imgui.Frame) {
		f.WithWindow("Fit", nil, imgui.WindowFlagsNoTitleBar, func(f *imgui.Frame) {
			f.Dummy(imgui.V2(100, 50))
			size = f.WindowSize()
		})
	}
	frame(ctx, ui)
	frame(ctx, ui)
	assert.Equal(t, imgui.V2(116, 66), size)

	var explicit imgui.Vec2
	frame(ctx, func(f *imgui.Frame) {
		f.SetNextWindowContentSize(imgui.V2(300, 0))
		f.WithWindow("Fit", nil, imgui.WindowFlagsNoTitleBar, func(f *imgui.Frame) {
			f.Dummy(imgui.V2(100, 50))
			explicit = f.WindowSize()
		})
	})
	assert.Equal(t, imgui.V2(316, 66), explicit)
}

func TestCollapsedAndClosedWindowsSkipContent(t *testing.T) {
	ctx := imgui.New()
	ran := false
	frame(ctx, func(f *imgui.Frame) {
		f.SetNextWindowCollapsed(true, imgui.CondAlways)
		f.WithWindow("C", nil, imgui.WindowFlagsNone, func(*imgui.Frame) { ran = true })
	})
	assert.False(t, ran)

	open := false
	ctx.DoFrame(func(f *imgui.Frame) {
		f.WithWindow("Closed", &open, imgui.WindowFlagsNone, func(*imgui.Frame) { ran = true })
	}, func(dd *imgui.DrawData) {
		assert.Len(t, dd.Lists, 2)
	})
	assert.False(t, ran)
}

func TestCloseButton(t *testing.T) {
	ctx := imgui.New()
	open := true
	ui := func(f *imgui.Frame) {
		f.SetNextWindowPos(imgui.V2(0, 0), imgui.CondFirstUseEver, imgui.Vec2{})
		f.SetNextWindowSize(imgui.V2(200, 100), imgui.CondFirstUseEver)
		f.WithWindow("Closable", &open, imgui.WindowFlagsNone, nil)
	}
	frame(ctx, ui)
	assert.True(t, open)

	ctx.Input().SetMousePos(imgui.V2(195, 5))
	ctx.Input().SetMouseButton(imgui.MouseButtonLeft, true)
	frame(ctx, ui)
	assert.False(t, open)
	assert.True(t, ctx.WantCaptureMouse())
	assert.False(t, ctx.Input().MouseClicked(imgui.MouseButtonLeft), "edges last one frame")
}

func TestTitleBarDrag(t *testing.T) {
	ctx := imgui.New()
	var pos imgui.Vec2
	ui := func(f *imgui.Frame) {
		f.SetNextWindowPos(imgui.V2(10, 10), imgui.CondFirstUseEver, imgui.Vec2{})
		f.SetNextWindowSize(imgui.V2(200, 100), imgui.CondFirstUseEver)
		f.WithWindow("Drag me", nil, imgui.WindowFlagsNone, func(f *imgui.Frame) { pos = f.WindowPos() })
	}
	frame(ctx, ui)

	in := ctx.Input()
	in.SetMousePos(imgui.V2(50, 15))
	in.SetMouseButton(imgui.MouseButtonLeft, true)
	frame(ctx, ui)
	assert.Equal(t, imgui.V2(10, 10), pos)

	in.SetMousePos(imgui.V2(80, 45))
	frame(ctx, ui)
	assert.Equal(t, imgui.V2(40, 40), pos)

	in.SetMouseButton(imgui.MouseButtonLeft, false)
	in.SetMousePos(imgui.V2(500, 500))
	frame(ctx, ui)
	assert.Equal(t, imgui.V2(40, 40), pos)
	assert.False(t, ctx.WantCaptureMouse())
}

func TestNoMoveWindowIgnoresDrag(t *testing.T) {
	ctx := imgui.New()
	var pos imgui.Vec2
	ui := func(f *imgui.Frame) {
		f.SetNextWindowPos(imgui.V2(10, 10), imgui.CondFirstUseEver, imgui.Vec2{})
		f.SetNextWindowSize(imgui.V2(200, 100), imgui.CondFirstUseEver)
		f.WithWindow("Pinned", nil, imgui.WindowFlagsNoMove, func(f *imgui.Frame) { pos = f.WindowPos() })
	}
	frame(ctx, ui)
	ctx.Input().SetMousePos(imgui.V2(50, 15))
	ctx.Input().SetMouseButton(imgui.MouseButtonLeft, true)
	frame(ctx, ui)
	ctx.Input().SetMousePos(imgui.V2(80, 45))
	frame(ctx, ui)
	assert.Equal(t, imgui.V2(10, 10), pos)
}

func TestWithGroup(t *testing.T) {
	ctx := imgui.New()
	var start, after imgui.Vec2
	frame(ctx, func(f *imgui.Frame) {
		f.WithWindow("G", nil, imgui.WindowFlagsNone, func(f *imgui.Frame) {
			start = f.CursorScreenPos()
			f.WithGroup(func(f *imgui.Frame) {
				f.Dummy(imgui.V2(30, 10))
				f.Dummy(imgui.V2(50, 10))
			})
			after = f.CursorScreenPos()
		})
	})
	assert.Equal(t, start.X, after.X)
	assert.Equal(t, start.Y+10+4+10+4, after.Y)
}

func TestWithChild(t *testing.T) {
	ctx := imgui.New()
	var parentList, childList *imgui.DrawList
	var parentCursor, childCursor, after imgui.Vec2
	var clip imgui.Rect
	frame(ctx, func(f *imgui.Frame) {
		f.SetNextWindowPos(imgui.V2(0, 0), imgui.CondAlways, imgui.Vec2{})
		f.SetNextWindowSize(imgui.V2(300, 300), imgui.CondAlways)
		f.WithWindow("Parent", nil, imgui.WindowFlagsNoTitleBar, func(f *imgui.Frame) {
			parentList = f.WindowDrawList()
			parentCursor = f.CursorScreenPos()
			f.WithChild("child", imgui.V2(100, 80), true, imgui.WindowFlagsNone, func(f *imgui.Frame) {
				childList = f.WindowDrawList()
				childCursor = f.CursorScreenPos()
				clip = f.WindowDrawList().ClipRect()
			})
			after = f.CursorScreenPos()
		})
	})
	assert.Same(t, parentList, childList)
	assert.Equal(t, parentCursor.Add(imgui.V2(8, 8)), childCursor)
	assert.Equal(t, imgui.Rect{Min: parentCursor, Max: parentCursor.Add(imgui.V2(100, 80))}, clip)
	assert.Equal(t, parentCursor.Y+80+4, after.Y)
}

func TestWithFont(t *testing.T) {
	ctx := imgui.New()
	small := ctx.AddFont(imgui.DefaultFont(13))
	big := ctx.AddFont(imgui.DefaultFont(20))
	assert.Equal(t, imgui.FontID(0), small)

	var sizes []float32
	frame(ctx, func(f *imgui.Frame) {
		sizes = append(sizes, f.FontSize())
		f.WithFont(big, func(f *imgui.Frame) {
			sizes = append(sizes, f.FontSize())
		})
		f.WithFont(42, func(f *imgui.Frame) {
			sizes = append(sizes, f.FontSize())
		})
		sizes = append(sizes, f.FontSize())
	})
	assert.Equal(t, []float32{13, 20, 13, 13}, sizes)
}

func TestMouseWheelScrollsHoveredWindow(t *testing.T) {
	ctx := imgui.New()
	var cursor imgui.Vec2
	ui := func(f *imgui.Frame) {
		f.SetNextWindowPos(imgui.V2(0, 0), imgui.CondAlways, imgui.Vec2{})
		f.SetNextWindowSize(imgui.V2(200, 100), imgui.CondAlways)
		f.WithWindow("Scroll", nil, imgui.WindowFlagsNoTitleBar, func(f *imgui.Frame) {
			cursor = f.CursorScreenPos()
			f.Dummy(imgui.V2(10, 1000))
		})
	}
	frame(ctx, ui)
	assert.Equal(t, imgui.V2(8, 8), cursor)

	ctx.Input().SetMousePos(imgui.V2(50, 50))
	ctx.Input().AddMouseWheel(0, -1)
	frame(ctx, ui)
	assert.Less(t, cursor.Y, float32(8))

	ctx.Input().AddMouseWheel(0, -1000)
	frame(ctx, ui)
	assert.Equal(t, float32(8-(1016-100)), cursor.Y, "scrolling stops at the end of the content")
}

func TestSetNextWindowBgAlpha(t *testing.T) {
	ctx := imgui.New()
	ctx.DoFrame(func(f *imgui.Frame) {
		f.SetNextWindowBgAlpha(0.5)
		f.WithWindow("Faded", nil, imgui.WindowFlagsNoTitleBar, nil)
	}, func(dd *imgui.DrawData) {
		bg := dd.Lists[1].VtxBuffer[0].Color
		_, _, _, a := imgui.UnpackRGBA(bg)
		assert.Equal(t, uint8(128), a)
	})
}
