package imgui_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-theft-auto/imgui"
)

func TestNewListClipper(t *testing.T) {
	tests := []struct {
		name                        string
		total                       int
		itemHeight, visible, scroll float32
		start, end                  int
	}{
		{"top", 100, 20, 100, 0, 0, 7},
		{"scrolled", 100, 20, 100, 500, 25, 32},
		{"near end", 100, 20, 100, 1950, 97, 100},
		{"past end", 10, 20, 100, 1000, 10, 10},
		{"negative scroll", 100, 20, 100, -40, 0, 7},
		{"empty", 0, 20, 100, 0, 0, 0},
		{"no height", 100, 0, 100, 0, 0, 0},
		{"hidden", 100, 20, 0, 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := imgui.NewListClipper(tt.total, tt.itemHeight, tt.visible, tt.scroll)
			assert.Equal(t, tt.start, c.StartIdx)
			assert.Equal(t, tt.end, c.EndIdx)
			assert.Equal(t, tt.end-tt.start, c.VisibleCount())
		})
	}
	assert.Equal(t, float32(2000), imgui.NewListClipper(100, 20, 100, 0).ContentHeight())
}

func TestWithListClipper(t *testing.T) {
	ctx := imgui.New()
	var start, end int
	var first, after imgui.Vec2

	list := func(f *imgui.Frame) {
		f.WithListClipper(100, 20, func(f *imgui.Frame, s, e int) {
			start, end = s, e
			first = f.CursorScreenPos()
			for range e - s {
				f.Dummy(imgui.V2(50, 16))
			}
		})
		after = f.CursorScreenPos()
	}
	window := func(scroll float32) func(f *imgui.Frame) {
		return func(f *imgui.Frame) {
			f.SetNextWindowPos(imgui.V2(0, 0), imgui.CondAlways, imgui.Vec2{})
			f.SetNextWindowSize(imgui.V2(200, 100), imgui.CondAlways)
			f.SetNextWindowScroll(imgui.V2(0, scroll))
			f.WithWindow("List", nil, imgui.WindowFlagsNoTitleBar, list)
		}
	}

	frame(ctx, window(0))
	assert.Equal(t, 0, start)
	assert.Equal(t, 6, end)
	assert.Equal(t, imgui.V2(8, 8), first)
	assert.Equal(t, float32(8+100*20), after.Y, "rows after the range are still reserved")

	frame(ctx, window(500))
	assert.Equal(t, 24, start)
	assert.Equal(t, 31, end)
	assert.Equal(t, imgui.V2(8, 8-500+24*20), first)
	assert.Equal(t, float32(8-500+100*20), after.Y)
}

func TestWithListClipperSkipsEmptyRange(t *testing.T) {
	ctx := imgui.New()
	called := false
	frame(ctx, func(f *imgui.Frame) {
		f.WithWindow("Empty", nil, imgui.WindowFlagsNone, func(f *imgui.Frame) {
			f.WithListClipper(0, 20, func(*imgui.Frame, int, int) { called = true })
		})
	})
	assert.False(t, called)
}

func TestTextLineHeightWithSpacing(t *testing.T) {
	ctx := imgui.New()
	var pitch float32
	var a, b imgui.Vec2
	frame(ctx, func(f *imgui.Frame) {
		f.WithWindow("Lines", nil, imgui.WindowFlagsNone, func(f *imgui.Frame) {
			pitch = f.TextLineHeightWithSpacing()
			a = f.CursorScreenPos()
			f.TextUnformatted("one")
			b = f.CursorScreenPos()
		})
	})
	assert.InDelta(t, pitch, b.Y-a.Y, 0.01)
}
