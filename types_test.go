package imgui_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-theft-auto/imgui"
)

func TestColorPacking(t *testing.T) {
	assert.Equal(t, imgui.ColorRed, imgui.RGBA(255, 0, 0, 255))
	assert.Equal(t, imgui.ColorBlue, imgui.RGBAf(0, 0, 1, 1))
	assert.Equal(t, imgui.RGBA(128, 0, 255, 0), imgui.RGBAf(0.5, -1, 2, 0))

	r, g, b, a := imgui.UnpackRGBA(imgui.RGBA(1, 2, 3, 4))
	assert.Equal(t, [4]uint8{1, 2, 3, 4}, [4]uint8{r, g, b, a})

	assert.Equal(t, uint32(0x800000FF), imgui.WithAlpha(imgui.ColorRed, 0.5))
	assert.Equal(t, imgui.ColorRed&0x00FFFFFF, imgui.WithAlpha(imgui.ColorRed, -3))
}

func TestRect(t *testing.T) {
	r := imgui.RectFromSize(imgui.V2(10, 20), imgui.V2(30, 40))
	assert.Equal(t, imgui.V2(40, 60), r.Max)
	assert.Equal(t, imgui.V2(30, 40), r.Size())

	assert.True(t, r.Contains(imgui.V2(10, 20)))
	assert.False(t, r.Contains(imgui.V2(40, 60)), "the far edges are outside")

	other := imgui.Rect{Min: imgui.V2(30, 0), Max: imgui.V2(100, 30)}
	assert.Equal(t, imgui.Rect{Min: imgui.V2(30, 20), Max: imgui.V2(40, 30)}, r.Intersect(other))
	assert.False(t, r.Intersect(other).Empty())
	assert.True(t, r.Intersect(imgui.RectFromSize(imgui.V2(50, 0), imgui.V2(5, 5))).Empty())
}
