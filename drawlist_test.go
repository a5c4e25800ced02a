package imgui_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/imgui"
)

// foreground runs one frame that records into the foreground list and
// hands the finalized list to check.
func foreground(t *testing.T, ctx *imgui.Context, record func(dl *imgui.DrawList), check func(dl *imgui.DrawList, dd *imgui.DrawData)) {
	t.Helper()
	rendered := false
	ctx.DoFrame(func(f *imgui.Frame) {
		record(f.ForegroundDrawList())
	}, func(dd *imgui.DrawData) {
		rendered = true
		check(dd.Lists[len(dd.Lists)-1], dd)
	})
	require.True(t, rendered)
}

func TestDrawListCommandsFollowState(t *testing.T) {
	ctx := imgui.New()
	foreground(t, ctx, func(dl *imgui.DrawList) {
		dl.AddRectFilled(imgui.V2(0, 0), imgui.V2(10, 10), imgui.ColorRed, 0)
		dl.AddRectFilled(imgui.V2(10, 0), imgui.V2(20, 10), imgui.ColorRed, 0)
		dl.PushClipRect(imgui.V2(0, 0), imgui.V2(50, 50), true)
		dl.AddRectFilled(imgui.V2(0, 0), imgui.V2(10, 10), imgui.ColorGreen, 0)
		dl.PopClipRect()
		dl.AddImage(7, imgui.V2(0, 0), imgui.V2(8, 8), imgui.V2(0, 0), imgui.V2(1, 1), imgui.ColorWhite)
		dl.AddRectFilled(imgui.V2(0, 0), imgui.V2(1, 1), imgui.ColorTransparent, 0)
	}, func(dl *imgui.DrawList, _ *imgui.DrawData) {
		require.Len(t, dl.CmdBuffer, 3)

		assert.Equal(t, uint32(12), dl.CmdBuffer[0].ElemCount)
		assert.Equal(t, imgui.Rect{Max: imgui.V2(800, 600)}, dl.CmdBuffer[0].ClipRect)

		assert.Equal(t, imgui.Rect{Max: imgui.V2(50, 50)}, dl.CmdBuffer[1].ClipRect)
		assert.Equal(t, uint32(6), dl.CmdBuffer[1].ElemCount)
		assert.Equal(t, uint32(8), dl.CmdBuffer[1].VertexOffset)
		assert.Equal(t, uint32(12), dl.CmdBuffer[1].IndexOffset)

		assert.Equal(t, uint32(7), dl.CmdBuffer[2].TextureID)
		assert.Equal(t, imgui.V2(1, 1), dl.VtxBuffer[dl.CmdBuffer[2].VertexOffset+2].UV)
		assert.Len(t, dl.VtxBuffer, 16, "transparent primitives are skipped")
	})
}

func TestDrawListSplitsBeforeIndexOverflow(t *testing.T) {
	ctx := imgui.New()
	foreground(t, ctx, func(dl *imgui.DrawList) {
		for i := 0; i < 16385; i++ {
			dl.AddRectFilled(imgui.V2(0, 0), imgui.V2(1, 1), imgui.ColorWhite, 0)
		}
	}, func(dl *imgui.DrawList, dd *imgui.DrawData) {
		require.Len(t, dl.CmdBuffer, 2)
		assert.Equal(t, uint32(16384*6), dl.CmdBuffer[0].ElemCount)
		assert.Equal(t, uint32(65536), dl.CmdBuffer[1].VertexOffset)
		assert.Equal(t, uint32(6), dl.CmdBuffer[1].ElemCount)

		second := dl.IdxBuffer[dl.CmdBuffer[1].IndexOffset:]
		assert.Equal(t, []uint16{0, 1, 2, 0, 2, 3}, second, "indices restart at the new base vertex")
		assert.Equal(t, 65540, dd.TotalVtxCount())
	})
}

func TestConvexPolyFilledSplitsLargeFans(t *testing.T) {
	ctx := imgui.New()
	points := make([]imgui.Vec2, 65536+10)
	for i := range points {
		points[i] = imgui.V2(float32(i%100), float32(i/100))
	}
	foreground(t, ctx, func(dl *imgui.DrawList) {
		dl.AddConvexPolyFilled(points, imgui.ColorWhite)
	}, func(dl *imgui.DrawList, dd *imgui.DrawData) {
		require.Len(t, dl.CmdBuffer, 2)
		assert.Equal(t, uint32(3*65534), dl.CmdBuffer[0].ElemCount)
		assert.Equal(t, uint32(65536), dl.CmdBuffer[1].VertexOffset)
		assert.Equal(t, uint32(3*10), dl.CmdBuffer[1].ElemCount)
		assert.Equal(t, 65536+12, dd.TotalVtxCount(), "the second fan repeats the center and the shared point")

		second := dl.VtxBuffer[65536:]
		assert.Equal(t, points[0], second[0].Pos)
		assert.Equal(t, points[65535], second[1].Pos)
		assert.Equal(t, points[len(points)-1], second[len(second)-1].Pos)
	})
}

func TestDrawListPrimitiveGeometry(t *testing.T) {
	cases := []struct {
		name     string
		draw     func(dl *imgui.DrawList)
		vertices int
		indices  int
	}{
		{"line", func(dl *imgui.DrawList) {
			dl.AddLine(imgui.V2(0, 0), imgui.V2(10, 0), imgui.ColorWhite, 2)
		}, 4, 6},
		{"rect outline", func(dl *imgui.DrawList) {
			dl.AddRect(imgui.V2(0, 0), imgui.V2(10, 10), imgui.ColorWhite, 0, 1)
		}, 16, 24},
		{"triangle filled", func(dl *imgui.DrawList) {
			dl.AddTriangleFilled(imgui.V2(0, 0), imgui.V2(10, 0), imgui.V2(0, 10), imgui.ColorWhite)
		}, 3, 3},
		{"triangle outline", func(dl *imgui.DrawList) {
			dl.AddTriangle(imgui.V2(0, 0), imgui.V2(10, 0), imgui.V2(0, 10), imgui.ColorWhite, 1)
		}, 12, 18},
		{"quad filled", func(dl *imgui.DrawList) {
			dl.AddQuadFilled(imgui.V2(0, 0), imgui.V2(10, 0), imgui.V2(10, 10), imgui.V2(0, 10), imgui.ColorWhite)
		}, 4, 6},
		{"circle filled", func(dl *imgui.DrawList) {
			dl.AddCircleFilled(imgui.V2(50, 50), 20, imgui.ColorWhite, 12)
		}, 12, 30},
		{"ngon outline", func(dl *imgui.DrawList) {
			dl.AddNgon(imgui.V2(50, 50), 20, imgui.ColorWhite, 6, 1)
		}, 24, 36},
		{"ngon needs three sides", func(dl *imgui.DrawList) {
			dl.AddNgonFilled(imgui.V2(50, 50), 20, imgui.ColorWhite, 2)
		}, 0, 0},
		{"open polyline", func(dl *imgui.DrawList) {
			dl.AddPolyline([]imgui.Vec2{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}}, imgui.ColorWhite, false, 1)
		}, 8, 12},
		{"closed polyline", func(dl *imgui.DrawList) {
			dl.AddPolyline([]imgui.Vec2{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}}, imgui.ColorWhite, true, 1)
		}, 12, 18},
		{"convex poly", func(dl *imgui.DrawList) {
			dl.AddConvexPolyFilled([]imgui.Vec2{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 12, Y: 5}, {X: 10, Y: 10}, {X: 0, Y: 10}}, imgui.ColorWhite)
		}, 5, 9},
		{"bezier cubic", func(dl *imgui.DrawList) {
			dl.AddBezierCubic(imgui.V2(0, 0), imgui.V2(10, 20), imgui.V2(20, -20), imgui.V2(30, 0), imgui.ColorWhite, 1, 10)
		}, 40, 60},
		{"bezier quadratic", func(dl *imgui.DrawList) {
			dl.AddBezierQuadratic(imgui.V2(0, 0), imgui.V2(10, 20), imgui.V2(20, 0), imgui.ColorWhite, 1, 5)
		}, 20, 30},
		{"multi color", func(dl *imgui.DrawList) {
			dl.AddRectFilledMultiColor(imgui.V2(0, 0), imgui.V2(10, 10), imgui.ColorRed, imgui.ColorGreen, imgui.ColorBlue, imgui.ColorWhite)
		}, 4, 6},
		{"image quad", func(dl *imgui.DrawList) {
			dl.AddImageQuad(3, imgui.V2(0, 0), imgui.V2(10, 0), imgui.V2(10, 10), imgui.V2(0, 10),
				imgui.V2(0, 0), imgui.V2(1, 0), imgui.V2(1, 1), imgui.V2(0, 1), imgui.ColorWhite)
		}, 4, 6},
	}
	ctx := imgui.New()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			foreground(t, ctx, tc.draw, func(dl *imgui.DrawList, _ *imgui.DrawData) {
				assert.Len(t, dl.VtxBuffer, tc.vertices)
				assert.Len(t, dl.IdxBuffer, tc.indices)
			})
		})
	}
}

func TestDrawListMultiColorCorners(t *testing.T) {
	ctx := imgui.New()
	foreground(t, ctx, func(dl *imgui.DrawList) {
		dl.AddRectFilledMultiColor(imgui.V2(0, 0), imgui.V2(10, 10), imgui.ColorRed, imgui.ColorGreen, imgui.ColorBlue, imgui.ColorWhite)
	}, func(dl *imgui.DrawList, _ *imgui.DrawData) {
		var cols []uint32
		for _, v := range dl.VtxBuffer {
			cols = append(cols, v.Color)
		}
		assert.Equal(t, []uint32{imgui.ColorRed, imgui.ColorGreen, imgui.ColorBlue, imgui.ColorWhite}, cols)
		assert.Equal(t, imgui.V2(10, 10), dl.VtxBuffer[2].Pos)
	})
}

func TestDrawListCallbacks(t *testing.T) {
	ctx := imgui.New()
	var calls []string
	foreground(t, ctx, func(dl *imgui.DrawList) {
		dl.AddRectFilled(imgui.V2(0, 0), imgui.V2(10, 10), imgui.ColorWhite, 0)
		dl.AddCallback(func() { calls = append(calls, "first") })
		dl.AddCallback(func() { calls = append(calls, "second") })
		dl.AddRectFilled(imgui.V2(0, 0), imgui.V2(10, 10), imgui.ColorWhite, 0)
	}, func(dl *imgui.DrawList, dd *imgui.DrawData) {
		require.Len(t, dl.CmdBuffer, 4)
		assert.Zero(t, dl.CmdBuffer[0].Callback)
		assert.NotZero(t, dl.CmdBuffer[1].Callback)
		assert.NotZero(t, dl.CmdBuffer[2].Callback)
		assert.Zero(t, dl.CmdBuffer[1].ElemCount)
		assert.Equal(t, uint32(6), dl.CmdBuffer[3].ElemCount)
		assert.Equal(t, uint32(4), dl.CmdBuffer[3].VertexOffset)

		assert.Empty(t, calls, "recording does not run callbacks")
		for _, cmd := range dl.CmdBuffer {
			if cmd.Callback != 0 {
				assert.True(t, dd.Invoke(cmd.Callback))
				assert.False(t, dd.Invoke(cmd.Callback), "a token runs once")
			}
		}
		assert.Equal(t, []string{"first", "second"}, calls)
		assert.False(t, dd.Invoke(0))
	})
}

func TestCallbackTokensExpireWithTheFrame(t *testing.T) {
	ctx := imgui.New()
	var stale imgui.CallbackToken
	ran := 0
	foreground(t, ctx, func(dl *imgui.DrawList) {
		dl.AddCallback(func() { ran++ })
	}, func(dl *imgui.DrawList, _ *imgui.DrawData) {
		stale = dl.CmdBuffer[0].Callback
	})

	foreground(t, ctx, func(dl *imgui.DrawList) {
		dl.AddCallback(func() { ran++ })
	}, func(dl *imgui.DrawList, dd *imgui.DrawData) {
		assert.False(t, dd.Invoke(stale))
		assert.NotEqual(t, stale, dl.CmdBuffer[0].Callback)
		assert.True(t, dd.Invoke(dl.CmdBuffer[0].Callback))
	})
	assert.Equal(t, 1, ran)
}

func TestDrawListForcedCommandBoundary(t *testing.T) {
	ctx := imgui.New()
	foreground(t, ctx, func(dl *imgui.DrawList) {
		dl.AddRectFilled(imgui.V2(0, 0), imgui.V2(10, 10), imgui.ColorWhite, 0)
		dl.AddDrawCmd()
		dl.AddRectFilled(imgui.V2(0, 0), imgui.V2(10, 10), imgui.ColorWhite, 0)
	}, func(dl *imgui.DrawList, _ *imgui.DrawData) {
		require.Len(t, dl.CmdBuffer, 2)
		assert.Equal(t, uint32(6), dl.CmdBuffer[1].IndexOffset)
	})
}

func TestAddTextUsesAtlasTexture(t *testing.T) {
	ctx := imgui.New()
	_, err := ctx.UpdateAtlas()
	require.NoError(t, err)
	ctx.Atlas().SetTextureID(5)

	foreground(t, ctx, func(dl *imgui.DrawList) {
		dl.AddText(imgui.V2(10, 10), imgui.ColorWhite, "Hi there")
		dl.AddRectFilled(imgui.V2(0, 0), imgui.V2(10, 10), imgui.ColorWhite, 0)
	}, func(dl *imgui.DrawList, _ *imgui.DrawData) {
		require.Len(t, dl.CmdBuffer, 2)
		assert.Equal(t, uint32(5), dl.CmdBuffer[0].TextureID)
		assert.Equal(t, uint32(7*6), dl.CmdBuffer[0].ElemCount, "the space has no quad")
		assert.Zero(t, dl.CmdBuffer[1].TextureID, "the previous texture is restored")
		for _, v := range dl.VtxBuffer[:28] {
			assert.True(t, v.UV.X >= 0 && v.UV.X <= 1 && v.UV.Y >= 0 && v.UV.Y <= 1)
		}
	})
}

func TestAddTextClipsOnCPU(t *testing.T) {
	ctx := imgui.New()
	foreground(t, ctx, func(dl *imgui.DrawList) {
		font := ctx.Atlas().Font(0)
		clip := imgui.Rect{Min: imgui.V2(0, 0), Max: imgui.V2(14, 100)}
		dl.AddTextFont(font, font.Size(), imgui.V2(10, 10), imgui.ColorWhite, "MMMMMM", 0, &clip)
	}, func(dl *imgui.DrawList, _ *imgui.DrawData) {
		require.NotEmpty(t, dl.VtxBuffer)
		assert.Less(t, len(dl.VtxBuffer), 6*4, "glyphs past the clip are dropped")
		for _, v := range dl.VtxBuffer {
			assert.LessOrEqual(t, v.Pos.X, float32(14))
		}
	})
}
