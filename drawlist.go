package imgui

import (
	"sync"

	"cogentcore.org/core/math32"
)

// maxCmdVertices is the number of vertices one command can address with
// 16-bit indices.
const maxCmdVertices = 1 << 16

// circleMaxError is the largest distance, in pixels, between a circle and
// its polygon approximation when the segment count is chosen automatically.
const circleMaxError = 0.3

// drawListPool recycles draw lists between frames.
var drawListPool = sync.Pool{
	New: func() any {
		return &DrawList{
			VtxBuffer: make([]Vertex, 0, 1024),
			IdxBuffer: make([]uint16, 0, 2048),
			CmdBuffer: make([]DrawCmd, 0, 16),
			clipStack: make([]Rect, 0, 8),
			path:      make([]Vec2, 0, 64),
		}
	},
}

// drawListShared is the state draw lists of one Context read while
// recording: the current font and the callback registry.
type drawListShared struct {
	callbacks *callbackRegistry
	font      *Font
	fontSize  float32
	fullClip  Rect
}

func acquireDrawList(shared *drawListShared) *DrawList {
	dl := drawListPool.Get().(*DrawList)
	dl.shared = shared
	dl.clear()
	return dl
}

func releaseDrawList(dl *DrawList) {
	if dl != nil {
		dl.shared = nil
		drawListPool.Put(dl)
	}
}

// DrawList records primitives for one layer of a frame.
//
// Vertices are addressed with 16-bit indices relative to the VertexOffset
// of their command; a command is split before it would address more than
// 65536 vertices. Commands change whenever the clip rectangle or texture
// changes, and callbacks always get a command of their own.
type DrawList struct {
	CmdBuffer []DrawCmd
	VtxBuffer []Vertex
	IdxBuffer []uint16

	shared      *drawListShared
	clipStack   []Rect
	currentClip Rect
	textureID   uint32
	path        []Vec2
}

func (dl *DrawList) clear() {
	dl.CmdBuffer = dl.CmdBuffer[:0]
	dl.VtxBuffer = dl.VtxBuffer[:0]
	dl.IdxBuffer = dl.IdxBuffer[:0]
	dl.clipStack = dl.clipStack[:0]
	dl.path = dl.path[:0]
	dl.currentClip = Rect{Min: V2(-1e9, -1e9), Max: V2(1e9, 1e9)}
	if dl.shared != nil {
		dl.currentClip = dl.shared.fullClip
	}
	dl.textureID = 0
}

// ClipRect returns the clip rectangle applied to new primitives.
func (dl *DrawList) ClipRect() Rect {
	return dl.currentClip
}

// PushClipRect narrows the clip rectangle. With intersect the new
// rectangle is clipped against the current one.
func (dl *DrawList) PushClipRect(min, max Vec2, intersect bool) {
	r := Rect{Min: min, Max: max}
	if intersect {
		r = r.Intersect(dl.currentClip)
		if r.Empty() {
			r.Max = r.Min
		}
	}
	dl.clipStack = append(dl.clipStack, dl.currentClip)
	dl.currentClip = r
}

// PopClipRect restores the clip rectangle saved by PushClipRect.
func (dl *DrawList) PopClipRect() {
	if n := len(dl.clipStack); n > 0 {
		dl.currentClip = dl.clipStack[n-1]
		dl.clipStack = dl.clipStack[:n-1]
	}
}

// SetTexture selects the texture for subsequent primitives; 0 draws
// untextured.
func (dl *DrawList) SetTexture(textureID uint32) {
	dl.textureID = textureID
}

// currentCmd returns the command new indices are appended to, starting a
// new one when the clip rectangle or texture changed.
func (dl *DrawList) currentCmd() *DrawCmd {
	if n := len(dl.CmdBuffer); n > 0 {
		last := &dl.CmdBuffer[n-1]
		if last.Callback == 0 {
			if last.ClipRect == dl.currentClip && last.TextureID == dl.textureID {
				return last
			}
			if last.ElemCount == 0 {
				last.ClipRect = dl.currentClip
				last.TextureID = dl.textureID
				last.VertexOffset = uint32(len(dl.VtxBuffer))
				last.IndexOffset = uint32(len(dl.IdxBuffer))
				return last
			}
		}
	}
	return dl.splitDraw()
}

func (dl *DrawList) splitDraw() *DrawCmd {
	dl.CmdBuffer = append(dl.CmdBuffer, DrawCmd{
		ClipRect:     dl.currentClip,
		TextureID:    dl.textureID,
		VertexOffset: uint32(len(dl.VtxBuffer)),
		IndexOffset:  uint32(len(dl.IdxBuffer)),
	})
	return &dl.CmdBuffer[len(dl.CmdBuffer)-1]
}

// reserve prepares room for vtxCount vertices and returns the command
// they belong to along with the index of the first one.
func (dl *DrawList) reserve(vtxCount int) (*DrawCmd, uint16) {
	cmd := dl.currentCmd()
	used := len(dl.VtxBuffer) - int(cmd.VertexOffset)
	if used+vtxCount > maxCmdVertices {
		if cmd.ElemCount == 0 {
			cmd.VertexOffset = uint32(len(dl.VtxBuffer))
		} else {
			cmd = dl.splitDraw()
		}
		used = 0
	}
	return cmd, uint16(used)
}

func (dl *DrawList) addQuad(a, b, c, d, uva, uvb, uvc, uvd Vec2, col uint32) {
	cmd, i := dl.reserve(4)
	dl.VtxBuffer = append(dl.VtxBuffer,
		Vertex{Pos: a, UV: uva, Color: col},
		Vertex{Pos: b, UV: uvb, Color: col},
		Vertex{Pos: c, UV: uvc, Color: col},
		Vertex{Pos: d, UV: uvd, Color: col},
	)
	dl.IdxBuffer = append(dl.IdxBuffer, i, i+1, i+2, i, i+2, i+3)
	cmd.ElemCount += 6
}

func visible(col uint32) bool {
	return col&0xFF000000 != 0
}

// AddLine draws a straight line.
func (dl *DrawList) AddLine(p1, p2 Vec2, col uint32, thickness float32) {
	if !visible(col) {
		return
	}
	dl.PathLineTo(p1.Add(V2(0.5, 0.5)))
	dl.PathLineTo(p2.Add(V2(0.5, 0.5)))
	dl.PathStroke(col, false, thickness)
}

// AddRect draws a rectangle outline. Corners are rounded when rounding
// is positive.
func (dl *DrawList) AddRect(min, max Vec2, col uint32, rounding, thickness float32) {
	if !visible(col) {
		return
	}
	dl.PathRect(min.Add(V2(0.5, 0.5)), max.Sub(V2(0.5, 0.5)), rounding)
	dl.PathStroke(col, true, thickness)
}

// AddRectFilled draws a filled rectangle.
func (dl *DrawList) AddRectFilled(min, max Vec2, col uint32, rounding float32) {
	if !visible(col) {
		return
	}
	if rounding <= 0 {
		dl.addQuad(min, V2(max.X, min.Y), max, V2(min.X, max.Y), Vec2{}, Vec2{}, Vec2{}, Vec2{}, col)
		return
	}
	dl.PathRect(min, max, rounding)
	dl.PathFillConvex(col)
}

// AddRectFilledMultiColor draws a filled rectangle with one color per
// corner, interpolated across the surface.
func (dl *DrawList) AddRectFilledMultiColor(min, max Vec2, colUpperLeft, colUpperRight, colBottomRight, colBottomLeft uint32) {
	if !visible(colUpperLeft | colUpperRight | colBottomRight | colBottomLeft) {
		return
	}
	cmd, i := dl.reserve(4)
	dl.VtxBuffer = append(dl.VtxBuffer,
		Vertex{Pos: min, Color: colUpperLeft},
		Vertex{Pos: V2(max.X, min.Y), Color: colUpperRight},
		Vertex{Pos: max, Color: colBottomRight},
		Vertex{Pos: V2(min.X, max.Y), Color: colBottomLeft},
	)
	dl.IdxBuffer = append(dl.IdxBuffer, i, i+1, i+2, i, i+2, i+3)
	cmd.ElemCount += 6
}

// AddQuad draws a quadrilateral outline.
func (dl *DrawList) AddQuad(p1, p2, p3, p4 Vec2, col uint32, thickness float32) {
	if !visible(col) {
		return
	}
	dl.path = append(dl.path, p1, p2, p3, p4)
	dl.PathStroke(col, true, thickness)
}

// AddQuadFilled draws a filled convex quadrilateral.
func (dl *DrawList) AddQuadFilled(p1, p2, p3, p4 Vec2, col uint32) {
	if !visible(col) {
		return
	}
	dl.path = append(dl.path, p1, p2, p3, p4)
	dl.PathFillConvex(col)
}

// AddTriangle draws a triangle outline.
func (dl *DrawList) AddTriangle(p1, p2, p3 Vec2, col uint32, thickness float32) {
	if !visible(col) {
		return
	}
	dl.path = append(dl.path, p1, p2, p3)
	dl.PathStroke(col, true, thickness)
}

// AddTriangleFilled draws a filled triangle.
func (dl *DrawList) AddTriangleFilled(p1, p2, p3 Vec2, col uint32) {
	if !visible(col) {
		return
	}
	dl.path = append(dl.path, p1, p2, p3)
	dl.PathFillConvex(col)
}

// AddCircle draws a circle outline. A segment count of zero or less picks
// one from the radius.
func (dl *DrawList) AddCircle(center Vec2, radius float32, col uint32, segments int, thickness float32) {
	if !visible(col) || radius <= 0 {
		return
	}
	if segments <= 0 {
		segments = circleSegments(radius)
	}
	dl.pathCircle(center, radius, segments)
	dl.PathStroke(col, true, thickness)
}

// AddCircleFilled draws a filled circle.
func (dl *DrawList) AddCircleFilled(center Vec2, radius float32, col uint32, segments int) {
	if !visible(col) || radius <= 0 {
		return
	}
	if segments <= 0 {
		segments = circleSegments(radius)
	}
	dl.pathCircle(center, radius, segments)
	dl.PathFillConvex(col)
}

// AddNgon draws a regular polygon outline with the given number of sides.
func (dl *DrawList) AddNgon(center Vec2, radius float32, col uint32, segments int, thickness float32) {
	if !visible(col) || segments < 3 {
		return
	}
	dl.pathCircle(center, radius, segments)
	dl.PathStroke(col, true, thickness)
}

// AddNgonFilled draws a filled regular polygon.
func (dl *DrawList) AddNgonFilled(center Vec2, radius float32, col uint32, segments int) {
	if !visible(col) || segments < 3 {
		return
	}
	dl.pathCircle(center, radius, segments)
	dl.PathFillConvex(col)
}

// AddPolyline strokes a sequence of points. Each segment is a quad of
// the given thickness; closed also joins the last point to the first.
func (dl *DrawList) AddPolyline(points []Vec2, col uint32, closed bool, thickness float32) {
	n := len(points)
	if n < 2 || !visible(col) {
		return
	}
	segments := n - 1
	if closed {
		segments = n
	}
	half := thickness * 0.5
	for s := 0; s < segments; s++ {
		a := points[s]
		b := points[(s+1)%n]
		d := b.Sub(a)
		l := math32.Sqrt(d.X*d.X + d.Y*d.Y)
		if l == 0 {
			continue
		}
		nrm := V2(-d.Y/l*half, d.X/l*half)
		dl.addQuad(a.Add(nrm), b.Add(nrm), b.Sub(nrm), a.Sub(nrm), Vec2{}, Vec2{}, Vec2{}, Vec2{}, col)
	}
}

// AddConvexPolyFilled fills a convex polygon given in either winding.
// The polygon is drawn as a fan from its first point; fans too large for
// one command continue in the next, repeating the shared edge point.
func (dl *DrawList) AddConvexPolyFilled(points []Vec2, col uint32) {
	n := len(points)
	if n < 3 || !visible(col) {
		return
	}
	const rimMax = maxCmdVertices - 1
	for start := 1; start < n-1; start += rimMax - 1 {
		dl.addFan(points[0], points[start:min(start+rimMax, n)], col)
	}
}

func (dl *DrawList) addFan(center Vec2, rim []Vec2, col uint32) {
	cmd, base := dl.reserve(1 + len(rim))
	dl.VtxBuffer = append(dl.VtxBuffer, Vertex{Pos: center, Color: col})
	for _, p := range rim {
		dl.VtxBuffer = append(dl.VtxBuffer, Vertex{Pos: p, Color: col})
	}
	for i := 2; i <= len(rim); i++ {
		dl.IdxBuffer = append(dl.IdxBuffer, base, base+uint16(i-1), base+uint16(i))
	}
	cmd.ElemCount += uint32(3 * (len(rim) - 1))
}

// AddBezierCubic strokes a cubic Bézier curve.
func (dl *DrawList) AddBezierCubic(p1, p2, p3, p4 Vec2, col uint32, thickness float32, segments int) {
	if !visible(col) {
		return
	}
	dl.PathLineTo(p1)
	dl.PathBezierCubicCurveTo(p2, p3, p4, segments)
	dl.PathStroke(col, false, thickness)
}

// AddBezierQuadratic strokes a quadratic Bézier curve.
func (dl *DrawList) AddBezierQuadratic(p1, p2, p3 Vec2, col uint32, thickness float32, segments int) {
	if !visible(col) {
		return
	}
	dl.PathLineTo(p1)
	dl.PathBezierQuadraticCurveTo(p2, p3, segments)
	dl.PathStroke(col, false, thickness)
}

// AddText draws text with the current font at its default size.
func (dl *DrawList) AddText(pos Vec2, col uint32, text string) {
	if dl.shared == nil || dl.shared.font == nil {
		return
	}
	dl.AddTextFont(dl.shared.font, dl.shared.fontSize, pos, col, text, 0, nil)
}

// AddTextFont draws text with an explicit font and size. A positive
// wrapWidth wraps at word boundaries; cpuClip, when set, drops and trims
// glyphs outside that rectangle instead of relying on scissoring.
func (dl *DrawList) AddTextFont(font *Font, size float32, pos Vec2, col uint32, text string, wrapWidth float32, cpuClip *Rect) {
	if font == nil || !visible(col) || text == "" {
		return
	}
	clip := dl.currentClip
	if cpuClip != nil {
		clip = clip.Intersect(*cpuClip)
	}

	prev := dl.textureID
	dl.SetTexture(font.TextureID())
	defer dl.SetTexture(prev)

	k := size / font.size
	lineHeight := font.lineHeight * k
	y := pos.Y
	for line, rest := font.nextLine(text, k, wrapWidth); ; line, rest = font.nextLine(rest, k, wrapWidth) {
		if y > clip.Max.Y {
			break
		}
		if y+lineHeight >= clip.Min.Y {
			x := pos.X
			for _, r := range line {
				g := font.FindGlyph(r)
				if g == nil {
					continue
				}
				if g.Visible() {
					dl.addGlyph(g, V2(x, y), k, col, clip)
				}
				x += g.Advance * k
			}
		}
		y += lineHeight
		if rest == "" {
			break
		}
	}
}

func (dl *DrawList) addGlyph(g *Glyph, pen Vec2, k float32, col uint32, clip Rect) {
	x0, y0 := pen.X+g.X0*k, pen.Y+g.Y0*k
	x1, y1 := pen.X+g.X1*k, pen.Y+g.Y1*k
	u0, v0, u1, v1 := g.U0, g.V0, g.U1, g.V1
	if x0 >= clip.Max.X || y0 >= clip.Max.Y || x1 <= clip.Min.X || y1 <= clip.Min.Y {
		return
	}
	if x0 < clip.Min.X {
		u0 += (u1 - u0) * (clip.Min.X - x0) / (x1 - x0)
		x0 = clip.Min.X
	}
	if y0 < clip.Min.Y {
		v0 += (v1 - v0) * (clip.Min.Y - y0) / (y1 - y0)
		y0 = clip.Min.Y
	}
	if x1 > clip.Max.X {
		u1 -= (u1 - u0) * (x1 - clip.Max.X) / (x1 - x0)
		x1 = clip.Max.X
	}
	if y1 > clip.Max.Y {
		v1 -= (v1 - v0) * (y1 - clip.Max.Y) / (y1 - y0)
		y1 = clip.Max.Y
	}
	dl.addQuad(V2(x0, y0), V2(x1, y0), V2(x1, y1), V2(x0, y1),
		V2(u0, v0), V2(u1, v0), V2(u1, v1), V2(u0, v1), col)
}

// AddImage draws a textured rectangle.
func (dl *DrawList) AddImage(textureID uint32, min, max, uvMin, uvMax Vec2, col uint32) {
	if !visible(col) {
		return
	}
	prev := dl.textureID
	dl.SetTexture(textureID)
	dl.addQuad(min, V2(max.X, min.Y), max, V2(min.X, max.Y),
		uvMin, V2(uvMax.X, uvMin.Y), uvMax, V2(uvMin.X, uvMax.Y), col)
	dl.SetTexture(prev)
}

// AddImageQuad draws a textured quadrilateral with explicit texture
// coordinates per corner.
func (dl *DrawList) AddImageQuad(textureID uint32, p1, p2, p3, p4, uv1, uv2, uv3, uv4 Vec2, col uint32) {
	if !visible(col) {
		return
	}
	prev := dl.textureID
	dl.SetTexture(textureID)
	dl.addQuad(p1, p2, p3, p4, uv1, uv2, uv3, uv4, col)
	dl.SetTexture(prev)
}

// AddCallback embeds fn in the command stream. The renderer calls it at
// this point of the frame, at most once, with the current GL state.
func (dl *DrawList) AddCallback(fn func()) {
	if fn == nil || dl.shared == nil {
		return
	}
	dl.CmdBuffer = append(dl.CmdBuffer, DrawCmd{
		ClipRect:     dl.currentClip,
		TextureID:    dl.textureID,
		VertexOffset: uint32(len(dl.VtxBuffer)),
		IndexOffset:  uint32(len(dl.IdxBuffer)),
		Callback:     dl.shared.callbacks.register(fn),
	})
}

// AddDrawCmd forces a command boundary, so later primitives start a new
// command even when the clip rectangle and texture are unchanged.
func (dl *DrawList) AddDrawCmd() {
	dl.splitDraw()
}

// PathClear discards the current path.
func (dl *DrawList) PathClear() {
	dl.path = dl.path[:0]
}

// PathLineTo appends a point to the current path.
func (dl *DrawList) PathLineTo(p Vec2) {
	dl.path = append(dl.path, p)
}

// PathArcTo appends an arc around center from angle aMin to aMax
// (radians, clockwise on screen).
func (dl *DrawList) PathArcTo(center Vec2, radius, aMin, aMax float32, segments int) {
	if radius <= 0 {
		dl.path = append(dl.path, center)
		return
	}
	if segments <= 0 {
		full := circleSegments(radius)
		segments = max(int(math32.Ceil(float32(full)*math32.Abs(aMax-aMin)/(2*math32.Pi))), 1)
	}
	for i := 0; i <= segments; i++ {
		a := aMin + float32(i)/float32(segments)*(aMax-aMin)
		dl.path = append(dl.path, V2(center.X+math32.Cos(a)*radius, center.Y+math32.Sin(a)*radius))
	}
}

// PathRect appends a rectangle, rounding its corners by at most half the
// shorter side.
func (dl *DrawList) PathRect(min, max Vec2, rounding float32) {
	rounding = minf(rounding, minf(math32.Abs(max.X-min.X), math32.Abs(max.Y-min.Y))*0.5)
	if rounding <= 0 {
		dl.path = append(dl.path, min, V2(max.X, min.Y), max, V2(min.X, max.Y))
		return
	}
	dl.PathArcTo(V2(min.X+rounding, min.Y+rounding), rounding, math32.Pi, 1.5*math32.Pi, 0)
	dl.PathArcTo(V2(max.X-rounding, min.Y+rounding), rounding, 1.5*math32.Pi, 2*math32.Pi, 0)
	dl.PathArcTo(V2(max.X-rounding, max.Y-rounding), rounding, 0, 0.5*math32.Pi, 0)
	dl.PathArcTo(V2(min.X+rounding, max.Y-rounding), rounding, 0.5*math32.Pi, math32.Pi, 0)
}

// PathBezierCubicCurveTo appends a cubic curve starting at the last path
// point.
func (dl *DrawList) PathBezierCubicCurveTo(p2, p3, p4 Vec2, segments int) {
	if len(dl.path) == 0 {
		dl.path = append(dl.path, p2)
	}
	p1 := dl.path[len(dl.path)-1]
	if segments <= 0 {
		segments = curveSegments(p1, p4)
	}
	for i := 1; i <= segments; i++ {
		t := float32(i) / float32(segments)
		u := 1 - t
		w1, w2, w3, w4 := u*u*u, 3*u*u*t, 3*u*t*t, t*t*t
		dl.path = append(dl.path, V2(
			w1*p1.X+w2*p2.X+w3*p3.X+w4*p4.X,
			w1*p1.Y+w2*p2.Y+w3*p3.Y+w4*p4.Y,
		))
	}
}

// PathBezierQuadraticCurveTo appends a quadratic curve starting at the
// last path point.
func (dl *DrawList) PathBezierQuadraticCurveTo(p2, p3 Vec2, segments int) {
	if len(dl.path) == 0 {
		dl.path = append(dl.path, p2)
	}
	p1 := dl.path[len(dl.path)-1]
	if segments <= 0 {
		segments = curveSegments(p1, p3)
	}
	for i := 1; i <= segments; i++ {
		t := float32(i) / float32(segments)
		u := 1 - t
		w1, w2, w3 := u*u, 2*u*t, t*t
		dl.path = append(dl.path, V2(
			w1*p1.X+w2*p2.X+w3*p3.X,
			w1*p1.Y+w2*p2.Y+w3*p3.Y,
		))
	}
}

// PathStroke strokes the current path and clears it.
func (dl *DrawList) PathStroke(col uint32, closed bool, thickness float32) {
	dl.AddPolyline(dl.path, col, closed, thickness)
	dl.PathClear()
}

// PathFillConvex fills the current path and clears it.
func (dl *DrawList) PathFillConvex(col uint32) {
	dl.AddConvexPolyFilled(dl.path, col)
	dl.PathClear()
}

func (dl *DrawList) pathCircle(center Vec2, radius float32, segments int) {
	step := 2 * math32.Pi / float32(segments)
	for i := 0; i < segments; i++ {
		a := float32(i) * step
		dl.path = append(dl.path, V2(center.X+math32.Cos(a)*radius, center.Y+math32.Sin(a)*radius))
	}
}

// circleSegments picks a segment count keeping the chord error below
// circleMaxError.
func circleSegments(radius float32) int {
	if radius <= circleMaxError {
		return 12
	}
	n := int(math32.Ceil(math32.Pi / math32.Acos(1-circleMaxError/radius)))
	return math32.Clamp(n, 12, 512)
}

func curveSegments(a, b Vec2) int {
	d := b.Sub(a)
	n := int(math32.Sqrt(d.X*d.X+d.Y*d.Y) / 4)
	return math32.Clamp(n, 8, 64)
}

// Finalize drops empty commands. Context calls it before handing lists
// to the renderer.
func (dl *DrawList) Finalize() {
	filtered := dl.CmdBuffer[:0]
	for _, cmd := range dl.CmdBuffer {
		if cmd.ElemCount > 0 || cmd.Callback != 0 {
			filtered = append(filtered, cmd)
		}
	}
	dl.CmdBuffer = filtered
}
