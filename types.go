package imgui

// Vec2 represents a 2D vector for positions and sizes.
type Vec2 struct {
	X, Y float32
}

// V2 is shorthand for Vec2{X: x, Y: y}.
func V2(x, y float32) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns the sum of two vectors.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub returns the difference of two vectors.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{X: v.X - other.X, Y: v.Y - other.Y}
}

// Mul returns the vector scaled by a scalar.
func (v Vec2) Mul(s float32) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Rect is an axis aligned rectangle given by its corners.
type Rect struct {
	Min, Max Vec2
}

// RectFromSize builds a rectangle from its top-left corner and size.
func RectFromSize(pos, size Vec2) Rect {
	return Rect{Min: pos, Max: pos.Add(size)}
}

// Size returns the width and height of the rectangle.
func (r Rect) Size() Vec2 {
	return r.Max.Sub(r.Min)
}

// Contains reports whether the point lies inside the rectangle.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.Min.X && p.X < r.Max.X && p.Y >= r.Min.Y && p.Y < r.Max.Y
}

// Intersect returns the overlap of two rectangles. The result may be
// empty (Max below Min on an axis).
func (r Rect) Intersect(other Rect) Rect {
	return Rect{
		Min: Vec2{X: maxf(r.Min.X, other.Min.X), Y: maxf(r.Min.Y, other.Min.Y)},
		Max: Vec2{X: minf(r.Max.X, other.Max.X), Y: minf(r.Max.Y, other.Max.Y)},
	}
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.Max.X <= r.Min.X || r.Max.Y <= r.Min.Y
}

// Vertex is one vertex of a draw list.
type Vertex struct {
	Pos   Vec2
	UV    Vec2
	Color uint32 // packed as 0xAABBGGRR
}

// DrawCmd is one draw command of a draw list.
//
// A command either draws ElemCount indices starting at IndexOffset
// (indices are relative to VertexOffset), or, when Callback is non-zero,
// asks the renderer to invoke the registered callback at this point.
type DrawCmd struct {
	ElemCount    uint32
	ClipRect     Rect
	TextureID    uint32 // 0 = untextured
	VertexOffset uint32
	IndexOffset  uint32
	Callback     CallbackToken
}

// Color constants (RGBA packed as 0xAABBGGRR for OpenGL compatibility)
const (
	ColorWhite       uint32 = 0xFFFFFFFF
	ColorBlack       uint32 = 0xFF000000
	ColorRed         uint32 = 0xFF0000FF
	ColorGreen       uint32 = 0xFF00FF00
	ColorBlue        uint32 = 0xFFFF0000
	ColorYellow      uint32 = 0xFF00FFFF
	ColorGray        uint32 = 0xFF808080
	ColorTransparent uint32 = 0x00000000
)

// RGBA creates a packed color from individual components (0-255).
func RGBA(r, g, b, a uint8) uint32 {
	return uint32(a)<<24 | uint32(b)<<16 | uint32(g)<<8 | uint32(r)
}

// RGBAf creates a packed color from float components (0.0-1.0).
func RGBAf(r, g, b, a float32) uint32 {
	return RGBA(
		uint8(clampf(r, 0, 1)*255+0.5),
		uint8(clampf(g, 0, 1)*255+0.5),
		uint8(clampf(b, 0, 1)*255+0.5),
		uint8(clampf(a, 0, 1)*255+0.5),
	)
}

// UnpackRGBA extracts RGBA components from a packed color.
func UnpackRGBA(c uint32) (r, g, b, a uint8) {
	return uint8(c), uint8(c >> 8), uint8(c >> 16), uint8(c >> 24)
}

// WithAlpha returns c with its alpha channel multiplied by alpha.
func WithAlpha(c uint32, alpha float32) uint32 {
	a := float32(c>>24) * clampf(alpha, 0, 1)
	return c&0x00FFFFFF | uint32(a+0.5)<<24
}

func clampf(v, minVal, maxVal float32) float32 {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}
